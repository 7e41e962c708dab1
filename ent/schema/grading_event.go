package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GradingEvent records one completed grading call: the submission as
// graded plus the full assessment. Feeds the history screen.
type GradingEvent struct {
	ent.Schema
}

func (GradingEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GradingEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Comment("Client-generated question identifier"),
		field.String("question_title").
			Default("").
			Comment("Question title at grading time"),
		field.Text("source").
			Comment("LaTeX source that was graded"),
		field.Float("score").
			Comment("Marks awarded"),
		field.Float("max_score").
			Comment("Total marks available"),
		field.Text("summary").
			Comment("Overall verdict"),
		field.Text("feedback").
			Comment("Step-by-step feedback"),
		field.JSON("mistakes", []string{}).
			Comment("Mistake descriptions"),
		field.JSON("mistake_types", []string{}).
			Comment("Mistake categories, aligned with mistakes"),
		field.Float("confidence").
			Comment("Grader confidence in [0,1]"),
		field.JSON("suggestions", []string{}).
			Comment("Improvement suggestions"),
	}
}

func (GradingEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
	}
}
