// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gradepad/ent/gradingevent"
	"github.com/abhisek/gradepad/ent/predicate"
)

// GradingEventUpdate is the builder for updating GradingEvent entities.
type GradingEventUpdate struct {
	config
	hooks    []Hook
	mutation *GradingEventMutation
}

// Where appends a list predicates to the GradingEventUpdate builder.
func (_u *GradingEventUpdate) Where(ps ...predicate.GradingEvent) *GradingEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *GradingEventUpdate) SetQuestionID(v string) *GradingEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillableQuestionID(v *string) *GradingEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionTitle sets the "question_title" field.
func (_u *GradingEventUpdate) SetQuestionTitle(v string) *GradingEventUpdate {
	_u.mutation.SetQuestionTitle(v)
	return _u
}

// SetNillableQuestionTitle sets the "question_title" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillableQuestionTitle(v *string) *GradingEventUpdate {
	if v != nil {
		_u.SetQuestionTitle(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *GradingEventUpdate) SetSource(v string) *GradingEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillableSource(v *string) *GradingEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GradingEventUpdate) SetScore(v float64) *GradingEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillableScore(v *float64) *GradingEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GradingEventUpdate) AddScore(v float64) *GradingEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *GradingEventUpdate) SetMaxScore(v float64) *GradingEventUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillableMaxScore(v *float64) *GradingEventUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *GradingEventUpdate) AddMaxScore(v float64) *GradingEventUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *GradingEventUpdate) SetSummary(v string) *GradingEventUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillableSummary(v *string) *GradingEventUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *GradingEventUpdate) SetFeedback(v string) *GradingEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillableFeedback(v *string) *GradingEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetMistakes sets the "mistakes" field.
func (_u *GradingEventUpdate) SetMistakes(v []string) *GradingEventUpdate {
	_u.mutation.SetMistakes(v)
	return _u
}

// AppendMistakes appends value to the "mistakes" field.
func (_u *GradingEventUpdate) AppendMistakes(v []string) *GradingEventUpdate {
	_u.mutation.AppendMistakes(v)
	return _u
}

// SetMistakeTypes sets the "mistake_types" field.
func (_u *GradingEventUpdate) SetMistakeTypes(v []string) *GradingEventUpdate {
	_u.mutation.SetMistakeTypes(v)
	return _u
}

// AppendMistakeTypes appends value to the "mistake_types" field.
func (_u *GradingEventUpdate) AppendMistakeTypes(v []string) *GradingEventUpdate {
	_u.mutation.AppendMistakeTypes(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *GradingEventUpdate) SetConfidence(v float64) *GradingEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *GradingEventUpdate) SetNillableConfidence(v *float64) *GradingEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *GradingEventUpdate) AddConfidence(v float64) *GradingEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *GradingEventUpdate) SetSuggestions(v []string) *GradingEventUpdate {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *GradingEventUpdate) AppendSuggestions(v []string) *GradingEventUpdate {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// Mutation returns the GradingEventMutation object of the builder.
func (_u *GradingEventUpdate) Mutation() *GradingEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradingEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradingEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradingEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradingEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GradingEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(gradingevent.Table, gradingevent.Columns, sqlgraph.NewFieldSpec(gradingevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(gradingevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionTitle(); ok {
		_spec.SetField(gradingevent.FieldQuestionTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(gradingevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gradingevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gradingevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(gradingevent.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(gradingevent.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(gradingevent.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(gradingevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mistakes(); ok {
		_spec.SetField(gradingevent.FieldMistakes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMistakes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gradingevent.FieldMistakes, value)
		})
	}
	if value, ok := _u.mutation.MistakeTypes(); ok {
		_spec.SetField(gradingevent.FieldMistakeTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMistakeTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gradingevent.FieldMistakeTypes, value)
		})
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(gradingevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(gradingevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(gradingevent.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gradingevent.FieldSuggestions, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradingEventUpdateOne is the builder for updating a single GradingEvent entity.
type GradingEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradingEventMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *GradingEventUpdateOne) SetQuestionID(v string) *GradingEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillableQuestionID(v *string) *GradingEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestionTitle sets the "question_title" field.
func (_u *GradingEventUpdateOne) SetQuestionTitle(v string) *GradingEventUpdateOne {
	_u.mutation.SetQuestionTitle(v)
	return _u
}

// SetNillableQuestionTitle sets the "question_title" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillableQuestionTitle(v *string) *GradingEventUpdateOne {
	if v != nil {
		_u.SetQuestionTitle(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *GradingEventUpdateOne) SetSource(v string) *GradingEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillableSource(v *string) *GradingEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GradingEventUpdateOne) SetScore(v float64) *GradingEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillableScore(v *float64) *GradingEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GradingEventUpdateOne) AddScore(v float64) *GradingEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *GradingEventUpdateOne) SetMaxScore(v float64) *GradingEventUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillableMaxScore(v *float64) *GradingEventUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *GradingEventUpdateOne) AddMaxScore(v float64) *GradingEventUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *GradingEventUpdateOne) SetSummary(v string) *GradingEventUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillableSummary(v *string) *GradingEventUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *GradingEventUpdateOne) SetFeedback(v string) *GradingEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillableFeedback(v *string) *GradingEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetMistakes sets the "mistakes" field.
func (_u *GradingEventUpdateOne) SetMistakes(v []string) *GradingEventUpdateOne {
	_u.mutation.SetMistakes(v)
	return _u
}

// AppendMistakes appends value to the "mistakes" field.
func (_u *GradingEventUpdateOne) AppendMistakes(v []string) *GradingEventUpdateOne {
	_u.mutation.AppendMistakes(v)
	return _u
}

// SetMistakeTypes sets the "mistake_types" field.
func (_u *GradingEventUpdateOne) SetMistakeTypes(v []string) *GradingEventUpdateOne {
	_u.mutation.SetMistakeTypes(v)
	return _u
}

// AppendMistakeTypes appends value to the "mistake_types" field.
func (_u *GradingEventUpdateOne) AppendMistakeTypes(v []string) *GradingEventUpdateOne {
	_u.mutation.AppendMistakeTypes(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *GradingEventUpdateOne) SetConfidence(v float64) *GradingEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *GradingEventUpdateOne) SetNillableConfidence(v *float64) *GradingEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *GradingEventUpdateOne) AddConfidence(v float64) *GradingEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSuggestions sets the "suggestions" field.
func (_u *GradingEventUpdateOne) SetSuggestions(v []string) *GradingEventUpdateOne {
	_u.mutation.SetSuggestions(v)
	return _u
}

// AppendSuggestions appends value to the "suggestions" field.
func (_u *GradingEventUpdateOne) AppendSuggestions(v []string) *GradingEventUpdateOne {
	_u.mutation.AppendSuggestions(v)
	return _u
}

// Mutation returns the GradingEventMutation object of the builder.
func (_u *GradingEventUpdateOne) Mutation() *GradingEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GradingEventUpdate builder.
func (_u *GradingEventUpdateOne) Where(ps ...predicate.GradingEvent) *GradingEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradingEventUpdateOne) Select(field string, fields ...string) *GradingEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GradingEvent entity.
func (_u *GradingEventUpdateOne) Save(ctx context.Context) (*GradingEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradingEventUpdateOne) SaveX(ctx context.Context) *GradingEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradingEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradingEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GradingEventUpdateOne) sqlSave(ctx context.Context) (_node *GradingEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(gradingevent.Table, gradingevent.Columns, sqlgraph.NewFieldSpec(gradingevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GradingEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gradingevent.FieldID)
		for _, f := range fields {
			if !gradingevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gradingevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(gradingevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionTitle(); ok {
		_spec.SetField(gradingevent.FieldQuestionTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(gradingevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gradingevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gradingevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(gradingevent.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(gradingevent.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(gradingevent.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(gradingevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mistakes(); ok {
		_spec.SetField(gradingevent.FieldMistakes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMistakes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gradingevent.FieldMistakes, value)
		})
	}
	if value, ok := _u.mutation.MistakeTypes(); ok {
		_spec.SetField(gradingevent.FieldMistakeTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMistakeTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gradingevent.FieldMistakeTypes, value)
		})
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(gradingevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(gradingevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Suggestions(); ok {
		_spec.SetField(gradingevent.FieldSuggestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuggestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, gradingevent.FieldSuggestions, value)
		})
	}
	_node = &GradingEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gradingevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
