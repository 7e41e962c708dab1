// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/gradepad/ent/gradingevent"
)

// GradingEventCreate is the builder for creating a GradingEvent entity.
type GradingEventCreate struct {
	config
	mutation *GradingEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *GradingEventCreate) SetSequence(v int64) *GradingEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *GradingEventCreate) SetTimestamp(v time.Time) *GradingEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *GradingEventCreate) SetNillableTimestamp(v *time.Time) *GradingEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *GradingEventCreate) SetQuestionID(v string) *GradingEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetQuestionTitle sets the "question_title" field.
func (_c *GradingEventCreate) SetQuestionTitle(v string) *GradingEventCreate {
	_c.mutation.SetQuestionTitle(v)
	return _c
}

// SetNillableQuestionTitle sets the "question_title" field if the given value is not nil.
func (_c *GradingEventCreate) SetNillableQuestionTitle(v *string) *GradingEventCreate {
	if v != nil {
		_c.SetQuestionTitle(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *GradingEventCreate) SetSource(v string) *GradingEventCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *GradingEventCreate) SetScore(v float64) *GradingEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *GradingEventCreate) SetMaxScore(v float64) *GradingEventCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *GradingEventCreate) SetSummary(v string) *GradingEventCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *GradingEventCreate) SetFeedback(v string) *GradingEventCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetMistakes sets the "mistakes" field.
func (_c *GradingEventCreate) SetMistakes(v []string) *GradingEventCreate {
	_c.mutation.SetMistakes(v)
	return _c
}

// SetMistakeTypes sets the "mistake_types" field.
func (_c *GradingEventCreate) SetMistakeTypes(v []string) *GradingEventCreate {
	_c.mutation.SetMistakeTypes(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *GradingEventCreate) SetConfidence(v float64) *GradingEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetSuggestions sets the "suggestions" field.
func (_c *GradingEventCreate) SetSuggestions(v []string) *GradingEventCreate {
	_c.mutation.SetSuggestions(v)
	return _c
}

// Mutation returns the GradingEventMutation object of the builder.
func (_c *GradingEventCreate) Mutation() *GradingEventMutation {
	return _c.mutation
}

// Save creates the GradingEvent in the database.
func (_c *GradingEventCreate) Save(ctx context.Context) (*GradingEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradingEventCreate) SaveX(ctx context.Context) *GradingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradingEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradingEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GradingEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := gradingevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionTitle(); !ok {
		v := gradingevent.DefaultQuestionTitle
		_c.mutation.SetQuestionTitle(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradingEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "GradingEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "GradingEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "GradingEvent.question_id"`)}
	}
	if _, ok := _c.mutation.QuestionTitle(); !ok {
		return &ValidationError{Name: "question_title", err: errors.New(`ent: missing required field "GradingEvent.question_title"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "GradingEvent.source"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "GradingEvent.score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`ent: missing required field "GradingEvent.max_score"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "GradingEvent.summary"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "GradingEvent.feedback"`)}
	}
	if _, ok := _c.mutation.Mistakes(); !ok {
		return &ValidationError{Name: "mistakes", err: errors.New(`ent: missing required field "GradingEvent.mistakes"`)}
	}
	if _, ok := _c.mutation.MistakeTypes(); !ok {
		return &ValidationError{Name: "mistake_types", err: errors.New(`ent: missing required field "GradingEvent.mistake_types"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "GradingEvent.confidence"`)}
	}
	if _, ok := _c.mutation.Suggestions(); !ok {
		return &ValidationError{Name: "suggestions", err: errors.New(`ent: missing required field "GradingEvent.suggestions"`)}
	}
	return nil
}

func (_c *GradingEventCreate) sqlSave(ctx context.Context) (*GradingEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GradingEventCreate) createSpec() (*GradingEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &GradingEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gradingevent.Table, sqlgraph.NewFieldSpec(gradingevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(gradingevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(gradingevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(gradingevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.QuestionTitle(); ok {
		_spec.SetField(gradingevent.FieldQuestionTitle, field.TypeString, value)
		_node.QuestionTitle = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(gradingevent.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(gradingevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(gradingevent.FieldMaxScore, field.TypeFloat64, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(gradingevent.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(gradingevent.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.Mistakes(); ok {
		_spec.SetField(gradingevent.FieldMistakes, field.TypeJSON, value)
		_node.Mistakes = value
	}
	if value, ok := _c.mutation.MistakeTypes(); ok {
		_spec.SetField(gradingevent.FieldMistakeTypes, field.TypeJSON, value)
		_node.MistakeTypes = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(gradingevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Suggestions(); ok {
		_spec.SetField(gradingevent.FieldSuggestions, field.TypeJSON, value)
		_node.Suggestions = value
	}
	return _node, _spec
}

// GradingEventCreateBulk is the builder for creating many GradingEvent entities in bulk.
type GradingEventCreateBulk struct {
	config
	err      error
	builders []*GradingEventCreate
}

// Save creates the GradingEvent entities in the database.
func (_c *GradingEventCreateBulk) Save(ctx context.Context) ([]*GradingEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GradingEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradingEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GradingEventCreateBulk) SaveX(ctx context.Context) []*GradingEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradingEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradingEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
