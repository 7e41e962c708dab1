// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gradepad/ent/gradingevent"
)

// GradingEvent is the model entity for the GradingEvent schema.
type GradingEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Client-generated question identifier
	QuestionID string `json:"question_id,omitempty"`
	// Question title at grading time
	QuestionTitle string `json:"question_title,omitempty"`
	// LaTeX source that was graded
	Source string `json:"source,omitempty"`
	// Marks awarded
	Score float64 `json:"score,omitempty"`
	// Total marks available
	MaxScore float64 `json:"max_score,omitempty"`
	// Overall verdict
	Summary string `json:"summary,omitempty"`
	// Step-by-step feedback
	Feedback string `json:"feedback,omitempty"`
	// Mistake descriptions
	Mistakes []string `json:"mistakes,omitempty"`
	// Mistake categories, aligned with mistakes
	MistakeTypes []string `json:"mistake_types,omitempty"`
	// Grader confidence in [0,1]
	Confidence float64 `json:"confidence,omitempty"`
	// Improvement suggestions
	Suggestions  []string `json:"suggestions,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GradingEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gradingevent.FieldMistakes, gradingevent.FieldMistakeTypes, gradingevent.FieldSuggestions:
			values[i] = new([]byte)
		case gradingevent.FieldScore, gradingevent.FieldMaxScore, gradingevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case gradingevent.FieldID, gradingevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case gradingevent.FieldQuestionID, gradingevent.FieldQuestionTitle, gradingevent.FieldSource, gradingevent.FieldSummary, gradingevent.FieldFeedback:
			values[i] = new(sql.NullString)
		case gradingevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GradingEvent fields.
func (_m *GradingEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gradingevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gradingevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case gradingevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case gradingevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				_m.QuestionID = value.String
			}
		case gradingevent.FieldQuestionTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_title", values[i])
			} else if value.Valid {
				_m.QuestionTitle = value.String
			}
		case gradingevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case gradingevent.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case gradingevent.FieldMaxScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_score", values[i])
			} else if value.Valid {
				_m.MaxScore = value.Float64
			}
		case gradingevent.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case gradingevent.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		case gradingevent.FieldMistakes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mistakes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Mistakes); err != nil {
					return fmt.Errorf("unmarshal field mistakes: %w", err)
				}
			}
		case gradingevent.FieldMistakeTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field mistake_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MistakeTypes); err != nil {
					return fmt.Errorf("unmarshal field mistake_types: %w", err)
				}
			}
		case gradingevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case gradingevent.FieldSuggestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field suggestions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Suggestions); err != nil {
					return fmt.Errorf("unmarshal field suggestions: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GradingEvent.
// This includes values selected through modifiers, order, etc.
func (_m *GradingEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GradingEvent.
// Note that you need to call GradingEvent.Unwrap() before calling this method if this GradingEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GradingEvent) Update() *GradingEventUpdateOne {
	return NewGradingEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GradingEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GradingEvent) Unwrap() *GradingEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GradingEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GradingEvent) String() string {
	var builder strings.Builder
	builder.WriteString("GradingEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(_m.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("question_title=")
	builder.WriteString(_m.QuestionTitle)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("max_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxScore))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteString(", ")
	builder.WriteString("mistakes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mistakes))
	builder.WriteString(", ")
	builder.WriteString("mistake_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.MistakeTypes))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("suggestions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Suggestions))
	builder.WriteByte(')')
	return builder.String()
}

// GradingEvents is a parsable slice of GradingEvent.
type GradingEvents []*GradingEvent
