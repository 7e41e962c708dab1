// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GradingEventsColumns holds the columns for the "grading_events" table.
	GradingEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "question_id", Type: field.TypeString},
		{Name: "question_title", Type: field.TypeString, Default: ""},
		{Name: "source", Type: field.TypeString, Size: 2147483647},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "max_score", Type: field.TypeFloat64},
		{Name: "summary", Type: field.TypeString, Size: 2147483647},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647},
		{Name: "mistakes", Type: field.TypeJSON},
		{Name: "mistake_types", Type: field.TypeJSON},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "suggestions", Type: field.TypeJSON},
	}
	// GradingEventsTable holds the schema information for the "grading_events" table.
	GradingEventsTable = &schema.Table{
		Name:       "grading_events",
		Columns:    GradingEventsColumns,
		PrimaryKey: []*schema.Column{GradingEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gradingevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{GradingEventsColumns[1]},
			},
			{
				Name:    "gradingevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GradingEventsColumns[2]},
			},
			{
				Name:    "gradingevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{GradingEventsColumns[3]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GradingEventsTable,
		LlmRequestEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
