package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the workbench state so an interrupted grading
// session can resume where it left off. The question's reference image
// is deliberately not persisted; only its text fields survive restarts.
type SnapshotData struct {
	Version       int     `json:"version"`
	QuestionID    string  `json:"question_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	TotalMarks    float64 `json:"total_marks"`
	IdealSolution string  `json:"ideal_solution"`
	Source        string  `json:"source"`
}

// Snapshot is a point-in-time capture of the workbench.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages workbench snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// UsageStat aggregates LLM usage for one purpose label.
type UsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// GradingEventData captures one completed grading call.
type GradingEventData struct {
	QuestionID    string
	QuestionTitle string
	Source        string
	Score         float64
	MaxScore      float64
	Summary       string
	Feedback      string
	Mistakes      []string
	MistakeTypes  []string
	Confidence    float64
	Suggestions   []string
}

// GradingRecord is a stored grading event.
type GradingRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	GradingEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]UsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendGrading records a completed grading call.
	AppendGrading(ctx context.Context, data GradingEventData) error

	// ListGradings returns grading events, newest first.
	ListGradings(ctx context.Context, opts QueryOpts) ([]GradingRecord, error)
}
