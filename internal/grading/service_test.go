package grading

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/gradepad/internal/llm"
	"github.com/abhisek/gradepad/internal/question"
)

func validGradingJSON() json.RawMessage {
	return json.RawMessage(`{
		"score": 7,
		"maxScore": 10,
		"summary": "Mostly correct with one sign error.",
		"feedback": "Step 2 drops a sign: $-2x$ becomes $2x$. The method is otherwise sound.",
		"mistakes": ["Sign error in step 2 when moving $-2x$ across the equals sign"],
		"mistakeTypes": ["calculation"],
		"confidence": 0.85,
		"suggestions": ["Check signs when rearranging terms"]
	}`)
}

func testQuestion() question.Context {
	return question.Context{
		ID:          "q-1",
		Title:       "Linear Equations",
		Description: "Solve $3x - 2x = 5$",
		TotalMarks:  10,
	}
}

func awaitOutcome(t *testing.T, svc *Service) *Outcome {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if out, ok := svc.Consume(); ok {
			return out
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for grading outcome")
	return nil
}

func TestGrade_ParsesResult(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validGradingJSON()})
	svc := NewService(mock, DefaultConfig())

	res, err := svc.Grade(t.Context(), Input{Source: "$x=5$", Question: testQuestion()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 7 || res.MaxScore != 10 {
		t.Errorf("unexpected score: %v/%v", res.Score, res.MaxScore)
	}
	if res.Confidence != 0.85 {
		t.Errorf("unexpected confidence: %v", res.Confidence)
	}
	if len(res.Mistakes) != 1 || len(res.MistakeTypes) != 1 {
		t.Errorf("unexpected mistakes: %v / %v", res.Mistakes, res.MistakeTypes)
	}
	if res.MistakeTypes[0] != "calculation" {
		t.Errorf("unexpected mistake type: %q", res.MistakeTypes[0])
	}
}

func TestGrade_MissingMistakeTypesFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"score": 7, "maxScore": 10,
			"summary": "s", "feedback": "f",
			"mistakes": [], "confidence": 0.9, "suggestions": []
		}`),
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Grade(t.Context(), Input{Source: "$x=5$", Question: testQuestion()})
	if err == nil {
		t.Fatal("expected validation failure for missing mistakeTypes")
	}
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestGrade_UnknownMistakeCategoryFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"score": 7, "maxScore": 10,
			"summary": "s", "feedback": "f",
			"mistakes": ["m"], "mistakeTypes": ["sloppy"],
			"confidence": 0.9, "suggestions": []
		}`),
	})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Grade(t.Context(), Input{Source: "$x=5$", Question: testQuestion()}); err == nil {
		t.Fatal("expected validation failure for out-of-set mistake category")
	}
}

func TestGrade_RefImagePrecedesInstructions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validGradingJSON()})
	svc := NewService(mock, DefaultConfig())

	q := testQuestion()
	q.RefImage = &llm.Attachment{Data: []byte{0x89, 'P', 'N', 'G'}, MIMEType: "image/png"}

	if _, err := svc.Grade(t.Context(), Input{Source: "$x=5$", Question: q}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "grading-assessment" {
		t.Error("expected grading-assessment schema on request")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected one message, got %d", len(req.Messages))
	}
	atts := req.Messages[0].Attachments
	if len(atts) != 1 || atts[0].MIMEType != "image/png" {
		t.Errorf("expected reference image attachment, got %+v", atts)
	}
}

func TestGrade_NoRefImageMeansNoAttachment(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validGradingJSON()})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Grade(t.Context(), Input{Source: "$x=5$", Question: testQuestion()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls[0].Messages[0].Attachments) != 0 {
		t.Error("expected no attachments without a reference image")
	}
}

func TestRequest_DeliversOutcome(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validGradingJSON()})
	svc := NewService(mock, DefaultConfig())

	seq := svc.Request(t.Context(), Input{Source: "$x=5$", Question: testQuestion()})
	out := awaitOutcome(t, svc)

	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if out.Seq != seq || out.Result.Seq != seq {
		t.Errorf("sequence mismatch: issued %d, outcome %d, result %d", seq, out.Seq, out.Result.Seq)
	}

	// Consumed outcome does not reappear.
	if _, ok := svc.Consume(); ok {
		t.Error("expected empty pending slot after consume")
	}
}

func TestRequest_ErrorPopulatesOutcome(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{Source: "$x=5$", Question: testQuestion()})
	out := awaitOutcome(t, svc)

	if out.Err == nil {
		t.Fatal("expected error outcome")
	}
	if out.Result != nil {
		t.Error("error outcome must not carry a result")
	}
}

func TestComplete_StaleSequenceDiscarded(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	seq1 := svc.nextSeq()
	seq2 := svc.nextSeq()

	// The superseded call finishes first: its result must be dropped.
	svc.complete(seq1, &Result{Score: 1}, nil)
	if _, ok := svc.Consume(); ok {
		t.Fatal("stale completion must not be delivered")
	}

	svc.complete(seq2, &Result{Score: 2}, nil)
	out, ok := svc.Consume()
	if !ok || out.Result.Score != 2 {
		t.Fatalf("expected latest completion, got %+v (ok=%v)", out, ok)
	}
	if out.Seq != seq2 {
		t.Errorf("expected seq %d, got %d", seq2, out.Seq)
	}
}

func TestComplete_StaleAfterLatestDiscarded(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), DefaultConfig())

	seq1 := svc.nextSeq()
	seq2 := svc.nextSeq()

	// Latest lands first, then the superseded call straggles in.
	svc.complete(seq2, &Result{Score: 2}, nil)
	svc.complete(seq1, &Result{Score: 1}, nil)

	out, ok := svc.Consume()
	if !ok || out.Result.Score != 2 {
		t.Fatalf("straggler must not overwrite the latest outcome, got %+v (ok=%v)", out, ok)
	}
}
