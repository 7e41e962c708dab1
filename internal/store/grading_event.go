package store

import (
	"context"
	"fmt"

	"github.com/abhisek/gradepad/ent"
	"github.com/abhisek/gradepad/ent/gradingevent"
)

func (r *eventRepo) AppendGrading(ctx context.Context, data GradingEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.GradingEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(data.QuestionID).
		SetQuestionTitle(data.QuestionTitle).
		SetSource(data.Source).
		SetScore(data.Score).
		SetMaxScore(data.MaxScore).
		SetSummary(data.Summary).
		SetFeedback(data.Feedback).
		SetMistakes(data.Mistakes).
		SetMistakeTypes(data.MistakeTypes).
		SetConfidence(data.Confidence).
		SetSuggestions(data.Suggestions).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save grading event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListGradings(ctx context.Context, opts QueryOpts) ([]GradingRecord, error) {
	query := r.client.GradingEvent.Query().
		Order(ent.Desc(gradingevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(gradingevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(gradingevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(gradingevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(gradingevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query grading events: %w", err)
	}

	records := make([]GradingRecord, len(events))
	for i, e := range events {
		records[i] = GradingRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			GradingEventData: GradingEventData{
				QuestionID:    e.QuestionID,
				QuestionTitle: e.QuestionTitle,
				Source:        e.Source,
				Score:         e.Score,
				MaxScore:      e.MaxScore,
				Summary:       e.Summary,
				Feedback:      e.Feedback,
				Mistakes:      e.Mistakes,
				MistakeTypes:  e.MistakeTypes,
				Confidence:    e.Confidence,
				Suggestions:   e.Suggestions,
			},
		}
	}
	return records, nil
}
