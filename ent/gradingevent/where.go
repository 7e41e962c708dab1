// Code generated by ent, DO NOT EDIT.

package gradingevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/gradepad/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// QuestionID applies equality check predicate on the "question_id" field. It's identical to QuestionIDEQ.
func QuestionID(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionTitle applies equality check predicate on the "question_title" field. It's identical to QuestionTitleEQ.
func QuestionTitle(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldQuestionTitle, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldSource, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldScore, v))
}

// MaxScore applies equality check predicate on the "max_score" field. It's identical to MaxScoreEQ.
func MaxScore(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldMaxScore, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldSummary, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldFeedback, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldConfidence, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldTimestamp, v))
}

// QuestionIDEQ applies the EQ predicate on the "question_id" field.
func QuestionIDEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldQuestionID, v))
}

// QuestionIDNEQ applies the NEQ predicate on the "question_id" field.
func QuestionIDNEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldQuestionID, v))
}

// QuestionIDIn applies the In predicate on the "question_id" field.
func QuestionIDIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldQuestionID, vs...))
}

// QuestionIDNotIn applies the NotIn predicate on the "question_id" field.
func QuestionIDNotIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldQuestionID, vs...))
}

// QuestionIDGT applies the GT predicate on the "question_id" field.
func QuestionIDGT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldQuestionID, v))
}

// QuestionIDGTE applies the GTE predicate on the "question_id" field.
func QuestionIDGTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldQuestionID, v))
}

// QuestionIDLT applies the LT predicate on the "question_id" field.
func QuestionIDLT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldQuestionID, v))
}

// QuestionIDLTE applies the LTE predicate on the "question_id" field.
func QuestionIDLTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldQuestionID, v))
}

// QuestionIDContains applies the Contains predicate on the "question_id" field.
func QuestionIDContains(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContains(FieldQuestionID, v))
}

// QuestionIDHasPrefix applies the HasPrefix predicate on the "question_id" field.
func QuestionIDHasPrefix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasPrefix(FieldQuestionID, v))
}

// QuestionIDHasSuffix applies the HasSuffix predicate on the "question_id" field.
func QuestionIDHasSuffix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasSuffix(FieldQuestionID, v))
}

// QuestionIDEqualFold applies the EqualFold predicate on the "question_id" field.
func QuestionIDEqualFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEqualFold(FieldQuestionID, v))
}

// QuestionIDContainsFold applies the ContainsFold predicate on the "question_id" field.
func QuestionIDContainsFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContainsFold(FieldQuestionID, v))
}

// QuestionTitleEQ applies the EQ predicate on the "question_title" field.
func QuestionTitleEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldQuestionTitle, v))
}

// QuestionTitleNEQ applies the NEQ predicate on the "question_title" field.
func QuestionTitleNEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldQuestionTitle, v))
}

// QuestionTitleIn applies the In predicate on the "question_title" field.
func QuestionTitleIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldQuestionTitle, vs...))
}

// QuestionTitleNotIn applies the NotIn predicate on the "question_title" field.
func QuestionTitleNotIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldQuestionTitle, vs...))
}

// QuestionTitleGT applies the GT predicate on the "question_title" field.
func QuestionTitleGT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldQuestionTitle, v))
}

// QuestionTitleGTE applies the GTE predicate on the "question_title" field.
func QuestionTitleGTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldQuestionTitle, v))
}

// QuestionTitleLT applies the LT predicate on the "question_title" field.
func QuestionTitleLT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldQuestionTitle, v))
}

// QuestionTitleLTE applies the LTE predicate on the "question_title" field.
func QuestionTitleLTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldQuestionTitle, v))
}

// QuestionTitleContains applies the Contains predicate on the "question_title" field.
func QuestionTitleContains(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContains(FieldQuestionTitle, v))
}

// QuestionTitleHasPrefix applies the HasPrefix predicate on the "question_title" field.
func QuestionTitleHasPrefix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasPrefix(FieldQuestionTitle, v))
}

// QuestionTitleHasSuffix applies the HasSuffix predicate on the "question_title" field.
func QuestionTitleHasSuffix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasSuffix(FieldQuestionTitle, v))
}

// QuestionTitleEqualFold applies the EqualFold predicate on the "question_title" field.
func QuestionTitleEqualFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEqualFold(FieldQuestionTitle, v))
}

// QuestionTitleContainsFold applies the ContainsFold predicate on the "question_title" field.
func QuestionTitleContainsFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContainsFold(FieldQuestionTitle, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContainsFold(FieldSource, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldScore, v))
}

// MaxScoreEQ applies the EQ predicate on the "max_score" field.
func MaxScoreEQ(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldMaxScore, v))
}

// MaxScoreNEQ applies the NEQ predicate on the "max_score" field.
func MaxScoreNEQ(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldMaxScore, v))
}

// MaxScoreIn applies the In predicate on the "max_score" field.
func MaxScoreIn(vs ...float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldMaxScore, vs...))
}

// MaxScoreNotIn applies the NotIn predicate on the "max_score" field.
func MaxScoreNotIn(vs ...float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldMaxScore, vs...))
}

// MaxScoreGT applies the GT predicate on the "max_score" field.
func MaxScoreGT(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldMaxScore, v))
}

// MaxScoreGTE applies the GTE predicate on the "max_score" field.
func MaxScoreGTE(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldMaxScore, v))
}

// MaxScoreLT applies the LT predicate on the "max_score" field.
func MaxScoreLT(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldMaxScore, v))
}

// MaxScoreLTE applies the LTE predicate on the "max_score" field.
func MaxScoreLTE(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldMaxScore, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContainsFold(FieldSummary, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldContainsFold(FieldFeedback, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.GradingEvent {
	return predicate.GradingEvent(sql.FieldLTE(FieldConfidence, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GradingEvent) predicate.GradingEvent {
	return predicate.GradingEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GradingEvent) predicate.GradingEvent {
	return predicate.GradingEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GradingEvent) predicate.GradingEvent {
	return predicate.GradingEvent(sql.NotPredicates(p))
}
