// Code generated by ent, DO NOT EDIT.

package reviewstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Riverstargroup/cultiva-finanzas/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldUserID, v))
}

// CourseID applies equality check predicate on the "course_id" field. It's identical to CourseIDEQ.
func CourseID(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldCourseID, v))
}

// ScenarioID applies equality check predicate on the "scenario_id" field. It's identical to ScenarioIDEQ.
func ScenarioID(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldScenarioID, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldRepetitions, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldIntervalDays, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldEaseFactor, v))
}

// NextDueAt applies equality check predicate on the "next_due_at" field. It's identical to NextDueAtEQ.
func NextDueAt(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldNextDueAt, v))
}

// LastQuality applies equality check predicate on the "last_quality" field. It's identical to LastQualityEQ.
func LastQuality(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldLastQuality, v))
}

// LastScore applies equality check predicate on the "last_score" field. It's identical to LastScoreEQ.
func LastScore(v float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldLastScore, v))
}

// LastAttemptAt applies equality check predicate on the "last_attempt_at" field. It's identical to LastAttemptAtEQ.
func LastAttemptAt(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldLastAttemptAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldContainsFold(FieldUserID, v))
}

// CourseIDEQ applies the EQ predicate on the "course_id" field.
func CourseIDEQ(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldCourseID, v))
}

// CourseIDNEQ applies the NEQ predicate on the "course_id" field.
func CourseIDNEQ(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldCourseID, v))
}

// CourseIDIn applies the In predicate on the "course_id" field.
func CourseIDIn(vs ...string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldCourseID, vs...))
}

// CourseIDNotIn applies the NotIn predicate on the "course_id" field.
func CourseIDNotIn(vs ...string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldCourseID, vs...))
}

// CourseIDGT applies the GT predicate on the "course_id" field.
func CourseIDGT(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldCourseID, v))
}

// CourseIDGTE applies the GTE predicate on the "course_id" field.
func CourseIDGTE(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldCourseID, v))
}

// CourseIDLT applies the LT predicate on the "course_id" field.
func CourseIDLT(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldCourseID, v))
}

// CourseIDLTE applies the LTE predicate on the "course_id" field.
func CourseIDLTE(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldCourseID, v))
}

// CourseIDContains applies the Contains predicate on the "course_id" field.
func CourseIDContains(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldContains(FieldCourseID, v))
}

// CourseIDHasPrefix applies the HasPrefix predicate on the "course_id" field.
func CourseIDHasPrefix(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldHasPrefix(FieldCourseID, v))
}

// CourseIDHasSuffix applies the HasSuffix predicate on the "course_id" field.
func CourseIDHasSuffix(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldHasSuffix(FieldCourseID, v))
}

// CourseIDEqualFold applies the EqualFold predicate on the "course_id" field.
func CourseIDEqualFold(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEqualFold(FieldCourseID, v))
}

// CourseIDContainsFold applies the ContainsFold predicate on the "course_id" field.
func CourseIDContainsFold(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldContainsFold(FieldCourseID, v))
}

// ScenarioIDEQ applies the EQ predicate on the "scenario_id" field.
func ScenarioIDEQ(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldScenarioID, v))
}

// ScenarioIDNEQ applies the NEQ predicate on the "scenario_id" field.
func ScenarioIDNEQ(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldScenarioID, v))
}

// ScenarioIDIn applies the In predicate on the "scenario_id" field.
func ScenarioIDIn(vs ...string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldScenarioID, vs...))
}

// ScenarioIDNotIn applies the NotIn predicate on the "scenario_id" field.
func ScenarioIDNotIn(vs ...string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldScenarioID, vs...))
}

// ScenarioIDGT applies the GT predicate on the "scenario_id" field.
func ScenarioIDGT(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldScenarioID, v))
}

// ScenarioIDGTE applies the GTE predicate on the "scenario_id" field.
func ScenarioIDGTE(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldScenarioID, v))
}

// ScenarioIDLT applies the LT predicate on the "scenario_id" field.
func ScenarioIDLT(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldScenarioID, v))
}

// ScenarioIDLTE applies the LTE predicate on the "scenario_id" field.
func ScenarioIDLTE(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldScenarioID, v))
}

// ScenarioIDContains applies the Contains predicate on the "scenario_id" field.
func ScenarioIDContains(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldContains(FieldScenarioID, v))
}

// ScenarioIDHasPrefix applies the HasPrefix predicate on the "scenario_id" field.
func ScenarioIDHasPrefix(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldHasPrefix(FieldScenarioID, v))
}

// ScenarioIDHasSuffix applies the HasSuffix predicate on the "scenario_id" field.
func ScenarioIDHasSuffix(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldHasSuffix(FieldScenarioID, v))
}

// ScenarioIDEqualFold applies the EqualFold predicate on the "scenario_id" field.
func ScenarioIDEqualFold(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEqualFold(FieldScenarioID, v))
}

// ScenarioIDContainsFold applies the ContainsFold predicate on the "scenario_id" field.
func ScenarioIDContainsFold(v string) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldContainsFold(FieldScenarioID, v))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldRepetitions, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldIntervalDays, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldEaseFactor, v))
}

// NextDueAtEQ applies the EQ predicate on the "next_due_at" field.
func NextDueAtEQ(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldNextDueAt, v))
}

// NextDueAtNEQ applies the NEQ predicate on the "next_due_at" field.
func NextDueAtNEQ(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldNextDueAt, v))
}

// NextDueAtIn applies the In predicate on the "next_due_at" field.
func NextDueAtIn(vs ...time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldNextDueAt, vs...))
}

// NextDueAtNotIn applies the NotIn predicate on the "next_due_at" field.
func NextDueAtNotIn(vs ...time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldNextDueAt, vs...))
}

// NextDueAtGT applies the GT predicate on the "next_due_at" field.
func NextDueAtGT(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldNextDueAt, v))
}

// NextDueAtGTE applies the GTE predicate on the "next_due_at" field.
func NextDueAtGTE(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldNextDueAt, v))
}

// NextDueAtLT applies the LT predicate on the "next_due_at" field.
func NextDueAtLT(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldNextDueAt, v))
}

// NextDueAtLTE applies the LTE predicate on the "next_due_at" field.
func NextDueAtLTE(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldNextDueAt, v))
}

// LastQualityEQ applies the EQ predicate on the "last_quality" field.
func LastQualityEQ(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldLastQuality, v))
}

// LastQualityNEQ applies the NEQ predicate on the "last_quality" field.
func LastQualityNEQ(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldLastQuality, v))
}

// LastQualityIn applies the In predicate on the "last_quality" field.
func LastQualityIn(vs ...int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldLastQuality, vs...))
}

// LastQualityNotIn applies the NotIn predicate on the "last_quality" field.
func LastQualityNotIn(vs ...int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldLastQuality, vs...))
}

// LastQualityGT applies the GT predicate on the "last_quality" field.
func LastQualityGT(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldLastQuality, v))
}

// LastQualityGTE applies the GTE predicate on the "last_quality" field.
func LastQualityGTE(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldLastQuality, v))
}

// LastQualityLT applies the LT predicate on the "last_quality" field.
func LastQualityLT(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldLastQuality, v))
}

// LastQualityLTE applies the LTE predicate on the "last_quality" field.
func LastQualityLTE(v int) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldLastQuality, v))
}

// LastScoreEQ applies the EQ predicate on the "last_score" field.
func LastScoreEQ(v float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldLastScore, v))
}

// LastScoreNEQ applies the NEQ predicate on the "last_score" field.
func LastScoreNEQ(v float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldLastScore, v))
}

// LastScoreIn applies the In predicate on the "last_score" field.
func LastScoreIn(vs ...float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldLastScore, vs...))
}

// LastScoreNotIn applies the NotIn predicate on the "last_score" field.
func LastScoreNotIn(vs ...float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldLastScore, vs...))
}

// LastScoreGT applies the GT predicate on the "last_score" field.
func LastScoreGT(v float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldLastScore, v))
}

// LastScoreGTE applies the GTE predicate on the "last_score" field.
func LastScoreGTE(v float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldLastScore, v))
}

// LastScoreLT applies the LT predicate on the "last_score" field.
func LastScoreLT(v float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldLastScore, v))
}

// LastScoreLTE applies the LTE predicate on the "last_score" field.
func LastScoreLTE(v float64) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldLastScore, v))
}

// LastAttemptAtEQ applies the EQ predicate on the "last_attempt_at" field.
func LastAttemptAtEQ(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtNEQ applies the NEQ predicate on the "last_attempt_at" field.
func LastAttemptAtNEQ(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtIn applies the In predicate on the "last_attempt_at" field.
func LastAttemptAtIn(vs ...time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtNotIn applies the NotIn predicate on the "last_attempt_at" field.
func LastAttemptAtNotIn(vs ...time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtGT applies the GT predicate on the "last_attempt_at" field.
func LastAttemptAtGT(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldLastAttemptAt, v))
}

// LastAttemptAtGTE applies the GTE predicate on the "last_attempt_at" field.
func LastAttemptAtGTE(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldLastAttemptAt, v))
}

// LastAttemptAtLT applies the LT predicate on the "last_attempt_at" field.
func LastAttemptAtLT(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldLastAttemptAt, v))
}

// LastAttemptAtLTE applies the LTE predicate on the "last_attempt_at" field.
func LastAttemptAtLTE(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldLastAttemptAt, v))
}

// LastAttemptAtIsNil applies the IsNil predicate on the "last_attempt_at" field.
func LastAttemptAtIsNil() predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIsNull(FieldLastAttemptAt))
}

// LastAttemptAtNotNil applies the NotNil predicate on the "last_attempt_at" field.
func LastAttemptAtNotNil() predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotNull(FieldLastAttemptAt))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReviewState {
	return predicate.ReviewState(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewState) predicate.ReviewState {
	return predicate.ReviewState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewState) predicate.ReviewState {
	return predicate.ReviewState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewState) predicate.ReviewState {
	return predicate.ReviewState(sql.NotPredicates(p))
}
