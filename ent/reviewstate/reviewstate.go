// Code generated by ent, DO NOT EDIT.

package reviewstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewstate type in the database.
	Label = "review_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldCourseID holds the string denoting the course_id field in the database.
	FieldCourseID = "course_id"
	// FieldScenarioID holds the string denoting the scenario_id field in the database.
	FieldScenarioID = "scenario_id"
	// FieldRepetitions holds the string denoting the repetitions field in the database.
	FieldRepetitions = "repetitions"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldEaseFactor holds the string denoting the ease_factor field in the database.
	FieldEaseFactor = "ease_factor"
	// FieldNextDueAt holds the string denoting the next_due_at field in the database.
	FieldNextDueAt = "next_due_at"
	// FieldLastQuality holds the string denoting the last_quality field in the database.
	FieldLastQuality = "last_quality"
	// FieldLastScore holds the string denoting the last_score field in the database.
	FieldLastScore = "last_score"
	// FieldLastAttemptAt holds the string denoting the last_attempt_at field in the database.
	FieldLastAttemptAt = "last_attempt_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the reviewstate in the database.
	Table = "review_states"
)

// Columns holds all SQL columns for reviewstate fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldCourseID,
	FieldScenarioID,
	FieldRepetitions,
	FieldIntervalDays,
	FieldEaseFactor,
	FieldNextDueAt,
	FieldLastQuality,
	FieldLastScore,
	FieldLastAttemptAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	CourseIDValidator func(string) error
	// ScenarioIDValidator is a validator for the "scenario_id" field. It is called by the builders before save.
	ScenarioIDValidator func(string) error
	// DefaultRepetitions holds the default value on creation for the "repetitions" field.
	DefaultRepetitions int
	// RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	RepetitionsValidator func(int) error
	// DefaultIntervalDays holds the default value on creation for the "interval_days" field.
	DefaultIntervalDays int
	// IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	IntervalDaysValidator func(int) error
	// DefaultEaseFactor holds the default value on creation for the "ease_factor" field.
	DefaultEaseFactor float64
	// EaseFactorValidator is a validator for the "ease_factor" field. It is called by the builders before save.
	EaseFactorValidator func(float64) error
	// DefaultLastQuality holds the default value on creation for the "last_quality" field.
	DefaultLastQuality int
	// LastQualityValidator is a validator for the "last_quality" field. It is called by the builders before save.
	LastQualityValidator func(int) error
	// DefaultLastScore holds the default value on creation for the "last_score" field.
	DefaultLastScore float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ReviewState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCourseID orders the results by the course_id field.
func ByCourseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCourseID, opts...).ToFunc()
}

// ByScenarioID orders the results by the scenario_id field.
func ByScenarioID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioID, opts...).ToFunc()
}

// ByRepetitions orders the results by the repetitions field.
func ByRepetitions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepetitions, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByEaseFactor orders the results by the ease_factor field.
func ByEaseFactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEaseFactor, opts...).ToFunc()
}

// ByNextDueAt orders the results by the next_due_at field.
func ByNextDueAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextDueAt, opts...).ToFunc()
}

// ByLastQuality orders the results by the last_quality field.
func ByLastQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastQuality, opts...).ToFunc()
}

// ByLastScore orders the results by the last_score field.
func ByLastScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastScore, opts...).ToFunc()
}

// ByLastAttemptAt orders the results by the last_attempt_at field.
func ByLastAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
