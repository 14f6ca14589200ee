// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AchievementsColumns holds the columns for the "achievements" table.
	AchievementsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "badge_id", Type: field.TypeString},
		{Name: "unlocked_at", Type: field.TypeTime},
	}
	// AchievementsTable holds the schema information for the "achievements" table.
	AchievementsTable = &schema.Table{
		Name:       "achievements",
		Columns:    AchievementsColumns,
		PrimaryKey: []*schema.Column{AchievementsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "achievement_user_id_badge_id",
				Unique:  true,
				Columns: []*schema.Column{AchievementsColumns[1], AchievementsColumns[2]},
			},
		},
	}
	// ActivityDaysColumns holds the columns for the "activity_days" table.
	ActivityDaysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "day", Type: field.TypeString, Size: 10},
		{Name: "minutes", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ActivityDaysTable holds the schema information for the "activity_days" table.
	ActivityDaysTable = &schema.Table{
		Name:       "activity_days",
		Columns:    ActivityDaysColumns,
		PrimaryKey: []*schema.Column{ActivityDaysColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activityday_user_id_day",
				Unique:  true,
				Columns: []*schema.Column{ActivityDaysColumns[1], ActivityDaysColumns[2]},
			},
		},
	}
	// CompletionEventsColumns holds the columns for the "completion_events" table.
	CompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "scenario_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "quality", Type: field.TypeInt},
		{Name: "first_completion", Type: field.TypeBool},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// CompletionEventsTable holds the schema information for the "completion_events" table.
	CompletionEventsTable = &schema.Table{
		Name:       "completion_events",
		Columns:    CompletionEventsColumns,
		PrimaryKey: []*schema.Column{CompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[1]},
			},
			{
				Name:    "completionevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[3], CompletionEventsColumns[2]},
			},
		},
	}
	// CourseProgressesColumns holds the columns for the "course_progresses" table.
	CourseProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "completed_scenarios", Type: field.TypeJSON},
		{Name: "mastery_score", Type: field.TypeFloat64, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CourseProgressesTable holds the schema information for the "course_progresses" table.
	CourseProgressesTable = &schema.Table{
		Name:       "course_progresses",
		Columns:    CourseProgressesColumns,
		PrimaryKey: []*schema.Column{CourseProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "courseprogress_user_id_course_id",
				Unique:  true,
				Columns: []*schema.Column{CourseProgressesColumns[1], CourseProgressesColumns[2]},
			},
		},
	}
	// ReviewStatesColumns holds the columns for the "review_states" table.
	ReviewStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "course_id", Type: field.TypeString},
		{Name: "scenario_id", Type: field.TypeString},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "next_due_at", Type: field.TypeTime},
		{Name: "last_quality", Type: field.TypeInt, Default: 0},
		{Name: "last_score", Type: field.TypeFloat64, Default: 0},
		{Name: "last_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReviewStatesTable holds the schema information for the "review_states" table.
	ReviewStatesTable = &schema.Table{
		Name:       "review_states",
		Columns:    ReviewStatesColumns,
		PrimaryKey: []*schema.Column{ReviewStatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewstate_user_id_scenario_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewStatesColumns[1], ReviewStatesColumns[3]},
			},
			{
				Name:    "reviewstate_user_id_next_due_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewStatesColumns[1], ReviewStatesColumns[7]},
			},
		},
	}
	// UserSkillsColumns holds the columns for the "user_skills" table.
	UserSkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "mastery", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "unlocked"},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserSkillsTable holds the schema information for the "user_skills" table.
	UserSkillsTable = &schema.Table{
		Name:       "user_skills",
		Columns:    UserSkillsColumns,
		PrimaryKey: []*schema.Column{UserSkillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userskill_user_id_skill_id",
				Unique:  true,
				Columns: []*schema.Column{UserSkillsColumns[1], UserSkillsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AchievementsTable,
		ActivityDaysTable,
		CompletionEventsTable,
		CourseProgressesTable,
		ReviewStatesTable,
		UserSkillsTable,
	}
)

func init() {
}
