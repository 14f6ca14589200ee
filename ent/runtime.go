// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Riverstargroup/cultiva-finanzas/ent/achievement"
	"github.com/Riverstargroup/cultiva-finanzas/ent/activityday"
	"github.com/Riverstargroup/cultiva-finanzas/ent/completionevent"
	"github.com/Riverstargroup/cultiva-finanzas/ent/courseprogress"
	"github.com/Riverstargroup/cultiva-finanzas/ent/reviewstate"
	"github.com/Riverstargroup/cultiva-finanzas/ent/schema"
	"github.com/Riverstargroup/cultiva-finanzas/ent/userskill"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementFields := schema.Achievement{}.Fields()
	_ = achievementFields
	// achievementDescUserID is the schema descriptor for user_id field.
	achievementDescUserID := achievementFields[0].Descriptor()
	// achievement.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	achievement.UserIDValidator = achievementDescUserID.Validators[0].(func(string) error)
	// achievementDescBadgeID is the schema descriptor for badge_id field.
	achievementDescBadgeID := achievementFields[1].Descriptor()
	// achievement.BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	achievement.BadgeIDValidator = achievementDescBadgeID.Validators[0].(func(string) error)
	// achievementDescUnlockedAt is the schema descriptor for unlocked_at field.
	achievementDescUnlockedAt := achievementFields[2].Descriptor()
	// achievement.DefaultUnlockedAt holds the default value on creation for the unlocked_at field.
	achievement.DefaultUnlockedAt = achievementDescUnlockedAt.Default.(func() time.Time)
	activitydayFields := schema.ActivityDay{}.Fields()
	_ = activitydayFields
	// activitydayDescUserID is the schema descriptor for user_id field.
	activitydayDescUserID := activitydayFields[0].Descriptor()
	// activityday.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	activityday.UserIDValidator = activitydayDescUserID.Validators[0].(func(string) error)
	// activitydayDescDay is the schema descriptor for day field.
	activitydayDescDay := activitydayFields[1].Descriptor()
	// activityday.DayValidator is a validator for the "day" field. It is called by the builders before save.
	activityday.DayValidator = func() func(string) error {
		validators := activitydayDescDay.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(day string) error {
			for _, fn := range fns {
				if err := fn(day); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// activitydayDescMinutes is the schema descriptor for minutes field.
	activitydayDescMinutes := activitydayFields[2].Descriptor()
	// activityday.DefaultMinutes holds the default value on creation for the minutes field.
	activityday.DefaultMinutes = activitydayDescMinutes.Default.(int)
	// activityday.MinutesValidator is a validator for the "minutes" field. It is called by the builders before save.
	activityday.MinutesValidator = activitydayDescMinutes.Validators[0].(func(int) error)
	// activitydayDescCreatedAt is the schema descriptor for created_at field.
	activitydayDescCreatedAt := activitydayFields[3].Descriptor()
	// activityday.DefaultCreatedAt holds the default value on creation for the created_at field.
	activityday.DefaultCreatedAt = activitydayDescCreatedAt.Default.(func() time.Time)
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventFields[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescUserID is the schema descriptor for user_id field.
	completioneventDescUserID := completioneventFields[2].Descriptor()
	// completionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	completionevent.UserIDValidator = completioneventDescUserID.Validators[0].(func(string) error)
	// completioneventDescCourseID is the schema descriptor for course_id field.
	completioneventDescCourseID := completioneventFields[3].Descriptor()
	// completionevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	completionevent.CourseIDValidator = completioneventDescCourseID.Validators[0].(func(string) error)
	// completioneventDescScenarioID is the schema descriptor for scenario_id field.
	completioneventDescScenarioID := completioneventFields[4].Descriptor()
	// completionevent.ScenarioIDValidator is a validator for the "scenario_id" field. It is called by the builders before save.
	completionevent.ScenarioIDValidator = completioneventDescScenarioID.Validators[0].(func(string) error)
	// completioneventDescQuality is the schema descriptor for quality field.
	completioneventDescQuality := completioneventFields[6].Descriptor()
	// completionevent.QualityValidator is a validator for the "quality" field. It is called by the builders before save.
	completionevent.QualityValidator = completioneventDescQuality.Validators[0].(func(int) error)
	courseprogressFields := schema.CourseProgress{}.Fields()
	_ = courseprogressFields
	// courseprogressDescUserID is the schema descriptor for user_id field.
	courseprogressDescUserID := courseprogressFields[0].Descriptor()
	// courseprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	courseprogress.UserIDValidator = courseprogressDescUserID.Validators[0].(func(string) error)
	// courseprogressDescCourseID is the schema descriptor for course_id field.
	courseprogressDescCourseID := courseprogressFields[1].Descriptor()
	// courseprogress.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	courseprogress.CourseIDValidator = courseprogressDescCourseID.Validators[0].(func(string) error)
	// courseprogressDescMasteryScore is the schema descriptor for mastery_score field.
	courseprogressDescMasteryScore := courseprogressFields[3].Descriptor()
	// courseprogress.DefaultMasteryScore holds the default value on creation for the mastery_score field.
	courseprogress.DefaultMasteryScore = courseprogressDescMasteryScore.Default.(float64)
	// courseprogressDescStartedAt is the schema descriptor for started_at field.
	courseprogressDescStartedAt := courseprogressFields[4].Descriptor()
	// courseprogress.DefaultStartedAt holds the default value on creation for the started_at field.
	courseprogress.DefaultStartedAt = courseprogressDescStartedAt.Default.(func() time.Time)
	// courseprogressDescUpdatedAt is the schema descriptor for updated_at field.
	courseprogressDescUpdatedAt := courseprogressFields[6].Descriptor()
	// courseprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	courseprogress.DefaultUpdatedAt = courseprogressDescUpdatedAt.Default.(func() time.Time)
	// courseprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	courseprogress.UpdateDefaultUpdatedAt = courseprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	reviewstateFields := schema.ReviewState{}.Fields()
	_ = reviewstateFields
	// reviewstateDescUserID is the schema descriptor for user_id field.
	reviewstateDescUserID := reviewstateFields[0].Descriptor()
	// reviewstate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewstate.UserIDValidator = reviewstateDescUserID.Validators[0].(func(string) error)
	// reviewstateDescCourseID is the schema descriptor for course_id field.
	reviewstateDescCourseID := reviewstateFields[1].Descriptor()
	// reviewstate.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	reviewstate.CourseIDValidator = reviewstateDescCourseID.Validators[0].(func(string) error)
	// reviewstateDescScenarioID is the schema descriptor for scenario_id field.
	reviewstateDescScenarioID := reviewstateFields[2].Descriptor()
	// reviewstate.ScenarioIDValidator is a validator for the "scenario_id" field. It is called by the builders before save.
	reviewstate.ScenarioIDValidator = reviewstateDescScenarioID.Validators[0].(func(string) error)
	// reviewstateDescRepetitions is the schema descriptor for repetitions field.
	reviewstateDescRepetitions := reviewstateFields[3].Descriptor()
	// reviewstate.DefaultRepetitions holds the default value on creation for the repetitions field.
	reviewstate.DefaultRepetitions = reviewstateDescRepetitions.Default.(int)
	// reviewstate.RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	reviewstate.RepetitionsValidator = reviewstateDescRepetitions.Validators[0].(func(int) error)
	// reviewstateDescIntervalDays is the schema descriptor for interval_days field.
	reviewstateDescIntervalDays := reviewstateFields[4].Descriptor()
	// reviewstate.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewstate.DefaultIntervalDays = reviewstateDescIntervalDays.Default.(int)
	// reviewstate.IntervalDaysValidator is a validator for the "interval_days" field. It is called by the builders before save.
	reviewstate.IntervalDaysValidator = reviewstateDescIntervalDays.Validators[0].(func(int) error)
	// reviewstateDescEaseFactor is the schema descriptor for ease_factor field.
	reviewstateDescEaseFactor := reviewstateFields[5].Descriptor()
	// reviewstate.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	reviewstate.DefaultEaseFactor = reviewstateDescEaseFactor.Default.(float64)
	// reviewstate.EaseFactorValidator is a validator for the "ease_factor" field. It is called by the builders before save.
	reviewstate.EaseFactorValidator = reviewstateDescEaseFactor.Validators[0].(func(float64) error)
	// reviewstateDescLastQuality is the schema descriptor for last_quality field.
	reviewstateDescLastQuality := reviewstateFields[7].Descriptor()
	// reviewstate.DefaultLastQuality holds the default value on creation for the last_quality field.
	reviewstate.DefaultLastQuality = reviewstateDescLastQuality.Default.(int)
	// reviewstate.LastQualityValidator is a validator for the "last_quality" field. It is called by the builders before save.
	reviewstate.LastQualityValidator = reviewstateDescLastQuality.Validators[0].(func(int) error)
	// reviewstateDescLastScore is the schema descriptor for last_score field.
	reviewstateDescLastScore := reviewstateFields[8].Descriptor()
	// reviewstate.DefaultLastScore holds the default value on creation for the last_score field.
	reviewstate.DefaultLastScore = reviewstateDescLastScore.Default.(float64)
	// reviewstateDescUpdatedAt is the schema descriptor for updated_at field.
	reviewstateDescUpdatedAt := reviewstateFields[10].Descriptor()
	// reviewstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reviewstate.DefaultUpdatedAt = reviewstateDescUpdatedAt.Default.(func() time.Time)
	// reviewstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reviewstate.UpdateDefaultUpdatedAt = reviewstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	userskillFields := schema.UserSkill{}.Fields()
	_ = userskillFields
	// userskillDescUserID is the schema descriptor for user_id field.
	userskillDescUserID := userskillFields[0].Descriptor()
	// userskill.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userskill.UserIDValidator = userskillDescUserID.Validators[0].(func(string) error)
	// userskillDescSkillID is the schema descriptor for skill_id field.
	userskillDescSkillID := userskillFields[1].Descriptor()
	// userskill.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	userskill.SkillIDValidator = userskillDescSkillID.Validators[0].(func(string) error)
	// userskillDescMastery is the schema descriptor for mastery field.
	userskillDescMastery := userskillFields[2].Descriptor()
	// userskill.DefaultMastery holds the default value on creation for the mastery field.
	userskill.DefaultMastery = userskillDescMastery.Default.(float64)
	// userskill.MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	userskill.MasteryValidator = func() func(float64) error {
		validators := userskillDescMastery.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(mastery float64) error {
			for _, fn := range fns {
				if err := fn(mastery); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userskillDescStatus is the schema descriptor for status field.
	userskillDescStatus := userskillFields[3].Descriptor()
	// userskill.DefaultStatus holds the default value on creation for the status field.
	userskill.DefaultStatus = userskillDescStatus.Default.(string)
	// userskillDescUpdatedAt is the schema descriptor for updated_at field.
	userskillDescUpdatedAt := userskillFields[4].Descriptor()
	// userskill.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userskill.DefaultUpdatedAt = userskillDescUpdatedAt.Default.(func() time.Time)
	// userskill.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userskill.UpdateDefaultUpdatedAt = userskillDescUpdatedAt.UpdateDefault.(func() time.Time)
}
