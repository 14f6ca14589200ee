package progress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Riverstargroup/cultiva-finanzas/internal/achievements"
	"github.com/Riverstargroup/cultiva-finanzas/internal/content"
	"github.com/Riverstargroup/cultiva-finanzas/internal/skills"
	"github.com/Riverstargroup/cultiva-finanzas/internal/srs"
	"github.com/Riverstargroup/cultiva-finanzas/internal/store"
)

// defaultMinutesPerCompletion is the study time credited per finished
// scenario. Completions are the only activity signal recorded, so the
// credit is a fixed estimate rather than wall-clock time.
const defaultMinutesPerCompletion = 5

// Deps wires an Orchestrator. Repos, Badges, Skills and Catalog are
// required; the rest default sensibly.
type Deps struct {
	Reviews     store.ReviewRepo
	Progress    store.ProgressRepo
	Activity    store.ActivityRepo
	Completions store.CompletionRepo

	Badges  *achievements.Engine
	Skills  *skills.Updater
	Catalog *content.Catalog

	// Achievements and SkillMastery give read-side views direct repo
	// access; the orchestrator only ever writes through Badges and Skills.
	Achievements store.AchievementRepo
	SkillMastery store.SkillRepo

	// Clock supplies "now"; defaults to time.Now.
	Clock func() time.Time
	// Location is the profile timezone for day boundaries; defaults to
	// time.Local.
	Location *time.Location
	// MinutesPerCompletion overrides the per-completion activity credit.
	MinutesPerCompletion int
	// Cache, when set, is invalidated after every finished attempt.
	Cache  *ViewCache
	Logger *slog.Logger
}

// Orchestrator runs the post-attempt pipeline: scoring, review
// scheduling, course progress, activity, badges, skills and the event
// log, in that order.
type Orchestrator struct {
	deps Deps
}

// NewOrchestrator creates an Orchestrator, applying defaults for the
// optional Deps fields.
func NewOrchestrator(deps Deps) *Orchestrator {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Location == nil {
		deps.Location = time.Local
	}
	if deps.MinutesPerCompletion <= 0 {
		deps.MinutesPerCompletion = defaultMinutesPerCompletion
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Orchestrator{deps: deps}
}

// Attempt is a finished scenario attempt, as reported by the Session.
type Attempt struct {
	UserID    string
	SessionID string
	Scenario  *content.Scenario

	ChoseBest     bool
	RecallCorrect int
	RecallTotal   int
}

// FinishSummary is everything the UI needs to show after an attempt.
type FinishSummary struct {
	Score   float64
	Quality int
	Review  srs.Result

	// FirstCompletion is true when this attempt added the scenario to the
	// completed set; repeats leave progress, skills and mastery untouched.
	FirstCompletion bool
	// CourseCompleted is true when this attempt finished the last
	// remaining scenario of the course.
	CourseCompleted bool

	NewBadges []string
	Streak    int

	// StepErrors collects failures of the non-critical pipeline steps.
	// The attempt still counts; callers decide whether to surface them.
	StepErrors []error
}

// Finish runs the whole post-attempt pipeline. Steps are isolated: one
// failing store write never discards the rest of the attempt. Failures
// land in StepErrors and the summary is returned regardless, so Finish
// only returns an error for an invalid attempt.
func (o *Orchestrator) Finish(ctx context.Context, a Attempt) (*FinishSummary, error) {
	if a.Scenario == nil {
		return nil, fmt.Errorf("finish: nil scenario")
	}
	now := o.deps.Clock()
	sum := &FinishSummary{}
	fail := func(step string, err error) {
		o.deps.Logger.Warn("finish step failed", "step", step, "user", a.UserID,
			"scenario", a.Scenario.ID, "err", err)
		sum.StepErrors = append(sum.StepErrors, fmt.Errorf("%s: %w", step, err))
	}

	sum.Score = srs.Score(a.ChoseBest, a.RecallCorrect, a.RecallTotal)

	// Review scheduling. A missing prior row is the first-encounter case
	// and falls back to the default state; so does a failed read, which
	// at worst restarts that scenario's review chain.
	prior := srs.DefaultState()
	if rec, err := o.deps.Reviews.Get(ctx, a.UserID, a.Scenario.ID); err != nil {
		fail("review read", err)
	} else if rec != nil {
		prior = srs.State{
			Repetitions:  rec.Repetitions,
			IntervalDays: rec.IntervalDays,
			EaseFactor:   rec.EaseFactor,
		}
	}
	sum.Review = srs.Schedule(sum.Score, prior, now)
	sum.Quality = sum.Review.LastQuality

	reviewRec := &store.ReviewRecord{
		UserID:        a.UserID,
		CourseID:      a.Scenario.CourseID,
		ScenarioID:    a.Scenario.ID,
		Repetitions:   sum.Review.Repetitions,
		IntervalDays:  sum.Review.IntervalDays,
		EaseFactor:    sum.Review.EaseFactor,
		NextDueAt:     sum.Review.NextDueAt,
		LastQuality:   sum.Review.LastQuality,
		LastScore:     sum.Review.LastScore,
		LastAttemptAt: &now,
	}
	if err := o.deps.Reviews.Upsert(ctx, reviewRec); err != nil {
		// The review chain is the one piece that cannot be rebuilt from
		// other tables, so this write gets a single retry.
		if err2 := o.deps.Reviews.Upsert(ctx, reviewRec); err2 != nil {
			fail("review write", err2)
		}
	}

	// Course progress.
	total := o.deps.Catalog.ScenarioCount(a.Scenario.CourseID)
	var prog *store.ProgressRecord
	prog, sum.FirstCompletion, _ = o.addCompleted(ctx, a, total, fail)
	if prog != nil && sum.FirstCompletion && len(prog.CompletedScenarios) >= total {
		sum.CourseCompleted = true
	}

	// Activity and streak.
	day := DayKey(now, o.deps.Location)
	if err := o.deps.Activity.AddMinutes(ctx, a.UserID, day, o.deps.MinutesPerCompletion); err != nil {
		fail("activity write", err)
	}
	if streak, err := ComputeStreak(ctx, o.deps.Activity, a.UserID, now, o.deps.Location); err != nil {
		fail("streak read", err)
	} else {
		sum.Streak = streak
	}

	// Badges. The count rules want everything the user ever completed,
	// not just this course; the full-course rule keeps the course-local
	// set.
	actx := achievements.Context{
		TotalScenarios: total,
		ScenarioTags:   a.Scenario.Tags,
		ScenarioTitle:  a.Scenario.Title,
		Streak:         sum.Streak,
	}
	if prog != nil {
		actx.CourseCompleted = prog.CompletedScenarios
		actx.Completed = prog.CompletedScenarios
	}
	if all, err := o.deps.Progress.List(ctx, a.UserID); err != nil {
		fail("progress read", err)
	} else {
		var union []string
		for _, row := range all {
			union = append(union, row.CompletedScenarios...)
		}
		actx.Completed = union
	}
	newBadges, err := o.deps.Badges.Evaluate(ctx, a.UserID, actx)
	if err != nil {
		fail("badges", err)
	}
	sum.NewBadges = newBadges

	// Skill mastery, first completion only.
	if err := o.deps.Skills.UpdateOnCompletion(ctx, a.UserID, a.Scenario.Tags, sum.Score, sum.FirstCompletion); err != nil {
		fail("skills", err)
	}

	// Event log.
	event := store.CompletionRecord{
		Timestamp:       now,
		UserID:          a.UserID,
		CourseID:        a.Scenario.CourseID,
		ScenarioID:      a.Scenario.ID,
		Score:           sum.Review.LastScore,
		Quality:         sum.Quality,
		FirstCompletion: sum.FirstCompletion,
		SessionID:       a.SessionID,
	}
	if err := o.deps.Completions.Append(ctx, event); err != nil {
		fail("event log", err)
	}

	if o.deps.Cache != nil {
		o.deps.Cache.Invalidate()
	}
	return sum, nil
}

func (o *Orchestrator) addCompleted(ctx context.Context, a Attempt, total int, fail func(string, error)) (*store.ProgressRecord, bool, error) {
	prog, newly, err := o.deps.Progress.AddCompleted(ctx, a.UserID, a.Scenario.CourseID, a.Scenario.ID, total)
	if err != nil {
		fail("progress write", err)
		return nil, false, err
	}
	return prog, newly, nil
}

// FinishSession is a convenience wrapper that finishes a completed
// Session through the pipeline.
func (o *Orchestrator) FinishSession(ctx context.Context, userID string, s *Session) (*FinishSummary, error) {
	choseBest, correct, totalRecall, err := s.Result()
	if err != nil {
		return nil, err
	}
	return o.Finish(ctx, Attempt{
		UserID:        userID,
		SessionID:     s.ID(),
		Scenario:      s.Scenario(),
		ChoseBest:     choseBest,
		RecallCorrect: correct,
		RecallTotal:   totalRecall,
	})
}
