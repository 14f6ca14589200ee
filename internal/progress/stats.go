package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/Riverstargroup/cultiva-finanzas/internal/achievements"
	"github.com/Riverstargroup/cultiva-finanzas/internal/skills"
)

// dayLabels are the short Spanish weekday names, indexed by time.Weekday.
var dayLabels = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// DayActivity is one bar of the weekly activity chart.
type DayActivity struct {
	Day     string // YYYY-MM-DD
	Label   string // short Spanish weekday name
	Minutes int
}

// Dashboard is the aggregated stats snapshot for the main screen.
type Dashboard struct {
	CompletedScenarios int
	TotalScenarios     int
	CoursesCompleted   int
	TotalMinutes       int
	Streak             int
	BadgesUnlocked     int
	BadgesTotal        int
	SkillsMastered     int

	// Week holds the last seven days, oldest first, today last. Days
	// without activity appear with zero minutes.
	Week []DayActivity

	// Generation is the cache generation the snapshot was taken at.
	Generation int64
}

// Stats builds read-side views over the same repos the orchestrator
// writes to.
type Stats struct {
	deps Deps
}

// NewStats creates a Stats view with the same dependency set as the
// orchestrator.
func NewStats(deps Deps) *Stats {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Location == nil {
		deps.Location = time.Local
	}
	return &Stats{deps: deps}
}

// Dashboard assembles the stats snapshot for the user. Unlike Finish it
// fails fast: a broken read means there is nothing useful to show.
func (s *Stats) Dashboard(ctx context.Context, userID string) (*Dashboard, error) {
	now := s.deps.Clock()
	d := &Dashboard{BadgesTotal: len(achievements.Catalog())}
	if s.deps.Cache != nil {
		d.Generation = s.deps.Cache.Generation()
	}

	for _, c := range s.deps.Catalog.Courses() {
		d.TotalScenarios += len(c.Scenarios)
	}

	rows, err := s.deps.Progress.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	for _, row := range rows {
		d.CompletedScenarios += len(row.CompletedScenarios)
		if row.CompletedAt != nil {
			d.CoursesCompleted++
		}
	}

	recent, err := s.deps.Activity.ListRecent(ctx, userID, streakScanDays)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	byDay := make(map[string]int, len(recent))
	for _, rec := range recent {
		d.TotalMinutes += rec.Minutes
		byDay[rec.Day] = rec.Minutes
	}

	d.Week = make([]DayActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.In(s.deps.Location).AddDate(0, 0, -i)
		key := day.Format(dayKeyFormat)
		d.Week = append(d.Week, DayActivity{
			Day:     key,
			Label:   dayLabels[day.Weekday()],
			Minutes: byDay[key],
		})
	}

	d.Streak, err = ComputeStreak(ctx, s.deps.Activity, userID, now, s.deps.Location)
	if err != nil {
		return nil, fmt.Errorf("compute streak: %w", err)
	}

	badges, err := s.deps.Achievements.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	d.BadgesUnlocked = len(badges)

	skillRows, err := s.deps.SkillMastery.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	for _, row := range skillRows {
		if row.Status == skills.StatusMastered {
			d.SkillsMastered++
		}
	}

	return d, nil
}
