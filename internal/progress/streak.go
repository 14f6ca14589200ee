package progress

import (
	"context"
	"time"

	"github.com/Riverstargroup/cultiva-finanzas/internal/store"
)

// dayKeyFormat is the canonical activity day key layout.
const dayKeyFormat = "2006-01-02"

// streakScanDays bounds how far back the streak walk looks. A streak
// longer than this is reported as streakScanDays.
const streakScanDays = 60

// DayKey returns t's calendar day in loc as YYYY-MM-DD. Day boundaries
// are midnight in the profile timezone, so late-night activity counts
// toward the local day it happened on.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayKeyFormat)
}

// ComputeStreak returns the user's consecutive-day activity streak.
//
// The streak anchors on today, or on yesterday when today has no activity
// yet: a user who studied every evening keeps their streak through the next
// morning. From the anchor it walks backwards one day at a time and breaks
// at the first gap. Days with zero recorded minutes do not count.
func ComputeStreak(ctx context.Context, repo store.ActivityRepo, userID string, now time.Time, loc *time.Location) (int, error) {
	recent, err := repo.ListRecent(ctx, userID, streakScanDays)
	if err != nil {
		return 0, err
	}
	active := make(map[string]bool, len(recent))
	for _, rec := range recent {
		if rec.Minutes > 0 {
			active[rec.Day] = true
		}
	}

	anchor := now.In(loc)
	if !active[anchor.Format(dayKeyFormat)] {
		anchor = anchor.AddDate(0, 0, -1)
		if !active[anchor.Format(dayKeyFormat)] {
			return 0, nil
		}
	}

	streak := 0
	for d := anchor; streak < streakScanDays && active[d.Format(dayKeyFormat)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak, nil
}
