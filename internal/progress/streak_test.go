package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Riverstargroup/cultiva-finanzas/internal/store"
)

type fixedActivityRepo struct {
	days []store.ActivityRecord
}

func (f *fixedActivityRepo) GetDay(_ context.Context, _ string, day string) (*store.ActivityRecord, error) {
	for _, d := range f.days {
		if d.Day == day {
			rec := d
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fixedActivityRepo) AddMinutes(_ context.Context, _ string, day string, minutes int) error {
	for i := range f.days {
		if f.days[i].Day == day {
			f.days[i].Minutes += minutes
			return nil
		}
	}
	f.days = append(f.days, store.ActivityRecord{Day: day, Minutes: minutes})
	return nil
}

func (f *fixedActivityRepo) ListRecent(_ context.Context, _ string, limit int) ([]store.ActivityRecord, error) {
	if len(f.days) > limit {
		return f.days[:limit], nil
	}
	return f.days, nil
}

func TestDayKey_TimezoneBoundary(t *testing.T) {
	mx, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)

	// 04:30 UTC on the 12th is still the evening of the 11th in CDMX.
	utcLate := time.Date(2026, 3, 12, 4, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-11", DayKey(utcLate, mx))
	assert.Equal(t, "2026-03-12", DayKey(utcLate, time.UTC))
}

func TestComputeStreak(t *testing.T) {
	now := time.Date(2026, 3, 12, 20, 0, 0, 0, time.UTC)
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(dayKeyFormat)
	}

	tests := []struct {
		name string
		days []store.ActivityRecord
		want int
	}{
		{"no activity", nil, 0},
		{"today only", []store.ActivityRecord{{Day: day(0), Minutes: 5}}, 1},
		{
			"three consecutive days ending today",
			[]store.ActivityRecord{
				{Day: day(0), Minutes: 5},
				{Day: day(-1), Minutes: 10},
				{Day: day(-2), Minutes: 5},
			},
			3,
		},
		{
			"yesterday anchor when today idle",
			[]store.ActivityRecord{
				{Day: day(-1), Minutes: 5},
				{Day: day(-2), Minutes: 5},
			},
			2,
		},
		{
			"gap breaks the streak",
			[]store.ActivityRecord{
				{Day: day(0), Minutes: 5},
				{Day: day(-1), Minutes: 5},
				{Day: day(-3), Minutes: 5},
			},
			2,
		},
		{
			"activity only before a two day gap",
			[]store.ActivityRecord{{Day: day(-2), Minutes: 5}},
			0,
		},
		{
			"zero minute day does not count",
			[]store.ActivityRecord{
				{Day: day(0), Minutes: 5},
				{Day: day(-1), Minutes: 0},
				{Day: day(-2), Minutes: 5},
			},
			1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fixedActivityRepo{days: tt.days}
			got, err := ComputeStreak(context.Background(), repo, "u1", now, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeStreak_CapsAtScanWindow(t *testing.T) {
	now := time.Date(2026, 3, 12, 12, 0, 0, 0, time.UTC)
	repo := &fixedActivityRepo{}
	for i := 0; i < 90; i++ {
		repo.days = append(repo.days, store.ActivityRecord{
			Day:     now.AddDate(0, 0, -i).Format(dayKeyFormat),
			Minutes: 5,
		})
	}
	got, err := ComputeStreak(context.Background(), repo, "u1", now, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, streakScanDays, got)
}
