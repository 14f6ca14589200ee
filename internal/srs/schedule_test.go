package srs

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestSchedule_FailingQualityResets(t *testing.T) {
	prior := State{Repetitions: 2, IntervalDays: 3, EaseFactor: 2.5}
	res := Schedule(0.0, prior, testNow)

	if res.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", res.Repetitions)
	}
	if res.IntervalDays != 1 {
		t.Errorf("IntervalDays = %d, want 1", res.IntervalDays)
	}
	if res.EaseFactor != 2.5 {
		t.Errorf("EaseFactor = %v, want unchanged 2.5", res.EaseFactor)
	}
	if res.LastQuality != 0 {
		t.Errorf("LastQuality = %d, want 0", res.LastQuality)
	}
}

func TestSchedule_RepetitionProgression(t *testing.T) {
	// Three consecutive perfect completions from the default prior walk the
	// 1 / 3 / round(3*EF) interval ladder.
	res := Schedule(1.0, DefaultState(), testNow)
	if res.Repetitions != 1 || res.IntervalDays != 1 {
		t.Fatalf("first pass: reps=%d interval=%d, want 1/1", res.Repetitions, res.IntervalDays)
	}
	if res.EaseFactor <= 2.5 {
		t.Errorf("EaseFactor = %v, want > 2.5 after quality 5", res.EaseFactor)
	}

	res2 := Schedule(1.0, res.State, testNow)
	if res2.Repetitions != 2 || res2.IntervalDays != 3 {
		t.Fatalf("second pass: reps=%d interval=%d, want 2/3", res2.Repetitions, res2.IntervalDays)
	}

	res3 := Schedule(1.0, res2.State, testNow)
	if res3.Repetitions != 3 {
		t.Errorf("third pass: reps=%d, want 3", res3.Repetitions)
	}
	want := int(res2.EaseFactor*3 + 0.5)
	if res3.IntervalDays != want {
		t.Errorf("third pass: interval=%d, want round(3*%v)=%d", res3.IntervalDays, res2.EaseFactor, want)
	}
}

func TestSchedule_EaseFactorFloor(t *testing.T) {
	// Quality 3 (score 0.6) repeatedly applied drags the ease factor down,
	// but never below 1.3.
	state := State{Repetitions: 0, IntervalDays: 1, EaseFactor: 1.35}
	for i := 0; i < 10; i++ {
		res := Schedule(0.6, state, testNow)
		if res.EaseFactor < 1.3 {
			t.Fatalf("iteration %d: EaseFactor = %v below 1.3", i, res.EaseFactor)
		}
		state = res.State
	}
	if state.EaseFactor != 1.3 {
		t.Errorf("EaseFactor = %v, want clamped to 1.3", state.EaseFactor)
	}
}

func TestSchedule_NextDueAt(t *testing.T) {
	res := Schedule(1.0, DefaultState(), testNow)
	want := testNow.Add(24 * time.Hour)
	if !res.NextDueAt.Equal(want) {
		t.Errorf("NextDueAt = %v, want %v", res.NextDueAt, want)
	}
}

func TestSchedule_Rounding(t *testing.T) {
	res := Schedule(0.875, DefaultState(), testNow)
	if res.LastScore != 0.88 {
		t.Errorf("LastScore = %v, want 0.88", res.LastScore)
	}
	// 0.875*5 = 4.375 rounds to quality 4.
	if res.LastQuality != 4 {
		t.Errorf("LastQuality = %d, want 4", res.LastQuality)
	}
}

func TestSchedule_QualityBoundaries(t *testing.T) {
	tests := []struct {
		score       float64
		wantQuality int
		wantReset   bool
	}{
		{0.0, 0, true},
		{0.2, 1, true},
		{0.5, 3, false}, // 2.5 rounds to 3: passing
		{0.59, 3, false},
		{0.8, 4, false},
		{1.0, 5, false},
	}
	for _, tt := range tests {
		res := Schedule(tt.score, State{Repetitions: 4, IntervalDays: 7, EaseFactor: 2.0}, testNow)
		if res.LastQuality != tt.wantQuality {
			t.Errorf("score %v: quality = %d, want %d", tt.score, res.LastQuality, tt.wantQuality)
		}
		gotReset := res.Repetitions == 0
		if gotReset != tt.wantReset {
			t.Errorf("score %v: reset = %v, want %v", tt.score, gotReset, tt.wantReset)
		}
	}
}
