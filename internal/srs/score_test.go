package srs

import (
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name          string
		choseBest     bool
		recallCorrect int
		recallTotal   int
		want          float64
	}{
		{"best choice with partial recall", true, 3, 4, 0.875},
		{"wrong choice, no recall quiz", false, 0, 0, 0},
		{"best choice, no recall quiz", true, 0, 0, 0.5},
		{"perfect", true, 2, 2, 1.0},
		{"wrong choice, perfect recall", false, 4, 4, 0.5},
		{"wrong choice, zero recall", false, 0, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.choseBest, tt.recallCorrect, tt.recallTotal)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score(%v, %d, %d) = %v, want %v",
					tt.choseBest, tt.recallCorrect, tt.recallTotal, got, tt.want)
			}
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	for _, best := range []bool{true, false} {
		for total := 0; total <= 5; total++ {
			for correct := 0; correct <= total; correct++ {
				got := Score(best, correct, total)
				if got < 0 || got > 1 {
					t.Errorf("Score(%v, %d, %d) = %v out of [0,1]", best, correct, total, got)
				}
			}
		}
	}
}

func TestScore_PanicsOnMalformedCounts(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for correct > total")
		}
	}()
	Score(true, 3, 2)
}
