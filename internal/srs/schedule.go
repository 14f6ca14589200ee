// Package srs implements the scoring and SM-2 review scheduling core of the
// learning engine. Everything here is pure: identical inputs and a fixed
// "now" produce identical outputs, which keeps the scheduler testable
// without a store.
package srs

import (
	"math"
	"time"
)

// State is the prior scheduling state for one (user, scenario) pair.
type State struct {
	Repetitions  int
	IntervalDays int
	EaseFactor   float64
}

// Result is the next scheduling state produced by Schedule.
type Result struct {
	State
	NextDueAt   time.Time
	LastQuality int
	LastScore   float64
}

// DefaultState is the prior for a never-seen scenario.
func DefaultState() State {
	return State{Repetitions: 0, IntervalDays: 1, EaseFactor: 2.5}
}

// Schedule runs the SM-2 variant over a performance score and the prior
// state. Quality below 3 resets the repetition chain to a one-day interval
// and leaves the ease factor untouched; otherwise the repetition count
// grows, the interval follows the 1/3/interval*EF ladder and the ease
// factor is nudged by the standard SM-2 formula, floored at 1.3.
func Schedule(score float64, prior State, now time.Time) Result {
	quality := int(math.Round(score * 5))

	repetitions := prior.Repetitions
	intervalDays := prior.IntervalDays
	easeFactor := prior.EaseFactor

	if quality < 3 {
		repetitions = 0
		intervalDays = 1
	} else {
		repetitions++
		switch repetitions {
		case 1:
			intervalDays = 1
		case 2:
			intervalDays = 3
		default:
			intervalDays = int(math.Round(float64(intervalDays) * easeFactor))
		}
		q := float64(quality)
		easeFactor = math.Max(1.3, easeFactor+(0.1-(5-q)*(0.08+(5-q)*0.02)))
	}

	return Result{
		State: State{
			Repetitions:  repetitions,
			IntervalDays: intervalDays,
			EaseFactor:   round2(easeFactor),
		},
		NextDueAt:   now.Add(time.Duration(intervalDays) * 24 * time.Hour),
		LastQuality: quality,
		LastScore:   round2(score),
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
