package srs

import "fmt"

// Score computes the normalized performance score for a finished scenario.
//
// The decision choice contributes 0.5 when the best option was picked. The
// recall quiz contributes up to 0.5, proportional to correct answers; a
// scenario with no recall questions contributes 0 for that half. The result
// is always within [0, 1].
//
// Malformed counts indicate a caller bug, not a runtime condition, so they
// panic rather than return an error.
func Score(choseBest bool, recallCorrect, recallTotal int) float64 {
	if recallCorrect < 0 || recallTotal < 0 || recallCorrect > recallTotal {
		panic(fmt.Sprintf("srs: invalid recall counts %d/%d", recallCorrect, recallTotal))
	}

	var optionScore float64
	if choseBest {
		optionScore = 0.5
	}

	var recallScore float64
	if recallTotal > 0 {
		recallScore = float64(recallCorrect) / float64(recallTotal) * 0.5
	}

	return optionScore + recallScore
}
