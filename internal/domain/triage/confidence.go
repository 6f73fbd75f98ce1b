package triage

import "math"

// estimateConfidence derives the confidence metrics for a scored decision.
// Data completeness counts the three evidence sources (vitals always count
// because defaults exist); decision clarity is the gap between the top two
// department scores.
func estimateConfidence(sa *SymptomAnalysis, va *VitalsAnalysis, ha *HistoryAnalysis, scores map[string]float64) Confidence {
	present := 1 // vitals
	if sa.TotalSymptoms > 0 {
		present++
	}
	if len(ha.Conditions) > 0 {
		present++
	}
	completeness := float64(present) / 3.0

	top, second := topTwoScores(scores)
	clarity := top - second

	return Confidence{
		Overall:               round3(0.6*completeness + 0.4*clarity),
		DataCompleteness:      round3(completeness),
		DecisionClarity:       round3(clarity),
		HasCriticalIndicators: len(sa.CriticalSymptoms) > 0 || va.HasCriticalBP,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
