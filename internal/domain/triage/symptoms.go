package triage

import (
	"fmt"
	"strings"
)

// analyzeSymptoms scores the symptom list and derives the categorical flags
// used by the department scorer. Each symptom contributes a severity-tier
// amount plus fixed bonuses when its name matches a critical keyword set;
// the sum is capped at the ruleset's symptom cap. An empty list yields a
// zero score with every flag false.
func (e *RuleEngine) analyzeSymptoms(symptoms []Symptom) *SymptomAnalysis {
	a := &SymptomAnalysis{TotalSymptoms: len(symptoms)}

	score := 0
	for _, s := range symptoms {
		name := strings.ToLower(s.Name)

		// Severity outside 1-5 is a malformed entry: it contributes no
		// severity score but keyword bonuses still apply.
		switch s.Severity {
		case 5:
			score += 10
			a.CriticalSymptoms = append(a.CriticalSymptoms, fmt.Sprintf("%s (severity 5)", name))
			a.SeverityFive = append(a.SeverityFive, name)
		case 4:
			score += 7
		case 3:
			score += 5
		case 2:
			score += 3
		case 1:
			score++
		}

		if matchesAny(name, e.rules.ChestPainKeywords) {
			score += 15
			a.CriticalSymptoms = append(a.CriticalSymptoms, fmt.Sprintf("%s (CARDIAC ALERT)", name))
			a.HasChestPain = true
			if validSeverity(s.Severity) && s.Severity > a.MaxChestPainSeverity {
				a.MaxChestPainSeverity = s.Severity
			}
		}
		if matchesAny(name, e.rules.SeizureKeywords) {
			score += 15
			a.CriticalSymptoms = append(a.CriticalSymptoms, fmt.Sprintf("%s (NEURO ALERT)", name))
		}
		if matchesAny(name, e.rules.ConsciousnessKeywords) {
			score += 15
			a.CriticalSymptoms = append(a.CriticalSymptoms, fmt.Sprintf("%s (CRITICAL)", name))
		}
		if matchesAny(name, e.rules.BreathingKeywords) {
			score += 12
			a.CriticalSymptoms = append(a.CriticalSymptoms, fmt.Sprintf("%s (RESPIRATORY ALERT)", name))
		}

		if matchesAny(name, e.rules.SeizureFlagKeywords) {
			a.HasSeizures = true
		}
		if matchesAny(name, e.rules.RespiratoryKeywords) {
			a.HasRespiratory = true
		}
		if matchesAny(name, e.rules.NeuroKeywords) {
			a.HasNeuro = true
		}
		if matchesAny(name, e.rules.OrthopedicKeywords) {
			a.HasOrthopedic = true
			a.OrthopedicSymptoms = append(a.OrthopedicSymptoms, s.Name)
		}
	}

	if score > e.rules.SymptomScoreCap {
		score = e.rules.SymptomScoreCap
	}
	a.Score = score
	return a
}

// validSeverity reports whether a symptom grade is within the 1-5 scale.
// Anything outside is a malformed entry and must not feed severity-based
// rules anywhere in the engine.
func validSeverity(s int) bool {
	return s >= 1 && s <= 5
}

// matchesAny reports whether text contains any of the keywords.
// Keywords are stored lowercase; callers lowercase the text once.
func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
