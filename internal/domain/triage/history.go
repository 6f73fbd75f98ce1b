package triage

import "strings"

// analyzeHistory scores medical-history entries. Each chronic condition adds
// a flat amount; keyword-category bonuses are independent and additive, so a
// single condition can count toward more than one category. The sum is
// capped at the ruleset's history cap. Matched condition names are collected
// title-cased for explanation text.
func (e *RuleEngine) analyzeHistory(history []Condition) *HistoryAnalysis {
	a := &HistoryAnalysis{}

	score := 0
	for _, c := range history {
		name := strings.ToLower(c.Name)
		a.Conditions = append(a.Conditions, name)

		if c.IsChronic {
			a.ChronicCount++
			score += 2
		}

		if matchesAny(name, e.rules.CardiacConditionKeywords) {
			score += 8
			a.CardiacConditions = append(a.CardiacConditions, titleCase(name))
		}
		if matchesAny(name, e.rules.RespiratoryConditionKeywords) {
			score += 6
			a.RespiratoryConditions = append(a.RespiratoryConditions, titleCase(name))
		}
		if matchesAny(name, e.rules.NeuroConditionKeywords) {
			score += 7
			a.NeuroConditions = append(a.NeuroConditions, titleCase(name))
		}
		if matchesAny(name, e.rules.OrthopedicConditionKeywords) {
			score += 6
			a.OrthopedicConditions = append(a.OrthopedicConditions, titleCase(name))
		}
		if matchesAny(name, e.rules.DiabetesKeywords) {
			score += 5
		}
	}

	if score > e.rules.HistoryScoreCap {
		score = e.rules.HistoryScoreCap
	}
	a.Score = score

	a.HasCardiacHistory = len(a.CardiacConditions) > 0
	a.HasRespiratoryHistory = len(a.RespiratoryConditions) > 0
	a.HasNeuroHistory = len(a.NeuroConditions) > 0
	a.HasOrthopedicHistory = len(a.OrthopedicConditions) > 0

	return a
}

// AgeFactor returns the age-based risk adjustment: elderly and pediatric
// patients carry extra baseline risk.
func AgeFactor(age int) int {
	switch {
	case age >= 80:
		return 10
	case age >= 70:
		return 7
	case age >= 60:
		return 5
	case age <= 5:
		return 8
	case age <= 12:
		return 5
	default:
		return 0
	}
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
