package triage

import "fmt"

// analyzeVitals scores the four vital signs against their threshold ladders.
// Ladders are independent and additive across vitals, but within a single
// vital only the first matching tier fires (checked in descending severity
// order). The sum is capped at the ruleset's vitals cap. Vitals are assumed
// normalized, so defaults are already in place and contribute zero.
func (e *RuleEngine) analyzeVitals(v *Vitals) *VitalsAnalysis {
	sys := *v.BPSystolic
	dia := *v.BPDiastolic
	hr := *v.HeartRate
	temp := *v.Temperature

	a := &VitalsAnalysis{
		BPSystolic:  sys,
		BPDiastolic: dia,
		HeartRate:   hr,
		Temperature: temp,
	}

	score := 0

	switch {
	case sys >= 180:
		score += 10
		a.AbnormalVitals = append(a.AbnormalVitals, fmt.Sprintf("BP %d/%d (HYPERTENSIVE CRISIS)", sys, dia))
	case sys >= 160:
		score += 7
		a.AbnormalVitals = append(a.AbnormalVitals, fmt.Sprintf("BP %d/%d (Stage 2 Hypertension)", sys, dia))
	case sys >= 140:
		score += 5
		a.AbnormalVitals = append(a.AbnormalVitals, fmt.Sprintf("BP %d/%d (Stage 1 Hypertension)", sys, dia))
	case sys < 90:
		score += 8
		a.AbnormalVitals = append(a.AbnormalVitals, fmt.Sprintf("BP %d/%d (HYPOTENSION)", sys, dia))
	}

	switch {
	case dia >= 110:
		score += 8
		if !containsBPNote(a.AbnormalVitals) {
			a.AbnormalVitals = append(a.AbnormalVitals, fmt.Sprintf("BP %d/%d (CRITICAL)", sys, dia))
		}
	case dia >= 100:
		score += 5
	case dia >= 90:
		score += 3
	}

	switch {
	case hr >= 120:
		score += 10
		a.AbnormalVitals = append(a.AbnormalVitals, fmt.Sprintf("HR %d (SEVERE TACHYCARDIA)", hr))
	case hr >= 100:
		score += 7
		a.AbnormalVitals = append(a.AbnormalVitals, fmt.Sprintf("HR %d (Tachycardia)", hr))
	case hr < 60:
		score += 5
		a.AbnormalVitals = append(a.AbnormalVitals, fmt.Sprintf("HR %d (Bradycardia)", hr))
	}

	switch {
	case temp >= 102:
		score += 8
		a.AbnormalVitals = append(a.AbnormalVitals, fmt.Sprintf("Temp %.1f°F (HIGH FEVER)", temp))
	case temp >= 100:
		score += 5
		a.AbnormalVitals = append(a.AbnormalVitals, fmt.Sprintf("Temp %.1f°F (Fever)", temp))
	case temp < 96:
		score += 5
		a.AbnormalVitals = append(a.AbnormalVitals, fmt.Sprintf("Temp %.1f°F (Hypothermia)", temp))
	}

	if score > e.rules.VitalsScoreCap {
		score = e.rules.VitalsScoreCap
	}
	a.Score = score

	a.HasCriticalBP = sys >= 180 || dia >= 110
	a.HasCriticalHR = hr >= 120 || hr < 50
	a.HasFever = temp >= 100

	return a
}

func containsBPNote(notes []string) bool {
	for _, n := range notes {
		if len(n) >= 2 && n[:2] == "BP" {
			return true
		}
	}
	return false
}
