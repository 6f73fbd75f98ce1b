package triage

// scoreDepartments computes the suitability score for each of the six
// departments. Every department starts at its shared baseline and collects
// independent additive bonuses; Orthopedics is computed on its own base and
// replaces the shared entry. Every final value is clipped to [0,1].
func (e *RuleEngine) scoreDepartments(sa *SymptomAnalysis, va *VitalsAnalysis, ha *HistoryAnalysis, chiefComplaint string, rawRisk int) map[string]float64 {
	scores := make(map[string]float64, len(Departments))
	for dept, base := range e.rules.DepartmentBaselines {
		scores[dept] = base
	}

	if len(sa.CriticalSymptoms) > 0 {
		scores[DeptEmergency] += 0.30
	}
	if va.HasCriticalBP || va.HasCriticalHR {
		scores[DeptEmergency] += 0.25
	}
	if rawRisk >= 70 {
		scores[DeptEmergency] += 0.20
	}
	if len(sa.SeverityFive) > 0 {
		scores[DeptEmergency] += 0.15
	}

	if sa.HasChestPain {
		scores[DeptCardiology] += 0.40
		if sa.MaxChestPainSeverity >= 4 {
			scores[DeptCardiology] += 0.30
		}
	}
	if ha.HasCardiacHistory {
		scores[DeptCardiology] += 0.25
	}
	if va.BPSystolic >= 160 || va.HeartRate >= 100 {
		scores[DeptCardiology] += 0.20
	}

	if sa.HasSeizures {
		scores[DeptNeurology] += 0.45
	}
	if sa.HasNeuro {
		scores[DeptNeurology] += 0.25
	}
	if ha.HasNeuroHistory {
		scores[DeptNeurology] += 0.25
	}
	if matchesAny(chiefComplaint, e.rules.NeuroComplaintKeywords) {
		scores[DeptNeurology] += 0.20
	}

	if sa.HasRespiratory {
		scores[DeptRespiratory] += 0.40
	}
	if ha.HasRespiratoryHistory {
		scores[DeptRespiratory] += 0.30
	}
	if va.HasFever && sa.HasRespiratory {
		scores[DeptRespiratory] += 0.25
	}

	// Orthopedics uses its own base and overwrites the shared baseline.
	ortho := 0.05
	if sa.HasOrthopedic {
		ortho += 0.50
		if len(sa.OrthopedicSymptoms) >= 2 {
			ortho += 0.20
		}
	}
	if matchesAny(chiefComplaint, e.rules.OrthoComplaintKeywords) {
		ortho += 0.30
	}
	if ha.HasOrthopedicHistory {
		ortho += 0.25
	}
	scores[DeptOrthopedics] = ortho

	if rawRisk < 40 {
		scores[DeptGeneralMedicine] += 0.25
	}
	if ha.ChronicCount >= 2 {
		scores[DeptGeneralMedicine] += 0.20
	}

	for dept, s := range scores {
		scores[dept] = clamp01(s)
	}
	return scores
}

// primaryDepartment returns the argmax of the score map. Ties resolve to the
// earliest department in the fixed enumeration order.
func primaryDepartment(scores map[string]float64) string {
	best := Departments[0]
	bestScore := scores[best]
	for _, dept := range Departments[1:] {
		if scores[dept] > bestScore {
			best = dept
			bestScore = scores[dept]
		}
	}
	return best
}

// topTwoScores returns the highest and second-highest department scores.
func topTwoScores(scores map[string]float64) (float64, float64) {
	top, second := 0.0, 0.0
	for _, dept := range Departments {
		s := scores[dept]
		if s > top {
			second = top
			top = s
		} else if s > second {
			second = s
		}
	}
	return top, second
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
