package triage

import (
	"fmt"
	"sort"
	"strings"
)

// departmentReasoningThreshold filters which of the top departments get a
// written reasoning entry.
const departmentReasoningThreshold = 0.35

// buildExplainability assembles the human-readable reasoning for a scored
// decision. It only reads the analyzer results, never mutates them.
func (e *RuleEngine) buildExplainability(sa *SymptomAnalysis, va *VitalsAnalysis, ha *HistoryAnalysis, age, ageScore, rawRisk int, scores map[string]float64) Explainability {
	riskFactors := map[string][]string{}

	if len(sa.CriticalSymptoms) > 0 {
		riskFactors["critical_symptoms"] = sa.CriticalSymptoms
	}
	if len(va.AbnormalVitals) > 0 {
		riskFactors["abnormal_vitals"] = va.AbnormalVitals
	}
	if len(ha.CardiacConditions) > 0 {
		riskFactors["cardiac_history"] = ha.CardiacConditions
	}
	if len(ha.RespiratoryConditions) > 0 {
		riskFactors["respiratory_history"] = ha.RespiratoryConditions
	}
	if len(ha.NeuroConditions) > 0 {
		riskFactors["neurological_history"] = ha.NeuroConditions
	}
	if age >= 70 || age <= 12 {
		group := "pediatric"
		if age >= 70 {
			group = "elderly"
		}
		riskFactors["age_factor"] = []string{fmt.Sprintf("%d years (%s)", age, group)}
	}

	reasoning := map[string]string{}
	for _, dept := range rankedDepartments(scores)[:3] {
		if scores[dept] < departmentReasoningThreshold {
			continue
		}
		if text := e.departmentReasons(dept, sa, va, ha, rawRisk); text != "" {
			reasoning[dept] = text
		}
	}

	return Explainability{
		RiskFactors:         riskFactors,
		DepartmentReasoning: reasoning,
		ScoreBreakdown: ScoreBreakdown{
			SymptomScore: sa.Score,
			VitalsScore:  va.Score,
			HistoryScore: ha.Score,
			AgeScore:     ageScore,
			Total:        float64(rawRisk),
		},
	}
}

// departmentReasons builds the reason string for one department from the
// same flags the scorer used, so the explanation always matches the score.
func (e *RuleEngine) departmentReasons(dept string, sa *SymptomAnalysis, va *VitalsAnalysis, ha *HistoryAnalysis, rawRisk int) string {
	var reasons []string

	switch dept {
	case DeptEmergency:
		if len(sa.CriticalSymptoms) > 0 {
			reasons = append(reasons, "Critical symptoms present")
		}
		if va.HasCriticalBP || va.HasCriticalHR {
			reasons = append(reasons, "Critical vital signs")
		}
		if rawRisk >= 70 {
			reasons = append(reasons, "High overall risk score")
		}
	case DeptCardiology:
		if sa.HasChestPain {
			reasons = append(reasons, "Chest pain reported")
		}
		if ha.HasCardiacHistory {
			reasons = append(reasons, "Cardiac history: "+joinFirst(ha.CardiacConditions, 2))
		}
		if va.BPSystolic >= 160 {
			reasons = append(reasons, "Elevated blood pressure")
		}
	case DeptNeurology:
		if sa.HasSeizures {
			reasons = append(reasons, "Seizures present")
		}
		if sa.HasNeuro {
			reasons = append(reasons, "Neurological symptoms")
		}
		if ha.HasNeuroHistory {
			reasons = append(reasons, "Neuro history: "+joinFirst(ha.NeuroConditions, 2))
		}
	case DeptRespiratory:
		if sa.HasRespiratory {
			reasons = append(reasons, "Respiratory symptoms")
		}
		if ha.HasRespiratoryHistory {
			reasons = append(reasons, "Respiratory history: "+joinFirst(ha.RespiratoryConditions, 2))
		}
	case DeptOrthopedics:
		if sa.HasOrthopedic {
			reasons = append(reasons, "Musculoskeletal symptoms: "+joinFirst(sa.OrthopedicSymptoms, 3))
		}
		if ha.HasOrthopedicHistory {
			reasons = append(reasons, "Orthopedic history: "+joinFirst(ha.OrthopedicConditions, 2))
		}
	}

	return strings.Join(reasons, " + ")
}

// rankedDepartments returns all departments ordered by score descending,
// with the fixed enumeration order breaking ties.
func rankedDepartments(scores map[string]float64) []string {
	ranked := make([]string, len(Departments))
	copy(ranked, Departments)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	return ranked
}

func joinFirst(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
