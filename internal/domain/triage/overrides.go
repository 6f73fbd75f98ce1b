package triage

import (
	"fmt"
	"strings"
)

// Critical overrides encode non-negotiable safety rules. They are evaluated
// in fixed priority order before any scoring, and the first match wins: its
// canonical decision replaces the entire scoring pipeline so that statistical
// averaging can never soften an unambiguous emergency.
//
// The department-score vectors below are fixed constants per rule, each
// value independently specified in [0,1].
var (
	overrideMaxSeverityScores = map[string]float64{
		DeptEmergency:       0.95,
		DeptCardiology:      0.02,
		DeptNeurology:       0.01,
		DeptRespiratory:     0.01,
		DeptOrthopedics:     0.005,
		DeptGeneralMedicine: 0.005,
	}
	overrideCardiacScores = map[string]float64{
		DeptEmergency:       0.70,
		DeptCardiology:      0.25,
		DeptNeurology:       0.01,
		DeptRespiratory:     0.02,
		DeptOrthopedics:     0.01,
		DeptGeneralMedicine: 0.01,
	}
	overrideVitalsScores = map[string]float64{
		DeptEmergency:       0.85,
		DeptCardiology:      0.05,
		DeptNeurology:       0.02,
		DeptRespiratory:     0.03,
		DeptOrthopedics:     0.02,
		DeptGeneralMedicine: 0.03,
	}
	overrideComorbidScores = map[string]float64{
		DeptEmergency:       0.75,
		DeptCardiology:      0.08,
		DeptNeurology:       0.03,
		DeptRespiratory:     0.04,
		DeptOrthopedics:     0.03,
		DeptGeneralMedicine: 0.07,
	}
)

// detectOverride checks the four override rules against a normalized
// encounter and returns the canonical decision for the first rule that
// matches, or nil when none do. The evaluation order is load-bearing:
// later rules are unreachable once an earlier one fires.
func (e *RuleEngine) detectOverride(enc *PatientEncounter) *TriageDecision {
	maxSeverity := 0
	chestPainSeverity := 0
	for _, s := range enc.Symptoms {
		if !validSeverity(s.Severity) {
			// Malformed grade: the entry contributes nothing here, same
			// as in the symptom analyzer.
			continue
		}
		if s.Severity > maxSeverity {
			maxSeverity = s.Severity
		}
		if matchesAny(strings.ToLower(s.Name), e.rules.ChestPainKeywords) && s.Severity > chestPainSeverity {
			chestPainSeverity = s.Severity
		}
	}

	cardiacHistory := false
	for _, c := range enc.MedicalHistory {
		if matchesAny(strings.ToLower(c.Name), e.rules.CardiacConditionKeywords) {
			cardiacHistory = true
			break
		}
	}

	sys := *enc.Vitals.BPSystolic
	dia := *enc.Vitals.BPDiastolic
	hr := *enc.Vitals.HeartRate
	comorbidities := len(enc.MedicalHistory)

	// Severe chest pain with documented cardiac history. Checked ahead of
	// the generic severity rule so a cardiac emergency routes residual
	// weight to Cardiology instead of the generic vector.
	if chestPainSeverity >= 4 && cardiacHistory {
		return e.overrideDecision(0.92, overrideCardiacScores,
			"cardiac_emergency",
			fmt.Sprintf("chest pain severity %d with cardiac history", chestPainSeverity))
	}

	// Any symptom at severity 4 or worse.
	if maxSeverity >= 4 {
		return e.overrideDecision(0.95, overrideMaxSeverityScores,
			"critical_symptom_severity",
			fmt.Sprintf("maximum symptom severity %d (threshold 4)", maxSeverity))
	}

	// Hypertensive crisis or severe tachycardia.
	if sys >= 180 || dia >= 110 || hr >= 120 {
		return e.overrideDecision(0.93, overrideVitalsScores,
			"critical_vitals",
			fmt.Sprintf("BP %d/%d, HR %d", sys, dia, hr))
	}

	// Heavy comorbidity load with elevated vitals.
	if comorbidities >= 3 && (sys >= 150 || hr >= 100) {
		return e.overrideDecision(0.88, overrideComorbidScores,
			"comorbidity_burden",
			fmt.Sprintf("%d comorbidities with BP %d/%d, HR %d", comorbidities, sys, dia, hr))
	}

	return nil
}

// overrideDecision assembles the canonical decision for an override rule.
// The explainability payload is a fixed record of the triggering inputs;
// confidence derives from the rule's fixed score vector so it stays
// deterministic.
func (e *RuleEngine) overrideDecision(riskScore float64, scores map[string]float64, factor, evidence string) *TriageDecision {
	deptScores := make(map[string]float64, len(scores))
	for k, v := range scores {
		deptScores[k] = v
	}

	top, second := topTwoScores(deptScores)
	clarity := round3(top - second)

	return &TriageDecision{
		RiskLevel:         RiskHigh,
		RiskScore:         riskScore,
		PrimaryDepartment: primaryDepartment(deptScores),
		DepartmentScores:  deptScores,
		Confidence: Confidence{
			Overall:               round3(0.6*1.0 + 0.4*(top-second)),
			DataCompleteness:      1.0,
			DecisionClarity:       clarity,
			HasCriticalIndicators: true,
		},
		Explainability: Explainability{
			RiskFactors: map[string][]string{
				factor: {evidence},
			},
			DepartmentReasoning: map[string]string{
				DeptEmergency: "Critical safety override: " + evidence,
			},
			ScoreBreakdown: ScoreBreakdown{Total: riskScore * 100},
		},
	}
}
