package triage

import (
	"errors"
	"strings"
)

// RuleEngine is the deterministic triage implementation: a pure function of
// the encounter with no shared mutable state, safe for concurrent use. All
// configuration is captured at construction and read-only afterwards.
type RuleEngine struct {
	rules Ruleset
}

// NewRuleEngine builds an engine around the given ruleset. The ruleset is
// treated as immutable for the lifetime of the engine.
func NewRuleEngine(rules Ruleset) *RuleEngine {
	return &RuleEngine{rules: rules}
}

// ErrNilEncounter is returned when Evaluate is called without an encounter.
var ErrNilEncounter = errors.New("triage: encounter is required")

// Evaluate produces a complete TriageDecision for one encounter.
//
// The pipeline is: normalize, check the critical-override cascade (which may
// short-circuit with a canonical decision), run the four analyzers, then
// aggregate risk, score departments, and attach confidence and
// explainability. Missing fields are defaulted and malformed entries score
// zero; the only error case is a missing encounter altogether.
func (e *RuleEngine) Evaluate(enc *PatientEncounter) (*TriageDecision, error) {
	if enc == nil {
		return nil, ErrNilEncounter
	}

	n := NormalizeEncounter(enc)

	if d := e.detectOverride(n); d != nil {
		return d, nil
	}

	chiefComplaint := strings.ToLower(n.ChiefComplaint)

	sa := e.analyzeSymptoms(n.Symptoms)
	va := e.analyzeVitals(n.Vitals)
	ha := e.analyzeHistory(n.MedicalHistory)
	ageScore := AgeFactor(*n.Age)

	rawRisk := sa.Score + va.Score + ha.Score + ageScore

	level := RiskLow
	switch {
	case rawRisk >= e.rules.HighRiskThreshold:
		level = RiskHigh
	case rawRisk >= e.rules.MediumRiskThreshold:
		level = RiskMedium
	}

	scores := e.scoreDepartments(sa, va, ha, chiefComplaint, rawRisk)

	return &TriageDecision{
		RiskLevel:         level,
		RiskScore:         round4(clamp01(float64(rawRisk) / 100)),
		PrimaryDepartment: primaryDepartment(scores),
		DepartmentScores:  scores,
		Confidence:        estimateConfidence(sa, va, ha, scores),
		Explainability:    e.buildExplainability(sa, va, ha, *n.Age, ageScore, rawRisk, scores),
	}, nil
}
