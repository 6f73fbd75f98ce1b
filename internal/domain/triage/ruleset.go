package triage

// Ruleset is the immutable configuration behind the rule engine: keyword
// tables, analyzer caps, and risk thresholds. It is built once (normally via
// DefaultRuleset) and must not be modified after the engine is constructed.
type Ruleset struct {
	// Symptom keyword sets. Matching is case-insensitive substring match
	// against the symptom name.
	ChestPainKeywords     []string
	SeizureKeywords       []string
	SeizureFlagKeywords   []string
	ConsciousnessKeywords []string
	BreathingKeywords     []string
	RespiratoryKeywords   []string
	NeuroKeywords         []string
	OrthopedicKeywords    []string

	// Medical-history keyword sets, matched against condition names.
	CardiacConditionKeywords     []string
	RespiratoryConditionKeywords []string
	NeuroConditionKeywords       []string
	OrthopedicConditionKeywords  []string
	DiabetesKeywords             []string

	// Chief-complaint keyword sets used by the department scorer.
	NeuroComplaintKeywords []string
	OrthoComplaintKeywords []string

	// Analyzer score caps.
	SymptomScoreCap int
	VitalsScoreCap  int
	HistoryScoreCap int

	// Raw-risk thresholds for the High/Medium/Low classification.
	HighRiskThreshold   int
	MediumRiskThreshold int

	// Shared department baselines. Orthopedics is scored on its own base and
	// replaces this entry, see scoreDepartments.
	DepartmentBaselines map[string]float64
}

// DefaultRuleset returns the hand-tuned production configuration. The
// numeric weights reproduce the audited behavior exactly and are not meant
// to be tweaked casually.
func DefaultRuleset() Ruleset {
	return Ruleset{
		ChestPainKeywords: []string{"chest pain"},
		SeizureKeywords:   []string{"seizure", "convulsion"},
		// The Neurology routing flag is narrower than the alert bonus:
		// "convulsion" earns the +15 but does not steer the department.
		SeizureFlagKeywords:   []string{"seizure"},
		ConsciousnessKeywords: []string{"loss of consciousness", "unconscious"},
		BreathingKeywords:     []string{"shortness of breath", "difficulty breathing", "dyspnea"},
		RespiratoryKeywords:   []string{"breath", "dyspnea", "cough", "wheezing"},
		NeuroKeywords:         []string{"dizziness", "headache", "numbness", "tingling", "seizure"},
		OrthopedicKeywords: []string{
			"joint pain", "back", "neck pain", "stiffness", "weakness",
			"muscle", "bone", "fracture", "sprain",
		},

		CardiacConditionKeywords:     []string{"coronary", "heart", "cardiac", "hypertension", "arrhythmia"},
		RespiratoryConditionKeywords: []string{"copd", "asthma", "tuberculosis", "respiratory", "lung"},
		NeuroConditionKeywords:       []string{"epilepsy", "seizure", "parkinson", "stroke", "alzheimer"},
		OrthopedicConditionKeywords:  []string{"arthritis", "osteoporosis", "fracture", "joint", "bone", "spine", "disc"},
		DiabetesKeywords:             []string{"diabetes"},

		NeuroComplaintKeywords: []string{"head", "skull", "brain", "stroke"},
		OrthoComplaintKeywords: []string{
			"joint", "bone", "fracture", "back", "neck",
			"stiffness", "weakness", "muscle", "sprain",
		},

		SymptomScoreCap: 40,
		VitalsScoreCap:  30,
		HistoryScoreCap: 20,

		HighRiskThreshold:   60,
		MediumRiskThreshold: 30,

		DepartmentBaselines: map[string]float64{
			DeptEmergency:       0.10,
			DeptCardiology:      0.05,
			DeptNeurology:       0.05,
			DeptRespiratory:     0.05,
			DeptOrthopedics:     0.05,
			DeptGeneralMedicine: 0.20,
		},
	}
}

// Normal physiological defaults applied to absent fields during
// normalization. An encounter with no vitals scores zero on the vitals
// analyzer by construction.
const (
	defaultAge         = 40
	defaultBPSystolic  = 120
	defaultBPDiastolic = 80
	defaultHeartRate   = 80
	defaultTemperature = 98.6
)
