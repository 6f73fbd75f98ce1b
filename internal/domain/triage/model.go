package triage

// Risk levels, ordered from least to most severe.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// The six clinical departments a patient can be routed to. The set is fixed:
// every TriageDecision carries a score for each of them and nothing else.
const (
	DeptEmergency       = "Emergency"
	DeptCardiology      = "Cardiology"
	DeptNeurology       = "Neurology"
	DeptRespiratory     = "Respiratory"
	DeptOrthopedics     = "Orthopedics"
	DeptGeneralMedicine = "General Medicine"
)

// Departments lists the fixed department set in enumeration order. Ties in
// department scores resolve to the earliest entry in this list.
var Departments = []string{
	DeptEmergency,
	DeptCardiology,
	DeptNeurology,
	DeptRespiratory,
	DeptOrthopedics,
	DeptGeneralMedicine,
}

// Symptom is a single reported symptom with a 1-5 severity grade.
type Symptom struct {
	Name     string `json:"name"`
	Severity int    `json:"severity"`
}

// Condition is one medical-history entry.
type Condition struct {
	Name      string `json:"condition_name"`
	IsChronic bool   `json:"is_chronic"`
}

// Vitals holds the vital signs captured for an encounter. Nil fields mean
// "not measured" and are replaced with normal physiological defaults during
// normalization.
type Vitals struct {
	BPSystolic  *int     `json:"bp_systolic,omitempty"`
	BPDiastolic *int     `json:"bp_diastolic,omitempty"`
	HeartRate   *int     `json:"heart_rate,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"` // °F
}

// PatientEncounter is one patient's clinical snapshot for a single triage
// evaluation. The engine never mutates it.
type PatientEncounter struct {
	Age            *int        `json:"age,omitempty"`
	ChiefComplaint string      `json:"chief_complaint"`
	Vitals         *Vitals     `json:"vitals,omitempty"`
	Symptoms       []Symptom   `json:"symptoms,omitempty"`
	MedicalHistory []Condition `json:"medical_history,omitempty"`
}

// SymptomAnalysis is the read-only result of the symptom analyzer.
type SymptomAnalysis struct {
	Score                int
	CriticalSymptoms     []string
	SeverityFive         []string
	OrthopedicSymptoms   []string
	TotalSymptoms        int
	MaxChestPainSeverity int
	HasChestPain         bool
	HasSeizures          bool
	HasRespiratory       bool
	HasNeuro             bool
	HasOrthopedic        bool
}

// VitalsAnalysis is the read-only result of the vitals analyzer. The raw
// readings are echoed back so downstream scoring can reference them without
// re-normalizing the encounter.
type VitalsAnalysis struct {
	Score          int
	AbnormalVitals []string
	BPSystolic     int
	BPDiastolic    int
	HeartRate      int
	Temperature    float64
	HasCriticalBP  bool
	HasCriticalHR  bool
	HasFever       bool
}

// HistoryAnalysis is the read-only result of the medical-history analyzer.
type HistoryAnalysis struct {
	Score                 int
	Conditions            []string
	CardiacConditions     []string
	RespiratoryConditions []string
	NeuroConditions       []string
	OrthopedicConditions  []string
	ChronicCount          int
	HasCardiacHistory     bool
	HasRespiratoryHistory bool
	HasNeuroHistory       bool
	HasOrthopedicHistory  bool
}

// Confidence describes how well-supported a decision is.
type Confidence struct {
	Overall               float64 `json:"overall"`
	DataCompleteness      float64 `json:"data_completeness"`
	DecisionClarity       float64 `json:"decision_clarity"`
	HasCriticalIndicators bool    `json:"has_critical_indicators"`
}

// ScoreBreakdown echoes the per-analyzer raw scores behind a decision.
type ScoreBreakdown struct {
	SymptomScore int     `json:"symptom_score"`
	VitalsScore  int     `json:"vitals_score"`
	HistoryScore int     `json:"history_score"`
	AgeScore     int     `json:"age_score"`
	Total        float64 `json:"total"`
}

// Explainability is the structured reasoning attached to every decision.
type Explainability struct {
	RiskFactors         map[string][]string `json:"risk_factors"`
	DepartmentReasoning map[string]string   `json:"department_reasoning"`
	ScoreBreakdown      ScoreBreakdown      `json:"score_breakdown"`
}

// TriageDecision is the engine's sole output: a risk classification, a score
// for every department, and the evidence behind both.
type TriageDecision struct {
	RiskLevel         string             `json:"risk_level"`
	RiskScore         float64            `json:"risk_score"`
	PrimaryDepartment string             `json:"primary_department"`
	DepartmentScores  map[string]float64 `json:"department_scores"`
	Confidence        Confidence         `json:"confidence"`
	Explainability    Explainability     `json:"explainability"`
}

// Predictor is the seam between callers and a triage implementation. The
// deterministic RuleEngine implements it; a learned-model path can be swapped
// in without touching callers as long as it honors the same fixed department
// set.
type Predictor interface {
	Evaluate(enc *PatientEncounter) (*TriageDecision, error)
}
