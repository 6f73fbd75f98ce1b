package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Age       *int      `db:"age" json:"age,omitempty"`
	Gender    *string   `db:"gender" json:"gender,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Visit maps to the patient_visits table.
type Visit struct {
	ID             uuid.UUID `db:"id" json:"id"`
	PatientID      uuid.UUID `db:"patient_id" json:"patient_id"`
	ChiefComplaint string    `db:"chief_complaint" json:"chief_complaint"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// VisitVitals maps to the visit_vitals table. One row per visit at most;
// individual measurements may be null.
type VisitVitals struct {
	ID          uuid.UUID `db:"id" json:"id"`
	VisitID     uuid.UUID `db:"visit_id" json:"visit_id"`
	BPSystolic  *int      `db:"bp_systolic" json:"bp_systolic,omitempty"`
	BPDiastolic *int      `db:"bp_diastolic" json:"bp_diastolic,omitempty"`
	HeartRate   *int      `db:"heart_rate" json:"heart_rate,omitempty"`
	Temperature *float64  `db:"temperature" json:"temperature,omitempty"`
}

// VisitSymptom maps to the visit_symptoms table.
type VisitSymptom struct {
	ID            uuid.UUID `db:"id" json:"id"`
	VisitID       uuid.UUID `db:"visit_id" json:"visit_id"`
	SymptomName   string    `db:"symptom_name" json:"symptom_name"`
	SeverityScore int       `db:"severity_score" json:"severity_score"`
}

// HistoryEntry maps to the patient_history table.
type HistoryEntry struct {
	ID            uuid.UUID `db:"id" json:"id"`
	PatientID     uuid.UUID `db:"patient_id" json:"patient_id"`
	ConditionName string    `db:"condition_name" json:"condition_name"`
	IsChronic     bool      `db:"is_chronic" json:"is_chronic"`
}

// VisitInput is the write payload for registering a visit together with its
// clinical detail rows.
type VisitInput struct {
	PatientID      uuid.UUID      `json:"patient_id"`
	ChiefComplaint string         `json:"chief_complaint"`
	Vitals         *VisitVitals   `json:"vitals,omitempty"`
	Symptoms       []VisitSymptom `json:"symptoms,omitempty"`
	History        []HistoryEntry `json:"history,omitempty"`
}
