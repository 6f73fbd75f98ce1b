package prediction

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Prediction maps to the triage_predictions table. The score, confidence and
// explainability payloads are stored as jsonb so the full decision survives
// round-tripping without a column per field.
type Prediction struct {
	ID                    uuid.UUID       `db:"id" json:"id"`
	VisitID               uuid.UUID       `db:"visit_id" json:"visit_id"`
	RiskLevel             string          `db:"risk_level" json:"risk_level"`
	RiskScore             float64         `db:"risk_score" json:"risk_score"`
	RecommendedDepartment string          `db:"recommended_department" json:"recommended_department"`
	DepartmentScores      json.RawMessage `db:"department_scores" json:"department_scores"`
	Confidence            json.RawMessage `db:"confidence" json:"confidence"`
	Explainability        json.RawMessage `db:"explainability" json:"explainability"`
	CreatedAt             time.Time       `db:"created_at" json:"created_at"`
}
