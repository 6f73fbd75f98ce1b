package prediction

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/triage/triage/internal/domain/triage"
)

// EncounterSource resolves a visit into the engine's evaluation input. The
// patient service satisfies this.
type EncounterSource interface {
	GetEncounter(ctx context.Context, visitID uuid.UUID) (*triage.PatientEncounter, error)
}

type Service struct {
	repo      Repository
	source    EncounterSource
	predictor triage.Predictor
	log       zerolog.Logger
}

func NewService(repo Repository, source EncounterSource, predictor triage.Predictor, log zerolog.Logger) *Service {
	return &Service{repo: repo, source: source, predictor: predictor, log: log}
}

// ProcessVisit resolves the visit's clinical data, runs the predictor and
// persists the resulting decision. The decision is returned alongside the
// stored row so callers do not need a second round trip.
func (s *Service) ProcessVisit(ctx context.Context, visitID uuid.UUID) (*Prediction, *triage.TriageDecision, error) {
	enc, err := s.source.GetEncounter(ctx, visitID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve encounter: %w", err)
	}

	decision, err := s.predictor.Evaluate(enc)
	if err != nil {
		return nil, nil, fmt.Errorf("evaluate encounter: %w", err)
	}

	p, err := s.toPrediction(visitID, decision)
	if err != nil {
		return nil, nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, nil, fmt.Errorf("save prediction: %w", err)
	}

	s.log.Info().
		Str("visit_id", visitID.String()).
		Str("risk_level", decision.RiskLevel).
		Str("department", decision.PrimaryDepartment).
		Msg("visit processed")

	return p, decision, nil
}

// Evaluate runs the predictor on caller-supplied data without persisting
// anything.
func (s *Service) Evaluate(_ context.Context, enc *triage.PatientEncounter) (*triage.TriageDecision, error) {
	return s.predictor.Evaluate(enc)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Prediction, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Prediction, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListByVisit(ctx context.Context, visitID uuid.UUID, limit, offset int) ([]*Prediction, int, error) {
	return s.repo.ListByVisit(ctx, visitID, limit, offset)
}

func (s *Service) toPrediction(visitID uuid.UUID, d *triage.TriageDecision) (*Prediction, error) {
	scores, err := json.Marshal(d.DepartmentScores)
	if err != nil {
		return nil, fmt.Errorf("marshal department scores: %w", err)
	}
	confidence, err := json.Marshal(d.Confidence)
	if err != nil {
		return nil, fmt.Errorf("marshal confidence: %w", err)
	}
	explain, err := json.Marshal(d.Explainability)
	if err != nil {
		return nil, fmt.Errorf("marshal explainability: %w", err)
	}
	return &Prediction{
		VisitID:               visitID,
		RiskLevel:             d.RiskLevel,
		RiskScore:             d.RiskScore,
		RecommendedDepartment: d.PrimaryDepartment,
		DepartmentScores:      scores,
		Confidence:            confidence,
		Explainability:        explain,
	}, nil
}
