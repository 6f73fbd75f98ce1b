package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/triage/triage/internal/domain/triage"
)

type Service struct {
	patients PatientRepository
	visits   VisitRepository
	history  HistoryRepository
}

func NewService(patients PatientRepository, visits VisitRepository, history HistoryRepository) *Service {
	return &Service{patients: patients, visits: visits, history: history}
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.Age != nil && *p.Age < 0 {
		return fmt.Errorf("age must not be negative")
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, limit, offset)
}

// CreateVisit registers a visit and its clinical detail rows. History
// entries are attached to the patient, not the visit, so recurring
// conditions carry over to later visits.
func (s *Service) CreateVisit(ctx context.Context, in *VisitInput) (*Visit, error) {
	if in.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if _, err := s.patients.GetByID(ctx, in.PatientID); err != nil {
		return nil, fmt.Errorf("resolve patient: %w", err)
	}
	for _, sym := range in.Symptoms {
		if sym.SymptomName == "" {
			return nil, fmt.Errorf("symptom_name is required")
		}
	}

	v := &Visit{PatientID: in.PatientID, ChiefComplaint: in.ChiefComplaint}
	if err := s.visits.Create(ctx, v); err != nil {
		return nil, fmt.Errorf("create visit: %w", err)
	}

	if in.Vitals != nil {
		in.Vitals.VisitID = v.ID
		if err := s.visits.SetVitals(ctx, in.Vitals); err != nil {
			return nil, fmt.Errorf("set vitals: %w", err)
		}
	}
	for i := range in.Symptoms {
		in.Symptoms[i].VisitID = v.ID
		if err := s.visits.AddSymptom(ctx, &in.Symptoms[i]); err != nil {
			return nil, fmt.Errorf("add symptom: %w", err)
		}
	}
	for i := range in.History {
		in.History[i].PatientID = in.PatientID
		if err := s.history.Add(ctx, &in.History[i]); err != nil {
			return nil, fmt.Errorf("add history: %w", err)
		}
	}
	return v, nil
}

func (s *Service) GetVisit(ctx context.Context, id uuid.UUID) (*Visit, error) {
	return s.visits.GetByID(ctx, id)
}

func (s *Service) ListVisits(ctx context.Context, limit, offset int) ([]*Visit, int, error) {
	return s.visits.List(ctx, limit, offset)
}

func (s *Service) ListVisitsByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Visit, int, error) {
	return s.visits.ListByPatient(ctx, patientID, limit, offset)
}

// GetEncounter assembles the evaluation input for one visit. Missing vitals
// or an absent patient age are left nil; the engine's normalizer supplies
// the physiological defaults.
func (s *Service) GetEncounter(ctx context.Context, visitID uuid.UUID) (*triage.PatientEncounter, error) {
	v, err := s.visits.GetByID(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("resolve visit: %w", err)
	}

	p, err := s.patients.GetByID(ctx, v.PatientID)
	if err != nil {
		return nil, fmt.Errorf("resolve patient: %w", err)
	}

	enc := &triage.PatientEncounter{
		Age:            p.Age,
		ChiefComplaint: v.ChiefComplaint,
	}

	vitals, err := s.visits.GetVitals(ctx, visitID)
	switch {
	case err == nil:
		enc.Vitals = &triage.Vitals{
			BPSystolic:  vitals.BPSystolic,
			BPDiastolic: vitals.BPDiastolic,
			HeartRate:   vitals.HeartRate,
			Temperature: vitals.Temperature,
		}
	case !errors.Is(err, ErrNotFound):
		return nil, fmt.Errorf("load vitals: %w", err)
	}

	symptoms, err := s.visits.GetSymptoms(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("load symptoms: %w", err)
	}
	for _, sym := range symptoms {
		enc.Symptoms = append(enc.Symptoms, triage.Symptom{Name: sym.SymptomName, Severity: sym.SeverityScore})
	}

	history, err := s.history.ListByPatient(ctx, v.PatientID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	for _, h := range history {
		enc.MedicalHistory = append(enc.MedicalHistory, triage.Condition{Name: h.ConditionName, IsChronic: h.IsChronic})
	}

	return enc, nil
}
