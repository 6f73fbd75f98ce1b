package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested patient or visit does not exist.
var ErrNotFound = errors.New("not found")

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
}

type VisitRepository interface {
	Create(ctx context.Context, v *Visit) error
	GetByID(ctx context.Context, id uuid.UUID) (*Visit, error)
	List(ctx context.Context, limit, offset int) ([]*Visit, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Visit, int, error)

	// Clinical detail rows attached to a visit.
	SetVitals(ctx context.Context, v *VisitVitals) error
	GetVitals(ctx context.Context, visitID uuid.UUID) (*VisitVitals, error)
	AddSymptom(ctx context.Context, s *VisitSymptom) error
	GetSymptoms(ctx context.Context, visitID uuid.UUID) ([]*VisitSymptom, error)
}

type HistoryRepository interface {
	Add(ctx context.Context, h *HistoryEntry) error
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*HistoryEntry, error)
}
