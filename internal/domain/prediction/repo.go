package prediction

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested prediction does not exist.
var ErrNotFound = errors.New("prediction not found")

type Repository interface {
	Create(ctx context.Context, p *Prediction) error
	GetByID(ctx context.Context, id uuid.UUID) (*Prediction, error)
	List(ctx context.Context, limit, offset int) ([]*Prediction, int, error)
	ListByVisit(ctx context.Context, visitID uuid.UUID, limit, offset int) ([]*Prediction, int, error)
}
