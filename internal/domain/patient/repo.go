package patient

import (
	"context"

	"github.com/google/uuid"
)

// PatientRepository defines the persistence interface for patients. Every
// read and write is scoped to the owning user: a row belonging to someone
// else behaves exactly like an absent row.
type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*Patient, error)
	List(ctx context.Context, ownerID uuid.UUID, search string, limit, offset int) ([]*Patient, int, error)
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
