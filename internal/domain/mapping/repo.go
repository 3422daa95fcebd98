package mapping

import (
	"context"

	"github.com/google/uuid"
)

// MappingRepository defines the persistence interface for patient-doctor
// mappings. All reads are scoped to the owner of the referenced patient:
// mappings for someone else's patients behave exactly like absent rows.
// Duplicate (patient, doctor) pairs are rejected at the store boundary.
type MappingRepository interface {
	Create(ctx context.Context, m *Mapping) error
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*Mapping, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Mapping, int, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Detail, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
