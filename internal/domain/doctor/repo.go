package doctor

import (
	"context"

	"github.com/google/uuid"
)

// DoctorRepository defines the persistence interface for doctors. Reads are
// unscoped (every authenticated user sees all doctors); ownership is checked
// by the service before writes. license_number uniqueness is enforced at the
// store boundary.
type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	List(ctx context.Context, search string, limit, offset int) ([]*Doctor, int, error)
	Update(ctx context.Context, d *Doctor) error
	Delete(ctx context.Context, id uuid.UUID) error
}
