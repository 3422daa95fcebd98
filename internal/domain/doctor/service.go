package doctor

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/auth"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/validate"
)

type Service struct {
	repo DoctorRepository
}

func NewService(repo DoctorRepository) *Service {
	return &Service{repo: repo}
}

// Create persists a new doctor owned by the principal.
func (s *Service) Create(ctx context.Context, principal auth.Principal, d *Doctor) error {
	if err := validateDoctor(d); err != nil {
		return err
	}
	d.CreatedBy = principal.ID
	if err := s.repo.Create(ctx, d); err != nil {
		return err
	}
	d.CreatedByUsername = principal.Username
	return nil
}

// Get returns any doctor: reads are not ownership-scoped.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, search string, limit, offset int) ([]*Doctor, int, error) {
	return s.repo.List(ctx, search, limit, offset)
}

// Update applies the payload over the stored row after an ownership check.
// Non-owners get an explicit denial: doctor rows are visible to everyone, so
// there is no existence to mask.
func (s *Service) Update(ctx context.Context, principal auth.Principal, id uuid.UUID, upd Update, partial bool) (*Doctor, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanModify(principal, existing) {
		return nil, httperr.Forbidden("you do not have permission to modify this doctor")
	}

	if !partial {
		fields := map[string]string{}
		for field, ptr := range map[string]*string{
			"first_name":     upd.FirstName,
			"last_name":      upd.LastName,
			"specialization": upd.Specialization,
			"license_number": upd.LicenseNumber,
			"phone_number":   upd.PhoneNumber,
			"email":          upd.Email,
		} {
			if ptr == nil {
				fields[field] = "This field is required."
			}
		}
		if len(fields) > 0 {
			return nil, httperr.ValidationFields(fields)
		}
	}

	applyUpdate(existing, upd)
	if err := validateDoctor(existing); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanModify(principal, existing) {
		return httperr.Forbidden("you do not have permission to delete this doctor")
	}
	return s.repo.Delete(ctx, id)
}

func applyUpdate(d *Doctor, upd Update) {
	if upd.FirstName != nil {
		d.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		d.LastName = *upd.LastName
	}
	if upd.Specialization != nil {
		d.Specialization = *upd.Specialization
	}
	if upd.LicenseNumber != nil {
		d.LicenseNumber = *upd.LicenseNumber
	}
	if upd.PhoneNumber != nil {
		d.PhoneNumber = *upd.PhoneNumber
	}
	if upd.Email != nil {
		d.Email = *upd.Email
	}
	if upd.Hospital != nil {
		d.Hospital = *upd.Hospital
	}
}

func validateDoctor(d *Doctor) error {
	fields := map[string]string{}

	for field, value := range map[string]string{
		"first_name":     d.FirstName,
		"last_name":      d.LastName,
		"specialization": d.Specialization,
		"license_number": d.LicenseNumber,
	} {
		if strings.TrimSpace(value) == "" {
			fields[field] = "This field is required."
		}
	}
	if d.PhoneNumber == "" {
		fields["phone_number"] = "This field is required."
	} else if !validate.Phone(d.PhoneNumber) {
		fields["phone_number"] = validate.PhoneMessage
	}
	if d.Email == "" {
		fields["email"] = "This field is required."
	} else if !validate.Email(d.Email) {
		fields["email"] = "Enter a valid email address."
	}

	if len(fields) > 0 {
		return httperr.ValidationFields(fields)
	}
	return nil
}
