package patient

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/auth"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/validate"
)

type Service struct {
	repo PatientRepository
}

func NewService(repo PatientRepository) *Service {
	return &Service{repo: repo}
}

// Create persists a new patient owned by the principal. Whatever created_by
// the payload carried is overwritten.
func (s *Service) Create(ctx context.Context, principal auth.Principal, p *Patient) error {
	if err := validatePatient(p); err != nil {
		return err
	}
	p.CreatedBy = principal.ID
	if err := s.repo.Create(ctx, p); err != nil {
		return err
	}
	p.CreatedByUsername = principal.Username
	return nil
}

func (s *Service) Get(ctx context.Context, principal auth.Principal, id uuid.UUID) (*Patient, error) {
	return s.repo.GetByID(ctx, id, principal.ID)
}

func (s *Service) List(ctx context.Context, principal auth.Principal, search string, limit, offset int) ([]*Patient, int, error) {
	return s.repo.List(ctx, principal.ID, search, limit, offset)
}

// Update applies the payload over the stored row. With partial=false (PUT)
// the required fields must all be present; with partial=true (PATCH) absent
// fields keep their stored values. created_by is never touched.
func (s *Service) Update(ctx context.Context, principal auth.Principal, id uuid.UUID, upd Update, partial bool) (*Patient, error) {
	existing, err := s.repo.GetByID(ctx, id, principal.ID)
	if err != nil {
		return nil, err
	}

	if !partial {
		fields := map[string]string{}
		if upd.FirstName == nil {
			fields["first_name"] = "This field is required."
		}
		if upd.LastName == nil {
			fields["last_name"] = "This field is required."
		}
		if upd.DateOfBirth == nil {
			fields["date_of_birth"] = "This field is required."
		}
		if upd.Gender == nil {
			fields["gender"] = "This field is required."
		}
		if len(fields) > 0 {
			return nil, httperr.ValidationFields(fields)
		}
	}

	applyUpdate(existing, upd)
	if err := validatePatient(existing); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, principal.ID)
}

func applyUpdate(p *Patient, upd Update) {
	if upd.FirstName != nil {
		p.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		p.LastName = *upd.LastName
	}
	if upd.DateOfBirth != nil {
		p.DateOfBirth = *upd.DateOfBirth
	}
	if upd.Gender != nil {
		p.Gender = *upd.Gender
	}
	if upd.PhoneNumber != nil {
		p.PhoneNumber = *upd.PhoneNumber
	}
	if upd.Email != nil {
		p.Email = *upd.Email
	}
	if upd.Address != nil {
		p.Address = *upd.Address
	}
	if upd.BloodType != nil {
		p.BloodType = *upd.BloodType
	}
	if upd.Allergies != nil {
		p.Allergies = *upd.Allergies
	}
	if upd.MedicalHistory != nil {
		p.MedicalHistory = *upd.MedicalHistory
	}
}

func validatePatient(p *Patient) error {
	fields := map[string]string{}

	if strings.TrimSpace(p.FirstName) == "" {
		fields["first_name"] = "This field is required."
	}
	if strings.TrimSpace(p.LastName) == "" {
		fields["last_name"] = "This field is required."
	}
	if p.DateOfBirth.IsZero() {
		fields["date_of_birth"] = "This field is required."
	}
	if p.Gender == "" {
		fields["gender"] = "This field is required."
	} else if !slices.Contains(Genders, p.Gender) {
		fields["gender"] = `"` + p.Gender + `" is not a valid choice.`
	}
	if p.BloodType != "" && !slices.Contains(BloodTypes, p.BloodType) {
		fields["blood_type"] = `"` + p.BloodType + `" is not a valid choice.`
	}
	if p.PhoneNumber != "" && !validate.Phone(p.PhoneNumber) {
		fields["phone_number"] = validate.PhoneMessage
	}
	if p.Email != "" && !validate.Email(p.Email) {
		fields["email"] = "Enter a valid email address."
	}

	if len(fields) > 0 {
		return httperr.ValidationFields(fields)
	}
	return nil
}
