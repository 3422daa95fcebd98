package mapping

import (
	"context"

	"github.com/google/uuid"

	"github.com/vishwas-upadhyaya/HealthCare/internal/domain/doctor"
	"github.com/vishwas-upadhyaya/HealthCare/internal/domain/patient"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/auth"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
)

// PatientLookup resolves patients scoped to their owner. Satisfied by
// patient.PatientRepository.
type PatientLookup interface {
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*patient.Patient, error)
}

// DoctorLookup resolves doctors without scoping. Satisfied by
// doctor.DoctorRepository.
type DoctorLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error)
}

type Service struct {
	repo     MappingRepository
	patients PatientLookup
	doctors  DoctorLookup
}

func NewService(repo MappingRepository, patients PatientLookup, doctors DoctorLookup) *Service {
	return &Service{repo: repo, patients: patients, doctors: doctors}
}

// Input is the write payload for an assignment.
type Input struct {
	PatientID uuid.UUID `json:"patient"`
	DoctorID  uuid.UUID `json:"doctor"`
	Notes     string    `json:"notes"`
}

// Create assigns a doctor to one of the caller's patients. A patient that
// does not exist or belongs to another user yields the same field error, so
// callers cannot probe for other users' patient IDs.
func (s *Service) Create(ctx context.Context, principal auth.Principal, in *Input) (*Mapping, error) {
	fields := map[string]string{}
	if in.PatientID == uuid.Nil {
		fields["patient"] = "This field is required."
	}
	if in.DoctorID == uuid.Nil {
		fields["doctor"] = "This field is required."
	}
	if len(fields) > 0 {
		return nil, httperr.ValidationFields(fields)
	}

	p, err := s.patients.GetByID(ctx, in.PatientID, principal.ID)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, httperr.Validation("patient", "patient not found")
		}
		return nil, err
	}
	d, err := s.doctors.GetByID(ctx, in.DoctorID)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			return nil, httperr.Validation("doctor", "doctor not found")
		}
		return nil, err
	}

	m := &Mapping{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Notes:     in.Notes,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	m.PatientName = p.FullName()
	m.DoctorName = d.DisplayName()
	return m, nil
}

func (s *Service) Get(ctx context.Context, principal auth.Principal, id uuid.UUID) (*Mapping, error) {
	return s.repo.GetByID(ctx, id, principal.ID)
}

func (s *Service) List(ctx context.Context, principal auth.Principal, limit, offset int) ([]*Mapping, int, error) {
	return s.repo.List(ctx, principal.ID, limit, offset)
}

// ListByPatient returns all doctors assigned to the given patient. The
// patient must belong to the caller; otherwise the patient is reported as
// not found.
func (s *Service) ListByPatient(ctx context.Context, principal auth.Principal, patientID uuid.UUID) ([]*Detail, error) {
	if _, err := s.patients.GetByID(ctx, patientID, principal.ID); err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) Delete(ctx context.Context, principal auth.Principal, id uuid.UUID) error {
	return s.repo.Delete(ctx, id, principal.ID)
}
