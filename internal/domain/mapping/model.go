package mapping

import (
	"time"

	"github.com/google/uuid"

	"github.com/vishwas-upadhyaya/HealthCare/internal/domain/doctor"
)

// Mapping maps to the patient_doctor_mappings table. The (patient, doctor)
// pair is unique; ownership derives from the referenced patient, never from
// the doctor.
type Mapping struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patient"`
	DoctorID    uuid.UUID `db:"doctor_id" json:"doctor"`
	Notes       string    `db:"notes" json:"notes"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	PatientName string    `db:"patient_name" json:"patient_name"`
	DoctorName  string    `db:"doctor_name" json:"doctor_name"`
}

// Detail is a mapping with the referenced doctor fully nested, returned by
// the per-patient listing.
type Detail struct {
	ID          uuid.UUID      `json:"id"`
	PatientID   uuid.UUID      `json:"patient"`
	Doctor      *doctor.Doctor `json:"doctor"`
	Notes       string         `json:"notes"`
	CreatedAt   time.Time      `json:"created_at"`
	PatientName string         `json:"patient_name"`
	DoctorName  string         `json:"doctor_name"`
}
