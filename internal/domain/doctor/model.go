package doctor

import (
	"time"

	"github.com/google/uuid"
)

// Doctor maps to the doctors table. Doctors are readable by every
// authenticated user but writable only by their creator; license_number is
// unique across all doctors.
type Doctor struct {
	ID                uuid.UUID `db:"id" json:"id"`
	FirstName         string    `db:"first_name" json:"first_name"`
	LastName          string    `db:"last_name" json:"last_name"`
	Specialization    string    `db:"specialization" json:"specialization"`
	LicenseNumber     string    `db:"license_number" json:"license_number"`
	PhoneNumber       string    `db:"phone_number" json:"phone_number"`
	Email             string    `db:"email" json:"email"`
	Hospital          string    `db:"hospital" json:"hospital"`
	CreatedBy         uuid.UUID `db:"created_by" json:"created_by"`
	CreatedByUsername string    `db:"created_by_username" json:"created_by_username"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// DisplayName renders "Dr. First Last (Specialization)" for the mapping
// doctor_name field.
func (d *Doctor) DisplayName() string {
	return "Dr. " + d.FirstName + " " + d.LastName + " (" + d.Specialization + ")"
}

// Update is a partial update payload. Nil fields were absent from the request
// body and keep their stored value on PATCH.
type Update struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Specialization *string `json:"specialization"`
	LicenseNumber  *string `json:"license_number"`
	PhoneNumber    *string `json:"phone_number"`
	Email          *string `json:"email"`
	Hospital       *string `json:"hospital"`
}
