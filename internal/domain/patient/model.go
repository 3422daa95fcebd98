package patient

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Genders and blood types accepted on a patient record.
var (
	Genders    = []string{"male", "female", "other"}
	BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
)

const dateLayout = "2006-01-02"

// Date is a calendar date serialized as "2006-01-02" in JSON and stored in a
// DATE column.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("date must have YYYY-MM-DD format: %w", err)
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	case nil:
		d.Time = time.Time{}
		return nil
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

// Patient maps to the patients table. CreatedBy is set once at creation and
// never changed by updates; CreatedByUsername is joined in at read time.
type Patient struct {
	ID                uuid.UUID `db:"id" json:"id"`
	FirstName         string    `db:"first_name" json:"first_name"`
	LastName          string    `db:"last_name" json:"last_name"`
	DateOfBirth       Date      `db:"date_of_birth" json:"date_of_birth"`
	Gender            string    `db:"gender" json:"gender"`
	PhoneNumber       string    `db:"phone_number" json:"phone_number"`
	Email             string    `db:"email" json:"email"`
	Address           string    `db:"address" json:"address"`
	BloodType         string    `db:"blood_type" json:"blood_type"`
	Allergies         string    `db:"allergies" json:"allergies"`
	MedicalHistory    string    `db:"medical_history" json:"medical_history"`
	CreatedBy         uuid.UUID `db:"created_by" json:"created_by"`
	CreatedByUsername string    `db:"created_by_username" json:"created_by_username"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// FullName renders "First Last" for the mapping patient_name field.
func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Update is a partial update payload. Nil fields were absent from the request
// body and keep their stored value on PATCH.
type Update struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	DateOfBirth    *Date   `json:"date_of_birth"`
	Gender         *string `json:"gender"`
	PhoneNumber    *string `json:"phone_number"`
	Email          *string `json:"email"`
	Address        *string `json:"address"`
	BloodType      *string `json:"blood_type"`
	Allergies      *string `json:"allergies"`
	MedicalHistory *string `json:"medical_history"`
}
