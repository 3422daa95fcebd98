package mapping

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vishwas-upadhyaya/HealthCare/internal/domain/doctor"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/db"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
)

type mappingRepoPG struct {
	pool *pgxpool.Pool
}

func NewMappingRepo(pool *pgxpool.Pool) MappingRepository {
	return &mappingRepoPG{pool: pool}
}

const mappingCols = `m.id, m.patient_id, m.doctor_id, m.notes, m.created_at,
	p.first_name || ' ' || p.last_name,
	'Dr. ' || d.first_name || ' ' || d.last_name || ' (' || d.specialization || ')'`

const mappingFrom = ` FROM patient_doctor_mappings m
	JOIN patients p ON p.id = m.patient_id
	JOIN doctors d ON d.id = m.doctor_id`

func (r *mappingRepoPG) Create(ctx context.Context, m *Mapping) error {
	m.ID = uuid.New()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO patient_doctor_mappings (id, patient_id, doctor_id, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`,
		m.ID, m.PatientID, m.DoctorID, m.Notes,
	).Scan(&m.CreatedAt)
	if err != nil {
		return mapCreateError(err)
	}
	return nil
}

// mapCreateError translates constraint violations on the mappings table into
// the field errors the pre-insert lookups produce. The FK cases cover the
// race where the referenced patient or doctor is deleted between the
// service's lookup and the INSERT.
func mapCreateError(err error) error {
	if db.UniqueConstraint(err) == "patient_doctor_mappings_patient_id_doctor_id_key" {
		return httperr.Validation("non_field_errors", "The fields patient, doctor must make a unique set.")
	}
	switch db.ForeignKeyConstraint(err) {
	case "patient_doctor_mappings_patient_id_fkey":
		return httperr.Validation("patient", "patient not found")
	case "patient_doctor_mappings_doctor_id_fkey":
		return httperr.Validation("doctor", "doctor not found")
	}
	return err
}

func (r *mappingRepoPG) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*Mapping, error) {
	return scanMapping(r.pool.QueryRow(ctx,
		`SELECT `+mappingCols+mappingFrom+` WHERE m.id = $1 AND p.created_by = $2`,
		id, ownerID))
}

func (r *mappingRepoPG) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Mapping, int, error) {
	var total int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*)`+mappingFrom+` WHERE p.created_by = $1`, ownerID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+mappingCols+mappingFrom+` WHERE p.created_by = $1
		 ORDER BY m.created_at DESC LIMIT $2 OFFSET $3`,
		ownerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var mappings []*Mapping
	for rows.Next() {
		m, err := scanMapping(rows)
		if err != nil {
			return nil, 0, err
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return mappings, total, nil
}

// ListByPatient returns every mapping for the patient with the doctor row
// nested in full. The caller checks patient ownership first.
func (r *mappingRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Detail, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.patient_id, m.notes, m.created_at,
			p.first_name || ' ' || p.last_name,
			'Dr. ' || d.first_name || ' ' || d.last_name || ' (' || d.specialization || ')',
			d.id, d.first_name, d.last_name, d.specialization, d.license_number,
			d.phone_number, d.email, d.hospital, d.created_by, u.username,
			d.created_at, d.updated_at
		FROM patient_doctor_mappings m
		JOIN patients p ON p.id = m.patient_id
		JOIN doctors d ON d.id = m.doctor_id
		JOIN users u ON u.id = d.created_by
		WHERE m.patient_id = $1
		ORDER BY m.created_at DESC`,
		patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []*Detail
	for rows.Next() {
		det := &Detail{Doctor: &doctor.Doctor{}}
		doc := det.Doctor
		err := rows.Scan(
			&det.ID, &det.PatientID, &det.Notes, &det.CreatedAt,
			&det.PatientName, &det.DoctorName,
			&doc.ID, &doc.FirstName, &doc.LastName, &doc.Specialization, &doc.LicenseNumber,
			&doc.PhoneNumber, &doc.Email, &doc.Hospital, &doc.CreatedBy, &doc.CreatedByUsername,
			&doc.CreatedAt, &doc.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		details = append(details, det)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *mappingRepoPG) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM patient_doctor_mappings m
		USING patients p
		WHERE m.id = $1 AND p.id = m.patient_id AND p.created_by = $2`,
		id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httperr.NotFound("mapping not found")
	}
	return nil
}

func scanMapping(row pgx.Row) (*Mapping, error) {
	m := &Mapping{}
	err := row.Scan(&m.ID, &m.PatientID, &m.DoctorID, &m.Notes, &m.CreatedAt,
		&m.PatientName, &m.DoctorName)
	if db.IsNoRows(err) {
		return nil, httperr.NotFound("mapping not found")
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
