package patient

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/db"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
)

type patientRepoPG struct {
	pool *pgxpool.Pool
}

func NewPatientRepo(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{pool: pool}
}

const patientCols = `p.id, p.first_name, p.last_name, p.date_of_birth, p.gender,
	p.phone_number, p.email, p.address, p.blood_type, p.allergies, p.medical_history,
	p.created_by, u.username, p.created_at, p.updated_at`

const patientFrom = ` FROM patients p JOIN users u ON u.id = p.created_by`

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()

	return r.pool.QueryRow(ctx, `
		INSERT INTO patients (
			id, first_name, last_name, date_of_birth, gender,
			phone_number, email, address, blood_type, allergies, medical_history,
			created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`,
		p.ID, p.FirstName, p.LastName, p.DateOfBirth, p.Gender,
		p.PhoneNumber, p.Email, p.Address, p.BloodType, p.Allergies, p.MedicalHistory,
		p.CreatedBy,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *patientRepoPG) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+patientFrom+` WHERE p.id = $1 AND p.created_by = $2`,
		id, ownerID))
}

func (r *patientRepoPG) List(ctx context.Context, ownerID uuid.UUID, search string, limit, offset int) ([]*Patient, int, error) {
	where := ` WHERE p.created_by = $1`
	args := []interface{}{ownerID}
	if search != "" {
		where += ` AND (p.first_name ILIKE $2 OR p.last_name ILIKE $2 OR p.email ILIKE $2 OR p.phone_number ILIKE $2)`
		args = append(args, "%"+search+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*)`+patientFrom+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + patientCols + patientFrom + where + ` ORDER BY p.created_at DESC`
	if search != "" {
		query += ` LIMIT $3 OFFSET $4`
	} else {
		query += ` LIMIT $2 OFFSET $3`
	}
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var patients []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *patientRepoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE patients SET
			first_name = $3, last_name = $4, date_of_birth = $5, gender = $6,
			phone_number = $7, email = $8, address = $9, blood_type = $10,
			allergies = $11, medical_history = $12, updated_at = NOW()
		WHERE id = $1 AND created_by = $2`,
		p.ID, p.CreatedBy,
		p.FirstName, p.LastName, p.DateOfBirth, p.Gender,
		p.PhoneNumber, p.Email, p.Address, p.BloodType,
		p.Allergies, p.MedicalHistory,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httperr.NotFound("patient not found")
	}
	return nil
}

func (r *patientRepoPG) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1 AND created_by = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httperr.NotFound("patient not found")
	}
	return nil
}

func scanPatient(row pgx.Row) (*Patient, error) {
	p := &Patient{}
	err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender,
		&p.PhoneNumber, &p.Email, &p.Address, &p.BloodType, &p.Allergies, &p.MedicalHistory,
		&p.CreatedBy, &p.CreatedByUsername, &p.CreatedAt, &p.UpdatedAt,
	)
	if db.IsNoRows(err) {
		return nil, httperr.NotFound("patient not found")
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
