package doctor

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/db"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
)

type doctorRepoPG struct {
	pool *pgxpool.Pool
}

func NewDoctorRepo(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepoPG{pool: pool}
}

const doctorCols = `d.id, d.first_name, d.last_name, d.specialization, d.license_number,
	d.phone_number, d.email, d.hospital, d.created_by, u.username, d.created_at, d.updated_at`

const doctorFrom = ` FROM doctors d JOIN users u ON u.id = d.created_by`

func duplicateLicense(err error) error {
	if db.UniqueConstraint(err) == "doctors_license_number_key" {
		return httperr.Validation("license_number", "doctor with this license number already exists.")
	}
	return err
}

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()

	err := r.pool.QueryRow(ctx, `
		INSERT INTO doctors (
			id, first_name, last_name, specialization, license_number,
			phone_number, email, hospital, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`,
		d.ID, d.FirstName, d.LastName, d.Specialization, d.LicenseNumber,
		d.PhoneNumber, d.Email, d.Hospital, d.CreatedBy,
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	return duplicateLicense(err)
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return scanDoctor(r.pool.QueryRow(ctx, `SELECT `+doctorCols+doctorFrom+` WHERE d.id = $1`, id))
}

func (r *doctorRepoPG) List(ctx context.Context, search string, limit, offset int) ([]*Doctor, int, error) {
	where := ``
	var args []interface{}
	if search != "" {
		where = ` WHERE (d.first_name ILIKE $1 OR d.last_name ILIKE $1 OR d.specialization ILIKE $1 OR d.hospital ILIKE $1)`
		args = append(args, "%"+search+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*)`+doctorFrom+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + doctorCols + doctorFrom + where + ` ORDER BY d.last_name, d.first_name`
	if search != "" {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var doctors []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		doctors = append(doctors, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *doctorRepoPG) Update(ctx context.Context, d *Doctor) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE doctors SET
			first_name = $2, last_name = $3, specialization = $4, license_number = $5,
			phone_number = $6, email = $7, hospital = $8, updated_at = NOW()
		WHERE id = $1`,
		d.ID, d.FirstName, d.LastName, d.Specialization, d.LicenseNumber,
		d.PhoneNumber, d.Email, d.Hospital,
	)
	if err != nil {
		return duplicateLicense(err)
	}
	if tag.RowsAffected() == 0 {
		return httperr.NotFound("doctor not found")
	}
	return nil
}

func (r *doctorRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httperr.NotFound("doctor not found")
	}
	return nil
}

func scanDoctor(row pgx.Row) (*Doctor, error) {
	d := &Doctor{}
	err := row.Scan(
		&d.ID, &d.FirstName, &d.LastName, &d.Specialization, &d.LicenseNumber,
		&d.PhoneNumber, &d.Email, &d.Hospital, &d.CreatedBy, &d.CreatedByUsername,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if db.IsNoRows(err) {
		return nil, httperr.NotFound("doctor not found")
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
