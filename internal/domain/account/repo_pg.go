package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/db"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
)

type userRepoPG struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) UserRepository {
	return &userRepoPG{pool: pool}
}

const userCols = `id, username, email, password_hash, first_name, last_name, created_at`

func (r *userRepoPG) Create(ctx context.Context, user *User) error {
	user.ID = uuid.New()

	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
	)
	switch db.UniqueConstraint(err) {
	case "users_username_key":
		return httperr.Validation("username", "A user with that username already exists.")
	case "users_email_key":
		return httperr.Validation("email", "A user with that email already exists.")
	}
	return err
}

func (r *userRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE id = $1`, id))
}

func (r *userRepoPG) GetByUsername(ctx context.Context, username string) (*User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userCols+` FROM users WHERE username = $1`, username))
}

func (r *userRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return httperr.NotFound("user not found")
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	u := &User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.CreatedAt)
	if db.IsNoRows(err) {
		return nil, httperr.NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
