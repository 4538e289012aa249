package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"lifted/internal/core/domain"
	"lifted/internal/core/port"
)

// UserRepository implements port.UserRepository using pgxpool for PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, first_name, last_name, email, password_hash, phone, role, avatar_url,
  verified, total_donations, donation_count, last_login, is_active, created_at, updated_at`

// Create inserts a new user. A unique violation on email is reported as
// port.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO users
  (id, first_name, last_name, email, password_hash, phone, role, avatar_url, verified, is_active)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.Phone, user.Role, user.AvatarURL, user.Verified, user.IsActive)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return port.ErrEmailTaken
	}
	return err
}

// GetByID fetches a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByEmail fetches a user by lowercased email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// UpdateLastLogin stamps the most recent successful login.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET last_login = $1, updated_at = now() WHERE id = $2`, at, id)
	return err
}

// UpdateProfile persists the self-service editable fields.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users
SET first_name = $1, last_name = $2, phone = $3, avatar_url = $4, updated_at = now()
WHERE id = $5`, user.FirstName, user.LastName, user.Phone, user.AvatarURL, user.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// IncrementDonationTotals atomically adds the gross amount to the donor's
// lifetime totals. A single UPDATE with increments, never read-then-save.
func (r *UserRepository) IncrementDonationTotals(ctx context.Context, id string, grossAmount int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users
SET total_donations = total_donations + $1,
    donation_count  = donation_count + 1,
    updated_at      = now()
WHERE id = $2`, grossAmount, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// DecrementDonationTotals reverses IncrementDonationTotals, clamped at zero.
func (r *UserRepository) DecrementDonationTotals(ctx context.Context, id string, grossAmount int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users
SET total_donations = GREATEST(total_donations - $1, 0),
    donation_count  = GREATEST(donation_count - 1, 0),
    updated_at      = now()
WHERE id = $2`, grossAmount, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Phone,
		&u.Role, &u.AvatarURL, &u.Verified, &u.TotalDonations, &u.DonationCount,
		&u.LastLogin, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
