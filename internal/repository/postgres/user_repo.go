package postgres

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `
	id, role, email, password_hash, name, phone, profile_pic, resume,
	company_id, experience, skills, is_blocked, deletion_requested, access_token,
	is_active, created_by, updated_by, deleted_by, is_deleted, deleted_at,
	created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var skills []string
	err := row.Scan(
		&u.ID, &u.Role, &u.Email, &u.PasswordHash, &u.Name, &u.Phone, &u.ProfilePic, &u.Resume,
		&u.CompanyID, &u.Experience, pq.Array(&skills), &u.IsBlocked, &u.DeletionRequested, &u.AccessToken,
		&u.IsActive, &u.CreatedBy, &u.UpdatedBy, &u.DeletedBy, &u.IsDeleted, &u.DeletedAt,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Skills = skills
	return &u, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (
			id, role, email, password_hash, name, phone, profile_pic, resume,
			company_id, experience, skills, is_blocked, deletion_requested,
			is_active, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		user.ID, user.Role, user.Email, user.PasswordHash, user.Name, user.Phone, user.ProfilePic, user.Resume,
		user.CompanyID, user.Experience, pq.Array(user.Skills), user.IsBlocked, user.DeletionRequested,
		user.IsActive, user.CreatedBy, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Email already in use for this role. Use a different email.")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1 AND is_deleted = false`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return user, err
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE email = $1 AND is_deleted = false`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return user, err
}

func (r *userRepo) GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE email = $1 AND role = $2 AND is_deleted = false`
	user, err := scanUser(r.db.QueryRow(ctx, query, email, role))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return user, err
}

func (r *userRepo) fetch(ctx context.Context, deleted bool) ([]domain.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE is_deleted = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, deleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *userRepo) FetchActive(ctx context.Context) ([]domain.User, error) {
	return r.fetch(ctx, false)
}

func (r *userRepo) FetchDeleted(ctx context.Context) ([]domain.User, error) {
	return r.fetch(ctx, true)
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users SET
			name = $2, phone = $3, profile_pic = $4, resume = $5, company_id = $6,
			experience = $7, skills = $8, is_blocked = $9, deletion_requested = $10,
			updated_by = $11, updated_at = $12
		WHERE id = $1 AND is_deleted = false`

	user.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Phone, user.ProfilePic, user.Resume, user.CompanyID,
		user.Experience, pq.Array(user.Skills), user.IsBlocked, user.DeletionRequested,
		user.UpdatedBy, user.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdateSession(ctx context.Context, id string, token *string, isActive bool) error {
	query := `UPDATE users SET access_token = $2, is_active = $3, updated_at = $4 WHERE id = $1 AND is_deleted = false`
	result, err := r.db.Exec(ctx, query, id, token, isActive, time.Now())
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) SetDeletionRequested(ctx context.Context, id string) error {
	query := `UPDATE users SET deletion_requested = true, updated_at = $2 WHERE id = $1 AND is_deleted = false`
	result, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) HardDelete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1 AND is_deleted = false`, role).Scan(&count)
	return count, err
}
