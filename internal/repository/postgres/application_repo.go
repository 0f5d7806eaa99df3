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

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. A partial unique index on
// (job_id, job_seeker_id) WHERE NOT is_deleted is the authoritative guard
// against duplicate submissions; the usecase existence check is only a fast
// path.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (
			id, job_id, job_seeker_id, status, is_active, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	now := time.Now()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	_, err := r.db.Exec(ctx, query,
		app.ID, app.JobID, app.JobSeekerID, app.Status, app.IsActive, app.CreatedBy,
		app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You have already applied for this job.")
		}
		return apperror.Internal(err)
	}
	return nil
}

// GetByID retrieves an application with joined seeker profile and job title.
func (r *applicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.job_seeker_id, a.status,
			a.is_active, a.created_by, a.updated_by, a.deleted_by, a.is_deleted, a.deleted_at,
			a.created_at, a.updated_at,
			u.name, u.email, u.experience, u.skills,
			j.title
		FROM applications a
		LEFT JOIN users u ON a.job_seeker_id = u.id
		LEFT JOIN jobs j ON a.job_id = j.id
		WHERE a.id = $1 AND a.is_deleted = false`

	var app domain.Application
	var skills []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.JobSeekerID, &app.Status,
		&app.IsActive, &app.CreatedBy, &app.UpdatedBy, &app.DeletedBy, &app.IsDeleted, &app.DeletedAt,
		&app.CreatedAt, &app.UpdatedAt,
		&app.SeekerName, &app.SeekerEmail, &app.SeekerExperience, pq.Array(&skills),
		&app.JobTitle,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	app.SeekerSkills = skills
	return &app, nil
}

// FetchByEmployer returns applications against the employer's jobs with
// joined seeker data, newest first.
func (r *applicationRepo) FetchByEmployer(ctx context.Context, employerID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.job_id, a.job_seeker_id, a.status,
			a.is_active, a.created_by, a.updated_by, a.deleted_by, a.is_deleted, a.deleted_at,
			a.created_at, a.updated_at,
			u.name, u.email, u.experience, u.skills,
			j.title
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		LEFT JOIN users u ON a.job_seeker_id = u.id
		WHERE j.employer_id = $1 AND a.is_deleted = false
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applications []domain.Application
	for rows.Next() {
		var app domain.Application
		var skills []string
		if err := rows.Scan(
			&app.ID, &app.JobID, &app.JobSeekerID, &app.Status,
			&app.IsActive, &app.CreatedBy, &app.UpdatedBy, &app.DeletedBy, &app.IsDeleted, &app.DeletedAt,
			&app.CreatedAt, &app.UpdatedAt,
			&app.SeekerName, &app.SeekerEmail, &app.SeekerExperience, pq.Array(&skills),
			&app.JobTitle,
		); err != nil {
			return nil, err
		}
		app.SeekerSkills = skills
		applications = append(applications, app)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, jobSeekerID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND job_seeker_id = $2 AND is_deleted = false)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, jobSeekerID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, actorID string) error {
	query := `UPDATE applications SET status = $2, updated_by = $3, updated_at = $4 WHERE id = $1 AND is_deleted = false`
	result, err := r.db.Exec(ctx, query, id, status, actorID, time.Now())
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) SoftDelete(ctx context.Context, id string, actorID string) error {
	query := `
		UPDATE applications SET is_deleted = true, is_active = false, deleted_by = $2, deleted_at = $3
		WHERE id = $1 AND is_deleted = false`
	result, err := r.db.Exec(ctx, query, id, actorID, time.Now())
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
