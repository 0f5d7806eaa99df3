package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `
	j.id, j.employer_id, j.title, j.description, j.location, j.industry,
	j.experience_level, j.salary_range, j.required_skills, j.required_experience,
	j.max_applicants, j.current_applicants, j.status,
	j.approved_by, j.approved_at, j.rejected_by, j.rejected_at,
	j.is_active, j.created_by, j.updated_by, j.deleted_by, j.is_deleted, j.deleted_at,
	j.created_at, j.updated_at`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var j domain.Job
	var skills []string
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location, &j.Industry,
		&j.ExperienceLevel, &j.SalaryRange, pq.Array(&skills), &j.RequiredExperience,
		&j.MaxApplicants, &j.CurrentApplicants, &j.Status,
		&j.ApprovedBy, &j.ApprovedAt, &j.RejectedBy, &j.RejectedAt,
		&j.IsActive, &j.CreatedBy, &j.UpdatedBy, &j.DeletedBy, &j.IsDeleted, &j.DeletedAt,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	j.RequiredSkills = skills
	return &j, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (
			id, employer_id, title, description, location, industry,
			experience_level, salary_range, required_skills, required_experience,
			max_applicants, current_applicants, status, is_active, created_by,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		job.ID, job.EmployerID, job.Title, job.Description, job.Location, job.Industry,
		job.ExperienceLevel, job.SalaryRange, pq.Array(job.RequiredSkills), job.RequiredExperience,
		job.MaxApplicants, job.CurrentApplicants, job.Status, job.IsActive, job.CreatedBy,
		job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := `SELECT` + jobColumns + ` FROM jobs j WHERE j.id = $1 AND j.is_deleted = false`
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return job, err
}

func (r *jobRepo) GetByEmployerAndTitle(ctx context.Context, employerID, title string) (*domain.Job, error) {
	query := `SELECT` + jobColumns + ` FROM jobs j WHERE j.employer_id = $1 AND j.title = $2 AND j.is_deleted = false`
	job, err := scanJob(r.db.QueryRow(ctx, query, employerID, title))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return job, err
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	query := `
		SELECT` + jobColumns + `, u.name, cp.company_name
		FROM jobs j
		LEFT JOIN users u ON j.employer_id = u.id
		LEFT JOIN company_profiles cp ON u.company_id = cp.id
		WHERE j.is_deleted = false
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		var skills []string
		if err := rows.Scan(
			&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location, &j.Industry,
			&j.ExperienceLevel, &j.SalaryRange, pq.Array(&skills), &j.RequiredExperience,
			&j.MaxApplicants, &j.CurrentApplicants, &j.Status,
			&j.ApprovedBy, &j.ApprovedAt, &j.RejectedBy, &j.RejectedAt,
			&j.IsActive, &j.CreatedBy, &j.UpdatedBy, &j.DeletedBy, &j.IsDeleted, &j.DeletedAt,
			&j.CreatedAt, &j.UpdatedAt,
			&j.EmployerName, &j.CompanyName,
		); err != nil {
			return nil, err
		}
		j.RequiredSkills = skills
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Search returns approved, non-deleted jobs only; server-side filtering the
// client cannot bypass.
func (r *jobRepo) Search(ctx context.Context, filter domain.JobSearchFilter) ([]domain.Job, error) {
	query := `
		SELECT` + jobColumns + `, u.name, cp.company_name
		FROM jobs j
		LEFT JOIN users u ON j.employer_id = u.id
		LEFT JOIN company_profiles cp ON u.company_id = cp.id
		WHERE j.is_deleted = false AND j.status = 'Approved'`

	args := []interface{}{}
	argPos := 1
	if filter.Location != "" {
		query += fmt.Sprintf(" AND j.location ILIKE $%d", argPos)
		args = append(args, "%"+filter.Location+"%")
		argPos++
	}
	if filter.Industry != "" {
		query += fmt.Sprintf(" AND j.industry ILIKE $%d", argPos)
		args = append(args, "%"+filter.Industry+"%")
		argPos++
	}
	if filter.ExperienceLevel != "" {
		query += fmt.Sprintf(" AND j.experience_level = $%d", argPos)
		args = append(args, filter.ExperienceLevel)
		argPos++
	}
	query += " ORDER BY j.created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		var skills []string
		if err := rows.Scan(
			&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location, &j.Industry,
			&j.ExperienceLevel, &j.SalaryRange, pq.Array(&skills), &j.RequiredExperience,
			&j.MaxApplicants, &j.CurrentApplicants, &j.Status,
			&j.ApprovedBy, &j.ApprovedAt, &j.RejectedBy, &j.RejectedAt,
			&j.IsActive, &j.CreatedBy, &j.UpdatedBy, &j.DeletedBy, &j.IsDeleted, &j.DeletedAt,
			&j.CreatedAt, &j.UpdatedAt,
			&j.EmployerName, &j.CompanyName,
		); err != nil {
			return nil, err
		}
		j.RequiredSkills = skills
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `
		UPDATE jobs SET
			title = $2, description = $3, location = $4, industry = $5,
			experience_level = $6, salary_range = $7, updated_by = $8, updated_at = $9
		WHERE id = $1 AND is_deleted = false`

	job.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Location, job.Industry,
		job.ExperienceLevel, job.SalaryRange, job.UpdatedBy, job.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) SetApproval(ctx context.Context, id string, status domain.JobStatus, actorID string, at time.Time) error {
	var query string
	switch status {
	case domain.JobStatusApproved:
		query = `UPDATE jobs SET status = $2, approved_by = $3, approved_at = $4, updated_by = $3, updated_at = $4
		         WHERE id = $1 AND is_deleted = false`
	case domain.JobStatusRejected:
		query = `UPDATE jobs SET status = $2, rejected_by = $3, rejected_at = $4, updated_by = $3, updated_at = $4
		         WHERE id = $1 AND is_deleted = false`
	default:
		return apperror.Internal(fmt.Errorf("SetApproval called with status %q", status))
	}

	result, err := r.db.Exec(ctx, query, id, status, actorID, at)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) SetStatus(ctx context.Context, id string, status domain.JobStatus, actorID string) error {
	query := `UPDATE jobs SET status = $2, updated_by = $3, updated_at = $4 WHERE id = $1 AND is_deleted = false`
	result, err := r.db.Exec(ctx, query, id, status, actorID, time.Now())
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementApplicants is a single-statement atomic increment; concurrent
// acceptances cannot lose updates.
func (r *jobRepo) IncrementApplicants(ctx context.Context, id string) (int, error) {
	query := `
		UPDATE jobs SET current_applicants = current_applicants + 1, updated_at = $2
		WHERE id = $1 AND is_deleted = false
		RETURNING current_applicants`

	var count int
	err := r.db.QueryRow(ctx, query, id, time.Now()).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}

func (r *jobRepo) SoftDelete(ctx context.Context, id string, actorID string) error {
	query := `
		UPDATE jobs SET is_deleted = true, is_active = false, deleted_by = $2, deleted_at = $3
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
