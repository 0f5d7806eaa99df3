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
)

type feedbackRepo struct {
	db *pgxpool.Pool
}

func NewFeedbackRepository(db *pgxpool.Pool) domain.FeedbackRepository {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Create(ctx context.Context, fb *domain.Feedback) error {
	query := `
		INSERT INTO feedback (
			id, employer_id, job_seeker_id, feedback_text, rating, is_active,
			created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	now := time.Now()
	fb.CreatedAt = now
	fb.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		fb.ID, fb.EmployerID, fb.JobSeekerID, fb.FeedbackText, fb.Rating, fb.IsActive,
		fb.CreatedBy, fb.CreatedAt, fb.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You have already submitted feedback for this Job Seeker.")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *feedbackRepo) GetByID(ctx context.Context, id string) (*domain.Feedback, error) {
	query := `
		SELECT id, employer_id, job_seeker_id, feedback_text, rating,
		       is_active, created_by, updated_by, deleted_by, is_deleted, deleted_at,
		       created_at, updated_at
		FROM feedback WHERE id = $1 AND is_deleted = false`

	var fb domain.Feedback
	err := r.db.QueryRow(ctx, query, id).Scan(
		&fb.ID, &fb.EmployerID, &fb.JobSeekerID, &fb.FeedbackText, &fb.Rating,
		&fb.IsActive, &fb.CreatedBy, &fb.UpdatedBy, &fb.DeletedBy, &fb.IsDeleted, &fb.DeletedAt,
		&fb.CreatedAt, &fb.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &fb, nil
}

func (r *feedbackRepo) Exists(ctx context.Context, employerID, jobSeekerID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM feedback WHERE employer_id = $1 AND job_seeker_id = $2 AND is_deleted = false)`
	var exists bool
	err := r.db.QueryRow(ctx, query, employerID, jobSeekerID).Scan(&exists)
	return exists, err
}

func (r *feedbackRepo) FetchForJobSeeker(ctx context.Context, jobSeekerID string) ([]domain.Feedback, error) {
	query := `
		SELECT f.id, f.employer_id, f.job_seeker_id, f.feedback_text, f.rating,
		       f.is_active, f.created_by, f.updated_by, f.deleted_by, f.is_deleted, f.deleted_at,
		       f.created_at, f.updated_at,
		       u.name
		FROM feedback f
		LEFT JOIN users u ON f.employer_id = u.id
		WHERE f.job_seeker_id = $1 AND f.is_deleted = false
		ORDER BY f.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobSeekerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []domain.Feedback
	for rows.Next() {
		var fb domain.Feedback
		if err := rows.Scan(
			&fb.ID, &fb.EmployerID, &fb.JobSeekerID, &fb.FeedbackText, &fb.Rating,
			&fb.IsActive, &fb.CreatedBy, &fb.UpdatedBy, &fb.DeletedBy, &fb.IsDeleted, &fb.DeletedAt,
			&fb.CreatedAt, &fb.UpdatedAt,
			&fb.EmployerName,
		); err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, fb)
	}
	return feedbacks, rows.Err()
}

func (r *feedbackRepo) Update(ctx context.Context, fb *domain.Feedback) error {
	query := `
		UPDATE feedback SET feedback_text = $2, rating = $3, updated_by = $4, updated_at = $5
		WHERE id = $1 AND is_deleted = false`

	fb.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query, fb.ID, fb.FeedbackText, fb.Rating, fb.UpdatedBy, fb.UpdatedAt)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *feedbackRepo) SoftDelete(ctx context.Context, id string, actorID string) error {
	query := `
		UPDATE feedback SET is_deleted = true, is_active = false, deleted_by = $2, deleted_at = $3
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
