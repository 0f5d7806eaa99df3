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

type interviewRepo struct {
	db *pgxpool.Pool
}

func NewInterviewInvitationRepository(db *pgxpool.Pool) domain.InterviewInvitationRepository {
	return &interviewRepo{db: db}
}

// Create inserts an invitation. A partial unique index on application_id
// WHERE NOT is_deleted enforces the one-to-one invariant at the data layer.
func (r *interviewRepo) Create(ctx context.Context, invite *domain.InterviewInvitation) error {
	query := `
		INSERT INTO interview_invitations (
			id, application_id, employer_id, scheduled_date, interview_location,
			message, is_active, created_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	now := time.Now()
	invite.CreatedAt = now
	invite.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		invite.ID, invite.ApplicationID, invite.EmployerID, invite.ScheduledDate, invite.InterviewLocation,
		invite.Message, invite.IsActive, invite.CreatedBy, invite.CreatedAt, invite.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("An interview is already scheduled for this application.")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *interviewRepo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.InterviewInvitation, error) {
	query := `
		SELECT id, application_id, employer_id, scheduled_date, interview_location, message,
		       is_active, created_by, updated_by, deleted_by, is_deleted, deleted_at,
		       created_at, updated_at
		FROM interview_invitations
		WHERE application_id = $1 AND is_deleted = false`

	var inv domain.InterviewInvitation
	err := r.db.QueryRow(ctx, query, applicationID).Scan(
		&inv.ID, &inv.ApplicationID, &inv.EmployerID, &inv.ScheduledDate, &inv.InterviewLocation, &inv.Message,
		&inv.IsActive, &inv.CreatedBy, &inv.UpdatedBy, &inv.DeletedBy, &inv.IsDeleted, &inv.DeletedAt,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
