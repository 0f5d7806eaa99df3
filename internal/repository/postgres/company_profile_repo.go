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

type companyProfileRepo struct {
	db *pgxpool.Pool
}

func NewCompanyProfileRepository(db *pgxpool.Pool) domain.CompanyProfileRepository {
	return &companyProfileRepo{db: db}
}

const companyColumns = `
	id, company_name, company_logo, industry, company_size, location, website,
	about, founded_year, status, is_active, created_by, updated_by, deleted_by,
	is_deleted, deleted_at, created_at, updated_at`

func scanCompany(row pgx.Row) (*domain.CompanyProfile, error) {
	var c domain.CompanyProfile
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.CompanyLogo, &c.Industry, &c.CompanySize, &c.Location, &c.Website,
		&c.About, &c.FoundedYear, &c.Status, &c.IsActive, &c.CreatedBy, &c.UpdatedBy, &c.DeletedBy,
		&c.IsDeleted, &c.DeletedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *companyProfileRepo) Create(ctx context.Context, profile *domain.CompanyProfile) error {
	query := `
		INSERT INTO company_profiles (
			id, company_name, company_logo, industry, company_size, location,
			website, about, founded_year, status, is_active, created_by,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.CompanyName, profile.CompanyLogo, profile.Industry, profile.CompanySize, profile.Location,
		profile.Website, profile.About, profile.FoundedYear, profile.Status, profile.IsActive, profile.CreatedBy,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Company name already exists")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *companyProfileRepo) GetByID(ctx context.Context, id string) (*domain.CompanyProfile, error) {
	query := `SELECT` + companyColumns + ` FROM company_profiles WHERE id = $1 AND is_deleted = false`
	profile, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return profile, err
}

func (r *companyProfileRepo) GetByName(ctx context.Context, name string) (*domain.CompanyProfile, error) {
	query := `SELECT` + companyColumns + ` FROM company_profiles WHERE company_name = $1 AND is_deleted = false`
	profile, err := scanCompany(r.db.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return profile, err
}

func (r *companyProfileRepo) Update(ctx context.Context, profile *domain.CompanyProfile) error {
	query := `
		UPDATE company_profiles SET
			company_name = $2, company_logo = $3, industry = $4, company_size = $5,
			location = $6, website = $7, about = $8, founded_year = $9, status = $10,
			updated_by = $11, updated_at = $12
		WHERE id = $1 AND is_deleted = false`

	profile.UpdatedAt = time.Now()
	result, err := r.db.Exec(ctx, query,
		profile.ID, profile.CompanyName, profile.CompanyLogo, profile.Industry, profile.CompanySize,
		profile.Location, profile.Website, profile.About, profile.FoundedYear, profile.Status,
		profile.UpdatedBy, profile.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Company name already exists")
		}
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
