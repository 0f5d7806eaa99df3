package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/google/uuid"
)

type companyProfileUsecase struct {
	companyRepo domain.CompanyProfileRepository
}

func NewCompanyProfileUsecase(companyRepo domain.CompanyProfileRepository) domain.CompanyProfileUsecase {
	return &companyProfileUsecase{companyRepo: companyRepo}
}

func validCompanySize(size string) bool {
	for _, s := range domain.CompanySizes {
		if s == size {
			return true
		}
	}
	return false
}

func (u *companyProfileUsecase) RegisterCompany(ctx context.Context, actor *domain.User, profile *domain.CompanyProfile) (*domain.CompanyProfile, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, apperror.Forbidden("Only admins can register companies")
	}

	if profile.CompanyName == "" {
		return nil, apperror.BadRequest("Company name is required")
	}
	if !validCompanySize(profile.CompanySize) {
		return nil, apperror.BadRequest("Invalid company size. Must be one of: 1-10, 11-50, 51-200, 201-500, 501+")
	}
	if profile.Status == "" {
		profile.Status = domain.CompanyStatusActive
	}
	if profile.Status != domain.CompanyStatusActive && profile.Status != domain.CompanyStatusInactive {
		return nil, apperror.BadRequest("Invalid status. Must be Active or Inactive")
	}

	profile.ID = uuid.NewString()
	profile.IsActive = true
	profile.CreatedBy = actor.ID

	if err := u.companyRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *companyProfileUsecase) UpdateCompany(ctx context.Context, actor *domain.User, id string, req *domain.CompanyUpdateRequest) (*domain.CompanyProfile, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, apperror.Forbidden("Only admins can update companies")
	}

	profile, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}

	changed := false
	if req.CompanyName != nil && *req.CompanyName != profile.CompanyName {
		if *req.CompanyName == "" {
			return nil, apperror.BadRequest("Company name cannot be empty")
		}
		profile.CompanyName = *req.CompanyName
		changed = true
	}
	if req.Industry != nil && *req.Industry != profile.Industry {
		profile.Industry = *req.Industry
		changed = true
	}
	if req.CompanySize != nil && *req.CompanySize != profile.CompanySize {
		if !validCompanySize(*req.CompanySize) {
			return nil, apperror.BadRequest("Invalid company size. Must be one of: 1-10, 11-50, 51-200, 201-500, 501+")
		}
		profile.CompanySize = *req.CompanySize
		changed = true
	}
	if req.Location != nil && *req.Location != profile.Location {
		profile.Location = *req.Location
		changed = true
	}
	if req.Website != nil && !equalStrPtr(req.Website, profile.Website) {
		profile.Website = req.Website
		changed = true
	}
	if req.About != nil && !equalStrPtr(req.About, profile.About) {
		profile.About = req.About
		changed = true
	}
	if req.FoundedYear != nil && !equalIntPtr(req.FoundedYear, profile.FoundedYear) {
		profile.FoundedYear = req.FoundedYear
		changed = true
	}
	if req.Status != nil && *req.Status != profile.Status {
		if *req.Status != domain.CompanyStatusActive && *req.Status != domain.CompanyStatusInactive {
			return nil, apperror.BadRequest("Invalid status. Must be Active or Inactive")
		}
		profile.Status = *req.Status
		changed = true
	}
	if req.CompanyLogo != nil && !equalStrPtr(req.CompanyLogo, profile.CompanyLogo) {
		profile.CompanyLogo = req.CompanyLogo
		changed = true
	}

	if !changed {
		return nil, apperror.NotModified("No changes detected")
	}

	profile.UpdatedBy = &actor.ID
	if err := u.companyRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *companyProfileUsecase) GetCompany(ctx context.Context, id string) (*domain.CompanyProfile, error) {
	profile, err := u.companyRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("Company not found")
	}
	return profile, err
}

func equalIntPtr(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
