package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

// FileRemover erases stored uploads. Satisfied by storage.LocalStore.
type FileRemover interface {
	Delete(relPath string) error
}

type userUsecase struct {
	userRepo    domain.UserRepository
	companyRepo domain.CompanyProfileRepository
	cache       domain.IdentityCache
	files       FileRemover
}

func NewUserUsecase(userRepo domain.UserRepository, companyRepo domain.CompanyProfileRepository, cache domain.IdentityCache, files FileRemover) domain.UserUsecase {
	return &userUsecase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		cache:       cache,
		files:       files,
	}
}

func (u *userUsecase) ListUsers(ctx context.Context, actor *domain.User) (*domain.UserListing, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, apperror.Forbidden("Only admins can list users")
	}

	active, err := u.userRepo.FetchActive(ctx)
	if err != nil {
		return nil, err
	}
	deleted, err := u.userRepo.FetchDeleted(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.UserListing{ActiveUsers: active, DeletedUsers: deleted}, nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, actor *domain.User, targetID string, req *domain.UserUpdateRequest) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin && actor.ID != targetID {
		return nil, apperror.Forbidden("You can only update your own profile")
	}
	// Blocking and company reassignment are admin-only levers.
	if actor.Role != domain.RoleAdmin && (req.IsBlocked != nil || req.CompanyID != nil) {
		return nil, apperror.Forbidden("Only admins can change blocking or company assignment")
	}

	target, err := u.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}

	changed := false
	if req.Name != nil && *req.Name != target.Name {
		target.Name = *req.Name
		changed = true
	}
	if req.Phone != nil && !equalStrPtr(req.Phone, target.Phone) {
		target.Phone = req.Phone
		changed = true
	}
	if req.CompanyID != nil && !equalStrPtr(req.CompanyID, target.CompanyID) {
		if target.Role != domain.RoleEmployer {
			return nil, apperror.BadRequest("Only employers may be attached to a company.")
		}
		if _, err := u.companyRepo.GetByID(ctx, *req.CompanyID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("Company not found")
			}
			return nil, err
		}
		target.CompanyID = req.CompanyID
		changed = true
	}
	if req.IsBlocked != nil && *req.IsBlocked != target.IsBlocked {
		target.IsBlocked = *req.IsBlocked
		changed = true
	}
	if req.ProfilePic != nil && !equalStrPtr(req.ProfilePic, target.ProfilePic) {
		if target.ProfilePic != nil {
			if err := u.files.Delete(*target.ProfilePic); err != nil {
				logger.Log.Warn("failed to remove replaced profile picture", "user_id", target.ID, "error", err)
			}
		}
		target.ProfilePic = req.ProfilePic
		changed = true
	}
	if req.Resume != nil && !equalStrPtr(req.Resume, target.Resume) {
		if target.Resume != nil {
			if err := u.files.Delete(*target.Resume); err != nil {
				logger.Log.Warn("failed to remove replaced resume", "user_id", target.ID, "error", err)
			}
		}
		target.Resume = req.Resume
		changed = true
	}

	if !changed {
		return nil, apperror.NotModified("No changes detected")
	}

	target.UpdatedBy = &actor.ID
	if err := u.userRepo.Update(ctx, target); err != nil {
		return nil, err
	}

	if err := u.cache.Invalidate(ctx, target.Role, target.ID); err != nil {
		logger.Log.Warn("failed to invalidate identity cache", "user_id", target.ID, "error", err)
	}
	return target, nil
}

func (u *userUsecase) RequestDeletion(ctx context.Context, actor *domain.User) error {
	if actor.Role == domain.RoleAdmin {
		return apperror.Forbidden("Admin accounts cannot request deletion")
	}
	if actor.DeletionRequested {
		return apperror.NotModified("Deletion already requested")
	}

	if err := u.userRepo.SetDeletionRequested(ctx, actor.ID); err != nil {
		return err
	}
	return u.cache.Invalidate(ctx, actor.Role, actor.ID)
}

// ApproveDeletion permanently erases an account that asked for it: stored
// uploads first, then the row itself. Everything else in the system
// soft-deletes; this is the one hard path.
func (u *userUsecase) ApproveDeletion(ctx context.Context, actor *domain.User, targetID string) error {
	if actor.Role != domain.RoleAdmin {
		return apperror.Forbidden("Only admins can approve account deletion")
	}

	target, err := u.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}
	if !target.DeletionRequested {
		return apperror.InvalidState("User has not requested account deletion")
	}

	if target.ProfilePic != nil {
		if err := u.files.Delete(*target.ProfilePic); err != nil {
			logger.Log.Warn("failed to remove profile picture during erasure", "user_id", target.ID, "error", err)
		}
	}
	if target.Resume != nil {
		if err := u.files.Delete(*target.Resume); err != nil {
			logger.Log.Warn("failed to remove resume during erasure", "user_id", target.ID, "error", err)
		}
	}

	if err := u.userRepo.HardDelete(ctx, targetID); err != nil {
		return err
	}
	return u.cache.Invalidate(ctx, target.Role, target.ID)
}

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
