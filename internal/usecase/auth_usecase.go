package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/token"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo    domain.UserRepository
	companyRepo domain.CompanyProfileRepository
	cache       domain.IdentityCache
	tokens      *token.Manager
}

func NewAuthUsecase(userRepo domain.UserRepository, companyRepo domain.CompanyProfileRepository, cache domain.IdentityCache, tokens *token.Manager) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		cache:       cache,
		tokens:      tokens,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResult, error) {
	if !req.Role.Valid() {
		return nil, apperror.BadRequest("Invalid role. Must be Admin, Employer or JobSeeker.")
	}
	if req.Role == domain.RoleAdmin {
		return nil, apperror.Forbidden("Admin accounts cannot be self-registered.")
	}

	// Employers are attached to a company profile at registration; no other
	// role carries one.
	if req.Role == domain.RoleEmployer {
		if req.CompanyID == nil || *req.CompanyID == "" {
			return nil, apperror.BadRequest("Employer registration requires a company_id.")
		}
		if _, err := u.companyRepo.GetByID(ctx, *req.CompanyID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("Company not found")
			}
			return nil, err
		}
	} else if req.CompanyID != nil {
		return nil, apperror.BadRequest("Only employers may be attached to a company.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Role:         req.Role,
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		CompanyID:    req.CompanyID,
	}
	user.IsActive = true
	user.CreatedBy = user.ID

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	accessToken, err := u.tokens.Issue(user.ID, user.Role.String())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if err := u.userRepo.UpdateSession(ctx, user.ID, &accessToken, true); err != nil {
		return nil, err
	}
	user.AccessToken = &accessToken

	if err := u.cache.Set(ctx, user); err != nil {
		logger.Log.Warn("failed to cache registered user", "user_id", user.ID, "error", err)
	}

	return &domain.AuthResult{User: user, AccessToken: accessToken}, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string, role domain.Role) (*domain.AuthResult, error) {
	if !role.Valid() {
		return nil, apperror.BadRequest("Invalid role. Must be Admin, Employer or JobSeeker.")
	}

	user, err := u.userRepo.GetByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, err
	}

	if user.IsBlocked {
		return nil, apperror.Forbidden("Your account has been blocked. Contact support.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	accessToken, err := u.tokens.Issue(user.ID, user.Role.String())
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if err := u.userRepo.UpdateSession(ctx, user.ID, &accessToken, true); err != nil {
		return nil, err
	}
	user.AccessToken = &accessToken
	user.IsActive = true

	if err := u.cache.Set(ctx, user); err != nil {
		logger.Log.Warn("failed to cache session user", "user_id", user.ID, "error", err)
	}

	return &domain.AuthResult{User: user, AccessToken: accessToken}, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}

	if err := u.userRepo.UpdateSession(ctx, userID, nil, false); err != nil {
		return err
	}
	return u.cache.Invalidate(ctx, user.Role, userID)
}

func (u *authUsecase) GetSessionUser(ctx context.Context, role domain.Role, userID string) (*domain.User, error) {
	if role.Valid() {
		if cached, err := u.cache.Get(ctx, role, userID); err == nil && cached != nil {
			return cached, nil
		}
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := u.cache.Set(ctx, user); err != nil {
		logger.Log.Warn("failed to cache session user", "user_id", user.ID, "error", err)
	}
	return user, nil
}

// EnsureAdminExists seeds the bootstrap admin when the users table holds no
// admin row. Called once at startup; a missing credential pair just logs.
func (u *authUsecase) EnsureAdminExists(ctx context.Context, email, password string) error {
	count, err := u.userRepo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if email == "" || password == "" {
		logger.Log.Warn("no admin account exists and ADMIN_EMAIL/ADMIN_PASSWORD are not set; admin endpoints are unreachable")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		ID:           uuid.NewString(),
		Role:         domain.RoleAdmin,
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrator",
	}
	admin.IsActive = true
	admin.CreatedBy = admin.ID

	if err := u.userRepo.Create(ctx, admin); err != nil {
		return err
	}
	logger.Log.Info("bootstrap admin account created", "email", email)
	return nil
}
