package usecase_test

import (
	"context"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmailAndRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) FetchActive(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) FetchDeleted(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) UpdateSession(ctx context.Context, id string, token *string, isActive bool) error {
	return m.Called(ctx, id, token, isActive).Error(0)
}
func (m *MockUserRepo) SetDeletionRequested(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUserRepo) HardDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUserRepo) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, profile *domain.CompanyProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockCompanyRepo) GetByID(ctx context.Context, id string) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}
func (m *MockCompanyRepo) GetByName(ctx context.Context, name string) (*domain.CompanyProfile, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyProfile), args.Error(1)
}
func (m *MockCompanyRepo) Update(ctx context.Context, profile *domain.CompanyProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) GetByEmployerAndTitle(ctx context.Context, employerID, title string) (*domain.Job, error) {
	args := m.Called(ctx, employerID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Search(ctx context.Context, filter domain.JobSearchFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) SetApproval(ctx context.Context, id string, status domain.JobStatus, actorID string, at time.Time) error {
	return m.Called(ctx, id, status, actorID, at).Error(0)
}
func (m *MockJobRepo) SetStatus(ctx context.Context, id string, status domain.JobStatus, actorID string) error {
	return m.Called(ctx, id, status, actorID).Error(0)
}
func (m *MockJobRepo) IncrementApplicants(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
func (m *MockJobRepo) SoftDelete(ctx context.Context, id string, actorID string) error {
	return m.Called(ctx, id, actorID).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) FetchByEmployer(ctx context.Context, employerID string) ([]domain.Application, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) Exists(ctx context.Context, jobID, jobSeekerID string) (bool, error) {
	args := m.Called(ctx, jobID, jobSeekerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus, actorID string) error {
	return m.Called(ctx, id, status, actorID).Error(0)
}
func (m *MockApplicationRepo) SoftDelete(ctx context.Context, id string, actorID string) error {
	return m.Called(ctx, id, actorID).Error(0)
}

type MockInviteRepo struct {
	mock.Mock
}

func (m *MockInviteRepo) Create(ctx context.Context, invite *domain.InterviewInvitation) error {
	return m.Called(ctx, invite).Error(0)
}
func (m *MockInviteRepo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.InterviewInvitation, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewInvitation), args.Error(1)
}

type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) Create(ctx context.Context, fb *domain.Feedback) error {
	return m.Called(ctx, fb).Error(0)
}
func (m *MockFeedbackRepo) GetByID(ctx context.Context, id string) (*domain.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feedback), args.Error(1)
}
func (m *MockFeedbackRepo) Exists(ctx context.Context, employerID, jobSeekerID string) (bool, error) {
	args := m.Called(ctx, employerID, jobSeekerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockFeedbackRepo) FetchForJobSeeker(ctx context.Context, jobSeekerID string) ([]domain.Feedback, error) {
	args := m.Called(ctx, jobSeekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}
func (m *MockFeedbackRepo) Update(ctx context.Context, fb *domain.Feedback) error {
	return m.Called(ctx, fb).Error(0)
}
func (m *MockFeedbackRepo) SoftDelete(ctx context.Context, id string, actorID string) error {
	return m.Called(ctx, id, actorID).Error(0)
}

// MockCache records identity cache traffic without a Redis instance.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, role domain.Role, userID string) (*domain.User, error) {
	args := m.Called(ctx, role, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockCache) Set(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockCache) Invalidate(ctx context.Context, role domain.Role, userID string) error {
	return m.Called(ctx, role, userID).Error(0)
}

// MockNotifier records fire-and-forget notifications.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyApplicationStatus(recipient, jobTitle string, status domain.ApplicationStatus) {
	m.Called(recipient, jobTitle, status)
}
func (m *MockNotifier) NotifyInterviewScheduled(recipient, jobTitle string, invite *domain.InterviewInvitation) {
	m.Called(recipient, jobTitle, invite)
}

type MockFileRemover struct {
	mock.Mock
}

func (m *MockFileRemover) Delete(relPath string) error {
	return m.Called(relPath).Error(0)
}
