package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mansi2425/punjab-alumni-connect/internal/model"
	"github.com/mansi2425/punjab-alumni-connect/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithProfile(ctx context.Context, user *model.User, profile *model.Profile) error {
	args := m.Called(ctx, user, profile)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ListApprovedByRole(ctx context.Context, role model.Role, excludeID uint) ([]model.User, error) {
	args := m.Called(ctx, role, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) ListPending(ctx context.Context, institutionID uint, department string) ([]model.User, error) {
	args := m.Called(ctx, institutionID, department)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) SetApproved(ctx context.Context, id uint, approved bool) error {
	args := m.Called(ctx, id, approved)
	return args.Error(0)
}

func (m *MockUserRepository) Save(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CountApprovedByRole(ctx context.Context, role model.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountInInstitution(ctx context.Context, institutionID uint, role model.Role, approved bool) (int64, error) {
	args := m.Called(ctx, institutionID, role, approved)
	return args.Get(0).(int64), args.Error(1)
}

// MockInstitutionRepository is a mock implementation of InstitutionRepository.
// WithTransaction runs fn against the mock and Users.
type MockInstitutionRepository struct {
	mock.Mock
	Users *MockUserRepository
}

func (m *MockInstitutionRepository) Create(ctx context.Context, inst *model.Institution) error {
	args := m.Called(ctx, inst)
	return args.Error(0)
}

func (m *MockInstitutionRepository) FindByID(ctx context.Context, id uint) (*model.Institution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Institution), args.Error(1)
}

func (m *MockInstitutionRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Institution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Institution), args.Error(1)
}

func (m *MockInstitutionRepository) ExistsByContactEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInstitutionRepository) ListByStatus(ctx context.Context, status model.InstitutionStatus) ([]model.Institution, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Institution), args.Error(1)
}

func (m *MockInstitutionRepository) CountByStatus(ctx context.Context, status model.InstitutionStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInstitutionRepository) Update(ctx context.Context, inst *model.Institution) error {
	args := m.Called(ctx, inst)
	return args.Error(0)
}

func (m *MockInstitutionRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInstitutionRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.InstitutionRepository, users repository.UserRepository) error) error {
	return fn(ctx, m, m.Users)
}

// MockCache is a mock implementation of Cache that always misses on reads.
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	return false
}

func (m *MockCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) DeletePrefix(ctx context.Context, prefix string) error {
	args := m.Called(ctx, prefix)
	return args.Error(0)
}

// MockMentorshipRepository is a mock implementation of MentorshipRepository.
// WithTransaction runs fn against the mock itself.
type MockMentorshipRepository struct {
	mock.Mock
}

func (m *MockMentorshipRepository) Create(ctx context.Context, req *model.MentorshipRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockMentorshipRepository) FindByID(ctx context.Context, id uint) (*model.MentorshipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MentorshipRequest), args.Error(1)
}

func (m *MockMentorshipRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.MentorshipRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MentorshipRequest), args.Error(1)
}

func (m *MockMentorshipRepository) HasActiveBetween(ctx context.Context, requesterID, mentorID uint) (bool, error) {
	args := m.Called(ctx, requesterID, mentorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMentorshipRepository) UpdateStatus(ctx context.Context, req *model.MentorshipRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockMentorshipRepository) ListOutgoing(ctx context.Context, requesterID uint, status *model.RequestStatus) ([]model.MentorshipRequest, error) {
	args := m.Called(ctx, requesterID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MentorshipRequest), args.Error(1)
}

func (m *MockMentorshipRepository) ListIncomingPending(ctx context.Context, mentorID uint) ([]model.MentorshipRequest, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MentorshipRequest), args.Error(1)
}

func (m *MockMentorshipRepository) CreateConnection(ctx context.Context, conn *model.ConnectionInfo) error {
	args := m.Called(ctx, conn)
	return args.Error(0)
}

func (m *MockMentorshipRepository) FindConnectionByRequestID(ctx context.Context, requestID uint) (*model.ConnectionInfo, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConnectionInfo), args.Error(1)
}

func (m *MockMentorshipRepository) ListConnectionsFor(ctx context.Context, userID uint) ([]model.ConnectionInfo, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ConnectionInfo), args.Error(1)
}

func (m *MockMentorshipRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.MentorshipRepository) error) error {
	return fn(ctx, m)
}

// MockJobRepository is a mock implementation of JobRepository.
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *model.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Job), args.Error(1)
}

func (m *MockJobRepository) List(ctx context.Context) ([]model.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Job), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, job *model.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventRepository is a mock implementation of EventRepository.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGenerator is a mock implementation of assistant.Generator.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
