package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mansi2425/punjab-alumni-connect/internal/cache"
	"github.com/mansi2425/punjab-alumni-connect/internal/errors"
	"github.com/mansi2425/punjab-alumni-connect/internal/model"
)

const (
	gndecID uint = 1
	pecID   uint = 2
)

func newUserService(repo *MockUserRepository) UserService {
	// a nil cache client behaves like an always-empty cache
	return newUserServiceWith(repo, new(MockInstitutionRepository), (*cache.Client)(nil))
}

func newUserServiceWith(repo *MockUserRepository, institutions *MockInstitutionRepository, c Cache) UserService {
	return NewUserService(repo, institutions, c, time.Minute, zap.NewNop())
}

func uintPtr(v uint) *uint { return &v }

func withProfile(id uint, role model.Role, approved bool, p model.Profile) *model.User {
	p.UserID = id
	return &model.User{ID: id, Username: "user", Role: role, IsApproved: approved, Profile: &p}
}

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name       string
		input      RegisterInput
		setupMocks func(*MockUserRepository)
		wantErr    error
	}{
		{
			name:  "successful registration",
			input: RegisterInput{Username: "alice", Email: "Alice@Example.com", Role: model.RoleStudent, Profile: ProfileInput{Skills: strPtr("python")}},
			setupMocks: func(repo *MockUserRepository) {
				repo.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").Return(false, nil)
				repo.On("CreateWithProfile", mock.Anything,
					mock.MatchedBy(func(u *model.User) bool { return !u.IsApproved && u.Role == model.RoleStudent }),
					mock.MatchedBy(func(p *model.Profile) bool { return p.Skills == "python" }),
				).Return(nil)
			},
		},
		{
			name:  "role defaults to student",
			input: RegisterInput{Username: "erin", Email: "erin@example.com"},
			setupMocks: func(repo *MockUserRepository) {
				repo.On("ExistsByUsernameOrEmail", mock.Anything, "erin", "erin@example.com").Return(false, nil)
				repo.On("CreateWithProfile", mock.Anything,
					mock.MatchedBy(func(u *model.User) bool { return u.Role == model.RoleStudent }),
					mock.Anything,
				).Return(nil)
			},
		},
		{
			name:       "admin roles cannot self register",
			input:      RegisterInput{Username: "mallory", Email: "m@example.com", Role: model.RoleSuperAdmin},
			setupMocks: func(*MockUserRepository) {},
			wantErr:    errors.ErrPermissionDenied,
		},
		{
			name:       "unknown role",
			input:      RegisterInput{Username: "x", Email: "x@example.com", Role: model.Role("wizard")},
			setupMocks: func(*MockUserRepository) {},
			wantErr:    errors.ErrInvalidRole,
		},
		{
			name:  "username taken",
			input: RegisterInput{Username: "alice", Email: "new@example.com", Role: model.RoleAlumni},
			setupMocks: func(repo *MockUserRepository) {
				repo.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "new@example.com").Return(true, nil)
			},
			wantErr: errors.ErrUserAlreadyExists,
		},
		{
			name:  "unique index race",
			input: RegisterInput{Username: "bob", Email: "bob@example.com", Role: model.RoleAlumni},
			setupMocks: func(repo *MockUserRepository) {
				repo.On("ExistsByUsernameOrEmail", mock.Anything, "bob", "bob@example.com").Return(false, nil)
				repo.On("CreateWithProfile", mock.Anything, mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
			},
			wantErr: errors.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMocks(repo)

			user, err := newUserService(repo).Register(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.False(t, user.IsApproved)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_RecommendMentors(t *testing.T) {
	candidates := []model.User{
		*withProfile(10, model.RoleAlumni, true, model.Profile{Skills: "python, java"}),
		*withProfile(11, model.RoleAlumni, true, model.Profile{Skills: "python,django"}),
		*withProfile(12, model.RoleAlumni, true, model.Profile{Skills: "go"}),
		*withProfile(13, model.RoleAlumni, true, model.Profile{Skills: "react"}),
		*withProfile(14, model.RoleAlumni, true, model.Profile{Skills: "django"}),
	}

	t.Run("ranks top three by overlap", func(t *testing.T) {
		repo := new(MockUserRepository)
		actor := withProfile(1, model.RoleStudent, true, model.Profile{Skills: "Python, Django, React"})
		repo.On("ListApprovedByRole", mock.Anything, model.RoleAlumni, uint(1)).Return(candidates, nil)

		matches, err := newUserService(repo).RecommendMentors(context.Background(), actor)

		require.NoError(t, err)
		require.Len(t, matches, 3)
		assert.Equal(t, uint(11), matches[0].Mentor.ID)
		assert.Equal(t, 2, matches[0].Score)
		assert.Equal(t, uint(10), matches[1].Mentor.ID)
		assert.Equal(t, uint(13), matches[2].Mentor.ID)
		repo.AssertExpectations(t)
	})

	t.Run("no skills returns empty list", func(t *testing.T) {
		repo := new(MockUserRepository)
		actor := withProfile(1, model.RoleStudent, true, model.Profile{Skills: " , "})

		matches, err := newUserService(repo).RecommendMentors(context.Background(), actor)

		require.NoError(t, err)
		assert.NotNil(t, matches)
		assert.Empty(t, matches)
		repo.AssertNotCalled(t, "ListApprovedByRole", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no profile returns empty list", func(t *testing.T) {
		repo := new(MockUserRepository)
		actor := &model.User{ID: 1, Role: model.RoleStudent}

		matches, err := newUserService(repo).RecommendMentors(context.Background(), actor)

		require.NoError(t, err)
		assert.Empty(t, matches)
	})
}

func TestUserService_Approve(t *testing.T) {
	pending := func() *model.User {
		return withProfile(9, model.RoleStudent, false, model.Profile{InstitutionID: uintPtr(gndecID), Department: "CSE"})
	}

	tests := []struct {
		name       string
		actor      *model.User
		setupMocks func(*MockUserRepository)
		wantErr    error
	}{
		{
			name:  "super admin approves",
			actor: withProfile(1, model.RoleSuperAdmin, true, model.Profile{}),
			setupMocks: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, uint(9)).Return(pending(), nil)
				repo.On("SetApproved", mock.Anything, uint(9), true).Return(nil)
			},
		},
		{
			name:  "department admin in scope approves",
			actor: withProfile(2, model.RoleDepartmentAdmin, true, model.Profile{InstitutionID: uintPtr(gndecID), Department: "CSE"}),
			setupMocks: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, uint(9)).Return(pending(), nil)
				repo.On("SetApproved", mock.Anything, uint(9), true).Return(nil)
			},
		},
		{
			name:  "already approved is a no-op",
			actor: withProfile(1, model.RoleSuperAdmin, true, model.Profile{}),
			setupMocks: func(repo *MockUserRepository) {
				approved := pending()
				approved.IsApproved = true
				repo.On("FindByID", mock.Anything, uint(9)).Return(approved, nil)
			},
		},
		{
			name:  "alumni cannot approve",
			actor: withProfile(3, model.RoleAlumni, true, model.Profile{InstitutionID: uintPtr(gndecID)}),
			setupMocks: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, uint(9)).Return(pending(), nil)
			},
			wantErr: errors.ErrPermissionDenied,
		},
		{
			name:  "institution admin of another institution",
			actor: withProfile(4, model.RoleInstitutionAdmin, true, model.Profile{InstitutionID: uintPtr(pecID)}),
			setupMocks: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, uint(9)).Return(pending(), nil)
			},
			wantErr: errors.ErrForbidden,
		},
		{
			name:  "unknown user",
			actor: withProfile(1, model.RoleSuperAdmin, true, model.Profile{}),
			setupMocks: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMocks(repo)

			user, err := newUserService(repo).Approve(context.Background(), tt.actor, 9)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "SetApproved", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.True(t, user.IsApproved)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_ListPending(t *testing.T) {
	t.Run("department admin is scoped", func(t *testing.T) {
		repo := new(MockUserRepository)
		actor := withProfile(2, model.RoleDepartmentAdmin, true, model.Profile{InstitutionID: uintPtr(gndecID), Department: "CSE"})
		repo.On("ListPending", mock.Anything, gndecID, "CSE").Return([]model.User{}, nil)

		_, err := newUserService(repo).ListPending(context.Background(), actor)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("institution admin without institution sees nothing", func(t *testing.T) {
		repo := new(MockUserRepository)
		actor := withProfile(2, model.RoleInstitutionAdmin, true, model.Profile{})

		users, err := newUserService(repo).ListPending(context.Background(), actor)

		require.NoError(t, err)
		assert.Empty(t, users)
		repo.AssertNotCalled(t, "ListPending", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("students are forbidden", func(t *testing.T) {
		repo := new(MockUserRepository)
		_, err := newUserService(repo).ListPending(context.Background(), withProfile(5, model.RoleStudent, true, model.Profile{}))

		assert.ErrorIs(t, err, errors.ErrPermissionDenied)
	})
}

func TestUserService_PlatformStats(t *testing.T) {
	repo := new(MockUserRepository)
	institutions := new(MockInstitutionRepository)
	institutions.On("CountByStatus", mock.Anything, model.InstitutionStatusApproved).Return(int64(3), nil)
	repo.On("CountApprovedByRole", mock.Anything, model.RoleAlumni).Return(int64(4), nil)
	repo.On("CountApprovedByRole", mock.Anything, model.RoleStudent).Return(int64(7), nil)
	svc := newUserServiceWith(repo, institutions, (*cache.Client)(nil))

	stats, err := svc.PlatformStats(context.Background(), withProfile(1, model.RoleSuperAdmin, true, model.Profile{}))
	require.NoError(t, err)
	assert.Equal(t, PlatformStats{InstitutionCount: 3, AlumniCount: 4, StudentCount: 7}, *stats)

	_, err = svc.PlatformStats(context.Background(), withProfile(2, model.RoleInstitutionAdmin, true, model.Profile{InstitutionID: uintPtr(gndecID)}))
	assert.ErrorIs(t, err, errors.ErrPermissionDenied)
	institutions.AssertExpectations(t)
}

func TestUserService_UpdateProfile(t *testing.T) {
	repo := new(MockUserRepository)
	stored := withProfile(1, model.RoleStudent, true, model.Profile{Skills: "python", Company: "Acme"})
	repo.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.FirstName == "Alice" && u.Profile.Skills == "python, go" && u.Profile.Company == "Acme"
	})).Return(nil)

	user, err := newUserService(repo).UpdateProfile(context.Background(), &model.User{ID: 1}, UpdateProfileInput{
		FirstName: strPtr("Alice"),
		Profile:   ProfileInput{Skills: strPtr("python, go")},
	})

	require.NoError(t, err)
	assert.Equal(t, "python, go", user.Profile.Skills)
	repo.AssertExpectations(t)
}

func TestUserService_RegisterChecksInstitution(t *testing.T) {
	tests := []struct {
		name    string
		stored  *model.Institution
		findErr error
		wantErr error
	}{
		{"approved institution", &model.Institution{ID: gndecID, Status: model.InstitutionStatusApproved}, nil, nil},
		{"pending institution", &model.Institution{ID: gndecID, Status: model.InstitutionStatusPending}, nil, errors.ErrInstitutionNotFound},
		{"missing institution", nil, gorm.ErrRecordNotFound, errors.ErrInstitutionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			institutions := new(MockInstitutionRepository)
			institutions.On("FindByID", mock.Anything, gndecID).Return(tt.stored, tt.findErr)
			if tt.wantErr == nil {
				repo.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").Return(false, nil)
				repo.On("CreateWithProfile", mock.Anything, mock.Anything,
					mock.MatchedBy(func(p *model.Profile) bool { return p.InstitutionID != nil && *p.InstitutionID == gndecID }),
				).Return(nil)
			}

			_, err := newUserServiceWith(repo, institutions, (*cache.Client)(nil)).Register(context.Background(), RegisterInput{
				Username: "alice",
				Email:    "alice@example.com",
				Profile:  ProfileInput{InstitutionID: uintPtr(gndecID)},
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "CreateWithProfile", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestUserService_RecommendationsInvalidatedForEveryone(t *testing.T) {
	t.Run("approving a user", func(t *testing.T) {
		repo := new(MockUserRepository)
		c := new(MockCache)
		repo.On("FindByID", mock.Anything, uint(9)).Return(withProfile(9, model.RoleAlumni, false, model.Profile{Skills: "go"}), nil)
		repo.On("SetApproved", mock.Anything, uint(9), true).Return(nil)
		c.On("Delete", mock.Anything, "stats:platform").Return(nil)
		c.On("DeletePrefix", mock.Anything, "recommend:").Return(nil)

		_, err := newUserServiceWith(repo, new(MockInstitutionRepository), c).
			Approve(context.Background(), withProfile(1, model.RoleSuperAdmin, true, model.Profile{}), 9)

		require.NoError(t, err)
		c.AssertExpectations(t)
	})

	t.Run("editing skills", func(t *testing.T) {
		repo := new(MockUserRepository)
		c := new(MockCache)
		repo.On("FindByID", mock.Anything, uint(2)).Return(withProfile(2, model.RoleAlumni, true, model.Profile{Skills: "go"}), nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)
		c.On("DeletePrefix", mock.Anything, "recommend:").Return(nil)

		_, err := newUserServiceWith(repo, new(MockInstitutionRepository), c).
			UpdateProfile(context.Background(), &model.User{ID: 2}, UpdateProfileInput{Profile: ProfileInput{Skills: strPtr("go, rust")}})

		require.NoError(t, err)
		c.AssertExpectations(t)
		c.AssertNotCalled(t, "Delete", mock.Anything, "recommend:2")
	})
}
