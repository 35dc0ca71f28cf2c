package service

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mansi2425/punjab-alumni-connect/internal/cache"
	"github.com/mansi2425/punjab-alumni-connect/internal/errors"
	"github.com/mansi2425/punjab-alumni-connect/internal/model"
)

func newInstitutionService(repo *MockInstitutionRepository, users *MockUserRepository) InstitutionService {
	repo.Users = users
	return NewInstitutionService(repo, users, (*cache.Client)(nil), zap.NewNop())
}

func superAdmin() *model.User {
	return withProfile(1, model.RoleSuperAdmin, true, model.Profile{})
}

func pendingInstitution() *model.Institution {
	return &model.Institution{
		ID:            gndecID,
		Name:          "GNDEC Ludhiana",
		ContactPerson: "Harpreet Kaur",
		ContactEmail:  "principal@gndec.ac.in",
		Status:        model.InstitutionStatusPending,
	}
}

func TestInstitutionService_Apply(t *testing.T) {
	tests := []struct {
		name       string
		input      InstitutionInput
		setupMocks func(*MockInstitutionRepository)
		wantErr    error
	}{
		{
			name:  "pending application is recorded",
			input: InstitutionInput{Name: " GNDEC Ludhiana ", ContactPerson: "Harpreet Kaur", ContactEmail: "Principal@GNDEC.ac.in"},
			setupMocks: func(repo *MockInstitutionRepository) {
				repo.On("ExistsByContactEmail", mock.Anything, "principal@gndec.ac.in", uint(0)).Return(false, nil)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(inst *model.Institution) bool {
					return inst.Name == "GNDEC Ludhiana" && inst.Status == model.InstitutionStatusPending
				})).Return(nil)
			},
		},
		{
			name:       "missing name",
			input:      InstitutionInput{ContactPerson: "Harpreet Kaur", ContactEmail: "principal@gndec.ac.in"},
			setupMocks: func(*MockInstitutionRepository) {},
			wantErr:    errors.ErrInvalidInstitution,
		},
		{
			name:       "malformed contact email",
			input:      InstitutionInput{Name: "GNDEC", ContactPerson: "Harpreet Kaur", ContactEmail: "principal"},
			setupMocks: func(*MockInstitutionRepository) {},
			wantErr:    errors.ErrInvalidArgument,
		},
		{
			name:  "contact email already used",
			input: InstitutionInput{Name: "GNDEC", ContactPerson: "Harpreet Kaur", ContactEmail: "principal@gndec.ac.in"},
			setupMocks: func(repo *MockInstitutionRepository) {
				repo.On("ExistsByContactEmail", mock.Anything, "principal@gndec.ac.in", uint(0)).Return(true, nil)
			},
			wantErr: errors.ErrConflict,
		},
		{
			name:  "unique index race",
			input: InstitutionInput{Name: "GNDEC", ContactPerson: "Harpreet Kaur", ContactEmail: "principal@gndec.ac.in"},
			setupMocks: func(repo *MockInstitutionRepository) {
				repo.On("ExistsByContactEmail", mock.Anything, "principal@gndec.ac.in", uint(0)).Return(false, nil)
				repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
			},
			wantErr: errors.ErrInstitutionAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockInstitutionRepository)
			tt.setupMocks(repo)

			inst, err := newInstitutionService(repo, new(MockUserRepository)).Apply(context.Background(), tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, inst)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "principal@gndec.ac.in", inst.ContactEmail)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestInstitutionService_Lists(t *testing.T) {
	t.Run("approved list is public and never nil", func(t *testing.T) {
		repo := new(MockInstitutionRepository)
		repo.On("ListByStatus", mock.Anything, model.InstitutionStatusApproved).Return(nil, nil)

		insts, err := newInstitutionService(repo, new(MockUserRepository)).ListApproved(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, insts)
		assert.Empty(t, insts)
	})

	t.Run("pending list needs a super admin", func(t *testing.T) {
		repo := new(MockInstitutionRepository)
		repo.On("ListByStatus", mock.Anything, model.InstitutionStatusPending).Return([]model.Institution{*pendingInstitution()}, nil)
		svc := newInstitutionService(repo, new(MockUserRepository))

		insts, err := svc.ListPending(context.Background(), superAdmin())
		require.NoError(t, err)
		assert.Len(t, insts, 1)

		_, err = svc.ListPending(context.Background(), withProfile(2, model.RoleInstitutionAdmin, true, model.Profile{InstitutionID: uintPtr(gndecID)}))
		assert.ErrorIs(t, err, errors.ErrPermissionDenied)
		repo.AssertNumberOfCalls(t, "ListByStatus", 1)
	})
}

func TestInstitutionService_Approve(t *testing.T) {
	tests := []struct {
		name        string
		actor       *model.User
		setupMocks  func(*MockInstitutionRepository, *MockUserRepository)
		wantErr     error
		wantCreated bool
		wantAdmin   string
	}{
		{
			name:  "creates the institution admin",
			actor: superAdmin(),
			setupMocks: func(repo *MockInstitutionRepository, users *MockUserRepository) {
				repo.On("FindByIDForUpdate", mock.Anything, gndecID).Return(pendingInstitution(), nil)
				users.On("FindByEmail", mock.Anything, "principal@gndec.ac.in").Return(nil, gorm.ErrRecordNotFound)
				users.On("ExistsByUsernameOrEmail", mock.Anything, "principal", "principal@gndec.ac.in").Return(false, nil)
				users.On("CreateWithProfile", mock.Anything,
					mock.MatchedBy(func(u *model.User) bool {
						return u.Role == model.RoleInstitutionAdmin && u.IsApproved && u.Username == "principal"
					}),
					mock.MatchedBy(func(p *model.Profile) bool { return p.InstitutionID != nil && *p.InstitutionID == gndecID }),
				).Run(func(args mock.Arguments) {
					args.Get(1).(*model.User).ID = 40
				}).Return(nil)
				repo.On("Update", mock.Anything, mock.MatchedBy(func(inst *model.Institution) bool {
					return inst.Status == model.InstitutionStatusApproved && inst.AdminID != nil && *inst.AdminID == 40
				})).Return(nil)
			},
			wantCreated: true,
			wantAdmin:   "principal",
		},
		{
			name:  "taken username gets the institution id",
			actor: superAdmin(),
			setupMocks: func(repo *MockInstitutionRepository, users *MockUserRepository) {
				repo.On("FindByIDForUpdate", mock.Anything, gndecID).Return(pendingInstitution(), nil)
				users.On("FindByEmail", mock.Anything, "principal@gndec.ac.in").Return(nil, gorm.ErrRecordNotFound)
				users.On("ExistsByUsernameOrEmail", mock.Anything, "principal", "principal@gndec.ac.in").Return(true, nil)
				users.On("CreateWithProfile", mock.Anything,
					mock.MatchedBy(func(u *model.User) bool { return u.Username == "principal-1" }),
					mock.Anything,
				).Return(nil)
				repo.On("Update", mock.Anything, mock.Anything).Return(nil)
			},
			wantCreated: true,
			wantAdmin:   "principal-1",
		},
		{
			name:  "links an existing institution admin",
			actor: superAdmin(),
			setupMocks: func(repo *MockInstitutionRepository, users *MockUserRepository) {
				repo.On("FindByIDForUpdate", mock.Anything, gndecID).Return(pendingInstitution(), nil)
				existing := withProfile(41, model.RoleInstitutionAdmin, false, model.Profile{})
				existing.Username = "hkaur"
				users.On("FindByEmail", mock.Anything, "principal@gndec.ac.in").Return(existing, nil)
				users.On("Save", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.IsApproved && u.Profile.InstitutionID != nil && *u.Profile.InstitutionID == gndecID
				})).Return(nil)
				repo.On("Update", mock.Anything, mock.Anything).Return(nil)
			},
			wantAdmin: "hkaur",
		},
		{
			name:  "contact email belongs to a student",
			actor: superAdmin(),
			setupMocks: func(repo *MockInstitutionRepository, users *MockUserRepository) {
				repo.On("FindByIDForUpdate", mock.Anything, gndecID).Return(pendingInstitution(), nil)
				users.On("FindByEmail", mock.Anything, "principal@gndec.ac.in").Return(withProfile(42, model.RoleStudent, true, model.Profile{}), nil)
			},
			wantErr: errors.ErrUserAlreadyExists,
		},
		{
			name:  "already approved",
			actor: superAdmin(),
			setupMocks: func(repo *MockInstitutionRepository, _ *MockUserRepository) {
				approved := pendingInstitution()
				approved.Status = model.InstitutionStatusApproved
				repo.On("FindByIDForUpdate", mock.Anything, gndecID).Return(approved, nil)
			},
			wantErr: errors.ErrInstitutionAlreadyResolved,
		},
		{
			name:  "unknown institution",
			actor: superAdmin(),
			setupMocks: func(repo *MockInstitutionRepository, _ *MockUserRepository) {
				repo.On("FindByIDForUpdate", mock.Anything, gndecID).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: errors.ErrNotFound,
		},
		{
			name:       "department admin cannot approve",
			actor:      withProfile(3, model.RoleDepartmentAdmin, true, model.Profile{InstitutionID: uintPtr(gndecID), Department: "CSE"}),
			setupMocks: func(*MockInstitutionRepository, *MockUserRepository) {},
			wantErr:    errors.ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockInstitutionRepository)
			users := new(MockUserRepository)
			tt.setupMocks(repo, users)

			result, err := newInstitutionService(repo, users).Approve(context.Background(), tt.actor, gndecID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
				repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, model.InstitutionStatusApproved, result.Institution.Status)
				assert.Equal(t, tt.wantCreated, result.AdminCreated)
				assert.Equal(t, tt.wantAdmin, result.Admin.Username)
			}
			repo.AssertExpectations(t)
			users.AssertExpectations(t)
		})
	}
}

func TestInstitutionService_Reject(t *testing.T) {
	t.Run("pending application is rejected", func(t *testing.T) {
		repo := new(MockInstitutionRepository)
		repo.On("FindByIDForUpdate", mock.Anything, gndecID).Return(pendingInstitution(), nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(inst *model.Institution) bool {
			return inst.Status == model.InstitutionStatusRejected && inst.AdminID == nil
		})).Return(nil)

		inst, err := newInstitutionService(repo, new(MockUserRepository)).Reject(context.Background(), superAdmin(), gndecID)

		require.NoError(t, err)
		assert.Equal(t, model.InstitutionStatusRejected, inst.Status)
		repo.AssertExpectations(t)
	})

	t.Run("rejected application cannot be rejected again", func(t *testing.T) {
		repo := new(MockInstitutionRepository)
		rejected := pendingInstitution()
		rejected.Status = model.InstitutionStatusRejected
		repo.On("FindByIDForUpdate", mock.Anything, gndecID).Return(rejected, nil)

		_, err := newInstitutionService(repo, new(MockUserRepository)).Reject(context.Background(), superAdmin(), gndecID)

		assert.ErrorIs(t, err, errors.ErrConflict)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestInstitutionService_Update(t *testing.T) {
	input := InstitutionInput{Name: "GNDEC", ContactPerson: "Harpreet Kaur", ContactEmail: "office@gndec.ac.in", ContactPhone: "0161"}

	t.Run("edits contact details and keeps status", func(t *testing.T) {
		repo := new(MockInstitutionRepository)
		repo.On("FindByID", mock.Anything, gndecID).Return(pendingInstitution(), nil)
		repo.On("ExistsByContactEmail", mock.Anything, "office@gndec.ac.in", gndecID).Return(false, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(inst *model.Institution) bool {
			return inst.ContactEmail == "office@gndec.ac.in" && inst.Status == model.InstitutionStatusPending
		})).Return(nil)

		inst, err := newInstitutionService(repo, new(MockUserRepository)).Update(context.Background(), superAdmin(), gndecID, input)

		require.NoError(t, err)
		assert.Equal(t, "0161", inst.ContactPhone)
		repo.AssertExpectations(t)
	})

	t.Run("contact email of another institution", func(t *testing.T) {
		repo := new(MockInstitutionRepository)
		repo.On("FindByID", mock.Anything, gndecID).Return(pendingInstitution(), nil)
		repo.On("ExistsByContactEmail", mock.Anything, "office@gndec.ac.in", gndecID).Return(true, nil)

		_, err := newInstitutionService(repo, new(MockUserRepository)).Update(context.Background(), superAdmin(), gndecID, input)

		assert.ErrorIs(t, err, errors.ErrInstitutionAlreadyExists)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestInstitutionService_Delete(t *testing.T) {
	tests := []struct {
		name       string
		actor      *model.User
		setupMocks func(*MockInstitutionRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name:  "super admin deletes",
			actor: superAdmin(),
			setupMocks: func(repo *MockInstitutionRepository) {
				repo.On("FindByID", mock.Anything, gndecID).Return(pendingInstitution(), nil)
				repo.On("Delete", mock.Anything, gndecID).Return(nil)
			},
		},
		{
			name:  "unknown institution",
			actor: superAdmin(),
			setupMocks: func(repo *MockInstitutionRepository) {
				repo.On("FindByID", mock.Anything, gndecID).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: errors.ErrInstitutionNotFound,
		},
		{
			name:       "institution admin cannot delete",
			actor:      withProfile(2, model.RoleInstitutionAdmin, true, model.Profile{InstitutionID: uintPtr(gndecID)}),
			setupMocks: func(*MockInstitutionRepository) {},
			wantErr:    errors.ErrPermissionDenied,
		},
		{
			name:  "storage failure is wrapped",
			actor: superAdmin(),
			setupMocks: func(repo *MockInstitutionRepository) {
				repo.On("FindByID", mock.Anything, gndecID).Return(pendingInstitution(), nil)
				repo.On("Delete", mock.Anything, gndecID).Return(stderrors.New("disk full"))
			},
			wantErrMsg: "delete institution: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockInstitutionRepository)
			tt.setupMocks(repo)

			err := newInstitutionService(repo, new(MockUserRepository)).Delete(context.Background(), tt.actor, gndecID)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
			default:
				require.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestInstitutionService_MyStats(t *testing.T) {
	t.Run("counts members of the admin's institution", func(t *testing.T) {
		repo := new(MockInstitutionRepository)
		users := new(MockUserRepository)
		approved := pendingInstitution()
		approved.Status = model.InstitutionStatusApproved
		repo.On("FindByID", mock.Anything, gndecID).Return(approved, nil)
		users.On("CountInInstitution", mock.Anything, gndecID, model.RoleAlumni, true).Return(int64(12), nil)
		users.On("CountInInstitution", mock.Anything, gndecID, model.RoleStudent, true).Return(int64(30), nil)
		users.On("CountInInstitution", mock.Anything, gndecID, model.Role(""), false).Return(int64(4), nil)

		actor := withProfile(2, model.RoleInstitutionAdmin, true, model.Profile{InstitutionID: uintPtr(gndecID)})
		stats, err := newInstitutionService(repo, users).MyStats(context.Background(), actor)

		require.NoError(t, err)
		assert.Equal(t, InstitutionStats{
			InstitutionName:  "GNDEC Ludhiana",
			AlumniCount:      12,
			StudentCount:     30,
			PendingApprovals: 4,
		}, *stats)
		users.AssertExpectations(t)
	})

	t.Run("admin without institution", func(t *testing.T) {
		repo := new(MockInstitutionRepository)
		actor := withProfile(2, model.RoleInstitutionAdmin, true, model.Profile{})

		_, err := newInstitutionService(repo, new(MockUserRepository)).MyStats(context.Background(), actor)

		assert.ErrorIs(t, err, errors.ErrForbidden)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("super admin has no institution of their own", func(t *testing.T) {
		_, err := newInstitutionService(new(MockInstitutionRepository), new(MockUserRepository)).MyStats(context.Background(), superAdmin())

		assert.ErrorIs(t, err, errors.ErrPermissionDenied)
	})
}
