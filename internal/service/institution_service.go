package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mansi2425/punjab-alumni-connect/internal/errors"
	"github.com/mansi2425/punjab-alumni-connect/internal/model"
	"github.com/mansi2425/punjab-alumni-connect/internal/policy"
	"github.com/mansi2425/punjab-alumni-connect/internal/repository"
)

// InstitutionInput carries the application and editable fields of an institution.
type InstitutionInput struct {
	Name          string
	Address       string
	ContactPerson string
	ContactEmail  string
	ContactPhone  string
}

// ApproveInstitutionResult is the approved institution and its admin account.
type ApproveInstitutionResult struct {
	Institution  *model.Institution `json:"institution"`
	Admin        *model.User        `json:"admin"`
	AdminCreated bool               `json:"admin_created"`
}

// InstitutionStats summarizes the membership of one institution.
type InstitutionStats struct {
	InstitutionName  string `json:"institution_name"`
	AlumniCount      int64  `json:"alumni_count"`
	StudentCount     int64  `json:"student_count"`
	PendingApprovals int64  `json:"pending_approvals"`
}

// InstitutionService handles institution applications and their review.
type InstitutionService interface {
	Apply(ctx context.Context, input InstitutionInput) (*model.Institution, error)
	ListApproved(ctx context.Context) ([]model.Institution, error)
	ListPending(ctx context.Context, actor *model.User) ([]model.Institution, error)
	Get(ctx context.Context, actor *model.User, id uint) (*model.Institution, error)
	Update(ctx context.Context, actor *model.User, id uint, input InstitutionInput) (*model.Institution, error)
	Delete(ctx context.Context, actor *model.User, id uint) error
	Approve(ctx context.Context, actor *model.User, id uint) (*ApproveInstitutionResult, error)
	Reject(ctx context.Context, actor *model.User, id uint) (*model.Institution, error)
	MyStats(ctx context.Context, actor *model.User) (*InstitutionStats, error)
}

type institutionService struct {
	repo  repository.InstitutionRepository
	users repository.UserRepository
	cache Cache
	log   *zap.Logger
}

// NewInstitutionService creates an institution service.
func NewInstitutionService(repo repository.InstitutionRepository, users repository.UserRepository, cache Cache, log *zap.Logger) InstitutionService {
	return &institutionService{
		repo:  repo,
		users: users,
		cache: cache,
		log:   log,
	}
}

func (in InstitutionInput) normalized() (InstitutionInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.ContactPerson = strings.TrimSpace(in.ContactPerson)
	in.ContactEmail = strings.ToLower(strings.TrimSpace(in.ContactEmail))
	in.ContactPhone = strings.TrimSpace(in.ContactPhone)
	if in.Name == "" || in.ContactPerson == "" || !strings.Contains(in.ContactEmail, "@") {
		return in, errors.ErrInvalidInstitution
	}
	return in, nil
}

// Apply records a pending application. No account is needed.
func (s *institutionService) Apply(ctx context.Context, input InstitutionInput) (*model.Institution, error) {
	input, err := input.normalized()
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByContactEmail(ctx, input.ContactEmail, 0)
	if err != nil {
		return nil, fmt.Errorf("check contact email: %w", err)
	}
	if exists {
		return nil, errors.ErrInstitutionAlreadyExists
	}

	inst := &model.Institution{
		Name:          input.Name,
		Address:       input.Address,
		ContactPerson: input.ContactPerson,
		ContactEmail:  input.ContactEmail,
		ContactPhone:  input.ContactPhone,
		Status:        model.InstitutionStatusPending,
	}
	if err := s.repo.Create(ctx, inst); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrInstitutionAlreadyExists
		}
		return nil, fmt.Errorf("create institution: %w", err)
	}

	s.log.Info("institution applied", zap.Uint("institution_id", inst.ID), zap.String("name", inst.Name))
	return inst, nil
}

// ListApproved lists approved institutions by name, for registration forms.
func (s *institutionService) ListApproved(ctx context.Context) ([]model.Institution, error) {
	return s.list(ctx, model.InstitutionStatusApproved)
}

// ListPending lists applications awaiting review, oldest first.
func (s *institutionService) ListPending(ctx context.Context, actor *model.User) ([]model.Institution, error) {
	if err := policy.Authorize(actor, policy.ManageInstitutions, nil); err != nil {
		return nil, err
	}
	return s.list(ctx, model.InstitutionStatusPending)
}

func (s *institutionService) list(ctx context.Context, status model.InstitutionStatus) ([]model.Institution, error) {
	insts, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list institutions: %w", err)
	}
	if insts == nil {
		insts = []model.Institution{}
	}
	return insts, nil
}

func (s *institutionService) Get(ctx context.Context, actor *model.User, id uint) (*model.Institution, error) {
	if err := policy.Authorize(actor, policy.ManageInstitutions, nil); err != nil {
		return nil, err
	}
	return s.find(ctx, id)
}

func (s *institutionService) find(ctx context.Context, id uint) (*model.Institution, error) {
	inst, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("find institution: %w", err)
	}
	return inst, nil
}

// Update edits the contact details of an institution. Status changes go
// through Approve and Reject.
func (s *institutionService) Update(ctx context.Context, actor *model.User, id uint, input InstitutionInput) (*model.Institution, error) {
	if err := policy.Authorize(actor, policy.ManageInstitutions, nil); err != nil {
		return nil, err
	}
	input, err := input.normalized()
	if err != nil {
		return nil, err
	}
	inst, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ContactEmail != inst.ContactEmail {
		exists, err := s.repo.ExistsByContactEmail(ctx, input.ContactEmail, inst.ID)
		if err != nil {
			return nil, fmt.Errorf("check contact email: %w", err)
		}
		if exists {
			return nil, errors.ErrInstitutionAlreadyExists
		}
	}

	inst.Name = input.Name
	inst.Address = input.Address
	inst.ContactPerson = input.ContactPerson
	inst.ContactEmail = input.ContactEmail
	inst.ContactPhone = input.ContactPhone
	if err := s.repo.Update(ctx, inst); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrInstitutionAlreadyExists
		}
		return nil, fmt.Errorf("update institution: %w", err)
	}
	return inst, nil
}

// Delete removes an institution. Member profiles lose their institution link.
func (s *institutionService) Delete(ctx context.Context, actor *model.User, id uint) error {
	if err := policy.Authorize(actor, policy.ManageInstitutions, nil); err != nil {
		return err
	}
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete institution: %w", err)
	}
	_ = s.cache.Delete(ctx, statsCacheKey)

	s.log.Info("institution deleted", zap.Uint("institution_id", id), zap.Uint("deleted_by", actor.ID))
	return nil
}

// Approve approves a pending application and provisions its institution admin
// in the same transaction. An existing institution admin with the contact
// email is linked instead of creating a new account.
func (s *institutionService) Approve(ctx context.Context, actor *model.User, id uint) (*ApproveInstitutionResult, error) {
	if err := policy.Authorize(actor, policy.ManageInstitutions, nil); err != nil {
		return nil, err
	}

	result := &ApproveInstitutionResult{}
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.InstitutionRepository, users repository.UserRepository) error {
		inst, err := s.lockPending(ctx, txRepo, id)
		if err != nil {
			return err
		}

		admin, created, err := provisionAdmin(ctx, users, inst)
		if err != nil {
			return err
		}

		inst.Status = model.InstitutionStatusApproved
		inst.AdminID = &admin.ID
		if err := txRepo.Update(ctx, inst); err != nil {
			return fmt.Errorf("approve institution: %w", err)
		}

		result.Institution = inst
		result.Admin = admin
		result.AdminCreated = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, statsCacheKey)

	s.log.Info("institution approved",
		zap.Uint("institution_id", result.Institution.ID),
		zap.Uint("admin_id", result.Admin.ID),
		zap.String("admin_username", result.Admin.Username),
		zap.Bool("admin_created", result.AdminCreated),
	)
	return result, nil
}

// Reject rejects a pending application.
func (s *institutionService) Reject(ctx context.Context, actor *model.User, id uint) (*model.Institution, error) {
	if err := policy.Authorize(actor, policy.ManageInstitutions, nil); err != nil {
		return nil, err
	}

	var rejected *model.Institution
	err := s.repo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.InstitutionRepository, _ repository.UserRepository) error {
		inst, err := s.lockPending(ctx, txRepo, id)
		if err != nil {
			return err
		}
		inst.Status = model.InstitutionStatusRejected
		if err := txRepo.Update(ctx, inst); err != nil {
			return fmt.Errorf("reject institution: %w", err)
		}
		rejected = inst
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("institution rejected", zap.Uint("institution_id", id), zap.Uint("rejected_by", actor.ID))
	return rejected, nil
}

func (s *institutionService) lockPending(ctx context.Context, txRepo repository.InstitutionRepository, id uint) (*model.Institution, error) {
	inst, err := txRepo.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("lock institution: %w", err)
	}
	if !inst.IsPending() {
		return nil, errors.ErrInstitutionAlreadyResolved
	}
	return inst, nil
}

// provisionAdmin returns the institution admin for inst, creating an approved
// account named after the contact email when none exists. A non-admin account
// already using the email is a conflict.
func provisionAdmin(ctx context.Context, users repository.UserRepository, inst *model.Institution) (*model.User, bool, error) {
	existing, err := users.FindByEmail(ctx, inst.ContactEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("find admin account: %w", err)
	}

	if existing != nil {
		if existing.Role != model.RoleInstitutionAdmin {
			return nil, false, errors.ErrUserAlreadyExists
		}
		if existing.Profile == nil {
			existing.Profile = &model.Profile{UserID: existing.ID}
		}
		existing.Profile.InstitutionID = &inst.ID
		existing.IsApproved = true
		if err := users.Save(ctx, existing); err != nil {
			return nil, false, fmt.Errorf("link admin account: %w", err)
		}
		return existing, false, nil
	}

	username := strings.SplitN(inst.ContactEmail, "@", 2)[0]
	taken, err := users.ExistsByUsernameOrEmail(ctx, username, inst.ContactEmail)
	if err != nil {
		return nil, false, fmt.Errorf("check admin username: %w", err)
	}
	if taken {
		username = fmt.Sprintf("%s-%d", username, inst.ID)
	}

	admin := &model.User{
		Username:   username,
		Email:      inst.ContactEmail,
		FirstName:  inst.ContactPerson,
		Role:       model.RoleInstitutionAdmin,
		IsApproved: true,
	}
	institutionID := inst.ID
	if err := users.CreateWithProfile(ctx, admin, &model.Profile{InstitutionID: &institutionID}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, false, errors.ErrUserAlreadyExists
		}
		return nil, false, fmt.Errorf("create admin account: %w", err)
	}
	return admin, true, nil
}

// MyStats counts the members of the institution the actor administers.
func (s *institutionService) MyStats(ctx context.Context, actor *model.User) (*InstitutionStats, error) {
	if err := policy.Authorize(actor, policy.ViewInstitutionStats, nil); err != nil {
		return nil, err
	}
	inst, err := s.find(ctx, model.InstitutionOf(actor))
	if err != nil {
		return nil, err
	}

	alumni, err := s.users.CountInInstitution(ctx, inst.ID, model.RoleAlumni, true)
	if err != nil {
		return nil, fmt.Errorf("count alumni: %w", err)
	}
	students, err := s.users.CountInInstitution(ctx, inst.ID, model.RoleStudent, true)
	if err != nil {
		return nil, fmt.Errorf("count students: %w", err)
	}
	pending, err := s.users.CountInInstitution(ctx, inst.ID, "", false)
	if err != nil {
		return nil, fmt.Errorf("count pending users: %w", err)
	}

	return &InstitutionStats{
		InstitutionName:  inst.Name,
		AlumniCount:      alumni,
		StudentCount:     students,
		PendingApprovals: pending,
	}, nil
}
