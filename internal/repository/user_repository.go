package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mansi2425/punjab-alumni-connect/internal/model"
)

// UserRepository defines user and profile persistence operations.
type UserRepository interface {
	CreateWithProfile(ctx context.Context, user *model.User, profile *model.Profile) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	ListApprovedByRole(ctx context.Context, role model.Role, excludeID uint) ([]model.User, error)
	ListPending(ctx context.Context, institutionID uint, department string) ([]model.User, error)
	SetApproved(ctx context.Context, id uint, approved bool) error
	Save(ctx context.Context, user *model.User) error
	CountApprovedByRole(ctx context.Context, role model.Role) (int64, error)
	CountInInstitution(ctx context.Context, institutionID uint, role model.Role, approved bool) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateWithProfile inserts a user and its profile atomically. It is the only
// place users are created, so every user owns exactly one profile.
func (r *userRepository) CreateWithProfile(ctx context.Context, user *model.User, profile *model.Profile) error {
	if profile == nil {
		profile = &model.Profile{}
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		if err := tx.Omit(clause.Associations).Create(profile).Error; err != nil {
			return err
		}
		user.Profile = profile
		return nil
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Profile").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Profile").
		Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Profile").
		Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

// ListApprovedByRole lists approved users of role, skipping excludeID, ordered by ID.
func (r *userRepository) ListApprovedByRole(ctx context.Context, role model.Role, excludeID uint) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Preload("Profile").
		Where("role = ? AND is_approved = ? AND id <> ?", role, true, excludeID).
		Order("id").
		Find(&users).Error
	return users, err
}

// ListPending lists unapproved users, oldest first. A non-zero institutionID and
// a non-empty department restrict the result to matching profiles.
func (r *userRepository) ListPending(ctx context.Context, institutionID uint, department string) ([]model.User, error) {
	q := r.db.WithContext(ctx).Preload("Profile").
		Where("users.is_approved = ?", false)
	if institutionID != 0 || department != "" {
		q = q.Joins("JOIN profiles ON profiles.user_id = users.id")
		if institutionID != 0 {
			q = q.Where("profiles.institution_id = ?", institutionID)
		}
		if department != "" {
			q = q.Where("profiles.department = ?", department)
		}
	}

	var users []model.User
	err := q.Order("users.created_at, users.id").Find(&users).Error
	return users, err
}

func (r *userRepository) SetApproved(ctx context.Context, id uint, approved bool) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("is_approved", approved).Error
}

// Save writes the user's name fields and its loaded profile in one transaction.
func (r *userRepository) Save(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(user).Error; err != nil {
			return err
		}
		if user.Profile == nil {
			return nil
		}
		user.Profile.UserID = user.ID
		return tx.Omit(clause.Associations).Save(user.Profile).Error
	})
}

func (r *userRepository) CountApprovedByRole(ctx context.Context, role model.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ? AND is_approved = ?", role, true).
		Count(&count).Error
	return count, err
}

// CountInInstitution counts users whose profile belongs to institutionID.
// An empty role counts every role.
func (r *userRepository) CountInInstitution(ctx context.Context, institutionID uint, role model.Role, approved bool) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN profiles ON profiles.user_id = users.id").
		Where("profiles.institution_id = ? AND users.is_approved = ?", institutionID, approved)
	if role != "" {
		q = q.Where("users.role = ?", role)
	}
	err := q.Count(&count).Error
	return count, err
}
