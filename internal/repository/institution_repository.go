package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mansi2425/punjab-alumni-connect/internal/model"
)

// InstitutionRepository defines institution persistence operations.
type InstitutionRepository interface {
	Create(ctx context.Context, inst *model.Institution) error
	FindByID(ctx context.Context, id uint) (*model.Institution, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Institution, error)
	ExistsByContactEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	ListByStatus(ctx context.Context, status model.InstitutionStatus) ([]model.Institution, error)
	CountByStatus(ctx context.Context, status model.InstitutionStatus) (int64, error)
	Update(ctx context.Context, inst *model.Institution) error
	Delete(ctx context.Context, id uint) error
	// Transaction methods; users shares the transaction
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo InstitutionRepository, users UserRepository) error) error
}

type institutionRepository struct {
	db *gorm.DB
}

// NewInstitutionRepository creates a new institution repository.
func NewInstitutionRepository(db *gorm.DB) InstitutionRepository {
	return &institutionRepository{db: db}
}

// Create inserts an institution. An empty status becomes pending.
func (r *institutionRepository) Create(ctx context.Context, inst *model.Institution) error {
	if inst.Status == "" {
		inst.Status = model.InstitutionStatusPending
	}
	return r.db.WithContext(ctx).Create(inst).Error
}

func (r *institutionRepository) FindByID(ctx context.Context, id uint) (*model.Institution, error) {
	var inst model.Institution
	if err := r.db.WithContext(ctx).First(&inst, id).Error; err != nil {
		return nil, err
	}
	return &inst, nil
}

// FindByIDForUpdate finds an institution and locks its row for the transaction.
func (r *institutionRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Institution, error) {
	var inst model.Institution
	if err := forUpdate(r.db.WithContext(ctx)).First(&inst, id).Error; err != nil {
		return nil, err
	}
	return &inst, nil
}

// ExistsByContactEmail reports whether another institution uses email.
func (r *institutionRepository) ExistsByContactEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Institution{}).
		Where("contact_email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

// ListByStatus lists institutions in a status. Pending applications come
// oldest first, other statuses by name.
func (r *institutionRepository) ListByStatus(ctx context.Context, status model.InstitutionStatus) ([]model.Institution, error) {
	order := "name, id"
	if status == model.InstitutionStatusPending {
		order = "created_at, id"
	}
	var insts []model.Institution
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order(order).
		Find(&insts).Error
	return insts, err
}

func (r *institutionRepository) CountByStatus(ctx context.Context, status model.InstitutionStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Institution{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *institutionRepository) Update(ctx context.Context, inst *model.Institution) error {
	return r.db.WithContext(ctx).Save(inst).Error
}

// Delete removes an institution and detaches the profiles that referenced it.
func (r *institutionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Profile{}).
			Where("institution_id = ?", id).
			Update("institution_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Institution{}, id).Error
	})
}

// WithTransaction executes a function within a database transaction.
func (r *institutionRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo InstitutionRepository, users UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &institutionRepository{db: tx}, &userRepository{db: tx})
	})
}
