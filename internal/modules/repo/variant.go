package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"gorm.io/gorm"
)

type VariantRepo interface {
	Create(ctx context.Context, v *model.Variant) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Variant, error)
	GetByArchitecture(ctx context.Context, architectureID uuid.UUID) (*model.Variant, error)
	List(ctx context.Context, architectureID *uuid.UUID, opts ListOpts) ([]*model.Variant, error)
	Update(ctx context.Context, id uuid.UUID, patch model.VariantPatch) (*model.Variant, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type variantRepo struct{ db *gorm.DB }

func NewVariantRepo(db *gorm.DB) VariantRepo {
	return &variantRepo{db: db}
}

func (r *variantRepo) Create(ctx context.Context, v *model.Variant) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *variantRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Variant, error) {
	var v model.Variant
	if err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

// GetByArchitecture returns any variant bound to the architecture. The import
// engine uses it to enforce its one-variant-per-architecture pass; the store
// itself allows more than one.
func (r *variantRepo) GetByArchitecture(ctx context.Context, architectureID uuid.UUID) (*model.Variant, error) {
	var v model.Variant
	err := r.db.WithContext(ctx).First(&v, "architecture_id = ?", architectureID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *variantRepo) List(ctx context.Context, architectureID *uuid.UUID, opts ListOpts) ([]*model.Variant, error) {
	query := r.db.WithContext(ctx)
	if architectureID != nil {
		query = query.Where("architecture_id = ?", *architectureID)
	}
	var variants []*model.Variant
	if err := opts.apply(query).Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *variantRepo) Update(ctx context.Context, id uuid.UUID, patch model.VariantPatch) (*model.Variant, error) {
	var v model.Variant
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&v, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		patch.Apply(&v)
		return tx.Save(&v).Error
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *variantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Variant{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *variantRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Variant{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
