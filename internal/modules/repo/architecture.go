package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"gorm.io/gorm"
)

type ArchitectureRepo interface {
	Create(ctx context.Context, a *model.Architecture) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Architecture, error)
	GetByNameForProduct(ctx context.Context, name string, productID uuid.UUID) (*model.Architecture, error)
	List(ctx context.Context, productID *uuid.UUID, opts ListOpts) ([]*model.Architecture, error)
	Update(ctx context.Context, id uuid.UUID, patch model.ArchitecturePatch) (*model.Architecture, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type architectureRepo struct{ db *gorm.DB }

func NewArchitectureRepo(db *gorm.DB) ArchitectureRepo {
	return &architectureRepo{db: db}
}

func (r *architectureRepo) Create(ctx context.Context, a *model.Architecture) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *architectureRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Architecture, error) {
	var a model.Architecture
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *architectureRepo) GetByNameForProduct(ctx context.Context, name string, productID uuid.UUID) (*model.Architecture, error) {
	var a model.Architecture
	err := r.db.WithContext(ctx).First(&a, "name = ? AND product_id = ?", name, productID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *architectureRepo) List(ctx context.Context, productID *uuid.UUID, opts ListOpts) ([]*model.Architecture, error) {
	query := r.db.WithContext(ctx)
	if productID != nil {
		query = query.Where("product_id = ?", *productID)
	}
	var arches []*model.Architecture
	if err := opts.apply(query).Find(&arches).Error; err != nil {
		return nil, err
	}
	return arches, nil
}

func (r *architectureRepo) Update(ctx context.Context, id uuid.UUID, patch model.ArchitecturePatch) (*model.Architecture, error) {
	var a model.Architecture
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		patch.Apply(&a)
		return tx.Save(&a).Error
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *architectureRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Architecture{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *architectureRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Architecture{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
