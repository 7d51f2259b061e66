package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"gorm.io/gorm"
)

type ProductGroupRepo interface {
	Create(ctx context.Context, g *model.ProductGroup) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ProductGroup, error)
	GetByName(ctx context.Context, name string) (*model.ProductGroup, error)
	GetWithProducts(ctx context.Context, id uuid.UUID) (*model.ProductGroup, error)
	List(ctx context.Context, opts ListOpts) ([]*model.ProductGroup, error)
	Update(ctx context.Context, id uuid.UUID, patch model.ProductGroupPatch) (*model.ProductGroup, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type productGroupRepo struct{ db *gorm.DB }

func NewProductGroupRepo(db *gorm.DB) ProductGroupRepo {
	return &productGroupRepo{db: db}
}

func (r *productGroupRepo) Create(ctx context.Context, g *model.ProductGroup) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *productGroupRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ProductGroup, error) {
	var g model.ProductGroup
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &g, nil
}

func (r *productGroupRepo) GetByName(ctx context.Context, name string) (*model.ProductGroup, error) {
	var g model.ProductGroup
	if err := r.db.WithContext(ctx).First(&g, "name = ?", name).Error; err != nil {
		return nil, translate(err)
	}
	return &g, nil
}

func (r *productGroupRepo) GetWithProducts(ctx context.Context, id uuid.UUID) (*model.ProductGroup, error) {
	var g model.ProductGroup
	if err := r.db.WithContext(ctx).Preload("Products").First(&g, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &g, nil
}

func (r *productGroupRepo) List(ctx context.Context, opts ListOpts) ([]*model.ProductGroup, error) {
	var groups []*model.ProductGroup
	if err := opts.apply(r.db.WithContext(ctx)).Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *productGroupRepo) Update(ctx context.Context, id uuid.UUID, patch model.ProductGroupPatch) (*model.ProductGroup, error) {
	var g model.ProductGroup
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&g, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		patch.Apply(&g)
		return tx.Save(&g).Error
	})
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *productGroupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductGroup{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productGroupRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductGroup{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *productGroupRepo) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&model.ProductGroup{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
