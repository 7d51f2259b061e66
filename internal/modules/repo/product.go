package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"gorm.io/gorm"
)

type ProductRepo interface {
	Create(ctx context.Context, p *model.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	GetByNameInGroup(ctx context.Context, name string, groupID uuid.UUID) (*model.Product, error)
	List(ctx context.Context, groupID *uuid.UUID, opts ListOpts) ([]*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch model.ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// GetByNameInGroup looks a product up by name scoped to one group; product
// names are only unique per group, not globally.
func (r *productRepo) GetByNameInGroup(ctx context.Context, name string, groupID uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "name = ? AND product_group_id = ?", name, groupID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context, groupID *uuid.UUID, opts ListOpts) ([]*model.Product, error) {
	query := r.db.WithContext(ctx)
	if groupID != nil {
		query = query.Where("product_group_id = ?", *groupID)
	}
	var products []*model.Product
	if err := opts.apply(query).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) Update(ctx context.Context, id uuid.UUID, patch model.ProductPatch) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		patch.Apply(&p)
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
