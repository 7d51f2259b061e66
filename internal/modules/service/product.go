package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"github.com/osimagekit/image-definitions/internal/modules/repo"
)

type ProductService interface {
	Create(ctx context.Context, p *model.Product) error
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, groupID *uuid.UUID, opts repo.ListOpts) ([]*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch model.ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	r      repo.ProductRepo
	groups repo.ProductGroupRepo
}

func NewProductService(r repo.ProductRepo, groups repo.ProductGroupRepo) ProductService {
	return &productService{r: r, groups: groups}
}

func (s *productService) Create(ctx context.Context, p *model.Product) error {
	exists, err := s.groups.ExistsByID(ctx, p.ProductGroupID)
	if err != nil {
		return fmt.Errorf("check product group: %w", err)
	}
	if !exists {
		return fmt.Errorf("product group %s: %w", p.ProductGroupID, repo.ErrBadReference)
	}

	p.ID = uuid.New()
	if err := s.r.Create(ctx, p); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return s.r.GetByID(ctx, id)
}

func (s *productService) List(ctx context.Context, groupID *uuid.UUID, opts repo.ListOpts) ([]*model.Product, error) {
	return s.r.List(ctx, groupID, opts)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, patch model.ProductPatch) (*model.Product, error) {
	if patch.ProductGroupID != nil {
		exists, err := s.groups.ExistsByID(ctx, *patch.ProductGroupID)
		if err != nil {
			return nil, fmt.Errorf("check product group: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("product group %s: %w", *patch.ProductGroupID, repo.ErrBadReference)
		}
	}
	return s.r.Update(ctx, id, patch)
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.Delete(ctx, id)
}
