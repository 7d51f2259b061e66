package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"github.com/osimagekit/image-definitions/internal/modules/repo"
)

type ProductGroupService interface {
	Create(ctx context.Context, g *model.ProductGroup) error
	Get(ctx context.Context, id uuid.UUID) (*model.ProductGroup, error)
	GetWithProducts(ctx context.Context, id uuid.UUID) (*model.ProductGroup, error)
	List(ctx context.Context, opts repo.ListOpts) ([]*model.ProductGroup, error)
	Update(ctx context.Context, id uuid.UUID, patch model.ProductGroupPatch) (*model.ProductGroup, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productGroupService struct {
	r repo.ProductGroupRepo
}

func NewProductGroupService(r repo.ProductGroupRepo) ProductGroupService {
	return &productGroupService{r: r}
}

func (s *productGroupService) Create(ctx context.Context, g *model.ProductGroup) error {
	exists, err := s.r.ExistsByName(ctx, g.Name, nil)
	if err != nil {
		return fmt.Errorf("check group name: %w", err)
	}
	if exists {
		return fmt.Errorf("product group with name '%s' already exists: %w", g.Name, repo.ErrConflict)
	}

	g.ID = uuid.New()
	if err := s.r.Create(ctx, g); err != nil {
		return fmt.Errorf("create product group: %w", err)
	}
	return nil
}

func (s *productGroupService) Get(ctx context.Context, id uuid.UUID) (*model.ProductGroup, error) {
	return s.r.GetByID(ctx, id)
}

func (s *productGroupService) GetWithProducts(ctx context.Context, id uuid.UUID) (*model.ProductGroup, error) {
	return s.r.GetWithProducts(ctx, id)
}

func (s *productGroupService) List(ctx context.Context, opts repo.ListOpts) ([]*model.ProductGroup, error) {
	return s.r.List(ctx, opts)
}

func (s *productGroupService) Update(ctx context.Context, id uuid.UUID, patch model.ProductGroupPatch) (*model.ProductGroup, error) {
	if patch.Name != nil {
		exists, err := s.r.ExistsByName(ctx, *patch.Name, &id)
		if err != nil {
			return nil, fmt.Errorf("check group name: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("product group with name '%s' already exists: %w", *patch.Name, repo.ErrConflict)
		}
	}
	return s.r.Update(ctx, id, patch)
}

func (s *productGroupService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.Delete(ctx, id)
}
