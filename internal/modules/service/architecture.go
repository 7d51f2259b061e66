package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"github.com/osimagekit/image-definitions/internal/modules/repo"
)

type ArchitectureService interface {
	Create(ctx context.Context, a *model.Architecture) error
	Get(ctx context.Context, id uuid.UUID) (*model.Architecture, error)
	List(ctx context.Context, productID *uuid.UUID, opts repo.ListOpts) ([]*model.Architecture, error)
	Update(ctx context.Context, id uuid.UUID, patch model.ArchitecturePatch) (*model.Architecture, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type architectureService struct {
	r        repo.ArchitectureRepo
	products repo.ProductRepo
}

func NewArchitectureService(r repo.ArchitectureRepo, products repo.ProductRepo) ArchitectureService {
	return &architectureService{r: r, products: products}
}

func (s *architectureService) Create(ctx context.Context, a *model.Architecture) error {
	exists, err := s.products.ExistsByID(ctx, a.ProductID)
	if err != nil {
		return fmt.Errorf("check product: %w", err)
	}
	if !exists {
		return fmt.Errorf("product %s: %w", a.ProductID, repo.ErrBadReference)
	}

	a.ID = uuid.New()
	if err := s.r.Create(ctx, a); err != nil {
		return fmt.Errorf("create architecture: %w", err)
	}
	return nil
}

func (s *architectureService) Get(ctx context.Context, id uuid.UUID) (*model.Architecture, error) {
	return s.r.GetByID(ctx, id)
}

func (s *architectureService) List(ctx context.Context, productID *uuid.UUID, opts repo.ListOpts) ([]*model.Architecture, error) {
	return s.r.List(ctx, productID, opts)
}

func (s *architectureService) Update(ctx context.Context, id uuid.UUID, patch model.ArchitecturePatch) (*model.Architecture, error) {
	if patch.ProductID != nil {
		exists, err := s.products.ExistsByID(ctx, *patch.ProductID)
		if err != nil {
			return nil, fmt.Errorf("check product: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("product %s: %w", *patch.ProductID, repo.ErrBadReference)
		}
	}
	return s.r.Update(ctx, id, patch)
}

func (s *architectureService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.Delete(ctx, id)
}
