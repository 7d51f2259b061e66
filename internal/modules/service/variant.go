package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"github.com/osimagekit/image-definitions/internal/modules/repo"
)

type VariantService interface {
	Create(ctx context.Context, v *model.Variant) error
	Get(ctx context.Context, id uuid.UUID) (*model.Variant, error)
	List(ctx context.Context, architectureID *uuid.UUID, opts repo.ListOpts) ([]*model.Variant, error)
	Update(ctx context.Context, id uuid.UUID, patch model.VariantPatch) (*model.Variant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type variantService struct {
	r      repo.VariantRepo
	arches repo.ArchitectureRepo
}

func NewVariantService(r repo.VariantRepo, arches repo.ArchitectureRepo) VariantService {
	return &variantService{r: r, arches: arches}
}

func (s *variantService) Create(ctx context.Context, v *model.Variant) error {
	exists, err := s.arches.ExistsByID(ctx, v.ArchitectureID)
	if err != nil {
		return fmt.Errorf("check architecture: %w", err)
	}
	if !exists {
		return fmt.Errorf("architecture %s: %w", v.ArchitectureID, repo.ErrBadReference)
	}

	v.ID = uuid.New()
	if err := s.r.Create(ctx, v); err != nil {
		return fmt.Errorf("create variant: %w", err)
	}
	return nil
}

func (s *variantService) Get(ctx context.Context, id uuid.UUID) (*model.Variant, error) {
	return s.r.GetByID(ctx, id)
}

func (s *variantService) List(ctx context.Context, architectureID *uuid.UUID, opts repo.ListOpts) ([]*model.Variant, error) {
	return s.r.List(ctx, architectureID, opts)
}

func (s *variantService) Update(ctx context.Context, id uuid.UUID, patch model.VariantPatch) (*model.Variant, error) {
	if patch.ArchitectureID != nil {
		exists, err := s.arches.ExistsByID(ctx, *patch.ArchitectureID)
		if err != nil {
			return nil, fmt.Errorf("check architecture: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("architecture %s: %w", *patch.ArchitectureID, repo.ErrBadReference)
		}
	}
	return s.r.Update(ctx, id, patch)
}

func (s *variantService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.r.Delete(ctx, id)
}
