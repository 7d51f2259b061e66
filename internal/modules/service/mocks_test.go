package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osimagekit/image-definitions/internal/modules/model"
	"github.com/osimagekit/image-definitions/internal/modules/repo"
)

// MockProductGroupRepo is a mock implementation of repo.ProductGroupRepo.
type MockProductGroupRepo struct {
	mock.Mock
}

func (m *MockProductGroupRepo) Create(ctx context.Context, g *model.ProductGroup) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockProductGroupRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.ProductGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductGroup), args.Error(1)
}

func (m *MockProductGroupRepo) GetByName(ctx context.Context, name string) (*model.ProductGroup, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductGroup), args.Error(1)
}

func (m *MockProductGroupRepo) GetWithProducts(ctx context.Context, id uuid.UUID) (*model.ProductGroup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductGroup), args.Error(1)
}

func (m *MockProductGroupRepo) List(ctx context.Context, opts repo.ListOpts) ([]*model.ProductGroup, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ProductGroup), args.Error(1)
}

func (m *MockProductGroupRepo) Update(ctx context.Context, id uuid.UUID, patch model.ProductGroupPatch) (*model.ProductGroup, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductGroup), args.Error(1)
}

func (m *MockProductGroupRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductGroupRepo) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductGroupRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockProductRepo is a mock implementation of repo.ProductRepo.
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepo) GetByNameInGroup(ctx context.Context, name string, groupID uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, name, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepo) List(ctx context.Context, groupID *uuid.UUID, opts repo.ListOpts) ([]*model.Product, error) {
	args := m.Called(ctx, groupID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Product), args.Error(1)
}

func (m *MockProductRepo) Update(ctx context.Context, id uuid.UUID, patch model.ProductPatch) (*model.Product, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockArchitectureRepo is a mock implementation of repo.ArchitectureRepo.
type MockArchitectureRepo struct {
	mock.Mock
}

func (m *MockArchitectureRepo) Create(ctx context.Context, a *model.Architecture) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockArchitectureRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Architecture, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Architecture), args.Error(1)
}

func (m *MockArchitectureRepo) GetByNameForProduct(ctx context.Context, name string, productID uuid.UUID) (*model.Architecture, error) {
	args := m.Called(ctx, name, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Architecture), args.Error(1)
}

func (m *MockArchitectureRepo) List(ctx context.Context, productID *uuid.UUID, opts repo.ListOpts) ([]*model.Architecture, error) {
	args := m.Called(ctx, productID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Architecture), args.Error(1)
}

func (m *MockArchitectureRepo) Update(ctx context.Context, id uuid.UUID, patch model.ArchitecturePatch) (*model.Architecture, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Architecture), args.Error(1)
}

func (m *MockArchitectureRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArchitectureRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockVariantRepo is a mock implementation of repo.VariantRepo.
type MockVariantRepo struct {
	mock.Mock
}

func (m *MockVariantRepo) Create(ctx context.Context, v *model.Variant) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVariantRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Variant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Variant), args.Error(1)
}

func (m *MockVariantRepo) GetByArchitecture(ctx context.Context, architectureID uuid.UUID) (*model.Variant, error) {
	args := m.Called(ctx, architectureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Variant), args.Error(1)
}

func (m *MockVariantRepo) List(ctx context.Context, architectureID *uuid.UUID, opts repo.ListOpts) ([]*model.Variant, error) {
	args := m.Called(ctx, architectureID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Variant), args.Error(1)
}

func (m *MockVariantRepo) Update(ctx context.Context, id uuid.UUID, patch model.VariantPatch) (*model.Variant, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Variant), args.Error(1)
}

func (m *MockVariantRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVariantRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockArtifactRepo is a mock implementation of repo.ArtifactRepo.
type MockArtifactRepo struct {
	mock.Mock
}

func (m *MockArtifactRepo) Create(ctx context.Context, a *model.Artifact) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockArtifactRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Artifact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artifact), args.Error(1)
}

func (m *MockArtifactRepo) List(ctx context.Context, filter repo.ArtifactFilter, opts repo.ListOpts) ([]*model.Artifact, error) {
	args := m.Called(ctx, filter, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Artifact), args.Error(1)
}

func (m *MockArtifactRepo) Update(ctx context.Context, id uuid.UUID, patch model.ArtifactPatch) (*model.Artifact, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Artifact), args.Error(1)
}

func (m *MockArtifactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockArtifactRepo) Stats(ctx context.Context) (*model.ArtifactStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ArtifactStats), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	args := m.Called(ctx, routingKey, payload)
	return args.Error(0)
}

// MockPresigner is a mock implementation of Presigner.
type MockPresigner struct {
	mock.Mock
}

func (m *MockPresigner) PresignGet(ctx context.Context, bucket, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, bucket, key, expire)
	return args.String(0), args.Error(1)
}
