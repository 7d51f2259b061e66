package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/infra/blob"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"github.com/osimagekit/image-definitions/internal/modules/repo"
	"go.uber.org/zap"
)

// EventPublisher emits artifact lifecycle events. Publishing is best-effort:
// failures must never fail the originating request.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Presigner issues time-limited download URLs for object storage.
type Presigner interface {
	PresignGet(ctx context.Context, bucket, key string, expire time.Duration) (string, error)
}

// ArtifactEvent is the payload published on artifact lifecycle changes.
type ArtifactEvent struct {
	ArtifactID uuid.UUID            `json:"artifact_id"`
	VariantID  uuid.UUID            `json:"variant_id"`
	Name       string               `json:"name"`
	Type       model.ArtifactType   `json:"artifact_type"`
	Status     model.ArtifactStatus `json:"status"`
}

type ArtifactService interface {
	Create(ctx context.Context, a *model.Artifact) error
	Get(ctx context.Context, id uuid.UUID) (*model.Artifact, error)
	List(ctx context.Context, filter repo.ArtifactFilter, opts repo.ListOpts) ([]*model.Artifact, error)
	Update(ctx context.Context, id uuid.UUID, patch model.ArtifactPatch) (*model.Artifact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*model.ArtifactStats, error)
	DownloadURL(ctx context.Context, id uuid.UUID, expire time.Duration) (string, error)
}

type artifactService struct {
	r        repo.ArtifactRepo
	variants repo.VariantRepo
	events   EventPublisher
	signer   Presigner
	log      *zap.Logger
}

func NewArtifactService(r repo.ArtifactRepo, variants repo.VariantRepo, events EventPublisher, signer Presigner, log *zap.Logger) ArtifactService {
	return &artifactService{r: r, variants: variants, events: events, signer: signer, log: log}
}

func (s *artifactService) Create(ctx context.Context, a *model.Artifact) error {
	if a.Status == "" {
		a.Status = model.ArtifactStatusPending
	}
	if !a.ArtifactType.Valid() {
		return fmt.Errorf("invalid artifact type '%s': %w", a.ArtifactType, repo.ErrBadReference)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("invalid artifact status '%s': %w", a.Status, repo.ErrBadReference)
	}

	exists, err := s.variants.ExistsByID(ctx, a.VariantID)
	if err != nil {
		return fmt.Errorf("check variant: %w", err)
	}
	if !exists {
		return fmt.Errorf("variant %s: %w", a.VariantID, repo.ErrBadReference)
	}

	a.ID = uuid.New()
	if err := s.r.Create(ctx, a); err != nil {
		return fmt.Errorf("create artifact: %w", err)
	}

	s.publish(ctx, "artifact.created", a)
	return nil
}

func (s *artifactService) Get(ctx context.Context, id uuid.UUID) (*model.Artifact, error) {
	return s.r.GetByID(ctx, id)
}

func (s *artifactService) List(ctx context.Context, filter repo.ArtifactFilter, opts repo.ListOpts) ([]*model.Artifact, error) {
	return s.r.List(ctx, filter, opts)
}

func (s *artifactService) Update(ctx context.Context, id uuid.UUID, patch model.ArtifactPatch) (*model.Artifact, error) {
	if patch.ArtifactType != nil && !patch.ArtifactType.Valid() {
		return nil, fmt.Errorf("invalid artifact type '%s': %w", *patch.ArtifactType, repo.ErrBadReference)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("invalid artifact status '%s': %w", *patch.Status, repo.ErrBadReference)
	}
	if patch.VariantID != nil {
		exists, err := s.variants.ExistsByID(ctx, *patch.VariantID)
		if err != nil {
			return nil, fmt.Errorf("check variant: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("variant %s: %w", *patch.VariantID, repo.ErrBadReference)
		}
	}

	updated, err := s.r.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		s.publish(ctx, "artifact.status_changed", updated)
	}
	return updated, nil
}

func (s *artifactService) Delete(ctx context.Context, id uuid.UUID) error {
	a, err := s.r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.r.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, "artifact.deleted", a)
	return nil
}

func (s *artifactService) Stats(ctx context.Context) (*model.ArtifactStats, error) {
	return s.r.Stats(ctx)
}

// DownloadURL presigns a GET for artifacts whose location is an s3:// URL.
func (s *artifactService) DownloadURL(ctx context.Context, id uuid.UUID, expire time.Duration) (string, error) {
	a, err := s.r.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if s.signer == nil {
		return "", fmt.Errorf("object storage is not configured: %w", repo.ErrBadReference)
	}
	if a.Location == nil {
		return "", fmt.Errorf("artifact %s has no location: %w", id, repo.ErrBadReference)
	}
	bucket, key, err := blob.ParseURL(*a.Location)
	if err != nil {
		return "", fmt.Errorf("artifact location: %w", repo.ErrBadReference)
	}
	return s.signer.PresignGet(ctx, bucket, key, expire)
}

func (s *artifactService) publish(ctx context.Context, key string, a *model.Artifact) {
	if s.events == nil {
		return
	}
	event := ArtifactEvent{
		ArtifactID: a.ID,
		VariantID:  a.VariantID,
		Name:       a.Name,
		Type:       a.ArtifactType,
		Status:     a.Status,
	}
	if err := s.events.Publish(ctx, key, event); err != nil {
		s.log.Warn("publish artifact event failed",
			zap.String("routing_key", key),
			zap.String("artifact_id", a.ID.String()),
			zap.Error(err))
	}
}
