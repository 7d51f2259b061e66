package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"gorm.io/gorm"
)

// ArtifactFilter narrows artifact listings. Nil fields are ignored.
type ArtifactFilter struct {
	VariantID *uuid.UUID
	Type      *model.ArtifactType
	Status    *model.ArtifactStatus
	Region    *string
}

type ArtifactRepo interface {
	Create(ctx context.Context, a *model.Artifact) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Artifact, error)
	List(ctx context.Context, filter ArtifactFilter, opts ListOpts) ([]*model.Artifact, error)
	Update(ctx context.Context, id uuid.UUID, patch model.ArtifactPatch) (*model.Artifact, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*model.ArtifactStats, error)
}

type artifactRepo struct{ db *gorm.DB }

func NewArtifactRepo(db *gorm.DB) ArtifactRepo {
	return &artifactRepo{db: db}
}

func (r *artifactRepo) Create(ctx context.Context, a *model.Artifact) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *artifactRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Artifact, error) {
	var a model.Artifact
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *artifactRepo) List(ctx context.Context, filter ArtifactFilter, opts ListOpts) ([]*model.Artifact, error) {
	query := r.db.WithContext(ctx)
	if filter.VariantID != nil {
		query = query.Where("variant_id = ?", *filter.VariantID)
	}
	if filter.Type != nil {
		query = query.Where("artifact_type = ?", *filter.Type)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Region != nil {
		query = query.Where("region = ?", *filter.Region)
	}
	var artifacts []*model.Artifact
	if err := opts.apply(query).Find(&artifacts).Error; err != nil {
		return nil, err
	}
	return artifacts, nil
}

func (r *artifactRepo) Update(ctx context.Context, id uuid.UUID, patch model.ArtifactPatch) (*model.Artifact, error) {
	var a model.Artifact
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

func (r *artifactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Artifact{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats groups all artifacts by type and by status and sums size_bytes,
// treating NULL sizes as 0. An empty table yields empty maps and a zero sum.
func (r *artifactRepo) Stats(ctx context.Context) (*model.ArtifactStats, error) {
	stats := &model.ArtifactStats{
		ByType:   map[model.ArtifactType]int64{},
		ByStatus: map[model.ArtifactStatus]int64{},
	}

	var typeRows []struct {
		ArtifactType model.ArtifactType
		Count        int64
	}
	err := r.db.WithContext(ctx).Model(&model.Artifact{}).
		Select("artifact_type, COUNT(*) AS count").
		Group("artifact_type").
		Scan(&typeRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range typeRows {
		stats.ByType[row.ArtifactType] = row.Count
	}

	var statusRows []struct {
		Status model.ArtifactStatus
		Count  int64
	}
	err = r.db.WithContext(ctx).Model(&model.Artifact{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		stats.ByStatus[row.Status] = row.Count
	}

	err = r.db.WithContext(ctx).Model(&model.Artifact{}).
		Select("COALESCE(SUM(size_bytes), 0)").
		Scan(&stats.TotalSizeBytes).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
