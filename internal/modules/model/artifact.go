package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ArtifactType classifies a produced build output.
type ArtifactType string

const (
	ArtifactTypeBaseImage    ArtifactType = "base_image"
	ArtifactTypeCloudImage   ArtifactType = "cloud_image"
	ArtifactTypeRegionCopy   ArtifactType = "region_copy"
	ArtifactTypeAccountShare ArtifactType = "account_share"
)

func (t ArtifactType) Valid() bool {
	switch t {
	case ArtifactTypeBaseImage, ArtifactTypeCloudImage, ArtifactTypeRegionCopy, ArtifactTypeAccountShare:
		return true
	}
	return false
}

// ArtifactStatus tracks the build/deployment lifecycle of an artifact.
type ArtifactStatus string

const (
	ArtifactStatusPending    ArtifactStatus = "pending"
	ArtifactStatusBuilding   ArtifactStatus = "building"
	ArtifactStatusCompleted  ArtifactStatus = "completed"
	ArtifactStatusFailed     ArtifactStatus = "failed"
	ArtifactStatusDeprecated ArtifactStatus = "deprecated"
)

func (s ArtifactStatus) Valid() bool {
	switch s {
	case ArtifactStatusPending, ArtifactStatusBuilding, ArtifactStatusCompleted, ArtifactStatusFailed, ArtifactStatusDeprecated:
		return true
	}
	return false
}

// Artifact is a produced build output (image, region copy, account share)
// tied to one variant. BuildMetadata is opaque and returned verbatim.
type Artifact struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string         `gorm:"size:255;not null;index" json:"name"`
	ArtifactType ArtifactType   `gorm:"size:32;not null;index" json:"artifact_type"`
	Status       ArtifactStatus `gorm:"size:32;not null;index" json:"status"`

	Location  *string `gorm:"size:500" json:"location"`
	Region    *string `gorm:"size:100;index" json:"region"`
	AccountID *string `gorm:"size:100" json:"account_id"`
	SizeBytes *int64  `json:"size_bytes"`
	Checksum  *string `gorm:"size:128" json:"checksum"`

	BuildID       *string           `gorm:"size:255" json:"build_id"`
	BuildMetadata datatypes.JSONMap `gorm:"type:jsonb" json:"build_metadata"`

	VariantID uuid.UUID `gorm:"type:uuid;not null;index" json:"variant_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Artifact <-> Variant
	Variant *Variant `gorm:"foreignKey:VariantID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"variant,omitempty"`
}

func (Artifact) TableName() string { return "artifacts" }

// ArtifactPatch lists the fields a partial update may touch.
type ArtifactPatch struct {
	Name          *string           `json:"name"`
	ArtifactType  *ArtifactType     `json:"artifact_type"`
	Status        *ArtifactStatus   `json:"status"`
	Location      *string           `json:"location"`
	Region        *string           `json:"region"`
	AccountID     *string           `json:"account_id"`
	SizeBytes     *int64            `json:"size_bytes"`
	Checksum      *string           `json:"checksum"`
	BuildID       *string           `json:"build_id"`
	BuildMetadata datatypes.JSONMap `json:"build_metadata"`
	VariantID     *uuid.UUID        `json:"variant_id"`
}

func (p ArtifactPatch) Apply(m *Artifact) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.ArtifactType != nil {
		m.ArtifactType = *p.ArtifactType
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Location != nil {
		m.Location = p.Location
	}
	if p.Region != nil {
		m.Region = p.Region
	}
	if p.AccountID != nil {
		m.AccountID = p.AccountID
	}
	if p.SizeBytes != nil {
		m.SizeBytes = p.SizeBytes
	}
	if p.Checksum != nil {
		m.Checksum = p.Checksum
	}
	if p.BuildID != nil {
		m.BuildID = p.BuildID
	}
	if p.BuildMetadata != nil {
		m.BuildMetadata = p.BuildMetadata
	}
	if p.VariantID != nil {
		m.VariantID = *p.VariantID
	}
}

// ArtifactStats is the aggregation result over all artifacts.
type ArtifactStats struct {
	ByType         map[ArtifactType]int64   `json:"by_type"`
	ByStatus       map[ArtifactStatus]int64 `json:"by_status"`
	TotalSizeBytes int64                    `json:"total_size_bytes"`
}
