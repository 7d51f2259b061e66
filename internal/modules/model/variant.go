package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Variant is a concrete buildable configuration for one architecture.
// BuildConfig is an opaque document; it is persisted and returned verbatim.
type Variant struct {
	ID          uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string            `gorm:"size:255;not null;index" json:"name"`
	Description *string           `gorm:"type:text" json:"description"`
	BuildConfig datatypes.JSONMap `gorm:"type:jsonb" json:"build_config"`

	ArchitectureID uuid.UUID `gorm:"type:uuid;not null;index" json:"architecture_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Variant <-> Architecture
	Architecture *Architecture `gorm:"foreignKey:ArchitectureID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"architecture,omitempty"`
}

func (Variant) TableName() string { return "variants" }

// VariantPatch lists the fields a partial update may touch.
type VariantPatch struct {
	Name           *string           `json:"name"`
	Description    *string           `json:"description"`
	BuildConfig    datatypes.JSONMap `json:"build_config"`
	ArchitectureID *uuid.UUID        `json:"architecture_id"`
}

func (p VariantPatch) Apply(m *Variant) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = p.Description
	}
	if p.BuildConfig != nil {
		m.BuildConfig = p.BuildConfig
	}
	if p.ArchitectureID != nil {
		m.ArchitectureID = *p.ArchitectureID
	}
}
