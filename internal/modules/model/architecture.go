package model

import (
	"time"

	"github.com/google/uuid"
)

// Architecture is a CPU/platform target (e.g. x86_64) under a product.
type Architecture struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:50;not null;index" json:"name"`
	DisplayName *string   `gorm:"size:100" json:"display_name"`
	Description *string   `gorm:"type:text" json:"description"`

	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Architecture <-> Product
	Product *Product `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"product,omitempty"`
}

func (Architecture) TableName() string { return "architectures" }

// ArchitecturePatch lists the fields a partial update may touch.
type ArchitecturePatch struct {
	Name        *string    `json:"name"`
	DisplayName *string    `json:"display_name"`
	Description *string    `json:"description"`
	ProductID   *uuid.UUID `json:"product_id"`
}

func (p ArchitecturePatch) Apply(m *Architecture) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.DisplayName != nil {
		m.DisplayName = p.DisplayName
	}
	if p.Description != nil {
		m.Description = p.Description
	}
	if p.ProductID != nil {
		m.ProductID = *p.ProductID
	}
}
