package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is a specific named, versioned image offering within a group.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Version     *string   `gorm:"size:100" json:"version"`

	ProductGroupID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_group_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Product <-> ProductGroup
	ProductGroup *ProductGroup `gorm:"foreignKey:ProductGroupID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"product_group,omitempty"`
}

func (Product) TableName() string { return "products" }

// ProductPatch lists the fields a partial update may touch.
type ProductPatch struct {
	Name           *string    `json:"name"`
	Description    *string    `json:"description"`
	Version        *string    `json:"version"`
	ProductGroupID *uuid.UUID `json:"product_group_id"`
}

func (p ProductPatch) Apply(m *Product) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = p.Description
	}
	if p.Version != nil {
		m.Version = p.Version
	}
	if p.ProductGroupID != nil {
		m.ProductGroupID = *p.ProductGroupID
	}
}
