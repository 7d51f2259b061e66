package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductGroup is the top-level organizational unit for related image products.
type ProductGroup struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// ProductGroup <-> Product
	Products []Product `gorm:"foreignKey:ProductGroupID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"products,omitempty"`
}

func (ProductGroup) TableName() string { return "product_groups" }

// ProductGroupPatch lists the fields a partial update may touch.
type ProductGroupPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Apply merges the set fields onto g, leaving everything else untouched.
func (p ProductGroupPatch) Apply(g *ProductGroup) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Description != nil {
		g.Description = p.Description
	}
}
