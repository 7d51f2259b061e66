// Package repo contains the persistence layer: one thin gorm-backed
// repository per entity, plus the shared list options and error taxonomy.
package repo

import (
	"errors"

	"gorm.io/gorm"
)

// Errors distinguished by the API layer. Bad reference and conflict both map
// to a 400; not found maps to a 404.
var (
	ErrNotFound     = errors.New("not found")
	ErrBadReference = errors.New("referenced parent does not exist")
	ErrConflict     = errors.New("name already exists")
)

// ListOpts paginates list queries. Limit is clamped to [1,1000] with a
// default of 100; negative Skip is treated as 0.
type ListOpts struct {
	Skip  int
	Limit int
}

func (o ListOpts) normalize() ListOpts {
	if o.Skip < 0 {
		o.Skip = 0
	}
	if o.Limit < 1 {
		o.Limit = 100
	}
	if o.Limit > 1000 {
		o.Limit = 1000
	}
	return o
}

func (o ListOpts) apply(db *gorm.DB) *gorm.DB {
	o = o.normalize()
	return db.Offset(o.Skip).Limit(o.Limit).Order("created_at DESC")
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
