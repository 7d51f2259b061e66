package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osimagekit/image-definitions/internal/modules/model"
)

func TestProductGroupRepo_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewProductGroupRepo(db)
	ctx := context.Background()

	desc := "Rocky Linux product family"
	group := &model.ProductGroup{ID: uuid.New(), Name: "rocky", Description: &desc}
	require.NoError(t, r.Create(ctx, group))

	got, err := r.GetByID(ctx, group.ID)
	require.NoError(t, err)
	assert.Equal(t, "rocky", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)

	byName, err := r.GetByName(ctx, "rocky")
	require.NoError(t, err)
	assert.Equal(t, group.ID, byName.ID)

	_, err = r.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductGroupRepo_UniqueName(t *testing.T) {
	db := newTestDB(t)
	r := NewProductGroupRepo(db)
	ctx := context.Background()

	first := &model.ProductGroup{ID: uuid.New(), Name: "rocky"}
	require.NoError(t, r.Create(ctx, first))

	dup := &model.ProductGroup{ID: uuid.New(), Name: "rocky"}
	assert.Error(t, r.Create(ctx, dup))

	exists, err := r.ExistsByName(ctx, "rocky", nil)
	require.NoError(t, err)
	assert.True(t, exists)

	// Excluding the row itself is how update checks allow a no-op rename.
	exists, err = r.ExistsByName(ctx, "rocky", &first.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProductGroupRepo_UpdatePatch(t *testing.T) {
	db := newTestDB(t)
	r := NewProductGroupRepo(db)
	ctx := context.Background()

	desc := "original"
	group := &model.ProductGroup{ID: uuid.New(), Name: "rocky", Description: &desc}
	require.NoError(t, r.Create(ctx, group))
	createdAt := group.CreatedAt

	time.Sleep(10 * time.Millisecond)

	newName := "rocky-linux"
	updated, err := r.Update(ctx, group.ID, model.ProductGroupPatch{Name: &newName})
	require.NoError(t, err)

	// Untouched fields survive a partial update.
	assert.Equal(t, "rocky-linux", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "original", *updated.Description)
	assert.Equal(t, createdAt.Unix(), updated.CreatedAt.Unix())
	assert.True(t, updated.UpdatedAt.After(createdAt))

	_, err = r.Update(ctx, uuid.New(), model.ProductGroupPatch{Name: &newName})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductGroupRepo_GetWithProducts(t *testing.T) {
	db := newTestDB(t)
	fx := seedHierarchy(t, db, "rocky")
	r := NewProductGroupRepo(db)

	got, err := r.GetWithProducts(context.Background(), fx.Group.ID)
	require.NoError(t, err)
	require.Len(t, got.Products, 1)
	assert.Equal(t, fx.Product.ID, got.Products[0].ID)
}

func TestProductGroupRepo_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	fx := seedHierarchy(t, db, "rocky")
	ctx := context.Background()

	require.NoError(t, NewProductGroupRepo(db).Delete(ctx, fx.Group.ID))

	// Every level under the group goes with it.
	_, err := NewProductRepo(db).GetByID(ctx, fx.Product.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = NewArchitectureRepo(db).GetByID(ctx, fx.Arch.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = NewVariantRepo(db).GetByID(ctx, fx.Variant.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = NewArtifactRepo(db).GetByID(ctx, fx.Artifact.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, NewProductGroupRepo(db).Delete(ctx, fx.Group.ID), ErrNotFound)
}

func TestProductGroupRepo_ListPagination(t *testing.T) {
	db := newTestDB(t)
	r := NewProductGroupRepo(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		g := &model.ProductGroup{ID: uuid.New(), Name: fmt.Sprintf("group-%d", i)}
		require.NoError(t, r.Create(ctx, g))
		time.Sleep(5 * time.Millisecond)
	}

	all, err := r.List(ctx, ListOpts{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	// Newest first.
	assert.Equal(t, "group-4", all[0].Name)
	assert.Equal(t, "group-0", all[4].Name)

	page, err := r.List(ctx, ListOpts{Skip: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "group-2", page[0].Name)
	assert.Equal(t, "group-1", page[1].Name)

	empty, err := r.List(ctx, ListOpts{Skip: 100})
	require.NoError(t, err)
	assert.Empty(t, empty)
}
