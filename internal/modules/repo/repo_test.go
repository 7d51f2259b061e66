package repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/osimagekit/image-definitions/internal/modules/model"
)

// newTestDB opens an isolated in-memory sqlite database with foreign key
// enforcement on, so cascade behavior matches postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.ProductGroup{},
		&model.Product{},
		&model.Architecture{},
		&model.Variant{},
		&model.Artifact{},
	))
	return db
}

type fixture struct {
	Group    *model.ProductGroup
	Product  *model.Product
	Arch     *model.Architecture
	Variant  *model.Variant
	Artifact *model.Artifact
}

// seedHierarchy creates one full chain group→product→arch→variant→artifact.
func seedHierarchy(t *testing.T, db *gorm.DB, name string) fixture {
	t.Helper()
	ctx := context.Background()

	group := &model.ProductGroup{ID: uuid.New(), Name: name}
	require.NoError(t, NewProductGroupRepo(db).Create(ctx, group))

	product := &model.Product{ID: uuid.New(), Name: name + "-product", ProductGroupID: group.ID}
	require.NoError(t, NewProductRepo(db).Create(ctx, product))

	arch := &model.Architecture{ID: uuid.New(), Name: "x86_64", ProductID: product.ID}
	require.NoError(t, NewArchitectureRepo(db).Create(ctx, arch))

	variant := &model.Variant{ID: uuid.New(), Name: name + "-product-x86_64", ArchitectureID: arch.ID}
	require.NoError(t, NewVariantRepo(db).Create(ctx, variant))

	artifact := &model.Artifact{
		ID:           uuid.New(),
		Name:         name + "-artifact",
		ArtifactType: model.ArtifactTypeBaseImage,
		Status:       model.ArtifactStatusPending,
		VariantID:    variant.ID,
	}
	require.NoError(t, NewArtifactRepo(db).Create(ctx, artifact))

	return fixture{Group: group, Product: product, Arch: arch, Variant: variant, Artifact: artifact}
}

func TestListOptsNormalize(t *testing.T) {
	tests := []struct {
		name      string
		in        ListOpts
		wantSkip  int
		wantLimit int
	}{
		{"zero value gets defaults", ListOpts{}, 0, 100},
		{"negative skip clamped", ListOpts{Skip: -5, Limit: 10}, 0, 10},
		{"limit above max clamped", ListOpts{Limit: 5000}, 0, 1000},
		{"valid passthrough", ListOpts{Skip: 20, Limit: 50}, 20, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.normalize()
			require.Equal(t, tt.wantSkip, got.Skip)
			require.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}
