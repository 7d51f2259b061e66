package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/osimagekit/image-definitions/internal/modules/model"
	"github.com/osimagekit/image-definitions/internal/modules/repo"
)

func newBootstrapDB(t *testing.T) *gorm.DB {
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

const sampleUnifiedConfig = `
product_groups:
  rocky:
    description: Rocky Linux products
    products:
      rocky-9:
        releasever: "9.4"
        arches:
          - x86_64
          - aarch64
        stages:
          - build
          - publish
        repository_groups:
          baseos: {}
          appstream: {}
  cloud:
    products:
      rocky-azure:
        just_like: rocky-9
      rocky-aws: {}
`

func mustParse(t *testing.T, raw string) *UnifiedConfig {
	t.Helper()
	cfg, err := ParseUnifiedConfig([]byte(raw))
	require.NoError(t, err)
	return cfg
}

func TestParseUnifiedConfig_Malformed(t *testing.T) {
	_, err := ParseUnifiedConfig([]byte("product_groups: [not: a: map"))
	assert.Error(t, err)
}

func TestBootstrapper_Run(t *testing.T) {
	db := newBootstrapDB(t)
	b := NewBootstrapper(db, zap.NewNop(), nil)
	ctx := context.Background()

	stats, err := b.Run(ctx, mustParse(t, sampleUnifiedConfig))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.ProductGroupsCreated)
	// rocky-9 and rocky-aws; rocky-azure is an alias and is skipped silently.
	assert.Equal(t, 2, stats.ProductsCreated)
	// two arches for rocky-9, default x86_64 for rocky-aws.
	assert.Equal(t, 3, stats.VariantsCreated)
	assert.Zero(t, stats.Skipped)
	assert.Zero(t, stats.Errors)

	groups := repo.NewProductGroupRepo(db)
	rocky, err := groups.GetByName(ctx, "rocky")
	require.NoError(t, err)
	require.NotNil(t, rocky.Description)
	assert.Equal(t, "Rocky Linux products", *rocky.Description)

	// Group without a description gets a generated one.
	cloud, err := groups.GetByName(ctx, "cloud")
	require.NoError(t, err)
	require.NotNil(t, cloud.Description)
	assert.Contains(t, *cloud.Description, "cloud")

	products := repo.NewProductRepo(db)
	rocky9, err := products.GetByNameInGroup(ctx, "rocky-9", rocky.ID)
	require.NoError(t, err)
	require.NotNil(t, rocky9.Version)
	assert.Equal(t, "9.4", *rocky9.Version)

	aws, err := products.GetByNameInGroup(ctx, "rocky-aws", cloud.ID)
	require.NoError(t, err)
	require.NotNil(t, aws.Version)
	assert.Equal(t, "1.0", *aws.Version)

	arches := repo.NewArchitectureRepo(db)
	x86, err := arches.GetByNameForProduct(ctx, "x86_64", rocky9.ID)
	require.NoError(t, err)
	require.NotNil(t, x86.DisplayName)
	assert.Equal(t, "X86 64", *x86.DisplayName)

	variants := repo.NewVariantRepo(db)
	v, err := variants.GetByArchitecture(ctx, x86.ID)
	require.NoError(t, err)
	assert.Equal(t, "rocky-9-x86_64", v.Name)
	assert.Equal(t, "9.4", v.BuildConfig["releasever"])
	assert.Equal(t, []any{"build", "publish"}, []any(v.BuildConfig["stages"].([]any)))
	assert.Equal(t, []any{"appstream", "baseos"}, []any(v.BuildConfig["repository_groups"].([]any)))

	arm, err := arches.GetByNameForProduct(ctx, "aarch64", rocky9.ID)
	require.NoError(t, err)
	armVariant, err := variants.GetByArchitecture(ctx, arm.ID)
	require.NoError(t, err)
	assert.Equal(t, "rocky-9-aarch64", armVariant.Name)

	// A product entry with no build knobs carries no build config.
	awsArch, err := arches.GetByNameForProduct(ctx, "x86_64", aws.ID)
	require.NoError(t, err)
	awsVariant, err := variants.GetByArchitecture(ctx, awsArch.ID)
	require.NoError(t, err)
	assert.Empty(t, awsVariant.BuildConfig)
}

func TestBootstrapper_RunIsIdempotent(t *testing.T) {
	db := newBootstrapDB(t)
	b := NewBootstrapper(db, zap.NewNop(), nil)
	ctx := context.Background()
	cfg := mustParse(t, sampleUnifiedConfig)

	first, err := b.Run(ctx, cfg)
	require.NoError(t, err)
	require.Equal(t, 7, first.TotalCreated())

	second, err := b.Run(ctx, cfg)
	require.NoError(t, err)
	assert.Zero(t, second.TotalCreated())
	// 2 groups + 2 products + 3 variants found in place.
	assert.Equal(t, 7, second.Skipped)
	assert.Zero(t, second.Errors)
}

func TestBootstrapper_Blacklist(t *testing.T) {
	raw := `
product_groups:
  CIQ-Kernel:
    products:
      kernel-lts: {}
  sig-cloud-next:
    products:
      next: {}
  rocky:
    products:
      rocky-9: {}
`
	t.Run("default blacklist is case-insensitive", func(t *testing.T) {
		db := newBootstrapDB(t)
		b := NewBootstrapper(db, zap.NewNop(), nil)

		stats, err := b.Run(context.Background(), mustParse(t, raw))
		require.NoError(t, err)
		assert.Equal(t, 1, stats.ProductGroupsCreated)

		_, err = repo.NewProductGroupRepo(db).GetByName(context.Background(), "CIQ-Kernel")
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})

	t.Run("custom blacklist overrides the default", func(t *testing.T) {
		db := newBootstrapDB(t)
		b := NewBootstrapper(db, zap.NewNop(), []string{"ROCKY"})

		stats, err := b.Run(context.Background(), mustParse(t, raw))
		require.NoError(t, err)
		assert.Equal(t, 2, stats.ProductGroupsCreated)

		_, err = repo.NewProductGroupRepo(db).GetByName(context.Background(), "rocky")
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})
}

func TestBootstrapper_MalformedProductCountsAsError(t *testing.T) {
	raw := `
product_groups:
  rocky:
    products:
      good-product: {}
      bad-product: just a string
`
	db := newBootstrapDB(t)
	b := NewBootstrapper(db, zap.NewNop(), nil)

	stats, err := b.Run(context.Background(), mustParse(t, raw))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ProductsCreated)
	assert.Equal(t, 1, stats.Errors)
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "X86 64", titleWords("x86 64"))
	assert.Equal(t, "Aarch64", titleWords("aarch64"))
	assert.Equal(t, "", titleWords(""))
}
