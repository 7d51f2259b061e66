package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"github.com/osimagekit/image-definitions/internal/modules/repo"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultBlacklist holds the group names skipped during import unless
// overridden. Matching is case-insensitive.
var DefaultBlacklist = []string{"CIQ-Kernel", "sig-cloud-next"}

// UnifiedConfig is the parsed shape of a unified-config YAML document.
// Product entries stay untyped because their schema is open-ended; the
// engine inspects only the fields it understands.
type UnifiedConfig struct {
	ProductGroups map[string]GroupEntry `yaml:"product_groups"`
}

type GroupEntry struct {
	Description *string        `yaml:"description"`
	Products    map[string]any `yaml:"products"`
}

// BootstrapStats aggregates the outcome of one import run. Skipped is a
// shared counter across groups, products, and variants that already existed.
type BootstrapStats struct {
	ProductGroupsCreated int `json:"product_groups_created"`
	ProductsCreated      int `json:"products_created"`
	VariantsCreated      int `json:"variants_created"`
	Skipped              int `json:"skipped"`
	Errors               int `json:"errors"`
}

func (s BootstrapStats) TotalCreated() int {
	return s.ProductGroupsCreated + s.ProductsCreated + s.VariantsCreated
}

// Bootstrapper materializes a unified-config document into the entity
// hierarchy. Runs are idempotent: anything that already exists is reused and
// counted as skipped. The whole run commits as a single transaction.
type Bootstrapper struct {
	db        *gorm.DB
	log       *zap.Logger
	blacklist map[string]struct{}
}

func NewBootstrapper(db *gorm.DB, log *zap.Logger, blacklist []string) *Bootstrapper {
	if blacklist == nil {
		blacklist = DefaultBlacklist
	}
	set := make(map[string]struct{}, len(blacklist))
	for _, name := range blacklist {
		set[strings.ToLower(name)] = struct{}{}
	}
	return &Bootstrapper{db: db, log: log, blacklist: set}
}

// LoadConfig reads and parses a unified-config file. Callers treat a failure
// here as fatal.
func (b *Bootstrapper) LoadConfig(path string) (*UnifiedConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseUnifiedConfig(raw)
}

func ParseUnifiedConfig(raw []byte) (*UnifiedConfig, error) {
	var cfg UnifiedConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse unified config: %w", err)
	}
	return &cfg, nil
}

// Run walks the document group by group. Per-item failures are logged and
// counted but never abort the run; an error returned from inside the
// transaction rolls the whole run back.
func (b *Bootstrapper) Run(ctx context.Context, cfg *UnifiedConfig) (*BootstrapStats, error) {
	stats := &BootstrapStats{}
	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return b.process(ctx, tx, cfg, stats)
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return stats, nil
}

func (b *Bootstrapper) process(ctx context.Context, tx *gorm.DB, cfg *UnifiedConfig, stats *BootstrapStats) error {
	groups := repo.NewProductGroupRepo(tx)
	products := repo.NewProductRepo(tx)
	arches := repo.NewArchitectureRepo(tx)
	variants := repo.NewVariantRepo(tx)

	for groupName, groupEntry := range cfg.ProductGroups {
		if _, banned := b.blacklist[strings.ToLower(groupName)]; banned {
			b.log.Debug("skipping blacklisted group", zap.String("group", groupName))
			continue
		}

		group, err := b.ensureGroup(ctx, groups, groupName, groupEntry.Description, stats)
		if err != nil {
			b.log.Error("create product group failed", zap.String("group", groupName), zap.Error(err))
			stats.Errors++
			continue
		}

		if len(groupEntry.Products) == 0 {
			b.log.Warn("no products in group", zap.String("group", groupName))
			continue
		}

		for productName, entry := range groupEntry.Products {
			b.processProduct(ctx, products, arches, variants, group, productName, entry, stats)
		}
	}
	return nil
}

func (b *Bootstrapper) ensureGroup(ctx context.Context, groups repo.ProductGroupRepo, name string, description *string, stats *BootstrapStats) (*model.ProductGroup, error) {
	existing, err := groups.GetByName(ctx, name)
	if err == nil {
		b.log.Debug("product group already exists, skipping", zap.String("group", name))
		stats.Skipped++
		return existing, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	if description == nil {
		desc := fmt.Sprintf("Product group for %s products", name)
		description = &desc
	}
	group := &model.ProductGroup{ID: uuid.New(), Name: name, Description: description}
	if err := groups.Create(ctx, group); err != nil {
		return nil, err
	}
	stats.ProductGroupsCreated++
	return group, nil
}

func (b *Bootstrapper) processProduct(ctx context.Context, products repo.ProductRepo, arches repo.ArchitectureRepo, variants repo.VariantRepo, group *model.ProductGroup, name string, entry any, stats *BootstrapStats) {
	fields, ok := entry.(map[string]any)
	if !ok {
		b.log.Warn("skipping product with invalid data format",
			zap.String("group", group.Name), zap.String("product", name))
		stats.Errors++
		return
	}
	// Alias-to-another-product semantics are deferred; these entries are a
	// deliberate no-op, not an error.
	if _, aliased := fields["just_like"]; aliased {
		b.log.Debug("skipping product with just_like reference", zap.String("product", name))
		return
	}

	version := "1.0"
	if rv, present := fields["releasever"]; present {
		version = fmt.Sprintf("%v", rv)
	}

	product, err := b.ensureProduct(ctx, products, group, name, version, stats)
	if err != nil {
		b.log.Error("create product failed", zap.String("product", name), zap.Error(err))
		stats.Errors++
		return
	}

	archNames := stringList(fields["arches"])
	if len(archNames) == 0 {
		archNames = []string{"x86_64"}
	}
	for _, arch := range archNames {
		if err := b.ensureVariant(ctx, arches, variants, product, arch, fields, stats); err != nil {
			b.log.Error("create variant failed",
				zap.String("product", product.Name), zap.String("arch", arch), zap.Error(err))
			stats.Errors++
		}
	}
}

func (b *Bootstrapper) ensureProduct(ctx context.Context, products repo.ProductRepo, group *model.ProductGroup, name, version string, stats *BootstrapStats) (*model.Product, error) {
	existing, err := products.GetByNameInGroup(ctx, name, group.ID)
	if err == nil {
		b.log.Debug("product already exists, skipping",
			zap.String("product", name), zap.String("group", group.Name))
		stats.Skipped++
		return existing, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	desc := fmt.Sprintf("Product %s version %s", name, version)
	product := &model.Product{
		ID:             uuid.New(),
		Name:           name,
		Description:    &desc,
		Version:        &version,
		ProductGroupID: group.ID,
	}
	if err := products.Create(ctx, product); err != nil {
		return nil, err
	}
	stats.ProductsCreated++
	return product, nil
}

func (b *Bootstrapper) ensureVariant(ctx context.Context, arches repo.ArchitectureRepo, variants repo.VariantRepo, product *model.Product, archName string, fields map[string]any, stats *BootstrapStats) error {
	arch, err := arches.GetByNameForProduct(ctx, archName, product.ID)
	if isNotFound(err) {
		displayName := titleWords(strings.ReplaceAll(archName, "_", " "))
		desc := fmt.Sprintf("%s architecture for %s", archName, product.Name)
		arch = &model.Architecture{
			ID:          uuid.New(),
			Name:        archName,
			DisplayName: &displayName,
			Description: &desc,
			ProductID:   product.ID,
		}
		if err := arches.Create(ctx, arch); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	// This pass creates at most one variant per architecture; the API itself
	// allows more.
	if _, err := variants.GetByArchitecture(ctx, arch.ID); err == nil {
		b.log.Debug("variant already exists, skipping",
			zap.String("variant", product.Name+"-"+archName))
		stats.Skipped++
		return nil
	} else if !isNotFound(err) {
		return err
	}

	desc := fmt.Sprintf("%s for %s architecture", product.Name, archName)
	variant := &model.Variant{
		ID:             uuid.New(),
		Name:           fmt.Sprintf("%s-%s", product.Name, archName),
		Description:    &desc,
		BuildConfig:    buildConfigFrom(fields),
		ArchitectureID: arch.ID,
	}
	if err := variants.Create(ctx, variant); err != nil {
		return err
	}
	stats.VariantsCreated++
	return nil
}

// buildConfigFrom copies releasever, stages, and the key set of
// repository_groups out of a product entry. When none are present the
// variant carries no build config at all rather than an empty document.
func buildConfigFrom(fields map[string]any) datatypes.JSONMap {
	cfg := datatypes.JSONMap{}
	if rv, present := fields["releasever"]; present {
		cfg["releasever"] = rv
	}
	if stages, present := fields["stages"]; present {
		cfg["stages"] = stages
	}
	if rg, ok := fields["repository_groups"].(map[string]any); ok {
		keys := make([]string, 0, len(rg))
		for k := range rg {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		cfg["repository_groups"] = keys
	}
	if len(cfg) == 0 {
		return nil
	}
	return cfg
}

func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func isNotFound(err error) bool {
	return errors.Is(err, repo.ErrNotFound)
}
