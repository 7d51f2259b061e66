package server

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/osimagekit/image-definitions/internal/config"
	"github.com/osimagekit/image-definitions/internal/infra/blob"
	"github.com/osimagekit/image-definitions/internal/infra/database"
	"github.com/osimagekit/image-definitions/internal/infra/logger"
	"github.com/osimagekit/image-definitions/internal/infra/mq"
	"github.com/osimagekit/image-definitions/internal/modules/handler"
	"github.com/osimagekit/image-definitions/internal/modules/repo"
	"github.com/osimagekit/image-definitions/internal/modules/service"
)

// MustLogger pulls the shared logger out of the injector.
func MustLogger(injector *do.Injector) *zap.Logger {
	return do.MustInvoke[*zap.Logger](injector)
}

// BuildInjector wires config through handlers. Optional infra (mq, s3)
// registers as nil service values when disabled; consumers treat nil as
// "feature off".
func BuildInjector(cfg *config.Config) *do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)

	do.Provide(injector, func(i *do.Injector) (*zap.Logger, error) {
		return logger.New(do.MustInvoke[*config.Config](i))
	})

	do.Provide(injector, func(i *do.Injector) (*gorm.DB, error) {
		return database.New(do.MustInvoke[*config.Config](i), do.MustInvoke[*zap.Logger](i))
	})

	do.Provide(injector, func(i *do.Injector) (service.EventPublisher, error) {
		c := do.MustInvoke[*config.Config](i)
		if !c.MQ.Enabled {
			return nil, nil
		}
		log := do.MustInvoke[*zap.Logger](i)
		dial := func() (*amqp.Connection, error) { return amqp.Dial(c.MQ.URL) }
		conn, err := dial()
		if err != nil {
			return nil, err
		}
		return mq.NewPublisher(conn, c.MQ.Exchange, log, dial)
	})

	do.Provide(injector, func(i *do.Injector) (service.Presigner, error) {
		c := do.MustInvoke[*config.Config](i)
		if !c.S3.Enabled {
			return nil, nil
		}
		return blob.NewS3Presigner(context.Background(), c.S3.Region, c.S3.Endpoint)
	})

	// Repositories.
	do.Provide(injector, func(i *do.Injector) (repo.ProductGroupRepo, error) {
		return repo.NewProductGroupRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i *do.Injector) (repo.ProductRepo, error) {
		return repo.NewProductRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i *do.Injector) (repo.ArchitectureRepo, error) {
		return repo.NewArchitectureRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i *do.Injector) (repo.VariantRepo, error) {
		return repo.NewVariantRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(injector, func(i *do.Injector) (repo.ArtifactRepo, error) {
		return repo.NewArtifactRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Services.
	do.Provide(injector, func(i *do.Injector) (service.ProductGroupService, error) {
		return service.NewProductGroupService(do.MustInvoke[repo.ProductGroupRepo](i)), nil
	})
	do.Provide(injector, func(i *do.Injector) (service.ProductService, error) {
		return service.NewProductService(
			do.MustInvoke[repo.ProductRepo](i),
			do.MustInvoke[repo.ProductGroupRepo](i),
		), nil
	})
	do.Provide(injector, func(i *do.Injector) (service.ArchitectureService, error) {
		return service.NewArchitectureService(
			do.MustInvoke[repo.ArchitectureRepo](i),
			do.MustInvoke[repo.ProductRepo](i),
		), nil
	})
	do.Provide(injector, func(i *do.Injector) (service.VariantService, error) {
		return service.NewVariantService(
			do.MustInvoke[repo.VariantRepo](i),
			do.MustInvoke[repo.ArchitectureRepo](i),
		), nil
	})
	do.Provide(injector, func(i *do.Injector) (service.ArtifactService, error) {
		return service.NewArtifactService(
			do.MustInvoke[repo.ArtifactRepo](i),
			do.MustInvoke[repo.VariantRepo](i),
			do.MustInvoke[service.EventPublisher](i),
			do.MustInvoke[service.Presigner](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handlers.
	do.Provide(injector, func(i *do.Injector) (*handler.ProductGroupHandler, error) {
		return handler.NewProductGroupHandler(do.MustInvoke[service.ProductGroupService](i)), nil
	})
	do.Provide(injector, func(i *do.Injector) (*handler.ProductHandler, error) {
		return handler.NewProductHandler(do.MustInvoke[service.ProductService](i)), nil
	})
	do.Provide(injector, func(i *do.Injector) (*handler.ArchitectureHandler, error) {
		return handler.NewArchitectureHandler(do.MustInvoke[service.ArchitectureService](i)), nil
	})
	do.Provide(injector, func(i *do.Injector) (*handler.VariantHandler, error) {
		return handler.NewVariantHandler(do.MustInvoke[service.VariantService](i)), nil
	})
	do.Provide(injector, func(i *do.Injector) (*handler.ArtifactHandler, error) {
		return handler.NewArtifactHandler(do.MustInvoke[service.ArtifactService](i)), nil
	})
	do.Provide(injector, func(i *do.Injector) (*handler.HealthHandler, error) {
		return handler.NewHealthHandler(), nil
	})

	return injector
}
