package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/osimagekit/image-definitions/internal/config"
	"github.com/osimagekit/image-definitions/internal/modules/handler"
)

// NewRouter assembles the gin engine: middleware, the /health probe, and
// the API route table under the configured prefix.
func NewRouter(injector *do.Injector) *gin.Engine {
	cfg := do.MustInvoke[*config.Config](injector)
	log := do.MustInvoke[*zap.Logger](injector)

	if !cfg.Log.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware("image-definitions"))
	}
	r.Use(cors.New(corsConfig(cfg)))

	health := do.MustInvoke[*handler.HealthHandler](injector)
	r.GET("/health", health.Health)

	api := r.Group(cfg.Server.APIPrefix)

	groups := do.MustInvoke[*handler.ProductGroupHandler](injector)
	api.POST("/product-groups", groups.CreateProductGroup)
	api.GET("/product-groups", groups.ListProductGroups)
	api.GET("/product-groups/:id", groups.GetProductGroup)
	api.GET("/product-groups/:id/products", groups.GetProductGroupProducts)
	api.PATCH("/product-groups/:id", groups.UpdateProductGroup)
	api.DELETE("/product-groups/:id", groups.DeleteProductGroup)

	products := do.MustInvoke[*handler.ProductHandler](injector)
	api.POST("/products", products.CreateProduct)
	api.GET("/products", products.ListProducts)
	api.GET("/products/:id", products.GetProduct)
	api.PATCH("/products/:id", products.UpdateProduct)
	api.DELETE("/products/:id", products.DeleteProduct)

	arches := do.MustInvoke[*handler.ArchitectureHandler](injector)
	api.POST("/architectures", arches.CreateArchitecture)
	api.GET("/architectures", arches.ListArchitectures)
	api.GET("/architectures/:id", arches.GetArchitecture)
	api.PATCH("/architectures/:id", arches.UpdateArchitecture)
	api.DELETE("/architectures/:id", arches.DeleteArchitecture)

	variants := do.MustInvoke[*handler.VariantHandler](injector)
	api.POST("/variants", variants.CreateVariant)
	api.GET("/variants", variants.ListVariants)
	api.GET("/variants/:id", variants.GetVariant)
	api.PATCH("/variants/:id", variants.UpdateVariant)
	api.DELETE("/variants/:id", variants.DeleteVariant)

	artifacts := do.MustInvoke[*handler.ArtifactHandler](injector)
	api.POST("/artifacts", artifacts.CreateArtifact)
	api.GET("/artifacts", artifacts.ListArtifacts)
	api.GET("/artifacts/stats/summary", artifacts.GetArtifactStats)
	api.GET("/artifacts/:id", artifacts.GetArtifact)
	api.GET("/artifacts/:id/download-url", artifacts.GetArtifactDownloadURL)
	api.PATCH("/artifacts/:id", artifacts.UpdateArtifact)
	api.DELETE("/artifacts/:id", artifacts.DeleteArtifact)

	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	c.MaxAge = 12 * time.Hour
	if len(cfg.CORS.Origins) == 1 && cfg.CORS.Origins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORS.Origins
	}
	return c
}

// requestLogger logs one line per request with latency and status.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("request", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
