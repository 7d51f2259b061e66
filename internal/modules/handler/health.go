package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is the reported service version; overridable at link time.
var Version = "0.1.0"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Health godoc
//
//	@Summary	Service health
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": Version,
	})
}
