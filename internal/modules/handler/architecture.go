package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"github.com/osimagekit/image-definitions/internal/modules/serializer"
	"github.com/osimagekit/image-definitions/internal/modules/service"
)

type ArchitectureHandler struct {
	svc service.ArchitectureService
}

func NewArchitectureHandler(s service.ArchitectureService) *ArchitectureHandler {
	return &ArchitectureHandler{svc: s}
}

type CreateArchitectureReq struct {
	Name        string    `json:"name" binding:"required,max=50"`
	DisplayName *string   `json:"display_name" binding:"omitempty,max=100"`
	Description *string   `json:"description"`
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
}

// CreateArchitecture godoc
//
//	@Summary		Create architecture
//	@Description	Create a CPU architecture entry under an existing product
//	@Tags			architectures
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateArchitectureReq	true	"Architecture to create"
//	@Success		201		{object}	model.Architecture
//	@Router			/architectures [post]
func (h *ArchitectureHandler) CreateArchitecture(c *gin.Context) {
	req := CreateArchitectureReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	arch := &model.Architecture{
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Description: req.Description,
		ProductID:   req.ProductID,
	}
	if err := h.svc.Create(c.Request.Context(), arch); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, arch)
}

// ListArchitectures godoc
//
//	@Summary	List architectures
//	@Tags		architectures
//	@Produce	json
//	@Param		product_id	query		string	false	"Filter by product"	Format(uuid)
//	@Param		skip		query		int		false	"Rows to skip"
//	@Param		limit		query		int		false	"Page size (1-1000, default 100)"
//	@Success	200			{array}		model.Architecture
//	@Router		/architectures [get]
func (h *ArchitectureHandler) ListArchitectures(c *gin.Context) {
	req := ListReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	productID, ok := optionalUUID(c, "product_id")
	if !ok {
		return
	}

	arches, err := h.svc.List(c.Request.Context(), productID, req.opts())
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, arches)
}

// GetArchitecture godoc
//
//	@Summary	Get architecture
//	@Tags		architectures
//	@Produce	json
//	@Param		id	path		string	true	"Architecture ID"	Format(uuid)
//	@Success	200	{object}	model.Architecture
//	@Router		/architectures/{id} [get]
func (h *ArchitectureHandler) GetArchitecture(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	arch, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, arch)
}

// UpdateArchitecture godoc
//
//	@Summary	Update architecture
//	@Tags		architectures
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Architecture ID"	Format(uuid)
//	@Param		body	body		model.ArchitecturePatch	true	"Fields to update"
//	@Success	200		{object}	model.Architecture
//	@Router		/architectures/{id} [patch]
func (h *ArchitectureHandler) UpdateArchitecture(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	patch := model.ArchitecturePatch{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	arch, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, arch)
}

// DeleteArchitecture godoc
//
//	@Summary	Delete architecture
//	@Tags		architectures
//	@Produce	json
//	@Param		id	path	string	true	"Architecture ID"	Format(uuid)
//	@Success	204
//	@Router		/architectures/{id} [delete]
func (h *ArchitectureHandler) DeleteArchitecture(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
