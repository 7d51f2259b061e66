package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"github.com/osimagekit/image-definitions/internal/modules/serializer"
	"github.com/osimagekit/image-definitions/internal/modules/service"
	"gorm.io/datatypes"
)

type VariantHandler struct {
	svc service.VariantService
}

func NewVariantHandler(s service.VariantService) *VariantHandler {
	return &VariantHandler{svc: s}
}

type CreateVariantReq struct {
	Name           string            `json:"name" binding:"required,max=255"`
	Description    *string           `json:"description"`
	BuildConfig    datatypes.JSONMap `json:"build_config"`
	ArchitectureID uuid.UUID         `json:"architecture_id" binding:"required"`
}

// CreateVariant godoc
//
//	@Summary		Create variant
//	@Description	Create a buildable variant under an existing architecture
//	@Tags			variants
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateVariantReq	true	"Variant to create"
//	@Success		201		{object}	model.Variant
//	@Router			/variants [post]
func (h *VariantHandler) CreateVariant(c *gin.Context) {
	req := CreateVariantReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	variant := &model.Variant{
		Name:           req.Name,
		Description:    req.Description,
		BuildConfig:    req.BuildConfig,
		ArchitectureID: req.ArchitectureID,
	}
	if err := h.svc.Create(c.Request.Context(), variant); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, variant)
}

// ListVariants godoc
//
//	@Summary	List variants
//	@Tags		variants
//	@Produce	json
//	@Param		architecture_id	query		string	false	"Filter by architecture"	Format(uuid)
//	@Param		skip			query		int		false	"Rows to skip"
//	@Param		limit			query		int		false	"Page size (1-1000, default 100)"
//	@Success	200				{array}		model.Variant
//	@Router		/variants [get]
func (h *VariantHandler) ListVariants(c *gin.Context) {
	req := ListReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	archID, ok := optionalUUID(c, "architecture_id")
	if !ok {
		return
	}

	variants, err := h.svc.List(c.Request.Context(), archID, req.opts())
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, variants)
}

// GetVariant godoc
//
//	@Summary	Get variant
//	@Tags		variants
//	@Produce	json
//	@Param		id	path		string	true	"Variant ID"	Format(uuid)
//	@Success	200	{object}	model.Variant
//	@Router		/variants/{id} [get]
func (h *VariantHandler) GetVariant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	variant, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, variant)
}

// UpdateVariant godoc
//
//	@Summary	Update variant
//	@Tags		variants
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Variant ID"	Format(uuid)
//	@Param		body	body		model.VariantPatch	true	"Fields to update"
//	@Success	200		{object}	model.Variant
//	@Router		/variants/{id} [patch]
func (h *VariantHandler) UpdateVariant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	patch := model.VariantPatch{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	variant, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, variant)
}

// DeleteVariant godoc
//
//	@Summary	Delete variant
//	@Tags		variants
//	@Produce	json
//	@Param		id	path	string	true	"Variant ID"	Format(uuid)
//	@Success	204
//	@Router		/variants/{id} [delete]
func (h *VariantHandler) DeleteVariant(c *gin.Context) {
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
