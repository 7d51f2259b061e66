package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"github.com/osimagekit/image-definitions/internal/modules/serializer"
	"github.com/osimagekit/image-definitions/internal/modules/service"
)

type ProductGroupHandler struct {
	svc service.ProductGroupService
}

func NewProductGroupHandler(s service.ProductGroupService) *ProductGroupHandler {
	return &ProductGroupHandler{svc: s}
}

type CreateProductGroupReq struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
}

// CreateProductGroup godoc
//
//	@Summary		Create product group
//	@Description	Create a product group; names are unique across groups
//	@Tags			product-groups
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateProductGroupReq	true	"Product group to create"
//	@Success		201		{object}	model.ProductGroup
//	@Router			/product-groups [post]
func (h *ProductGroupHandler) CreateProductGroup(c *gin.Context) {
	req := CreateProductGroupReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	group := &model.ProductGroup{Name: req.Name, Description: req.Description}
	if err := h.svc.Create(c.Request.Context(), group); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// ListProductGroups godoc
//
//	@Summary	List product groups
//	@Tags		product-groups
//	@Produce	json
//	@Param		skip	query		int	false	"Rows to skip"
//	@Param		limit	query		int	false	"Page size (1-1000, default 100)"
//	@Success	200		{array}		model.ProductGroup
//	@Router		/product-groups [get]
func (h *ProductGroupHandler) ListProductGroups(c *gin.Context) {
	req := ListReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	groups, err := h.svc.List(c.Request.Context(), req.opts())
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetProductGroup godoc
//
//	@Summary	Get product group
//	@Tags		product-groups
//	@Produce	json
//	@Param		id	path		string	true	"Product group ID"	Format(uuid)
//	@Success	200	{object}	model.ProductGroup
//	@Router		/product-groups/{id} [get]
func (h *ProductGroupHandler) GetProductGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	group, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// GetProductGroupProducts godoc
//
//	@Summary	Get product group with its products
//	@Tags		product-groups
//	@Produce	json
//	@Param		id	path		string	true	"Product group ID"	Format(uuid)
//	@Success	200	{object}	model.ProductGroup
//	@Router		/product-groups/{id}/products [get]
func (h *ProductGroupHandler) GetProductGroupProducts(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	group, err := h.svc.GetWithProducts(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// UpdateProductGroup godoc
//
//	@Summary	Update product group
//	@Tags		product-groups
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Product group ID"	Format(uuid)
//	@Param		body	body		model.ProductGroupPatch	true	"Fields to update"
//	@Success	200		{object}	model.ProductGroup
//	@Router		/product-groups/{id} [patch]
func (h *ProductGroupHandler) UpdateProductGroup(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	patch := model.ProductGroupPatch{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	group, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// DeleteProductGroup godoc
//
//	@Summary		Delete product group
//	@Description	Delete a product group and, by cascade, everything under it
//	@Tags			product-groups
//	@Produce		json
//	@Param			id	path	string	true	"Product group ID"	Format(uuid)
//	@Success		204
//	@Router			/product-groups/{id} [delete]
func (h *ProductGroupHandler) DeleteProductGroup(c *gin.Context) {
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
