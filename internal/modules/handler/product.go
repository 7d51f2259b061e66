package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"github.com/osimagekit/image-definitions/internal/modules/serializer"
	"github.com/osimagekit/image-definitions/internal/modules/service"
)

type ProductHandler struct {
	svc service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{svc: s}
}

type CreateProductReq struct {
	Name           string    `json:"name" binding:"required,max=255"`
	Description    *string   `json:"description"`
	Version        *string   `json:"version" binding:"omitempty,max=100"`
	ProductGroupID uuid.UUID `json:"product_group_id" binding:"required"`
}

// CreateProduct godoc
//
//	@Summary		Create product
//	@Description	Create a product under an existing product group
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateProductReq	true	"Product to create"
//	@Success		201		{object}	model.Product
//	@Router			/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	req := CreateProductReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	product := &model.Product{
		Name:           req.Name,
		Description:    req.Description,
		Version:        req.Version,
		ProductGroupID: req.ProductGroupID,
	}
	if err := h.svc.Create(c.Request.Context(), product); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// ListProducts godoc
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Param		product_group_id	query		string	false	"Filter by product group"	Format(uuid)
//	@Param		skip				query		int		false	"Rows to skip"
//	@Param		limit				query		int		false	"Page size (1-1000, default 100)"
//	@Success	200					{array}		model.Product
//	@Router		/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	req := ListReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}
	groupID, ok := optionalUUID(c, "product_group_id")
	if !ok {
		return
	}

	products, err := h.svc.List(c.Request.Context(), groupID, req.opts())
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct godoc
//
//	@Summary	Get product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"Product ID"	Format(uuid)
//	@Success	200	{object}	model.Product
//	@Router		/products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct godoc
//
//	@Summary	Update product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Product ID"	Format(uuid)
//	@Param		body	body		model.ProductPatch	true	"Fields to update"
//	@Success	200		{object}	model.Product
//	@Router		/products/{id} [patch]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	patch := model.ProductPatch{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	product, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
//
//	@Summary	Delete product
//	@Tags		products
//	@Produce	json
//	@Param		id	path	string	true	"Product ID"	Format(uuid)
//	@Success	204
//	@Router		/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
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
