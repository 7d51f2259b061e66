package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/model"
	"github.com/osimagekit/image-definitions/internal/modules/repo"
	"github.com/osimagekit/image-definitions/internal/modules/serializer"
	"github.com/osimagekit/image-definitions/internal/modules/service"
	"gorm.io/datatypes"
)

type ArtifactHandler struct {
	svc service.ArtifactService
}

func NewArtifactHandler(s service.ArtifactService) *ArtifactHandler {
	return &ArtifactHandler{svc: s}
}

type CreateArtifactReq struct {
	Name          string               `json:"name" binding:"required,max=255"`
	ArtifactType  model.ArtifactType   `json:"artifact_type" binding:"required"`
	Status        model.ArtifactStatus `json:"status"`
	Location      *string              `json:"location" binding:"omitempty,max=500"`
	Region        *string              `json:"region" binding:"omitempty,max=100"`
	AccountID     *string              `json:"account_id" binding:"omitempty,max=100"`
	SizeBytes     *int64               `json:"size_bytes" binding:"omitempty,min=0"`
	Checksum      *string              `json:"checksum" binding:"omitempty,max=128"`
	BuildID       *string              `json:"build_id" binding:"omitempty,max=255"`
	BuildMetadata datatypes.JSONMap    `json:"build_metadata"`
	VariantID     uuid.UUID            `json:"variant_id" binding:"required"`
}

// CreateArtifact godoc
//
//	@Summary		Create artifact
//	@Description	Record a build artifact under an existing variant; status defaults to pending
//	@Tags			artifacts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		CreateArtifactReq	true	"Artifact to create"
//	@Success		201		{object}	model.Artifact
//	@Router			/artifacts [post]
func (h *ArtifactHandler) CreateArtifact(c *gin.Context) {
	req := CreateArtifactReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	artifact := &model.Artifact{
		Name:          req.Name,
		ArtifactType:  req.ArtifactType,
		Status:        req.Status,
		Location:      req.Location,
		Region:        req.Region,
		AccountID:     req.AccountID,
		SizeBytes:     req.SizeBytes,
		Checksum:      req.Checksum,
		BuildID:       req.BuildID,
		BuildMetadata: req.BuildMetadata,
		VariantID:     req.VariantID,
	}
	if err := h.svc.Create(c.Request.Context(), artifact); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, artifact)
}

// ListArtifacts godoc
//
//	@Summary	List artifacts
//	@Tags		artifacts
//	@Produce	json
//	@Param		variant_id		query		string	false	"Filter by variant"	Format(uuid)
//	@Param		artifact_type	query		string	false	"Filter by type"
//	@Param		status			query		string	false	"Filter by status"
//	@Param		region			query		string	false	"Filter by region"
//	@Param		skip			query		int		false	"Rows to skip"
//	@Param		limit			query		int		false	"Page size (1-1000, default 100)"
//	@Success	200				{array}		model.Artifact
//	@Router		/artifacts [get]
func (h *ArtifactHandler) ListArtifacts(c *gin.Context) {
	req := ListReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	filter := repo.ArtifactFilter{}
	variantID, ok := optionalUUID(c, "variant_id")
	if !ok {
		return
	}
	filter.VariantID = variantID

	if raw := c.Query("artifact_type"); raw != "" {
		t := model.ArtifactType(raw)
		if !t.Valid() {
			c.JSON(http.StatusBadRequest, serializer.Detail("invalid artifact_type: %s", raw))
			return
		}
		filter.Type = &t
	}
	if raw := c.Query("status"); raw != "" {
		s := model.ArtifactStatus(raw)
		if !s.Valid() {
			c.JSON(http.StatusBadRequest, serializer.Detail("invalid status: %s", raw))
			return
		}
		filter.Status = &s
	}
	if raw := c.Query("region"); raw != "" {
		filter.Region = &raw
	}

	artifacts, err := h.svc.List(c.Request.Context(), filter, req.opts())
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, artifacts)
}

// GetArtifact godoc
//
//	@Summary	Get artifact
//	@Tags		artifacts
//	@Produce	json
//	@Param		id	path		string	true	"Artifact ID"	Format(uuid)
//	@Success	200	{object}	model.Artifact
//	@Router		/artifacts/{id} [get]
func (h *ArtifactHandler) GetArtifact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	artifact, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, artifact)
}

// UpdateArtifact godoc
//
//	@Summary	Update artifact
//	@Tags		artifacts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Artifact ID"	Format(uuid)
//	@Param		body	body		model.ArtifactPatch	true	"Fields to update"
//	@Success	200		{object}	model.Artifact
//	@Router		/artifacts/{id} [patch]
func (h *ArtifactHandler) UpdateArtifact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	patch := model.ArtifactPatch{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	artifact, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, artifact)
}

// DeleteArtifact godoc
//
//	@Summary	Delete artifact
//	@Tags		artifacts
//	@Produce	json
//	@Param		id	path	string	true	"Artifact ID"	Format(uuid)
//	@Success	204
//	@Router		/artifacts/{id} [delete]
func (h *ArtifactHandler) DeleteArtifact(c *gin.Context) {
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

// GetArtifactStats godoc
//
//	@Summary		Artifact statistics
//	@Description	Aggregate artifact counts by type and status plus total stored bytes
//	@Tags			artifacts
//	@Produce		json
//	@Success		200	{object}	model.ArtifactStats
//	@Router			/artifacts/stats/summary [get]
func (h *ArtifactHandler) GetArtifactStats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

type DownloadURLReq struct {
	Expire int `form:"expire,default=3600" binding:"omitempty,min=1,max=604800"`
}

type DownloadURLResp struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expires_in"`
}

// GetArtifactDownloadURL godoc
//
//	@Summary		Presigned download URL
//	@Description	Issue a time-limited download URL for an artifact stored at an s3:// location
//	@Tags			artifacts
//	@Produce		json
//	@Param			id		path		string	true	"Artifact ID"	Format(uuid)
//	@Param			expire	query		int		false	"URL lifetime in seconds (default 3600)"
//	@Success		200		{object}	DownloadURLResp
//	@Router			/artifacts/{id}/download-url [get]
func (h *ArtifactHandler) GetArtifactDownloadURL(c *gin.Context) {
	req := DownloadURLReq{}
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	url, err := h.svc.DownloadURL(c.Request.Context(), id, time.Duration(req.Expire)*time.Second)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, DownloadURLResp{URL: url, ExpiresIn: req.Expire})
}
