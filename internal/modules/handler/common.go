package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/osimagekit/image-definitions/internal/modules/repo"
	"github.com/osimagekit/image-definitions/internal/modules/serializer"
)

// ListReq carries the shared pagination query params. An explicit limit
// outside [1,1000] is rejected; the default only applies when absent.
type ListReq struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=1,max=1000"`
}

func (r ListReq) opts() repo.ListOpts {
	return repo.ListOpts{Skip: r.Skip, Limit: r.Limit}
}

// pathID parses the :id path param; a failure already wrote the response.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Detail("invalid id: %s", c.Param("id")))
		return uuid.Nil, false
	}
	return id, true
}

// respondErr translates service errors to the error contract: 404 for a
// missing row, 400 for a bad reference or a name conflict, 500 otherwise.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, serializer.Detail("%s", err.Error()))
	case errors.Is(err, repo.ErrBadReference), errors.Is(err, repo.ErrConflict):
		c.JSON(http.StatusBadRequest, serializer.Detail("%s", err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, serializer.Detail("%s", err.Error()))
	}
}

// optionalUUID parses a query param that may be absent.
func optionalUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Detail("invalid %s: %s", name, raw))
		return nil, false
	}
	return &id, true
}
