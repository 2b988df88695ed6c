package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doruk/portfolio/internal/middleware"
	"github.com/doruk/portfolio/internal/pkg/apperrors"
)

// pathID parses the :id route parameter. A non-numeric id cannot name any
// record, so it renders the not-found page directly.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		middleware.HandlePageError(c, apperrors.NewResourceNotFoundError("no such record"))
		return 0, false
	}
	return id, true
}
