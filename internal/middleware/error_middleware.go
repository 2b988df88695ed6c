package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doruk/portfolio/internal/app/models/dto"
	"github.com/doruk/portfolio/internal/pkg/apperrors"
	"github.com/doruk/portfolio/internal/pkg/logger"
)

// HandlePageError maps an error to an HTML error page. Used by every
// server-rendered route.
func HandlePageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"status":  http.StatusNotFound,
			"message": err.Error(),
		})
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"status":  http.StatusBadRequest,
			"message": err.Error(),
			"field":   apperrors.FieldOf(err),
		})
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"status":  http.StatusInternalServerError,
			"message": "Something went wrong",
		})
	}
}

// HandleAPIError maps an error to a JSON error response. Used by the
// contact endpoint.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()).WithField(apperrors.FieldOf(err))))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
