package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spiceterra/webapi/pkg/errors"
)

// respondError maps the typed error taxonomy onto HTTP statuses. Anything
// untyped is an internal error and gets logged.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"error": e.Error()})
	case *errors.ErrStepIncomplete:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": e.Error()})
	case *errors.ErrFormInvalid:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": e.Fields,
		})
	case *errors.ErrInvalidStateTransition:
		c.JSON(http.StatusConflict, gin.H{"error": e.Error()})
	default:
		logger.Error("Unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
