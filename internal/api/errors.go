package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/advaita02/social-media-network/internal/service"
	"github.com/advaita02/social-media-network/pkg/logging"
)

// respondError maps a service error onto an HTTP status and JSON body.
// Unknown errors are logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case service.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case service.IsPermission(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logging.WithComponent("api").Error("Unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
