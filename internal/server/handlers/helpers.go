package handlers

import (
	"techblog/internal/apperr"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error chain to its HTTP status.
func respondError(c *gin.Context, err error) {
	c.JSON(apperr.Status(err), gin.H{"error": err.Error()})
}
