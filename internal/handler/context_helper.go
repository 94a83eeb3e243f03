package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/campushq/college-portal-api/internal/middleware"
	"github.com/campushq/college-portal-api/internal/models"
)

func claimsFromContext(c *gin.Context) *models.SessionClaims {
	value, exists := c.Get(middleware.ContextSessionKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.SessionClaims)
	if !ok {
		return nil
	}
	return claims
}
