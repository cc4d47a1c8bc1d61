package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tutorhive/admin-gateway/internal/middleware"
	"github.com/tutorhive/admin-gateway/internal/models"
	appErrors "github.com/tutorhive/admin-gateway/pkg/errors"
)

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	value, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*models.JWTClaims)
	if !ok {
		return nil
	}
	return claims
}

// parseDateQuery reads a YYYY-MM-DD query parameter in server-local time.
// Empty input yields the zero time with no error.
func parseDateQuery(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, nil
	}
	parsed, err := time.ParseInLocation(models.DateKeyLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "invalid "+name+", expected YYYY-MM-DD")
	}
	return parsed, nil
}
