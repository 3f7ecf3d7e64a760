package auth

import (
	"crypto/subtle"

	"github.com/foodtrackerapp/expiry-notifier/internal/errors"
	"github.com/gin-gonic/gin"
)

// HeaderAPIKey is the request header carrying the trigger API key.
const HeaderAPIKey = "X-Api-Key"

// APIKeyMiddleware guards the trigger endpoints with a shared API key,
// the way the function platform passed its key header to the original
// scheduled functions.
type APIKeyMiddleware struct {
	key string
}

func NewAPIKeyMiddleware(key string) *APIKeyMiddleware {
	return &APIKeyMiddleware{key: key}
}

// RequireKey is a middleware that validates the X-Api-Key header.
func (m *APIKeyMiddleware) RequireKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.key == "" {
			errors.AbortWithUnauthorized(c, "trigger API key is not configured", nil)
			return
		}

		header := c.GetHeader(HeaderAPIKey)
		if header == "" {
			errors.AbortWithUnauthorized(c, "X-Api-Key header is required", nil)
			return
		}

		if subtle.ConstantTimeCompare([]byte(header), []byte(m.key)) != 1 {
			errors.AbortWithUnauthorized(c, "invalid API key", nil)
			return
		}

		c.Next()
	}
}
