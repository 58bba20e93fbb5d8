package shared

import (
	"github.com/finotty/duqueLoja/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetContextUintWithKeys reads a uint identity from the context. A
// missing key means the auth middleware never ran; a negative or
// foreign type means something upstream is broken. Either way the
// response has already been written when ok is false.
func GetContextUintWithKeys(c *gin.Context, key, invalidKey, typeInvalidKey string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v >= 0 {
			return uint(v), true
		}
		RespondError(c, response.CodeBadRequest, invalidKey, nil)
	case float64:
		if v >= 0 {
			return uint(v), true
		}
		RespondError(c, response.CodeBadRequest, invalidKey, nil)
	default:
		RespondError(c, response.CodeInternal, typeInvalidKey, nil)
	}
	return 0, false
}
