package public

import (
	"strings"

	handlershared "github.com/finotty/duqueLoja/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

const deviceIDHeader = "X-Device-ID"

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}

// getDeviceID reads the visitor's device identifier header. Anonymous
// cart and pending-action routes require it.
func getDeviceID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(deviceIDHeader))
}
