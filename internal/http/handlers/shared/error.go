package shared

import (
	"github.com/finotty/duqueLoja/internal/http/response"
	"github.com/finotty/duqueLoja/internal/i18n"
	"github.com/finotty/duqueLoja/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog returns a logger carrying the request_id.
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if id, _ := c.Value("request_id").(string); id != "" {
		return logger.SW("request_id", id)
	}
	return logger.S()
}

func respond(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondError sends a localized error response and logs the original
// error when present.
func RespondError(c *gin.Context, code int, key string, err error) {
	respond(c, code, i18n.T(i18n.ResolveLocale(c), key), err)
}

// RespondErrorWithMsg sends an error response with a pre-built message.
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	respond(c, code, msg, err)
}
