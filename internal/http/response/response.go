package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response unified envelope. The HTTP status is always 200; status_code
// carries the business result.
type Response struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data"`
}

// PageResponse paginated response envelope
type PageResponse struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination page information
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}

func write(c *gin.Context, statusCode int, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{StatusCode: statusCode, Msg: msg, Data: data})
}

// Success success response
func Success(c *gin.Context, data interface{}) {
	write(c, 0, "success", data)
}

// SuccessWithMsg success response with a custom message
func SuccessWithMsg(c *gin.Context, msg string, data interface{}) {
	write(c, 0, msg, data)
}

// SuccessWithPage paginated success response
func SuccessWithPage(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, PageResponse{
		StatusCode: 0,
		Msg:        "success",
		Data:       data,
		Pagination: pagination,
	})
}

// Error error response. The request ID rides along in the payload so
// clients can quote it when reporting problems.
func Error(c *gin.Context, statusCode int, msg string) {
	write(c, statusCode, msg, attachRequestID(c, nil))
}

// ErrorWithData error response carrying data
func ErrorWithData(c *gin.Context, statusCode int, msg string, data interface{}) {
	write(c, statusCode, msg, attachRequestID(c, data))
}

// NotFound 404 response
func NotFound(c *gin.Context, msg string) { Error(c, CodeNotFound, msg) }

// Unauthorized 401 response
func Unauthorized(c *gin.Context, msg string) { Error(c, CodeUnauthorized, msg) }

// Forbidden 403 response
func Forbidden(c *gin.Context, msg string) { Error(c, CodeForbidden, msg) }

// BadRequest 400 response
func BadRequest(c *gin.Context, msg string) { Error(c, CodeBadRequest, msg) }

func attachRequestID(c *gin.Context, data interface{}) interface{} {
	requestID := ""
	if c != nil {
		requestID, _ = c.Value("request_id").(string)
	}
	if requestID == "" {
		return data
	}
	switch v := data.(type) {
	case nil:
		return gin.H{"request_id": requestID}
	case gin.H:
		if _, ok := v["request_id"]; !ok {
			v["request_id"] = requestID
		}
		return v
	case map[string]interface{}:
		if _, ok := v["request_id"]; !ok {
			v["request_id"] = requestID
		}
		return v
	default:
		return gin.H{"request_id": requestID, "data": data}
	}
}
