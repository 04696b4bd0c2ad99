package response

import (
	"net/http"
	cErr "orgchart/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

const (
	ContextKeyData    = "data"
	ContextKeyMessage = "message"
	ContextKeyRaw     = "passthrough_raw"
)

// Response 成功回應的統一外層
type Response struct {
	RequestID string `json:"requestID,omitempty"`
	Status    string `json:"status"`
	Code      int    `json:"code"`
	Message   string `json:"message"`
}

// ErrorResponse 失敗回應的統一外層
type ErrorResponse struct {
	RequestID string `json:"requestID,omitempty"`
	Detail    string `json:"detail"`
	Code      int    `json:"code"`
	Message   string `json:"message"`
}

// Success 只回傳狀態訊息，由 Response middleware 封裝
func Success(c *gin.Context, message string) {
	c.Set(ContextKeyMessage, message)
	c.Abort()
}

// Data 直接輸出資料本體（不封裝），例如整棵組織樹
func Data(c *gin.Context, data any) {
	c.Set(ContextKeyData, data)
	c.Set(ContextKeyRaw, true)
	c.Abort()
}

func AbortWithError(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}
func Fail(c *gin.Context, RequestID string, httpCode int, errorCode int, msg string, desc string) {
	c.JSON(httpCode, ErrorResponse{
		RequestID: RequestID,
		Detail:    desc,
		Code:      errorCode,
		Message:   msg,
	})
	c.Abort()
}

func FailByErr(c *gin.Context, RequestID string, err error) {
	v, ok := err.(*cErr.Error)
	if ok {
		Fail(c, RequestID, v.HttpCode(), v.ErrorCode(), v.Error(), v.ErrorDesc())
	} else {
		Fail(c, RequestID, http.StatusInternalServerError, cErr.INTERNAL_ERROR, "internal-server-error", "internal error")
	}
}
