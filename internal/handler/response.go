// Package handler 包含了处理 HTTP 请求的控制器逻辑。
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bicara-go/internal/apperr"
)

// respondSuccess 输出统一的成功响应信封。
func respondSuccess(c *gin.Context, status int, message string, data interface{}) {
	body := gin.H{
		"status":  "success",
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

// respondError 将错误类别映射为 HTTP 状态码并输出统一的失败信封。
// 4xx 错误的消息可以直接展示给调用方；5xx 错误只在非 release
// 模式下通过 error 字段携带内部详情。
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, apperr.ErrValidation), errors.Is(err, apperr.ErrConflict):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperr.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperr.ErrUpstream):
		message = "upstream service error"
	}

	body := gin.H{
		"status":  "error",
		"message": message,
	}
	if status == http.StatusInternalServerError && gin.Mode() != gin.ReleaseMode {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}
