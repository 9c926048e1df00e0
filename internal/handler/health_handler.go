package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler 负责服务自身状态相关的端点。
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler 创建一个新的 HealthHandler 实例。
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

// Health 处理 GET /health，返回时间戳与运行时长。
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Seconds(),
	})
}

// Banner 处理 GET /，返回服务横幅和端点索引。
func (h *HealthHandler) Banner(c *gin.Context) {
	respondSuccess(c, http.StatusOK, "Bicara API", gin.H{
		"endpoints": gin.H{
			"history":     "POST/GET /api/history, POST /api/history/email, POST /api/history/:email, GET/DELETE /api/history/:key",
			"profile":     "GET/PUT /api/profile",
			"feedback":    "POST/GET /api/feedback",
			"soundboards": "POST/GET /api/soundboards",
			"health":      "GET /health",
		},
	})
}

// NoRoute 处理所有未匹配的路由。
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"status":  "error",
		"message": "route not found",
	})
}
