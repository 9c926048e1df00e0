package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bicara-go/internal/apperr"
	"bicara-go/internal/service"
	"bicara-go/pkg/log"
)

// SoundboardHandler 负责处理与音效板相关的 API 请求。
type SoundboardHandler struct {
	soundboardService service.SoundboardService
}

// NewSoundboardHandler 创建一个新的 SoundboardHandler 实例。
func NewSoundboardHandler(soundboardService service.SoundboardService) *SoundboardHandler {
	return &SoundboardHandler{soundboardService: soundboardService}
}

// CreateSoundboardRequest 定义了创建音效板 API 的请求体结构。
type CreateSoundboardRequest struct {
	Text string `json:"text" binding:"required"`
}

// Create 处理 POST /api/soundboards。
// 同步执行合成与上传，慢调用只阻塞当前请求。
func (h *SoundboardHandler) Create(c *gin.Context) {
	var req CreateSoundboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("CreateSoundboard: Invalid request payload, error: %v", err)
		respondError(c, fmt.Errorf("%w: text is required", apperr.ErrValidation))
		return
	}

	soundboard, err := h.soundboardService.CreateSoundboard(c.Request.Context(), req.Text)
	if err != nil {
		log.Warnf("CreateSoundboard: Failed, error: %v", err)
		respondError(c, err)
		return
	}

	log.Infof("Soundboard '%s' created, file='%s'", soundboard.ID, soundboard.FileName)
	respondSuccess(c, http.StatusCreated, "Soundboard created successfully", soundboard)
}

// List 处理 GET /api/soundboards，按创建时间倒序返回所有记录。
func (h *SoundboardHandler) List(c *gin.Context) {
	soundboards, err := h.soundboardService.ListSoundboards()
	if err != nil {
		log.Error("ListSoundboards: Failed to list soundboards", err)
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "success", soundboards)
}
