package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bicara-go/internal/apperr"
	"bicara-go/internal/service"
	"bicara-go/pkg/log"
)

// HistoryHandler 负责处理所有与交互历史相关的 API 请求。
type HistoryHandler struct {
	historyService service.HistoryService
}

// NewHistoryHandler 创建一个新的 HistoryHandler 实例。
func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// CreateEntryRequest 定义了创建独立历史记录 API 的请求体结构。
type CreateEntryRequest struct {
	Title   string  `json:"title" binding:"required"`
	Message *string `json:"message"`
}

// CreateEntry 处理 POST /api/history，创建一条 id 寻址的历史记录。
func (h *HistoryHandler) CreateEntry(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("CreateEntry: Invalid request payload, error: %v", err)
		respondError(c, fmt.Errorf("%w: title is required", apperr.ErrValidation))
		return
	}

	entry, err := h.historyService.CreateEntry(req.Title, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Infof("History entry '%s' created", entry.ID)
	respondSuccess(c, http.StatusCreated, "History entry created successfully", entry)
}

// CreateIdentityRequest 定义了创建身份记录 API 的请求体结构。
type CreateIdentityRequest struct {
	Title string `json:"title" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// CreateIdentity 处理 POST /api/history/email，为 email 创建身份记录。
func (h *HistoryHandler) CreateIdentity(c *gin.Context) {
	var req CreateIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("CreateIdentity: Invalid request payload, error: %v", err)
		respondError(c, fmt.Errorf("%w: title and email are required", apperr.ErrValidation))
		return
	}

	entry, err := h.historyService.CreateIdentity(req.Email, req.Title)
	if err != nil {
		log.Warnf("CreateIdentity: Failed for email '%s', error: %v", req.Email, err)
		respondError(c, err)
		return
	}

	log.Infof("History identity created for email '%s'", req.Email)
	respondSuccess(c, http.StatusCreated, "History identity created successfully", entry)
}

// AttachMessageRequest 定义了追加消息 API 的请求体结构。
type AttachMessageRequest struct {
	Message        string `json:"message" binding:"required"`
	IsSpeechToText bool   `json:"is_speech_to_text"`
}

// AttachMessage 处理 POST /api/history/:email，向身份记录追加消息。
func (h *HistoryHandler) AttachMessage(c *gin.Context) {
	email := c.Param("email")

	var req AttachMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("AttachMessage: Invalid request payload for '%s', error: %v", email, err)
		respondError(c, fmt.Errorf("%w: message is required", apperr.ErrValidation))
		return
	}

	entry, err := h.historyService.AttachMessage(email, req.Message, req.IsSpeechToText)
	if err != nil {
		log.Warnf("AttachMessage: Failed for email '%s', error: %v", email, err)
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Message saved successfully", entry)
}

// List 处理 GET /api/history，按创建时间倒序返回所有历史记录。
// 无记录时返回空列表而不是 404。
func (h *HistoryHandler) List(c *gin.Context) {
	entries, err := h.historyService.ListAll()
	if err != nil {
		log.Error("List: Failed to list history", err)
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "success", entries)
}

// Get 处理 GET /api/history/:key，key 可以是记录 id 或 email。
func (h *HistoryHandler) Get(c *gin.Context) {
	key := c.Param("key")

	detail, err := h.historyService.GetByKey(key)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "success", detail)
}

// Delete 处理 DELETE /api/history/:key，删除记录并级联删除其消息。
func (h *HistoryHandler) Delete(c *gin.Context) {
	key := c.Param("key")

	if err := h.historyService.DeleteByKey(key); err != nil {
		log.Warnf("Delete: Failed for key '%s', error: %v", key, err)
		respondError(c, err)
		return
	}

	log.Infof("History '%s' deleted", key)
	respondSuccess(c, http.StatusOK, "History deleted successfully", nil)
}
