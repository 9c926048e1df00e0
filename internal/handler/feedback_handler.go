package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"bicara-go/internal/apperr"
	"bicara-go/internal/service"
	"bicara-go/pkg/log"
)

// FeedbackHandler 负责处理与用户反馈相关的 API 请求。
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler 创建一个新的 FeedbackHandler 实例。
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// CreateFeedbackRequest 定义了提交反馈 API 的请求体结构。
type CreateFeedbackRequest struct {
	Comment string `json:"comment" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
}

// Create 处理 POST /api/feedback。
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warnf("CreateFeedback: Invalid request payload, error: %v", err)
		respondError(c, fmt.Errorf("%w: comment and rating are required", apperr.ErrValidation))
		return
	}

	feedback, err := h.feedbackService.CreateFeedback(req.Comment, req.Rating)
	if err != nil {
		log.Warnf("CreateFeedback: Failed, error: %v", err)
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Feedback submitted successfully", feedback)
}

// List 处理 GET /api/feedback，按创建时间倒序返回所有反馈。
func (h *FeedbackHandler) List(c *gin.Context) {
	feedbacks, err := h.feedbackService.ListFeedback()
	if err != nil {
		log.Error("ListFeedback: Failed to list feedback", err)
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "success", feedbacks)
}
