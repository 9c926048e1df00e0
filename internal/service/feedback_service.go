package service

import (
	"fmt"
	"strings"

	"bicara-go/internal/apperr"
	"bicara-go/internal/model"
	"bicara-go/internal/repository"
)

// FeedbackService 接口定义了用户反馈相关的业务操作。
type FeedbackService interface {
	CreateFeedback(comment string, rating int) (*model.Feedback, error)
	ListFeedback() ([]model.Feedback, error)
}

type feedbackService struct {
	repo repository.FeedbackRepository
}

// NewFeedbackService 创建一个新的 FeedbackService 实例。
func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

// CreateFeedback 创建一条反馈记录。
// comment 不能为空，rating 必须落在 [1,4]，校验发生在任何持久化调用之前。
func (s *feedbackService) CreateFeedback(comment string, rating int) (*model.Feedback, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", apperr.ErrValidation)
	}
	if rating < 1 || rating > 4 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 4", apperr.ErrValidation)
	}

	feedback := &model.Feedback{Comment: comment, Rating: rating}
	if err := s.repo.Create(feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// ListFeedback 按创建时间倒序返回所有反馈。
func (s *feedbackService) ListFeedback() ([]model.Feedback, error) {
	return s.repo.FindAll()
}
