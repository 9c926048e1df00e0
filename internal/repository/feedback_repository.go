package repository

import (
	"gorm.io/gorm"

	"bicara-go/internal/model"
)

// FeedbackRepository 接口定义了用户反馈数据的持久化操作。
type FeedbackRepository interface {
	Create(feedback *model.Feedback) error
	FindAll() ([]model.Feedback, error)
}

// feedbackRepository 是 FeedbackRepository 接口的 GORM 实现。
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository 创建一个新的 FeedbackRepository 实例。
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create 在数据库中创建一条新的反馈记录。
func (r *feedbackRepository) Create(feedback *model.Feedback) error {
	return r.db.Create(feedback).Error
}

// FindAll 按创建时间倒序检索所有反馈记录。
func (r *feedbackRepository) FindAll() ([]model.Feedback, error) {
	var feedbacks []model.Feedback
	err := r.db.Order("created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}
