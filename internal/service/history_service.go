// Package service 包含了应用的业务逻辑层。
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bicara-go/internal/apperr"
	"bicara-go/internal/model"
	"bicara-go/internal/repository"
)

// HistoryService 接口定义了交互历史相关的业务操作。
type HistoryService interface {
	CreateIdentity(email, title string) (*model.HistoryEntry, error)
	CreateEntry(title string, message *string) (*model.HistoryEntry, error)
	AttachMessage(email, message string, isSpeechToText bool) (*model.HistoryEntry, error)
	ListAll() ([]model.HistoryEntry, error)
	GetByKey(key string) (*HistoryDetail, error)
	DeleteByKey(key string) error
}

// HistoryDetail 是按 key 查询的返回结构，带 email 的记录附带其全部消息。
type HistoryDetail struct {
	Entry    model.HistoryEntry   `json:"entry"`
	Messages []model.MessageEntry `json:"messages,omitempty"`
}

type historyService struct {
	repo repository.HistoryRepository
}

// NewHistoryService 创建一个新的 HistoryService 实例。
func NewHistoryService(repo repository.HistoryRepository) HistoryService {
	return &historyService{repo: repo}
}

// CreateIdentity 为 email 创建身份记录。
// 同一个 email 只允许一条身份记录，重复创建返回 Conflict。
func (s *historyService) CreateIdentity(email, title string) (*model.HistoryEntry, error) {
	email = strings.TrimSpace(email)
	title = strings.TrimSpace(title)
	if email == "" || title == "" {
		return nil, fmt.Errorf("%w: title and email are required", apperr.ErrValidation)
	}

	_, err := s.repo.FindByEmail(email)
	if err == nil {
		return nil, fmt.Errorf("%w: history for email %q already exists", apperr.ErrConflict, email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := &model.HistoryEntry{
		ID:    uuid.NewString(),
		Title: title,
		Email: &email,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// CreateEntry 创建一条不带 email 的独立历史记录，仅靠生成的 id 寻址。
func (s *historyService) CreateEntry(title string, message *string) (*model.HistoryEntry, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", apperr.ErrValidation)
	}

	entry := &model.HistoryEntry{
		ID:      uuid.NewString(),
		Title:   title,
		Message: message,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// AttachMessage 向已存在的身份记录追加一条消息。
// 消息写入 messages 表，同时刷新身份记录上的最新消息和时间戳。
func (s *historyService) AttachMessage(email, message string, isSpeechToText bool) (*model.HistoryEntry, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", apperr.ErrValidation)
	}

	entry, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no history for email %q", apperr.ErrNotFound, email)
		}
		return nil, err
	}

	msg := &model.MessageEntry{
		MessageID:      uuid.NewString(),
		Email:          email,
		Message:        message,
		IsSpeechToText: isSpeechToText,
	}
	if err := s.repo.CreateMessage(msg); err != nil {
		return nil, err
	}

	entry.Message = &message
	entry.IsSpeechToText = &isSpeechToText
	entry.CreatedAt = time.Now()
	if err := s.repo.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListAll 按创建时间倒序返回所有历史记录，无记录时返回空列表。
func (s *historyService) ListAll() ([]model.HistoryEntry, error) {
	return s.repo.FindAll()
}

// GetByKey 按 key 查找历史记录，key 先按 id 解析，再按 email 解析。
func (s *historyService) GetByKey(key string) (*HistoryDetail, error) {
	entry, err := s.resolveKey(key)
	if err != nil {
		return nil, err
	}

	detail := &HistoryDetail{Entry: *entry}
	if entry.Email != nil {
		msgs, err := s.repo.FindMessagesByEmail(*entry.Email)
		if err != nil {
			return nil, err
		}
		detail.Messages = msgs
	}
	return detail, nil
}

// DeleteByKey 删除历史记录及其级联消息。
func (s *historyService) DeleteByKey(key string) error {
	entry, err := s.resolveKey(key)
	if err != nil {
		return err
	}
	return s.repo.DeleteWithMessages(entry)
}

func (s *historyService) resolveKey(key string) (*model.HistoryEntry, error) {
	entry, err := s.repo.FindByID(key)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry, err = s.repo.FindByEmail(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no history for key %q", apperr.ErrNotFound, key)
		}
		return nil, err
	}
	return entry, nil
}
