// Package repository 定义了与数据库进行数据交换的接口和实现。
package repository

import (
	"gorm.io/gorm"

	"bicara-go/internal/model"
)

// HistoryRepository 接口定义了交互历史数据的持久化操作。
type HistoryRepository interface {
	Create(entry *model.HistoryEntry) error
	Update(entry *model.HistoryEntry) error
	FindAll() ([]model.HistoryEntry, error)
	FindByID(id string) (*model.HistoryEntry, error)
	FindByEmail(email string) (*model.HistoryEntry, error)
	CreateMessage(msg *model.MessageEntry) error
	FindMessagesByEmail(email string) ([]model.MessageEntry, error)
	DeleteWithMessages(entry *model.HistoryEntry) error
}

// historyRepository 是 HistoryRepository 接口的 GORM 实现。
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository 创建一个新的 HistoryRepository 实例。
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// Create 在数据库中创建一条新的历史记录。
func (r *historyRepository) Create(entry *model.HistoryEntry) error {
	return r.db.Create(entry).Error
}

// Update 更新数据库中一条已存在的历史记录。
func (r *historyRepository) Update(entry *model.HistoryEntry) error {
	return r.db.Save(entry).Error
}

// FindAll 按创建时间倒序检索所有历史记录，无记录时返回空切片。
func (r *historyRepository) FindAll() ([]model.HistoryEntry, error) {
	var entries []model.HistoryEntry
	err := r.db.Order("created_at DESC").Find(&entries).Error
	return entries, err
}

// FindByID 根据 id 查找一条历史记录。
func (r *historyRepository) FindByID(id string) (*model.HistoryEntry, error) {
	var entry model.HistoryEntry
	err := r.db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindByEmail 根据 email 查找对应的身份记录。
func (r *historyRepository) FindByEmail(email string) (*model.HistoryEntry, error) {
	var entry model.HistoryEntry
	err := r.db.Where("email = ?", email).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateMessage 在数据库中创建一条新的消息记录。
func (r *historyRepository) CreateMessage(msg *model.MessageEntry) error {
	return r.db.Create(msg).Error
}

// FindMessagesByEmail 按创建时间倒序检索某个 email 下的所有消息。
func (r *historyRepository) FindMessagesByEmail(email string) ([]model.MessageEntry, error) {
	var msgs []model.MessageEntry
	err := r.db.Where("email = ?", email).Order("created_at DESC").Find(&msgs).Error
	return msgs, err
}

// DeleteWithMessages 在一个事务中删除历史记录及其所有关联消息。
// 两者要么都删除，要么都保留。
func (r *historyRepository) DeleteWithMessages(entry *model.HistoryEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", entry.ID).Delete(&model.HistoryEntry{}).Error; err != nil {
			return err
		}
		if entry.Email != nil {
			if err := tx.Where("email = ?", *entry.Email).Delete(&model.MessageEntry{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
