package repository

import (
	"gorm.io/gorm"

	"bicara-go/internal/model"
)

// SoundboardRepository 接口定义了音效板数据的持久化操作。
type SoundboardRepository interface {
	Create(soundboard *model.Soundboard) error
	FindAll() ([]model.Soundboard, error)
}

// soundboardRepository 是 SoundboardRepository 接口的 GORM 实现。
type soundboardRepository struct {
	db *gorm.DB
}

// NewSoundboardRepository 创建一个新的 SoundboardRepository 实例。
func NewSoundboardRepository(db *gorm.DB) SoundboardRepository {
	return &soundboardRepository{db: db}
}

// Create 在数据库中创建一条新的音效板记录。
func (r *soundboardRepository) Create(soundboard *model.Soundboard) error {
	return r.db.Create(soundboard).Error
}

// FindAll 按创建时间倒序检索所有音效板记录。
func (r *soundboardRepository) FindAll() ([]model.Soundboard, error) {
	var soundboards []model.Soundboard
	err := r.db.Order("created_at DESC").Find(&soundboards).Error
	return soundboards, err
}
