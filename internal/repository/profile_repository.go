package repository

import (
	"gorm.io/gorm"

	"bicara-go/internal/model"
)

// ProfileRepository 接口定义了单行用户资料的持久化操作。
type ProfileRepository interface {
	Get() (*model.Profile, error)
	Create(profile *model.Profile) error
	Update(profile *model.Profile) error
}

// profileRepository 是 ProfileRepository 接口的 GORM 实现。
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository 创建一个新的 ProfileRepository 实例。
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Get 读取固定 ID 的资料行，未初始化时返回 gorm.ErrRecordNotFound。
func (r *profileRepository) Get() (*model.Profile, error) {
	var profile model.Profile
	err := r.db.First(&profile, model.ProfileSingletonID).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Create 创建资料行，主键固定为 ProfileSingletonID。
func (r *profileRepository) Create(profile *model.Profile) error {
	profile.ID = model.ProfileSingletonID
	return r.db.Create(profile).Error
}

// Update 原地更新已存在的资料行。
func (r *profileRepository) Update(profile *model.Profile) error {
	return r.db.Save(profile).Error
}
