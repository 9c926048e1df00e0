package model

import "time"

// ProfileSingletonID 是全局唯一一行用户资料的固定主键。
const ProfileSingletonID uint = 1

// Profile 定义了 profiles 表的 ORM 模型。
// 系统中只存在 ID 固定为 1 的一行，更新永远是原地更新。
type Profile struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"type:varchar(100);not null" json:"name"`
	ProfilePictureURL *string   `gorm:"type:varchar(512)" json:"profile_picture_url"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Profile) TableName() string {
	return "profiles"
}
