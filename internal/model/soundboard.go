package model

import "time"

// Soundboard 定义了 soundboards 表的 ORM 模型。
// AudioURL 与 FileName 在上传成功后一同写入，不会被单独修改；
// 上传失败时不会产生任何记录。
type Soundboard struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	AudioURL  string    `gorm:"type:varchar(512);not null" json:"audioUrl"`
	FileName  string    `gorm:"type:varchar(255);not null" json:"fileName"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Soundboard) TableName() string {
	return "soundboards"
}
