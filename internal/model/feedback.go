package model

import "time"

// Feedback 定义了 feedbacks 表的 ORM 模型。
// Rating 的取值范围 [1,4] 在 Service 层持久化之前校验。
type Feedback struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	Rating    int       `gorm:"type:tinyint;not null" json:"rating"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Feedback) TableName() string {
	return "feedbacks"
}
