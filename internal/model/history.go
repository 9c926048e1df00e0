// Package model 定义了与数据库表对应的 Go 结构体。
package model

import "time"

// HistoryEntry 定义了 history 表的 ORM 模型。
// 一条记录要么是带 email 的身份记录（每个 email 至多一条），
// 要么是不带 email、仅靠生成的 id 寻址的独立记录。
type HistoryEntry struct {
	ID             string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title          string    `gorm:"type:varchar(255);not null" json:"title"`
	Message        *string   `gorm:"type:text" json:"message"`
	Email          *string   `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	IsSpeechToText *bool     `json:"is_speech_to_text"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (HistoryEntry) TableName() string {
	return "history"
}

// MessageEntry 定义了 messages 表的 ORM 模型。
// 每条消息通过 email 归属于一条身份记录，随身份记录级联删除。
type MessageEntry struct {
	MessageID      string    `gorm:"type:varchar(36);primaryKey" json:"message_id"`
	Email          string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	IsSpeechToText bool      `gorm:"not null;default:false" json:"is_speech_to_text"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (MessageEntry) TableName() string {
	return "messages"
}
