// Package model 定义数据库实体模型
// 本文件定义消息模型，用于存储聊天室中的消息
package model

import (
	"time"

	"gorm.io/gorm"
)

// Message 消息模型
// 对应数据库 message 表
// 消息创建后不可修改，按 Timestamp 升序展示
type Message struct {
	gorm.Model

	// Uuid 消息唯一标识，雪花算法生成
	Uuid int64 `gorm:"column:uuid;uniqueIndex;type:bigint;not null;comment:消息雪花ID"`

	// ChatRoomID 所属聊天室
	ChatRoomID uint `gorm:"column:chat_room_id;index:idx_room_timestamp;not null;comment:聊天室ID"`

	// SenderID 发送者
	SenderID uint `gorm:"column:sender_id;index;not null;comment:发送者ID"`

	// Content 消息文本
	Content string `gorm:"column:content;type:TEXT;not null;comment:消息内容"`

	// Timestamp 发送时间，创建时自动填充
	Timestamp time.Time `gorm:"column:timestamp;index:idx_room_timestamp;autoCreateTime;comment:发送时间"`

	Sender User `gorm:"foreignKey:SenderID"`
}

// TableName 指定表名
func (Message) TableName() string {
	return "message"
}
