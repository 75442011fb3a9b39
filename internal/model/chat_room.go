// Package model 定义数据库实体模型
// 本文件定义聊天室及其参与者
package model

import (
	"time"

	"gorm.io/gorm"
)

// ChatRoom 聊天室
// 对应数据库 chat_room 表
// 名称由双方用户名排序后拼接生成，同一对用户始终对应同一个聊天室
type ChatRoom struct {
	gorm.Model

	// Name 聊天室名称，如 "chat_alice_bob"
	Name string `gorm:"column:name;uniqueIndex;type:varchar(310);not null;comment:聊天室名称"`
}

// TableName 指定表名
func (ChatRoom) TableName() string {
	return "chat_room"
}

// ChatRoomParticipant 聊天室参与者
// (chat_room_id, user_id) 唯一，重复加入为幂等操作
type ChatRoomParticipant struct {
	ID         uint      `gorm:"primarykey"`
	ChatRoomID uint      `gorm:"column:chat_room_id;uniqueIndex:idx_room_user;not null;comment:聊天室ID"`
	UserID     uint      `gorm:"column:user_id;uniqueIndex:idx_room_user;index;not null;comment:用户ID"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (ChatRoomParticipant) TableName() string {
	return "chat_room_participant"
}
