// Package model 定义数据库实体模型
// 本文件定义好友申请模型
package model

import "time"

// FriendRequest 好友申请
// 对应数据库 friend_request 表
// 记录仅在待处理期间存在：接受或拒绝后直接物理删除，因此不内嵌 gorm.Model
type FriendRequest struct {
	ID uint `gorm:"primarykey"`

	// FromUserID 申请人
	// (from_user_id, to_user_id) 不设唯一约束，重复申请由 Service 层预先检查
	FromUserID uint `gorm:"column:from_user_id;index:idx_friend_request_pair;not null;comment:申请人ID"`

	// ToUserID 被申请人
	ToUserID uint `gorm:"column:to_user_id;index:idx_friend_request_pair;index;not null;comment:被申请人ID"`

	CreatedAt time.Time `gorm:"column:created_at"`

	FromUser User `gorm:"foreignKey:FromUserID"`
	ToUser   User `gorm:"foreignKey:ToUserID"`
}

// TableName 指定表名
func (FriendRequest) TableName() string {
	return "friend_request"
}
