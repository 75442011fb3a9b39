// Package model 定义数据库实体模型
// 本文件定义帖子反应（点赞/收藏）模型
package model

import "time"

// PostReaction 用户对帖子的点赞或收藏
// 对应数据库 post_reaction 表
// (post_id, user_id, kind) 唯一，保证点赞集合与收藏集合中不会出现重复成员
// 取消点赞/收藏时物理删除
type PostReaction struct {
	ID     uint `gorm:"primarykey"`
	PostID uint `gorm:"column:post_id;uniqueIndex:idx_post_user_kind;not null;comment:帖子ID"`
	UserID uint `gorm:"column:user_id;uniqueIndex:idx_post_user_kind;index;not null;comment:用户ID"`

	// Kind 反应类型
	// 0=点赞, 1=收藏
	// 参见 pkg/enum/post_reaction/reaction_kind_enum
	Kind int8 `gorm:"column:kind;uniqueIndex:idx_post_user_kind;not null;comment:类型，0.点赞，1.收藏"`

	CreatedAt time.Time `gorm:"column:created_at"`
}

func (PostReaction) TableName() string {
	return "post_reaction"
}
