package model

import (
	"time"

	"gorm.io/gorm"
)

// CommunityPost 社区帖子
// 对应数据库 community_post 表
type CommunityPost struct {
	gorm.Model

	AuthorID uint   `gorm:"column:author_id;index;not null;comment:作者ID"`
	Title    string `gorm:"column:title;type:varchar(200);not null;comment:标题"`
	Content  string `gorm:"column:content;type:TEXT;not null;comment:正文"`

	// DatePosted 发布时间，列表按此字段倒序
	DatePosted time.Time `gorm:"column:date_posted;index;autoCreateTime;comment:发布时间"`

	Author User `gorm:"foreignKey:AuthorID"`
}

func (CommunityPost) TableName() string {
	return "community_post"
}
