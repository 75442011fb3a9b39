package model

import "gorm.io/gorm"

// Comment 帖子评论
type Comment struct {
	gorm.Model
	PostID  uint   `gorm:"column:post_id;index;not null;comment:帖子ID"`
	UserID  uint   `gorm:"column:user_id;index;not null;comment:评论人ID"`
	Content string `gorm:"column:content;type:TEXT;not null;comment:评论内容"`

	User User `gorm:"foreignKey:UserID"`
}

func (Comment) TableName() string {
	return "comment"
}
