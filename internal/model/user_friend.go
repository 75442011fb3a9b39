package model

import "time"

// UserFriend 好友关系
// 好友关系是对称的：A、B 互为好友时存在 (A,B) 与 (B,A) 两行，二者在同一事务中写入
type UserFriend struct {
	ID        uint      `gorm:"primarykey"`
	UserID    uint      `gorm:"column:user_id;uniqueIndex:idx_user_friend;not null;comment:用户ID"`
	FriendID  uint      `gorm:"column:friend_id;uniqueIndex:idx_user_friend;index;not null;comment:好友ID"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (UserFriend) TableName() string {
	return "user_friend"
}
