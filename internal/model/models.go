package model

// All 返回需要 AutoMigrate 的全部模型
// MySQL 初始化与测试用 SQLite 共用同一份列表
func All() []any {
	return []any{
		&User{},
		&UserFriend{},
		&FriendRequest{},
		&ChatRoom{},
		&ChatRoomParticipant{},
		&Message{},
		&CommunityPost{},
		&PostReaction{},
		&Comment{},
		&Event{},
		&Notice{},
	}
}
