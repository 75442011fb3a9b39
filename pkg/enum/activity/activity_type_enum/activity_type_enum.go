// Package activity_type_enum 定义活动事件类型
package activity_type_enum

const (
	POST_CREATED    = "post.created"    // 发帖
	POST_LIKED      = "post.liked"      // 帖子被点赞
	FRIEND_ACCEPTED = "friend.accepted" // 好友申请通过
	CHAT_MESSAGE    = "chat.message"    // 聊天消息
)
