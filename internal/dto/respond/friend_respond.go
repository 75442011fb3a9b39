package respond

import "community_server/internal/model"

// FriendActionRespond 接受/拒绝好友申请的 JSON 响应
// status 为 "success" 或 "error"
type FriendActionRespond struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FriendshipStatus 当前用户与另一用户之间的关系
type FriendshipStatus struct {
	RequestSent     bool // 当前用户已向对方发出申请
	RequestReceived bool // 对方已向当前用户发出申请
	Friends         bool // 已是好友
}

// FriendPageRespond 好友页面数据
type FriendPageRespond struct {
	User             *model.User
	ReceivedRequests []model.FriendRequest
}
