package respond

import "community_server/internal/model"

// ChatRoomRespond 聊天室详情
// Messages 按发送时间升序
type ChatRoomRespond struct {
	Room         *model.ChatRoom
	Participants []model.User
	Messages     []model.Message
}
