package request

// MessageFormRequest 聊天消息表单
// 使用位置:
//   - internal/handler/chat_handler.go: PostMessage
type MessageFormRequest struct {
	Content string `form:"content" binding:"required,max=2000"`
}
