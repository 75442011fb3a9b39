package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes 两人聊天室（需要认证）
func (rt *Router) RegisterChatRoutes(auth *gin.RouterGroup) {
	auth.GET("/chatrooms", rt.handlers.Chat.CandidateList)
	auth.GET("/chatrooms/:id", rt.handlers.Chat.RoomDetail)
	auth.POST("/chatrooms/:id", rt.limit, rt.handlers.Chat.PostMessage)
	auth.GET("/chat/start/:username", rt.limit, rt.handlers.Chat.Start)
}
