// Package router 提供 HTTP 路由注册
// 本文件定义好友相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterFriendRoutes 注册好友相关路由（需要认证）
func (rt *Router) RegisterFriendRoutes(auth *gin.RouterGroup) {
	// ===== 好友申请 =====
	requests := auth.Group("/friend-request")
	{
		requests.GET("/send/:username", rt.limit, rt.handlers.Friend.Send)
		requests.POST("/:id/accept", rt.limit, rt.handlers.Friend.Accept)
		requests.POST("/:id/decline", rt.limit, rt.handlers.Friend.Decline)
	}

	// ===== 好友页面 =====
	auth.GET("/friends/:username", rt.handlers.Friend.Page)
}
