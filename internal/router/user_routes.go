package router

import (
	"community_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes 注册、登录与 Token 刷新（无需认证）
func (rt *Router) RegisterUserRoutes(r *gin.Engine) {
	r.GET("/login", middleware.OptionalJWTAuth(), rt.handlers.User.LoginPage)
	r.POST("/register", rt.limit, rt.handlers.User.Register)
	r.POST("/login", rt.limit, rt.handlers.User.Login)
	r.POST("/auth/refresh", rt.limit, rt.handlers.User.Refresh)
}
