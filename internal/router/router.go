// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"net/http"

	"community_server/internal/handler"
	"community_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// Router 路由管理器，持有 Handler 聚合与写操作限流中间件
type Router struct {
	handlers *handler.Handlers
	limit    gin.HandlerFunc
}

// NewRouter limit 为空时写操作不限流
func NewRouter(handlers *handler.Handlers, limit gin.HandlerFunc) *Router {
	if limit == nil {
		limit = func(c *gin.Context) { c.Next() }
	}
	return &Router{handlers: handlers, limit: limit}
}

// RegisterRoutes 注册所有路由
// /community 下的公开页面使用可选认证，其余页面必须登录
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/community/posts")
	})
	rt.RegisterUserRoutes(r)

	community := r.Group("/community")
	public := community.Group("", middleware.OptionalJWTAuth())
	auth := community.Group("", middleware.JWTAuth())

	rt.RegisterFeedRoutes(public)
	rt.RegisterPostRoutes(public, auth)
	rt.RegisterChatRoutes(auth)
	rt.RegisterFriendRoutes(auth)
}
