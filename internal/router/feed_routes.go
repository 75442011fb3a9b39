package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterFeedRoutes 活动与公告
func (rt *Router) RegisterFeedRoutes(public *gin.RouterGroup) {
	public.GET("/events", rt.handlers.Feed.EventList)
	public.GET("/notices", rt.handlers.Feed.NoticeList)
}
