package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterPostRoutes 帖子与评论
// 列表公开，其余需要登录
func (rt *Router) RegisterPostRoutes(public, auth *gin.RouterGroup) {
	public.GET("/posts", rt.handlers.Post.List)

	posts := auth.Group("/posts")
	{
		// ===== 列表与详情 =====
		posts.GET("/liked", rt.handlers.Post.Liked)
		posts.GET("/bookmarked", rt.handlers.Post.Bookmarked)
		posts.GET("/:id", rt.handlers.Post.Detail)

		// ===== 发帖与编辑 =====
		posts.GET("/new", rt.handlers.Post.CreateForm)
		posts.POST("/new", rt.limit, rt.handlers.Post.Create)
		posts.GET("/:id/edit", rt.handlers.Post.UpdateForm)
		posts.POST("/:id/edit", rt.limit, rt.handlers.Post.Update)
		posts.POST("/:id/delete", rt.limit, rt.handlers.Post.Delete)

		// ===== 点赞与收藏 =====
		posts.GET("/:id/like", rt.limit, rt.handlers.Post.ToggleLike)
		posts.GET("/:id/bookmark", rt.limit, rt.handlers.Post.ToggleBookmark)

		// ===== 评论 =====
		posts.POST("/:id/comments", rt.limit, rt.handlers.Comment.Create)
		posts.POST("/:id/comments/:comment_id/delete", rt.limit, rt.handlers.Comment.Delete)
	}
}
