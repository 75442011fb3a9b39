// Package handler 提供 HTTP 请求处理器
// 本文件定义 Handler 聚合结构和构造函数
package handler

import (
	"community_server/internal/service"
)

// Handlers 聚合所有 Handler 实例
// Router 层通过此结构访问各个 Handler
type Handlers struct {
	User    *UserHandler
	Feed    *FeedHandler
	Chat    *ChatHandler
	Friend  *FriendHandler
	Post    *PostHandler
	Comment *CommentHandler
}

// NewHandlers 创建并注入所有 Handler 实例
// 页面类 Handler 共享同一个 Page 渲染器
func NewHandlers(svc *service.Services) *Handlers {
	page := NewPage(svc.Flash)
	return &Handlers{
		User:    NewUserHandler(svc.User, page),
		Feed:    NewFeedHandler(svc.Feed, page),
		Chat:    NewChatHandler(svc.Chat, page),
		Friend:  NewFriendHandler(svc.Friend, page),
		Post:    NewPostHandler(svc.Post, page),
		Comment: NewCommentHandler(svc.Comment, page),
	}
}
