// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"community_server/internal/dao/mysql/repository"
	myredis "community_server/internal/dao/redis"
	"community_server/internal/infrastructure/mq"
	"community_server/internal/service/chat"
	"community_server/internal/service/comment"
	"community_server/internal/service/feed"
	"community_server/internal/service/flash"
	"community_server/internal/service/friend"
	"community_server/internal/service/post"
	"community_server/internal/service/user"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过此结构访问各个 Service
type Services struct {
	User    UserService    // 用户 Service
	Feed    FeedService    // 活动与公告 Service
	Chat    ChatService    // 聊天 Service
	Friend  FriendService  // 好友 Service
	Post    PostService    // 帖子 Service
	Comment CommentService // 评论 Service
	Flash   FlashService   // 提示消息 Service
}

// NewServices 创建并注入所有 Service 实例
//
// repos: Repository 层聚合实例
// cache: 缓存服务（Refresh Token 与提示消息）
// publisher: 活动事件发布者
func NewServices(repos *repository.Repositories, cache myredis.CacheService, publisher mq.Publisher) *Services {
	friendSvc := friend.NewFriendService(repos, publisher)

	return &Services{
		User:    user.NewUserService(repos, cache),
		Feed:    feed.NewFeedService(repos),
		Chat:    chat.NewChatService(repos, publisher),
		Friend:  friendSvc,
		Post:    post.NewPostService(repos, friendSvc, publisher),
		Comment: comment.NewCommentService(repos),
		Flash:   flash.NewFlashService(cache),
	}
}
