// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"context"

	"community_server/internal/dto/request"
	"community_server/internal/dto/respond"
	"community_server/internal/model"
)

// UserService 用户业务接口
// 处理注册、登录与 Token 刷新
type UserService interface {
	// Register 用户注册
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login 用户名密码登录，签发双 Token
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// Refresh 使用 Refresh Token 换取新的 Access Token
	Refresh(refreshToken string) (*respond.RefreshTokenRespond, error)
}

// FeedService 活动与公告（只读）
type FeedService interface {
	// ListEvents 全部活动，按开始时间升序
	ListEvents() ([]model.Event, error)
	// ListNotices 全部公告，最新在前
	ListNotices() ([]model.Notice, error)
}

// ChatService 聊天业务接口
// 两人聊天室，名称由双方用户名决定
type ChatService interface {
	// ListChatCandidates 可发起聊天的好友列表
	ListChatCandidates(userID uint) ([]model.User, error)
	// OpenOrCreateRoom 获取或创建与对方的聊天室，返回聊天室ID
	OpenOrCreateRoom(userID uint, otherUsername string) (uint, error)
	// GetRoom 聊天室详情与全部消息
	GetRoom(viewerID, roomID uint) (*respond.ChatRoomRespond, error)
	// SendMessage 发送消息
	SendMessage(roomID, senderID uint, content string) error
}

// FriendService 好友业务接口
type FriendService interface {
	// SendRequest 发送好友申请，返回 send_result_enum 中的结果
	SendRequest(fromUserID uint, toUsername string) (int8, error)
	// AcceptRequest 接受好友申请
	AcceptRequest(actingUserID, requestID uint) error
	// DeclineRequest 拒绝好友申请
	DeclineRequest(actingUserID, requestID uint) error
	// FriendshipStatus 查询双方关系
	FriendshipStatus(viewerID, otherID uint) (respond.FriendshipStatus, error)
	// GetFriendPage 用户信息及其收到的好友申请
	GetFriendPage(username string) (*respond.FriendPageRespond, error)
}

// PostService 帖子业务接口
type PostService interface {
	// ListPosts 全部帖子，最新在前
	ListPosts() ([]model.CommunityPost, error)
	// CreatePost 发帖，作者参与积分 +2
	CreatePost(authorID uint, title, content string) (*model.CommunityPost, error)
	// GetPostForEdit 获取待编辑的帖子，仅作者可编辑
	GetPostForEdit(editorID, postID uint) (*model.CommunityPost, error)
	// UpdatePost 更新帖子，仅作者可编辑
	UpdatePost(editorID, postID uint, title, content string) error
	// DeletePost 删除帖子，非作者时不做任何操作并返回 false
	DeletePost(requesterID, postID uint) (bool, error)
	// ToggleLike 切换点赞状态，返回切换后是否已点赞
	ToggleLike(userID, postID uint) (bool, error)
	// ToggleBookmark 切换收藏状态，返回切换后是否已收藏
	ToggleBookmark(userID, postID uint) (bool, error)
	// ListLiked 用户点赞过的帖子
	ListLiked(userID uint) ([]model.CommunityPost, error)
	// ListBookmarked 用户收藏的帖子
	ListBookmarked(userID uint) ([]model.CommunityPost, error)
	// GetPostDetail 帖子详情
	GetPostDetail(viewerID, postID uint) (*respond.PostDetailRespond, error)
}

// CommentService 评论业务接口
type CommentService interface {
	// CreateComment 发表评论
	CreateComment(userID, postID uint, content string) (*model.Comment, error)
	// DeleteComment 删除评论，非作者时不做任何操作并返回 false
	DeleteComment(requesterID, postID, commentID uint) (bool, error)
}

// FlashService 一次性提示消息
type FlashService interface {
	// Add 为用户追加一条提示
	Add(ctx context.Context, userID uint, level, message string) error
	// Pop 取出并清空用户的全部提示
	Pop(ctx context.Context, userID uint) ([]respond.Flash, error)
}
