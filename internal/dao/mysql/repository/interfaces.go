// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
package repository

import (
	"community_server/internal/model"

	"gorm.io/gorm"
)

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口
type UserRepository interface {
	// FindByID 根据主键查找用户
	FindByID(id uint) (*model.User, error)
	// FindByUsername 根据用户名查找用户
	FindByUsername(username string) (*model.User, error)
	// Create 创建新用户
	Create(user *model.User) error
	// AddParticipationScore 原子地增加参与积分，扣减时不低于 0
	AddParticipationScore(id uint, delta int) error
}

// FriendRepository 好友关系数据访问接口
// 每条记录表示单向关系，互为好友需要两条记录
type FriendRepository interface {
	// Exists 判断 userID -> friendID 关系是否存在
	Exists(userID, friendID uint) (bool, error)
	// Add 添加单向关系，已存在时忽略
	Add(userID, friendID uint) error
	// FindFriends 查找用户的全部好友
	FindFriends(userID uint) ([]model.User, error)
}

// FriendRequestRepository 好友申请数据访问接口
type FriendRequestRepository interface {
	// FindByID 根据主键查找申请（含双方用户信息）
	FindByID(id uint) (*model.FriendRequest, error)
	// Exists 判断 from -> to 申请是否存在
	Exists(fromUserID, toUserID uint) (bool, error)
	// FindReceived 查找用户收到的全部申请，最新在前
	FindReceived(toUserID uint) ([]model.FriendRequest, error)
	// Create 创建申请
	Create(req *model.FriendRequest) error
	// Delete 物理删除申请，返回受影响行数
	Delete(id uint) (int64, error)
}

// ChatRoomRepository 聊天室数据访问接口
type ChatRoomRepository interface {
	// FindByID 根据主键查找聊天室
	FindByID(id uint) (*model.ChatRoom, error)
	// FindParticipants 查找聊天室参与者
	FindParticipants(roomID uint) ([]model.User, error)
	// FirstOrCreateByName 按名称查找聊天室，不存在则创建
	FirstOrCreateByName(name string) (*model.ChatRoom, error)
	// AddParticipant 添加参与者，已存在时忽略
	AddParticipant(roomID, userID uint) error
}

// MessageRepository 消息数据访问接口
type MessageRepository interface {
	// FindByRoomID 查找聊天室全部消息，按时间升序
	FindByRoomID(roomID uint) ([]model.Message, error)
	// Create 创建消息
	Create(message *model.Message) error
}

// PostRepository 帖子数据访问接口
type PostRepository interface {
	// FindByID 根据主键查找帖子（含作者）
	FindByID(id uint) (*model.CommunityPost, error)
	// FindAll 查找全部帖子，按发布时间倒序
	FindAll() ([]model.CommunityPost, error)
	// FindByReaction 查找用户点赞或收藏过的帖子，按发布时间倒序
	FindByReaction(userID uint, kind int8) ([]model.CommunityPost, error)
	// Create 创建帖子
	Create(post *model.CommunityPost) error
	// UpdateContent 更新标题与正文
	UpdateContent(id uint, title, content string) error
	// Delete 删除帖子
	Delete(id uint) error
}

// ReactionRepository 点赞/收藏数据访问接口
type ReactionRepository interface {
	// Exists 判断用户是否已对帖子做出某种反应
	Exists(postID, userID uint, kind int8) (bool, error)
	// Create 添加反应，已存在时不报错，返回插入行数
	Create(postID, userID uint, kind int8) (int64, error)
	// Delete 移除反应，返回删除行数
	Delete(postID, userID uint, kind int8) (int64, error)
	// CountByPost 统计帖子某种反应的数量
	CountByPost(postID uint, kind int8) (int64, error)
	// DeleteByPost 删除帖子的全部反应
	DeleteByPost(postID uint) error
}

// CommentRepository 评论数据访问接口
type CommentRepository interface {
	// FindByID 根据主键查找评论
	FindByID(id uint) (*model.Comment, error)
	// FindByPostID 查找帖子的全部评论，最早在前
	FindByPostID(postID uint) ([]model.Comment, error)
	// Create 创建评论
	Create(comment *model.Comment) error
	// Delete 删除评论
	Delete(id uint) error
	// DeleteByPost 删除帖子的全部评论
	DeleteByPost(postID uint) error
}

// EventRepository 活动数据访问接口（只读）
type EventRepository interface {
	// FindAll 查找全部活动，按开始时间升序
	FindAll() ([]model.Event, error)
}

// NoticeRepository 公告数据访问接口（只读）
type NoticeRepository interface {
	// FindAll 查找全部公告，最新在前
	FindAll() ([]model.Notice, error)
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db            *gorm.DB                // GORM 数据库实例
	User          UserRepository          // 用户 Repository
	Friend        FriendRepository        // 好友关系 Repository
	FriendRequest FriendRequestRepository // 好友申请 Repository
	ChatRoom      ChatRoomRepository      // 聊天室 Repository
	Message       MessageRepository       // 消息 Repository
	Post          PostRepository          // 帖子 Repository
	Reaction      ReactionRepository      // 点赞/收藏 Repository
	Comment       CommentRepository       // 评论 Repository
	Event         EventRepository         // 活动 Repository
	Notice        NoticeRepository        // 公告 Repository
}

// NewRepositories 创建所有 Repository 实例
// 接收 GORM 数据库实例，初始化并返回 Repositories 聚合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:            db,
		User:          NewUserRepository(db),
		Friend:        NewFriendRepository(db),
		FriendRequest: NewFriendRequestRepository(db),
		ChatRoom:      NewChatRoomRepository(db),
		Message:       NewMessageRepository(db),
		Post:          NewPostRepository(db),
		Reaction:      NewReactionRepository(db),
		Comment:       NewCommentRepository(db),
		Event:         NewEventRepository(db),
		Notice:        NewNoticeRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// fn: 事务执行函数，接收事务内的 Repositories 实例
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 使用事务 db 创建新的 Repositories 实例
		return fn(NewRepositories(tx))
	})
}

// Close 关闭底层连接池，仅在服务退出时调用
func (r *Repositories) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
