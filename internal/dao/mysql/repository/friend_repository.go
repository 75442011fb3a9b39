// Package repository 提供数据访问层的具体实现
// 本文件实现 FriendRepository 与 FriendRequestRepository
package repository

import (
	"community_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// friendRepository FriendRepository 接口的实现
type friendRepository struct {
	db *gorm.DB // GORM 数据库实例
}

// NewFriendRepository 创建 FriendRepository 实例
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

// Exists 判断 userID -> friendID 关系是否存在
func (r *friendRepository) Exists(userID, friendID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.UserFriend{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "查询好友关系 user_id=%d friend_id=%d", userID, friendID)
	}
	return count > 0, nil
}

// Add 添加单向好友关系
// 依赖 (user_id, friend_id) 唯一索引，冲突时不做任何操作
func (r *friendRepository) Add(userID, friendID uint) error {
	row := model.UserFriend{UserID: userID, FriendID: friendID}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return wrapDBErrorf(err, "添加好友关系 user_id=%d friend_id=%d", userID, friendID)
	}
	return nil
}

// FindFriends 查找用户的全部好友，按用户名排序
func (r *friendRepository) FindFriends(userID uint) ([]model.User, error) {
	var users []model.User
	if err := r.db.
		Joins("JOIN user_friend ON user_friend.friend_id = user_info.id").
		Where("user_friend.user_id = ?", userID).
		Order("user_info.username ASC").
		Find(&users).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询好友列表 user_id=%d", userID)
	}
	return users, nil
}

// friendRequestRepository FriendRequestRepository 接口的实现
type friendRequestRepository struct {
	db *gorm.DB
}

// NewFriendRequestRepository 创建 FriendRequestRepository 实例
func NewFriendRequestRepository(db *gorm.DB) FriendRequestRepository {
	return &friendRequestRepository{db: db}
}

// FindByID 根据主键查找申请
func (r *friendRequestRepository) FindByID(id uint) (*model.FriendRequest, error) {
	var req model.FriendRequest
	if err := r.db.Preload("FromUser").Preload("ToUser").First(&req, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询好友申请 id=%d", id)
	}
	return &req, nil
}

// Exists 判断 from -> to 申请是否存在
// 用于发送前的重复检查
func (r *friendRequestRepository) Exists(fromUserID, toUserID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&model.FriendRequest{}).
		Where("from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).
		Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "查询好友申请 from=%d to=%d", fromUserID, toUserID)
	}
	return count > 0, nil
}

// FindReceived 查找用户收到的申请
func (r *friendRequestRepository) FindReceived(toUserID uint) ([]model.FriendRequest, error) {
	var reqs []model.FriendRequest
	if err := r.db.Preload("FromUser").
		Where("to_user_id = ?", toUserID).
		Order("created_at DESC, id DESC").
		Find(&reqs).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询收到的好友申请 to=%d", toUserID)
	}
	return reqs, nil
}

// Create 创建申请
func (r *friendRequestRepository) Create(req *model.FriendRequest) error {
	if err := r.db.Omit(clause.Associations).Create(req).Error; err != nil {
		return wrapDBError(err, "创建好友申请")
	}
	return nil
}

// Delete 物理删除申请
// 返回受影响行数，调用方据此判断并发场景下申请是否已被处理
func (r *friendRequestRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&model.FriendRequest{}, id)
	if result.Error != nil {
		return 0, wrapDBErrorf(result.Error, "删除好友申请 id=%d", id)
	}
	return result.RowsAffected, nil
}
