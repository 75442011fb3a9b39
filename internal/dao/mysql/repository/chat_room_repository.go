package repository

import (
	"community_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type chatRoomRepository struct {
	db *gorm.DB
}

// NewChatRoomRepository 创建聊天室 Repository
func NewChatRoomRepository(db *gorm.DB) ChatRoomRepository {
	return &chatRoomRepository{db: db}
}

// FindByID 按主键查找聊天室
func (r *chatRoomRepository) FindByID(id uint) (*model.ChatRoom, error) {
	var room model.ChatRoom
	if err := r.db.First(&room, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询聊天室 id=%d", id)
	}
	return &room, nil
}

// FirstOrCreateByName 按名称获取或创建聊天室
func (r *chatRoomRepository) FirstOrCreateByName(name string) (*model.ChatRoom, error) {
	var room model.ChatRoom
	if err := r.db.Where(model.ChatRoom{Name: name}).FirstOrCreate(&room).Error; err != nil {
		return nil, wrapDBErrorf(err, "获取或创建聊天室 name=%s", name)
	}
	return &room, nil
}

// AddParticipant 添加参与者，重复添加时忽略
func (r *chatRoomRepository) AddParticipant(roomID, userID uint) error {
	row := model.ChatRoomParticipant{ChatRoomID: roomID, UserID: userID}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
		return wrapDBErrorf(err, "添加聊天室参与者 room=%d user=%d", roomID, userID)
	}
	return nil
}

// FindParticipants 查找聊天室参与者，按用户名排序
func (r *chatRoomRepository) FindParticipants(roomID uint) ([]model.User, error) {
	var users []model.User
	if err := r.db.
		Joins("JOIN chat_room_participant ON chat_room_participant.user_id = user_info.id").
		Where("chat_room_participant.chat_room_id = ?", roomID).
		Order("user_info.username ASC").
		Find(&users).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询聊天室参与者 room=%d", roomID)
	}
	return users, nil
}
