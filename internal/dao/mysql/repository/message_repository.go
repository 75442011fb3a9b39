package repository

import (
	"community_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建消息 Repository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// FindByRoomID 按聊天室查找消息
// 时间相同时按主键排序，保证顺序稳定
func (r *messageRepository) FindByRoomID(roomID uint) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.Preload("Sender").
		Where("chat_room_id = ?", roomID).
		Order("timestamp ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询消息 chat_room_id=%d", roomID)
	}
	return messages, nil
}

// Create 创建消息
func (r *messageRepository) Create(message *model.Message) error {
	if err := r.db.Omit(clause.Associations).Create(message).Error; err != nil {
		return wrapDBError(err, "创建消息")
	}
	return nil
}
