package repository

import (
	"community_server/internal/model"

	"gorm.io/gorm"
)

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository 创建活动 Repository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// FindAll 查找全部活动，按开始时间升序
func (r *eventRepository) FindAll() ([]model.Event, error) {
	var events []model.Event
	if err := r.db.Order("starts_at ASC, id ASC").Find(&events).Error; err != nil {
		return nil, wrapDBError(err, "查询活动列表")
	}
	return events, nil
}

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository 创建公告 Repository
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

// FindAll 查找全部公告，最新在前
func (r *noticeRepository) FindAll() ([]model.Notice, error) {
	var notices []model.Notice
	if err := r.db.Order("created_at DESC, id DESC").Find(&notices).Error; err != nil {
		return nil, wrapDBError(err, "查询公告列表")
	}
	return notices, nil
}
