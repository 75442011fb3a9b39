// Package feed 提供活动与公告的只读查询
package feed

import (
	"go.uber.org/zap"

	"community_server/internal/dao/mysql/repository"
	"community_server/internal/model"
	"community_server/pkg/errorx"
)

type feedService struct {
	repos *repository.Repositories
}

// NewFeedService 构造函数
func NewFeedService(repos *repository.Repositories) *feedService {
	return &feedService{repos: repos}
}

// ListEvents 全部活动，按开始时间升序
func (s *feedService) ListEvents() ([]model.Event, error) {
	events, err := s.repos.Event.FindAll()
	if err != nil {
		zap.L().Error("查询活动失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return events, nil
}

// ListNotices 全部公告，最新在前
func (s *feedService) ListNotices() ([]model.Notice, error) {
	notices, err := s.repos.Notice.FindAll()
	if err != nil {
		zap.L().Error("查询公告失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return notices, nil
}
