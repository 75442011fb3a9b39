// Package mq 提供社区活动事件的投递
// messageMode 为 "kafka" 时写入 Kafka 主题，否则仅记录日志
package mq

import (
	"context"
	"time"

	"community_server/pkg/constants"

	"go.uber.org/zap"
)

// ActivityEvent 社区活动事件
// 在对应的数据库事务提交后投递
type ActivityEvent struct {
	Type       string    `json:"type"`        // 事件类型，参见 activity_type_enum
	UserID     uint      `json:"user_id"`     // 触发事件的用户
	TargetID   uint      `json:"target_id"`   // 帖子ID / 用户ID / 聊天室ID
	OccurredAt time.Time `json:"occurred_at"` // 发生时间
}

// Publisher 活动事件发布接口
type Publisher interface {
	// Publish 发布单个事件
	Publish(ctx context.Context, event ActivityEvent) error
	// Close 释放底层连接
	Close() error
}

// Emit 在超时时间内发布事件，失败只记录日志
// 事件投递失败不影响已提交的业务操作
func Emit(p Publisher, event ActivityEvent) {
	if p == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	ctx, cancel := context.WithTimeout(context.Background(), constants.EVENT_PUBLISH_TIMEOUT)
	defer cancel()
	if err := p.Publish(ctx, event); err != nil {
		zap.L().Warn("发布活动事件失败",
			zap.String("type", event.Type),
			zap.Uint("user_id", event.UserID),
			zap.Uint("target_id", event.TargetID),
			zap.Error(err),
		)
	}
}
