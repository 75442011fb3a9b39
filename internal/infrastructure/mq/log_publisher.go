package mq

import (
	"context"

	"go.uber.org/zap"
)

// LogPublisher 仅将事件写入日志，用于未部署 Kafka 的环境
type LogPublisher struct{}

// NewLogPublisher 创建日志发布者
func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (LogPublisher) Publish(_ context.Context, event ActivityEvent) error {
	zap.L().Info("activity",
		zap.String("type", event.Type),
		zap.Uint("user_id", event.UserID),
		zap.Uint("target_id", event.TargetID),
		zap.Time("occurred_at", event.OccurredAt),
	)
	return nil
}

func (LogPublisher) Close() error { return nil }

// NewPublisher 按配置选择发布者实现
func NewPublisher(mode string, kafkaPublisher func() Publisher) Publisher {
	if mode == "kafka" {
		return kafkaPublisher()
	}
	return NewLogPublisher()
}
