package mq

import (
	"context"
	"encoding/json"
	"strconv"

	"community_server/internal/config"
	"community_server/pkg/errorx"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaPublisher 将活动事件写入 Kafka 主题
// 以用户 ID 作为消息 Key，同一用户的事件落在同一分区
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher 创建 Kafka 发布者
func NewKafkaPublisher(conf config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(conf.HostPort),
			Topic:                  conf.ActivityTopic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           conf.Timeout,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: false,
		},
	}
}

// EnsureTopic 主题不存在时创建
// 连接任意节点后通过 Controller 创建主题，已存在时返回成功
func EnsureTopic(conf config.KafkaConfig) error {
	conn, err := kafka.Dial("tcp", conf.HostPort)
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeMQError, "连接 Kafka %s", conf.HostPort)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		return errorx.Wrap(err, errorx.CodeMQError, "获取 Kafka Controller")
	}
	ctrlConn, err := kafka.Dial("tcp", controller.Host+":"+strconv.Itoa(controller.Port))
	if err != nil {
		return errorx.Wrap(err, errorx.CodeMQError, "连接 Kafka Controller")
	}
	defer ctrlConn.Close()

	partitions := conf.Partition
	if partitions <= 0 {
		partitions = 1
	}
	err = ctrlConn.CreateTopics(kafka.TopicConfig{
		Topic:             conf.ActivityTopic,
		NumPartitions:     partitions,
		ReplicationFactor: 1,
	})
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeMQError, "创建主题 %s", conf.ActivityTopic)
	}
	return nil
}

// Publish 同步写入一条事件
func (k *KafkaPublisher) Publish(ctx context.Context, event ActivityEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeMQError, "序列化活动事件")
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.UserID), 10)),
		Value: value,
		Time:  event.OccurredAt,
	}
	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		return errorx.Wrapf(err, errorx.CodeMQError, "写入 Kafka 主题 %s", k.writer.Topic)
	}
	return nil
}

// Close 关闭 Writer，刷新缓冲区中的消息
func (k *KafkaPublisher) Close() error {
	if err := k.writer.Close(); err != nil {
		zap.L().Error("关闭 Kafka Writer 失败", zap.Error(err))
		return err
	}
	return nil
}
