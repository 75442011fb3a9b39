// Package redis 定义缓存服务接口
// 遵循依赖倒置原则，Service 层依赖此接口而非具体 Redis 实现
package redis

import (
	"context"
	"time"
)

// CacheService 缓存服务接口
// 用于存储 Refresh Token 标识与一次性提示消息
type CacheService interface {
	// ==================== String 操作 ====================

	// Set 设置键值对并指定过期时间
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get 获取键对应的值（键不存在返回空字符串和 nil）
	Get(ctx context.Context, key string) (string, error)
	// GetOrError 获取键对应的值（键不存在返回错误）
	GetOrError(ctx context.Context, key string) (string, error)

	// ==================== Key 操作 ====================

	// Delete 删除键（如果存在）
	Delete(ctx context.Context, key string) error

	// ==================== List 操作 ====================

	// PushToList 向列表尾部追加元素，并刷新整个列表的过期时间
	PushToList(ctx context.Context, key string, value string, ttl time.Duration) error
	// PopAllFromList 取出列表全部元素并删除该列表
	PopAllFromList(ctx context.Context, key string) ([]string, error)
}
