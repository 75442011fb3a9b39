// Package flash 提供一次性提示消息
// 消息按用户存放在 Redis 列表中，下一次页面渲染时取出并清空
package flash

import (
	"context"
	"encoding/json"
	"strconv"

	"go.uber.org/zap"

	myredis "community_server/internal/dao/redis"
	"community_server/internal/dto/respond"
	"community_server/pkg/constants"
	"community_server/pkg/errorx"
)

type flashService struct {
	cache myredis.CacheService
}

// NewFlashService 创建提示消息服务
func NewFlashService(cache myredis.CacheService) *flashService {
	return &flashService{cache: cache}
}

func key(userID uint) string {
	return constants.FLASH_KEY_PREFIX + strconv.FormatUint(uint64(userID), 10)
}

// Add 追加一条提示
func (s *flashService) Add(ctx context.Context, userID uint, level, message string) error {
	payload, err := json.Marshal(respond.Flash{Level: level, Message: message})
	if err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "序列化提示消息")
	}
	return s.cache.PushToList(ctx, key(userID), string(payload), constants.FLASH_TTL)
}

// Pop 取出全部提示，无法解析的条目被丢弃
func (s *flashService) Pop(ctx context.Context, userID uint) ([]respond.Flash, error) {
	values, err := s.cache.PopAllFromList(ctx, key(userID))
	if err != nil {
		return nil, err
	}
	flashes := make([]respond.Flash, 0, len(values))
	for _, v := range values {
		var f respond.Flash
		if err := json.Unmarshal([]byte(v), &f); err != nil {
			zap.L().Warn("丢弃无法解析的提示消息", zap.String("value", v), zap.Error(err))
			continue
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}
