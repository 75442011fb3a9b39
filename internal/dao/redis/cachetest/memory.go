// Package cachetest 提供 CacheService 的内存实现，供测试使用
package cachetest

import (
	"context"
	"sync"
	"time"

	myredis "community_server/internal/dao/redis"
	"community_server/pkg/errorx"
)

// MemoryCache 内存缓存，忽略过期时间
type MemoryCache struct {
	mu      sync.Mutex
	strings map[string]string
	lists   map[string][]string
}

// New 创建空的内存缓存
func New() *MemoryCache {
	return &MemoryCache{
		strings: make(map[string]string),
		lists:   make(map[string][]string),
	}
}

func (m *MemoryCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.strings[key] = value
	return nil
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.strings[key], nil
}

func (m *MemoryCache) GetOrError(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.strings[key]
	if !ok {
		return "", errorx.Newf(errorx.CodeNotFound, "key %s not found", key)
	}
	return v, nil
}

func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.strings, key)
	delete(m.lists, key)
	return nil
}

func (m *MemoryCache) PushToList(_ context.Context, key string, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[key] = append(m.lists[key], value)
	return nil
}

func (m *MemoryCache) PopAllFromList(_ context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	values := m.lists[key]
	delete(m.lists, key)
	return values, nil
}

var _ myredis.CacheService = (*MemoryCache)(nil)
