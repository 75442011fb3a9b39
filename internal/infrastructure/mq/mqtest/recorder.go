// Package mqtest 提供记录已发布事件的 Publisher，供测试断言
package mqtest

import (
	"context"
	"sync"

	"community_server/internal/infrastructure/mq"
)

// Recorder 记录全部已发布事件
type Recorder struct {
	mu     sync.Mutex
	events []mq.ActivityEvent
	Err    error // 非空时 Publish 返回该错误
}

func (r *Recorder) Publish(_ context.Context, event mq.ActivityEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.Err
}

func (r *Recorder) Close() error { return nil }

// Events 返回已记录事件的副本
func (r *Recorder) Events() []mq.ActivityEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]mq.ActivityEvent(nil), r.events...)
}

// Types 返回已记录事件的类型列表
func (r *Recorder) Types() []string {
	events := r.Events()
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}
