package mq_test

import (
	"errors"
	"testing"
	"time"

	"community_server/internal/config"
	"community_server/internal/infrastructure/mq"
	"community_server/internal/infrastructure/mq/mqtest"
	"community_server/pkg/enum/activity/activity_type_enum"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEmitFillsTimestampAndSwallowsErrors(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	rec := &mqtest.Recorder{Err: errors.New("broker down")}
	mq.Emit(rec, mq.ActivityEvent{Type: activity_type_enum.POST_CREATED, UserID: 1, TargetID: 9})

	events := rec.Events()
	if len(events) != 1 || events[0].OccurredAt.IsZero() {
		t.Fatalf("events = %+v", events)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one warning log, got %d", logs.Len())
	}
}

func TestEmitNilPublisher(t *testing.T) {
	mq.Emit(nil, mq.ActivityEvent{Type: activity_type_enum.CHAT_MESSAGE})
}

func TestLogPublisherWritesEntry(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	p := mq.NewPublisher("log", func() mq.Publisher { t.Fatal("kafka publisher should not be built"); return nil })
	mq.Emit(p, mq.ActivityEvent{Type: activity_type_enum.FRIEND_ACCEPTED, UserID: 2, TargetID: 3, OccurredAt: time.Now()})

	entries := logs.FilterMessage("activity").All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["type"]; got != activity_type_enum.FRIEND_ACCEPTED {
		t.Fatalf("type field = %v", got)
	}
}

func TestNewPublisherKafkaMode(t *testing.T) {
	conf := config.Default().KafkaConfig
	p := mq.NewPublisher("kafka", func() mq.Publisher { return mq.NewKafkaPublisher(conf) })
	if _, ok := p.(*mq.KafkaPublisher); !ok {
		t.Fatalf("publisher = %T, want *mq.KafkaPublisher", p)
	}
	_ = p.Close()
}
