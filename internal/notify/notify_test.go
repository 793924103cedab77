package notify

import (
	"context"
	"testing"
	"time"

	"hornethive-server/internal/model"
	"hornethive-server/pkg/kv"
)

func fixedClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestRecordAndList(t *testing.T) {
	ctx := context.Background()
	s := New(kv.NewMemory(), fixedClock(time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)))

	s.Record(ctx, "alice", model.NotifyPollAvailable, "poll is open")
	s.Record(ctx, "alice", model.NotifyReportSubmitted, "report received")

	items, err := s.List(ctx, "alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d notifications", len(items))
	}
	// Newest first.
	if items[0].Type != model.NotifyReportSubmitted || items[1].Type != model.NotifyPollAvailable {
		t.Fatalf("wrong order: %s, %s", items[0].Type, items[1].Type)
	}
	if items[0].ID == items[1].ID {
		t.Error("notification ids must be unique")
	}
	if items[0].Read || items[1].Read {
		t.Error("new notifications must start unread")
	}
}

func TestListIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	s := New(kv.NewMemory(), nil)
	s.Record(ctx, "alice", model.NotifyPollAvailable, "hi")

	items, err := s.List(ctx, "bob")
	if err != nil || len(items) != 0 {
		t.Fatalf("bob should have no notifications: %v, %v", items, err)
	}
}

func TestMarkReadAndUnreadCount(t *testing.T) {
	ctx := context.Background()
	s := New(kv.NewMemory(), fixedClock(time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)))
	s.Record(ctx, "alice", model.NotifyPollAvailable, "one")
	s.Record(ctx, "alice", model.NotifyPostReported, "two")

	if n, _ := s.UnreadCount(ctx, "alice"); n != 2 {
		t.Fatalf("unread = %d, want 2", n)
	}
	items, _ := s.List(ctx, "alice")
	if err := s.MarkRead(ctx, "alice", items[0].ID); err != nil {
		t.Fatal(err)
	}
	if n, _ := s.UnreadCount(ctx, "alice"); n != 1 {
		t.Fatalf("unread = %d, want 1", n)
	}
	// Unknown id is a no-op.
	if err := s.MarkRead(ctx, "alice", "nope"); err != nil {
		t.Fatal(err)
	}
	if n, _ := s.UnreadCount(ctx, "alice"); n != 1 {
		t.Fatalf("unread = %d, want 1", n)
	}
}

func TestCorruptRecordDiscarded(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	_ = mem.Set(ctx, KeyPrefix+"alice", "{broken")
	s := New(mem, nil)

	items, err := s.List(ctx, "alice")
	if err != nil || len(items) != 0 {
		t.Fatalf("items=%v err=%v", items, err)
	}
	if _, ok, _ := mem.Get(ctx, KeyPrefix+"alice"); ok {
		t.Fatal("corrupt record should be deleted")
	}
}
