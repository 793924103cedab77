// Package notify keeps per-user local notifications on the key-value medium,
// newest first.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hornethive-server/internal/model"
)

// KeyPrefix namespaces notification records in the shared key-value medium.
const KeyPrefix = "hornet_hive_notifications_"

type kvStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, val string) error
	Delete(ctx context.Context, key string) error
}

type Store struct {
	kv  kvStore
	now func() time.Time
}

// New creates a notification store. now may be nil, defaulting to time.Now.
func New(kv kvStore, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{kv: kv, now: now}
}

func key(userID string) string { return KeyPrefix + userID }

// List returns the user's notifications sorted newest first. A corrupt record
// is discarded and reported as empty.
func (s *Store) List(ctx context.Context, userID string) ([]model.Notification, error) {
	raw, ok, err := s.kv.Get(ctx, key(userID))
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var items []model.Notification
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("discarding corrupt notifications record")
		_ = s.kv.Delete(ctx, key(userID))
		return nil, nil
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Timestamp > items[j].Timestamp })
	return items, nil
}

// Record appends a notification for the user. Failures are logged and
// swallowed: notifications are best-effort and never fail the caller.
func (s *Store) Record(ctx context.Context, userID, category, message string) {
	items, err := s.List(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("notification not recorded")
		return
	}
	n := model.Notification{
		ID:        uuid.NewString(),
		Type:      category,
		Message:   message,
		Timestamp: s.now().UnixMilli(),
	}
	items = append([]model.Notification{n}, items...)
	if err := s.save(ctx, userID, items); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("notification not recorded")
	}
}

// MarkRead flags one notification as read. Unknown IDs are a no-op.
func (s *Store) MarkRead(ctx context.Context, userID, notificationID string) error {
	items, err := s.List(ctx, userID)
	if err != nil {
		return err
	}
	changed := false
	for i := range items {
		if items[i].ID == notificationID && !items[i].Read {
			items[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.save(ctx, userID, items)
}

// UnreadCount returns how many notifications the user has not read yet.
func (s *Store) UnreadCount(ctx context.Context, userID string) (int, error) {
	items, err := s.List(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range items {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *Store) save(ctx context.Context, userID string, items []model.Notification) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, key(userID), string(raw))
}
