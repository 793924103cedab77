// Package store persists one WeeklyPoll per user on the key-value medium and
// enforces the create-once / vote-once rules.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hornethive-server/internal/model"
	"hornethive-server/internal/moderation"
	"hornethive-server/internal/week"
	"hornethive-server/pkg/kv"
)

// KeyPrefix namespaces poll records in the shared key-value medium.
const KeyPrefix = "hornet_hive_poll_"

// Vote failure taxonomy. Returned as values; the HTTP layer maps them to
// user-facing messages.
var (
	ErrPhaseClosed   = errors.New("voting is only open on Fridays")
	ErrAlreadyVoted  = errors.New("you have already voted this week")
	ErrNoActivePoll  = errors.New("no active poll found")
	ErrInvalidOption = errors.New("invalid option")
)

// PollStore reads and writes WeeklyPoll records. Every mutation is a whole
// record read-modify-write; the medium is assumed single-writer per user.
type PollStore struct {
	kv kv.Store
}

func New(store kv.Store) *PollStore { return &PollStore{kv: store} }

func Key(userID string) string { return KeyPrefix + userID }

// Load returns the user's poll for the week containing now, or nil when no
// valid record exists. Stale records (previous week, Monday cleanup day) and
// structurally invalid payloads are deleted as a side effect and reported as
// absent, never as errors.
func (s *PollStore) Load(ctx context.Context, userID string, now time.Time) (*model.WeeklyPoll, error) {
	key := Key(userID)
	if week.IsCleanupDay(now) {
		if err := s.kv.Delete(ctx, key); err != nil {
			return nil, fmt.Errorf("cleanup poll record: %w", err)
		}
		return nil, nil
	}
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load poll record: %w", err)
	}
	if !ok {
		return nil, nil
	}
	poll, err := decodeRecord([]byte(raw))
	if err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("discarding corrupt poll record")
		_ = s.kv.Delete(ctx, key)
		return nil, nil
	}
	if poll.WeekID != week.ID(now) {
		if err := s.kv.Delete(ctx, key); err != nil {
			return nil, fmt.Errorf("delete stale poll record: %w", err)
		}
		return nil, nil
	}
	return poll, nil
}

// Create materializes a fresh poll for the current week with the given
// post-derived options, zero counts and no user vote. The caller must have
// observed Load returning nil first. A persistence failure degrades to
// "poll not saved": the record is still returned and a warning logged.
func (s *PollStore) Create(ctx context.Context, userID string, postOptions []model.PollOption, now time.Time) *model.WeeklyPoll {
	poll := &model.WeeklyPoll{
		SchemaVersion: schemaVersion,
		WeekID:        week.ID(now),
		PostOptions:   postOptions,
		CustomOptions: []string{},
		Votes:         make(map[string]int64, len(postOptions)),
	}
	for _, o := range postOptions {
		poll.Votes[o.ID] = 0
	}
	if err := s.persist(ctx, userID, poll); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("poll not saved")
	}
	return poll
}

// Vote records the user's single vote for the week. choice is either a post
// option ID or free text; unknown text becomes a deduplicated custom option.
// The whole record is rewritten in one Set, so no partial state is visible.
func (s *PollStore) Vote(ctx context.Context, userID, choice string, now time.Time) (*model.WeeklyPoll, error) {
	if week.PhaseAt(now) != model.PhaseVotingOpen {
		return nil, ErrPhaseClosed
	}
	poll, err := s.Load(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if poll == nil {
		return nil, ErrNoActivePoll
	}
	if poll.UserVote != "" {
		return nil, ErrAlreadyVoted
	}
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return nil, ErrInvalidOption
	}
	if !poll.HasOption(choice) {
		// Free-text write-in: moderate before acceptance.
		if ok, _ := moderation.ValidateText(choice); !ok {
			return nil, ErrInvalidOption
		}
		poll.CustomOptions = append(poll.CustomOptions, choice)
	}
	poll.Votes[choice]++
	poll.UserVote = choice
	if err := s.persist(ctx, userID, poll); err != nil {
		return nil, fmt.Errorf("persist vote: %w", err)
	}
	return poll, nil
}

func (s *PollStore) persist(ctx context.Context, userID string, poll *model.WeeklyPoll) error {
	raw, err := json.Marshal(poll)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, Key(userID), string(raw))
}
