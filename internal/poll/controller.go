// Package poll orchestrates the weekly poll: phase evaluation, lazy poll
// materialization from the current feed snapshot, vote submission and the
// result view handed to the HTTP layer.
package poll

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hornethive-server/internal/model"
	"hornethive-server/internal/rank"
	"hornethive-server/internal/store"
	"hornethive-server/internal/week"
)

// Notifier is the side channel poked when a poll first opens. notify.Store
// satisfies it.
type Notifier interface {
	Record(ctx context.Context, userID, category, message string)
}

// PostSource supplies the latest known post snapshot. feed.Snapshot
// satisfies it.
type PostSource interface {
	Posts() []model.Post
}

const pollAvailableMessage = "This week's poll is now available! Vote for the most interesting post."

// View is what the presentation layer renders.
type View struct {
	Poll        *model.WeeklyPoll `json:"poll,omitempty"`
	Phase       string            `json:"phase"`
	CanVote     bool              `json:"can_vote"`
	ShowResults bool              `json:"show_results"`
	TotalVotes  int64             `json:"total_votes"`
}

type Controller struct {
	store    *store.PollStore
	posts    PostSource
	notifier Notifier
	now      func() time.Time
}

// New builds a controller. notifier may be nil (no side channel); now may be
// nil, defaulting to time.Now.
func New(s *store.PollStore, posts PostSource, notifier Notifier, now func() time.Time) *Controller {
	if now == nil {
		now = time.Now
	}
	return &Controller{store: s, posts: posts, notifier: notifier, now: now}
}

// View evaluates the poll for userID at the current instant, creating this
// week's poll on first sight during an active phase. Creation uses whatever
// posts the feed snapshot currently holds; zero candidates is valid.
func (c *Controller) View(ctx context.Context, userID string) (View, error) {
	now := c.now()
	phase := week.PhaseAt(now)

	current, err := c.store.Load(ctx, userID, now)
	if err != nil {
		return View{Phase: phase}, err
	}
	if phase == model.PhaseNotAvailable {
		// Load already ran the cleanup check; nothing to show Mon-Thu.
		return View{Phase: phase}, nil
	}
	if current == nil {
		options := rank.TopPosts(c.posts.Posts(), now)
		current = c.store.Create(ctx, userID, options, now)
		log.Info().Str("user_id", userID).Str("week_id", current.WeekID).
			Int("options", len(options)).Msg("weekly poll created")
		// Notify only while voting is still open; a poll first seen on the
		// results days would notify after the fact.
		if c.notifier != nil && phase == model.PhaseVotingOpen {
			c.notifier.Record(ctx, userID, model.NotifyPollAvailable, pollAvailableMessage)
		}
	}
	return View{
		Poll:        current,
		Phase:       phase,
		CanVote:     phase == model.PhaseVotingOpen && current.UserVote == "",
		ShowResults: phase == model.PhaseResultsVisible,
		TotalVotes:  current.TotalVotes(),
	}, nil
}

// SubmitVote records the user's vote and returns the refreshed view. Store
// failure reasons pass through for the HTTP layer to map.
func (c *Controller) SubmitVote(ctx context.Context, userID, choice string) (View, error) {
	now := c.now()
	if _, err := c.store.Vote(ctx, userID, choice, now); err != nil {
		return View{Phase: week.PhaseAt(now)}, err
	}
	return c.View(ctx, userID)
}
