package model

import "time"

// Poll phases over the local week.
const (
	PhaseNotAvailable   = "not_available"
	PhaseVotingOpen     = "voting_open"
	PhaseResultsVisible = "results_visible"
)

// Notification categories.
const (
	NotifyPostReported     = "post_reported"
	NotifyAccountSuspended = "account_suspended"
	NotifyPollAvailable    = "poll_available"
	NotifyReportSubmitted  = "report_submitted"
)

// Post is the client-visible shape of a Hive feed post.
type Post struct {
	ID           int64     `json:"id"`
	Author       string    `json:"author"`
	Content      string    `json:"content"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// EngagementScore combines the signals used to rank poll candidates.
func (p Post) EngagementScore() int64 { return p.LikeCount + p.CommentCount }

// PollOption is a post-derived voting option. Its ID is the decimal form of
// the source post's ID, so it stays stable for the week regardless of feed
// ordering.
type PollOption struct {
	ID           string `json:"id"`
	SourcePostID int64  `json:"source_post_id"`
	Author       string `json:"author"`
	Snippet      string `json:"snippet"`
}

// WeeklyPoll is the per-user poll record for one week. Custom options are
// voter-contributed free text; Votes maps option IDs and custom texts to
// counts. UserVote is empty until the user votes and never changes afterwards
// within the same week.
type WeeklyPoll struct {
	SchemaVersion int              `json:"schema_version"`
	WeekID        string           `json:"week_id"`
	PostOptions   []PollOption     `json:"post_options"`
	CustomOptions []string         `json:"custom_options"`
	Votes         map[string]int64 `json:"votes"`
	UserVote      string           `json:"user_vote,omitempty"`
}

// HasOption reports whether key is a known post option ID or custom option.
func (p *WeeklyPoll) HasOption(key string) bool {
	for _, o := range p.PostOptions {
		if o.ID == key {
			return true
		}
	}
	for _, c := range p.CustomOptions {
		if c == key {
			return true
		}
	}
	return false
}

// TotalVotes sums all recorded vote counts.
func (p *WeeklyPoll) TotalVotes() int64 {
	var n int64
	for _, c := range p.Votes {
		n += c
	}
	return n
}

// Notification is a locally stored per-user notification.
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
	Read      bool   `json:"read"`
}
