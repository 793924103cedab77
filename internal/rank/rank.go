// Package rank derives weekly poll candidates from the post feed.
package rank

import (
	"sort"
	"strconv"
	"time"

	"hornethive-server/internal/model"
	"hornethive-server/internal/week"
)

const (
	// MaxOptions caps how many post-derived options seed a poll.
	MaxOptions = 5
	// SnippetBudget is the rune budget for option snippets.
	SnippetBudget = 80

	ellipsis = "…"
)

// TopPosts selects up to MaxOptions options from posts created within the
// week containing now. Posts are scored by likes+comments, sorted by score
// descending with ties broken by ascending post ID, so the result is
// deterministic regardless of feed order. An empty result is valid.
func TopPosts(posts []model.Post, now time.Time) []model.PollOption {
	candidates := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if week.Contains(now, p.CreatedAt) {
			candidates = append(candidates, p)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		si, sj := candidates[i].EngagementScore(), candidates[j].EngagementScore()
		if si != sj {
			return si > sj
		}
		return candidates[i].ID < candidates[j].ID
	})
	if len(candidates) > MaxOptions {
		candidates = candidates[:MaxOptions]
	}
	out := make([]model.PollOption, 0, len(candidates))
	for _, p := range candidates {
		out = append(out, model.PollOption{
			ID:           strconv.FormatInt(p.ID, 10),
			SourcePostID: p.ID,
			Author:       p.Author,
			Snippet:      Snippet(p.Content),
		})
	}
	return out
}

// Snippet truncates content to SnippetBudget runes, appending an ellipsis
// when anything was cut. Content at or under the budget passes through
// unchanged.
func Snippet(content string) string {
	runes := []rune(content)
	if len(runes) <= SnippetBudget {
		return content
	}
	return string(runes[:SnippetBudget]) + ellipsis
}
