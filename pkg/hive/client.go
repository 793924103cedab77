// Package hive is the HTTP client for the Hornet Hive backend. Only the
// read side this service needs is implemented: the post feed with its
// engagement counters.
package hive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"hornethive-server/internal/model"
)

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

type postsResp struct {
	Posts []postItem `json:"posts"`
}

type postItem struct {
	ID           int64  `json:"id"`
	Author       string `json:"author_display_name"`
	Content      string `json:"content"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
	CreatedAtNs  int64  `json:"created_at_ns"`
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

// ListPosts fetches the post feed created at or after since. The backend
// reports creation times in nanoseconds since epoch; they are converted to
// local time here.
func (c *Client) ListPosts(ctx context.Context, since time.Time) ([]model.Post, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("missing hive base url")
	}
	u, err := url.Parse(c.BaseURL + "/api/v1/posts")
	if err != nil {
		return nil, fmt.Errorf("hive url: %w", err)
	}
	q := u.Query()
	if !since.IsZero() {
		q.Set("since_ns", strconv.FormatInt(since.UnixNano(), 10))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hive posts status %d", resp.StatusCode)
	}
	var pr postsResp
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, err
	}
	out := make([]model.Post, 0, len(pr.Posts))
	for _, it := range pr.Posts {
		out = append(out, model.Post{
			ID:           it.ID,
			Author:       it.Author,
			Content:      it.Content,
			LikeCount:    it.LikeCount,
			CommentCount: it.CommentCount,
			CreatedAt:    time.Unix(0, it.CreatedAtNs),
		})
	}
	return out, nil
}
