package hive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestListPosts(t *testing.T) {
	var gotAuth, gotSince string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotSince = r.URL.Query().Get("since_ns")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"posts":[
			{"id":101,"author_display_name":"ada","content":"hi","like_count":3,"comment_count":1,"created_at_ns":1756300000000000000}
		]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-token")
	since := time.Unix(1756000000, 0)
	posts, err := c.ListPosts(context.Background(), since)
	if err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotSince != "1756000000000000000" {
		t.Errorf("since_ns = %q", gotSince)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts", len(posts))
	}
	p := posts[0]
	if p.ID != 101 || p.Author != "ada" || p.LikeCount != 3 || p.CommentCount != 1 {
		t.Errorf("post fields: %+v", p)
	}
	if p.CreatedAt.UnixNano() != 1756300000000000000 {
		t.Errorf("created_at = %v", p.CreatedAt)
	}
}

func TestListPostsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := New(srv.URL, "").ListPosts(context.Background(), time.Time{}); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}

func TestListPostsMissingBaseURL(t *testing.T) {
	if _, err := New("", "").ListPosts(context.Background(), time.Time{}); err == nil {
		t.Fatal("expected error without base url")
	}
}
