package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hornethive-server/internal/deps"
	"hornethive-server/internal/feed"
	"hornethive-server/internal/model"
	"hornethive-server/internal/notify"
	"hornethive-server/internal/poll"
	"hornethive-server/internal/server"
	"hornethive-server/internal/store"
	"hornethive-server/pkg/kv"
	"hornethive-server/pkg/signer"
)

var testFriday = time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

func testRouter(now time.Time, posts []model.Post) http.Handler {
	mem := kv.NewMemory()
	snap := feed.NewSnapshot()
	snap.Replace(posts, now)
	clock := func() time.Time { return now }
	notifications := notify.New(mem, clock)
	controller := poll.New(store.New(mem), snap, notifications, clock)
	s := server.New(deps.ServerDeps{
		Poll:          controller,
		Notifications: notifications,
		Feed:          snap,
		Signer:        signer.NewHMAC([]byte("test-secret")),
		Name:          "hornethive-server",
		StartedAt:     now,
	})
	return s.Router()
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("X-Hive-User", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("bad response body %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

func sessionToken(t *testing.T, r http.Handler, userID string) string {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/session", "", map[string]string{"user_id": userID})
	if w.Code != http.StatusOK {
		t.Fatalf("session: %d %s", w.Code, w.Body.String())
	}
	tok, _ := body["token"].(string)
	if tok == "" {
		t.Fatal("empty session token")
	}
	return tok
}

func TestHealth(t *testing.T) {
	r := testRouter(testFriday, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %s", ct)
	}
	if w.Header().Get("X-Correlation-Id") == "" {
		t.Fatal("missing correlation id header")
	}
}

func TestPollRequiresToken(t *testing.T) {
	r := testRouter(testFriday, nil)
	w, _ := doJSON(t, r, http.MethodGet, "/poll", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodGet, "/poll", "garbage-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", w.Code)
	}
}

func TestVoteRoundTrip(t *testing.T) {
	posts := []model.Post{
		{ID: 101, Author: "ada", Content: "sourdough workshop", LikeCount: 7, CreatedAt: testFriday.Add(-24 * time.Hour)},
	}
	r := testRouter(testFriday, posts)
	token := sessionToken(t, r, "alice")

	// First view creates the poll.
	w, body := doJSON(t, r, http.MethodGet, "/poll", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("poll view: %d %s", w.Code, w.Body.String())
	}
	if body["phase"] != model.PhaseVotingOpen || body["can_vote"] != true {
		t.Fatalf("view: %v", body)
	}

	// Vote for the listed option.
	w, body = doJSON(t, r, http.MethodPost, "/poll/votes", token, map[string]string{"option": "101"})
	if w.Code != http.StatusOK {
		t.Fatalf("vote: %d %s", w.Code, w.Body.String())
	}
	pollBody, _ := body["poll"].(map[string]any)
	if pollBody["user_vote"] != "101" {
		t.Fatalf("vote not recorded: %v", body)
	}

	// Second vote conflicts.
	w, _ = doJSON(t, r, http.MethodPost, "/poll/votes", token, map[string]string{"option": "101"})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}

	// The poll-available notification was recorded.
	w, body = doJSON(t, r, http.MethodGet, "/notifications", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("notifications: %d", w.Code)
	}
	items, _ := body["notifications"].([]any)
	if len(items) != 1 {
		t.Fatalf("notifications: %v", body)
	}
}

func TestVoteOutsideFriday(t *testing.T) {
	sunday := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	r := testRouter(sunday, nil)
	token := sessionToken(t, r, "alice")
	if w, _ := doJSON(t, r, http.MethodGet, "/poll", token, nil); w.Code != http.StatusOK {
		t.Fatalf("poll view: %d", w.Code)
	}
	w, _ := doJSON(t, r, http.MethodPost, "/poll/votes", token, map[string]string{"option": "x"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d %s", w.Code, w.Body.String())
	}
}

func TestPostsSnapshot(t *testing.T) {
	posts := []model.Post{{ID: 7, Author: "bea", Content: "hello", CreatedAt: testFriday}}
	r := testRouter(testFriday, posts)
	w, body := doJSON(t, r, http.MethodGet, "/posts", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("posts: %d", w.Code)
	}
	items, _ := body["posts"].([]any)
	if len(items) != 1 {
		t.Fatalf("posts: %v", body)
	}
}

func TestNotificationMarkRead(t *testing.T) {
	r := testRouter(testFriday, []model.Post{{ID: 1, Content: "p", CreatedAt: testFriday}})
	token := sessionToken(t, r, "alice")
	// Trigger the poll-available notification.
	doJSON(t, r, http.MethodGet, "/poll", token, nil)

	_, body := doJSON(t, r, http.MethodGet, "/notifications/unread", token, nil)
	if body["unread"] != float64(1) {
		t.Fatalf("unread: %v", body)
	}
	_, listBody := doJSON(t, r, http.MethodGet, "/notifications", token, nil)
	items := listBody["notifications"].([]any)
	id := items[0].(map[string]any)["id"].(string)

	if w, _ := doJSON(t, r, http.MethodPost, "/notifications/"+id+"/read", token, nil); w.Code != http.StatusOK {
		t.Fatalf("mark read: %d", w.Code)
	}
	_, body = doJSON(t, r, http.MethodGet, "/notifications/unread", token, nil)
	if body["unread"] != float64(0) {
		t.Fatalf("unread after read: %v", body)
	}
}
