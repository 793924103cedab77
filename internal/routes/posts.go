package routes

import (
	"net/http"

	"hornethive-server/internal/deps"
	"hornethive-server/internal/model"
	pkghttpx "hornethive-server/pkg/httpx"
)

// Posts handles GET /posts: the current feed snapshot this service ranks
// poll candidates from. May be stale or empty; the fetched_at field lets
// clients tell.
func Posts(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts := d.Feed.Posts()
		if posts == nil {
			posts = []model.Post{}
		}
		pkghttpx.WriteJSON(w, http.StatusOK, map[string]any{
			"posts":      posts,
			"fetched_at": d.Feed.FetchedAt(),
		})
	}
}
