package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"hornethive-server/internal/deps"
	"hornethive-server/internal/store"
	pkghttpx "hornethive-server/pkg/httpx"
)

// PollView handles GET /poll: the weekly poll as the current user sees it.
func PollView(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, herr := userFromRequest(d, r)
		if herr != nil {
			pkghttpx.WriteError(w, r, herr)
			return
		}
		view, err := d.Poll.View(r.Context(), userID)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to evaluate poll", err))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, view)
	}
}

// Vote handles POST /poll/votes.
func Vote(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		type voteReq struct {
			Option string `json:"option"`
		}

		userID, herr := userFromRequest(d, r)
		if herr != nil {
			pkghttpx.WriteError(w, r, herr)
			return
		}
		var req voteReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid json", err))
			return
		}
		view, err := d.Poll.SubmitVote(r.Context(), userID, req.Option)
		if err != nil {
			pkghttpx.WriteError(w, r, voteError(err))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, view)
	}
}

// voteError maps the store's failure taxonomy onto HTTP responses. The
// sentinel messages are already user-facing.
func voteError(err error) *pkghttpx.HTTPError {
	switch {
	case errors.Is(err, store.ErrPhaseClosed):
		return pkghttpx.Forbidden(store.ErrPhaseClosed.Error(), err)
	case errors.Is(err, store.ErrAlreadyVoted):
		return pkghttpx.Conflict(store.ErrAlreadyVoted.Error(), err)
	case errors.Is(err, store.ErrNoActivePoll):
		return pkghttpx.NotFound(store.ErrNoActivePoll.Error(), err)
	case errors.Is(err, store.ErrInvalidOption):
		return pkghttpx.BadRequest(store.ErrInvalidOption.Error(), err)
	default:
		return pkghttpx.Internal("failed to submit vote", err)
	}
}
