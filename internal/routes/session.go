package routes

import (
	"encoding/json"
	"net/http"
	"strings"

	"hornethive-server/internal/deps"
	pkghttpx "hornethive-server/pkg/httpx"
)

// Session handles POST /session: exchanges an opaque user identifier for a
// signed session token. Identity verification happens upstream (the Hive
// backend authenticates the user before the client reaches this service).
func Session(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		type sessionReq struct {
			UserID string `json:"user_id"`
		}
		type sessionResp struct {
			Token string `json:"token"`
		}

		var req sessionReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("invalid json", err))
			return
		}
		req.UserID = strings.TrimSpace(req.UserID)
		if req.UserID == "" {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("missing user_id", nil))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, sessionResp{Token: d.Signer.EncodeUserToken(req.UserID)})
	}
}
