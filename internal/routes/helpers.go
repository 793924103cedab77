package routes

import (
	"net/http"

	"hornethive-server/internal/deps"
	pkghttpx "hornethive-server/pkg/httpx"
)

// TokenHeader carries the signed session token on authenticated routes.
const TokenHeader = "X-Hive-User"

// userFromRequest resolves the authenticated user from the session token
// header. Returns a ready-to-write HTTPError when the token is missing or
// does not verify.
func userFromRequest(d deps.ServerDeps, r *http.Request) (string, *pkghttpx.HTTPError) {
	token := r.Header.Get(TokenHeader)
	if token == "" {
		return "", pkghttpx.Unauthorized("missing session token", nil)
	}
	userID, err := d.Signer.DecodeUserToken(token)
	if err != nil {
		return "", pkghttpx.Unauthorized("invalid session token", err)
	}
	return userID, nil
}
