package routes

import (
	"net/http"

	"hornethive-server/internal/deps"
	"hornethive-server/internal/model"
	pkghttpx "hornethive-server/pkg/httpx"
)

// Notifications handles GET /notifications, newest first.
func Notifications(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, herr := userFromRequest(d, r)
		if herr != nil {
			pkghttpx.WriteError(w, r, herr)
			return
		}
		items, err := d.Notifications.List(r.Context(), userID)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to load notifications", err))
			return
		}
		if items == nil {
			items = []model.Notification{}
		}
		pkghttpx.WriteJSON(w, http.StatusOK, map[string]any{"notifications": items})
	}
}

// NotificationRead handles POST /notifications/{id}/read.
func NotificationRead(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, herr := userFromRequest(d, r)
		if herr != nil {
			pkghttpx.WriteError(w, r, herr)
			return
		}
		id := r.PathValue("id")
		if id == "" {
			pkghttpx.WriteError(w, r, pkghttpx.BadRequest("missing notification id", nil))
			return
		}
		if err := d.Notifications.MarkRead(r.Context(), userID, id); err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to mark notification read", err))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
	}
}

// NotificationsUnread handles GET /notifications/unread.
func NotificationsUnread(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, herr := userFromRequest(d, r)
		if herr != nil {
			pkghttpx.WriteError(w, r, herr)
			return
		}
		count, err := d.Notifications.UnreadCount(r.Context(), userID)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to count notifications", err))
			return
		}
		pkghttpx.WriteJSON(w, http.StatusOK, map[string]any{"unread": count})
	}
}
