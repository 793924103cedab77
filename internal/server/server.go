package server

import (
	"net/http"

	"hornethive-server/internal/deps"
	"hornethive-server/internal/routes"
)

type Server struct {
	deps.ServerDeps
}

func New(d deps.ServerDeps) *Server {
	return &Server{ServerDeps: d}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	sd := s.ServerDeps

	// Endpoints declared here for easy scanning
	mux.HandleFunc("GET /health", routes.Health(sd))
	mux.HandleFunc("POST /session", routes.Session(sd))
	mux.HandleFunc("GET /poll", routes.PollView(sd))
	mux.HandleFunc("POST /poll/votes", routes.Vote(sd))
	mux.HandleFunc("GET /posts", routes.Posts(sd))
	mux.HandleFunc("GET /notifications", routes.Notifications(sd))
	mux.HandleFunc("GET /notifications/unread", routes.NotificationsUnread(sd))
	mux.HandleFunc("POST /notifications/{id}/read", routes.NotificationRead(sd))

	return withCORS(sd.CORSOrigins)(withCorrelationID(withLogging(mux)))
}
