package deps

import (
	"time"

	"hornethive-server/internal/feed"
	"hornethive-server/internal/notify"
	"hornethive-server/internal/poll"
	"hornethive-server/pkg/signer"
)

// ServerDeps holds the dependencies required by handlers and server.
type ServerDeps struct {
	Poll          *poll.Controller
	Notifications *notify.Store
	Feed          *feed.Snapshot
	Signer        signer.Codec
	Name          string
	StartedAt     time.Time
	CORSOrigins   []string
}
