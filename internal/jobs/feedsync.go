package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hornethive-server/internal/feed"
	"hornethive-server/internal/week"
	"hornethive-server/pkg/hive"
)

// StartFeedSync refreshes the post snapshot from the Hive backend on a fixed
// interval. The first fetch runs immediately so the poll controller has data
// as soon as possible; later failures keep the previous snapshot.
func StartFeedSync(ctx context.Context, snap *feed.Snapshot, client *hive.Client, interval time.Duration) {
	if client == nil {
		log.Warn().Msg("hive client not configured; feed snapshot stays empty")
		return
	}
	go func() {
		syncOnce(ctx, snap, client)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				syncOnce(ctx, snap, client)
			}
		}
	}()
}

func syncOnce(ctx context.Context, snap *feed.Snapshot, client *hive.Client) {
	now := time.Now()
	// Only the current week's posts can become poll candidates; fetch from
	// the week start to keep payloads small.
	start, _ := week.Bounds(now)
	posts, err := client.ListPosts(ctx, start)
	if err != nil {
		log.Error().Err(err).Msg("feed sync failed, keeping previous snapshot")
		return
	}
	snap.Replace(posts, now)
	log.Info().Int("posts", len(posts)).Msg("feed snapshot refreshed")
}
