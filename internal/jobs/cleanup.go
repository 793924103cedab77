package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hornethive-server/internal/store"
	"hornethive-server/pkg/kv"
)

// StartWeeklyCleanup sweeps stale poll records every Monday at 00:05 local
// time. Load already invalidates lazily on access; the sweep reclaims records
// of users who never come back. Backends without prefix deletion skip the
// sweep and rely on lazy invalidation alone.
func StartWeeklyCleanup(ctx context.Context, storage kv.Store) {
	pd, ok := storage.(kv.PrefixDeleter)
	if !ok {
		log.Warn().Msg("storage backend cannot sweep by prefix; relying on lazy poll cleanup")
		return
	}
	go func() {
		for {
			t := time.NewTimer(time.Until(nextMondaySweep(time.Now())))
			select {
			case <-ctx.Done():
				t.Stop()
				return
			case <-t.C:
				if err := sweep(ctx, pd); err != nil {
					log.Error().Err(err).Msg("weekly poll sweep failed")
				} else {
					log.Info().Msg("weekly poll sweep completed")
				}
			}
		}
	}()
}

// nextMondaySweep returns the next Monday 00:05 local time strictly after now.
func nextMondaySweep(now time.Time) time.Time {
	days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	y, m, d := now.AddDate(0, 0, days).Date()
	next := time.Date(y, m, d, 0, 5, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}

func sweep(ctx context.Context, pd kv.PrefixDeleter) error {
	return pd.DeletePrefix(ctx, store.KeyPrefix)
}
