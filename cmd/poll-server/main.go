package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"hornethive-server/internal/config"
	"hornethive-server/internal/deps"
	"hornethive-server/internal/diag"
	"hornethive-server/internal/feed"
	"hornethive-server/internal/jobs"
	"hornethive-server/internal/migrate"
	"hornethive-server/internal/notify"
	"hornethive-server/internal/poll"
	"hornethive-server/internal/server"
	"hornethive-server/internal/store"
	pkgdb "hornethive-server/pkg/db"
	"hornethive-server/pkg/hive"
	"hornethive-server/pkg/kv"
	"hornethive-server/pkg/signer"
)

func main() {
	_ = godotenv.Load() // best-effort
	boot := diag.NewBoot(nil)
	cfg := config.FromEnv()
	boot.RecordPhase("config", nil)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, cleanup, err := openStorage(ctx, cfg)
	boot.RecordPhase("storage", err)
	if err != nil {
		log.Fatal().Err(err).Str("boot", boot.Summary()).Msg("storage init failed")
	}
	defer cleanup()

	snapshot := feed.NewSnapshot()
	var hiveClient *hive.Client
	if cfg.HiveAPIURL != "" {
		hiveClient = hive.New(cfg.HiveAPIURL, cfg.HiveAPIToken)
	}
	boot.RecordPhase("hive", nil)

	notifications := notify.New(storage, nil)
	controller := poll.New(store.New(storage), snapshot, notifications, nil)

	jobs.StartFeedSync(ctx, snapshot, hiveClient, cfg.FeedSyncInterval)
	jobs.StartWeeklyCleanup(ctx, storage)

	api := server.New(deps.ServerDeps{
		Poll:          controller,
		Notifications: notifications,
		Feed:          snapshot,
		Signer:        signer.NewHMAC(cfg.SessionSecret),
		Name:          "hornethive-poll-server",
		StartedAt:     time.Now(),
		CORSOrigins:   cfg.CORSAllowedOrigins,
	})

	boot.RecordPhase("server", nil)
	log.Info().Str("boot", boot.Summary()).Msg("startup complete")

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		if err := server.StartHTTP(ctx, addr, api.Router()); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	_, _ = fmt.Fprintln(os.Stderr, "shutting down...")
	time.Sleep(200 * time.Millisecond)
}

// openStorage picks the key-value backend: Postgres when DATABASE_URL is
// set, else Valkey when VALKEY_ADDR is set, else in-memory (dev only; polls
// die with the process).
func openStorage(ctx context.Context, cfg config.Config) (kv.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		pool, err := pkgdb.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := migrate.Up(cfg.DatabaseURL); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Msg("using postgres storage")
		return kv.NewPostgres(pool), pool.Close, nil
	}
	if cfg.ValkeyAddr != "" {
		vc, err := kv.NewValkey(cfg.ValkeyAddr, cfg.ValkeyPassword)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.ValkeyAddr).Msg("using valkey storage")
		return vc, vc.Close, nil
	}
	log.Warn().Msg("no DATABASE_URL or VALKEY_ADDR; using in-memory storage")
	return kv.NewMemory(), func() {}, nil
}
