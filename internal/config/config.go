package config

import (
	"crypto/rand"
	"log"
	"os"
	"strings"
	"time"
)

// Config holds runtime configuration loaded from env.
type Config struct {
	Port               string
	DatabaseURL        string
	ValkeyAddr         string
	ValkeyPassword     string
	HiveAPIURL         string
	HiveAPIToken       string
	FeedSyncInterval   time.Duration
	Env                string
	SessionSecret      []byte
	CORSAllowedOrigins []string
}

func FromEnv() Config {
	c := Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		ValkeyAddr:       os.Getenv("VALKEY_ADDR"),
		ValkeyPassword:   os.Getenv("VALKEY_PASSWORD"),
		HiveAPIURL:       os.Getenv("HIVE_API_URL"),
		HiveAPIToken:     os.Getenv("HIVE_API_TOKEN"),
		FeedSyncInterval: getDuration("FEED_SYNC_INTERVAL", 5*time.Minute),
		Env:              getEnv("ENV", "development"),
	}
	if s := os.Getenv("CORS_ALLOWED_ORIGINS"); s != "" {
		for _, p := range strings.Split(s, ",") {
			if v := strings.TrimSpace(p); v != "" {
				c.CORSAllowedOrigins = append(c.CORSAllowedOrigins, v)
			}
		}
	}
	// Session secret: raw bytes from env; if empty, generate an ephemeral one
	// (tokens then die with the process, fine for dev).
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		c.SessionSecret = []byte(s)
	} else {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err == nil {
			c.SessionSecret = buf
		} else {
			log.Printf("warning: failed to generate session secret: %v", err)
			c.SessionSecret = []byte("insecure-default")
		}
	}
	return c
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("warning: invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}
