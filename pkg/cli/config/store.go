package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/taskflow/memberctl/pkg/domain/interfaces"
	"github.com/taskflow/memberctl/pkg/repository"
	"github.com/urfave/cli/v3"
)

// Store holds credential storage configuration
type Store struct {
	RedisAddr    string
	RedisTTL     time.Duration
	CookieFile   string
	CookieSecret string
}

// Stores are the configured credential stores
type Stores struct {
	// Session is short-lived storage
	Session interfaces.CredentialStore
	// Cookie is the cookie jar shared with the web client
	Cookie *repository.CookieJar

	closers []func() error
}

// Close releases the stores after persisting the cookie jar
func (s *Stores) Close(ctx context.Context) {
	logger := ctxlog.From(ctx)
	if err := s.Cookie.Save(ctx); err != nil {
		logger.Warn("failed to persist cookies", "error", err)
	}
	for _, closer := range s.closers {
		if err := closer(); err != nil {
			logger.Warn("failed to close credential store", "error", err)
		}
	}
}

// Flags returns CLI flags for credential storage
func (s *Store) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "redis-addr",
			Usage:       "Redis address for short-lived storage; process memory when empty",
			Category:    "Storage",
			Sources:     cli.EnvVars("MEMBERCTL_REDIS_ADDR"),
			Destination: &s.RedisAddr,
		},
		&cli.DurationFlag{
			Name:        "redis-ttl",
			Usage:       "Lifetime of credentials kept in Redis",
			Category:    "Storage",
			Value:       repository.DefaultRedisTTL,
			Sources:     cli.EnvVars("MEMBERCTL_REDIS_TTL"),
			Destination: &s.RedisTTL,
		},
		&cli.StringFlag{
			Name:        "cookie-file",
			Usage:       "File the cookie jar is persisted to",
			Category:    "Storage",
			Value:       defaultCookieFile(),
			Sources:     cli.EnvVars("MEMBERCTL_COOKIE_FILE"),
			Destination: &s.CookieFile,
		},
		&cli.StringFlag{
			Name:        "cookie-secret",
			Usage:       "Secret the cookie file is encrypted with; cookies are not persisted when empty",
			Category:    "Storage",
			Sources:     cli.EnvVars("MEMBERCTL_COOKIE_SECRET"),
			Destination: &s.CookieSecret,
		},
	}
}

// Configure opens the credential stores. webURL scopes the cookie jar.
func (s *Store) Configure(ctx context.Context, webURL string) (*Stores, error) {
	var opts []repository.CookieJarOption
	if s.CookieSecret != "" {
		opts = append(opts, repository.WithCookieFile(s.CookieFile, s.CookieSecret))
	} else {
		ctxlog.From(ctx).Debug("cookie secret is not set, cookies are kept in memory")
	}

	cookie, err := repository.NewCookieJar(ctx, webURL, opts...)
	if err != nil {
		return nil, err
	}

	stores := &Stores{Cookie: cookie}
	if s.RedisAddr == "" {
		stores.Session = repository.NewMemory()
		return stores, nil
	}

	redisStore, err := repository.DialRedis(ctx, s.RedisAddr, repository.WithRedisTTL(s.RedisTTL))
	if err != nil {
		return nil, err
	}
	stores.Session = redisStore
	stores.closers = append(stores.closers, redisStore.Close)
	return stores, nil
}

// LogValue returns structured log value
func (s Store) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("redis_addr", s.RedisAddr),
		slog.Duration("redis_ttl", s.RedisTTL),
		slog.String("cookie_file", s.CookieFile),
		slog.Bool("has_cookie_secret", s.CookieSecret != ""),
	)
}

func defaultCookieFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "memberctl", "cookies")
}
