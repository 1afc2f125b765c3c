package repository

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"
	"github.com/taskflow/memberctl/pkg/domain/types"
)

const (
	// DefaultRedisPrefix namespaces credential keys: memberctl:cred:{name}
	DefaultRedisPrefix = "memberctl:cred:"
	// DefaultRedisTTL bounds the lifetime of short-lived credentials
	DefaultRedisTTL = 12 * time.Hour
)

// Redis implements CredentialStore on Redis keys with a TTL, so that
// short-lived credentials can be shared between invocations and expire on
// their own.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// RedisOption configures a Redis store
type RedisOption func(*Redis)

// WithRedisPrefix sets the key prefix
func WithRedisPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// WithRedisTTL sets the key lifetime. Zero keeps keys forever.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

// NewRedis creates a credential store on an existing client
func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	r := &Redis{
		client: client,
		prefix: DefaultRedisPrefix,
		ttl:    DefaultRedisTTL,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DialRedis connects to addr and verifies the connection with PING
func DialRedis(ctx context.Context, addr string, opts ...RedisOption) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, goerr.Wrap(err, "failed to connect to redis", goerr.V("addr", addr))
	}

	ctxlog.From(ctx).Debug("Redis credential store connected", "addr", addr)
	return NewRedis(client, opts...), nil
}

func (r *Redis) key(name types.CredentialName) string {
	return r.prefix + name.String()
}

// Get returns the value stored under name, or an empty string
func (r *Redis) Get(ctx context.Context, name types.CredentialName) (string, error) {
	if name == "" {
		return "", goerr.New("credential name is empty")
	}

	v, err := r.client.Get(ctx, r.key(name)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", goerr.Wrap(err, "failed to get credential from redis", goerr.V("name", name))
	}
	return v, nil
}

// Set stores value under name with the configured TTL. An empty value
// removes the key.
func (r *Redis) Set(ctx context.Context, name types.CredentialName, value string) error {
	if name == "" {
		return goerr.New("credential name is empty")
	}
	if value == "" {
		return r.Delete(ctx, name)
	}

	if err := r.client.Set(ctx, r.key(name), value, r.ttl).Err(); err != nil {
		return goerr.Wrap(err, "failed to set credential in redis", goerr.V("name", name))
	}
	return nil
}

// Delete removes the key for name
func (r *Redis) Delete(ctx context.Context, name types.CredentialName) error {
	if name == "" {
		return goerr.New("credential name is empty")
	}

	if err := r.client.Del(ctx, r.key(name)).Err(); err != nil {
		return goerr.Wrap(err, "failed to delete credential from redis", goerr.V("name", name))
	}
	return nil
}

// Close closes the underlying client
func (r *Redis) Close() error {
	return r.client.Close()
}
