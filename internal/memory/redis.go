package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	json "github.com/goccy/go-json"

	"github.com/mosdac/assistant/internal/models"
)

// Redis keeps transcripts in Redis lists. Keys expire after the TTL and are
// deleted when a session is torn down, so nothing outlives its session.
type Redis struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
	maxSize   int
}

type RedisOption func(*Redis)

func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

func WithKeyPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.keyPrefix = prefix
	}
}

// WithRedisMaxSize trims each list to the newest size entries. Zero, the
// default, keeps the whole transcript.
func WithRedisMaxSize(size int) RedisOption {
	return func(r *Redis) {
		r.maxSize = size
	}
}

// RedisConfig holds connection settings.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// NewRedisClient opens a client for cfg and checks it with PING.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.URL,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.URL, err)
	}
	return client, nil
}

func NewRedis(client *redis.Client, options ...RedisOption) *Redis {
	r := &Redis{
		client:    client,
		ttl:       time.Hour,
		keyPrefix: "assistant:transcript:",
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *Redis) key(sessionID string) string {
	return r.keyPrefix + sessionID
}

func (r *Redis) Append(ctx context.Context, sessionID string, msg models.Message) error {
	if sessionID == "" {
		return ErrNoSession
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	key := r.key(sessionID)
	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	if r.maxSize > 0 {
		pipe.LTrim(ctx, key, int64(-r.maxSize), -1)
	}
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append message to redis: %w", err)
	}
	return nil
}

func (r *Redis) List(ctx context.Context, sessionID string) ([]models.Message, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	results, err := r.client.LRange(ctx, r.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get messages from redis: %w", err)
	}

	msgs := make([]models.Message, 0, len(results))
	for _, result := range results {
		var msg models.Message
		if err := json.Unmarshal([]byte(result), &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func (r *Redis) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrNoSession
	}
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear messages in redis: %w", err)
	}
	return nil
}
