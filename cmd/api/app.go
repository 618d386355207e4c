package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/mosdac/assistant/internal/assistant"
	"github.com/mosdac/assistant/internal/clock"
	"github.com/mosdac/assistant/internal/config"
	"github.com/mosdac/assistant/internal/dashboard"
	"github.com/mosdac/assistant/internal/handlers"
	"github.com/mosdac/assistant/internal/knowledge"
	"github.com/mosdac/assistant/internal/memory"
	"github.com/mosdac/assistant/internal/notify"
)

// app holds every long-lived component the server wires together.
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	engine   *assistant.Engine
	sessions *assistant.Sessions
	monitor  *dashboard.Monitor
	notifier *notify.Notifier
	graphs   *handlers.GraphHandler
	health   *handlers.HealthHandler
	redis    *redis.Client
}

// lockedRand shares one seeded source between goroutines.
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func newLockedRand(seed uint64) *lockedRand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedRand{rnd: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.IntN(n)
}

func (l *lockedRand) Int64N(n int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Int64N(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Float64()
}

func newStore(ctx context.Context, cfg *config.Config) (memory.Store, *redis.Client, error) {
	if cfg.Memory.Backend != config.BackendRedis {
		return memory.NewBuffer(memory.WithMaxSize(cfg.Chat.MaxMessages)), nil, nil
	}

	client, err := memory.NewRedisClient(ctx, memory.RedisConfig{
		URL:      cfg.Memory.Redis.URL,
		Password: cfg.Memory.Redis.Password,
		DB:       cfg.Memory.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	store := memory.NewRedis(client,
		memory.WithTTL(cfg.Memory.Redis.TTL),
		memory.WithRedisMaxSize(cfg.Chat.MaxMessages),
	)
	return store, client, nil
}

func newApp(ctx context.Context, cfg *config.Config, logger zerolog.Logger, sched clock.Scheduler) (*app, error) {
	rnd := newLockedRand(cfg.Chat.Seed)

	store, client, err := newStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	notifier := notify.New(logger.With().Str("component", "notify").Logger(), 50)
	engine := assistant.NewEngine(nil,
		assistant.WithLogger(logger.With().Str("component", "engine").Logger()),
		assistant.WithRand(rnd),
	)
	sessions := assistant.NewSessions(engine, store,
		assistant.WithScheduler(sched),
		assistant.WithNotifier(notifier),
		assistant.WithSessionLogger(logger.With().Str("component", "sessions").Logger()),
		assistant.WithDelay(cfg.Chat.Delay, cfg.Chat.Jitter, rnd),
	)
	monitor := dashboard.NewMonitor(rnd,
		dashboard.WithInterval(cfg.Dashboard.Interval),
		dashboard.WithLogger(logger.With().Str("component", "dashboard").Logger()),
	)

	graphs, err := handlers.NewGraphHandler(logger.With().Str("component", "graph").Logger())
	if err != nil {
		if client != nil {
			_ = client.Close()
		}
		return nil, fmt.Errorf("failed to load graphs: %w", err)
	}

	var ping handlers.PingFunc
	if client != nil {
		ping = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		engine:   engine,
		sessions: sessions,
		monitor:  monitor,
		notifier: notifier,
		graphs:   graphs,
		health:   handlers.NewHealthHandler(knowledge.Default(), graphs, sessions, ping),
		redis:    client,
	}, nil
}

// Close tears down every open session and the redis client, if any.
func (a *app) Close(ctx context.Context) error {
	err := a.sessions.CloseAll(ctx)
	if a.redis != nil {
		if cerr := a.redis.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
