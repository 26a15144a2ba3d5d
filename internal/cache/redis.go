// Package cache keeps built public-menu views in Redis so repeat public
// renders skip the backend round-trips. Keys are dropped for a whole menu
// after any successful mutation touching it.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/restomenu/restomenu/internal/view"
	"go.uber.org/zap"
)

type MenuCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.SugaredLogger
}

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

func New(cfg Config, logger *zap.SugaredLogger) (*MenuCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 5 * time.Minute
	}

	return &MenuCache{
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func viewKey(menuID string, tmpl view.Template, locale string) string {
	return fmt.Sprintf("menu:%s:%s:%s", menuID, tmpl, locale)
}

// GetView returns a cached view if present. Cache errors are treated as
// misses; the caller rebuilds from the backend.
func (c *MenuCache) GetView(ctx context.Context, menuID string, tmpl view.Template, locale string) (*view.MenuView, bool) {
	raw, err := c.rdb.Get(ctx, viewKey(menuID, tmpl, locale)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnw("menu cache read failed", "menu_id", menuID, "error", err)
		}
		return nil, false
	}

	var v view.MenuView
	if err := json.Unmarshal(raw, &v); err != nil {
		c.logger.Warnw("menu cache entry corrupt", "menu_id", menuID, "error", err)
		return nil, false
	}

	return &v, true
}

func (c *MenuCache) SetView(ctx context.Context, menuID string, tmpl view.Template, locale string, v *view.MenuView) {
	raw, err := json.Marshal(v)
	if err != nil {
		c.logger.Warnw("failed to marshal menu view", "menu_id", menuID, "error", err)
		return
	}

	if err := c.rdb.Set(ctx, viewKey(menuID, tmpl, locale), raw, c.ttl).Err(); err != nil {
		c.logger.Warnw("menu cache write failed", "menu_id", menuID, "error", err)
	}
}

// Invalidate drops every cached view of a menu, all templates and locales.
func (c *MenuCache) Invalidate(ctx context.Context, menuID string) error {
	pattern := fmt.Sprintf("menu:%s:*", menuID)

	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan menu cache keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete menu cache keys: %w", err)
	}

	return nil
}

func (c *MenuCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *MenuCache) Close() error {
	return c.rdb.Close()
}
