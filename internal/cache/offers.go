package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/creditbridge/credit-service/internal/config"
	"github.com/creditbridge/credit-service/internal/models"
	"github.com/redis/go-redis/v9"
)

// OfferCache holds each user's generated loan offers under a TTL; offers
// expire rather than being refreshed in place.
type OfferCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewOfferCache creates a Redis-backed offer cache
func NewOfferCache(cfg *config.Config) *OfferCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &OfferCache{
		client: rdb,
		ttl:    time.Duration(cfg.OfferTTLHours) * time.Hour,
	}
}

// NewOfferCacheWithClient wraps an existing client; used by tests
func NewOfferCacheWithClient(client *redis.Client, ttl time.Duration) *OfferCache {
	return &OfferCache{client: client, ttl: ttl}
}

// Ping tests the Redis connection
func (c *OfferCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (c *OfferCache) Close() error {
	return c.client.Close()
}

// Put stores a user's offers for the cache TTL
func (c *OfferCache) Put(ctx context.Context, userID string, offers []models.LoanOffer) error {
	payload, err := json.Marshal(offers)
	if err != nil {
		return fmt.Errorf("failed to marshal offers: %w", err)
	}
	if err := c.client.Set(ctx, offerKey(userID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache offers: %w", err)
	}
	return nil
}

// Get returns a user's cached offers, or ok=false when absent or expired
func (c *OfferCache) Get(ctx context.Context, userID string) ([]models.LoanOffer, bool, error) {
	payload, err := c.client.Get(ctx, offerKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached offers: %w", err)
	}
	var offers []models.LoanOffer
	if err := json.Unmarshal(payload, &offers); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal offers: %w", err)
	}
	return offers, true, nil
}

func offerKey(userID string) string {
	return "loanoffers:" + userID
}
