package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// VehicleAverage is the cached rating aggregate for one vehicle.
type VehicleAverage struct {
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
}

// RatingCache keeps vehicle rating aggregates in Redis so detail pages don't
// recompute the average on every read. A nil client degrades to a no-op cache,
// which also keeps unit tests free of a Redis dependency.
type RatingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRatingCache connects to Redis. On connection failure the caller may keep
// the returned error non-fatal and run without a cache.
func NewRatingCache(redisAddr, password string, ttl time.Duration) (*RatingCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         redisAddr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RatingCache{client: rdb, ttl: ttl}, nil
}

// NewNoopRatingCache returns a cache that stores nothing.
func NewNoopRatingCache() *RatingCache {
	return &RatingCache{}
}

func key(plate string) string {
	return fmt.Sprintf("vehicle:avg:%s", plate)
}

// GetAverage returns the cached aggregate for a plate, or (nil, nil) on a miss.
func (c *RatingCache) GetAverage(ctx context.Context, plate string) (*VehicleAverage, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	raw, err := c.client.Get(ctx, key(plate)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var avg VehicleAverage
	if err := json.Unmarshal([]byte(raw), &avg); err != nil {
		return nil, err
	}
	return &avg, nil
}

// SetAverage stores the aggregate for a plate with the configured TTL.
func (c *RatingCache) SetAverage(ctx context.Context, plate string, avg VehicleAverage) error {
	if c == nil || c.client == nil {
		return nil
	}

	raw, err := json.Marshal(avg)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(plate), raw, c.ttl).Err()
}

// Invalidate drops the cached aggregate after a rating write.
func (c *RatingCache) Invalidate(ctx context.Context, plate string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, key(plate)).Err()
}

// Close releases the underlying Redis connection.
func (c *RatingCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
