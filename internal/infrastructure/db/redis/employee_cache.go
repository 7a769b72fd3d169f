package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/peoplekit/employee-system/internal/api/metrics"
	"github.com/peoplekit/employee-system/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// EmployeeCache is a read-through cache for employee-by-id lookups.
// Key format: employee:<id>
//
// The cache is an optimization only: callers must treat every error and miss
// identically (fall through to the repository) and invalidate on mutation.
type EmployeeCache struct {
	client *redis.Client
}

// NewEmployeeCache creates an EmployeeCache wrapping the given Redis client.
func NewEmployeeCache(client *redis.Client) *EmployeeCache {
	return &EmployeeCache{client: client}
}

// Get returns the cached employee, or nil when absent.
func (c *EmployeeCache) Get(ctx context.Context, id string) (*domain.Employee, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.EmployeeCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var e domain.Employee
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	metrics.EmployeeCacheTotal.WithLabelValues("hit").Inc()
	return &e, nil
}

// Set stores the employee with the cache TTL.
func (c *EmployeeCache) Set(ctx context.Context, e *domain.Employee) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(e.ID), raw, cacheTTL).Err()
}

// Invalidate drops the cached entry for id, if any.
func (c *EmployeeCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *EmployeeCache) key(id string) string {
	return "employee:" + id
}
