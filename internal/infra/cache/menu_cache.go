// Package cache puts Redis in front of read-heavy repository queries.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/reservation-api/internal/domain/menu"
	"github.com/BruksfildServices01/reservation-api/internal/models"
)

// CachingMenuRepository caches restaurant menu lists and drops a
// restaurant's entries whenever one of its menus is created or deleted.
// A nil client turns it into a pass-through.
type CachingMenuRepository struct {
	inner     domain.Repository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ domain.Repository = (*CachingMenuRepository)(nil)

func NewCachingMenuRepository(rdb *redis.Client, ttl time.Duration, inner domain.Repository) *CachingMenuRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachingMenuRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: "menus",
	}
}

func (c *CachingMenuRepository) GetRestaurant(ctx context.Context, restaurantID uint) (*models.Restaurant, error) {
	return c.inner.GetRestaurant(ctx, restaurantID)
}

func (c *CachingMenuRepository) Get(ctx context.Context, menuID uint) (*models.Menu, error) {
	return c.inner.Get(ctx, menuID)
}

func (c *CachingMenuRepository) List(ctx context.Context, restaurantID uint, f domain.Filter) ([]models.Menu, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, restaurantID, f)
	}

	key := c.listKey(restaurantID, f)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []models.Menu
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List(ctx, restaurantID, f)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("menu cache write failed")
		}
	}
	return out, nil
}

func (c *CachingMenuRepository) Create(ctx context.Context, m *models.Menu) error {
	if err := c.inner.Create(ctx, m); err != nil {
		return err
	}
	c.invalidate(ctx, m.RestaurantID)
	return nil
}

func (c *CachingMenuRepository) SoftDelete(ctx context.Context, m *models.Menu) error {
	if err := c.inner.SoftDelete(ctx, m); err != nil {
		return err
	}
	c.invalidate(ctx, m.RestaurantID)
	return nil
}

// --------------------------------------------------
// Keys
// --------------------------------------------------

func (c *CachingMenuRepository) restaurantPrefix(restaurantID uint) string {
	return fmt.Sprintf("%s:%d:", c.namespace, restaurantID)
}

func (c *CachingMenuRepository) listKey(restaurantID uint, f domain.Filter) string {
	return c.restaurantPrefix(restaurantID) + fmt.Sprintf(
		"name=%q|min=%s|max=%s|cat=%s",
		f.Name, intOrDash(f.MinPrice), intOrDash(f.MaxPrice), f.Category,
	)
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

// invalidate is best effort: a failure leaves entries to expire by TTL.
func (c *CachingMenuRepository) invalidate(ctx context.Context, restaurantID uint) {
	if c.rdb == nil {
		return
	}
	if err := c.deleteByPattern(ctx, c.restaurantPrefix(restaurantID)+"*"); err != nil {
		logrus.WithError(err).WithField("restaurant_id", restaurantID).Warn("menu cache invalidation failed")
	}
}

func (c *CachingMenuRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := c.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
