package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/oficinahub/workshop-scheduler/internal/domain/schedule"
	"github.com/oficinahub/workshop-scheduler/internal/models"
)

const serviceCacheTTL = 5 * time.Minute

// ServiceCache is a best-effort read-through cache of the per-workshop
// service catalog. The catalog is read on every validation and availability
// computation but changes rarely. With a nil client every call goes straight
// to the inner source.
type ServiceCache struct {
	inner  domain.ServiceSource
	rdb    *redis.Client
	logger *zap.Logger
}

func NewServiceCache(
	inner domain.ServiceSource,
	rdb *redis.Client,
	logger *zap.Logger,
) *ServiceCache {
	return &ServiceCache{
		inner:  inner,
		rdb:    rdb,
		logger: logger,
	}
}

func serviceKey(workshopID uint) string {
	return fmt.Sprintf("workshop:%d:services", workshopID)
}

func (c *ServiceCache) ListServices(
	ctx context.Context,
	workshopID uint,
) ([]models.Service, error) {

	if c.rdb == nil {
		return c.inner.ListServices(ctx, workshopID)
	}

	key := serviceKey(workshopID)

	if payload, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var services []models.Service
		if err := json.Unmarshal(payload, &services); err == nil {
			return services, nil
		}
	}

	services, err := c.inner.ListServices(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(services); err == nil {
		if err := c.rdb.Set(ctx, key, payload, serviceCacheTTL).Err(); err != nil {
			c.logger.Warn("service cache write failed",
				zap.Uint("workshop_id", workshopID),
				zap.Error(err),
			)
		}
	}

	return services, nil
}

// Invalidate drops the workshop's cached catalog. Called after any service
// mutation so the allocator never validates against stale work units longer
// than one request.
func (c *ServiceCache) Invalidate(ctx context.Context, workshopID uint) {
	if c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, serviceKey(workshopID)).Err(); err != nil {
		c.logger.Warn("service cache invalidation failed",
			zap.Uint("workshop_id", workshopID),
			zap.Error(err),
		)
	}
}

var _ domain.ServiceSource = (*ServiceCache)(nil)
