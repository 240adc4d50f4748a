package usecase

import (
	"context"

	"github.com/hooplabs/courtside/internal/platform/cache"
	"github.com/hooplabs/courtside/internal/platform/logging"
)

type CacheAdminService struct {
	registry *cache.Registry
	logger   *logging.Logger
}

func NewCacheAdminService(registry *cache.Registry, logger *logging.Logger) *CacheAdminService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CacheAdminService{registry: registry, logger: logger}
}

func (s *CacheAdminService) Status(ctx context.Context) []cache.StoreStatus {
	_, span := startUsecaseSpan(ctx, "CacheAdminService.Status")
	defer span.End()

	return s.registry.Status()
}

func (s *CacheAdminService) Clear(ctx context.Context) {
	_, span := startUsecaseSpan(ctx, "CacheAdminService.Clear")
	defer span.End()

	s.registry.Clear()
	s.logger.InfoContext(ctx, "all cache stores cleared")
}
