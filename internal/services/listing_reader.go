package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/KeisukeTTTT/estate-management/internal/cache"
	"github.com/KeisukeTTTT/estate-management/internal/db"
	"github.com/KeisukeTTTT/estate-management/internal/metrics"
	"github.com/KeisukeTTTT/estate-management/internal/models"
)

// listingReader serves read projections from the listing cache, falling back to the
// store. A nil cache reads straight through.
type listingReader struct {
	store  db.IStore
	cache  cache.IListingCache
	logger *zap.Logger
}

func findCached[T any](ctx context.Context, r listingReader, key string, kind models.Kind, q db.Query, decorate func(*T)) ([]T, error) {
	var rows []T
	if r.cache != nil {
		hit, err := r.cache.Get(ctx, key, &rows)
		switch {
		case err != nil:
			metrics.RecordCacheLookup(key, "error")
			r.logger.Warn("listing cache read failed", zap.String("key", key), zap.Error(err))
		case hit:
			metrics.RecordCacheLookup(key, "hit")
			return rows, nil
		default:
			metrics.RecordCacheLookup(key, "miss")
		}
	}

	rows = nil
	if err := r.store.FindMany(ctx, kind, q, &rows); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", kind, err)
	}
	if rows == nil {
		rows = []T{}
	}
	if decorate != nil {
		for i := range rows {
			decorate(&rows[i])
		}
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, rows); err != nil {
			r.logger.Warn("listing cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return rows, nil
}
