package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"seller-insights-service/internal/analytics"
	"seller-insights-service/internal/models"
)

// Cache TTL constants
const (
	SnapshotCacheTTL      = 2 * time.Minute  // merged dataset warm-start cache
	SellerProfileCacheTTL = 10 * time.Minute // supplier API is rate limited
	LegalInfoCacheTTL     = 1 * time.Hour    // registry data rarely changes
	FavoritesCacheTTL     = 5 * time.Minute
)

const (
	snapshotCacheKey  = "insights:snapshot:current"
	profileCacheKey   = "insights:seller:profile"
	legalCacheKey     = "insights:seller:legal"
	favoritesCacheKey = "insights:seller:favorites"
)

// CatalogFetcher retrieves the full paginated catalog listing
type CatalogFetcher interface {
	FetchProducts(ctx context.Context) ([]models.CatalogProduct, error)
}

// ProfileFetcher retrieves the seller account profile
type ProfileFetcher interface {
	FetchProfile(ctx context.Context) (*models.SellerProfile, error)
}

// LegalFetcher retrieves the registered business entity record
type LegalFetcher interface {
	FetchLegalInfo(ctx context.Context) (*models.LegalEntityProfile, error)
}

// FavoritesFetcher retrieves the store favorites counter
type FavoritesFetcher interface {
	FetchFavoritesCount(ctx context.Context) (int, error)
}

// AnalyticsLoader reads the local analytics export
type AnalyticsLoader interface {
	Load() ([]models.AnalyticsRecord, error)
}

// SnapshotRepository builds and owns the current merged snapshot. A refresh
// assembles a complete new snapshot before swapping the pointer, so readers
// holding the previous one are never affected and a failed refresh leaves it
// untouched. Seller info lookups go through a Redis read-through cache when
// a client is configured; without Redis everything still works, just
// uncached.
type SnapshotRepository struct {
	catalog   CatalogFetcher
	profile   ProfileFetcher
	legal     LegalFetcher
	favorites FavoritesFetcher
	store     AnalyticsLoader
	redis     *redis.Client
	logger    *logrus.Logger

	mu      sync.RWMutex
	current *models.Snapshot
}

// NewSnapshotRepository creates a snapshot repository over the given
// fetchers. redisClient may be nil.
func NewSnapshotRepository(
	catalog CatalogFetcher,
	profile ProfileFetcher,
	legal LegalFetcher,
	favorites FavoritesFetcher,
	store AnalyticsLoader,
	redisClient *redis.Client,
	logger *logrus.Logger,
) *SnapshotRepository {
	return &SnapshotRepository{
		catalog:   catalog,
		profile:   profile,
		legal:     legal,
		favorites: favorites,
		store:     store,
		redis:     redisClient,
		logger:    logger,
	}
}

// Refresh fetches the catalog, loads the local analytics export, merges the
// two and swaps in the resulting snapshot. On any failure the previous
// snapshot stays current and the error is returned to the caller.
func (r *SnapshotRepository) Refresh(ctx context.Context) (*models.Snapshot, error) {
	catalog, err := r.catalog.FetchProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh snapshot: %w", err)
	}

	records, err := r.store.Load()
	if err != nil {
		return nil, fmt.Errorf("refresh snapshot: %w", err)
	}

	snapshot := &models.Snapshot{
		Version: uuid.New(),
		BuiltAt: time.Now().UTC(),
		Records: analytics.Merge(catalog, records),
	}

	r.mu.Lock()
	r.current = snapshot
	r.mu.Unlock()

	r.cacheSet(ctx, snapshotCacheKey, snapshot, SnapshotCacheTTL)

	r.logger.WithFields(logrus.Fields{
		"version":  snapshot.Version,
		"catalog":  len(catalog),
		"exported": len(records),
		"merged":   len(snapshot.Records),
	}).Info("snapshot refreshed")

	return snapshot, nil
}

// Current returns the active snapshot, or nil before the first refresh.
func (r *SnapshotRepository) Current() *models.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// RestoreCached installs the last cached snapshot from Redis, if one exists.
// Used at startup so the table can be served before the first live fetch
// completes. A cache miss is not an error.
func (r *SnapshotRepository) RestoreCached(ctx context.Context) bool {
	if r.redis == nil {
		return false
	}

	val, err := r.redis.Get(ctx, snapshotCacheKey).Result()
	if err != nil {
		return false
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal([]byte(val), &snapshot); err != nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != nil {
		return false
	}
	r.current = &snapshot
	return true
}

// GetSellerProfile returns the seller profile, cached.
func (r *SnapshotRepository) GetSellerProfile(ctx context.Context) (*models.SellerProfile, error) {
	var cached models.SellerProfile
	if r.cacheGet(ctx, profileCacheKey, &cached) {
		return &cached, nil
	}

	profile, err := r.profile.FetchProfile(ctx)
	if err != nil {
		return nil, err
	}

	r.cacheSet(ctx, profileCacheKey, profile, SellerProfileCacheTTL)
	return profile, nil
}

// GetLegalInfo returns the legal entity record, cached.
func (r *SnapshotRepository) GetLegalInfo(ctx context.Context) (*models.LegalEntityProfile, error) {
	var cached models.LegalEntityProfile
	if r.cacheGet(ctx, legalCacheKey, &cached) {
		return &cached, nil
	}

	info, err := r.legal.FetchLegalInfo(ctx)
	if err != nil {
		return nil, err
	}

	r.cacheSet(ctx, legalCacheKey, info, LegalInfoCacheTTL)
	return info, nil
}

// GetFavoritesCount returns the store favorites counter, cached.
func (r *SnapshotRepository) GetFavoritesCount(ctx context.Context) (int, error) {
	var cached int
	if r.cacheGet(ctx, favoritesCacheKey, &cached) {
		return cached, nil
	}

	count, err := r.favorites.FetchFavoritesCount(ctx)
	if err != nil {
		return 0, err
	}

	r.cacheSet(ctx, favoritesCacheKey, count, FavoritesCacheTTL)
	return count, nil
}

func (r *SnapshotRepository) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if r.redis == nil {
		return false
	}
	val, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func (r *SnapshotRepository) cacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if r.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		r.logger.WithError(err).WithField("key", key).Debug("cache write failed")
	}
}
