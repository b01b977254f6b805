package cache

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/config"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/domain"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/ports/out"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/utils"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

type EntriesCacheEntry struct {
	Entries []domain.ExpandedEntry
	From    time.Time
	To      time.Time
}

type entriesCache struct {
	cache *lru.Cache[uuid.UUID, *EntriesCacheEntry]
}

type holidaySetCache struct {
	cache     domain.HolidaySet
	yearsKey  string
	timestamp time.Time
	ttl       time.Duration
}

type CacheAdapter struct {
	entriesCache    *entriesCache
	holidaySetCache *holidaySetCache
	mu              sync.RWMutex
	logger          out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruEntriesCache, err := lru.New[uuid.UUID, *EntriesCacheEntry](cfg.Cache.EntriesSize)
	if err != nil {
		logger.Error("cache.entries.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.EntriesSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		entriesCache: &entriesCache{
			cache: lruEntriesCache,
		},
		holidaySetCache: &holidaySetCache{
			ttl: 30 * time.Minute,
		},
		logger: logger.WithModule("CacheAdapter"),
	}, nil
}

func (c *CacheAdapter) GetEntries(ctx context.Context, assignmentID uuid.UUID, from, to time.Time) ([]domain.ExpandedEntry, bool) {
	// Los tramos expandidos llevan la fecha a las 00:00, así que el rango
	// se compara también a principio de día
	from = utils.StartCurrentDay(from)
	to = utils.StartCurrentDay(to)

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entriesCache.cache.Get(assignmentID)
	if !exists {
		c.logger.Debug("cache.entries.get.miss", out.LogFields{
			"assignmentId": assignmentID,
		})
		return nil, false
	}

	// Solo servimos la caché si el rango guardado cubre el pedido
	if from.Before(entry.From) || to.After(entry.To) {
		c.logger.Debug("cache.entries.get.date_range_mismatch", out.LogFields{
			"assignmentId":  assignmentID,
			"requestedFrom": from,
			"requestedTo":   to,
			"cachedFrom":    entry.From,
			"cachedTo":      entry.To,
		})
		return nil, false
	}

	entries := filterEntriesByRange(entry.Entries, from, to)

	c.logger.Debug("cache.entries.get.hit", out.LogFields{
		"assignmentId": assignmentID,
		"entriesCount": len(entries),
	})
	return entries, true
}

func filterEntriesByRange(entries []domain.ExpandedEntry, from, to time.Time) []domain.ExpandedEntry {
	filtered := []domain.ExpandedEntry{}
	for _, entry := range entries {
		if entry.Date.Before(from) || entry.Date.After(to) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

func (c *CacheAdapter) StoreEntries(ctx context.Context, assignmentID uuid.UUID, from, to time.Time, entries []domain.ExpandedEntry) {
	from = utils.StartCurrentDay(from)
	to = utils.StartCurrentDay(to)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.logger.Debug("cache.entries.store", out.LogFields{
		"assignmentId": assignmentID,
		"entriesCount": len(entries),
	})

	newEntry := &EntriesCacheEntry{
		Entries: entries,
		From:    from,
		To:      to,
	}

	c.entriesCache.cache.Add(assignmentID, newEntry)
}

func (c *CacheAdapter) InvalidateEntries(ctx context.Context, assignmentID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entriesCache.cache.Remove(assignmentID)
}

func (c *CacheAdapter) InvalidateAllEntries(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entriesCache.cache.Purge()
}

// Cacheo del calendario de festivos

func yearsKey(years []int) string {
	sorted := make([]int, len(years))
	copy(sorted, years)
	sort.Ints(sorted)

	parts := make([]string, 0, len(sorted))
	for _, year := range sorted {
		parts = append(parts, fmt.Sprintf("%d", year))
	}
	return strings.Join(parts, ",")
}

func (c *CacheAdapter) GetHolidaySet(ctx context.Context, years []int) (domain.HolidaySet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.holidaySetCache.cache == nil || time.Since(c.holidaySetCache.timestamp) > c.holidaySetCache.ttl {
		return nil, false
	}

	if c.holidaySetCache.yearsKey != yearsKey(years) {
		return nil, false
	}

	return c.holidaySetCache.cache, true
}

func (c *CacheAdapter) StoreHolidaySet(ctx context.Context, years []int, set domain.HolidaySet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.holidaySetCache.cache = set
	c.holidaySetCache.yearsKey = yearsKey(years)
	c.holidaySetCache.timestamp = time.Now()
}

func (c *CacheAdapter) InvalidateHolidaySet(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.holidaySetCache.cache = nil
	c.holidaySetCache.yearsKey = ""
	c.holidaySetCache.timestamp = time.Time{}
}
