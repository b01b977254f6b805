package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/adapters/out/logger"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/config"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T) *CacheAdapter {
	t.Helper()

	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.EntriesSize = 10

	log, err := logger.NewConsoleLogger("UTC")
	require.NoError(t, err)

	adapter, err := NewCacheAdapter(cfg, log)
	require.NoError(t, err)
	require.NotNil(t, adapter)
	return adapter
}

func TestCacheAdapterEntriesRoundTrip(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	assignmentID := uuid.MustParse("7f6c1a9e-0001-4a00-8000-000000000001")
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	entries := []domain.ExpandedEntry{{AssignmentID: assignmentID, Date: from}}

	_, exists := adapter.GetEntries(ctx, assignmentID, from, to)
	assert.False(t, exists)

	adapter.StoreEntries(ctx, assignmentID, from, to, entries)

	got, exists := adapter.GetEntries(ctx, assignmentID, from, to)
	require.True(t, exists)
	assert.Equal(t, entries, got)

	// Un subrango del guardado se sirve filtrado por fecha
	got, exists = adapter.GetEntries(ctx, assignmentID, from, from.AddDate(0, 0, 6))
	require.True(t, exists)
	assert.Equal(t, entries, got)

	got, exists = adapter.GetEntries(ctx, assignmentID, from.AddDate(0, 0, 7), to)
	require.True(t, exists)
	assert.Empty(t, got)

	// Un rango que sobresale del guardado no se sirve
	_, exists = adapter.GetEntries(ctx, assignmentID, from, to.AddDate(0, 0, 1))
	assert.False(t, exists)

	adapter.InvalidateEntries(ctx, assignmentID)
	_, exists = adapter.GetEntries(ctx, assignmentID, from, to)
	assert.False(t, exists)
}

func TestCacheAdapterEntriesRangeWithTimeOfDay(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	assignmentID := uuid.MustParse("7f6c1a9e-0001-4a00-8000-000000000001")

	// Las fechas del rango pueden llegar con hora; los tramos van siempre
	// con la fecha a las 00:00 y el rango tiene que compararse igual
	from := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	to := time.Date(2025, 6, 8, 9, 30, 0, 0, time.UTC)
	entryDate := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	entries := []domain.ExpandedEntry{{AssignmentID: assignmentID, Date: entryDate}}
	adapter.StoreEntries(ctx, assignmentID, from, to, entries)

	got, exists := adapter.GetEntries(ctx, assignmentID, from, to)
	require.True(t, exists)
	assert.Equal(t, entries, got)

	// El mismo rango sin hora sirve lo mismo
	got, exists = adapter.GetEntries(ctx, assignmentID,
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC))
	require.True(t, exists)
	assert.Equal(t, entries, got)
}

func TestCacheAdapterInvalidateAllEntries(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	first := uuid.MustParse("7f6c1a9e-0001-4a00-8000-000000000001")
	second := uuid.MustParse("7f6c1a9e-0002-4a00-8000-000000000002")
	adapter.StoreEntries(ctx, first, from, to, []domain.ExpandedEntry{{AssignmentID: first}})
	adapter.StoreEntries(ctx, second, from, to, []domain.ExpandedEntry{{AssignmentID: second}})

	adapter.InvalidateAllEntries(ctx)

	_, exists := adapter.GetEntries(ctx, first, from, to)
	assert.False(t, exists)
	_, exists = adapter.GetEntries(ctx, second, from, to)
	assert.False(t, exists)
}

func TestCacheAdapterHolidaySet(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	set := domain.NewHolidaySet([]domain.Holiday{{Day: 10, Month: 6, Year: 2025}})

	_, exists := adapter.GetHolidaySet(ctx, []int{2025})
	assert.False(t, exists)

	adapter.StoreHolidaySet(ctx, []int{2025}, set)

	got, exists := adapter.GetHolidaySet(ctx, []int{2025})
	require.True(t, exists)
	assert.True(t, got.Contains(time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)))

	// Otro conjunto de años no se sirve
	_, exists = adapter.GetHolidaySet(ctx, []int{2025, 2026})
	assert.False(t, exists)

	adapter.InvalidateHolidaySet(ctx)
	_, exists = adapter.GetHolidaySet(ctx, []int{2025})
	assert.False(t, exists)
}

func TestCacheAdapterDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = false

	log, err := logger.NewConsoleLogger("UTC")
	require.NoError(t, err)

	adapter, err := NewCacheAdapter(cfg, log)
	require.NoError(t, err)
	assert.Nil(t, adapter)
}
