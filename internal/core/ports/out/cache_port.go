package out

import (
	"context"
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/domain"
	"github.com/google/uuid"
)

type CachePort interface {
	// Cacheo de tramos expandidos. Se guardan sin estado: el estado depende
	// de "ahora" y se aplica en cada petición
	GetEntries(ctx context.Context, assignmentID uuid.UUID, from, to time.Time) ([]domain.ExpandedEntry, bool)
	StoreEntries(ctx context.Context, assignmentID uuid.UUID, from, to time.Time, entries []domain.ExpandedEntry)
	InvalidateEntries(ctx context.Context, assignmentID uuid.UUID)
	InvalidateAllEntries(ctx context.Context)

	// Cacheo del calendario de festivos
	GetHolidaySet(ctx context.Context, years []int) (domain.HolidaySet, bool)
	StoreHolidaySet(ctx context.Context, years []int, set domain.HolidaySet)
	InvalidateHolidaySet(ctx context.Context)
}
