package schedule_expander_service

import (
	"context"
	"fmt"
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/config"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/domain"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/ports/out"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/utils"
)

type ScheduleExpanderService struct {
	storePort out.StorePort
	cachePort out.CachePort
	logger    out.LoggerPort
	cfg       *config.Config
}

func NewScheduleExpanderService(
	storePort out.StorePort,
	cachePort out.CachePort,
	cfg *config.Config,
	logger out.LoggerPort,
) *ScheduleExpanderService {
	return &ScheduleExpanderService{
		storePort: storePort,
		cachePort: cachePort,
		cfg:       cfg,
		logger:    logger.WithModule("ScheduleExpanderService"),
	}
}

func (s *ScheduleExpanderService) cacheEnabled() bool {
	return s.cachePort != nil && s.cfg.Cache.Enabled
}

// holidaySet carga el índice de festivos de los años que abarca el rango,
// pasando por caché cuando está habilitada
func (s *ScheduleExpanderService) holidaySet(ctx context.Context, from, to time.Time) (domain.HolidaySet, error) {
	years := utils.YearsInRange(from, to)

	if s.cacheEnabled() {
		if set, exists := s.cachePort.GetHolidaySet(ctx, years); exists {
			s.logger.Debug("holidays.cache.hit", out.LogFields{
				"years": years,
			})
			return set, nil
		}
	}

	s.logger.Debug("holidays.cache.miss", out.LogFields{
		"years": years,
	})

	records, err := s.storePort.GetHolidays(ctx, years)
	if err != nil {
		s.logger.Error("holidays.fetch_failed", out.LogFields{
			"years": years,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("holidays.fetch_failed: %w", err)
	}

	set := domain.NewHolidaySet(records)

	if s.cacheEnabled() {
		s.cachePort.StoreHolidaySet(ctx, years, set)
	}

	return set, nil
}

// expandCached expande una asignación ya cargada, pasando por la caché de tramos.
// Los tramos se cachean sin estado: el estado se aplica después con "ahora"
func (s *ScheduleExpanderService) expandCached(ctx context.Context, assignment domain.Assignment, from, to time.Time, holidays domain.HolidaySet, viewpoint domain.Viewpoint) []domain.ExpandedEntry {
	// La caché solo guarda la vista de trabajadora; la vista de usuario
	// cambia la contraparte y se expande siempre en fresco
	if viewpoint == domain.ViewpointWorker && s.cacheEnabled() {
		if entries, exists := s.cachePort.GetEntries(ctx, assignment.ID, from, to); exists {
			s.logger.Debug("entries.cache.hit", out.LogFields{
				"assignmentId": assignment.ID,
				"entriesCount": len(entries),
			})
			return entries
		}
	}

	entries := Expand(assignment, from, to, holidays, viewpoint)

	if viewpoint == domain.ViewpointWorker && s.cacheEnabled() {
		s.cachePort.StoreEntries(ctx, assignment.ID, from, to, entries)
	}

	return entries
}
