package schedule_expander_service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/domain"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/ports/out"
	"github.com/google/uuid"
)

func (s *ScheduleExpanderService) ExpandAssignment(ctx context.Context, assignmentID uuid.UUID, from, to, now time.Time) ([]domain.ExpandedEntry, error) {
	s.logger.Info("entries.expand.started", out.LogFields{
		"assignmentId": assignmentID,
		"from":         from.Format("2006-01-02"),
		"to":           to.Format("2006-01-02"),
	})

	assignment, err := s.storePort.GetAssignment(ctx, assignmentID)
	if err != nil {
		s.logger.Error("entries.expand.assignment.fetch_failed", out.LogFields{
			"assignmentId": assignmentID,
			"error":        err.Error(),
		})
		return nil, fmt.Errorf("entries.expand.assignment.fetch_failed: %w", err)
	}

	holidays, err := s.holidaySet(ctx, from, to)
	if err != nil {
		return nil, err
	}

	entries := s.expandCached(ctx, *assignment, from, to, holidays, domain.ViewpointWorker)

	return ApplyStatus(entries, now), nil
}

func (s *ScheduleExpanderService) ExpandBatch(ctx context.Context, assignmentIDs []uuid.UUID, from, to, now time.Time) (map[uuid.UUID][]domain.ExpandedEntry, error) {
	result := make(map[uuid.UUID][]domain.ExpandedEntry)
	var mu sync.Mutex
	var wg sync.WaitGroup
	errCh := make(chan error, len(assignmentIDs))

	for _, id := range assignmentIDs {
		wg.Add(1)
		go func(assignmentID uuid.UUID) {
			defer wg.Done()

			entries, err := s.ExpandAssignment(ctx, assignmentID, from, to, now)
			if err != nil {
				errCh <- err
				return
			}

			mu.Lock()
			result[assignmentID] = entries
			mu.Unlock()
		}(id)
	}

	wg.Wait()
	close(errCh)

	// Comprobamos errores
	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (s *ScheduleExpanderService) ExpandWorkerDay(ctx context.Context, workerID uuid.UUID, date, now time.Time) ([]domain.ExpandedEntry, error) {
	entries, err := s.ExpandWorkerRange(ctx, workerID, date, date, now)
	if err != nil {
		return nil, err
	}

	return SortForDisplay(entries), nil
}

func (s *ScheduleExpanderService) ExpandWorkerRange(ctx context.Context, workerID uuid.UUID, from, to, now time.Time) ([]domain.ExpandedEntry, error) {
	assignments, err := s.storePort.GetAssignmentsByWorker(ctx, workerID)
	if err != nil {
		s.logger.Error("entries.expand.worker.fetch_failed", out.LogFields{
			"workerId": workerID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("entries.expand.worker.fetch_failed: %w", err)
	}

	return s.expandAssignments(ctx, assignments, from, to, now, domain.ViewpointWorker)
}

func (s *ScheduleExpanderService) ExpandUserRange(ctx context.Context, userID uuid.UUID, from, to, now time.Time) ([]domain.ExpandedEntry, error) {
	assignments, err := s.storePort.GetAssignmentsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("entries.expand.user.fetch_failed", out.LogFields{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("entries.expand.user.fetch_failed: %w", err)
	}

	return s.expandAssignments(ctx, assignments, from, to, now, domain.ViewpointUser)
}

func (s *ScheduleExpanderService) expandAssignments(ctx context.Context, assignments []domain.Assignment, from, to, now time.Time, viewpoint domain.Viewpoint) ([]domain.ExpandedEntry, error) {
	holidays, err := s.holidaySet(ctx, from, to)
	if err != nil {
		return nil, err
	}

	entries := []domain.ExpandedEntry{}
	for _, assignment := range assignments {
		entries = append(entries, s.expandCached(ctx, assignment, from, to, holidays, viewpoint)...)
	}

	s.logger.Debug("entries.expand.finished", out.LogFields{
		"assignmentsCount": len(assignments),
		"entriesCount":     len(entries),
	})

	return ApplyStatus(entries, now), nil
}

func (s *ScheduleExpanderService) WorkerSummary(ctx context.Context, workerID uuid.UUID, from, to, now time.Time) (*domain.RangeSummary, error) {
	entries, err := s.ExpandWorkerRange(ctx, workerID, from, to, now)
	if err != nil {
		return nil, err
	}

	summary := Summarize(entries, now)
	return &summary, nil
}

func (s *ScheduleExpanderService) InvalidateAssignment(ctx context.Context, assignmentID uuid.UUID) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateEntries(ctx, assignmentID)
	s.logger.Info("entries.cache.invalidated", out.LogFields{
		"assignmentId": assignmentID,
	})
	return nil
}

func (s *ScheduleExpanderService) InvalidateHolidays(ctx context.Context) error {
	if s.cachePort == nil {
		return nil
	}

	// Un festivo nuevo cambia la clasificación de días ya expandidos,
	// así que también se tiran todos los tramos cacheados
	s.cachePort.InvalidateHolidaySet(ctx)
	s.cachePort.InvalidateAllEntries(ctx)
	s.logger.Info("holidays.cache.invalidated", out.LogFields{})
	return nil
}

func (s *ScheduleExpanderService) InvalidateAll(ctx context.Context) error {
	if s.cachePort == nil {
		return nil
	}

	s.cachePort.InvalidateAllEntries(ctx)
	s.cachePort.InvalidateHolidaySet(ctx)
	s.logger.Info("cache.invalidated_all", out.LogFields{})
	return nil
}
