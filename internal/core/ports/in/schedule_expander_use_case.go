package in

import (
	"context"
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/domain"
	"github.com/google/uuid"
)

type ScheduleExpanderUseCase interface {
	// Expansión de una asignación en un rango de fechas, en orden de fecha
	ExpandAssignment(ctx context.Context, assignmentID uuid.UUID, from, to, now time.Time) ([]domain.ExpandedEntry, error)

	// Expansión de varias asignaciones a la vez
	ExpandBatch(ctx context.Context, assignmentIDs []uuid.UUID, from, to, now time.Time) (map[uuid.UUID][]domain.ExpandedEntry, error)

	// Listado del día de una trabajadora, ordenado para mostrar:
	// primero lo que está en curso
	ExpandWorkerDay(ctx context.Context, workerID uuid.UUID, date, now time.Time) ([]domain.ExpandedEntry, error)

	// Rejillas semanal y mensual, en orden de fecha
	ExpandWorkerRange(ctx context.Context, workerID uuid.UUID, from, to, now time.Time) ([]domain.ExpandedEntry, error)
	ExpandUserRange(ctx context.Context, userID uuid.UUID, from, to, now time.Time) ([]domain.ExpandedEntry, error)

	// Resumen agregado para las tarjetas de estadísticas
	WorkerSummary(ctx context.Context, workerID uuid.UUID, from, to, now time.Time) (*domain.RangeSummary, error)

	// Invalidación de cachés cuando cambian asignaciones o festivos
	InvalidateAssignment(ctx context.Context, assignmentID uuid.UUID) error
	InvalidateHolidays(ctx context.Context) error
	InvalidateAll(ctx context.Context) error
}
