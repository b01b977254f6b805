package out

import (
	"context"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/domain"
	"github.com/google/uuid"
)

type StorePort interface {
	// Métodos para trabajar con asignaciones
	GetAssignment(ctx context.Context, assignmentID uuid.UUID) (*domain.Assignment, error)
	GetAssignmentsByWorker(ctx context.Context, workerID uuid.UUID) ([]domain.Assignment, error)
	GetAssignmentsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Assignment, error)

	// Métodos para trabajar con el calendario de festivos
	GetHolidays(ctx context.Context, years []int) ([]domain.Holiday, error)
}
