package domain

import (
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/json_types"
	"github.com/google/uuid"
)

type EntryStatus string

const (
	EntryStatusPending    EntryStatus = "pending"
	EntryStatusInProgress EntryStatus = "in-progress"
	EntryStatusCompleted  EntryStatus = "completed"
)

// Rank ordena los estados para los listados: lo que está en curso va primero
func (s EntryStatus) Rank() int {
	switch s {
	case EntryStatusInProgress:
		return 0
	case EntryStatusPending:
		return 1
	case EntryStatusCompleted:
		return 2
	}
	return 3
}

// ExpandedEntry es la unidad de salida del motor: un tramo concreto de servicio
// en una fecha concreta. Se recalcula en cada consulta, nunca se persiste
type ExpandedEntry struct {
	AssignmentID  uuid.UUID            `json:"assignmentId"`
	CounterpartID uuid.UUID            `json:"counterpartId"`
	Counterpart   string               `json:"counterpart"`
	Date          time.Time            `json:"date"`
	Start         json_types.ClockTime `json:"start"`
	End           json_types.ClockTime `json:"end"`
	Status        EntryStatus          `json:"status,omitempty"`
}

// RangeSummary alimenta las tarjetas de estadísticas y el coloreado de celdas
type RangeSummary struct {
	TotalHours           float64                `json:"totalHours"`
	EntryCount           int                    `json:"entryCount"`
	DistinctCounterparts int                    `json:"distinctCounterparts"`
	Days                 map[string]EntryStatus `json:"days"`
}
