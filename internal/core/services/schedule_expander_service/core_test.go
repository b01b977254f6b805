package schedule_expander_service

import (
	"testing"
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssignment(assignmentType domain.AssignmentType, rawSchedule string) domain.Assignment {
	return domain.Assignment{
		ID:         uuid.MustParse("7f6c1a9e-0001-4a00-8000-000000000001"),
		Type:       assignmentType,
		WorkerID:   uuid.MustParse("7f6c1a9e-0002-4a00-8000-000000000002"),
		WorkerName: "Carmen",
		UserID:     uuid.MustParse("7f6c1a9e-0003-4a00-8000-000000000003"),
		UserName:   "Antonio",
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Schedule:   domain.ParseScheduleString(rawSchedule),
	}
}

func TestExpandWeekdayTemplate(t *testing.T) {
	assignment := testAssignment(domain.AssignmentTypeLaborables, `{
		"monday": {"enabled": true, "timeSlots": [{"start": "09:00", "end": "13:00"}, {"start": "15:00", "end": "17:00"}]},
		"tuesday": {"enabled": true, "timeSlots": [{"start": "09:00", "end": "13:00"}]}
	}`)

	// Semana del lunes 2 al domingo 8 de junio de 2025, sin festivos
	from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)

	entries := Expand(assignment, from, to, nil, domain.ViewpointWorker)

	require.Len(t, entries, 3)
	// Orden de fecha, y dentro del día el orden de la plantilla
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), entries[0].Date)
	assert.Equal(t, "09:00", entries[0].Start.String())
	assert.Equal(t, "15:00", entries[1].Start.String())
	assert.Equal(t, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), entries[2].Date)

	// La vista de trabajadora muestra al usuario como contraparte
	for _, entry := range entries {
		assert.Equal(t, assignment.ID, entry.AssignmentID)
		assert.Equal(t, assignment.UserID, entry.CounterpartID)
		assert.Equal(t, "Antonio", entry.Counterpart)
	}
}

func TestExpandViewpointUser(t *testing.T) {
	assignment := testAssignment(domain.AssignmentTypeLaborables, `{
		"monday": {"enabled": true, "timeSlots": [{"start": "09:00", "end": "13:00"}]}
	}`)

	date := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	entries := ExpandDay(assignment, date, nil, domain.ViewpointUser)

	require.Len(t, entries, 1)
	assert.Equal(t, assignment.WorkerID, entries[0].CounterpartID)
	assert.Equal(t, "Carmen", entries[0].Counterpart)
}

func TestExpandOutsideActiveWindow(t *testing.T) {
	assignment := testAssignment(domain.AssignmentTypeFlexible, `{
		"monday": {"enabled": true, "timeSlots": [{"start": "09:00", "end": "13:00"}]}
	}`)
	assignment.StartDate = time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	assignment.EndDate = time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	// El lunes 2 queda fuera del periodo de la asignación
	entries := ExpandDay(assignment, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), nil, domain.ViewpointWorker)
	assert.Empty(t, entries)

	// Y también el lunes 9, ya terminada
	entries = ExpandDay(assignment, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), nil, domain.ViewpointWorker)
	assert.Empty(t, entries)
}

func TestExpandLaborablesSkipsNonWorking(t *testing.T) {
	assignment := testAssignment(domain.AssignmentTypeLaborables, `{
		"monday": {"enabled": true, "timeSlots": [{"start": "09:00", "end": "13:00"}]},
		"saturday": {"enabled": true, "timeSlots": [{"start": "09:00", "end": "13:00"}]},
		"holiday": {"enabled": true, "timeSlots": [{"start": "10:00", "end": "12:00"}]}
	}`)

	holidays := domain.NewHolidaySet([]domain.Holiday{{Day: 2, Month: 6, Year: 2025}})

	// Sábado: contexto no laborable, laborables no presta servicio
	entries := ExpandDay(assignment, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), nil, domain.ViewpointWorker)
	assert.Empty(t, entries)

	// Lunes festivo: tampoco, aunque el lunes esté habilitado
	entries = ExpandDay(assignment, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), holidays, domain.ViewpointWorker)
	assert.Empty(t, entries)
}

func TestExpandFestivosSkipsWorkingDays(t *testing.T) {
	assignment := testAssignment(domain.AssignmentTypeFestivos, `{
		"monday": {"enabled": true, "timeSlots": [{"start": "09:00", "end": "13:00"}]},
		"holiday": {"enabled": true, "timeSlots": [{"start": "10:00", "end": "13:00"}]}
	}`)

	// Lunes normal: festivos no presta servicio
	entries := ExpandDay(assignment, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), nil, domain.ViewpointWorker)
	assert.Empty(t, entries)
}

func TestExpandLaborablesDisabledMonday(t *testing.T) {
	// Lunes deshabilitado: cero tramos aunque laborables sea elegible entre semana
	assignment := testAssignment(domain.AssignmentTypeLaborables, `{
		"monday": {"enabled": false, "timeSlots": [{"start": "09:00", "end": "13:00"}]}
	}`)

	entries := ExpandDay(assignment, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), nil, domain.ViewpointWorker)
	assert.Empty(t, entries)
}

func TestExpandFlexibleWeekendPrefersHolidayTemplate(t *testing.T) {
	// Tipo flexible, sábado que no es festivo oficial: el fin de semana fuerza
	// la preferencia por la plantilla de festivos para cualquier tipo elegible
	assignment := testAssignment(domain.AssignmentTypeFlexible, `{
		"monday": {"enabled": true, "timeSlots": [{"start": "09:00", "end": "13:00"}]},
		"holiday": {"enabled": true, "timeSlots": [{"start": "10:00", "end": "12:00"}]}
	}`)

	entries := ExpandDay(assignment, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), nil, domain.ViewpointWorker)

	require.Len(t, entries, 1)
	assert.Equal(t, "10:00", entries[0].Start.String())
	assert.Equal(t, "12:00", entries[0].End.String())
	assert.InDelta(t, 2.0, AggregateHours(entries), 1e-9)
}

func TestExpandFestivosMonth(t *testing.T) {
	// Junio 2025, 30 días, un festivo oficial el martes 10. La asignación solo
	// está activa esa semana laborable, así que los fines de semana no aportan
	assignment := testAssignment(domain.AssignmentTypeFestivos, `{
		"holiday": {"enabled": true, "timeSlots": [{"start": "10:00", "end": "13:00"}]}
	}`)
	assignment.StartDate = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	assignment.EndDate = time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)

	holidays := domain.NewHolidaySet([]domain.Holiday{{Day: 10, Month: 6, Year: 2025}})

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	entries := Expand(assignment, from, to, holidays, domain.ViewpointWorker)

	require.Len(t, entries, 1)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), entries[0].Date)
	assert.InDelta(t, 3.0, AggregateHours(entries), 1e-9)
}

func TestExpandIdempotent(t *testing.T) {
	assignment := testAssignment(domain.AssignmentTypeCompleta, `{
		"monday": {"enabled": true, "timeSlots": [{"start": "08:00", "end": "15:00"}]},
		"wednesday": {"enabled": true, "timeSlots": [{"start": "08:00", "end": "15:00"}]},
		"holiday": {"enabled": true, "timeSlots": [{"start": "09:00", "end": "12:00"}]}
	}`)

	holidays := domain.NewHolidaySet([]domain.Holiday{{Day: 4, Month: 6, Year: 2025}})
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	first := Expand(assignment, from, to, holidays, domain.ViewpointWorker)
	second := Expand(assignment, from, to, holidays, domain.ViewpointWorker)

	assert.Equal(t, first, second)
}

func TestExpandNoDeduplication(t *testing.T) {
	// Dos slots solapados del mismo día aparecen ambos
	assignment := testAssignment(domain.AssignmentTypeLaborables, `{
		"monday": {"enabled": true, "timeSlots": [{"start": "09:00", "end": "13:00"}, {"start": "11:00", "end": "14:00"}]}
	}`)

	entries := ExpandDay(assignment, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), nil, domain.ViewpointWorker)
	assert.Len(t, entries, 2)
}
