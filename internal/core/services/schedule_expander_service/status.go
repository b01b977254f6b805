package schedule_expander_service

import (
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/domain"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/utils"
)

// ClassifyEntry deriva el estado del tramo frente a "ahora".
// Primero se compara el día natural; si es hoy, se compara el minuto del día
// contra [inicio, fin): dentro en curso, antes pendiente, al llegar al fin completado
func ClassifyEntry(entry domain.ExpandedEntry, now time.Time) domain.EntryStatus {
	entryDay := utils.StartCurrentDay(entry.Date)
	nowDay := utils.StartCurrentDay(now.In(entry.Date.Location()))

	if entryDay.Before(nowDay) {
		return domain.EntryStatusCompleted
	}
	if entryDay.After(nowDay) {
		return domain.EntryStatusPending
	}

	minute := minuteOfDay(now.In(entry.Date.Location()))
	// El fin se comprueba primero para que los tramos de duración cero o
	// negativa queden completados de forma determinista
	if minute >= entry.End.Minutes() {
		return domain.EntryStatusCompleted
	}
	if minute < entry.Start.Minutes() {
		return domain.EntryStatusPending
	}
	return domain.EntryStatusInProgress
}

// ApplyStatus devuelve una copia de los tramos con el estado rellenado
func ApplyStatus(entries []domain.ExpandedEntry, now time.Time) []domain.ExpandedEntry {
	result := make([]domain.ExpandedEntry, 0, len(entries))
	for _, entry := range entries {
		entry.Status = ClassifyEntry(entry, now)
		result = append(result, entry)
	}
	return result
}

// ClassifyDayEntries agrega el estado de un día completo: completado solo si
// todo está completado, en curso si algo está en curso, pendiente en el resto.
// Un día sin tramos cuenta como pendiente por convenio
func ClassifyDayEntries(entries []domain.ExpandedEntry, now time.Time) domain.EntryStatus {
	if len(entries) == 0 {
		return domain.EntryStatusPending
	}

	allCompleted := true
	for _, entry := range entries {
		switch ClassifyEntry(entry, now) {
		case domain.EntryStatusInProgress:
			return domain.EntryStatusInProgress
		case domain.EntryStatusPending:
			allCompleted = false
		}
	}

	if allCompleted {
		return domain.EntryStatusCompleted
	}
	return domain.EntryStatusPending
}

// AggregateHours suma las horas de todos los tramos para los resúmenes
// semanales y mensuales
func AggregateHours(entries []domain.ExpandedEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		total += SlotDurationHours(domain.TimeSlot{Start: entry.Start, End: entry.End})
	}
	return total
}

// CountCounterparts cuenta contrapartes distintas por identificador,
// para las métricas de usuarios/trabajadoras activas
func CountCounterparts(entries []domain.ExpandedEntry) int {
	seen := make(map[string]struct{})
	for _, entry := range entries {
		seen[entry.CounterpartID.String()] = struct{}{}
	}
	return len(seen)
}

// Summarize produce el resumen del rango: totales y estado por día
func Summarize(entries []domain.ExpandedEntry, now time.Time) domain.RangeSummary {
	byDay := make(map[string][]domain.ExpandedEntry)
	for _, entry := range entries {
		key := entry.Date.Format("2006-01-02")
		byDay[key] = append(byDay[key], entry)
	}

	days := make(map[string]domain.EntryStatus, len(byDay))
	for key, dayEntries := range byDay {
		days[key] = ClassifyDayEntries(dayEntries, now)
	}

	return domain.RangeSummary{
		TotalHours:           AggregateHours(entries),
		EntryCount:           len(entries),
		DistinctCounterparts: CountCounterparts(entries),
		Days:                 days,
	}
}
