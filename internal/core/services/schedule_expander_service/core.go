package schedule_expander_service

import (
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/domain"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/utils"
)

// Expand genera los tramos concretos de una asignación dentro del rango
// inclusivo [from, to]. Es una computación pura: no lee el reloj ni hace I/O,
// el llamante aporta el calendario de festivos ya cargado.
//
// Por cada fecha del rango:
//  1. Se descarta si la asignación aún no está activa o ya terminó
//  2. Se clasifica el día frente al calendario laboral
//  3. Se resuelve la elegibilidad del tipo de asignación
//  4. Se selecciona la plantilla que manda (festivos o día de semana)
//  5. Se emite un tramo por cada slot superviviente
//
// No se deduplica: dos slots solapados del mismo día aparecen ambos
func Expand(assignment domain.Assignment, from, to time.Time, holidays domain.HolidaySet, viewpoint domain.Viewpoint) []domain.ExpandedEntry {
	entries := []domain.ExpandedEntry{}

	counterpartID, counterpartName := assignment.Counterpart(viewpoint)

	start := utils.StartCurrentDay(from)
	end := utils.StartCurrentDay(to)

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if !assignment.ActiveOn(date) {
			continue
		}

		dayContext := ClassifyDate(date, holidays)

		if !IsEligible(assignment.Type, dayContext.IsNonWorking) {
			continue
		}

		weekdayName := domain.WeekdayNames[date.Weekday()]
		for _, slot := range slotsForDate(assignment.Schedule, dayContext, weekdayName) {
			entries = append(entries, domain.ExpandedEntry{
				AssignmentID:  assignment.ID,
				CounterpartID: counterpartID,
				Counterpart:   counterpartName,
				Date:          date,
				Start:         slot.Start,
				End:           slot.End,
			})
		}
	}

	return entries
}

// ExpandDay es la expansión de un único día natural
func ExpandDay(assignment domain.Assignment, date time.Time, holidays domain.HolidaySet, viewpoint domain.Viewpoint) []domain.ExpandedEntry {
	return Expand(assignment, date, date, holidays, viewpoint)
}
