package schedule_expander_service

import (
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/domain"
)

// ClassifyDate clasifica el día frente al calendario laboral:
// fin de semana, festivo oficial y la combinación de ambos
func ClassifyDate(date time.Time, holidays domain.HolidaySet) domain.DayContext {
	weekday := date.Weekday()
	isWeekend := weekday == time.Saturday || weekday == time.Sunday
	isHoliday := holidays.Contains(date)

	return domain.DayContext{
		IsWeekend:         isWeekend,
		IsOfficialHoliday: isHoliday,
		IsNonWorking:      isWeekend || isHoliday,
	}
}

// IsEligible decide si el tipo de asignación presta servicio en ese contexto.
// Un tipo desconocido cae en la regla de laborables, la más conservadora
func IsEligible(assignmentType domain.AssignmentType, nonWorking bool) bool {
	switch assignmentType {
	case domain.AssignmentTypeLaborables:
		return !nonWorking
	case domain.AssignmentTypeFestivos:
		return nonWorking
	case domain.AssignmentTypeFlexible, domain.AssignmentTypeCompleta, domain.AssignmentTypeDaily:
		return true
	}
	return !nonWorking
}

// slotsForDate selecciona la plantilla que manda en la fecha.
// En días no laborables la plantilla de festivos tiene preferencia para
// cualquier tipo elegible, no solo para festivos; si está vacía se cae a la
// plantilla del día de semana siempre que ese día esté habilitado
func slotsForDate(schedule domain.Schedule, dayContext domain.DayContext, weekdayName string) []domain.TimeSlot {
	day := schedule.Day(weekdayName)

	if dayContext.IsNonWorking {
		if schedule.Holiday.Enabled && len(schedule.Holiday.TimeSlots) > 0 {
			return schedule.Holiday.TimeSlots
		}
		if day.Enabled {
			return day.TimeSlots
		}
		return nil
	}

	if !day.Enabled {
		return nil
	}
	return day.TimeSlots
}
