package domain

import (
	"encoding/json"
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/json_types"
)

type TimeSlot struct {
	Start json_types.ClockTime `json:"start"`
	End   json_types.ClockTime `json:"end"`
}

type DaySchedule struct {
	Enabled   bool       `json:"enabled"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

type HolidaySchedule struct {
	Enabled   bool       `json:"enabled"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// Schedule es la plantilla semanal ya normalizada: siempre tiene las 7 claves
// de día y solo slots válidos con horas rellenadas a dos dígitos
type Schedule struct {
	Week    map[string]DaySchedule `json:"week"`
	Holiday HolidaySchedule        `json:"holiday"`
}

var WeekdayNames = map[time.Weekday]string{
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
	time.Sunday:    "sunday",
}

var weekdayKeys = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// Day devuelve la plantilla del día; una clave ausente equivale a día deshabilitado sin slots
func (s Schedule) Day(name string) DaySchedule {
	if day, ok := s.Week[name]; ok {
		return day
	}
	return DaySchedule{Enabled: false, TimeSlots: []TimeSlot{}}
}

// EmptySchedule es el valor de degradación para datos históricos corruptos:
// todos los días deshabilitados y sin plantilla de festivos
func EmptySchedule() Schedule {
	week := make(map[string]DaySchedule, len(weekdayKeys))
	for _, key := range weekdayKeys {
		week[key] = DaySchedule{Enabled: false, TimeSlots: []TimeSlot{}}
	}
	return Schedule{
		Week:    week,
		Holiday: HolidaySchedule{Enabled: false, TimeSlots: []TimeSlot{}},
	}
}

// Formas crudas tal y como llegan de la base de datos. Todos los campos son
// tolerantes: un campo con forma inesperada se ignora, nunca rompe el parseo
type rawTimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type rawDaySchedule struct {
	Enabled   *bool           `json:"enabled"`
	TimeSlots json.RawMessage `json:"timeSlots"`
}

type rawHolidaySchedule struct {
	Enabled   *bool           `json:"enabled"`
	TimeSlots json.RawMessage `json:"timeSlots"`
}

// Forma legada: holiday_config.holiday_timeSlots en lugar de holiday.timeSlots
type rawHolidayConfig struct {
	Enabled          *bool           `json:"enabled"`
	HolidayTimeSlots json.RawMessage `json:"holiday_timeSlots"`
}

// ParseSchedule normaliza el horario almacenado, que puede venir como objeto,
// como cadena JSON o directamente corrupto. Nunca devuelve error: los datos
// malformados degradan a horario vacío para que el calendario siga pintándose
func ParseSchedule(raw json.RawMessage) Schedule {
	if len(raw) == 0 {
		return EmptySchedule()
	}

	// Horarios antiguos guardados como cadena: primero quitamos ese nivel
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		raw = json.RawMessage(asString)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return EmptySchedule()
	}

	schedule := EmptySchedule()

	for _, key := range weekdayKeys {
		dayRaw, ok := fields[key]
		if !ok {
			continue
		}

		var day rawDaySchedule
		if err := json.Unmarshal(dayRaw, &day); err != nil {
			continue
		}

		// enabled ausente cuenta como habilitado
		enabled := true
		if day.Enabled != nil {
			enabled = *day.Enabled
		}

		schedule.Week[key] = DaySchedule{
			Enabled:   enabled,
			TimeSlots: parseTimeSlots(day.TimeSlots),
		}
	}

	schedule.Holiday = parseHolidaySchedule(fields)

	return schedule
}

// ParseScheduleString es un atajo para columnas de texto
func ParseScheduleString(raw string) Schedule {
	return ParseSchedule(json.RawMessage(raw))
}

// parseHolidaySchedule unifica las dos formas legadas de slots de festivo.
// Si existen ambas, holiday_config.holiday_timeSlots tiene prioridad
func parseHolidaySchedule(fields map[string]json.RawMessage) HolidaySchedule {
	holiday := HolidaySchedule{Enabled: false, TimeSlots: []TimeSlot{}}

	if holidayRaw, ok := fields["holiday"]; ok {
		var parsed rawHolidaySchedule
		if err := json.Unmarshal(holidayRaw, &parsed); err == nil {
			holiday.Enabled = parsed.Enabled == nil || *parsed.Enabled
			holiday.TimeSlots = parseTimeSlots(parsed.TimeSlots)
		}
	}

	if configRaw, ok := fields["holiday_config"]; ok {
		var parsed rawHolidayConfig
		if err := json.Unmarshal(configRaw, &parsed); err == nil {
			slots := parseTimeSlots(parsed.HolidayTimeSlots)
			if len(slots) > 0 || parsed.Enabled != nil {
				holiday.Enabled = parsed.Enabled == nil || *parsed.Enabled
				holiday.TimeSlots = slots
			}
		}
	}

	return holiday
}

// parseTimeSlots descarta en silencio los slots con horas inválidas,
// el resto del día sigue siendo válido
func parseTimeSlots(raw json.RawMessage) []TimeSlot {
	slots := []TimeSlot{}

	if len(raw) == 0 {
		return slots
	}

	var rawSlots []rawTimeSlot
	if err := json.Unmarshal(raw, &rawSlots); err != nil {
		return slots
	}

	for _, rawSlot := range rawSlots {
		start, okStart := json_types.ParseClock(rawSlot.Start)
		end, okEnd := json_types.ParseClock(rawSlot.End)
		if !okStart || !okEnd {
			continue
		}
		slots = append(slots, TimeSlot{Start: start, End: end})
	}

	return slots
}
