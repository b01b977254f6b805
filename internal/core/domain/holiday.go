package domain

import (
	"fmt"
	"time"
)

// Holiday identifica un día natural como festivo oficial, sea cual sea su día de semana
type Holiday struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (h Holiday) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", h.Year, h.Month, h.Day)
}

// HolidaySet es el índice de festivos precargado por el llamante para todo el
// rango consultado; el motor nunca consulta festivos por su cuenta
type HolidaySet map[string]struct{}

func NewHolidaySet(records []Holiday) HolidaySet {
	set := make(HolidaySet, len(records))
	for _, record := range records {
		set[record.Key()] = struct{}{}
	}
	return set
}

func (s HolidaySet) Contains(date time.Time) bool {
	if s == nil {
		return false
	}
	_, ok := s[date.Format("2006-01-02")]
	return ok
}

// DayContext clasifica un día natural frente al calendario laboral
type DayContext struct {
	IsWeekend         bool `json:"isWeekend"`
	IsOfficialHoliday bool `json:"isOfficialHoliday"`
	IsNonWorking      bool `json:"isNonWorking"`
}
