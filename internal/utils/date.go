package utils

import (
	"fmt"
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/config"
)

// StartCurrentDay devuelve la misma fecha con la hora puesta a 00:00,
// conservando la zona horaria
func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartNextDay devuelve la fecha con el día aumentado en 1 y la hora a 00:00
func StartNextDay(t time.Time) time.Time {
	newDate := t.AddDate(0, 0, 1)
	return time.Date(newDate.Year(), newDate.Month(), newDate.Day(), 0, 0, 0, 0, newDate.Location())
}

// YearsInRange devuelve los años naturales que abarca el rango inclusivo,
// para precargar el calendario de festivos de una sola vez
func YearsInRange(from, to time.Time) []int {
	years := []int{}
	for year := from.Year(); year <= to.Year(); year++ {
		years = append(years, year)
	}
	return years
}

// ParseDate parsea una fecha en formato RFC3339; si no puede, prueba fecha con
// hora sin zona horaria y después fecha sin hora, con la zona del config
func ParseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	if err != nil {
		location := config.TimeZone
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			parsedDate, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
			}
		}
	}

	return parsedDate, nil
}
