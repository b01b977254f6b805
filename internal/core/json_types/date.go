package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

func parseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Si no se puede, probamos fecha con hora pero sin zona horaria
	// Por defecto usamos UTC+1 para fechas sin zona
	if err != nil {
		location := time.FixedZone("UTC+1", 1*60*60)
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			// Si tampoco, probamos como fecha sin hora
			parsedDate, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse date: %v", err)
			}
		}
	}

	return parsedDate, nil
}

type Date struct {
	Date time.Time
}

func (t *Date) UnmarshalJSON(data []byte) error {
	// Las filas vienen de datos alojados con cualquier forma: si el valor
	// no es una cadena se devuelve error en vez de romper el decodificado
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("failed to parse date: %v", err)
	}

	parsedDate, err := parseDate(str)
	if err != nil {
		return err
	}

	*t = Date{Date: parsedDate}
	return nil
}

func (t Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format("2006-01-02"))
}

type DateOrEmpty struct {
	Date time.Time
}

func (t *DateOrEmpty) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	d := Date{}
	err := d.UnmarshalJSON(data)
	if err != nil {
		return err
	}

	*t = DateOrEmpty{Date: d.Date}
	return nil
}

func (t DateOrEmpty) MarshalJSON() ([]byte, error) {
	if t.Date.IsZero() {
		return json.Marshal(nil)
	}

	return json.Marshal(t.Date.Format("2006-01-02"))
}
