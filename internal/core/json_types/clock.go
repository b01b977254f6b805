package json_types

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var clockPattern = regexp.MustCompile(`^\d{1,2}:\d{1,2}$`)

// ClockTime representa una hora del día "HH:MM" sin fecha ni zona horaria
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClock acepta "H:M", "H:MM", "HH:M" y "HH:MM" y normaliza a hora/minuto.
// Devuelve false para cualquier entrada fuera de rango o no parseable, nunca lanza panic
func ParseClock(str string) (ClockTime, bool) {
	str = strings.TrimSpace(str)
	if !clockPattern.MatchString(str) {
		return ClockTime{}, false
	}

	parts := strings.Split(str, ":")
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, false
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, false
	}

	return ClockTime{Hour: hour, Minute: minute}, true
}

// Minutes devuelve los minutos desde medianoche
func (t ClockTime) Minutes() int {
	return t.Hour*60 + t.Minute
}

// String devuelve la forma normalizada con ceros a la izquierda, "08:00"
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t *ClockTime) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	parsed, ok := ParseClock(str)
	if !ok {
		return fmt.Errorf("failed to parse clock time: %q", str)
	}
	*t = parsed
	return nil
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
