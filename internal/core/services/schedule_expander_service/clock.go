package schedule_expander_service

import (
	"time"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/domain"
)

// SlotDurationHours devuelve la duración del tramo en horas. Los tramos con
// fin anterior o igual al inicio aportan cero, no restan del total
func SlotDurationHours(slot domain.TimeSlot) float64 {
	minutes := slot.End.Minutes() - slot.Start.Minutes()
	if minutes < 0 {
		minutes = 0
	}
	return float64(minutes) / 60
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
