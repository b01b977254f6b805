package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheduleObject(t *testing.T) {
	raw := `{
		"monday": {"enabled": true, "timeSlots": [{"start": "8:0", "end": "16:00"}]},
		"tuesday": {"enabled": false, "timeSlots": [{"start": "09:00", "end": "13:00"}]}
	}`

	schedule := ParseScheduleString(raw)

	monday := schedule.Day("monday")
	require.True(t, monday.Enabled)
	require.Len(t, monday.TimeSlots, 1)
	// Normalización con ceros a la izquierda
	assert.Equal(t, "08:00", monday.TimeSlots[0].Start.String())
	assert.Equal(t, "16:00", monday.TimeSlots[0].End.String())

	tuesday := schedule.Day("tuesday")
	assert.False(t, tuesday.Enabled)
	assert.Len(t, tuesday.TimeSlots, 1)

	// Día ausente: deshabilitado y sin slots
	sunday := schedule.Day("sunday")
	assert.False(t, sunday.Enabled)
	assert.Empty(t, sunday.TimeSlots)
}

func TestParseScheduleStringified(t *testing.T) {
	// Horarios antiguos guardados como cadena JSON dentro de la columna
	inner := `{"monday": {"enabled": true, "timeSlots": [{"start": "09:00", "end": "11:00"}]}}`
	wrapped, err := json.Marshal(inner)
	require.NoError(t, err)

	schedule := ParseSchedule(wrapped)
	require.Len(t, schedule.Day("monday").TimeSlots, 1)
}

func TestParseScheduleMalformed(t *testing.T) {
	for _, raw := range []string{"", "not json at all", "[1,2,3]", "42", `"{broken`} {
		schedule := ParseScheduleString(raw)
		for _, key := range weekdayKeys {
			day := schedule.Day(key)
			assert.False(t, day.Enabled, "raw %q day %s", raw, key)
			assert.Empty(t, day.TimeSlots)
		}
		assert.False(t, schedule.Holiday.Enabled)
	}
}

func TestParseScheduleEnabledDefaultsTrue(t *testing.T) {
	raw := `{"wednesday": {"timeSlots": [{"start": "10:00", "end": "12:00"}]}}`

	schedule := ParseScheduleString(raw)

	wednesday := schedule.Day("wednesday")
	assert.True(t, wednesday.Enabled)
	assert.Len(t, wednesday.TimeSlots, 1)
}

func TestParseScheduleDropsInvalidSlots(t *testing.T) {
	raw := `{"friday": {"enabled": true, "timeSlots": [
		{"start": "25:00", "end": "26:00"},
		{"start": "garbage", "end": "12:00"},
		{"start": "09:00", "end": "13:00"}
	]}}`

	schedule := ParseScheduleString(raw)

	friday := schedule.Day("friday")
	require.Len(t, friday.TimeSlots, 1)
	assert.Equal(t, "09:00", friday.TimeSlots[0].Start.String())
}

func TestParseScheduleHolidayLegacyShapes(t *testing.T) {
	// Forma antigua: holiday.timeSlots
	raw := `{"holiday": {"enabled": true, "timeSlots": [{"start": "10:00", "end": "12:00"}]}}`
	schedule := ParseScheduleString(raw)
	require.True(t, schedule.Holiday.Enabled)
	require.Len(t, schedule.Holiday.TimeSlots, 1)
	assert.Equal(t, "10:00", schedule.Holiday.TimeSlots[0].Start.String())

	// Forma nueva: holiday_config.holiday_timeSlots
	raw = `{"holiday_config": {"enabled": true, "holiday_timeSlots": [{"start": "11:00", "end": "14:00"}]}}`
	schedule = ParseScheduleString(raw)
	require.Len(t, schedule.Holiday.TimeSlots, 1)
	assert.Equal(t, "11:00", schedule.Holiday.TimeSlots[0].Start.String())

	// Con ambas presentes gana holiday_config
	raw = `{
		"holiday": {"enabled": true, "timeSlots": [{"start": "10:00", "end": "12:00"}]},
		"holiday_config": {"enabled": true, "holiday_timeSlots": [{"start": "15:00", "end": "17:00"}]}
	}`
	schedule = ParseScheduleString(raw)
	require.Len(t, schedule.Holiday.TimeSlots, 1)
	assert.Equal(t, "15:00", schedule.Holiday.TimeSlots[0].Start.String())
}

func TestParseScheduleSlotsNotAList(t *testing.T) {
	raw := `{"monday": {"enabled": true, "timeSlots": {"start": "09:00"}}}`

	schedule := ParseScheduleString(raw)

	monday := schedule.Day("monday")
	assert.True(t, monday.Enabled)
	assert.Empty(t, monday.TimeSlots)
}
