package datetime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
		ok    bool
	}{
		{"iso date", "2025-12-02", "2025-12-02", true},
		{"iso datetime", "2025-12-02T08:30:00", "2025-12-02", true},
		{"space separated datetime", "2025-12-02 08:30:00", "2025-12-02", true},
		{"unpadded string", "2025-1-5", "2025-01-05", true},
		{"triple", []any{float64(2025), float64(12), float64(2)}, "2025-12-02", true},
		{"sextuple", []any{float64(2025), float64(3), float64(9), float64(8), float64(30), float64(0)}, "2025-03-09", true},
		{"int slice", []int{2024, 2, 29}, "2024-02-29", true},
		{"invalid leap day", []int{2025, 2, 29}, "", false},
		{"month out of range", "2025-13-01", "", false},
		{"short array", []any{float64(2025), float64(12)}, "", false},
		{"fractional element", []any{float64(2025), 1.5, float64(2)}, "", false},
		{"garbage", "yesterday", "", false},
		{"empty", "", "", false},
		{"nil", nil, "", false},
		{"wrong type", map[string]any{"y": 2025}, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := NormalizeDate(c.input)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestNormalizeDateEncodingsAgree(t *testing.T) {
	for _, month := range []int{1, 6, 12} {
		for _, day := range []int{1, 9, 28} {
			fromArray, ok := NormalizeDate([]int{2026, month, day})
			require.True(t, ok)
			fromString, ok := NormalizeDate(time.Date(2026, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(DateLayout))
			require.True(t, ok)
			assert.Equal(t, fromString, fromArray)
		}
	}
}

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  string
		ok    bool
	}{
		{"pair", []any{float64(8), float64(30)}, "08:30", true},
		{"with seconds", []any{float64(17), float64(5), float64(59)}, "17:05", true},
		{"datetime array", []any{float64(2025), float64(12), float64(2), float64(9), float64(0)}, "09:00", true},
		{"clock string", "09:00", "09:00", true},
		{"clock with seconds", "09:00:15", "09:00", true},
		{"unpadded", "8:05", "08:05", true},
		{"datetime string", "2025-12-02T08:30:00", "08:30", true},
		{"datetime with zone", "2025-12-02T08:30:00+01:00", "08:30", true},
		{"date only", "2025-12-02", "", false},
		{"hour out of range", "24:00", "", false},
		{"minute out of range", []int{10, 60}, "", false},
		{"single element", []int{9}, "", false},
		{"with nanos", []any{float64(8), float64(30), float64(15), float64(123456789)}, "08:30", true},
		{"with nanos int slice", []int{17, 30, 1, 5000}, "17:30", true},
		{"nil", nil, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := NormalizeTime(c.input)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDateAndClockUnmarshal(t *testing.T) {
	var payload struct {
		A Date  `json:"a"`
		B Date  `json:"b"`
		C Date  `json:"c"`
		D Clock `json:"d"`
		E Clock `json:"e"`
		F Clock `json:"f"`
	}
	raw := `{"a":[2025,12,2],"b":"2025-12-02T08:30:00","c":{"bad":true},"d":[8,30,15,123456789],"e":"2025-12-02T17:45:00","f":null}`

	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	assert.Equal(t, Date("2025-12-02"), payload.A)
	assert.Equal(t, Date("2025-12-02"), payload.B)
	assert.Equal(t, Date(""), payload.C)
	assert.Equal(t, Clock("08:30"), payload.D)
	assert.Equal(t, Clock("17:45"), payload.E)
	assert.Nil(t, payload.F.Ptr())
}

func TestMinutes(t *testing.T) {
	m, ok := Minutes("17:30")
	require.True(t, ok)
	assert.Equal(t, 17*60+30, m)

	_, ok = Minutes("noon")
	assert.False(t, ok)
}

func TestCalendarHelpers(t *testing.T) {
	days := MonthDays(2024, time.February)
	assert.Len(t, days, 29)
	assert.Equal(t, "2024-02-01", days[0])
	assert.Equal(t, "2024-02-29", days[28])

	first, last := MonthBounds(2026, time.March)
	assert.Equal(t, "2026-03-01", first)
	assert.Equal(t, "2026-03-31", last)

	assert.True(t, IsWeekend("2026-03-14"))
	assert.True(t, IsWeekend("2026-03-15"))
	assert.False(t, IsWeekend("2026-03-16"))
	assert.False(t, IsWeekend("not-a-date"))

	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-10", Today(now, loc))
	assert.Equal(t, "2026-03-09", Today(now, nil))
}
