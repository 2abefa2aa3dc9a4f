package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	assert.Equal(t, Condition{Description: "clear sky", Glyph: "☀️"}, Describe("01d"))
	assert.Equal(t, Condition{Description: "clear sky", Glyph: "🌙"}, Describe("01n"))
	assert.Equal(t, "thunderstorm", Describe("11d").Description)
	assert.Equal(t, "❄️", Describe("13n").Glyph)

	unknown := Describe("unknown_code")
	assert.Equal(t, FallbackGlyph, unknown.Glyph)
	assert.Empty(t, unknown.Description)
	assert.Equal(t, FallbackGlyph, Describe("").Glyph)
}

func TestDescribe_DayAndNightVariants(t *testing.T) {
	for _, code := range []string{"01", "02", "03", "04", "09", "10", "11", "13", "50"} {
		day, night := Describe(code+"d"), Describe(code+"n")
		assert.NotEmpty(t, day.Description, code)
		assert.Equal(t, day.Description, night.Description, code)
	}
}

func TestToLocalTime(t *testing.T) {
	ts := func(v int64) *int64 { return &v }

	tests := []struct {
		name   string
		epoch  *int64
		offset int
		want   string
	}{
		{name: "utc", epoch: ts(1700000000), offset: 0, want: "2023-11-14 10:13 PM"},
		{name: "east of utc crosses midnight", epoch: ts(1700000000), offset: 7200, want: "2023-11-15 12:13 AM"},
		{name: "west of utc", epoch: ts(1700000000), offset: -18000, want: "2023-11-14 05:13 PM"},
		{name: "unix zero", epoch: ts(0), offset: 0, want: "1970-01-01 12:00 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToLocalTime(tt.epoch, tt.offset)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestToLocalTime_Absent(t *testing.T) {
	assert.Nil(t, ToLocalTime(nil, 0))
	assert.Nil(t, ToLocalTime(nil, 3600))

	huge := int64(1) << 50
	assert.Nil(t, ToLocalTime(&huge, 0))
}
