package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestCurrentPeriod_Bands(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "enero - abril 2025: Ordinario"},
		{time.April, "enero - abril 2025: Ordinario"},
		{time.May, "mayo - agosto 2025: Ordinario"},
		{time.August, "mayo - agosto 2025: Ordinario"},
		{time.September, "septiembre - diciembre 2025: Ordinario"},
		{time.December, "septiembre - diciembre 2025: Ordinario"},
	}

	for _, tt := range tests {
		got := CurrentPeriod(date(2025, tt.month, 15), false)
		assert.Equal(t, tt.want, got, "mes %s", tt.month)
	}
}

func TestCurrentPeriod_Extraordinary(t *testing.T) {
	got := CurrentPeriod(date(2025, time.March, 1), true)
	assert.Equal(t, "enero - abril 2025: Extraordinario", got)
}

func TestCurrentPeriods_ReturnsBothVariants(t *testing.T) {
	periods := CurrentPeriods(date(2024, time.February, 10))

	assert.Equal(t, []string{
		"enero - abril 2024: Ordinario",
		"enero - abril 2024: Extraordinario",
	}, periods)
}

// Al cruzar de abril a mayo cambia el conjunto de periodos vigentes.
func TestCurrentPeriods_AprilMayBoundary(t *testing.T) {
	april := CurrentPeriods(date(2024, time.April, 30))
	may := CurrentPeriods(date(2024, time.May, 1))

	assert.NotEqual(t, april, may)
	assert.Contains(t, april, "enero - abril 2024: Ordinario")
	assert.Contains(t, may, "mayo - agosto 2024: Ordinario")
}

func TestCurrentPeriod_YearChanges(t *testing.T) {
	assert.Equal(t, "septiembre - diciembre 2023: Ordinario", CurrentPeriod(date(2023, time.October, 5), false))
	assert.Equal(t, "enero - abril 2024: Ordinario", CurrentPeriod(date(2024, time.January, 5), false))
}
