package planning_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/stock-planner/internal/domain/planning"
)

func TestLastCalendarMonths_MesActualPrimero(t *testing.T) {
	from := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	got := planning.LastCalendarMonths(from, 3)

	assert.Equal(t, []planning.YearMonth{
		{Year: 2026, Month: 8},
		{Year: 2026, Month: 7},
		{Year: 2026, Month: 6},
	}, got)
}

// El retroceso debe cruzar el límite de año.
func TestLastCalendarMonths_CruzaAnio(t *testing.T) {
	from := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

	got := planning.LastCalendarMonths(from, 4)

	assert.Equal(t, []planning.YearMonth{
		{Year: 2026, Month: 1},
		{Year: 2025, Month: 12},
		{Year: 2025, Month: 11},
		{Year: 2025, Month: 10},
	}, got)
}

func TestYearMonth_Label(t *testing.T) {
	assert.Equal(t, "2026-08", planning.YearMonth{Year: 2026, Month: 8}.Label())
	assert.Equal(t, "2025-12", planning.YearMonth{Year: 2025, Month: 12}.Label())
	assert.Equal(t, "0999-01", planning.YearMonth{Year: 999, Month: 1}.Label())
}
