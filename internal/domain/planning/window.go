package planning

import (
	"fmt"
	"time"
)

// YearMonth identifica un mes calendario.
type YearMonth struct {
	Year  int
	Month int // 1–12
}

// Label devuelve la etiqueta "YYYY-MM" del mes.
func (ym YearMonth) Label() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// LastCalendarMonths devuelve los n meses calendario que terminan en el mes
// de from, más reciente primero. El mes de from cuenta como mes 1 de la
// ventana y el retroceso cruza límites de año.
func LastCalendarMonths(from time.Time, n int) []YearMonth {
	y, m := from.Year(), int(from.Month())
	out := make([]YearMonth, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, YearMonth{Year: y, Month: m})
		m--
		if m == 0 {
			m = 12
			y--
		}
	}
	return out
}
