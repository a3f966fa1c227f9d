package pos

import (
	"time"

	"github.com/jhoicas/pdv-api/internal/domain"
)

// Periodos de consulta para historial y dashboard.
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

// PeriodRange devuelve [from, to] para el periodo relativo a now (zona horaria de now).
// La semana empieza el domingo. "all" o vacío devuelven tiempos cero (sin filtro).
func PeriodRange(period string, now time.Time) (from, to time.Time, err error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case PeriodToday:
		return dayStart, dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	case PeriodWeek:
		start := dayStart.AddDate(0, 0, -int(now.Weekday()))
		return start, start.AddDate(0, 0, 7).Add(-time.Nanosecond), nil
	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond), nil
	case PeriodAll, "":
		return time.Time{}, time.Time{}, nil
	}
	return time.Time{}, time.Time{}, domain.ErrInvalidInput
}

// LastDays devuelve el inicio de cada uno de los últimos n días, terminando hoy.
func LastDays(n int, now time.Time) []time.Time {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := make([]time.Time, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, dayStart.AddDate(0, 0, -i))
	}
	return out
}
