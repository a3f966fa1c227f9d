package pos_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/pos"
)

func TestPeriodRange(t *testing.T) {
	// Miércoles 13/05/2026 15:30
	now := time.Date(2026, 5, 13, 15, 30, 0, 0, time.UTC)

	from, to, err := pos.PeriodRange(pos.PeriodToday, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 13, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), to)

	from, _, err = pos.PeriodRange(pos.PeriodWeek, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), from, "la semana empieza el domingo")

	from, to, err = pos.PeriodRange(pos.PeriodMonth, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, 31, to.Day())

	from, to, err = pos.PeriodRange(pos.PeriodAll, now)
	require.NoError(t, err)
	assert.True(t, from.IsZero() && to.IsZero())

	_, _, err = pos.PeriodRange("year", now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLastDays(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	days := pos.LastDays(7, now)
	require.Len(t, days, 7)
	assert.Equal(t, time.Date(2026, 2, 24, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), days[6])
}
