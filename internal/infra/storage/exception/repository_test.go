package exception

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StylistBooking/internal/domain"
)

func TestBuildForDateQuery(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	query, args, err := buildForDateQuery("stylist-1", monday).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "stylist_id = $1")
	assert.Contains(t, query, "((is_recurring = $2 AND date = $3) OR (is_recurring = $4 AND recurring_day_of_week = $5))")
	assert.Equal(t, []interface{}{"stylist-1", false, "2026-03-02", true, 1}, args)
}

func TestBuildListQuery_RangeKeepsRecurring(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	query, args, err := buildListQuery(domain.ExceptionFilter{StylistID: "s", From: &from, To: &to}).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "(is_recurring = $2 OR (is_recurring = $3 AND date >= $4 AND date <= $5))")
	assert.Equal(t, []interface{}{"s", true, false, "2026-03-01", "2026-03-31"}, args)
}

func TestBuildListQuery_NoRange(t *testing.T) {
	query, args, err := buildListQuery(domain.ExceptionFilter{StylistID: "s"}).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "is_recurring =")
	assert.Equal(t, []interface{}{"s"}, args)
}

func TestOptionalTime(t *testing.T) {
	got := optionalTime("12:30")
	require.NotNil(t, got)
	assert.Equal(t, "12:30", got.String())

	assert.Nil(t, optionalTime(""))
}
