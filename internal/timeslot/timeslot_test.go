package timeslot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekday(t *testing.T) {
	wd, err := Weekday("2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)

	_, err = Weekday("03/06/2024")
	assert.Error(t, err)
}

func TestIsValidTime(t *testing.T) {
	assert.True(t, IsValidTime("09:30"))
	assert.True(t, IsValidTime("00:00"))
	assert.True(t, IsValidTime("23:59"))
	assert.True(t, IsValidTime(" 09:30 "), "trim antes de validar")

	assert.False(t, IsValidTime("9:30"), "sem zero-pad quebra ordenação")
	assert.False(t, IsValidTime("24:00"))
	assert.False(t, IsValidTime("09:30:00"))
	assert.False(t, IsValidTime(""))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-06-03"))
	assert.False(t, IsValidDate("2024-6-3"))
	assert.False(t, IsValidDate("2024-13-01"))
}

func TestSplitJoinList(t *testing.T) {
	got := SplitList("10:00, 09:30 ,09:00,09:30")
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, got)

	assert.Equal(t, "09:00,09:30,10:00", JoinList([]string{"10:00", " 09:00", "09:30"}))
	assert.Empty(t, SplitList(""))
}

func TestWeekWindowSundayStart(t *testing.T) {
	// 2024-06-05 é quarta; semana dom-sáb = [2024-06-02, 2024-06-08]
	start, end, err := WeekWindow("2024-06-05", time.Sunday)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-02", start)
	assert.Equal(t, "2024-06-08", end)

	// domingo já é o início da própria semana
	start, end, err = WeekWindow("2024-06-02", time.Sunday)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-02", start)
	assert.Equal(t, "2024-06-08", end)
}

func TestWeekWindowMondayStart(t *testing.T) {
	start, end, err := WeekWindow("2024-06-02", time.Monday)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-27", start)
	assert.Equal(t, "2024-06-02", end)
}

func TestPrevDay(t *testing.T) {
	d, err := PrevDay("2024-07-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-30", d)

	d, err = PrevDay("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d, "ano bissexto")
}
