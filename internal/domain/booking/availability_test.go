package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func strPtr(s string) *string { return &s }

func openMonday(slots string) models.Schedule {
	return models.Schedule{
		ID:        1,
		BarberID:  1,
		DayOfWeek: 1,
		TimeSlots: slots,
		StartDate: "2024-01-01",
	}
}

func TestResolveSlotsRecurringOnly(t *testing.T) {
	// agenda aberta de segunda desde 2024-01-01, sem reservas
	got := ResolveSlots(
		"2024-06-03",
		nil,
		[]models.Schedule{openMonday("09:00,09:30,10:00")},
		nil,
	)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, got)
}

func TestResolveSlotsHolidayOverridesRecurring(t *testing.T) {
	specials := []models.SpecialSchedule{{
		ID:        1,
		BarberID:  1,
		StartDate: "2024-06-03",
		IsHoliday: true,
		TimeSlots: "09:00,09:30", // ignorado num feriado
	}}

	got := ResolveSlots(
		"2024-06-03",
		specials,
		[]models.Schedule{openMonday("09:00,09:30,10:00")},
		nil,
	)
	assert.Empty(t, got)
	assert.NotNil(t, got, "lista vazia, nunca nil no JSON")
}

func TestResolveSlotsSpecialGridOverridesRecurring(t *testing.T) {
	specials := []models.SpecialSchedule{{
		ID:        1,
		BarberID:  1,
		StartDate: "2024-06-01",
		EndDate:   strPtr("2024-06-07"),
		TimeSlots: "14:00,15:00",
	}}

	got := ResolveSlots(
		"2024-06-03",
		specials,
		[]models.Schedule{openMonday("09:00,09:30,10:00")},
		nil,
	)
	assert.Equal(t, []string{"14:00", "15:00"}, got,
		"a exceção vale no lugar da agenda recorrente, nunca junto")
}

func TestResolveSlotsSpecialSingleDayDefaultsEnd(t *testing.T) {
	specials := []models.SpecialSchedule{{
		ID:        1,
		StartDate: "2024-06-03",
		TimeSlots: "11:00",
	}}

	assert.Equal(t, []string{"11:00"},
		ResolveSlots("2024-06-03", specials, nil, nil))
	assert.Empty(t,
		ResolveSlots("2024-06-04", specials, nil, nil),
		"sem end_date a exceção cobre só o dia inicial")
}

func TestResolveSlotsExcludesBooked(t *testing.T) {
	got := ResolveSlots(
		"2024-06-03",
		nil,
		[]models.Schedule{openMonday("09:00,09:30,10:00")},
		[]string{"09:30"},
	)
	assert.Equal(t, []string{"09:00", "10:00"}, got)
}

func TestResolveSlotsBookedComparisonIsNormalized(t *testing.T) {
	// dado legado com espaço e caixa inconsistentes
	got := ResolveSlots(
		"2024-06-03",
		nil,
		[]models.Schedule{openMonday(" 09:00 ,09:30,10:00")},
		[]string{" 09:30 ", "10:00"},
	)
	assert.Equal(t, []string{"09:00"}, got)
}

func TestResolveSlotsClosedBeatsOpen(t *testing.T) {
	schedules := []models.Schedule{
		openMonday("09:00,09:30"),
		{
			ID:        2,
			BarberID:  1,
			DayOfWeek: 1,
			TimeSlots: "13:00,13:30",
			StartDate: "2024-05-06",
			EndDate:   strPtr("2024-06-24"),
		},
	}

	assert.Equal(t, []string{"13:00", "13:30"},
		ResolveSlots("2024-06-03", nil, schedules, nil),
		"override fechado vence o padrão aberto")

	assert.Equal(t, []string{"09:00", "09:30"},
		ResolveSlots("2024-07-01", nil, schedules, nil),
		"fora do override volta a valer a agenda aberta")
}

func TestResolveSlotsLatestClosedWins(t *testing.T) {
	schedules := []models.Schedule{
		{ID: 1, DayOfWeek: 1, TimeSlots: "08:00", StartDate: "2024-01-01", EndDate: strPtr("2024-12-30")},
		{ID: 2, DayOfWeek: 1, TimeSlots: "10:00", StartDate: "2024-06-03", EndDate: strPtr("2024-06-24")},
	}

	assert.Equal(t, []string{"10:00"},
		ResolveSlots("2024-06-10", nil, schedules, nil),
		"entre fechadas vigentes ganha a de início mais recente")
}

func TestResolveSlotsOutsideValidity(t *testing.T) {
	schedules := []models.Schedule{{
		ID:        1,
		DayOfWeek: 1,
		TimeSlots: "09:00",
		StartDate: "2024-06-03",
		EndDate:   strPtr("2024-06-17"),
	}}

	assert.Empty(t, ResolveSlots("2024-06-24", nil, schedules, nil))
	assert.Empty(t, ResolveSlots("2024-05-27", nil, schedules, nil))
}

func TestResolveSlotsNothingConfigured(t *testing.T) {
	got := ResolveSlots("2024-06-03", nil, nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResolveSlotsSortedAscending(t *testing.T) {
	got := ResolveSlots(
		"2024-06-03",
		nil,
		[]models.Schedule{openMonday("10:00,09:00,09:30")},
		nil,
	)
	assert.Equal(t, []string{"09:00", "09:30", "10:00"}, got)
}
