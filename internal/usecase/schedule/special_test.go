package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestCreateSpecialHoliday(t *testing.T) {
	repo := new(mockRepo)
	repo.On("ListSpecialsByBarber", mock.Anything, uint(1)).
		Return([]models.SpecialSchedule{}, nil)
	repo.On("CreateSpecial", mock.Anything, mock.MatchedBy(func(s *models.SpecialSchedule) bool {
		return s.IsHoliday && s.TimeSlots == ""
	})).Return(nil)

	got, err := NewCreateSpecialSchedule(repo, nopAudit()).
		Execute(context.Background(), "admin-1", SpecialScheduleInput{
			BarberID:  1,
			StartDate: "2024-12-25",
			IsHoliday: true,
			TimeSlots: []string{"09:00"}, // feriado descarta horários
		})
	require.NoError(t, err)
	assert.True(t, got.IsHoliday)
	repo.AssertExpectations(t)
}

func TestCreateSpecialOverlapRejected(t *testing.T) {
	existing := models.SpecialSchedule{
		ID:        5,
		BarberID:  1,
		StartDate: "2024-12-23",
		EndDate:   strPtr("2024-12-26"),
	}

	repo := new(mockRepo)
	repo.On("ListSpecialsByBarber", mock.Anything, uint(1)).
		Return([]models.SpecialSchedule{existing}, nil)

	_, err := NewCreateSpecialSchedule(repo, nopAudit()).
		Execute(context.Background(), "admin-1", SpecialScheduleInput{
			BarberID:  1,
			StartDate: "2024-12-26", // encosta na borda da existente
			IsHoliday: true,
		})
	assert.True(t, httperr.IsBusiness(err, "special_overlap"))
	repo.AssertNotCalled(t, "CreateSpecial", mock.Anything, mock.Anything)
}

func TestCreateSpecialInvertedRange(t *testing.T) {
	repo := new(mockRepo)

	_, err := NewCreateSpecialSchedule(repo, nopAudit()).
		Execute(context.Background(), "admin-1", SpecialScheduleInput{
			BarberID:  1,
			StartDate: "2024-12-26",
			EndDate:   strPtr("2024-12-23"),
			IsHoliday: true,
		})
	assert.True(t, httperr.IsBusiness(err, "invalid_range"))
}

func TestUpdateSpecialIgnoresOwnRecordInOverlap(t *testing.T) {
	current := &models.SpecialSchedule{
		ID:        5,
		BarberID:  1,
		StartDate: "2024-12-23",
		IsHoliday: true,
	}

	repo := new(mockRepo)
	repo.On("GetSpecialByID", mock.Anything, uint(5)).Return(current, nil)
	repo.On("ListSpecialsByBarber", mock.Anything, uint(1)).
		Return([]models.SpecialSchedule{*current}, nil)
	repo.On("SaveSpecial", mock.Anything, mock.MatchedBy(func(s *models.SpecialSchedule) bool {
		return s.ID == 5 && s.StartDate == "2024-12-24"
	})).Return(nil)

	_, err := NewUpdateSpecialSchedule(repo, nopAudit()).
		Execute(context.Background(), "admin-1", 5, SpecialScheduleInput{
			BarberID:  1,
			StartDate: "2024-12-24",
			IsHoliday: true,
		})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}
