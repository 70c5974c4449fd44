package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func newCancelUC(repo *mockRepo) *CancelAppointment {
	return NewCancelAppointment(repo, audit.NewDispatcher(nil, zerolog.Nop()))
}

func strPtr(s string) *string { return &s }

func TestCancelOwnAppointment(t *testing.T) {
	ap := &models.Appointment{
		ID:        3,
		BarberID:  1,
		Date:      "2024-06-04",
		Time:      "09:30",
		AppUserID: strPtr("u-1"),
	}

	repo := new(mockRepo)
	repo.On("FindAppointment", mock.Anything, uint(1), "2024-06-04", "09:30").Return(ap, nil)
	repo.On("DeleteAppointment", mock.Anything, uint(3)).Return(nil)

	got, err := newCancelUC(repo).Execute(context.Background(), CancelInput{
		BarberID: 1,
		Date:     "2024-06-04",
		Time:     " 09:30 ",
		Actor:    domain.Identity{UserID: "u-1", Role: domain.RoleUser},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), got.ID)
	repo.AssertExpectations(t)
}

func TestCancelSomeoneElsesForbidden(t *testing.T) {
	ap := &models.Appointment{ID: 3, BarberID: 1, AppUserID: strPtr("u-2")}

	repo := new(mockRepo)
	repo.On("FindAppointment", mock.Anything, uint(1), "2024-06-04", "09:30").Return(ap, nil)

	_, err := newCancelUC(repo).Execute(context.Background(), CancelInput{
		BarberID: 1,
		Date:     "2024-06-04",
		Time:     "09:30",
		Actor:    domain.Identity{UserID: "u-1", Role: domain.RoleUser},
	})
	assert.True(t, httperr.IsBusiness(err, "not_allowed"))
	repo.AssertNotCalled(t, "DeleteAppointment", mock.Anything, mock.Anything)
}

func TestCancelGuestSlotRequiresStaff(t *testing.T) {
	guest := &models.Appointment{ID: 5, BarberID: 1, GuestName: strPtr("joão")}

	repo := new(mockRepo)
	repo.On("FindAppointment", mock.Anything, uint(1), "2024-06-04", "09:30").Return(guest, nil)

	uc := newCancelUC(repo)

	_, err := uc.Execute(context.Background(), CancelInput{
		BarberID: 1,
		Date:     "2024-06-04",
		Time:     "09:30",
		Actor:    domain.Identity{UserID: "u-1", Role: domain.RoleUser},
	})
	assert.True(t, httperr.IsBusiness(err, "not_allowed"))

	repo.On("DeleteAppointment", mock.Anything, uint(5)).Return(nil)

	_, err = uc.Execute(context.Background(), CancelInput{
		BarberID: 1,
		Date:     "2024-06-04",
		Time:     "09:30",
		Actor:    domain.Identity{UserID: "b-1", Role: domain.RoleBarber},
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCancelNotFound(t *testing.T) {
	repo := new(mockRepo)
	repo.On("FindAppointment", mock.Anything, uint(1), "2024-06-04", "10:00").
		Return(nil, errors.New("record not found"))

	_, err := newCancelUC(repo).Execute(context.Background(), CancelInput{
		BarberID: 1,
		Date:     "2024-06-04",
		Time:     "10:00",
		Actor:    domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin},
	})
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
