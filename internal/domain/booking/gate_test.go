package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestValidateIdentityFields(t *testing.T) {
	user := "u-1"
	name := "Maria"
	guest := "João"

	tests := []struct {
		desc     string
		ap       models.Appointment
		wantCode string
	}{
		{"usuário completo", models.Appointment{AppUserID: &user, AppUserName: &name}, ""},
		{"convidado", models.Appointment{GuestName: &guest}, ""},
		{"ambos", models.Appointment{AppUserID: &user, AppUserName: &name, GuestName: &guest}, "identity_conflict"},
		{"nenhum", models.Appointment{}, "identity_required"},
		{"usuário sem nome", models.Appointment{AppUserID: &user}, "identity_required"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			err := ValidateIdentityFields(&tt.ap)
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, httperr.IsBusiness(err, tt.wantCode))
			}
		})
	}
}

func TestValidateIdentityFieldsGuestNameCap(t *testing.T) {
	ok := "Pedro Henrique A" // 16 bytes — um acima do limite
	assert.Len(t, ok, MaxGuestNameLen+1)

	ap := models.Appointment{GuestName: &ok}
	assert.True(t, httperr.IsBusiness(ValidateIdentityFields(&ap), "guest_name_too_long"))

	exact := "Pedro Henrique." // 15
	ap = models.Appointment{GuestName: &exact}
	assert.NoError(t, ValidateIdentityFields(&ap))
}

func TestValidateSlot(t *testing.T) {
	assert.NoError(t, ValidateSlot("2024-06-03", "09:30"))
	assert.True(t, httperr.IsBusiness(ValidateSlot("2024-6-3", "09:30"), "invalid_date"))
	assert.True(t, httperr.IsBusiness(ValidateSlot("2024-06-03", "9:30"), "invalid_time"))
	assert.True(t, httperr.IsBusiness(ValidateSlot("2024-06-03", ""), "invalid_time"))
}

func TestIdentityPrivileged(t *testing.T) {
	assert.False(t, Identity{Role: RoleUser}.Privileged())
	assert.True(t, Identity{Role: RoleBarber}.Privileged())
	assert.True(t, Identity{Role: RoleAdmin}.Privileged())
	assert.False(t, Identity{}.Privileged())
}
