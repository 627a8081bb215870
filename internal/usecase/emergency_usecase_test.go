package usecase_test

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/config"
	"github.com/floatchat-backend/internal/domain"
	"github.com/floatchat-backend/internal/pkg/errors"
	"github.com/floatchat-backend/internal/usecase"
	"github.com/floatchat-backend/internal/usecase/dto"
)

func emergencyConfig() config.EmergencyConfig {
	return config.EmergencyConfig{
		Phone:   "+919380474652",
		Contact: "Global Maritime Rescue",
	}
}

func TestEmergencyUseCase_Contact(t *testing.T) {
	ctx := context.Background()
	profiles := &MockProfileRepository{}
	uc := usecase.NewEmergencyUseCase(profiles, emergencyConfig(), zap.NewNop())

	profiles.On("LatestPosition", ctx, "2902276").Return(&domain.Profile{
		FloatID:   "2902276",
		Latitude:  1.5042,
		Longitude: 80.2001,
		Date:      time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
	}, nil)

	resp, err := uc.Contact(ctx, dto.EmergencyContactRequest{FloatID: "2902276"})

	require.NoError(t, err)
	assert.True(t, resp.HasLocation)
	assert.Equal(t, "Global Maritime Rescue", resp.Contact)
	assert.Equal(t, "+919380474652", resp.Phone)

	assert.Contains(t, resp.Message, "EMERGENCY! Medical incident at sea.")
	assert.Contains(t, resp.Message, "LAT 1.5042, LON 80.2001")
	assert.Contains(t, resp.Message, resp.MapsLink)

	assert.Equal(t, "tel:+919380474652", resp.TelLink)
	assert.True(t, strings.HasPrefix(resp.SMSLink, "sms:+919380474652?body="), resp.SMSLink)
	assert.True(t, strings.HasPrefix(resp.WhatsAppLink, "https://wa.me/919380474652?text="), resp.WhatsAppLink)

	// The SMS body decodes back to the exact message.
	body := strings.TrimPrefix(resp.SMSLink, "sms:+919380474652?body=")
	decoded, err := url.QueryUnescape(body)
	require.NoError(t, err)
	assert.Equal(t, resp.Message, decoded)

	profiles.AssertExpectations(t)
}

func TestEmergencyUseCase_Contact_Localized(t *testing.T) {
	ctx := context.Background()
	profiles := &MockProfileRepository{}
	uc := usecase.NewEmergencyUseCase(profiles, emergencyConfig(), zap.NewNop())

	profiles.On("LatestPosition", ctx, "2902276").Return(&domain.Profile{
		FloatID:   "2902276",
		Latitude:  1.5,
		Longitude: 80.2,
	}, nil)

	resp, err := uc.Contact(ctx, dto.EmergencyContactRequest{FloatID: "2902276", Language: "es"})

	require.NoError(t, err)
	assert.Equal(t, "Alerta Médica de Emergencia", resp.Header)
	// The distress message itself stays in English for responders.
	assert.Contains(t, resp.Message, "EMERGENCY!")
}

func TestEmergencyUseCase_Contact_FloatNotFound(t *testing.T) {
	ctx := context.Background()
	profiles := &MockProfileRepository{}
	uc := usecase.NewEmergencyUseCase(profiles, emergencyConfig(), zap.NewNop())

	profiles.On("LatestPosition", ctx, "999999").Return(nil, errors.ErrFloatNotFound)

	resp, err := uc.Contact(ctx, dto.EmergencyContactRequest{FloatID: "999999"})

	// The contact card still works without a position.
	require.NoError(t, err)
	assert.False(t, resp.HasLocation)
	assert.Equal(t, "+919380474652", resp.Phone)
	assert.Equal(t, "tel:+919380474652", resp.TelLink)
	assert.Contains(t, resp.Message, "Float ID")
	assert.Empty(t, resp.SMSLink)
	assert.Empty(t, resp.WhatsAppLink)
}

func TestEmergencyUseCase_Contact_NoPosition(t *testing.T) {
	ctx := context.Background()
	profiles := &MockProfileRepository{}
	uc := usecase.NewEmergencyUseCase(profiles, emergencyConfig(), zap.NewNop())

	profiles.On("LatestPosition", ctx, "2902277").Return(&domain.Profile{
		FloatID:  "2902277",
		Latitude: 99999, Longitude: 99999,
	}, nil)

	resp, err := uc.Contact(ctx, dto.EmergencyContactRequest{FloatID: "2902277"})

	require.NoError(t, err)
	assert.False(t, resp.HasLocation)
	assert.Empty(t, resp.MapsLink)
}
