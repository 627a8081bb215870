package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/config"
	"github.com/floatchat-backend/internal/domain/repository"
	"github.com/floatchat-backend/internal/pkg/errors"
	"github.com/floatchat-backend/internal/pkg/i18n"
	"github.com/floatchat-backend/internal/pkg/utils"
	"github.com/floatchat-backend/internal/usecase/dto"
)

// EmergencyUseCase resolves a float's last position into a distress
// message with ready-made tel/SMS/WhatsApp deep links.
type EmergencyUseCase struct {
	profileRepo repository.ProfileRepository
	cfg         config.EmergencyConfig
	logger      *zap.Logger
}

func NewEmergencyUseCase(
	profileRepo repository.ProfileRepository,
	cfg config.EmergencyConfig,
	logger *zap.Logger,
) *EmergencyUseCase {
	return &EmergencyUseCase{
		profileRepo: profileRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

func (uc *EmergencyUseCase) Contact(ctx context.Context, req dto.EmergencyContactRequest) (*dto.EmergencyContactResponse, error) {
	lang := req.Language
	if !i18n.Supported(lang) {
		lang = i18n.DefaultLanguage
	}

	pos, err := uc.profileRepo.LatestPosition(ctx, req.FloatID)
	if err != nil && err != errors.ErrFloatNotFound {
		return nil, err
	}
	// Without a position the contact card still works; the caller just
	// has no message to forward.
	if err != nil || !utils.ValidateCoordinates(pos.Latitude, pos.Longitude) {
		return &dto.EmergencyContactResponse{
			Header:  i18n.T(lang, "emergency_header"),
			FloatID: req.FloatID,
			Contact: uc.cfg.Contact,
			Phone:   uc.cfg.Phone,
			Message: i18n.T(lang, "emergency_no_location"),
			TelLink: "tel:" + uc.cfg.Phone,
		}, nil
	}

	mapsLink := fmt.Sprintf("https://www.google.com/maps?q=%f,%f", pos.Latitude, pos.Longitude)
	message := fmt.Sprintf(
		"EMERGENCY! Medical incident at sea. Vessel location: LAT %.4f, LON %.4f. Navigate to: %s",
		pos.Latitude, pos.Longitude, mapsLink,
	)
	encoded := url.QueryEscape(message)

	uc.logger.Warn("Emergency contact requested",
		zap.String("float_id", req.FloatID),
		zap.Float64("lat", pos.Latitude),
		zap.Float64("lon", pos.Longitude),
	)

	return &dto.EmergencyContactResponse{
		Header:       i18n.T(lang, "emergency_header"),
		FloatID:      req.FloatID,
		HasLocation:  true,
		Lat:          pos.Latitude,
		Lon:          pos.Longitude,
		Contact:      uc.cfg.Contact,
		Phone:        uc.cfg.Phone,
		Message:      message,
		MapsLink:     mapsLink,
		TelLink:      "tel:" + uc.cfg.Phone,
		SMSLink:      fmt.Sprintf("sms:%s?body=%s", uc.cfg.Phone, encoded),
		WhatsAppLink: fmt.Sprintf("https://wa.me/%s?text=%s", digitsOnly(uc.cfg.Phone), encoded),
	}, nil
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
