package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/pkg/errors"
	"github.com/floatchat-backend/internal/pkg/utils"
	"github.com/floatchat-backend/internal/pkg/validator"
	"github.com/floatchat-backend/internal/usecase"
	"github.com/floatchat-backend/internal/usecase/dto"
)

type EmergencyHandler struct {
	emergencyUC *usecase.EmergencyUseCase
	logger      *zap.Logger
}

func NewEmergencyHandler(emergencyUC *usecase.EmergencyUseCase, logger *zap.Logger) *EmergencyHandler {
	return &EmergencyHandler{
		emergencyUC: emergencyUC,
		logger:      logger,
	}
}

// Contact godoc
// @Summary Build emergency contact links for a float's position
// @Description Resolves the float's latest position into a distress message with tel, SMS and WhatsApp deep links plus a Google Maps link. Without a known position the response carries the contact card only, with has_location=false.
// @Tags Emergency
// @Produce json
// @Param float_id query string true "Float platform number"
// @Param language query string false "UI language (en, es, fr, hi, kn)" default(en)
// @Success 200 {object} utils.SuccessResponse{data=dto.EmergencyContactResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/emergency/contact [get]
func (h *EmergencyHandler) Contact(c *fiber.Ctx) error {
	req := dto.EmergencyContactRequest{
		FloatID:  c.Query("float_id"),
		Language: c.Query("language", "en"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.emergencyUC.Contact(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
