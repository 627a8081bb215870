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

type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// Info godoc
// @Summary Plan relay routes from a float to a destination port
// @Description Returns the four ports nearest the float's latest position, each with float, destination and total leg distances. The nearest port is the primary route.
// @Tags Route
// @Produce json
// @Param float_id query string true "Float platform number"
// @Param destination query string true "Destination port name (case-insensitive substring)"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteInfoResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/route/info [get]
func (h *RouteHandler) Info(c *fiber.Ctx) error {
	req := dto.RouteInfoRequest{
		FloatID:     c.Query("float_id"),
		Destination: c.Query("destination"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.routeUC.Info(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Ports),
	})
}

// Ports godoc
// @Summary List the port catalog
// @Tags Route
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.PortListResponse}
// @Router /api/v1/route/ports [get]
func (h *RouteHandler) Ports(c *fiber.Ctx) error {
	result := h.routeUC.Ports(c.Context())
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
