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

type ChartHandler struct {
	chartUC *usecase.ChartUseCase
	logger  *zap.Logger
}

func NewChartHandler(chartUC *usecase.ChartUseCase, logger *zap.Logger) *ChartHandler {
	return &ChartHandler{
		chartUC: chartUC,
		logger:  logger,
	}
}

// Suggest godoc
// @Summary Pick chart type and axes for a tabular result
// @Description Deterministic selection: single aggregated row renders as bar, date columns as time series, pressure columns as inverted-axis profiles, two numeric columns as scatter, everything else as table.
// @Tags Chart
// @Accept json
// @Produce json
// @Param request body dto.ChartSuggestRequest true "Rows and optional column order"
// @Success 200 {object} utils.SuccessResponse{data=dto.ChartSpec}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/chart/suggest [post]
func (h *ChartHandler) Suggest(c *fiber.Ctx) error {
	var req dto.ChartSuggestRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.chartUC.Suggest(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
