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

type QueryHandler struct {
	queryUC *usecase.QueryUseCase
	logger  *zap.Logger
}

func NewQueryHandler(queryUC *usecase.QueryUseCase, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		queryUC: queryUC,
		logger:  logger,
	}
}

// Process godoc
// @Summary Answer a natural-language question about ARGO float data
// @Description Resolves the question to float positions, profile measurements, aggregates or a semantic summary search, and returns rows plus a chart suggestion.
// @Tags Query
// @Accept json
// @Produce json
// @Param request body dto.QueryRequest true "Question and optional language (en, es, fr, hi, kn)"
// @Success 200 {object} utils.SuccessResponse{data=dto.QueryResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/query [post]
func (h *QueryHandler) Process(c *fiber.Ctx) error {
	var req dto.QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.queryUC.Process(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Data),
	})
}

// Resummarize godoc
// @Summary Re-render a previous answer's summary in another language
// @Tags Query
// @Accept json
// @Produce json
// @Param request body dto.ResummarizeRequest true "Original question and target language"
// @Success 200 {object} utils.SuccessResponse{data=dto.ResummarizeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/resummarize [post]
func (h *QueryHandler) Resummarize(c *fiber.Ctx) error {
	var req dto.ResummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.queryUC.Resummarize(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
