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

type ShareHandler struct {
	shareUC *usecase.ShareUseCase
	logger  *zap.Logger
}

func NewShareHandler(shareUC *usecase.ShareUseCase, logger *zap.Logger) *ShareHandler {
	return &ShareHandler{
		shareUC: shareUC,
		logger:  logger,
	}
}

// Create godoc
// @Summary Share a conversation
// @Description Stores the chat history under a UUID and returns the share link plus its QR code as PNG bytes. Histories with only the welcome message are rejected.
// @Tags Share
// @Accept json
// @Produce json
// @Param request body dto.ShareRequest true "Chat history to share"
// @Success 200 {object} utils.SuccessResponse{data=dto.ShareResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/share [post]
func (h *ShareHandler) Create(c *fiber.Ctx) error {
	var req dto.ShareRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.shareUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Get godoc
// @Summary Load a shared conversation
// @Tags Share
// @Produce json
// @Param id path string true "History UUID"
// @Success 200 {object} utils.SuccessResponse{data=dto.HistoryResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/history/{id} [get]
func (h *ShareHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	result, err := h.shareUC.Get(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.History),
	})
}

// QR godoc
// @Summary Render the QR code for a shared conversation as an image
// @Tags Share
// @Produce png
// @Param id path string true "History UUID"
// @Success 200 {file} file
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/history/{id}/qr [get]
func (h *ShareHandler) QR(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	png, err := h.shareUC.QR(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
