package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/config"
	"github.com/floatchat-backend/internal/domain"
	"github.com/floatchat-backend/internal/domain/repository"
	"github.com/floatchat-backend/internal/pkg/errors"
	"github.com/floatchat-backend/internal/usecase/dto"
)

// ShareUseCase stores conversations under a UUID and hands back a QR
// code pointing at the share link.
type ShareUseCase struct {
	cacheRepo repository.CacheRepository
	cfg       config.ShareConfig
	logger    *zap.Logger
}

func NewShareUseCase(
	cacheRepo repository.CacheRepository,
	cfg config.ShareConfig,
	logger *zap.Logger,
) *ShareUseCase {
	return &ShareUseCase{
		cacheRepo: cacheRepo,
		cfg:       cfg,
		logger:    logger,
	}
}

// Create stores the history and renders the QR. A history that only
// contains the welcome message is not worth sharing.
func (uc *ShareUseCase) Create(ctx context.Context, req dto.ShareRequest) (*dto.ShareResponse, error) {
	if countConversational(req.History) <= 1 {
		return nil, errors.ErrEmptyHistory
	}

	id := uuid.New().String()
	if err := uc.cacheRepo.SetHistory(ctx, id, req.History, uc.cfg.HistoryTTL); err != nil {
		return nil, err
	}

	shareURL := fmt.Sprintf("%s?history_id=%s", uc.cfg.PublicBaseURL, id)
	png, err := qrcode.Encode(shareURL, qrcode.Medium, uc.cfg.QRSize)
	if err != nil {
		uc.logger.Error("Failed to encode QR code", zap.String("history_id", id), zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	uc.logger.Info("History shared",
		zap.String("history_id", id),
		zap.Int("messages", len(req.History)),
	)

	return &dto.ShareResponse{
		HistoryID: id,
		ShareURL:  shareURL,
		QRPNG:     png,
	}, nil
}

// Get loads a shared history by id.
func (uc *ShareUseCase) Get(ctx context.Context, id string) (*dto.HistoryResponse, error) {
	history, err := uc.cacheRepo.GetHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	if history == nil {
		return nil, errors.ErrHistoryNotFound
	}

	return &dto.HistoryResponse{
		HistoryID: id,
		History:   history,
	}, nil
}

// QR re-renders the QR code for an existing share.
func (uc *ShareUseCase) QR(ctx context.Context, id string) ([]byte, error) {
	history, err := uc.cacheRepo.GetHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	if history == nil {
		return nil, errors.ErrHistoryNotFound
	}

	shareURL := fmt.Sprintf("%s?history_id=%s", uc.cfg.PublicBaseURL, id)
	png, err := qrcode.Encode(shareURL, qrcode.Medium, uc.cfg.QRSize)
	if err != nil {
		uc.logger.Error("Failed to encode QR code", zap.String("history_id", id), zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	return png, nil
}

// countConversational ignores map-state bookkeeping entries.
func countConversational(history []domain.ChatMessage) int {
	n := 0
	for _, m := range history {
		if m.Role != domain.RoleMapState {
			n++
		}
	}
	return n
}
