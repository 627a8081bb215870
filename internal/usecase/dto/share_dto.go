package dto

import "github.com/floatchat-backend/internal/domain"

// ShareRequest stores a conversation for later retrieval by link.
type ShareRequest struct {
	History []domain.ChatMessage `json:"history" validate:"required"`
}

// ShareResponse returns the share link and its QR code as a PNG.
type ShareResponse struct {
	HistoryID string `json:"history_id"`
	ShareURL  string `json:"share_url"`
	QRPNG     []byte `json:"qr_png"`
}

// HistoryResponse returns a previously shared conversation.
type HistoryResponse struct {
	HistoryID string               `json:"history_id"`
	History   []domain.ChatMessage `json:"history"`
}
