package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/domain"
	"github.com/floatchat-backend/internal/usecase/dto"
)

// ChartUseCase picks axes for tabular results. Selection is pure; the
// usecase only adapts transport types.
type ChartUseCase struct {
	logger *zap.Logger
}

func NewChartUseCase(logger *zap.Logger) *ChartUseCase {
	return &ChartUseCase{logger: logger}
}

func (uc *ChartUseCase) Suggest(ctx context.Context, req dto.ChartSuggestRequest) (*dto.ChartSpec, error) {
	var table domain.Table
	if len(req.Columns) > 0 {
		table = domain.NewTable(req.Columns, req.Data)
	} else {
		table = domain.NewTableFromRows(req.Data)
	}

	sel := domain.ChooseAxes(table)

	uc.logger.Debug("Chart selected",
		zap.String("kind", string(sel.Kind)),
		zap.String("x", sel.X),
		zap.String("y", sel.Y),
		zap.Bool("invert_y", sel.InvertY),
		zap.Int("rows", len(req.Data)),
	)

	return &dto.ChartSpec{
		Kind:    string(sel.Kind),
		X:       sel.X,
		Y:       sel.Y,
		InvertY: sel.InvertY,
	}, nil
}
