package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/catalog"
	"github.com/floatchat-backend/internal/domain"
	"github.com/floatchat-backend/internal/domain/repository"
	"github.com/floatchat-backend/internal/embedding"
	"github.com/floatchat-backend/internal/pkg/i18n"
	"github.com/floatchat-backend/internal/usecase/dto"
)

const (
	// equatorMaxAbsLat bounds the "near the equator" band.
	equatorMaxAbsLat = 5.0

	profileRowLimit = 200
	equatorRowLimit = 100
	semanticTopK    = 3
)

var (
	floatIDPattern = regexp.MustCompile(`\b\d{5,8}\b`)
	datePattern    = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// QueryUseCase turns a natural-language question into rows, a summary
// sentence and a chart suggestion. Intent detection is keyword-based
// with a semantic-search fallback over float summaries.
type QueryUseCase struct {
	profileRepo repository.ProfileRepository
	summaryRepo repository.SummaryRepository
	cacheRepo   repository.CacheRepository
	ports       *catalog.Catalog
	encoder     *embedding.Encoder
	cacheTTL    time.Duration
	logger      *zap.Logger
}

func NewQueryUseCase(
	profileRepo repository.ProfileRepository,
	summaryRepo repository.SummaryRepository,
	cacheRepo repository.CacheRepository,
	ports *catalog.Catalog,
	encoder *embedding.Encoder,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *QueryUseCase {
	return &QueryUseCase{
		profileRepo: profileRepo,
		summaryRepo: summaryRepo,
		cacheRepo:   cacheRepo,
		ports:       ports,
		encoder:     encoder,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

func (uc *QueryUseCase) Process(ctx context.Context, req dto.QueryRequest) (*dto.QueryResponse, error) {
	lang := req.Language
	if !i18n.Supported(lang) {
		lang = i18n.DefaultLanguage
	}

	key := queryCacheKey(lang, req.Query)
	if cached, err := uc.cacheRepo.Get(ctx, key); err == nil && cached != nil {
		var resp dto.QueryResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			resp.Cached = true
			return &resp, nil
		}
		uc.logger.Warn("Dropping corrupt cached query response", zap.String("key", key))
	}

	resp, err := uc.answer(ctx, req.Query, lang)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache query response", zap.Error(err))
		}
	}

	return resp, nil
}

// Resummarize answers the same question again in another language. Row
// intents are cached, so the second pass is cheap.
func (uc *QueryUseCase) Resummarize(ctx context.Context, req dto.ResummarizeRequest) (*dto.ResummarizeResponse, error) {
	resp, err := uc.Process(ctx, dto.QueryRequest{Query: req.Query, Language: req.Language})
	if err != nil {
		return nil, err
	}
	summary := resp.Summary
	if summary == "" {
		summary = i18n.T(req.Language, "no_summary")
	}
	return &dto.ResummarizeResponse{Summary: summary}, nil
}

func (uc *QueryUseCase) answer(ctx context.Context, query, lang string) (*dto.QueryResponse, error) {
	lower := strings.ToLower(query)
	floatID := floatIDPattern.FindString(query)

	switch {
	case isAverageTemperature(lower):
		if from, to, ok := dateRange(query); ok {
			return uc.answerAverageTemperature(ctx, lang, from, to)
		}
	case strings.Contains(lower, "equator"):
		return uc.answerEquator(ctx, lang)
	}

	if floatID != "" {
		if isPositionQuery(lower) {
			return uc.answerPosition(ctx, lang, floatID, query)
		}
		return uc.answerProfile(ctx, lang, floatID)
	}

	return uc.answerSemantic(ctx, lang, query)
}

func (uc *QueryUseCase) answerPosition(ctx context.Context, lang, floatID, query string) (*dto.QueryResponse, error) {
	pos, err := uc.profileRepo.LatestPosition(ctx, floatID)
	if err != nil {
		return uc.notFound(lang, floatID, err)
	}

	columns := []string{"float_id", "latitude", "longitude", "date"}
	rows := []map[string]interface{}{{
		"float_id":  pos.FloatID,
		"latitude":  pos.Latitude,
		"longitude": pos.Longitude,
		"date":      pos.Date.Format("2006-01-02"),
	}}

	resp := uc.respond(lang, i18n.Tf(lang, "summary_position", floatID), columns, rows)
	resp.MapID = floatID
	if dest, ok := uc.ports.FindDestination(query); ok {
		resp.MapDest = dest.Name
	}
	return resp, nil
}

func (uc *QueryUseCase) answerProfile(ctx context.Context, lang, floatID string) (*dto.QueryResponse, error) {
	profiles, err := uc.profileRepo.ProfilesByFloat(ctx, floatID, profileRowLimit)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return uc.notFound(lang, floatID, nil)
	}

	columns := []string{"pressure", "temperature", "salinity"}
	rows := make([]map[string]interface{}, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, map[string]interface{}{
			"pressure":    p.Pressure,
			"temperature": p.Temperature,
			"salinity":    p.Salinity,
		})
	}

	resp := uc.respond(lang, i18n.Tf(lang, "summary_profile", floatID), columns, rows)
	resp.MapID = floatID
	return resp, nil
}

func (uc *QueryUseCase) answerAverageTemperature(ctx context.Context, lang string, from, to time.Time) (*dto.QueryResponse, error) {
	avg, n, err := uc.profileRepo.AverageTemperature(ctx, from, to.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}

	columns := []string{"average_temperature", "measurements"}
	rows := []map[string]interface{}{{
		"average_temperature": avg,
		"measurements":        n,
	}}

	summary := i18n.Tf(lang, "summary_avg_temp", from.Format("2006-01-02"), to.Format("2006-01-02"))
	return uc.respond(lang, summary, columns, rows), nil
}

func (uc *QueryUseCase) answerEquator(ctx context.Context, lang string) (*dto.QueryResponse, error) {
	profiles, err := uc.profileRepo.ProfilesNearEquator(ctx, equatorMaxAbsLat, equatorRowLimit)
	if err != nil {
		return nil, err
	}

	columns := []string{"float_id", "latitude", "longitude", "date", "temperature", "salinity"}
	rows := make([]map[string]interface{}, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, map[string]interface{}{
			"float_id":    p.FloatID,
			"latitude":    p.Latitude,
			"longitude":   p.Longitude,
			"date":        p.Date.Format("2006-01-02"),
			"temperature": p.Temperature,
			"salinity":    p.Salinity,
		})
	}

	return uc.respond(lang, i18n.T(lang, "summary_equator"), columns, rows), nil
}

func (uc *QueryUseCase) answerSemantic(ctx context.Context, lang, query string) (*dto.QueryResponse, error) {
	hits, err := uc.summaryRepo.Search(ctx, uc.encoder.Encode(query), semanticTopK)
	if err != nil {
		return nil, err
	}

	columns := []string{"float_id", "summary"}
	rows := make([]map[string]interface{}, 0, len(hits))
	for _, h := range hits {
		rows = append(rows, map[string]interface{}{
			"float_id": h.FloatID,
			"summary":  h.Summary,
		})
	}

	return uc.respond(lang, i18n.T(lang, "summary_semantic"), columns, rows), nil
}

// respond assembles the common answer shape and attaches a chart pick.
func (uc *QueryUseCase) respond(lang, summary string, columns []string, rows []map[string]interface{}) *dto.QueryResponse {
	if len(rows) == 0 {
		return &dto.QueryResponse{
			Summary: i18n.T(lang, "no_data"),
			Chart:   &dto.ChartSpec{Kind: string(domain.ChartTable)},
		}
	}

	sel := domain.ChooseAxes(domain.NewTable(columns, rows))
	return &dto.QueryResponse{
		Summary: summary,
		Columns: columns,
		Data:    rows,
		Chart: &dto.ChartSpec{
			Kind:    string(sel.Kind),
			X:       sel.X,
			Y:       sel.Y,
			InvertY: sel.InvertY,
		},
	}
}

// notFound answers conversationally instead of failing the request; the
// chat surface renders it as a normal assistant message.
func (uc *QueryUseCase) notFound(lang, floatID string, cause error) (*dto.QueryResponse, error) {
	if cause != nil {
		uc.logger.Debug("Float lookup failed", zap.String("float_id", floatID), zap.Error(cause))
	}
	return &dto.QueryResponse{
		Summary: i18n.Tf(lang, "float_not_found", floatID),
		Chart:   &dto.ChartSpec{Kind: string(domain.ChartTable)},
	}, nil
}

func isAverageTemperature(lower string) bool {
	hasAvg := strings.Contains(lower, "average") ||
		strings.Contains(lower, "avg") ||
		strings.Contains(lower, "mean")
	return hasAvg && strings.Contains(lower, "temp")
}

func isPositionQuery(lower string) bool {
	for _, kw := range []string{"where", "position", "location", "route", "map", "near"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// dateRange extracts the first two ISO dates in the query, earliest
// first.
func dateRange(query string) (time.Time, time.Time, bool) {
	matches := datePattern.FindAllString(query, 2)
	if len(matches) < 2 {
		return time.Time{}, time.Time{}, false
	}
	from, err1 := time.Parse("2006-01-02", matches[0])
	to, err2 := time.Parse("2006-01-02", matches[1])
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, false
	}
	if to.Before(from) {
		from, to = to, from
	}
	return from, to, true
}

func queryCacheKey(lang, query string) string {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(query))))
	return fmt.Sprintf("query:%s:%x", lang, h.Sum64())
}
