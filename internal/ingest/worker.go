package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/domain/repository"
	"github.com/floatchat-backend/internal/embedding"
	"github.com/floatchat-backend/internal/worker"
)

// summaryProfileLimit caps how many rows feed one float's summary.
const summaryProfileLimit = 5000

// Worker decodes every NetCDF file under a data directory with a small
// pool of goroutines, loads the rows into PostgreSQL and refreshes the
// summary index for each touched float.
type Worker struct {
	*worker.BaseWorker
	dataDir   string
	poolSize  int
	profiles  repository.ProfileRepository
	summaries repository.SummaryRepository
	encoder   *embedding.Encoder
}

func NewWorker(
	dataDir string,
	poolSize int,
	profiles repository.ProfileRepository,
	summaries repository.SummaryRepository,
	encoder *embedding.Encoder,
	logger *zap.Logger,
) *Worker {
	if poolSize < 1 {
		poolSize = 1
	}
	return &Worker{
		BaseWorker: worker.NewBaseWorker("argo-ingest", logger),
		dataDir:    dataDir,
		poolSize:   poolSize,
		profiles:   profiles,
		summaries:  summaries,
		encoder:    encoder,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	if err := w.profiles.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := w.summaries.EnsureSchema(ctx); err != nil {
		return err
	}

	files, err := w.listFiles()
	if err != nil {
		return err
	}
	w.Logger().Info("Ingest started",
		zap.String("data_dir", w.dataDir),
		zap.Int("files", len(files)),
		zap.Int("pool_size", w.poolSize),
	)

	jobs := make(chan string)
	var (
		mu      sync.Mutex
		touched = make(map[string]struct{})
		wg      sync.WaitGroup
	)

	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				floatID, ok := w.ingestFile(ctx, path)
				if ok {
					mu.Lock()
					touched[floatID] = struct{}{}
					mu.Unlock()
				}
			}
		}()
	}

feed:
	for _, path := range files {
		select {
		case <-ctx.Done():
			break feed
		case <-w.StopChan():
			break feed
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	w.refreshSummaries(ctx, touched)

	w.Logger().Info("Ingest finished", zap.Int("floats", len(touched)))
	return nil
}

func (w *Worker) listFiles() ([]string, error) {
	var files []string
	err := filepath.WalkDir(w.dataDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".nc") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ingestFile loads one file and reports the float it belongs to.
func (w *Worker) ingestFile(ctx context.Context, path string) (string, bool) {
	decoded, err := DecodeFile(path)
	if err != nil {
		w.Logger().Warn("Failed to decode file", zap.String("path", path), zap.Error(err))
		return "", false
	}
	if len(decoded.Profiles) == 0 {
		w.Logger().Debug("No usable measurements", zap.String("path", path))
		return "", false
	}

	floatID := decoded.Meta.FloatID
	cycle := decoded.Profiles[0].CycleNumber

	exists, err := w.profiles.HasProfile(ctx, floatID, cycle)
	if err != nil {
		w.Logger().Warn("Failed to check for existing cycle",
			zap.String("float_id", floatID), zap.Int("cycle", cycle), zap.Error(err))
		return "", false
	}
	if exists {
		w.Logger().Debug("Cycle already ingested",
			zap.String("float_id", floatID), zap.Int("cycle", cycle))
		return floatID, true
	}

	if err := w.profiles.UpsertMetadata(ctx, decoded.Meta); err != nil {
		w.Logger().Warn("Failed to upsert metadata",
			zap.String("float_id", floatID), zap.Error(err))
		return "", false
	}
	if err := w.profiles.InsertProfiles(ctx, decoded.Profiles); err != nil {
		w.Logger().Warn("Failed to insert profiles",
			zap.String("float_id", floatID), zap.Error(err))
		return "", false
	}

	w.Logger().Info("Ingested file",
		zap.String("path", path),
		zap.String("float_id", floatID),
		zap.Int("rows", len(decoded.Profiles)),
	)
	return floatID, true
}

func (w *Worker) refreshSummaries(ctx context.Context, floatIDs map[string]struct{}) {
	for floatID := range floatIDs {
		select {
		case <-ctx.Done():
			return
		case <-w.StopChan():
			return
		default:
		}

		profiles, err := w.profiles.ProfilesByFloat(ctx, floatID, summaryProfileLimit)
		if err != nil {
			w.Logger().Warn("Failed to load profiles for summary",
				zap.String("float_id", floatID), zap.Error(err))
			continue
		}

		summary := BuildSummary(floatID, profiles)
		if err := w.summaries.Upsert(ctx, floatID, summary, w.encoder.Encode(summary)); err != nil {
			w.Logger().Warn("Failed to store summary",
				zap.String("float_id", floatID), zap.Error(err))
		}
	}
}
