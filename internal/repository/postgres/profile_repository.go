package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/floatchat-backend/internal/domain"
	"github.com/floatchat-backend/internal/domain/repository"
	"github.com/floatchat-backend/internal/pkg/errors"
)

type profileRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewProfileRepository(db *DB) repository.ProfileRepository {
	return &profileRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *profileRepository) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS argo_metadata (
			float_id        TEXT PRIMARY KEY,
			platform_type   TEXT NOT NULL DEFAULT '',
			country         TEXT NOT NULL DEFAULT '',
			deployment_date TIMESTAMPTZ,
			sensors         TEXT[] NOT NULL DEFAULT '{}'
		);

		CREATE TABLE IF NOT EXISTS argo_profiles (
			profile_id   BIGSERIAL PRIMARY KEY,
			float_id     TEXT NOT NULL,
			cycle_number INTEGER NOT NULL,
			latitude     DOUBLE PRECISION NOT NULL,
			longitude    DOUBLE PRECISION NOT NULL,
			date         TIMESTAMPTZ NOT NULL,
			pressure     DOUBLE PRECISION NOT NULL,
			temperature  DOUBLE PRECISION NOT NULL,
			salinity     DOUBLE PRECISION NOT NULL,
			UNIQUE (float_id, cycle_number, pressure)
		);

		CREATE INDEX IF NOT EXISTS idx_argo_profiles_float_date
			ON argo_profiles (float_id, date DESC);
		CREATE INDEX IF NOT EXISTS idx_argo_profiles_date
			ON argo_profiles (date);
		CREATE INDEX IF NOT EXISTS idx_argo_profiles_latitude
			ON argo_profiles (latitude);
	`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		r.logger.Error("Failed to ensure profile schema", zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *profileRepository) LatestPosition(ctx context.Context, floatID string) (*domain.Profile, error) {
	query := `
		SELECT profile_id, float_id, cycle_number, latitude, longitude,
		       date, pressure, temperature, salinity
		FROM argo_profiles
		WHERE float_id = $1
		ORDER BY date DESC, cycle_number DESC
		LIMIT 1
	`

	var p domain.Profile
	err := r.db.GetContext(ctx, &p, query, floatID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrFloatNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get latest position",
			zap.String("float_id", floatID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &p, nil
}

func (r *profileRepository) ProfilesByFloat(ctx context.Context, floatID string, limit int) ([]domain.Profile, error) {
	query := `
		SELECT profile_id, float_id, cycle_number, latitude, longitude,
		       date, pressure, temperature, salinity
		FROM argo_profiles
		WHERE float_id = $1
		ORDER BY pressure ASC
		LIMIT $2
	`

	var profiles []domain.Profile
	if err := r.db.SelectContext(ctx, &profiles, query, floatID, limit); err != nil {
		r.logger.Error("Failed to get profiles",
			zap.String("float_id", floatID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return profiles, nil
}

func (r *profileRepository) AverageTemperature(ctx context.Context, from, to time.Time) (float64, int, error) {
	query := `
		SELECT COALESCE(AVG(temperature), 0) AS avg_temp, COUNT(*) AS n
		FROM argo_profiles
		WHERE date >= $1 AND date < $2
	`

	var row struct {
		AvgTemp float64 `db:"avg_temp"`
		N       int     `db:"n"`
	}
	if err := r.db.GetContext(ctx, &row, query, from, to); err != nil {
		r.logger.Error("Failed to compute average temperature",
			zap.Time("from", from), zap.Time("to", to), zap.Error(err))
		return 0, 0, errors.ErrDatabaseError
	}

	return row.AvgTemp, row.N, nil
}

func (r *profileRepository) ProfilesNearEquator(ctx context.Context, maxAbsLat float64, limit int) ([]domain.Profile, error) {
	query := `
		SELECT profile_id, float_id, cycle_number, latitude, longitude,
		       date, pressure, temperature, salinity
		FROM argo_profiles
		WHERE latitude BETWEEN $1 AND $2
		ORDER BY date DESC
		LIMIT $3
	`

	var profiles []domain.Profile
	if err := r.db.SelectContext(ctx, &profiles, query, -maxAbsLat, maxAbsLat, limit); err != nil {
		r.logger.Error("Failed to get equatorial profiles",
			zap.Float64("max_abs_lat", maxAbsLat), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return profiles, nil
}

func (r *profileRepository) HasProfile(ctx context.Context, floatID string, cycleNumber int) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM argo_profiles
			WHERE float_id = $1 AND cycle_number = $2
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, floatID, cycleNumber); err != nil {
		r.logger.Error("Failed to check profile existence",
			zap.String("float_id", floatID),
			zap.Int("cycle_number", cycleNumber),
			zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return exists, nil
}

func (r *profileRepository) InsertProfiles(ctx context.Context, profiles []domain.Profile) error {
	if len(profiles) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	query := `
		INSERT INTO argo_profiles
			(float_id, cycle_number, latitude, longitude, date, pressure, temperature, salinity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (float_id, cycle_number, pressure) DO NOTHING
	`

	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to prepare insert", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer stmt.Close()

	for _, p := range profiles {
		if _, err := stmt.ExecContext(ctx,
			p.FloatID, p.CycleNumber, p.Latitude, p.Longitude,
			p.Date, p.Pressure, p.Temperature, p.Salinity,
		); err != nil {
			r.logger.Error("Failed to insert profile",
				zap.String("float_id", p.FloatID),
				zap.Int("cycle_number", p.CycleNumber),
				zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit profiles", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *profileRepository) UpsertMetadata(ctx context.Context, meta domain.FloatMetadata) error {
	query := `
		INSERT INTO argo_metadata (float_id, platform_type, country, deployment_date, sensors)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (float_id) DO UPDATE SET
			platform_type   = EXCLUDED.platform_type,
			country         = EXCLUDED.country,
			deployment_date = EXCLUDED.deployment_date,
			sensors         = EXCLUDED.sensors
	`

	_, err := r.db.ExecContext(ctx, query,
		meta.FloatID, meta.PlatformType, meta.Country,
		meta.DeploymentDate, pq.Array(meta.Sensors),
	)
	if err != nil {
		r.logger.Error("Failed to upsert float metadata",
			zap.String("float_id", meta.FloatID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}
