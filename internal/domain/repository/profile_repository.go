package repository

import (
	"context"
	"time"

	"github.com/floatchat-backend/internal/domain"
)

// ProfileRepository is the relational store of ARGO profiles and float
// metadata.
type ProfileRepository interface {
	// EnsureSchema creates tables if they do not exist yet.
	EnsureSchema(ctx context.Context) error

	// LatestPosition returns the most recent located profile row of a float.
	LatestPosition(ctx context.Context, floatID string) (*domain.Profile, error)

	// ProfilesByFloat returns a float's profile rows ordered by pressure.
	ProfilesByFloat(ctx context.Context, floatID string, limit int) ([]domain.Profile, error)

	// AverageTemperature aggregates over a date range; the int is the
	// number of contributing rows.
	AverageTemperature(ctx context.Context, from, to time.Time) (float64, int, error)

	// ProfilesNearEquator returns rows with |latitude| <= maxAbsLat.
	ProfilesNearEquator(ctx context.Context, maxAbsLat float64, limit int) ([]domain.Profile, error)

	// HasProfile reports whether a (float, cycle) pair was already ingested.
	HasProfile(ctx context.Context, floatID string, cycleNumber int) (bool, error)

	// InsertProfiles bulk-inserts profile rows, ignoring duplicates.
	InsertProfiles(ctx context.Context, profiles []domain.Profile) error

	// UpsertMetadata inserts float metadata if missing.
	UpsertMetadata(ctx context.Context, meta domain.FloatMetadata) error
}
