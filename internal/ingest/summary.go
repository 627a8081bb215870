package ingest

import (
	"fmt"

	"github.com/floatchat-backend/internal/domain"
)

// BuildSummary renders one searchable sentence describing a float's
// measurements. The sentence feeds the embedding index, so it packs the
// terms a user is likely to ask about: location, dates, temperature and
// salinity ranges.
func BuildSummary(floatID string, profiles []domain.Profile) string {
	if len(profiles) == 0 {
		return fmt.Sprintf("Float %s has no usable measurements yet.", floatID)
	}

	first := profiles[0]
	minT, maxT := first.Temperature, first.Temperature
	minS, maxS := first.Salinity, first.Salinity
	maxP := first.Pressure
	latest := first

	cycles := make(map[int]struct{}, len(profiles))
	for _, p := range profiles {
		cycles[p.CycleNumber] = struct{}{}
		if p.Temperature < minT {
			minT = p.Temperature
		}
		if p.Temperature > maxT {
			maxT = p.Temperature
		}
		if p.Salinity < minS {
			minS = p.Salinity
		}
		if p.Salinity > maxS {
			maxS = p.Salinity
		}
		if p.Pressure > maxP {
			maxP = p.Pressure
		}
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	return fmt.Sprintf(
		"Float %s recorded %d measurements over %d cycles, last seen at latitude %.2f, longitude %.2f on %s, "+
			"with temperature %.1f to %.1f C, salinity %.2f to %.2f PSU, down to %.0f dbar.",
		floatID, len(profiles), len(cycles),
		latest.Latitude, latest.Longitude, latest.Date.Format("2006-01-02"),
		minT, maxT, minS, maxS, maxP,
	)
}
