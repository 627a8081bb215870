// Package ingest decodes ARGO NetCDF profile files into relational rows
// and per-float summary sentences.
package ingest

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fhs/go-netcdf/netcdf"

	"github.com/floatchat-backend/internal/domain"
)

// fillThreshold marks missing measurements. ARGO files use 99999.0 as
// the fill value for PRES, TEMP and PSAL.
const fillThreshold = 99990.0

// juldEpoch is the reference date of the JULD variable (days since
// 1950-01-01 00:00:00 UTC).
var juldEpoch = time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)

// Decoded is the content of one profile file.
type Decoded struct {
	Meta     domain.FloatMetadata
	Profiles []domain.Profile
}

// DecodeFile reads an ARGO profile NetCDF file. Levels with fill values
// in any of pressure, temperature or salinity are dropped.
func DecodeFile(path string) (*Decoded, error) {
	ds, err := netcdf.OpenFile(path, netcdf.NOWRITE)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer ds.Close()

	floatID, err := readPlatformNumber(ds)
	if err != nil {
		return nil, err
	}

	juld, err := readFloat64s(ds, "JULD")
	if err != nil {
		return nil, err
	}
	lats, err := readFloat64s(ds, "LATITUDE")
	if err != nil {
		return nil, err
	}
	lons, err := readFloat64s(ds, "LONGITUDE")
	if err != nil {
		return nil, err
	}
	cycles, err := readInt32s(ds, "CYCLE_NUMBER")
	if err != nil {
		return nil, err
	}
	pres, err := readFloat32s(ds, "PRES")
	if err != nil {
		return nil, err
	}
	temp, err := readFloat32s(ds, "TEMP")
	if err != nil {
		return nil, err
	}
	psal, err := readFloat32s(ds, "PSAL")
	if err != nil {
		return nil, err
	}

	nProf := len(juld)
	if nProf == 0 || len(pres) == 0 {
		return &Decoded{Meta: domain.FloatMetadata{FloatID: floatID}}, nil
	}
	nLevels := len(pres) / nProf

	profiles := assembleProfiles(floatID, cycles, juld, lats, lons, pres, temp, psal, nLevels)

	return &Decoded{
		Meta: domain.FloatMetadata{
			FloatID:      floatID,
			PlatformType: "ARGO",
			Sensors:      []string{"PRES", "TEMP", "PSAL"},
		},
		Profiles: profiles,
	}, nil
}

// assembleProfiles flattens [nProf][nLevels] measurement grids into rows.
func assembleProfiles(
	floatID string,
	cycles []int32,
	juld, lats, lons []float64,
	pres, temp, psal []float32,
	nLevels int,
) []domain.Profile {
	var profiles []domain.Profile

	for i := range juld {
		if !validPosition(lats, lons, i) {
			continue
		}
		date := juldToTime(juld[i])
		cycle := 0
		if i < len(cycles) {
			cycle = int(cycles[i])
		}

		for l := 0; l < nLevels; l++ {
			idx := i*nLevels + l
			if idx >= len(pres) || idx >= len(temp) || idx >= len(psal) {
				break
			}
			p, t, s := float64(pres[idx]), float64(temp[idx]), float64(psal[idx])
			if missing(p) || missing(t) || missing(s) {
				continue
			}
			profiles = append(profiles, domain.Profile{
				FloatID:     floatID,
				CycleNumber: cycle,
				Latitude:    lats[i],
				Longitude:   lons[i],
				Date:        date,
				Pressure:    p,
				Temperature: t,
				Salinity:    s,
			})
		}
	}

	return profiles
}

// juldToTime converts fractional days since the 1950 epoch.
func juldToTime(juld float64) time.Time {
	seconds := juld * 24 * 3600
	return juldEpoch.Add(time.Duration(seconds * float64(time.Second))).UTC()
}

func missing(v float64) bool {
	return math.IsNaN(v) || math.Abs(v) >= fillThreshold
}

func validPosition(lats, lons []float64, i int) bool {
	if i >= len(lats) || i >= len(lons) {
		return false
	}
	return !missing(lats[i]) && !missing(lons[i]) &&
		lats[i] >= -90 && lats[i] <= 90 && lons[i] >= -180 && lons[i] <= 180
}

func readPlatformNumber(ds netcdf.Dataset) (string, error) {
	v, err := ds.Var("PLATFORM_NUMBER")
	if err != nil {
		return "", fmt.Errorf("failed to read PLATFORM_NUMBER: %w", err)
	}
	n, err := v.Len()
	if err != nil {
		return "", fmt.Errorf("failed to size PLATFORM_NUMBER: %w", err)
	}
	dims, err := v.LenDims()
	if err != nil {
		return "", fmt.Errorf("failed to read PLATFORM_NUMBER dims: %w", err)
	}

	buf := make([]byte, n)
	if err := v.ReadBytes(buf); err != nil {
		return "", fmt.Errorf("failed to read PLATFORM_NUMBER: %w", err)
	}

	// Char matrix [N_PROF][STRING8]; every row names the same platform.
	strLen := int(n)
	if len(dims) == 2 {
		strLen = int(dims[1])
	}
	if strLen > len(buf) {
		strLen = len(buf)
	}
	id := strings.TrimRight(strings.TrimSpace(string(buf[:strLen])), "\x00")
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("empty PLATFORM_NUMBER")
	}
	return id, nil
}

func readFloat64s(ds netcdf.Dataset, name string) ([]float64, error) {
	v, err := ds.Var(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	n, err := v.Len()
	if err != nil {
		return nil, fmt.Errorf("failed to size %s: %w", name, err)
	}
	out := make([]float64, n)
	if err := v.ReadFloat64s(out); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return out, nil
}

func readFloat32s(ds netcdf.Dataset, name string) ([]float32, error) {
	v, err := ds.Var(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	n, err := v.Len()
	if err != nil {
		return nil, fmt.Errorf("failed to size %s: %w", name, err)
	}
	out := make([]float32, n)
	if err := v.ReadFloat32s(out); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return out, nil
}

func readInt32s(ds netcdf.Dataset, name string) ([]int32, error) {
	v, err := ds.Var(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	n, err := v.Len()
	if err != nil {
		return nil, fmt.Errorf("failed to size %s: %w", name, err)
	}
	out := make([]int32, n)
	if err := v.ReadInt32s(out); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return out, nil
}
