package domain

import "time"

// Profile is one depth level of a float's measurement cycle.
type Profile struct {
	ProfileID   int64     `json:"profile_id,omitempty" db:"profile_id"`
	FloatID     string    `json:"float_id" db:"float_id"`
	CycleNumber int       `json:"cycle_number" db:"cycle_number"`
	Latitude    float64   `json:"latitude" db:"latitude"`
	Longitude   float64   `json:"longitude" db:"longitude"`
	Date        time.Time `json:"date" db:"date"`
	Pressure    float64   `json:"pressure" db:"pressure"`
	Temperature float64   `json:"temperature" db:"temperature"`
	Salinity    float64   `json:"salinity" db:"salinity"`
}

// FloatMetadata describes a platform, one row per float.
type FloatMetadata struct {
	FloatID        string     `json:"float_id" db:"float_id"`
	PlatformType   string     `json:"platform_type" db:"platform_type"`
	Country        string     `json:"country" db:"country"`
	DeploymentDate *time.Time `json:"deployment_date,omitempty" db:"deployment_date"`
	Sensors        []string   `json:"sensors,omitempty" db:"sensors"`
}

// FloatSummary is a semantic-retrieval hit from the summary index.
type FloatSummary struct {
	FloatID string  `json:"float_id" db:"float_id"`
	Summary string  `json:"summary" db:"summary"`
	Score   float64 `json:"score,omitempty" db:"score"`
}
