package domain

// Port is a static catalog entry. The catalog is immutable after load and
// names are unique within it (case-insensitive lookup depends on this).
type Port struct {
	Name string  `json:"name" mapstructure:"name"`
	Lat  float64 `json:"lat" mapstructure:"lat"`
	Lon  float64 `json:"lon" mapstructure:"lon"`
}
