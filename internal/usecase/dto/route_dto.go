package dto

// RouteInfoRequest asks for relay routes from a float to a destination
// port.
type RouteInfoRequest struct {
	FloatID     string `query:"float_id" validate:"required"`
	Destination string `query:"destination" validate:"required"`
}

// RoutePort is one relay candidate with its leg distances.
type RoutePort struct {
	Name                string  `json:"name"`
	Lat                 float64 `json:"lat"`
	Lon                 float64 `json:"lon"`
	DistanceFromFloatKm float64 `json:"distance_from_float_km"`
	DistanceToDestKm    float64 `json:"distance_to_dest_km"`
	TotalDistanceKm     float64 `json:"total_distance_km"`
	Primary             bool    `json:"primary"`
}

// RouteInfoResponse lists candidates nearest-first; the first one is the
// primary route.
type RouteInfoResponse struct {
	FloatID        string      `json:"float_id"`
	FloatLat       float64     `json:"float_lat"`
	FloatLon       float64     `json:"float_lon"`
	Destination    string      `json:"destination"`
	DestinationLat float64     `json:"destination_lat"`
	DestinationLon float64     `json:"destination_lon"`
	Ports          []RoutePort `json:"ports"`
}

// PortListResponse is the full port catalog.
type PortListResponse struct {
	Ports []PortDTO `json:"ports"`
	Total int       `json:"total"`
}

type PortDTO struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}
