package models

// TripRecord represents one taxi ride from the Chicago trips export.
// Rows missing a pickup coordinate are dropped at load time and never
// reach this struct.
type TripRecord struct {
	PickupLatitude  float64 `json:"pickupLatitude" db:"pickup_latitude"`
	PickupLongitude float64 `json:"pickupLongitude" db:"pickup_longitude"`
	TripMiles       float64 `json:"tripMiles" db:"trip_miles"`
}

// PickupPoint is a single (lat, lon) pair for map rendering.
type PickupPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MapViewport describes the area the map should frame for a pickup
// selection. Bounds and center are in degrees.
type MapViewport struct {
	CenterLat float64 `json:"centerLat"`
	CenterLon float64 `json:"centerLon"`
	MinLat    float64 `json:"minLat"`
	MaxLat    float64 `json:"maxLat"`
	MinLon    float64 `json:"minLon"`
	MaxLon    float64 `json:"maxLon"`
	Zoom      int     `json:"zoom"`
}

// PickupsResponse is the payload for the pickup map view.
type PickupsResponse struct {
	Points   []PickupPoint `json:"points"`
	Count    int           `json:"count"`
	Miles    int           `json:"miles"`
	Viewport MapViewport   `json:"viewport"`
}
