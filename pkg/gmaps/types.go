package gmaps

// Wire-format types for the Maps Web Service JSON payloads. Field sets are
// limited to what the tools consume; the APIs return more.

// Status values the APIs embed in otherwise-successful HTTP responses.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

// LatLng is the coordinate pair as the Maps APIs serialize it.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry holds the location block of a place or geocode result.
type Geometry struct {
	Location LatLng `json:"location"`
}

// TextValue is the dual human/machine representation the APIs use for
// distances and durations.
type TextValue struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
}

// GeocodeResponse is the body of a geocode or reverse-geocode call.
type GeocodeResponse struct {
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
	Results      []GeocodeResult `json:"results"`
}

// GeocodeResult is a single geocoding candidate.
type GeocodeResult struct {
	PlaceID          string   `json:"place_id"`
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
}

// NearbySearchResponse is the body of a Places nearby search.
type NearbySearchResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Results      []PlaceResult `json:"results"`
}

// PlaceResult is a single place in a nearby search response.
type PlaceResult struct {
	PlaceID          string    `json:"place_id"`
	Name             string    `json:"name"`
	Geometry         *Geometry `json:"geometry,omitempty"`
	Rating           float64   `json:"rating,omitempty"`
	UserRatingsTotal int       `json:"user_ratings_total,omitempty"`
	Types            []string  `json:"types,omitempty"`
	Vicinity         string    `json:"vicinity,omitempty"`
}

// PlaceDetailsResponse is the body of a Place Details call.
type PlaceDetailsResponse struct {
	Status       string              `json:"status"`
	ErrorMessage string              `json:"error_message,omitempty"`
	Result       *PlaceDetailsResult `json:"result,omitempty"`
}

// PlaceDetailsResult carries the fields requested by the details allowlist.
type PlaceDetailsResult struct {
	PlaceID              string        `json:"place_id"`
	Name                 string        `json:"name"`
	FormattedAddress     string        `json:"formatted_address,omitempty"`
	Geometry             *Geometry     `json:"geometry,omitempty"`
	Rating               float64       `json:"rating,omitempty"`
	UserRatingsTotal     int           `json:"user_ratings_total,omitempty"`
	OpeningHours         *OpeningHours `json:"opening_hours,omitempty"`
	Photos               []Photo       `json:"photos,omitempty"`
	PriceLevel           *int          `json:"price_level,omitempty"`
	Types                []string      `json:"types,omitempty"`
	Website              string        `json:"website,omitempty"`
	FormattedPhoneNumber string        `json:"formatted_phone_number,omitempty"`
}

// OpeningHours is a place's opening schedule.
type OpeningHours struct {
	OpenNow bool     `json:"open_now,omitempty"`
	Periods []Period `json:"periods,omitempty"`
}

// Period is one open/close window. Close may be absent for places that
// never close.
type Period struct {
	Open  DayTime  `json:"open"`
	Close *DayTime `json:"close,omitempty"`
}

// DayTime is a day-of-week plus "hhmm" time point.
type DayTime struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}

// Photo is an opaque photo reference with dimensions. The raw bytes are
// never fetched here.
type Photo struct {
	PhotoReference string `json:"photo_reference"`
	Height         int    `json:"height"`
	Width          int    `json:"width"`
}

// DistanceMatrixResponse is the body of a Distance Matrix call.
type DistanceMatrixResponse struct {
	Status               string              `json:"status"`
	ErrorMessage         string              `json:"error_message,omitempty"`
	OriginAddresses      []string            `json:"origin_addresses"`
	DestinationAddresses []string            `json:"destination_addresses"`
	Rows                 []DistanceMatrixRow `json:"rows"`
}

// DistanceMatrixRow is one origin's row of cells.
type DistanceMatrixRow struct {
	Elements []DistanceMatrixElement `json:"elements"`
}

// DistanceMatrixElement is a single origin x destination cell. Distance
// and duration are absent when the cell status is not OK.
type DistanceMatrixElement struct {
	Status   string     `json:"status"`
	Distance *TextValue `json:"distance,omitempty"`
	Duration *TextValue `json:"duration,omitempty"`
}

// DirectionsResponse is the body of a Directions call.
type DirectionsResponse struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message,omitempty"`
	Routes       []Route `json:"routes"`
}

// Route is one route alternative.
type Route struct {
	Summary string `json:"summary"`
	Legs    []Leg  `json:"legs"`
}

// Leg is the stretch between two consecutive stops of a route.
type Leg struct {
	Distance     TextValue `json:"distance"`
	Duration     TextValue `json:"duration"`
	StartAddress string    `json:"start_address"`
	EndAddress   string    `json:"end_address"`
	Steps        []Step    `json:"steps"`
}

// Step is a single navigation instruction within a leg.
type Step struct {
	Distance         TextValue `json:"distance"`
	Duration         TextValue `json:"duration"`
	HTMLInstructions string    `json:"html_instructions"`
	TravelMode       string    `json:"travel_mode"`
}

// ElevationResponse is the body of an Elevation call.
type ElevationResponse struct {
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
	Results      []ElevationResult `json:"results"`
}

// ElevationResult is one elevation sample.
type ElevationResult struct {
	Elevation  float64 `json:"elevation"`
	Location   LatLng  `json:"location"`
	Resolution float64 `json:"resolution"`
}
