package tools

import (
	"github.com/mapworks/gmapsmcp/pkg/geo"
)

// Location is a resolved geographic point, optionally annotated with the
// address and place ID that produced it.
type Location struct {
	geo.Location
	Address string `json:"address,omitempty"`
	PlaceID string `json:"placeId,omitempty"`
}

// LocationInput is a raw location argument: either a free-text address or
// a "lat,lng" pair, discriminated by IsCoordinates. It is consumed once
// to produce a Location.
type LocationInput struct {
	Value         string `json:"value"`
	IsCoordinates bool   `json:"isCoordinates"`
}

// TravelMode selects how routes and travel times are computed.
type TravelMode string

const (
	TravelModeDriving   TravelMode = "driving"
	TravelModeWalking   TravelMode = "walking"
	TravelModeBicycling TravelMode = "bicycling"
	TravelModeTransit   TravelMode = "transit"
)

// parseTravelMode applies the driving default and rejects modes outside
// the schema's enumeration before anything is sent upstream.
func parseTravelMode(s string) (TravelMode, error) {
	switch TravelMode(s) {
	case "":
		return TravelModeDriving, nil
	case TravelModeDriving, TravelModeWalking, TravelModeBicycling, TravelModeTransit:
		return TravelMode(s), nil
	default:
		return "", InvalidArgumentf("invalid travel mode %q: must be one of driving, walking, bicycling, transit", s)
	}
}

// TextValue is the dual human-readable/machine-unit representation used
// for distances and durations, mirroring the provider's convention.
type TextValue struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
}

// NearbyPlace is the subset of place fields returned by search_nearby.
// Optional fields stay absent when upstream omits them; no defaults are
// fabricated.
type NearbyPlace struct {
	PlaceID          string        `json:"placeId"`
	Name             string        `json:"name"`
	Location         *geo.Location `json:"location,omitempty"`
	Rating           float64       `json:"rating,omitempty"`
	UserRatingsTotal int           `json:"userRatingsTotal,omitempty"`
	Types            []string      `json:"types,omitempty"`
	Vicinity         string        `json:"vicinity,omitempty"`
}

// PlaceDetails is the normalized place record returned by
// get_place_details.
type PlaceDetails struct {
	PlaceID          string        `json:"placeId"`
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formattedAddress,omitempty"`
	Location         *geo.Location `json:"location,omitempty"`
	Rating           float64       `json:"rating,omitempty"`
	UserRatingsTotal int           `json:"userRatingsTotal,omitempty"`
	OpeningHours     *OpeningHours `json:"openingHours,omitempty"`
	Photos           []Photo       `json:"photos,omitempty"`
	PriceLevel       *int          `json:"priceLevel,omitempty"`
	Types            []string      `json:"types,omitempty"`
	Website          string        `json:"website,omitempty"`
	PhoneNumber      string        `json:"phoneNumber,omitempty"`
}

// OpeningHours is a place's opening schedule.
type OpeningHours struct {
	OpenNow bool            `json:"openNow,omitempty"`
	Periods []OpeningPeriod `json:"periods,omitempty"`
}

// OpeningPeriod is one open/close window. Close stays zero-valued for
// places that never close.
type OpeningPeriod struct {
	Open  DayTime `json:"open"`
	Close DayTime `json:"close"`
}

// DayTime is a day-of-week (0 = Sunday) plus "hhmm" time point.
type DayTime struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}

// Photo is an opaque photo reference with its dimensions. Raw bytes are
// never resolved.
type Photo struct {
	PhotoReference string `json:"photoReference"`
	Height         int    `json:"height"`
	Width          int    `json:"width"`
}

// DirectionsResult mirrors the upstream route/leg/step nesting.
type DirectionsResult struct {
	Routes []DirectionsRoute `json:"routes"`
}

// DirectionsRoute is one route alternative.
type DirectionsRoute struct {
	Summary string     `json:"summary"`
	Legs    []RouteLeg `json:"legs"`
}

// RouteLeg is the stretch between two consecutive stops.
type RouteLeg struct {
	Distance     TextValue   `json:"distance"`
	Duration     TextValue   `json:"duration"`
	StartAddress string      `json:"startAddress"`
	EndAddress   string      `json:"endAddress"`
	Steps        []RouteStep `json:"steps"`
}

// RouteStep is a single navigation instruction.
type RouteStep struct {
	Distance     TextValue `json:"distance"`
	Duration     TextValue `json:"duration"`
	Instructions string    `json:"instructions"`
	TravelMode   string    `json:"travelMode"`
}

// DistanceMatrixResult is the origin x destination matrix. An empty
// matrix is a legal result and is returned as-is.
type DistanceMatrixResult struct {
	OriginAddresses      []string    `json:"originAddresses"`
	DestinationAddresses []string    `json:"destinationAddresses"`
	Rows                 []MatrixRow `json:"rows"`
}

// MatrixRow is one origin's row of cells.
type MatrixRow struct {
	Elements []MatrixElement `json:"elements"`
}

// MatrixElement is a single matrix cell. Distance and duration are absent
// when the cell status is not OK.
type MatrixElement struct {
	Status   string     `json:"status"`
	Distance *TextValue `json:"distance,omitempty"`
	Duration *TextValue `json:"duration,omitempty"`
}

// ElevationSample is one normalized elevation reading.
type ElevationSample struct {
	Elevation  float64      `json:"elevation"`
	Location   geo.Location `json:"location"`
	Resolution float64      `json:"resolution"`
}
