// Package geo provides common geographic types and validation.
// It centralizes coordinate handling so every tool applies the same
// bounds and parsing rules.
package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Location represents a geographic coordinate (latitude and longitude)
// with standardized JSON field names.
//
// Example:
//
//	loc := geo.Location{Latitude: 37.7749, Longitude: -122.4194}
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// String formats the location as "lat,lng" the way the Maps APIs expect.
func (l Location) String() string {
	return strconv.FormatFloat(l.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(l.Longitude, 'f', -1, 64)
}

// ValidateCoordinates checks that a latitude/longitude pair is within
// range. Bounds are inclusive: (0,0), (-90,-180) and (90,180) are all
// valid coordinates.
func ValidateCoordinates(lat, lng float64) error {
	// NaN fails every range comparison, so non-finite values are
	// rejected explicitly.
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return fmt.Errorf("invalid latitude %v: must be between -90 and 90", lat)
	}
	if math.IsNaN(lng) || math.IsInf(lng, 0) || lng < -180 || lng > 180 {
		return fmt.Errorf("invalid longitude %v: must be between -180 and 180", lng)
	}
	return nil
}

// ParseLatLng parses a "lat,lng" string into a Location. It requires
// exactly two numeric components and validates their ranges.
func ParseLatLng(s string) (Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("invalid coordinate string %q: expected \"lat,lng\"", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Location{}, fmt.Errorf("invalid latitude %q: not a number", strings.TrimSpace(parts[0]))
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Location{}, fmt.Errorf("invalid longitude %q: not a number", strings.TrimSpace(parts[1]))
	}

	if err := ValidateCoordinates(lat, lng); err != nil {
		return Location{}, err
	}

	return Location{Latitude: lat, Longitude: lng}, nil
}
