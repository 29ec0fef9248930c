package tools

import (
	"context"

	"github.com/mapworks/gmapsmcp/pkg/geo"
)

// resolveLocation turns a LocationInput into a concrete Location. A
// coordinate input is parsed and validated locally with no upstream
// contact; a free-text input goes through a geocode round-trip and the
// first candidate wins.
func (s *Service) resolveLocation(ctx context.Context, input LocationInput) (Location, error) {
	if input.IsCoordinates {
		loc, err := geo.ParseLatLng(input.Value)
		if err != nil {
			return Location{}, &ToolError{Kind: KindInvalidArgument, Message: err.Error()}
		}
		return Location{Location: loc}, nil
	}
	return s.geocode(ctx, input.Value)
}
