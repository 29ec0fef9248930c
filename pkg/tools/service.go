package tools

import (
	"log/slog"

	"github.com/mapworks/gmapsmcp/pkg/gmaps"
)

// Service bundles the tool adapters around a shared upstream client.
// The client is the only long-lived dependency; every call is otherwise
// independent and holds no cross-call state.
type Service struct {
	maps   *gmaps.Client
	logger *slog.Logger
}

// NewService creates the adapter set backed by the given Maps client.
func NewService(client *gmaps.Client, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		maps:   client,
		logger: logger,
	}
}
