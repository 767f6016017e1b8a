package ports

import "github.com/AntonioJCosta/trove/internal/core/domain/settings"

// ConfigSourceProvider reports the configuration files that were considered.
type ConfigSourceProvider interface {
	Sources() []settings.Source
}
