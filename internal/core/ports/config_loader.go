package ports

import "go.trai.ch/deplist/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load merges defaults, the configuration file, the .env file and the environment.
	// An empty path selects the default file in cwd, which may be absent.
	Load(cwd, path string) (domain.Config, error)
}
