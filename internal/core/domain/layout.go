package domain

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "deplist.yaml"

	// DotEnvFileName is the name of the optional environment file.
	DotEnvFileName = ".env"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "DEPLIST"

	// DefaultOracleName is the executable queried for direct dependencies.
	DefaultOracleName = "deplister.exe"

	// DefaultSystemMarker is the path fragment identifying system libraries.
	DefaultSystemMarker = "system32"

	// DefaultPathCacheEntries bounds the path resolution cache.
	DefaultPathCacheEntries = 4096

	// MaxCapturedStderr bounds how much child stderr is kept for diagnostics.
	MaxCapturedStderr = 4096
)
