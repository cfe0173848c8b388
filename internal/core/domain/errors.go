package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedArguments is returned when the command line cannot be interpreted.
	ErrMalformedArguments = zerr.New("malformed arguments")

	// ErrUnknownFormat is returned when an output format is not one of list, tree or json.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'list', 'tree' or 'json'")

	// ErrCommandStartFailed is returned when a child process cannot be launched.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrCommandExitNonZero is returned when a child process exits with a non-zero status.
	ErrCommandExitNonZero = zerr.New("command exited with non-zero status")

	// ErrOracleUnavailable is returned when the oracle executable is missing or fails to launch.
	ErrOracleUnavailable = zerr.New("dependency oracle unavailable")

	// ErrOracleFailureExit is returned when the oracle launches but exits non-zero.
	ErrOracleFailureExit = zerr.New("dependency oracle exited with failure")

	// ErrPathNotFound is returned when the search utility reports no candidate for a name.
	ErrPathNotFound = zerr.New("dependency path not found")

	// ErrConfigReadFailed is returned when a configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is returned when a configuration file is not valid YAML.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrConfigEnvFailed is returned when an environment override cannot be applied.
	ErrConfigEnvFailed = zerr.New("invalid environment configuration")

	// ErrDotEnvFailed is returned when a .env file exists but cannot be loaded.
	ErrDotEnvFailed = zerr.New("failed to load .env file")

	// ErrPathCacheCreateFailed is returned when the path resolution cache cannot be created.
	ErrPathCacheCreateFailed = zerr.New("failed to create path cache")

	// ErrRenderFailed is returned when rendered output cannot be written.
	ErrRenderFailed = zerr.New("failed to render output")
)
