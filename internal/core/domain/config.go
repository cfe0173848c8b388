package domain

import "runtime"

// Config holds the tunables of a closure computation.
type Config struct {
	Oracle OracleConfig `yaml:"oracle"`
	Search SearchConfig `yaml:"search"`
	Filter FilterConfig `yaml:"filter"`
	Cache  CacheConfig  `yaml:"cache"`
}

// OracleConfig locates the direct-dependency oracle.
type OracleConfig struct {
	// Name is looked up next to the running binary, then on PATH.
	Name string `yaml:"name"`
	// Path, when set, is used verbatim and skips the lookup.
	Path string `yaml:"path"`
}

// SearchConfig describes the system path-search utility.
type SearchConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// FilterConfig controls list-format filtering.
type FilterConfig struct {
	SystemMarkers []string `yaml:"system_markers" split_words:"true"`
}

// CacheConfig bounds in-process memoization.
type CacheConfig struct {
	PathEntries int `yaml:"path_entries" split_words:"true"`
}

// DefaultConfig returns the configuration used when no file or environment override is present.
func DefaultConfig() Config {
	return Config{
		Oracle: OracleConfig{Name: DefaultOracleName},
		Search: defaultSearch(runtime.GOOS),
		Filter: FilterConfig{SystemMarkers: []string{DefaultSystemMarker}},
		Cache:  CacheConfig{PathEntries: DefaultPathCacheEntries},
	}
}

func defaultSearch(goos string) SearchConfig {
	if goos == "windows" {
		return SearchConfig{Command: "where"}
	}
	return SearchConfig{Command: "which", Args: []string{"-a"}}
}
