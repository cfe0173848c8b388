package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/deplist/internal/adapters/config"
	"go.trai.ch/deplist/internal/core/domain"
	"go.trai.ch/deplist/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	return config.NewLoader(mocks.NewMockLogger(ctrl))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// unsetForTest clears key for the duration of the test and restores it afterwards.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoader_Load_Defaults(t *testing.T) {
	cfg, err := newLoader(t).Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_DefaultFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.ConfigFileName, `
oracle:
  path: /opt/tools/deplister.exe
search:
  command: where
  args: []
filter:
  system_markers: ["system32", "SysWOW64"]
cache:
  path_entries: 16
`)

	cfg, err := newLoader(t).Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, "/opt/tools/deplister.exe", cfg.Oracle.Path)
	assert.Equal(t, domain.DefaultOracleName, cfg.Oracle.Name, "keys absent from the file keep their defaults")
	assert.Equal(t, "where", cfg.Search.Command)
	assert.Empty(t, cfg.Search.Args)
	assert.Equal(t, []string{"system32", "SysWOW64"}, cfg.Filter.SystemMarkers)
	assert.Equal(t, 16, cfg.Cache.PathEntries)
}

func TestLoader_Load_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "custom.yaml", "oracle:\n  name: lister.exe\n")

	cfg, err := newLoader(t).Load(dir, "custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, "lister.exe", cfg.Oracle.Name)
}

func TestLoader_Load_ExplicitFileMissing(t *testing.T) {
	_, err := newLoader(t).Load(t.TempDir(), "missing.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_Load_CommentOnlyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.ConfigFileName, "# nothing configured yet\n")

	cfg, err := newLoader(t).Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "syntax error", content: "oracle: [unclosed\n"},
		{name: "unknown key", content: "oracle:\n  flavour: x\n"},
		{name: "wrong type", content: "cache:\n  path_entries: many\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, domain.ConfigFileName, tt.content)

			_, err := newLoader(t).Load(dir, "")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
		})
	}
}

func TestLoader_Load_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.ConfigFileName, "oracle:\n  path: /from/file\n")

	t.Setenv("DEPLIST_ORACLE_PATH", "/from/env")
	t.Setenv("DEPLIST_FILTER_SYSTEM_MARKERS", "system32,winsxs")
	t.Setenv("DEPLIST_CACHE_PATH_ENTRIES", "32")

	cfg, err := newLoader(t).Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Oracle.Path)
	assert.Equal(t, []string{"system32", "winsxs"}, cfg.Filter.SystemMarkers)
	assert.Equal(t, 32, cfg.Cache.PathEntries)
}

func TestLoader_Load_InvalidEnvironment(t *testing.T) {
	t.Setenv("DEPLIST_CACHE_PATH_ENTRIES", "lots")

	_, err := newLoader(t).Load(t.TempDir(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigEnvFailed)
}

func TestLoader_Load_DotEnv(t *testing.T) {
	unsetForTest(t, "DEPLIST_SEARCH_COMMAND")
	unsetForTest(t, "DEPLIST_ORACLE_NAME")
	t.Setenv("DEPLIST_ORACLE_PATH", "/real/env/wins")

	dir := t.TempDir()
	writeFile(t, dir, domain.DotEnvFileName, "DEPLIST_SEARCH_COMMAND=where\nDEPLIST_ORACLE_PATH=/dotenv/loses\n")

	cfg, err := newLoader(t).Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "where", cfg.Search.Command)
	assert.Equal(t, "/real/env/wins", cfg.Oracle.Path)
	assert.Equal(t, domain.DefaultOracleName, cfg.Oracle.Name)
}

func TestLoader_Load_InvalidDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, domain.DotEnvFileName, "THIS IS NOT 'VALID\n")

	_, err := newLoader(t).Load(dir, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDotEnvFailed)
}

func TestLoader_Load_NonPositiveCacheSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	dir := t.TempDir()
	writeFile(t, dir, domain.ConfigFileName, "cache:\n  path_entries: 0\n")

	cfg, err := config.NewLoader(log).Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPathCacheEntries, cfg.Cache.PathEntries)
}
