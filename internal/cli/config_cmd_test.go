package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/shelfview/internal/config"
)

func TestConfigInit(t *testing.T) {
	setupCLITest(t)
	home := os.Getenv(config.EnvHome)
	path := filepath.Join(home, "config.yaml")

	out, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var saved config.Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, config.DefaultEndpoint, saved.Catalog.Endpoint)
	assert.Equal(t, config.DefaultPageSize, saved.View.PageSize)

	_, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, os.WriteFile(path, []byte("view:\n  page_size: 20\n"), 0o600))
	_, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "page_size: 20")
}

func TestConfigInit_ExplicitPath(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "nested", "shelfview.yaml")

	// An explicit --config path has to exist before any command loads it.
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

	_, err := execute(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestConfigShow_Overrides(t *testing.T) {
	setupCLITest(t)
	home := os.Getenv(config.EnvHome)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("display:\n  locale: de-DE\n  currency: EUR\n"), 0o600))

	out, err := executeWithEnv(t,
		map[string]string{config.EnvPageSize: "20"},
		"--endpoint", "http://localhost:9999/products", "--timeout", "3s",
		"config", "show")
	require.NoError(t, err)

	var shown config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "http://localhost:9999/products", shown.Catalog.Endpoint)
	assert.Equal(t, "3s", shown.Catalog.Timeout.String())
	assert.Equal(t, 20, shown.View.PageSize)
	assert.Equal(t, "de-DE", shown.Display.Locale)
	assert.Equal(t, "EUR", shown.Display.Currency)
	assert.Equal(t, config.DefaultOutputFormat, shown.Output.DefaultFormat)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		wantErr error
		wantOut string
	}{
		{
			name:    "defaults",
			wantOut: "Configuration is valid",
		},
		{
			name:    "verbose",
			args:    []string{"--verbose"},
			wantOut: "Catalog endpoint: " + config.DefaultEndpoint,
		},
		{
			name:    "page size not an option",
			env:     map[string]string{config.EnvPageSize: "7"},
			wantErr: config.ErrInvalidPageSize,
		},
		{
			name:    "unknown currency",
			env:     map[string]string{config.EnvCurrency: "ZZZ"},
			wantErr: config.ErrInvalidCurrency,
		},
		{
			name:    "unknown output",
			env:     map[string]string{config.EnvOutput: "xml"},
			wantErr: config.ErrInvalidOutputFormat,
		},
		{
			name:    "ftp endpoint",
			env:     map[string]string{config.EnvEndpoint: "ftp://example.com/products"},
			wantErr: config.ErrInvalidEndpoint,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			args := append([]string{"config", "validate"}, tt.args...)
			out, err := executeWithEnv(t, tt.env, args...)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestConfigLoad_BadEnvironment(t *testing.T) {
	setupCLITest(t)

	_, err := executeWithEnv(t, map[string]string{config.EnvTimeout: "soon"}, "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvTimeout)
}

func TestConfigLoad_MissingExplicitFile(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading configuration")
}
