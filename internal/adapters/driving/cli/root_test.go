package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sourcebook/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "sourcebook", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "geospatial data sources")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{"verbose", "v"},
		{"config-dir", ""},
		{"catalog", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := rootCmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
		})
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{
		"list", "search", "show", "categories", "formats", "theme", "config",
		"about", "learn", "map", "export", "open", "mcp", "tui", "version",
	}
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, name := range want {
		assert.True(t, names[name], "missing command %s", name)
	}
}

func TestRootCmd_NonInteractivePrintsTable(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t)

	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "osm-001")
	assert.Contains(t, out, "Showing 20 of 20 sources")
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "bogus")

	assert.Error(t, err)
}

func TestRootCmd_ServiceFactory(t *testing.T) {
	setupTestServices(t)
	var got Options
	closed := false
	SetServiceFactory(func(opts Options) (*Services, error) {
		got = opts
		return &Services{Close: func() error {
			closed = true
			return nil
		}}, nil
	})
	defer SetServiceFactory(nil)

	_, err := execute(t, "--config-dir", "/tmp/sb", "--catalog", "cat.db", "version")
	require.NoError(t, err)
	require.NoError(t, teardown())

	assert.Equal(t, Options{ConfigDir: "/tmp/sb", CatalogPath: "cat.db"}, got)
	assert.True(t, closed)
	configDir, catalogPath = "", ""
}

func TestRootCmd_ServiceFactoryError(t *testing.T) {
	setupTestServices(t)
	SetServiceFactory(func(Options) (*Services, error) {
		return nil, errors.New("disk full")
	})
	defer SetServiceFactory(nil)

	_, err := execute(t, "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialising services")
	assert.Contains(t, err.Error(), "disk full")
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	setupTestServices(t)
	defer logger.SetVerbose(false)

	_, err := execute(t, "-v", "version")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestExecute_RunsTeardown(t *testing.T) {
	setupTestServices(t)
	closed := false
	closeServices = func() error {
		closed = true
		return nil
	}
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	require.NoError(t, Execute())
	assert.True(t, closed)
	assert.Nil(t, closeServices)
}

func TestErrNotConfigured(t *testing.T) {
	assert.EqualError(t, errNotConfigured("catalog"), "catalog service not configured")
}
