package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sourcebook/internal/core/domain"
)

func TestParseOutput(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", outputTable, false},
		{"JSON", outputJSON, false},
		{" yaml ", outputYAML, false},
		{"csv", outputCSV, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseOutput(tt.in, outputTable, outputJSON, outputYAML, outputCSV)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	setupTestServices(t)
	_, err := execute(t, "version")
	require.NoError(t, err)

	assert.Equal(t, 80, terminalWidth(rootCmd))
	assert.False(t, stdoutTerminal(rootCmd))
}
