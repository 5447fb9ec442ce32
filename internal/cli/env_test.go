package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/listcomp/internal/cli"
)

func TestBindEnvVars(t *testing.T) {
	tcs := map[string]struct {
		envVars       map[string]string
		wantLogLevel  string
		wantLogFormat string
		args          []string
	}{
		"environment variables are bound when no args provided": {
			envVars: map[string]string{
				"LISTCOMP_LOG_LEVEL":  "debug",
				"LISTCOMP_LOG_FORMAT": "json",
			},
			args:          []string{},
			wantLogLevel:  "debug",
			wantLogFormat: "json",
		},
		"command line args take precedence over environment variables": {
			envVars: map[string]string{
				"LISTCOMP_LOG_LEVEL":  "debug",
				"LISTCOMP_LOG_FORMAT": "json",
			},
			args:          []string{"--log-level", "error", "--log-format", "text"},
			wantLogLevel:  "error",
			wantLogFormat: "text",
		},
		"partial environment variable override": {
			envVars: map[string]string{
				"LISTCOMP_LOG_LEVEL": "warn",
			},
			args:          []string{"--log-format", "json"},
			wantLogLevel:  "warn",
			wantLogFormat: "json",
		},
		"no environment variables uses defaults": {
			envVars:       map[string]string{},
			args:          []string{},
			wantLogLevel:  "info",
			wantLogFormat: "text",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			for key, val := range tc.envVars {
				t.Setenv(key, val)
			}

			cmd := cli.NewRootCmd()

			err := cmd.ParseFlags(tc.args)
			require.NoError(t, err)

			logLevel, err := cmd.Flags().GetString("log-level")
			require.NoError(t, err)
			assert.Equal(t, tc.wantLogLevel, logLevel)

			logFormat, err := cmd.Flags().GetString("log-format")
			require.NoError(t, err)
			assert.Equal(t, tc.wantLogFormat, logFormat)
		})
	}
}

func TestBindEnvVars_Subcommand(t *testing.T) {
	t.Setenv("LISTCOMP_OUTPUT", "json")

	cmd := cli.NewRootCmd()

	evens, _, err := cmd.Find([]string{"evens"})
	require.NoError(t, err)

	output := evens.Flags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "json", output.Value.String())
	assert.True(t, output.Changed)
}

func TestEnvironmentVariableUsageUpdate(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCmd()

	logLevelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logLevelFlag)
	assert.Contains(t, logLevelFlag.Usage, "$LISTCOMP_LOG_LEVEL")

	writeConfigFlag := cmd.Flags().Lookup("write-config")
	require.NotNil(t, writeConfigFlag)
	assert.Contains(t, writeConfigFlag.Usage, "$LISTCOMP_WRITE_CONFIG")

	exclaim, _, err := cmd.Find([]string{"exclaim"})
	require.NoError(t, err)

	inputFlag := exclaim.Flags().Lookup("input")
	require.NotNil(t, inputFlag)
	assert.Contains(t, inputFlag.Usage, "$LISTCOMP_INPUT")
}
