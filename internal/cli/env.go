package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// bindEnvVars binds LISTCOMP_<FLAG_NAME> environment variables to the flags
// of cmd, where the flag name is upper-cased and dashes become underscores.
//
// For example:
//   - Flag "log-level" becomes environment variable "LISTCOMP_LOG_LEVEL"
//   - Flag "output" becomes environment variable "LISTCOMP_OUTPUT"
//
// A flag set from the environment is marked as changed, so that arguments
// take precedence over environment variables, which take precedence over
// the config file and then default values.
//
// Flag usage strings are updated to include the variable name.
func bindEnvVars(cmd *cobra.Command) {
	cmd.Flags().VisitAll(bindFlagToEnv)
	cmd.PersistentFlags().VisitAll(bindFlagToEnv)
}

func bindFlagToEnv(flag *pflag.Flag) {
	envName := flagToEnvName(flag.Name)

	if !strings.Contains(flag.Usage, envName) {
		flag.Usage = fmt.Sprintf("%s ($%s)", flag.Usage, envName)
	}

	if flag.Changed {
		return
	}

	envValue, ok := os.LookupEnv(envName)
	if !ok {
		return
	}

	err := flag.Value.Set(envValue)
	if err != nil {
		// Keep the default value.
		slog.Error("failed to set flag from environment variable",
			slog.String("flag", flag.Name),
			slog.String("env", envName),
			slog.String("value", envValue),
			slog.Any("error", err),
		)

		return
	}

	flag.Changed = true
}

// flagToEnvName converts a flag name to its environment variable name.
// Example: "log-level" -> "LISTCOMP_LOG_LEVEL".
func flagToEnvName(flagName string) string {
	envName := strings.ReplaceAll(flagName, "-", "_")
	return strings.ToUpper(cmdName + "_" + envName)
}
