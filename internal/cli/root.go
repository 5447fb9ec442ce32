package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/macropower/listcomp/pkg/config"
	"github.com/macropower/listcomp/pkg/log"
)

const (
	cmdName = "listcomp"
	cmdDesc = `Keep the even numbers of a list, or exclaim every sentence in one.`

	cmdExamples = `  # Keep the even numbers:
  listcomp evens 0 1 2 3 4 5 6 7 8 9

  # Negative numbers go after the dash:
  listcomp evens -- -4 -3 -2

  # Exclaim each line read from stdin:
  printf 'I like computers\nI require coffee\n' | listcomp exclaim

  # Read JSON, write YAML:
  echo '[1, 2, 3, 4]' | listcomp evens -i json -o yaml

  # Write the default configuration file and exit:
  listcomp --write-config`
)

type RootArgs struct {
	Config      *config.Config
	LogLevel    string
	LogFormat   string
	ConfigPath  string
	WriteConfig bool
	ShowConfig  bool
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))
	cmd.PersistentFlags().
		StringVar(&ra.ConfigPath, "config", "", "Path to the listcomp configuration file")

	cmd.Flags().BoolVar(&ra.WriteConfig, "write-config", false, "Write the default configuration file and exit")
	cmd.Flags().BoolVar(&ra.ShowConfig, "show-config", false, "Print the active configuration and exit")

	err := cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	err = cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	err = cmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:               cmdName,
		Short:             cmdDesc,
		Example:           cmdExamples,
		Args:              cobra.NoArgs,
		PersistentPreRunE: setup(args),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, args)
		},
	}

	args.AddFlags(cmd)
	cmd.AddCommand(NewEvensCmd(args), NewExclaimCmd(args))

	bindEnvVars(cmd)

	return cmd
}

// setup loads the configuration, applies it to any flags not already set
// by arguments or environment, and installs the logger.
func setup(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg := config.NewConfig()

		if !ra.WriteConfig {
			var err error

			cfg, err = loadConfig(ra.ConfigPath)
			if err != nil {
				return err
			}
		}

		ra.Config = cfg

		err := applyConfig(cmd.Flags(), cfg)
		if err != nil {
			return err
		}

		logHandler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), ra.LogLevel, ra.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		logger := slog.New(logHandler)
		slog.SetDefault(logger)
		cmd.SetContext(log.NewContext(cmd.Context(), logger))

		return nil
	}
}

// loadConfig reads the config at path, or at [config.GetPath] when path is
// empty. A missing default config is not an error.
func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		path = config.GetPath()
	}

	cl, err := config.NewConfigLoaderFromFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no config file, using defaults", slog.String("path", path))

			return config.NewConfig(), nil
		}

		return nil, fmt.Errorf("load config %q: %w", path, err)
	}

	err = cl.Validate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg, err := cl.Load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// applyConfig sets each config-backed flag that was not set explicitly.
// Flags that do not exist on the running command are skipped.
func applyConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	for name, value := range map[string]string{
		"log-level":  cfg.Log.Level,
		"log-format": cfg.Log.Format,
		"input":      cfg.IO.Input,
		"output":     cfg.IO.Output,
	} {
		flag := flags.Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}

		err := flags.Set(name, value)
		if err != nil {
			return fmt.Errorf("set --%s from config: %w", name, err)
		}
	}

	return nil
}

func runRoot(cmd *cobra.Command, ra *RootArgs) error {
	switch {
	case ra.WriteConfig:
		path := ra.ConfigPath
		if path == "" {
			path = config.GetPath()
		}

		err := config.WriteDefaultConfig(path, false)
		if err != nil {
			return fmt.Errorf("write default config: %w", err)
		}

		return nil

	case ra.ShowConfig:
		b, err := ra.Config.MarshalYAML()
		if err != nil {
			return fmt.Errorf("marshal config yaml: %w", err)
		}

		_, err = cmd.OutOrStdout().Write(b)
		if err != nil {
			return fmt.Errorf("write config: %w", err)
		}

		return nil
	}

	return cmd.Help() //nolint:wrapcheck // Return the original error.
}
