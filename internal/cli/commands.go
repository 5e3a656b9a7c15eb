package cli

import (
	"fmt"
	"os"

	"github.com/pyk/xdgdir/internal/version"
	"github.com/pyk/xdgdir/pkg/config"
	"github.com/pyk/xdgdir/pkg/errors"
	"github.com/pyk/xdgdir/pkg/logging"
	"github.com/pyk/xdgdir/pkg/ui"
	"github.com/pyk/xdgdir/pkg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "xdgdir",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringP("format", "f", "", MsgFlagFormat)

	// Add all commands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newDocCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// resolveDirs resolves the global directories, scoped to appName when one is given.
func resolveDirs(appName string) (xdg.BaseDirs, error) {
	if appName == "" {
		return xdg.Global()
	}
	return xdg.ForApp(appName)
}

// resolveFormat picks the output format: the --format flag wins over the
// configured default, and "auto" is settled by terminal detection.
func resolveFormat(cmd *cobra.Command, cfg *config.Config) (ui.Format, error) {
	name, _ := cmd.Root().PersistentFlags().GetString("format")
	if name == "" {
		name = cfg.Output.Format
	}

	format, err := ui.ParseFormat(name)
	if err != nil {
		return ui.FormatText, errors.Wrapf(err, errors.ErrInvalidInput,
			"invalid format %q", name).WithDetail("format", name)
	}

	if format == ui.FormatAuto {
		format = ui.DetectFormat(os.Stdout)
	}
	return format, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "xdgdir version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [app]",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.list")
			done := logging.LogOperationStart(logger, "list")
			defer done()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			appName := cfg.App
			if len(args) > 0 {
				appName = args[0]
			}

			dirs, err := resolveDirs(appName)
			if err != nil {
				return err
			}

			format, err := resolveFormat(cmd, cfg)
			if err != nil {
				return err
			}

			logger.Debug().
				Str("app", appName).
				Stringer("format", format).
				Msg("Rendering directories")

			return ui.Render(cmd.OutOrStdout(), dirs, format)
		},
	}
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "get <dir> [app]",
		Short:     MsgGetShort,
		Long:      MsgGetLong,
		Example:   MsgGetExample,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: xdg.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.get")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			appName := cfg.App
			if len(args) > 1 {
				appName = args[1]
			}

			dirs, err := resolveDirs(appName)
			if err != nil {
				return err
			}

			path, err := dirs.Dir(args[0])
			if err != nil {
				return err
			}

			logger.Debug().
				Str("dir", args[0]).
				Str("app", appName).
				Str("path", path).
				Msg("Resolved directory")

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}
