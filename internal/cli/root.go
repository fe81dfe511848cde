// Package cli implements the latest-changelog command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ariel-frischer/latest-changelog/internal/build"
	clierrors "github.com/ariel-frischer/latest-changelog/internal/errors"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latest-changelog [version...]",
		Short: "Extract the newest CHANGELOG.md entry for a release",
		Long: `Extract the newest entry of a Markdown changelog and write it to a file.

The changelog lists versions newest first under "## Version <version>"
headings. The version of the first entry must equal one of the versions given
as arguments (normally the release tag), otherwise nothing is written and the
command fails. A changelog without any version heading is not an error.

Configuration is read from .latest-changelog.yml (or --config), the user
config and LATEST_CHANGELOG_* environment variables; flags take precedence.`,
		Example: `  # Check the newest entry against the release tag and write latest_changelog.md
  latest-changelog "$GITHUB_REF_NAME"

  # Accept tags pointing at HEAD, ignoring a leading "v"
  latest-changelog --git-tags --normalize

  # Ignore "## Version" lines inside code blocks
  latest-changelog --parser markdown 1.2.0`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, args)
		},
	}

	cmd.SetVersionTemplate("{{.Name}} " + build.Info() + "\n")
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return clierrors.NewArgumentError(err.Error(), "Run 'latest-changelog --help' for usage")
	})

	cmd.PersistentFlags().String("config", "", "Config file (.yml, .yaml or .json)")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	addExtractFlags(cmd)
	cmd.AddCommand(newInitCmd())

	return cmd
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	return execute(rootCmd)
}

func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		noColor, _ := cmd.PersistentFlags().GetBool("no-color")
		clierrors.FprintError(cmd.ErrOrStderr(), clierrors.FromError(err), noColor)
	}
	return err
}

// newLogger returns a text logger on w; debug enables debug level,
// otherwise only warnings and errors are shown.
func newLogger(cmd *cobra.Command, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// debugf adapts a slog logger to printf-style debug hooks.
func debugf(logger *slog.Logger) func(format string, args ...any) {
	return func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}
}
