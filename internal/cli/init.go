package cli

import (
	"fmt"
	"os"

	"github.com/ariel-frischer/latest-changelog/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a commented .latest-changelog.yml",
		Long: `Create a project config file with every option and its default value.

Examples:
  latest-changelog init          # Create .latest-changelog.yml
  latest-changelog init --force  # Overwrite an existing file`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path := config.ProjectConfigPath()

	if _, err := os.Stat(path); err == nil && !force {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s already exists (use --force to overwrite)\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Created %s\n", path)
	return nil
}
