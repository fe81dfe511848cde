package cli

import (
	"errors"

	"github.com/ariel-frischer/latest-changelog/internal/build"
	"github.com/ariel-frischer/latest-changelog/internal/changelog"
	"github.com/ariel-frischer/latest-changelog/internal/config"
	clierrors "github.com/ariel-frischer/latest-changelog/internal/errors"
	"github.com/ariel-frischer/latest-changelog/internal/git"
	"github.com/ariel-frischer/latest-changelog/internal/pipeline"
	"github.com/spf13/cobra"
)

func addExtractFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("changelog", "c", "", "Changelog to read (default ./CHANGELOG.md)")
	cmd.Flags().StringP("output", "o", "", "File to write the newest entry to (default ./latest_changelog.md)")
	cmd.Flags().String("parser", "", "Heading scanner: regex or markdown (default regex)")
	cmd.Flags().Bool("all-matches", false, "Validate and write every entry in order instead of only the newest")
	cmd.Flags().Bool("normalize", false, "Ignore case and a leading \"v\" when comparing versions")
	cmd.Flags().Bool("git-tags", false, "Also accept tags pointing at HEAD as expected versions")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, cmd.ErrOrStderr())
	if build.IsDevBuild() {
		logger.Debug("running a development build", "commit", build.Commit)
	}
	git.SetDebugLogger(debugf(logger))
	defer git.SetDebugLogger(nil)

	versions := append([]string(nil), args...)
	if cfg.GitTags {
		if !git.IsGitRepository("") {
			return clierrors.GitTagsUnavailable(errors.New("not a git repository"))
		}
		tags, err := git.HeadTags("")
		if err != nil {
			return clierrors.GitTagsUnavailable(err)
		}
		versions = append(versions, tags...)
	}
	logger.Debug("expected versions", "versions", versions)

	mode, err := changelog.ParseScanMode(cfg.Parser)
	if err != nil {
		return clierrors.ConfigInvalid(err)
	}

	extractor, err := changelog.NewExtractor(changelog.Patterns{
		Heading:  cfg.HeadingPattern,
		Boundary: cfg.BoundaryPattern,
	})
	if err != nil {
		return err
	}

	res, err := pipeline.Run(pipeline.Options{
		ChangelogPath: cfg.ChangelogPath,
		OutputPath:    cfg.OutputPath,
		Versions:      versions,
		Match:         changelog.MatchOptions{Normalize: cfg.NormalizeVersions},
		Mode:          mode,
		AllMatches:    cfg.AllMatches,
		Extractor:     extractor,
		Stdout:        cmd.OutOrStdout(),
		Logger:        logger,
	})
	if err != nil {
		return err
	}
	if res.IsNoOp() {
		logger.Info("no version entry found", "changelog", cfg.ChangelogPath)
	}
	return nil
}

// loadConfig loads the layered configuration and applies explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, clierrors.ConfigInvalid(err)
	}

	flags := cmd.Flags()
	if flags.Changed("changelog") {
		cfg.ChangelogPath, _ = flags.GetString("changelog")
	}
	if flags.Changed("output") {
		cfg.OutputPath, _ = flags.GetString("output")
	}
	if flags.Changed("parser") {
		cfg.Parser, _ = flags.GetString("parser")
	}
	if flags.Changed("all-matches") {
		cfg.AllMatches, _ = flags.GetBool("all-matches")
	}
	if flags.Changed("normalize") {
		cfg.NormalizeVersions, _ = flags.GetBool("normalize")
	}
	if flags.Changed("git-tags") {
		cfg.GitTags, _ = flags.GetBool("git-tags")
	}

	if err := config.ValidateConfigValues(cfg, "flags"); err != nil {
		return nil, clierrors.ConfigInvalid(err)
	}
	return cfg, nil
}
