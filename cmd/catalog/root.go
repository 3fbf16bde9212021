package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phrazzld/pattern-catalog/internal/config"
	"github.com/phrazzld/pattern-catalog/internal/platform/content"
	"github.com/phrazzld/pattern-catalog/internal/platform/logger"
	"github.com/phrazzld/pattern-catalog/internal/service"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	contentDir string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "catalog",
		Short:        "Validate and browse a pattern catalog content directory",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.contentDir, "content-dir", "",
		"content root holding categories/ and patterns/ (default from CATALOG_CONTENT_DIR or ./content)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn",
		"log level written to stderr (debug, info, warn, error)")

	cmd.AddCommand(
		newValidateCmd(opts),
		newCategoriesCmd(opts),
		newCategoryCmd(opts),
		newPatternsCmd(opts),
		newPatternCmd(opts),
		newTagsCmd(opts),
	)

	return cmd
}

// resolveContentDir prefers the flag, then configuration.
func (o *rootOptions) resolveContentDir() (string, error) {
	if o.contentDir != "" {
		return o.contentDir, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg.Content.Dir, nil
}

// setup builds the logger and content loader for a subcommand.
func (o *rootOptions) setup(cmd *cobra.Command) (*content.Loader, *slog.Logger, error) {
	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: o.logLevel}, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	dir, err := o.resolveContentDir()
	if err != nil {
		return nil, nil, err
	}

	return content.NewLoader(dir, l), l, nil
}

// useCases builds the catalog use cases over a content repository.
func (o *rootOptions) useCases(cmd *cobra.Command) (*service.UseCases, error) {
	loader, l, err := o.setup(cmd)
	if err != nil {
		return nil, err
	}

	repo := content.NewRepository(loader, l)
	return service.NewUseCases(repo.Categories(), repo.Patterns(), l)
}
