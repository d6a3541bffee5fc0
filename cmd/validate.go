package cmd

import (
	"fmt"
	"os"

	"github.com/pierrenodet/lunium-site/config"
	"github.com/pierrenodet/lunium-site/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	var checkDocs bool

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the site configuration and its assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			docsDir := ""
			if checkDocs {
				docsDir = opts.docsDir(cfg)
			}
			if err := opts.check(cmd, cfg, docsDir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Site configuration %q is valid\n", cfg.Title)
			return nil
		},
	}

	validateCmd.Flags().BoolVar(&checkDocs, "docs", false, "Also check that header doc links resolve to pages in customDocsPath")
	return validateCmd
}

// check runs the filesystem checks on a loaded configuration. Doc links are
// only checked when docsDir is set.
func (o *rootOptions) check(cmd *cobra.Command, cfg *config.SiteConfiguration, docsDir string) error {
	log := logger.FromContext(cmd.Context())

	if err := config.ValidateAssetPaths(os.DirFS(o.staticDir), cfg); err != nil {
		return err
	}

	if docsDir != "" {
		if err := config.ValidateDocLinks(os.DirFS(docsDir), cfg); err != nil {
			return errors.Wrapf(err, "checking doc links in %s", docsDir)
		}
	}

	log.Info("site configuration valid", "title", cfg.Title, "baseUrl", cfg.BaseURL)
	return nil
}
