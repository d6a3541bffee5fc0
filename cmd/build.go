package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pierrenodet/lunium-site/config"
	"github.com/pierrenodet/lunium-site/logger"
	"github.com/pierrenodet/lunium-site/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const siteConfigFile = "siteConfig.json"

func newBuildCmd(opts *rootOptions) *cobra.Command {
	var outDir string

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Validate the site configuration and write it for the site generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.build(cmd, outDir)
		},
	}

	buildCmd.Flags().StringVarP(&outDir, "out", "o", "public", "Output directory")
	return buildCmd
}

func (o *rootOptions) build(cmd *cobra.Command, outDir string) error {
	log := logger.FromContext(cmd.Context())

	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}

	docsDir := ""
	if dir := o.docsDir(cfg); dirExists(dir) {
		docsDir = dir
	} else {
		log.Info("docs directory not found, skipping doc checks and sitemap entries", "dir", dir)
	}

	if err := o.check(cmd, cfg, docsDir); err != nil {
		return err
	}

	var pages []config.DocPage
	if docsDir != "" {
		pages, err = config.DocPages(os.DirFS(docsDir))
		if err != nil {
			return err
		}
	}

	// Create output directory
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	if dirExists(o.staticDir) {
		if err := copyTree(o.staticDir, outDir); err != nil {
			return errors.Wrap(err, "copying static files")
		}
	}

	if err := writeSiteConfig(filepath.Join(outDir, siteConfigFile), cfg); err != nil {
		return err
	}

	if err := utils.WriteSitemap(outDir, cfg, pages, o.now()); err != nil {
		return errors.Wrap(err, "writing sitemap")
	}

	log.Info("site configuration written", "out", outDir, "docs", len(pages))
	return nil
}

func writeSiteConfig(path string, cfg *config.SiteConfiguration) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	err = os.WriteFile(path, append(data, '\n'), 0644)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// copyTree copies the files under src into dst, keeping their relative paths.
func copyTree(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		destPath := filepath.Join(dst, rel)
		err = os.MkdirAll(filepath.Dir(destPath), os.ModePerm)
		if err != nil {
			return err
		}
		return copyFile(path, destPath)
	})
}

func copyFile(src, dst string) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	err = os.WriteFile(dst, input, 0644)
	if err != nil {
		return err
	}

	return nil
}
