package cmd

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pierrenodet/lunium-site/config"
	"github.com/pierrenodet/lunium-site/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "site.yaml"

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	configPath string
	staticDir  string
	rootDir    string
	repoURL    string
	apiURL     string
	logLevel   string

	// now is replaced in tests.
	now func() time.Time
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{now: time.Now}

	rootCmd := &cobra.Command{
		Use:   "lunium-site",
		Short: "lunium-site - Branding and navigation for the lunium docs",
		Long: `lunium-site owns the site configuration of the lunium documentation website.
It validates the configuration, checks the referenced assets and writes the
resolved record consumed by the static site generator.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			log := logger.Get(level).WithValues(logger.CommandKey, cmd.Name())
			cmd.SetContext(logger.WithLogger(cmd.Context(), &log))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "Site definition file; the built-in lunium definition is used when the default file is absent")
	flags.StringVar(&opts.staticDir, "static", "static", "Directory holding the site's static assets")
	flags.StringVar(&opts.rootDir, "root", ".", "Directory customDocsPath is relative to")
	flags.StringVar(&opts.repoURL, "repo-url", config.DefaultRepoURL, "Repository URL exposed as repoUrl")
	flags.StringVar(&opts.apiURL, "api-url", config.DefaultAPIURL, "API docs path exposed as apiUrl")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug|info|warn|error)")

	rootCmd.AddCommand(newValidateCmd(opts))
	rootCmd.AddCommand(newBuildCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))

	return rootCmd
}

func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func (o *rootOptions) params() config.Params {
	return config.Params{
		RepoURL: o.repoURL,
		APIURL:  o.apiURL,
		Now:     o.now,
	}
}

// loadConfig resolves the site configuration for this invocation.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.SiteConfiguration, error) {
	log := logger.FromContext(cmd.Context())

	_, err := os.Stat(o.configPath)
	switch {
	case err == nil:
		log.V(1).Info("loading site definition", "file", o.configPath)
		return config.LoadFile(o.configPath, o.params())
	case os.IsNotExist(err) && !cmd.Flags().Changed("config"):
		log.V(1).Info("no site definition file, using built-in definition", "file", o.configPath)
		return config.Load(config.Default(o.params()), o.params())
	default:
		return nil, errors.Wrapf(err, "reading %s", o.configPath)
	}
}

func (o *rootOptions) docsDir(cfg *config.SiteConfiguration) string {
	return filepath.Join(o.rootDir, cfg.CustomDocsPath)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
