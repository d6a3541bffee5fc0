package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pierrenodet/lunium-site/handlers"
	"github.com/pierrenodet/lunium-site/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		port  string
		watch bool
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a preview of the site branding and navigation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return opts.serve(ctx, cmd, port, watch)
		},
	}

	serveCmd.Flags().StringVarP(&port, "port", "p", "9010", "Port to run the server on")
	serveCmd.Flags().BoolVar(&watch, "watch", false, "Reload the configuration when the definition file changes")
	return serveCmd
}

func (o *rootOptions) serve(ctx context.Context, cmd *cobra.Command, port string, watch bool) error {
	log := logger.FromContext(cmd.Context())

	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := o.check(cmd, cfg, ""); err != nil {
		return err
	}

	preview := handlers.NewPreview(cfg, handlers.Options{StaticDir: o.staticDir, Root: o.rootDir}, *log)

	if watch {
		if _, err := os.Stat(o.configPath); err != nil {
			return errors.Wrap(err, "--watch needs a site definition file")
		}
		watcher, err := handlers.NewConfigWatcher(o.configPath, 200*time.Millisecond, func() error {
			next, err := o.loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := o.check(cmd, next, ""); err != nil {
				return err
			}
			preview.Reload(next)
			return nil
		}, *log)
		if err != nil {
			return err
		}
		go func() {
			if err := watcher.Run(ctx); err != nil {
				log.Error(err, "config watcher stopped", "file", o.configPath)
			}
		}()
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           preview,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error(err, "preview server shutdown")
		}
	}()

	log.Info("starting preview server", "addr", server.Addr, "url", "http://localhost:"+port+cfg.BaseURL)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}
	return nil
}
