package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	apperrors "github.com/mhersche/appbrief/pkg/errors"
	"github.com/mhersche/appbrief/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string // listen address
	content string // optional TOML content file
	noCache bool   // disable the artifact cache
}

// newServeCmd creates the serve command for previewing the brief in a browser.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr: "127.0.0.1:8491",
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the brief over HTTP",
		Long: `Serve the brief for browser preview.

The PDF is rendered on demand for each request, so edits to a --content file
show up on reload. The bytes served are identical to what 'generate' writes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := apperrors.ValidateListenAddr(opts.addr); err != nil {
				return err
			}
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.content, "content", "", "TOML content file (default: embedded content)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runServe starts the preview server and blocks until ctx is cancelled.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	c, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(c, nil, logger)
	defer runner.Close()

	// Render once up front so content errors surface before listening.
	if _, err := runner.Execute(ctx, pipeline.Options{
		ContentPath: opts.content,
		Logger:      logger,
	}); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           newRouter(runner, opts.content, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	printInfo("Serving brief preview")
	printLink("http://" + opts.addr + "/")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// newRouter builds the chi router for the preview server.
func newRouter(runner *pipeline.Runner, contentPath string, logger *charmlog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, previewHTML)
	})

	r.Get("/brief.pdf", func(w http.ResponseWriter, req *http.Request) {
		result, err := runner.Execute(req.Context(), pipeline.Options{
			ContentPath: contentPath,
		})
		if err != nil {
			logger.Error("render brief", "err", err)
			http.Error(w, apperrors.UserMessage(err), http.StatusInternalServerError)
			return
		}
		logger.Debug("served brief",
			"bytes", result.Stats.ByteCount,
			"cached", result.CacheInfo.ArtifactHit)

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Length", fmt.Sprint(len(result.PDF)))
		_, _ = w.Write(result.PDF)
	})

	return r
}

// previewHTML is the wrapper page embedding the PDF.
const previewHTML = `<!doctype html>
<html>
<head><title>appbrief preview</title></head>
<body style="margin:0">
<embed src="/brief.pdf" type="application/pdf" style="width:100vw;height:100vh">
</body>
</html>
`
