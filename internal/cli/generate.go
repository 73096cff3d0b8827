package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mhersche/appbrief/pkg/errors"
	"github.com/mhersche/appbrief/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output  string // output file path
	content string // optional TOML content file
	noCache bool   // disable the artifact cache
	refresh bool   // bypass the cache and re-render
}

// newGenerateCmd creates the generate command for rendering the PDF brief.
//
// With no flags, the embedded default content is rendered to
// output/pdf/practice-timer-summary.pdf and the path is printed.
func newGenerateCmd() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the brief to a PDF file",
		Long: `Render the single-page PDF brief.

Content defaults to the embedded Practice Timer summary; pass --content to
render a TOML content file instead. The rendered artifact is cached by
content hash, so repeated runs with unchanged content are served from cache.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateOutputPath(opts.output); err != nil {
				return err
			}
			return runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", pipeline.DefaultOutputPath, "output PDF path")
	cmd.Flags().StringVar(&opts.content, "content", "", "TOML content file (default: embedded content)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and re-render")

	return cmd
}

// runGenerate executes the pipeline and writes the artifact to disk.
func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	c, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(c, nil, logger)
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		ContentPath: opts.content,
		Refresh:     opts.refresh,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	if err := writeArtifact(opts.output, result.PDF); err != nil {
		printError("Failed to write %s", opts.output)
		return err
	}
	prog.done(fmt.Sprintf("Generated %s", opts.output))

	printSuccess("Brief generated")
	printStats(result.Stats.SectionCount, result.Stats.LineCount,
		result.Stats.ByteCount, result.CacheInfo.ArtifactHit)
	if drawn := result.Stats.SectionsDrawn; drawn > 0 && drawn < result.Stats.SectionCount {
		printWarning("Page full: %d of %d sections fit", drawn, result.Stats.SectionCount)
	}
	printFile(opts.output)
	return nil
}

// writeArtifact writes data to path, creating parent directories as needed.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
