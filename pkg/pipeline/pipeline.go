// Package pipeline provides the core brief-generation pipeline for appbrief.
//
// This package implements the complete assemble → layout → render pipeline
// shared by the generate command and the preview server. By centralizing
// this logic, we ensure both entry points produce byte-identical artifacts.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Assemble: resolve the content document (embedded default or TOML file)
//  2. Layout: compute text placements for the single page
//  3. Render: serialize the placements into PDF bytes
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdfBytes := result.PDF
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mhersche/appbrief/pkg/cache"
	"github.com/mhersche/appbrief/pkg/errors"
	"github.com/mhersche/appbrief/pkg/layout"
	"github.com/mhersche/appbrief/pkg/report"
)

// DefaultOutputPath is where the generate command writes the brief when no
// output flag is given. The directory chain is created as needed.
const DefaultOutputPath = "output/pdf/practice-timer-summary.pdf"

// Options contains all configuration for the brief pipeline.
type Options struct {
	// ContentPath is an optional TOML content file. When empty, the
	// embedded default document is used.
	ContentPath string

	// Document overrides content loading entirely when set. Used by tests
	// and by callers that already hold a document.
	Document *report.Document

	// Refresh bypasses the artifact cache and forces a re-render.
	Refresh bool

	// Logger receives stage-level progress. Defaults to a discarding logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the assembled content.
	Document *report.Document

	// ContentHash is the content-addressed hash of the document.
	ContentHash string

	// Placements are the laid-out lines, empty when the artifact came from
	// cache (layout is skipped on a cache hit).
	Placements []layout.Placement

	// PDF is the rendered artifact.
	PDF []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the artifact came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SectionCount int
	// SectionsDrawn is how many sections fit on the page. Less than
	// SectionCount when content overflowed; zero on a cache hit (layout
	// is skipped).
	SectionsDrawn int
	LineCount     int
	ByteCount     int
	AssembleTime  time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for the pipeline.
type CacheInfo struct {
	ArtifactHit bool // Whether the rendered PDF came from cache
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.ContentPath != "" && o.Document != nil {
		return errors.New(errors.ErrCodeInvalidInput,
			"content path and document are mutually exclusive")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ArtifactKeyOpts returns cache key options for the rendered artifact.
// Page geometry is fixed at compile time but still participates in the key,
// so stale artifacts are not served if the geometry ever changes.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		PageWidth:  layout.PageWidth,
		PageHeight: layout.PageHeight,
	}
}
