package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mhersche/appbrief/pkg/cache"
	"github.com/mhersche/appbrief/pkg/errors"
	"github.com/mhersche/appbrief/pkg/layout"
	"github.com/mhersche/appbrief/pkg/pdf"
	"github.com/mhersche/appbrief/pkg/report"
)

// Runner encapsulates pipeline execution with artifact caching.
// Both the CLI and the preview server use this to avoid duplicating cache
// logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete assemble → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Assemble
	assembleStart := time.Now()
	doc, err := r.Assemble(opts)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	result.Stats.AssembleTime = time.Since(assembleStart)
	result.Stats.SectionCount = len(doc.Sections)
	result.ContentHash = contentHash(doc)

	opts.Logger.Info("assembled content",
		"sections", len(doc.Sections),
		"duration", result.Stats.AssembleTime)

	// Cache lookup: the rendered artifact is fully determined by the
	// content hash and page geometry.
	cacheKey := r.Keyer.ArtifactKey(result.ContentHash, opts.ArtifactKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			result.PDF = data
			result.Stats.ByteCount = len(data)
			result.CacheInfo.ArtifactHit = true
			opts.Logger.Debug("artifact cache hit", "bytes", len(data))
			return result, nil
		}
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	result.Placements = layout.Build(doc)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.LineCount = len(result.Placements)
	result.Stats.SectionsDrawn = sectionsDrawn(result.Placements)

	opts.Logger.Info("computed layout",
		"lines", len(result.Placements),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	result.PDF = pdf.Render(result.Placements)
	result.Stats.RenderTime = time.Since(renderStart)
	result.Stats.ByteCount = len(result.PDF)

	opts.Logger.Info("rendered brief",
		"bytes", len(result.PDF),
		"duration", result.Stats.RenderTime)

	_ = r.Cache.Set(ctx, cacheKey, result.PDF, cache.TTLArtifact)

	return result, nil
}

// Assemble resolves the content document from the options: an explicit
// document, a TOML content file, or the embedded default.
func (r *Runner) Assemble(opts Options) (*report.Document, error) {
	if opts.Document != nil {
		if err := opts.Document.Validate(); err != nil {
			return nil, err
		}
		return opts.Document, nil
	}
	if opts.ContentPath != "" {
		doc, err := report.LoadFile(opts.ContentPath)
		if err != nil {
			return nil, err
		}
		return doc, nil
	}
	return report.Default(), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// sectionsDrawn counts the section headings among the placements.
// Headings are the only bold lines at heading size; the title is bold at
// title size.
func sectionsDrawn(placements []layout.Placement) int {
	n := 0
	for _, p := range placements {
		if p.Font == layout.FontBold && p.Size == layout.HeadingSize {
			n++
		}
	}
	return n
}

// contentHash computes the content-addressed hash of a document.
// JSON is used as the canonical encoding; field order is fixed by the
// struct definitions, so the hash is stable.
func contentHash(doc *report.Document) string {
	data, err := json.Marshal(doc)
	if err != nil {
		// Document is plain strings and slices; Marshal cannot fail.
		panic(errors.Wrap(errors.ErrCodeInternal, err, "hash content"))
	}
	return cache.Hash(data)
}
