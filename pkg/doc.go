// Package pkg provides the core libraries for appbrief PDF generation.
//
// # Overview
//
// appbrief renders a single-page PDF brief summarizing a web application.
// The pkg directory is organized into five areas:
//
//  1. [report] - Content model (sections, TOML loading, embedded default)
//  2. [layout] - Text placement (wrapping, cursor walk, overflow)
//  3. [pdf] - Serialization (objects, content stream, xref, trailer)
//  4. [pipeline] - Orchestration (assemble → layout → render) with caching
//  5. [cache] - Artifact cache backends (file, null)
//
// # Architecture
//
// The typical data flow through appbrief:
//
//	TOML content file / embedded default
//	         ↓
//	    [report] package (content document)
//	         ↓
//	    [layout] package (text placements)
//	         ↓
//	    [pdf] package (PDF serialization)
//	         ↓
//	    single-page PDF output
//
// # Quick Start
//
// Render the default brief:
//
//	import (
//	    "github.com/mhersche/appbrief/pkg/layout"
//	    "github.com/mhersche/appbrief/pkg/pdf"
//	    "github.com/mhersche/appbrief/pkg/report"
//	)
//
//	doc := report.Default()
//	placements := layout.Build(doc)
//	data := pdf.Render(placements)
//
// Or run the full pipeline with caching:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/pdf/...      # Specific package
//
// [report]: https://pkg.go.dev/github.com/mhersche/appbrief/pkg/report
// [layout]: https://pkg.go.dev/github.com/mhersche/appbrief/pkg/layout
// [pdf]: https://pkg.go.dev/github.com/mhersche/appbrief/pkg/pdf
// [pipeline]: https://pkg.go.dev/github.com/mhersche/appbrief/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/mhersche/appbrief/pkg/cache
package pkg
