package report

import (
	_ "embed"
	"fmt"
	"sync"
)

// The default brief content describes the Practice Timer web app.
// It is embedded so the binary works with no input files at all.

//go:embed practice_timer.toml
var defaultContent []byte

var (
	defaultDoc     *Document
	defaultDocOnce sync.Once
)

// Default returns the embedded default document.
// The result is decoded once on first access and shared; callers must not
// mutate it.
func Default() *Document {
	defaultDocOnce.Do(func() {
		doc, err := Decode(defaultContent)
		if err != nil {
			// The embedded content is part of the binary; failing to decode
			// it is a build defect, not a runtime condition.
			panic(fmt.Sprintf("report: embedded default content: %v", err))
		}
		defaultDoc = doc
	})
	return defaultDoc
}
