package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mhersche/appbrief/pkg/cache"
	"github.com/mhersche/appbrief/pkg/errors"
	"github.com/mhersche/appbrief/pkg/report"
)

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil {
		t.Error("nil cache should default to NullCache")
	}
	if r.Keyer == nil {
		t.Error("nil keyer should default to DefaultKeyer")
	}
	if r.Logger == nil {
		t.Error("nil logger should default")
	}
}

func TestExecuteDefaultContent(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !bytes.HasPrefix(result.PDF, []byte("%PDF-1.4\n")) {
		t.Error("artifact should be a PDF 1.4 document")
	}
	if result.Stats.SectionCount != 5 {
		t.Errorf("sections = %d, want 5", result.Stats.SectionCount)
	}
	if result.Stats.LineCount == 0 {
		t.Error("line count should be recorded")
	}
	if result.Stats.ByteCount != len(result.PDF) {
		t.Errorf("byte count = %d, want %d", result.Stats.ByteCount, len(result.PDF))
	}
	if result.CacheInfo.ArtifactHit {
		t.Error("null cache should never hit")
	}
	if result.ContentHash == "" {
		t.Error("content hash should be set")
	}
}

func TestExecuteDeterministic(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	a, err := r.Execute(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	b, err := r.Execute(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if !bytes.Equal(a.PDF, b.PDF) {
		t.Error("identical content should produce byte-identical artifacts")
	}
	if a.ContentHash != b.ContentHash {
		t.Error("identical content should produce identical hashes")
	}
}

func TestExecuteCacheHit(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	first, err := r.Execute(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if first.CacheInfo.ArtifactHit {
		t.Error("first run should miss")
	}

	second, err := r.Execute(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !second.CacheInfo.ArtifactHit {
		t.Error("second run should hit the cache")
	}
	if !bytes.Equal(first.PDF, second.PDF) {
		t.Error("cached artifact should be identical to the rendered one")
	}
}

func TestExecuteRefresh(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	if _, err := r.Execute(context.Background(), Options{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	result, err := r.Execute(context.Background(), Options{Refresh: true})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.CacheInfo.ArtifactHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestExecuteContentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.toml")
	content := `title = "Custom App - Summary"

[[section]]
heading = "What it is"
body = "A custom application."
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{ContentPath: path})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Document.Title != "Custom App - Summary" {
		t.Errorf("title = %q", result.Document.Title)
	}
	if !bytes.Contains(result.PDF, []byte("Custom App - Summary")) {
		t.Error("artifact should contain the custom title")
	}
}

func TestExecuteSectionsDrawn(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Stats.SectionsDrawn != result.Stats.SectionCount {
		t.Errorf("SectionsDrawn = %d, want %d (default content fits the page)",
			result.Stats.SectionsDrawn, result.Stats.SectionCount)
	}
}

func TestExecuteSectionsDrawnOverflow(t *testing.T) {
	doc := &report.Document{Title: "Overflow Test - Summary"}
	for i := 0; i < 40; i++ {
		doc.Sections = append(doc.Sections, report.Section{
			Heading: "Section heading",
			Body:    "Body paragraph text long enough to occupy a line.",
		})
	}

	r := NewRunner(nil, nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), Options{Document: doc})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	drawn := result.Stats.SectionsDrawn
	if drawn == 0 {
		t.Fatal("at least one section should be drawn")
	}
	if drawn >= result.Stats.SectionCount {
		t.Errorf("SectionsDrawn = %d, want fewer than %d (content overflows the page)",
			drawn, result.Stats.SectionCount)
	}
}

func TestExecuteInvalidDocument(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	_, err := r.Execute(context.Background(), Options{
		Document: &report.Document{Title: "No Sections"},
	})
	if err == nil {
		t.Fatal("invalid document should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidContent) {
		t.Errorf("error code = %v, want INVALID_CONTENT", errors.GetCode(err))
	}
}

func TestExecuteMissingContentFile(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	defer r.Close()

	_, err := r.Execute(context.Background(), Options{
		ContentPath: filepath.Join(t.TempDir(), "missing.toml"),
	})
	if err == nil {
		t.Fatal("missing content file should fail")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}
