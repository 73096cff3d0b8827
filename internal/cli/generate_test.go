package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "brief.pdf")
	data := []byte("%PDF-1.4\n")

	if err := writeArtifact(path, data); err != nil {
		t.Fatalf("writeArtifact() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("written data = %q, want %q", got, data)
	}
}

func TestWriteArtifactBareFilename(t *testing.T) {
	dir := t.TempDir()
	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(old)

	if err := writeArtifact("brief.pdf", []byte("%PDF-1.4\n")); err != nil {
		t.Fatalf("writeArtifact() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "brief.pdf")); err != nil {
		t.Errorf("expected file in working dir: %v", err)
	}
}

func TestRunGenerate(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	output := filepath.Join(t.TempDir(), "brief.pdf")

	opts := generateOpts{output: output, noCache: true}
	if err := runGenerate(context.Background(), &opts); err != nil {
		t.Fatalf("runGenerate() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.4\n")) {
		t.Error("artifact should start with PDF header")
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Error("artifact should end with the EOF marker")
	}
}

func TestRunGenerateContentFile(t *testing.T) {
	dir := t.TempDir()
	contentPath := filepath.Join(dir, "content.toml")
	content := `title = "Demo App - Summary"

[[section]]
heading = "What it is"
body = "A demo."
`
	if err := os.WriteFile(contentPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "brief.pdf")
	opts := generateOpts{output: output, content: contentPath, noCache: true}
	if err := runGenerate(context.Background(), &opts); err != nil {
		t.Fatalf("runGenerate() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if !bytes.Contains(data, []byte("Demo App - Summary")) {
		t.Error("artifact should contain the custom title")
	}
}

func TestRunGenerateWriteFailure(t *testing.T) {
	// A regular file where the output directory should go makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	opts := generateOpts{
		output:  filepath.Join(blocker, "brief.pdf"),
		noCache: true,
	}
	if err := runGenerate(context.Background(), &opts); err == nil {
		t.Error("runGenerate() should fail when the output dir cannot be created")
	}
}

func TestRunGenerateMissingContent(t *testing.T) {
	opts := generateOpts{
		output:  filepath.Join(t.TempDir(), "brief.pdf"),
		content: filepath.Join(t.TempDir(), "missing.toml"),
		noCache: true,
	}
	if err := runGenerate(context.Background(), &opts); err == nil {
		t.Error("runGenerate() with missing content file should fail")
	}
}

func TestGenerateCmdInvalidOutput(t *testing.T) {
	cmd := newGenerateCmd()
	cmd.SetArgs([]string{"--output", "../../etc/brief.pdf", "--no-cache"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	if err := cmd.Execute(); err == nil {
		t.Error("path traversal output should be rejected")
	}
}
