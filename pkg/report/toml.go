package report

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/mhersche/appbrief/pkg/errors"
)

// tomlDocument mirrors the on-disk TOML content schema:
//
//	title = "My App - Summary"
//
//	[[section]]
//	heading = "What it is"
//	body = "A short paragraph."
//
//	[[section]]
//	heading = "What it does"
//	items = ["First feature", "Second feature"]
type tomlDocument struct {
	Title    string        `toml:"title"`
	Sections []tomlSection `toml:"section"`
}

type tomlSection struct {
	Heading string   `toml:"heading"`
	Body    string   `toml:"body"`
	Items   []string `toml:"items"`
}

// Decode parses TOML content data into a validated Document.
func Decode(data []byte) (*Document, error) {
	var raw tomlDocument
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidContent, err, "parse content")
	}

	doc := &Document{
		Title:    raw.Title,
		Sections: make([]Section, len(raw.Sections)),
	}
	for i, s := range raw.Sections {
		doc.Sections[i] = Section{
			Heading: s.Heading,
			Body:    s.Body,
			Items:   s.Items,
		}
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadFile reads and decodes a TOML content file.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "content file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read content file %s", path)
	}
	return Decode(data)
}
