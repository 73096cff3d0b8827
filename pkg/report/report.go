// Package report defines the content model for a brief.
//
// A brief is a titled, ordered list of sections describing an application.
// Sections come in two shapes: a heading with a body paragraph, or a heading
// with bullet items. Content is either the embedded default document or
// loaded from a TOML file with [LoadFile].
package report

import (
	"github.com/mhersche/appbrief/pkg/errors"
)

// Section is one titled block of a brief.
// Exactly one of Body and Items is set.
type Section struct {
	Heading string   // section heading, rendered bold
	Body    string   // paragraph text, word-wrapped at render time
	Items   []string // bullet items, each independently wrapped
}

// IsBullets reports whether the section is a bullet list.
func (s *Section) IsBullets() bool {
	return len(s.Items) > 0
}

// Document is the full content of a brief.
type Document struct {
	Title    string
	Sections []Section
}

// Validate checks that the document is renderable.
// It returns a structured error with code INVALID_CONTENT on failure.
func (d *Document) Validate() error {
	if d == nil {
		return errors.New(errors.ErrCodeInvalidContent, "document is nil")
	}
	if err := errors.ValidateHeading(d.Title); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidContent, err, "invalid title")
	}
	if len(d.Sections) == 0 {
		return errors.New(errors.ErrCodeInvalidContent, "document has no sections")
	}

	for i := range d.Sections {
		s := &d.Sections[i]
		if err := errors.ValidateHeading(s.Heading); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidContent, err, "section %d", i+1)
		}
		if s.Body != "" && len(s.Items) > 0 {
			return errors.New(errors.ErrCodeInvalidContent,
				"section %q has both body and items", s.Heading)
		}
		if s.Body == "" && len(s.Items) == 0 {
			return errors.New(errors.ErrCodeInvalidContent,
				"section %q has neither body nor items", s.Heading)
		}
		for j, item := range s.Items {
			if item == "" {
				return errors.New(errors.ErrCodeInvalidContent,
					"section %q item %d is empty", s.Heading, j+1)
			}
		}
	}
	return nil
}
