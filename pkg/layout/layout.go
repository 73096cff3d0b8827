// Package layout computes text placements for a single-page brief.
//
// The engine walks the document top to bottom with a single vertical cursor,
// wrapping paragraphs and bullet items at a fixed character count and
// emitting one immutable [Placement] per drawn line. Coordinates follow the
// PDF convention: origin at the bottom-left of the page, in points.
//
// There is no pagination. When a section finishes below the bottom margin,
// layout stops and the remaining sections are dropped whole; a section is
// never partially drawn.
package layout

import (
	"github.com/mhersche/appbrief/pkg/report"
)

// Page geometry in PDF points (US Letter).
const (
	PageWidth  = 612
	PageHeight = 792

	MarginX      = 54
	MarginTop    = 54
	MarginBottom = 54
)

// Type sizes and vertical spacing in points.
const (
	TitleSize   = 18
	HeadingSize = 12
	BodySize    = 11
	Leading     = 14 // baseline distance between consecutive body lines

	titleGap   = 22 // below the document title
	headingGap = 16 // below a section heading
	sectionGap = 4  // extra space after a section's last line
)

// Approximate characters per line for Helvetica 11pt within the content
// width. A fixed count stands in for font metrics; the font/size pairs are
// known, so the approximation holds.
const (
	MaxCharsBody   = 90
	MaxCharsBullet = 86 // narrower, reserving the two-character bullet indent
)

// Font names of the two built-in fonts. These double as the page resource
// names in the PDF serializer.
const (
	FontBody = "Helvetica"
	FontBold = "Helvetica-Bold"
)

// Bullet prefixes. The first wrapped line of an item gets a dash, each
// continuation line a matching two-space indent.
const (
	bulletPrefix = "- "
	bulletIndent = "  "
)

// Placement is one drawn line of text. Immutable once created.
type Placement struct {
	Text string // line content, unescaped
	X    int    // left edge, points from the page's left
	Y    int    // baseline, points from the page's bottom
	Font string // FontBody or FontBold
	Size int    // font size in points
}

// Build lays out the document and returns the placements in draw order.
//
// The title is always placed. After each following section is finished, the
// cursor is checked against the bottom margin: the section that crosses it
// is kept in full, and everything after it is dropped.
func Build(doc *report.Document) []Placement {
	y := PageHeight - MarginTop
	placements := []Placement{{
		Text: doc.Title,
		X:    MarginX,
		Y:    y,
		Font: FontBold,
		Size: TitleSize,
	}}
	y -= titleGap

	for i := range doc.Sections {
		placements, y = placeSection(placements, &doc.Sections[i], y)
		if y < MarginBottom {
			break
		}
	}

	return placements
}

// placeSection appends the heading and wrapped content of one section,
// returning the updated placements and cursor.
func placeSection(placements []Placement, s *report.Section, y int) ([]Placement, int) {
	placements = append(placements, Placement{
		Text: s.Heading,
		X:    MarginX,
		Y:    y,
		Font: FontBold,
		Size: HeadingSize,
	})
	y -= headingGap

	if s.IsBullets() {
		for _, item := range s.Items {
			wrapped := Wrap(item, MaxCharsBullet)
			for i, line := range wrapped {
				prefix := bulletPrefix
				if i > 0 {
					prefix = bulletIndent
				}
				placements = append(placements, bodyLine(prefix+line, y))
				y -= Leading
			}
		}
	} else {
		for _, line := range Wrap(s.Body, MaxCharsBody) {
			placements = append(placements, bodyLine(line, y))
			y -= Leading
		}
	}
	y -= sectionGap

	return placements, y
}

// bodyLine builds a body-text placement at the left margin.
func bodyLine(text string, y int) Placement {
	return Placement{
		Text: text,
		X:    MarginX,
		Y:    y,
		Font: FontBody,
		Size: BodySize,
	}
}
