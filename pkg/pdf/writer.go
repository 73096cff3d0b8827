// Package pdf emits a minimal single-page PDF 1.4 document.
//
// The writer produces exactly six objects wired by fixed numbers:
//
//	1 Catalog -> 2 Pages -> 3 Page -> {4 Helvetica, 5 Helvetica-Bold, 6 Contents}
//
// followed by a cross-reference table and trailer. Object byte offsets are
// tracked as the output buffer grows, so the xref entries always match the
// positions of the "n 0 obj" markers. Output is fully deterministic: the
// same placements produce byte-identical files.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mhersche/appbrief/pkg/layout"
)

// header is the PDF version line every file starts with.
const header = "%PDF-1.4\n"

// Fixed object numbers. Ids are 1-indexed and contiguous; the xref table
// and the inter-object references below depend on this numbering.
const (
	objCatalog  = 1
	objPages    = 2
	objPage     = 3
	objFontBody = 4
	objFontBold = 5
	objContents = 6
)

// Render serializes placements into a complete single-page PDF file.
func Render(placements []layout.Placement) []byte {
	stream := contentStream(placements)

	objects := [][]byte{
		[]byte(fmt.Sprintf("%d 0 obj\n<< /Type /Catalog /Pages %d 0 R >>\nendobj\n",
			objCatalog, objPages)),
		[]byte(fmt.Sprintf("%d 0 obj\n<< /Type /Pages /Kids [%d 0 R] /Count 1 >>\nendobj\n",
			objPages, objPage)),
		[]byte(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %d %d] "+
			"/Resources << /Font << /%s %d 0 R /%s %d 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			objPage, objPages, layout.PageWidth, layout.PageHeight,
			layout.FontBody, objFontBody, layout.FontBold, objFontBold, objContents)),
		[]byte(fmt.Sprintf("%d 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /%s >>\nendobj\n",
			objFontBody, layout.FontBody)),
		[]byte(fmt.Sprintf("%d 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /%s >>\nendobj\n",
			objFontBold, layout.FontBold)),
		contentsObject(stream),
	}

	var buf bytes.Buffer
	buf.WriteString(header)

	// Byte offset of each object start, in object-number order.
	offsets := make([]int, 0, len(objects))
	for _, obj := range objects {
		offsets = append(offsets, buf.Len())
		buf.Write(obj)
	}

	writeXref(&buf, offsets)
	return buf.Bytes()
}

// contentStream builds the encoded page content: one text object per
// placement, positioned by a plain translation matrix.
func contentStream(placements []layout.Placement) []byte {
	var sb strings.Builder
	for _, p := range placements {
		sb.WriteString("BT\n")
		fmt.Fprintf(&sb, "/%s %d Tf\n", p.Font, p.Size)
		fmt.Fprintf(&sb, "1 0 0 1 %d %d Tm\n", p.X, p.Y)
		fmt.Fprintf(&sb, "(%s) Tj\n", EscapeText(p.Text))
		sb.WriteString("ET\n")
	}
	return encodeLatin1(sb.String())
}

// contentsObject wraps the stream payload in the contents object.
// /Length must equal the exact byte length of the payload between
// "stream\n" and "endstream".
func contentsObject(stream []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n", objContents, len(stream))
	buf.Write(stream)
	buf.WriteString("endstream\nendobj\n")
	return buf.Bytes()
}

// writeXref appends the cross-reference table and trailer.
func writeXref(buf *bytes.Buffer, offsets []int) {
	xrefStart := buf.Len()

	buf.WriteString("xref\n")
	fmt.Fprintf(buf, "0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n") // head of the free-object list
	for _, off := range offsets {
		fmt.Fprintf(buf, "%010d 00000 n \n", off)
	}

	buf.WriteString("trailer\n")
	fmt.Fprintf(buf, "<< /Size %d /Root %d 0 R >>\n", len(offsets)+1, objCatalog)
	buf.WriteString("startxref\n")
	fmt.Fprintf(buf, "%d\n", xrefStart)
	buf.WriteString("%%EOF\n")
}
