package pdf

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// encodeLatin1 converts s to single-byte Latin-1, substituting runes outside
// the character set instead of failing. The two built-in fonts use a Latin-1
// compatible encoding, so this is the only byte encoding the writer needs.
//
// A fresh encoder is created per call; encoders carry transform state and
// are not safe to share across goroutines.
func encodeLatin1(s string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		// ReplaceUnsupported substitutes instead of erroring; keep the
		// input bytes as a last resort if that contract ever changes.
		return []byte(s)
	}
	return out
}
