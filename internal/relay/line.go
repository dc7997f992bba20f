package relay

import (
	"bytes"
	"unicode/utf8"
)

// Line is one line of server output: either decoded UTF-8 text or the raw
// bytes of a line that was not valid UTF-8.
type Line struct {
	text string
	raw  []byte
}

// Decoded returns a Line holding text.
func Decoded(text string) Line {
	return Line{text: text}
}

// Raw returns a Line holding undecodable bytes. b is copied.
func Raw(b []byte) Line {
	return Line{raw: bytes.Clone(b)}
}

// Decode turns content into a Line with trailing whitespace (including the
// line terminator) removed. Invalid UTF-8 yields a Raw line instead of an
// error.
func Decode(content []byte) Line {
	content = bytes.TrimRight(content, " \t\r\n\v\f")

	if !utf8.Valid(content) {
		return Raw(content)
	}

	return Decoded(string(content))
}

// IsRaw reports whether the line could not be decoded.
func (l Line) IsRaw() bool {
	return l.raw != nil
}

// Text returns the decoded text and true, or "" and false for a raw line.
func (l Line) Text() (string, bool) {
	if l.IsRaw() {
		return "", false
	}

	return l.text, true
}

// Bytes returns the line content in either form.
func (l Line) Bytes() []byte {
	if l.IsRaw() {
		return bytes.Clone(l.raw)
	}

	return []byte(l.text)
}

// String returns the line for a sink. Raw bytes are passed through unchanged.
func (l Line) String() string {
	if l.IsRaw() {
		return string(l.raw)
	}

	return l.text
}
