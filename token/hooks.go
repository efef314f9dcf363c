package token

import "bytes"

// ScannerHooks lets callers replace the byte scans on the scanner hot path,
// e.g. with SIMD implementations.
type ScannerHooks interface {
	// SkipWhitespace returns the first position at or after pos that is not JSON whitespace.
	SkipWhitespace(data []byte, pos int) int
	// FindQuoteOrEscape returns the position of the first '"' or '\\' at or
	// after pos; the other result is -1. Both are -1 when neither occurs.
	FindQuoteOrEscape(data []byte, pos int) (quotePos int, escapePos int)
}

type byteHooks struct{}

func (byteHooks) SkipWhitespace(data []byte, pos int) int {
	for ; pos < len(data); pos++ {
		if c := data[pos]; c != ' ' && c != '\n' && c != '\r' && c != '\t' {
			break
		}
	}
	return pos
}

func (byteHooks) FindQuoteOrEscape(data []byte, pos int) (int, int) {
	if pos >= len(data) {
		return -1, -1
	}
	i := bytes.IndexAny(data[pos:], `"\`)
	switch {
	case i < 0:
		return -1, -1
	case data[pos+i] == '"':
		return pos + i, -1
	}
	return -1, pos + i
}
