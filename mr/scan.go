package mr

import (
	"unicode"
	"unicode/utf8"
)

func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// Scan for words for mappers: maximal runs of letters, digits, and
// underscores. Everything else, including invalid UTF-8, separates
// words.
func ScanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// Skip leading non-word runes
	start := 0
	for width := 0; start < len(data); start += width {
		if !atEOF && !utf8.FullRune(data[start:]) {
			return start, nil, nil
		}
		var r rune
		r, width = utf8.DecodeRune(data[start:])
		if IsWordRune(r) {
			break
		}
	}
	// Scan until non-word rune
	for width, i := 0, start; i < len(data); i += width {
		if !atEOF && !utf8.FullRune(data[i:]) {
			break
		}
		var r rune
		r, width = utf8.DecodeRune(data[i:])
		if !IsWordRune(r) {
			return i + width, data[start:i], nil
		}
	}
	// If we're at EOF, we have a final, non-empty, non-terminated word. Return it.
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	// Request more data.
	return start, nil, nil
}

// Words calls f for each word in data, in order.
func Words(data []byte, f func(w []byte) error) error {
	for len(data) > 0 {
		n, w, _ := ScanWords(data, true)
		if n == 0 {
			break
		}
		if w != nil {
			if err := f(w); err != nil {
				return err
			}
		}
		data = data[n:]
	}
	return nil
}
