/*
File    : go-tiny/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// isDigitASCII reports whether c is an ASCII decimal digit ('0'..'9').
// This is used in the hot path for number scanning.
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlphaASCII reports whether c can start an identifier: an ASCII
// letter or underscore. Tiny identifiers are ASCII-only.
func isAlphaASCII(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isIdentChar reports whether c can continue an identifier.
func isIdentChar(c byte) bool {
	return isAlphaASCII(c) || isDigitASCII(c)
}

// isWhitespace checks if the given byte is a whitespace character:
// space, tab, newline, carriage return, form feed, or vertical tab.
func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
