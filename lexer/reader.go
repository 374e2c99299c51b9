/*
File    : go-tiny/lexer/reader.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/akashmaji946/go-tiny/tinyerr"
)

// ReadTokenLine parses one line of the token text form back into a
// Token. The expected shape is
//
//	<line> <col> <Kind> [payload]
//
// with fields separated by arbitrary whitespace. Malformed lines fail
// with a ReadError.
func ReadTokenLine(line string) (Token, error) {
	rest := strings.TrimSpace(line)

	lineField, rest := nextField(rest)
	lineNo, err := strconv.Atoi(lineField)
	if err != nil {
		return Token{}, tinyerr.Newf(tinyerr.ReadError, "invalid line number: %s", lineField)
	}

	colField, rest := nextField(rest)
	colNo, err := strconv.Atoi(colField)
	if err != nil {
		return Token{}, tinyerr.Newf(tinyerr.ReadError, "invalid column number: %s", colField)
	}

	kindField, rest := nextField(rest)
	kind, ok := tokenTypeNames[kindField]
	if !ok {
		return Token{}, tinyerr.Newf(tinyerr.ReadError, "unknown token kind: %s", kindField)
	}

	switch kind {
	case IDENTIFIER_ID:
		name, _ := nextField(rest)
		if name == "" {
			return Token{}, tinyerr.New(tinyerr.ReadError, "identifier name is expected")
		}
		return NewTokenWithMetadata(IDENTIFIER_ID, name, lineNo, colNo), nil
	case INT_LIT:
		digits, _ := nextField(rest)
		value, err := strconv.ParseInt(digits, 10, 32)
		if err != nil {
			return Token{}, tinyerr.Newf(tinyerr.ReadError, "invalid integer payload: %s", digits)
		}
		return NewIntegerToken(int32(value), lineNo, colNo), nil
	case STRING_LIT:
		content, _, err := UnquoteString(strings.TrimSpace(rest))
		if err != nil {
			return Token{}, tinyerr.New(tinyerr.ReadError, err.Error())
		}
		return NewTokenWithMetadata(STRING_LIT, content, lineNo, colNo), nil
	default:
		return NewTokenWithMetadata(kind, tokenLexemes[kind], lineNo, colNo), nil
	}
}

// ReadTokens parses a serialized token stream, one token per line,
// stopping at the End_of_input sentinel (which is kept in the result).
// Blank lines are skipped.
func ReadTokens(r io.Reader) ([]Token, error) {
	var tokens []Token
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		token, err := ReadTokenLine(line)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Type == EOF_TYPE {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, tinyerr.Newf(tinyerr.ReadError, "read failed: %v", err)
	}
	return tokens, nil
}

// nextField splits off the first whitespace-delimited field of s,
// returning the field and the unconsumed remainder.
func nextField(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	end := 0
	for end < len(s) && s[end] != ' ' && s[end] != '\t' {
		end++
	}
	return s[:end], s[end:]
}
