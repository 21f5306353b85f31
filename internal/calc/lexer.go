// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"fmt"
)

type tokenType int

const (
	tokEOF tokenType = iota
	tokNumber
	tokIdent
	tokOp // one of + - * / % ^ ( ) , =
)

type token struct {
	typ  tokenType
	text string
	pos  int
}

func (t token) String() string {
	switch t.typ {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number " + t.text
	case tokIdent:
		return "identifier " + t.text
	}
	return fmt.Sprintf("%q", t.text)
}

// A SyntaxError reports a malformed expression.
type SyntaxError struct {
	Pos int // byte offset in the input
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

// lex splits src into tokens. The last token is always tokEOF.
func lex(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c) || c == '.':
			start := i
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			if i < len(src) && src[i] == '.' {
				i++
				n := i
				for i < len(src) && isDigit(src[i]) {
					i++
				}
				if n == i && n-1 == start {
					return nil, &SyntaxError{start, "malformed number"}
				}
			}
			toks = append(toks, token{tokNumber, src[start:i], start})
		case isLetter(c):
			start := i
			for i < len(src) && (isLetter(src[i]) || isDigit(src[i])) {
				i++
			}
			toks = append(toks, token{tokIdent, src[start:i], start})
		case c == '+' || c == '-' || c == '*' || c == '/' || c == '%' || c == '^' ||
			c == '(' || c == ')' || c == ',' || c == '=':
			toks = append(toks, token{tokOp, src[i : i+1], i})
			i++
		default:
			return nil, &SyntaxError{i, fmt.Sprintf("unexpected character %q", c)}
		}
	}
	return append(toks, token{tokEOF, "", len(src)}), nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isLetter(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_' }
