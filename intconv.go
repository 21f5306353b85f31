// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Int-to-string and string-to-Int conversion functions.

package bignum

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// IntFromString returns the Int read from the beginning of s with the lenient
// stream semantics of Scan: an optional sign followed by a maximal run of
// decimal digits. Anything following the digits is ignored. If s does not
// start with a number, the result is 0.
func IntFromString(s string) Int {
	x, _, _ := scanInt(strings.NewReader(s))
	return x
}

// ParseInt parses s as a base 10 integer with an optional sign. Unlike
// IntFromString, the entire string must be a valid number; otherwise the
// returned error wraps ErrSyntax.
func ParseInt(s string) (Int, error) {
	r := strings.NewReader(s)
	x, n, err := scanInt(r)
	if err == nil && n == 0 {
		err = errNoDigits
	}
	if err == nil && r.Len() > 0 {
		err = errors.Errorf("unexpected %q after digits", s[len(s)-r.Len():])
	}
	if err != nil {
		return Int{}, errors.Wrapf(ErrSyntax, "parsing %q: %v", s, err)
	}
	return x, nil
}

// IntFromBig returns an Int set to the value of b. A nil b yields 0.
func IntFromBig(b *big.Int) Int {
	if b == nil {
		return Int{}
	}
	return IntFromString(b.String())
}

// scanInt reads an optional sign and a run of digits from r. It returns the
// value and the number of digits read.
func scanInt(r io.ByteScanner) (x Int, count int, err error) {
	neg, err := scanSign(r)
	if err != nil {
		if err == io.EOF {
			err = nil
		}
		return Int{}, 0, err
	}
	abs, count, err := dec(nil).scan(r)
	if err != nil {
		return Int{}, count, err
	}
	return makeInt(abs, neg), count, nil
}

// String returns the decimal representation of x, with a leading '-' if x is
// negative.
func (x Int) String() string {
	return string(x.Append(nil))
}

// StringUnsigned returns the decimal representation of |x|.
func (x Int) StringUnsigned() string {
	return string(x.mag().utoa())
}

// Append appends the string form of x, as generated by x.String, to buf and
// returns the extended buffer.
func (x Int) Append(buf []byte) []byte {
	return x.mag().appendText(buf, x.neg)
}

// Big returns x as a *big.Int.
func (x Int) Big() *big.Int {
	b, _ := new(big.Int).SetString(x.String(), 10)
	return b
}

// Int64 returns the int64 value nearest to x and an indication of any
// rounding error. If x is out of range, the result is math.MinInt64 (Above)
// or math.MaxInt64 (Below).
func (x Int) Int64() (int64, Accuracy) {
	u, ok := x.mag().uint64()
	if x.neg {
		switch {
		case !ok || u > 1<<63:
			return math.MinInt64, Above
		case u == 1<<63:
			return math.MinInt64, Exact
		}
		return -int64(u), Exact
	}
	if !ok || u > math.MaxInt64 {
		return math.MaxInt64, Below
	}
	return int64(u), Exact
}

// Uint64 returns the uint64 value nearest to x and an indication of any
// rounding error. Negative values yield (0, Above) and values too large yield
// (math.MaxUint64, Below).
func (x Int) Uint64() (uint64, Accuracy) {
	if x.neg {
		return 0, Above
	}
	u, ok := x.mag().uint64()
	if !ok {
		return math.MaxUint64, Below
	}
	return u, Exact
}

// Int32 is like Int64 for the int32 range.
func (x Int) Int32() (int32, Accuracy) {
	i, acc := x.Int64()
	switch {
	case i > math.MaxInt32:
		return math.MaxInt32, Below
	case i < math.MinInt32:
		return math.MinInt32, Above
	}
	return int32(i), acc
}

// Uint32 is like Uint64 for the uint32 range.
func (x Int) Uint32() (uint32, Accuracy) {
	u, acc := x.Uint64()
	if u > math.MaxUint32 {
		return math.MaxUint32, Below
	}
	return uint32(u), acc
}

// Format implements fmt.Formatter. It accepts the verbs 'd', 's' and 'v',
// the '+' and ' ' sign flags, and a minimum field width with the '-' (left
// justify) and '0' (zero padding) flags.
func (x Int) Format(s fmt.State, ch rune) {
	switch ch {
	case 'd', 's', 'v':
	default:
		fmt.Fprintf(s, "%%!%c(bignum.Int=%s)", ch, x.String())
		return
	}
	writePadded(s, x.Sign() < 0, x.mag().utoa())
}

// writePadded writes the sign and the digits in body to s, honoring the sign
// and width flags of s.
func writePadded(s fmt.State, neg bool, body []byte) {
	var sign string
	switch {
	case neg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	var padding int
	if width, hasWidth := s.Width(); hasWidth && width > len(sign)+len(body) {
		padding = width - len(sign) - len(body)
	}

	switch {
	case s.Flag('-'):
		// padding on right
		io.WriteString(s, sign)
		s.Write(body)
		writeMultiple(s, " ", padding)
	case s.Flag('0'):
		// zero padding on left
		io.WriteString(s, sign)
		writeMultiple(s, "0", padding)
		s.Write(body)
	default:
		// padding on left
		writeMultiple(s, " ", padding)
		io.WriteString(s, sign)
		s.Write(body)
	}
}

// write count copies of text to s
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			s.Write(b)
		}
	}
}

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// next whitespace delimited token. The token is read with the lenient rules of
// IntFromString: a token that is not a number yields 0 without error. Empty
// input sets z to 0 and returns io.ErrUnexpectedEOF. Scan accepts the verbs
// 'd', 's' and 'v'.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'd', 's', 'v':
	default:
		return errors.Errorf("bignum: invalid verb %q for Int.Scan", ch)
	}
	tok, err := scanToken(s)
	*z = IntFromString(tok)
	return err
}

// scanToken returns the next whitespace delimited token of s.
func scanToken(s fmt.ScanState) (string, error) {
	tok, err := s.Token(true, func(r rune) bool {
		return r != ' ' && r != '\t' && r != '\n' && r != '\r' && r != '\v' && r != '\f'
	})
	if err != nil {
		return "", err
	}
	if len(tok) == 0 {
		return "", io.ErrUnexpectedEOF
	}
	return string(tok), nil
}
