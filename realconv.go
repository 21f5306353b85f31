// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Real-to-string and string-to-Real conversion functions.

package bignum

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// RealFromString returns the Real read from the beginning of s with the
// lenient stream semantics of Scan: an optional sign, a maximal run of digits
// and, if a '.' follows, a second maximal run of digits. Anything after that
// is ignored. If s does not start with a number, the result is 0. The result
// has DefaultPrecision.
func RealFromString(s string) Real {
	x, _, _ := scanReal(strings.NewReader(s))
	return x
}

// ParseReal parses s as a decimal number of the form
//
//	[sign] digits ["." [digits]] | [sign] "." digits
//
// The entire string must be a valid number; otherwise the returned error wraps
// ErrSyntax. The result has DefaultPrecision.
func ParseReal(s string) (Real, error) {
	r := strings.NewReader(s)
	x, n, err := scanReal(r)
	if err == nil && n == 0 {
		err = errNoDigits
	}
	if err == nil && r.Len() > 0 {
		err = errors.Errorf("unexpected %q after digits", s[len(s)-r.Len():])
	}
	if err != nil {
		return Real{}, errors.Wrapf(ErrSyntax, "parsing %q: %v", s, err)
	}
	return x, nil
}

// RealFromFloat64 returns a Real set to the shortest decimal representation
// of f that round trips, with DefaultPrecision. RealFromFloat64 panics with
// ErrNaN if f is NaN or an infinity.
func RealFromFloat64(f float64) Real {
	return realFromFloat(f, 64)
}

func realFromFloat(f float64, bitSize int) Real {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		panic(ErrNaN{Msg: "RealFromFloat64(" + strconv.FormatFloat(f, 'g', -1, 64) + ")"})
	}
	return RealFromString(strconv.FormatFloat(f, 'f', -1, bitSize))
}

// scanReal reads a Real from r and returns the number of digits read.
func scanReal(r io.ByteScanner) (x Real, count int, err error) {
	x.prec = DefaultPrecision
	neg, err := scanSign(r)
	if err != nil {
		if err == io.EOF {
			err = nil
		}
		return x, 0, err
	}
	whole, n, err := dec(nil).scan(r)
	if err != nil {
		return x, n, err
	}
	count = n

	var frac dec
	var ch byte
	if ch, err = r.ReadByte(); err == nil {
		if ch == '.' {
			if frac, n, err = dec(nil).scan(r); err != nil {
				return x, count + n, err
			}
			count += n
		} else {
			_ = r.UnreadByte()
		}
	} else if err == io.EOF {
		err = nil
	}
	return makeReal(whole, frac, DefaultPrecision, neg), count, err
}

// String returns x with at most x.Prec() fractional digits. The decimal point
// is omitted if x has no fractional digits or its precision is 0. Digits
// beyond the precision are truncated.
func (x Real) String() string {
	return string(x.Append(nil))
}

// StringUnsigned is like String for |x|.
func (x Real) StringUnsigned() string {
	return string(x.appendText(nil, false, int(x.prec), false))
}

// FixedString returns x with exactly x.Prec() fractional digits, zero padded.
func (x Real) FixedString() string {
	return string(x.appendText(nil, x.neg, int(x.prec), true))
}

// WholeString returns the integer part of x, with a leading '-' if x is
// negative.
func (x Real) WholeString() string {
	return string(x.w().appendText(nil, x.neg))
}

// FracString returns the fractional digits of x shown by String, without
// sign or decimal point. It returns "0" if there are none.
func (x Real) FracString() string {
	f := x.f()
	if uint(len(f)) > uint(x.prec) {
		f = f[:x.prec]
	}
	return string(f.appendText(nil, false))
}

// Append appends the string form of x, as generated by x.String, to buf and
// returns the extended buffer.
func (x Real) Append(buf []byte) []byte {
	return x.appendText(buf, x.neg, int(x.prec), false)
}

// appendText appends x to buf with prec fractional digits at most. If fixed,
// exactly prec digits are written, zero padded.
func (x Real) appendText(buf []byte, neg bool, prec int, fixed bool) []byte {
	buf = x.w().appendText(buf, neg)
	f := x.f()
	if prec <= 0 || !fixed && f.isZero() {
		return buf
	}
	buf = append(buf, '.')
	if len(f) > prec {
		f = f[:prec]
	}
	buf = f.appendText(buf, false)
	if fixed {
		for i := len(f); i < prec; i++ {
			buf = append(buf, '0')
		}
	}
	return buf
}

// text returns all stored digits of x, regardless of precision.
func (x Real) text() []byte {
	return x.appendText(nil, x.neg, len(x.f()), false)
}

// Format implements fmt.Formatter. It accepts the verbs 's' and 'v', which
// format like String, and 'f' and 'F', which format like FixedString. An
// explicit precision, as in "%.3f", replaces the precision of x. Formats also
// honor the '+' and ' ' flags and a field width.
func (x Real) Format(s fmt.State, ch rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = int(x.prec)
	}
	var body []byte
	switch ch {
	case 's', 'v':
		body = x.appendText(nil, false, prec, false)
	case 'f', 'F':
		body = x.appendText(nil, false, prec, true)
	default:
		fmt.Fprintf(s, "%%!%c(bignum.Real=%s)", ch, x.String())
		return
	}
	writePadded(s, x.Sign() < 0, body)
}

// Scan is a support routine for fmt.Scanner; it sets z to the value of the
// next whitespace delimited token, read with the lenient rules of
// RealFromString. The precision of z is kept unless it is 0, in which case it
// becomes DefaultPrecision. Empty input sets z to 0 and returns
// io.ErrUnexpectedEOF. Scan accepts the verbs 'f', 'F', 'g', 's' and 'v'.
func (z *Real) Scan(s fmt.ScanState, ch rune) error {
	switch ch {
	case 'f', 'F', 'g', 's', 'v':
	default:
		return errors.Errorf("bignum: invalid verb %q for Real.Scan", ch)
	}
	tok, err := scanToken(s)
	prec := z.prec
	*z = RealFromString(tok)
	if prec != 0 {
		z.prec = prec
	}
	return err
}

// Int returns the integer part of x, truncated toward zero.
func (x Real) Int() Int {
	return makeInt(dec(nil).set(x.w()), x.neg)
}

// Int64 returns the integer part of x as an int64, truncated toward zero, and
// an indication of the error: Below if the result is smaller than x, Above if
// it is larger.
func (x Real) Int64() (int64, Accuracy) {
	i, acc := x.Int().Int64()
	if acc == Exact && !x.IsInt() {
		acc = makeAcc(x.neg)
	}
	return i, acc
}

// Uint64 is like Int64 for uint64.
func (x Real) Uint64() (uint64, Accuracy) {
	if x.neg {
		return 0, Above
	}
	u, acc := x.Int().Uint64()
	if acc == Exact && !x.IsInt() {
		acc = Below
	}
	return u, acc
}

// Float64 returns the float64 value nearest to x, computed from all stored
// digits, and an indication of the rounding error relative to the exact binary
// value of the result. Values too large for a float64 yield an infinity.
func (x Real) Float64() (float64, Accuracy) {
	text := string(x.text())
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// only range errors are possible here
		return f, makeAcc(f > 0)
	}
	xr, _ := new(big.Rat).SetString(text)
	return f, makeAccCmp(new(big.Rat).SetFloat64(f).Cmp(xr))
}

func makeAccCmp(c int) Accuracy {
	switch {
	case c < 0:
		return Below
	case c > 0:
		return Above
	}
	return Exact
}
