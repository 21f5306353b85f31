// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements signed decimal fixed-point numbers with a per value
// output precision.

package bignum

// DefaultPrecision is the precision given to values created by the package
// level constructors.
const DefaultPrecision = 25

// A Real represents a signed decimal number x of the form
//
//	x = sign × whole.frac
//
// where whole is an arbitrary precision integer part and frac holds the
// digits after the decimal point. The precision of a Real is the maximum
// number of fractional digits generated by division and shown by String; it
// does not limit the digits stored by addition, subtraction or
// multiplication, which are exact.
//
// The zero value for a Real is 0 with precision 0. Real values are immutable
// and may be copied and shared between goroutines freely. There is no
// negative zero.
//
// Operations with two operands produce a result with the larger of the two
// precisions.
type Real struct {
	whole dec    // integer part, normalized or empty
	frac  dec    // fractional digits, no trailing zeros, or empty
	prec  uint32 // fractional digits generated by Quo and shown by String
	neg   bool
}

// NewReal returns a Real set to x with DefaultPrecision.
func NewReal(x int64) Real {
	return RealOf(x)
}

// RealFromInt returns a Real set to x with DefaultPrecision.
func RealFromInt(x Int) Real {
	return makeReal(dec(nil).set(x.mag()), nil, DefaultPrecision, x.neg)
}

func makeReal(whole, frac dec, prec uint32, neg bool) Real {
	whole = whole.norm()
	frac = frac.trim()
	if debugDecimal {
		whole.validate()
	}
	// cap both slices so that appending to one never writes into the other
	z := Real{whole: whole[:len(whole):len(whole)], frac: frac[:len(frac):len(frac)], prec: prec}
	z.neg = neg && !z.IsZero()
	return z
}

func (x Real) w() dec {
	if len(x.whole) == 0 {
		return dec{0}
	}
	return x.whole
}

func (x Real) f() dec {
	if len(x.frac) == 0 {
		return dec{0}
	}
	return x.frac
}

// Prec returns the precision of x.
func (x Real) Prec() uint {
	return uint(x.prec)
}

// WithPrec returns a copy of x with precision prec. The stored digits are
// left untouched. Values of prec larger than MaxPrec are clamped.
func (x Real) WithPrec(prec uint) Real {
	if prec > MaxPrec {
		prec = MaxPrec
	}
	x.prec = uint32(prec)
	return x
}

// Truncate returns x with the stored fractional digits beyond its precision
// discarded.
func (x Real) Truncate() Real {
	if uint(len(x.frac)) <= uint(x.prec) {
		return x
	}
	return makeReal(x.w(), dec(nil).set(x.frac[:x.prec]), x.prec, x.neg)
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x Real) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x Real) IsZero() bool {
	return x.whole.isZero() && x.frac.isZero()
}

// IsInt reports whether x has no fractional digits.
func (x Real) IsInt() bool {
	return x.frac.isZero()
}

// Digits returns the number of stored digits of x, whole and fractional.
func (x Real) Digits() int {
	return x.WholeDigits() + x.FracDigits()
}

// WholeDigits returns the number of digits of the integer part of x.
func (x Real) WholeDigits() int {
	return len(x.w())
}

// FracDigits returns the number of stored fractional digits of x. A Real
// without fractional part has one fractional digit, 0.
func (x Real) FracDigits() int {
	return len(x.f())
}

// Neg returns -x.
func (x Real) Neg() Real {
	x.neg = !x.neg && !x.IsZero()
	return x
}

// Abs returns |x|.
func (x Real) Abs() Real {
	x.neg = false
	return x
}

func maxPrec(x, y Real) uint32 {
	return umax32(x.prec, y.prec)
}

// alignFrac returns copies of x and y right padded with zeros to a common
// length.
func alignFrac(x, y dec) (dec, dec) {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	return x.padRight(n), y.padRight(n)
}

// Add returns the sum x+y.
func (x Real) Add(y Real) Real {
	prec := maxPrec(x, y)
	switch {
	case x.neg == y.neg:
		return addAbs(x, y, prec, x.neg)
	case x.CmpAbs(y) >= 0:
		return subAbs(x, y, prec, x.neg)
	default:
		return subAbs(y, x, prec, y.neg)
	}
}

// Sub returns the difference x-y.
func (x Real) Sub(y Real) Real {
	return x.Add(y.Neg())
}

// Inc returns x+1.
func (x Real) Inc() Real {
	return x.Add(Real{whole: dec{1}, prec: x.prec})
}

// Dec returns x-1.
func (x Real) Dec() Real {
	return x.Sub(Real{whole: dec{1}, prec: x.prec})
}

// addAbs returns |x| + |y| with the sign neg.
//
// The fractional parts are right padded to a common length n and added with
// leading zeros kept; a result longer than n carries one into the integer
// part.
func addAbs(x, y Real, prec uint32, neg bool) Real {
	xf, yf := alignFrac(x.f(), y.f())
	n := len(xf)
	f := dec(nil).addKeep(xf, yf)
	w := dec(nil).add(x.w(), y.w())
	if len(f) > n {
		w = w.add(w, dec{1})
		f = f[1:]
	}
	return makeReal(w, f, prec, neg)
}

// subAbs returns |x| - |y| for |x| >= |y|, with the sign neg.
//
// If the fractional part of x is smaller than the one of y, one is borrowed
// from the integer part of x: a 1 is prefixed to the fraction of x and the
// extra leading digit is dropped from the difference.
func subAbs(x, y Real, prec uint32, neg bool) Real {
	xf, yf := alignFrac(x.f(), y.f())
	xw := x.w()
	borrow := xf.cmp(yf) < 0
	if borrow {
		xf = concat(dec{1}, xf)
		xw = dec(nil).sub(xw, dec{1})
	}
	f := dec(nil).subKeep(xf, yf)
	if borrow {
		f = f[1:]
	}
	w := dec(nil).sub(xw, y.w())
	return makeReal(w, f, prec, neg)
}

// Mul returns the product x*y.
//
// The digits of each operand are concatenated into an integer, the integers
// are multiplied, and the decimal point is put back in place, len(frac(x)) +
// len(frac(y)) digits from the right.
func (x Real) Mul(y Real) Real {
	xf, yf := x.f(), y.f()
	a := concat(x.w(), xf).norm()
	b := concat(y.w(), yf).norm()
	p := dec(nil).mul(a, b)
	return fromScaled(p, len(xf)+len(yf), maxPrec(x, y), x.neg != y.neg)
}

// fromScaled returns the Real p × 10**-n.
func fromScaled(p dec, n int, prec uint32, neg bool) Real {
	if len(p) <= n {
		p = p.padLeft(n + 1)
	}
	cut := len(p) - n
	return makeReal(p[:cut:cut], p[cut:], prec, neg)
}

// scaled returns the digits of |x| and |y| as integers sharing the same
// scale, that is with their fractional parts aligned, and the number of
// fractional digits of that scale.
func scaled(x, y Real) (a, b dec, n int) {
	xf, yf := alignFrac(x.f(), y.f())
	a = concat(x.w(), xf).norm()
	b = concat(y.w(), yf).norm()
	return a, b, len(xf)
}

// Quo returns the quotient x/y with up to max(x.Prec(), y.Prec()) fractional
// digits. Digits beyond that are truncated. If y == 0, Quo returns 0.
func (x Real) Quo(y Real) Real {
	return x.quo(y, maxPrec(x, y))
}

// QuoPrec is like Quo but generates prec fractional digits and returns a
// result with precision prec.
func (x Real) QuoPrec(y Real, prec uint) Real {
	if prec > MaxPrec {
		prec = MaxPrec
	}
	return x.quo(y, uint32(prec))
}

// quo implements Quo.
//
// Both operands are aligned on a common scale and divided as integers. The
// remainder is then long divided, one fractional digit at a time: it is
// multiplied by 10 and divided by the divisor, the quotient digit is appended
// and the new remainder carried to the next step.
func (x Real) quo(y Real, prec uint32) Real {
	if y.IsZero() {
		return Real{prec: prec}
	}
	a, b, _ := scaled(x, y)
	q, r := dec(nil).divMod(a, b)
	var f dec
	for i := uint32(0); i < prec && !r.isZero(); i++ {
		var d dec
		d, r = d.divMod(r.shl(r, 1), b)
		f = append(f, d[0])
	}
	return makeReal(q, f, prec, x.neg != y.neg)
}

// Rem returns the remainder of x/y: the fractional part of the quotient
// x.Quo(y), multiplied by y and truncated to max(x.Prec(), y.Prec())
// fractional digits. The result takes the sign of x. If y == 0, Rem returns 0.
//
// When the quotient does not terminate within the precision, the result is
// short of the exact remainder: 1 % 3 at precision 3 is 0.999. Use RemExact
// for x - y×trunc(x/y).
func (x Real) Rem(y Real) Real {
	prec := maxPrec(x, y)
	if y.IsZero() {
		return Real{prec: prec}
	}
	q := x.quo(y, prec)
	f := makeReal(nil, q.frac, prec, q.neg)
	return f.Mul(y).Truncate()
}

// RemExact returns the remainder x - y×trunc(x/y), computed exactly. The
// result takes the sign of x and has precision max(x.Prec(), y.Prec()). If
// y == 0, RemExact returns 0.
func (x Real) RemExact(y Real) Real {
	prec := maxPrec(x, y)
	if y.IsZero() {
		return Real{prec: prec}
	}
	a, b, n := scaled(x, y)
	return fromScaled(a.mod(b), n, prec, x.neg)
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// The comparison uses all stored digits, regardless of precision.
func (x Real) Cmp(y Real) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < 0 && ys >= 0:
		return -1
	case xs >= 0 && ys < 0:
		return 1
	case x.Equal(y):
		return 0
	}
	r := x.CmpAbs(y)
	if xs < 0 {
		r = -r
	}
	return r
}

// CmpAbs compares the absolute values of x and y.
func (x Real) CmpAbs(y Real) int {
	if r := x.w().cmp(y.w()); r != 0 {
		return r
	}
	xf, yf := alignFrac(x.f(), y.f())
	return xf.cmp(yf)
}

// Equal reports whether x and y have the same sign and the same stored digits.
// Precision is ignored.
func (x Real) Equal(y Real) bool {
	return x.Sign() == y.Sign() && x.w().equal(y.w()) && x.f().equal(y.f())
}
