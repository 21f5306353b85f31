// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements signed multi-precision decimal integers.

package bignum

// An Int represents a signed multi-precision integer stored as a vector of
// decimal digits. The zero value for an Int represents the value 0.
//
// Int values are immutable: all operations return a new Int and never modify
// their receiver or arguments. Ints may therefore be copied and shared
// between goroutines freely.
//
// There is no negative zero: any operation whose magnitude is 0 yields a
// non-negative result.
type Int struct {
	abs dec  // magnitude, normalized or empty
	neg bool // sign; false if abs is 0
}

// NewInt returns an Int set to x.
func NewInt(x int64) Int {
	return IntOf(x)
}

// NewUint returns an Int set to x.
func NewUint(x uint64) Int {
	return IntOf(x)
}

func makeInt(abs dec, neg bool) Int {
	abs = abs.norm()
	if debugDecimal {
		abs.validate()
	}
	return Int{abs: abs, neg: neg && !abs.isZero()}
}

// mag returns the magnitude of x, mapping the zero value to dec{0}.
func (x Int) mag() dec {
	if len(x.abs) == 0 {
		return dec{0}
	}
	return x.abs
}

// Sign returns:
//
//	-1 if x <  0
//	 0 if x == 0
//	+1 if x >  0
func (x Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x Int) IsZero() bool {
	return x.abs.isZero()
}

// Digits returns the number of decimal digits of |x|. 0 has one digit.
func (x Int) Digits() int {
	return len(x.mag())
}

// Neg returns -x.
func (x Int) Neg() Int {
	return Int{abs: x.abs, neg: !x.neg && !x.IsZero()}
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return Int{abs: x.abs}
}

// Add returns the sum x+y.
func (x Int) Add(y Int) Int {
	a, b := x.mag(), y.mag()
	switch {
	case x.neg == y.neg:
		// x + y == x + y
		// (-x) + (-y) == -(x + y)
		return makeInt(dec(nil).add(a, b), x.neg)
	case a.cmp(b) >= 0:
		// x + (-y) == x - y == -(y - x)
		// (-x) + y == y - x == -(x - y)
		return makeInt(dec(nil).sub(a, b), x.neg)
	default:
		return makeInt(dec(nil).sub(b, a), y.neg)
	}
}

// Sub returns the difference x-y, computed as x + (-y).
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Inc returns x+1.
func (x Int) Inc() Int {
	return x.Add(intOne)
}

// Dec returns x-1.
func (x Int) Dec() Int {
	return x.Sub(intOne)
}

var intOne = Int{abs: dec{1}}

// Mul returns the product x*y.
func (x Int) Mul(y Int) Int {
	return makeInt(dec(nil).mul(x.mag(), y.mag()), x.neg != y.neg)
}

// Quo returns the quotient x/y truncated toward zero. If y == 0, Quo returns
// 0 instead of panicking.
func (x Int) Quo(y Int) Int {
	q, _ := x.QuoRem(y)
	return q
}

// Rem returns the remainder x%y, which takes the sign of x (truncated
// division). If y == 0, Rem returns 0.
func (x Int) Rem(y Int) Int {
	_, r := x.QuoRem(y)
	return r
}

// QuoRem returns the quotient x/y and the remainder x%y such that
//
//	q = x/y      with the result truncated toward zero
//	r = x - y*q
//
// Both results are 0 if y == 0.
func (x Int) QuoRem(y Int) (q, r Int) {
	a, b := x.mag(), y.mag()
	if b.isZero() {
		return Int{}, Int{}
	}
	if a.cmp(b) < 0 {
		return Int{}, makeInt(dec(nil).set(a), x.neg)
	}
	qd, rd := dec(nil).divMod(a, b)
	return makeInt(qd, x.neg != y.neg), makeInt(rd, x.neg)
}

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x Int) Cmp(y Int) int {
	xs, ys := x.Sign(), y.Sign()
	switch {
	case xs < 0 && ys >= 0:
		return -1
	case xs >= 0 && ys < 0:
		return 1
	case x.Equal(y):
		return 0
	}
	r := x.mag().cmp(y.mag())
	if xs < 0 {
		r = -r
	}
	return r
}

// CmpAbs compares the absolute values of x and y.
func (x Int) CmpAbs(y Int) int {
	return x.mag().cmp(y.mag())
}

// Equal reports whether x and y have the same sign and digits.
func (x Int) Equal(y Int) bool {
	return x.Sign() == y.Sign() && x.mag().equal(y.mag())
}
