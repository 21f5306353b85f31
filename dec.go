// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "math"

const debugDecimal = false

// dec is an unsigned integer x of the form
//
//	x = x[0]*10^(n-1) + x[1]*10^(n-2) + ... + x[n-2]*10 + x[n-1]
//
// with 0 <= x[i] <= 9, stored in a slice of length n with the most significant
// digit first.
//
// A number is normalized if the slice contains no leading 0 digit. The
// normalized representation of 0 is the one digit slice dec{0}. An empty or
// nil slice is accepted as 0 on input. During arithmetic operations,
// denormalized values may occur but are always normalized before returning the
// final result, except for the *Keep kernels used for fractional digits.
type dec []byte

// make returns a dec of length n, reusing z's storage if possible.
func (z dec) make(n int) dec {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		// Most decs start small and stay that way; don't over-allocate.
		return make(dec, 1)
	}
	// extra capacity for a carry digit and a few shifts
	const e = 4
	return make(dec, n, n+e)
}

// set sets z to a copy of x and returns z.
func (z dec) set(x dec) dec {
	z = z.make(len(x))
	copy(z, x)
	return z
}

// setZero sets z to the normalized 0.
func (z dec) setZero() dec {
	z = z.make(1)
	z[0] = 0
	return z
}

func (z dec) setUint64(x uint64) dec {
	if x == 0 {
		return z.setZero()
	}
	var buf [20]byte // max uint64 has 20 decimal digits
	i := len(buf)
	for x != 0 {
		i--
		buf[i] = byte(x % 10)
		x /= 10
	}
	return z.set(buf[i:])
}

// norm strips leading zeros from z. An empty z becomes dec{0}.
func (z dec) norm() dec {
	if len(z) == 0 {
		return z.setZero()
	}
	i := 0
	for i < len(z)-1 && z[i] == 0 {
		i++
	}
	if i > 0 {
		copy(z, z[i:])
		z = z[:len(z)-i]
	}
	return z
}

// trim strips trailing zeros from z, keeping at least one digit. It is the
// normal form of a fractional part.
func (z dec) trim() dec {
	n := len(z)
	for n > 1 && z[n-1] == 0 {
		n--
	}
	if n == 0 {
		return z.setZero()
	}
	return z[:n]
}

func (x dec) isZero() bool {
	for _, d := range x {
		if d != 0 {
			return false
		}
	}
	return true
}

// digit returns the i-th digit of x counting from the least significant one.
// Positions beyond the length of x read as 0, which pads x on the left.
func (x dec) digit(i int) byte {
	if i >= len(x) {
		return 0
	}
	return x[len(x)-1-i]
}

// padLeft returns a copy of x prefixed with zeros up to length n.
func (x dec) padLeft(n int) dec {
	if len(x) >= n {
		return dec(nil).set(x)
	}
	z := make(dec, n)
	copy(z[n-len(x):], x)
	return z
}

// padRight returns a copy of x followed by zeros up to length n.
func (x dec) padRight(n int) dec {
	if len(x) >= n {
		return dec(nil).set(x)
	}
	z := make(dec, n)
	copy(z, x)
	return z
}

// shl sets z = x * 10**s by appending s zero placeholders and returns z.
func (z dec) shl(x dec, s int) dec {
	if x.isZero() {
		return z.setZero()
	}
	if alias(z, x) {
		z = nil
	}
	n := len(x)
	z = z.make(n + s)
	copy(z, x)
	for i := n; i < len(z); i++ {
		z[i] = 0
	}
	return z
}

// cmp compares the magnitudes of x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
//
// Both operands are padded with leading zeros to a common width. Every
// position is visited, from the least significant to the most significant
// one, and the verdict of the last unequal pair is kept; the surviving verdict
// is therefore the one of the most significant differing digit.
func (x dec) cmp(y dec) (r int) {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	for i := 0; i < n; i++ {
		a, b := x.digit(i), y.digit(i)
		if a > b {
			r = 1
		} else if a < b {
			r = -1
		}
	}
	return r
}

// equal reports whether x and y have the same length and the same digits. It
// does not pad; both operands must be normalized the same way.
func (x dec) equal(y dec) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// uint64 returns the value of x and true, or math.MaxUint64 and false if x
// does not fit.
func (x dec) uint64() (uint64, bool) {
	var z uint64
	for _, d := range x {
		if z > (math.MaxUint64-uint64(d))/10 {
			return math.MaxUint64, false
		}
		z = z*10 + uint64(d)
	}
	return z, true
}

// concat returns a new dec holding the digits of x followed by those of y.
func concat(x, y dec) dec {
	z := make(dec, len(x)+len(y))
	copy(z, x)
	copy(z[len(x):], y)
	return z
}

func (x dec) validate() {
	if !debugDecimal {
		// avoid performance bugs
		panic("validate called but debugDecimal is not set")
	}
	if msg := x.invalid(); msg != "" {
		panic(msg)
	}
}

// invalid describes why x is not a normalized digit vector, or returns "".
func (x dec) invalid() string {
	if len(x) == 0 {
		return "empty digit vector"
	}
	for i, d := range x {
		if d > 9 {
			return "digit out of range"
		}
		if i == 0 && d == 0 && len(x) > 1 {
			return "leading zero digit"
		}
	}
	return ""
}
