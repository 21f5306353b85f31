// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the digit level carry and borrow kernels.

package bignum

// add sets z = x + y and returns z normalized.
func (z dec) add(x, y dec) dec {
	return z.addKeep(x, y).norm()
}

// addKeep sets z = x + y and returns z. The operands are padded on the left
// with zeros to a common width n; the result has width n+1 if a carry leaves
// the most significant position and width n otherwise. Leading zeros are kept,
// which lets callers detect the carry out of a fractional part.
func (z dec) addKeep(x, y dec) dec {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	if n == 0 {
		return z.setZero()
	}
	if alias(z, x) || alias(z, y) {
		z = nil // z is an alias for x or y - cannot reuse
	}
	z = z.make(n + 1)

	var c byte
	for i := 0; i < n; i++ {
		s := x.digit(i) + y.digit(i) + c
		c = 0
		if s > 9 {
			s -= 10
			c = 1
		}
		z[n-i] = s
	}
	if c != 0 {
		z[0] = 1
		return z
	}
	copy(z, z[1:])
	return z[:n]
}

// sub sets z = x - y for x >= y and returns z normalized.
func (z dec) sub(x, y dec) dec {
	return z.subKeep(x, y).norm()
}

// subKeep sets z = x - y for x >= y and returns z. The result has the width of
// the widest operand; leading zeros are kept.
func (z dec) subKeep(x, y dec) dec {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	if n == 0 {
		return z.setZero()
	}
	if alias(z, x) || alias(z, y) {
		z = nil
	}
	z = z.make(n)

	var b byte // borrow
	for i := 0; i < n; i++ {
		d := x.digit(i) + 10 - y.digit(i) - b
		b = 1
		if d > 9 {
			d -= 10
			b = 0
		}
		z[n-1-i] = d
	}
	if b != 0 {
		panic("dec: subtraction underflow")
	}
	return z
}
