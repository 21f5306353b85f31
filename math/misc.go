// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math provides elementary functions for bignum Ints and Reals.
//
// Functions on Reals compute their result to the precision of their argument
// (or the explicit precision given) and truncate it: all digits returned are
// correct except possibly the last one, which may be one unit too small.
package math

import (
	"sync"

	"github.com/db47h/bignum"
)

// guard digits used by the series evaluations
const guardDigits = 10

// constants
var (
	intOne  = bignum.NewInt(1)
	intTen  = bignum.NewInt(10)
	one     = bignum.NewReal(1)
	two     = bignum.NewReal(2)
	ten     = bignum.NewReal(10)
	half    = bignum.RealFromString("0.5")
	tenth   = bignum.RealFromString("0.1")
	lowMant = bignum.RealFromString("0.7")
)

// Pow returns x**n. Pow(x, 0) is 1 for any x.
func Pow(x bignum.Int, n uint) bignum.Int {
	if n == 0 {
		return intOne
	}
	y := intOne
	for n > 1 {
		if n%2 != 0 {
			y = y.Mul(x)
		}
		x = x.Mul(x)
		if x.IsZero() {
			return x
		}
		n /= 2
	}
	return x.Mul(y)
}

// PowReal returns x**n, computed exactly. The result has the precision of x.
func PowReal(x bignum.Real, n uint) bignum.Real {
	if n == 0 {
		return one.WithPrec(x.Prec())
	}
	y := one
	for n > 1 {
		if n%2 != 0 {
			y = y.Mul(x)
		}
		x = x.Mul(x)
		n /= 2
	}
	return x.Mul(y).WithPrec(x.Prec())
}

// Pow10 returns 10**n.
func Pow10(n uint) bignum.Int {
	return Pow(intTen, n)
}

// Factorial returns n!.
func Factorial(n uint) bignum.Int {
	z := intOne
	for i := uint(2); i <= n; i++ {
		z = z.Mul(bignum.NewUint(uint64(i)))
	}
	return z
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
func GCD(a, b bignum.Int) bignum.Int {
	a, b = a.Abs(), b.Abs()
	for !b.IsZero() {
		a, b = b, a.Rem(b)
	}
	return a
}

// trunc returns x with precision prec and no stored digits beyond it.
func trunc(x bignum.Real, prec uint) bignum.Real {
	return x.WithPrec(prec).Truncate()
}

// digits returns the number of decimal digits in n.
func digits(n uint) uint {
	d := uint(1)
	for ; n >= 10; n /= 10 {
		d++
	}
	return d
}

// A constant caches the value of a mathematical constant at the highest
// precision computed so far.
type constant struct {
	mu      sync.Mutex
	v       bignum.Real
	valid   bool
	compute func(prec uint) bignum.Real
}

// get returns the constant truncated to prec fractional digits. It is safe
// for concurrent use.
func (c *constant) get(prec uint) bignum.Real {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid || c.v.Prec() < prec {
		c.v = trunc(c.compute(prec), prec)
		c.valid = true
	}
	return trunc(c.v, prec)
}
