// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/db47h/bignum"
)

// Sqrt returns the square root of x truncated to x.Prec() fractional digits.
// The result is exact: every returned digit is correct.
//
// The function panics with bignum.ErrNaN if x < 0.
func Sqrt(x bignum.Real) bignum.Real {
	return SqrtPrec(x, x.Prec())
}

// SqrtPrec is like Sqrt but returns a result with prec fractional digits.
func SqrtPrec(x bignum.Real, prec uint) bignum.Real {
	switch x.Sign() {
	case -1:
		panic(bignum.ErrNaN{Msg: "square root of negative operand"})
	case 0:
		return bignum.Real{}.WithPrec(prec)
	}
	// floor(sqrt(x) × 10**prec) = isqrt(floor(x × 10**2prec))
	n := x.Mul(bignum.RealFromInt(Pow10(2 * prec))).Int()
	return fromFixed(isqrt(n), prec)
}

// isqrt returns floor(sqrt(n)) for n >= 0 by Newton's iteration.
func isqrt(n bignum.Int) bignum.Int {
	if n.IsZero() {
		return n
	}
	// 10**ceil(d/2) > sqrt(n) for an n of d digits; the iteration decreases
	// monotonically from any value above the root.
	z := Pow10(uint(n.Digits()+1) / 2)
	for {
		y := z.Add(n.Quo(z)).Quo(bignum.NewInt(2))
		if y.Cmp(z) >= 0 {
			return z
		}
		z = y
	}
}
