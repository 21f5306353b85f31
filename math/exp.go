// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	stdmath "math"

	"github.com/db47h/bignum"
)

// Exp returns e**x truncated to x.Prec() fractional digits.
func Exp(x bignum.Real) bignum.Real {
	return ExpPrec(x, x.Prec())
}

// ExpPrec is like Exp but returns a result with prec fractional digits.
func ExpPrec(x bignum.Real, prec uint) bignum.Real {
	switch x.Sign() {
	case 0:
		return one.WithPrec(prec)
	case -1:
		// e**x = 1 / e**-x
		y := ExpPrec(x.Neg(), prec+guardDigits)
		return one.QuoPrec(y, prec)
	}

	// reduce x below 1: e**x = (e**(x/2**k))**(2**k)
	r, k := x, uint(0)
	for r.Cmp(one) >= 0 {
		r = r.Mul(half)
		k++
	}
	// each squaring doubles the relative error and the result has about
	// x/ln(10) integer digits, which all need to be correct.
	f, _ := x.Float64()
	wp := prec + guardDigits + k + uint(f/stdmath.Ln10)

	z := expm1T(r, wp).Add(one)
	for ; k > 0; k-- {
		z = trunc(z.Mul(z), wp)
	}
	return trunc(z, prec)
}

// expm1T returns e**x-1 for 0 <= x < 1 with wp fractional digits, computed
// with the Taylor series x + x²/2! + x³/3! + ...
func expm1T(x bignum.Real, wp uint) bignum.Real {
	var (
		t = trunc(x, wp) // current term
		s = t
	)
	for n := int64(2); ; n++ {
		t = t.Mul(x).QuoPrec(bignum.NewReal(n), wp)
		if t.IsZero() {
			break
		}
		s = s.Add(t)
	}
	return s
}
