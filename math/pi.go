// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/db47h/bignum"
)

var _pi = constant{compute: pi}

// Pi returns π with prec fractional digits. Values are cached: computing Pi
// at a precision lower than a previous call is cheap.
func Pi(prec uint) bignum.Real {
	return _pi.get(prec)
}

// pi computes π with Machin's formula
//
//	π = 16×arccot(5) - 4×arccot(239)
//
// on fixed-point integers scaled by 10**(prec+guardDigits).
func pi(prec uint) bignum.Real {
	p := prec + guardDigits
	unity := Pow10(p)
	a := arccot(5, unity).Mul(bignum.NewInt(16))
	b := arccot(239, unity).Mul(bignum.NewInt(4))
	return fromFixed(a.Sub(b), p)
}

// arccot returns arccot(x) = 1/x - 1/3x³ + 1/5x⁵ - ... scaled by unity.
func arccot(x int64, unity bignum.Int) bignum.Int {
	x2 := bignum.NewInt(x * x)
	xpow := unity.Quo(bignum.NewInt(x))
	sum := xpow
	neg := true
	for n := int64(3); ; n += 2 {
		xpow = xpow.Quo(x2)
		t := xpow.Quo(bignum.NewInt(n))
		if t.IsZero() {
			break
		}
		if neg {
			sum = sum.Sub(t)
		} else {
			sum = sum.Add(t)
		}
		neg = !neg
	}
	return sum
}

// fromFixed returns the Real x×10**-p, with precision p.
func fromFixed(x bignum.Int, p uint) bignum.Real {
	return bignum.RealFromInt(x).QuoPrec(bignum.RealFromInt(Pow10(p)), p)
}
