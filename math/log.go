// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"github.com/db47h/bignum"
)

// Log returns the natural logarithm of x truncated to x.Prec() fractional
// digits.
//
// The function panics with bignum.ErrNaN if x <= 0.
func Log(x bignum.Real) bignum.Real {
	return LogPrec(x, x.Prec())
}

// LogPrec is like Log but returns a result with prec fractional digits.
func LogPrec(x bignum.Real, prec uint) bignum.Real {
	if x.Sign() <= 0 {
		panic(bignum.ErrNaN{Msg: "natural logarithm of non-positive operand"})
	}
	if x.Equal(one) {
		return bignum.Real{}.WithPrec(prec)
	}

	// x = m × 10**e with 0.1 <= m < 1
	m, e := x, 0
	if !x.Int().IsZero() {
		e = x.WholeDigits()
		m = x.QuoPrec(bignum.RealFromInt(Pow10(uint(e))), uint(x.FracDigits()+e))
	}
	for m.Cmp(tenth) < 0 {
		m = m.Mul(ten)
		e--
	}
	// m × 2**j in [0.7, 1.4)
	j := 0
	for m.Cmp(lowMant) < 0 {
		m = m.Mul(two)
		j++
	}

	ae := e
	if ae < 0 {
		ae = -ae
	}
	wp := prec + guardDigits + digits(uint(ae))

	// log(m) = 2×atanh((m-1)/(m+1))
	z := atanh(m.Sub(one).QuoPrec(m.Add(one), wp), wp).Mul(two)
	if j != 0 {
		z = z.Sub(ln2(wp).Mul(bignum.NewReal(int64(j))))
	}
	if e != 0 {
		z = z.Add(ln10(wp).Mul(bignum.NewReal(int64(e))))
	}
	return trunc(z, prec)
}

var (
	_ln2  = constant{compute: __ln2}
	_ln10 = constant{compute: __ln10}
)

// ln2 returns log(2) with prec fractional digits.
func ln2(prec uint) bignum.Real { return _ln2.get(prec) }

// ln10 returns log(10) with prec fractional digits.
func ln10(prec uint) bignum.Real { return _ln10.get(prec) }

// __ln2 computes log(2) = 2×atanh(1/3).
func __ln2(prec uint) bignum.Real {
	p := prec + guardDigits
	return atanh(one.QuoPrec(bignum.NewReal(3), p), p).Mul(two)
}

// __ln10 computes log(10) = 3×log(2) + log(5/4), with log(5/4) = 2×atanh(1/9).
func __ln10(prec uint) bignum.Real {
	p := prec + guardDigits
	l := atanh(one.QuoPrec(bignum.NewReal(9), p), p).Mul(two)
	return l.Add(ln2(p).Mul(bignum.NewReal(3)))
}

// atanh returns atanh(y) = y + y³/3 + y⁵/5 + ... for |y| < 1 with wp
// fractional digits.
func atanh(y bignum.Real, wp uint) bignum.Real {
	y = trunc(y, wp)
	y2 := trunc(y.Mul(y), wp)
	pow, s := y, y
	for k := int64(3); ; k += 2 {
		pow = trunc(pow.Mul(y2), wp)
		t := pow.QuoPrec(bignum.NewReal(k), wp)
		if t.IsZero() {
			break
		}
		s = s.Add(t)
	}
	return s
}
