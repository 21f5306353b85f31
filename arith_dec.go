// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

// mulDigit sets z = x * d for a single digit d by adding x to itself and
// returns z.
func (z dec) mulDigit(x dec, d byte) dec {
	if d == 0 || x.isZero() {
		return z.setZero()
	}
	z = z.set(x)
	for ; d > 1; d-- {
		z = z.add(z, x)
	}
	return z
}

// mul sets z = x * y and returns z.
//
// The smaller operand supplies the repeat counts. The larger one is first
// extended with one zero placeholder per digit of the smaller operand but the
// last; then for each digit of the smaller operand, most significant first,
// the shifted operand times that digit is accumulated and one placeholder is
// dropped.
func (z dec) mul(x, y dec) dec {
	if x.cmp(y) < 0 {
		x, y = y, x
	}
	if y.isZero() {
		return z.setZero()
	}
	t := dec(nil).shl(x, len(y)-1)
	var acc, p dec
	acc = acc.setZero()
	for _, d := range y {
		p = p.mulDigit(t, d)
		acc = acc.add(acc, p)
		t = t[:len(t)-1]
	}
	return z.set(acc)
}

// simpleDiv computes a single quotient digit: it subtracts y from x as long as
// the difference stays non-negative. It returns the remaining value and the
// number of subtractions performed.
func simpleDiv(x, y dec) (r dec, q byte) {
	r = x
	for r.cmp(y) >= 0 {
		r = dec(nil).sub(r, y)
		q++
	}
	return r, q
}

// divMod sets z to the quotient x / y and returns z and the remainder r such
// that x = z*y + r and r < y. y must not be 0.
//
// The divisor is aligned with the most significant digit of the dividend by
// appending zero placeholders. At every position, simpleDiv yields one
// quotient digit, then the divisor drops one placeholder. The value left after
// the last position is the remainder.
func (z dec) divMod(x, y dec) (q, r dec) {
	if y.isZero() {
		panic("division by zero")
	}
	x, y = dec(nil).set(x).norm(), dec(nil).set(y).norm()
	if x.cmp(y) < 0 {
		return z.setZero(), x
	}
	s := len(x) - len(y)
	t := dec(nil).shl(y, s)
	if alias(z, x) {
		z = nil
	}
	q = z.make(s + 1)
	r = x
	for i := 0; i <= s; i++ {
		r, q[i] = simpleDiv(r, t)
		t = t[:len(t)-1]
	}
	return q.norm(), r.norm()
}

// div sets z = x / y and returns z.
// mod returns x % y.
func (x dec) mod(y dec) dec {
	_, r := dec(nil).divMod(x, y)
	return r
}

// pow10 returns 10**n.
func pow10(n int) dec {
	return dec(nil).shl(dec{1}, n)
}
