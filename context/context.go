// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides precision contexts for Reals.
//
// All factory functions of the form
//
//	func (c *Context) NewT(x T) bignum.Real
//
// return a new bignum.Real set to the value of x with c's precision.
//
// Operators of the form
//
//	func (c *Context) BinaryOp(x, y bignum.Real) bignum.Real
//
// return x.Op(y) with c's precision. Quo generates up to Prec() fractional
// digits regardless of the precision of its operands.
//
// A Context catches conversion errors: if a factory fails, it returns 0 and
// records the error. Arithmetic is unaffected by a pending error, which is
// kept until (*Context).Err is called to check for errors.
//
// The arithmetic methods only read c and may be called concurrently. SetPrec
// and the factories that record errors must not race with other calls.
package context

import (
	"errors"

	"github.com/db47h/bignum"
)

// A Context is a wrapper around Reals that facilitates management of
// precision and error handling.
type Context struct {
	prec uint32
	err  error
}

// New creates a new context with the given precision. Unlike Real.WithPrec, a
// precision of 0 is kept as is: results then have no fractional digits.
func New(prec uint) *Context {
	return new(Context).SetPrec(prec)
}

// Default returns a new context with precision bignum.DefaultPrecision.
func Default() *Context {
	return New(bignum.DefaultPrecision)
}

// Prec returns the precision of c in decimal digits.
func (c *Context) Prec() uint {
	return uint(c.prec)
}

// SetPrec sets c's precision to prec and returns c.
//
// If prec > MaxPrec, it is set to MaxPrec.
func (c *Context) SetPrec(prec uint) *Context {
	if prec > bignum.MaxPrec {
		prec = bignum.MaxPrec
	}
	c.prec = uint32(prec)
	return c
}

func (c *Context) apply(x bignum.Real) bignum.Real {
	return x.WithPrec(uint(c.prec))
}

// New returns a new bignum.Real with value 0 and precision set to c's
// precision.
func (c *Context) New() bignum.Real {
	return c.apply(bignum.Real{})
}

// NewInt returns a new bignum.Real set to the value of x.
func (c *Context) NewInt(x bignum.Int) bignum.Real {
	return c.apply(bignum.RealFromInt(x))
}

// NewInt64 returns a new bignum.Real set to the value of x.
func (c *Context) NewInt64(x int64) bignum.Real {
	return c.apply(bignum.NewReal(x))
}

// NewUint64 returns a new bignum.Real set to the value of x.
func (c *Context) NewUint64(x uint64) bignum.Real {
	return c.apply(bignum.RealOf(x))
}

// NewFloat64 returns a new bignum.Real set to the shortest decimal
// representation of x. If x is NaN or an infinity, the error is recorded and
// NewFloat64 returns 0.
func (c *Context) NewFloat64(x float64) (r bignum.Real) {
	defer func() {
		if err := recover(); err != nil {
			e, ok := err.(error)
			if !ok || !errors.As(e, new(bignum.ErrNaN)) {
				panic(err)
			}
			c.setErr(e)
			r = c.New()
		}
	}()
	return c.apply(bignum.RealFromFloat64(x))
}

// NewString returns a new Real with the value of s and a boolean indicating
// success. s must be a number of the form accepted by bignum.ParseReal. The
// entire string (not just a prefix) must be valid for success. If the
// operation failed, the error is recorded and the returned value is 0.
func (c *Context) NewString(s string) (bignum.Real, bool) {
	x, err := c.Parse(s)
	if err != nil {
		c.setErr(err)
		return x, false
	}
	return x, true
}

// Parse is like bignum.ParseReal with the result set to c's precision. Errors
// are returned, not recorded.
func (c *Context) Parse(s string) (bignum.Real, error) {
	x, err := bignum.ParseReal(s)
	return c.apply(x), err
}

func (c *Context) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// Add returns the sum x+y with c's precision.
func (c *Context) Add(x, y bignum.Real) bignum.Real {
	return c.apply(x.Add(y))
}

// Sub returns the difference x-y with c's precision.
func (c *Context) Sub(x, y bignum.Real) bignum.Real {
	return c.apply(x.Sub(y))
}

// Mul returns the product x×y with c's precision.
func (c *Context) Mul(x, y bignum.Real) bignum.Real {
	return c.apply(x.Mul(y))
}

// Quo returns the quotient x/y truncated to c's precision. Quo returns 0 if
// y == 0.
func (c *Context) Quo(x, y bignum.Real) bignum.Real {
	return x.QuoPrec(y, uint(c.prec))
}

// Rem returns the remainder of x/y computed from the quotient at c's
// precision, as (bignum.Real).Rem does.
func (c *Context) Rem(x, y bignum.Real) bignum.Real {
	return x.WithPrec(uint(c.prec)).Rem(c.apply(y))
}

// Neg returns -x with c's precision.
func (c *Context) Neg(x bignum.Real) bignum.Real {
	return c.apply(x.Neg())
}

// Abs returns |x| with c's precision.
func (c *Context) Abs(x bignum.Real) bignum.Real {
	return c.apply(x.Abs())
}

// Round returns x truncated to c's precision.
func (c *Context) Round(x bignum.Real) bignum.Real {
	return c.apply(x).Truncate()
}
