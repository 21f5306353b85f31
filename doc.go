// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package bignum implements arbitrary-precision decimal arithmetic on two value
types: Int, a signed integer, and Real, a signed decimal fixed-point number.

Unlike math/big, numbers are stored as plain vectors of decimal digits, one
digit per byte, most significant digit first. All arithmetic works directly on
those digits with the schoolbook methods: carry and borrow propagation for
addition and subtraction, repeated addition for multiplication and repeated
subtraction for division. No conversion to or from binary ever takes place, so
that decimal input is represented exactly.

The zero value for an Int or a Real corresponds to 0. Thus, new values can be
declared in the usual ways and denote 0 without further initialization:

	var x bignum.Int  // x is an Int of value 0

Alternatively, new values can be created with one of the constructors:

	x := bignum.NewInt(-42)
	y := bignum.IntOf(uint8(255))
	z := bignum.RealFromString("3.25")

Ints and Reals are immutable values. Numeric operations and predicates are
methods of the form

	func (x Int) Binary(y Int) Int    // z = x binary y
	func (x Int) Unary() Int          // z = unary x
	func (x Int) Pred() P             // p = pred(x)

and never modify their operands, so that expressions chain naturally:

	sum := a.Add(b).Mul(c)

and values may be shared between goroutines without synchronization.

Division and remainder by zero do not panic: they return 0. Integer division
truncates toward zero and the remainder takes the sign of the dividend.

# Precision

Every Real carries a precision, the maximum number of fractional digits
generated by division and shown by String. Addition, subtraction and
multiplication are exact and may store more digits than the precision; those
digits take part in comparisons and later operations. Package level
constructors use DefaultPrecision and binary operations give their result the
larger precision of their operands:

	a := bignum.RealFromString("10")
	b := bignum.RealFromString("4")
	q := a.Quo(b).WithPrec(3)
	q.String()       // "2.5"
	q.FixedString()  // "2.500"

The context sub-package provides a Context type holding a working precision
to create values and run operations at a precision other than the default.

# Conversions

Ints and Reals implement fmt.Formatter, fmt.Scanner, encoding.TextMarshaler,
json.Marshaler and gob.GobEncoder, together with the corresponding decoders.
NullInt and NullReal wrap them for use with database/sql.

String parsing comes in two flavors: IntFromString and RealFromString follow
the lenient stream rules of Scan and return 0 for input that does not start
with a number, while ParseInt and ParseReal reject malformed input with an
error wrapping ErrSyntax.
*/
package bignum
