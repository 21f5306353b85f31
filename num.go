// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import "unsafe"

// Signed is the set of signed machine integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned machine integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of machine integer types accepted by IntOf.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of machine floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number is the set of machine numeric types accepted by RealOf.
type Number interface {
	Integer | Float
}

// IntOf returns an Int set to the value of x.
func IntOf[T Integer](x T) Int {
	if x < 0 {
		// -(x+1) does not overflow for the most negative value of T
		return Int{abs: dec(nil).setUint64(uint64(-(x + 1)) + 1), neg: true}
	}
	return Int{abs: dec(nil).setUint64(uint64(x))}
}

// RealOf returns a Real set to the value of x with DefaultPrecision. Floating
// point values are converted through their shortest decimal representation;
// like RealFromFloat64, RealOf panics with ErrNaN if x is NaN or infinite.
func RealOf[T Number](x T) Real {
	var h T = 1
	if h /= 2; h != 0 {
		return realFromFloat(float64(x), bitSize(x))
	}
	if x < 0 {
		return Real{whole: dec(nil).setUint64(uint64(-(x + 1)) + 1), frac: dec{0}, prec: DefaultPrecision, neg: true}
	}
	return Real{whole: dec(nil).setUint64(uint64(x)), frac: dec{0}, prec: DefaultPrecision}
}

func bitSize[T Number](x T) int {
	return int(unsafe.Sizeof(x)) * 8
}
