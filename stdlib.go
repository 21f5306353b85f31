// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file mirrors types and constants from math/big.

package bignum

import (
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// MaxPrec is the largest (theoretically) supported precision; likely
// memory-limited.
const MaxPrec = math.MaxUint32

// Accuracy describes the error produced by a conversion to a machine type,
// relative to the exact value.
type Accuracy int8

// Constants describing the Accuracy of a conversion.
const (
	Below Accuracy = -1
	Exact Accuracy = 0
	Above Accuracy = +1
)

func (a Accuracy) String() string {
	switch a {
	case Below:
		return "Below"
	case Exact:
		return "Exact"
	case Above:
		return "Above"
	}
	return "Accuracy(" + strconv.Itoa(int(a)) + ")"
}

func makeAcc(above bool) Accuracy {
	if above {
		return Above
	}
	return Below
}

func alias(x, y dec) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// scan errors
var (
	// ErrSyntax is returned by the strict parsers when the input is not a
	// well formed number.
	ErrSyntax = errors.New("invalid syntax")

	errNoDigits = errors.New("number has no digits")
)

func scanSign(r io.ByteScanner) (neg bool, err error) {
	var ch byte
	if ch, err = r.ReadByte(); err != nil {
		return false, err
	}
	switch ch {
	case '-':
		neg = true
	case '+':
		// nothing to do
	default:
		_ = r.UnreadByte()
	}
	return
}

// An ErrNaN panic is raised by an operation that has no numeric result, such
// as converting a NaN float or taking the square root of a negative number.
// An ErrNaN implements the error interface.
type ErrNaN struct {
	Msg string
}

func (err ErrNaN) Error() string {
	return err.Msg
}

func umax32(x, y uint32) uint32 {
	if x > y {
		return x
	}
	return y
}
