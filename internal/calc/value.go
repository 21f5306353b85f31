// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"github.com/db47h/bignum"
	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"
)

// Kind is the type of a Value.
type Kind uint8

const (
	KindInt Kind = iota
	KindReal
)

func (k Kind) String() string {
	if k == KindReal {
		return "real"
	}
	return "int"
}

// A Value is the result of an expression: an Int or a Real.
type Value struct {
	Kind Kind
	Int  bignum.Int
	Real bignum.Real
}

// IntValue returns an Int Value.
func IntValue(x bignum.Int) Value { return Value{Kind: KindInt, Int: x} }

// RealValue returns a Real Value.
func RealValue(x bignum.Real) Value { return Value{Kind: KindReal, Real: x} }

// String returns the decimal representation of v. Reals show at most their
// precision in fractional digits.
func (v Value) String() string {
	if v.Kind == KindReal {
		return v.Real.String()
	}
	return v.Int.String()
}

// Sign returns the sign of v.
func (v Value) Sign() int {
	if v.Kind == KindReal {
		return v.Real.Sign()
	}
	return v.Int.Sign()
}

// Equal reports whether v and w have the same kind and value.
func (v Value) Equal(w Value) bool {
	if v.Kind != w.Kind {
		return false
	}
	if v.Kind == KindReal {
		return v.Real.Equal(w.Real)
	}
	return v.Int.Equal(w.Int)
}

// toReal returns v as a Real with precision prec.
func (v Value) toReal(prec uint) bignum.Real {
	if v.Kind == KindReal {
		return v.Real.WithPrec(prec)
	}
	return bignum.RealFromInt(v.Int).WithPrec(prec)
}

// record is the stored form of a Value: its kind and gob encoding, packed
// with msgpack.
type record struct {
	Kind Kind   `codec:"k"`
	Data []byte `codec:"d"`
}

var mh codec.MsgpackHandle

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Value) MarshalBinary() ([]byte, error) {
	var (
		r   = record{Kind: v.Kind}
		err error
	)
	if v.Kind == KindReal {
		r.Data, err = v.Real.GobEncode()
	} else {
		r.Data, err = v.Int.GobEncode()
	}
	if err != nil {
		return nil, err
	}
	var buf []byte
	if err := codec.NewEncoderBytes(&buf, &mh).Encode(&r); err != nil {
		return nil, errors.Wrap(err, "encoding value")
	}
	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (v *Value) UnmarshalBinary(data []byte) error {
	var r record
	if err := codec.NewDecoderBytes(data, &mh).Decode(&r); err != nil {
		return errors.Wrap(err, "decoding value")
	}
	switch r.Kind {
	case KindInt:
		var x bignum.Int
		if err := x.GobDecode(r.Data); err != nil {
			return err
		}
		*v = IntValue(x)
	case KindReal:
		var x bignum.Real
		if err := x.GobDecode(r.Data); err != nil {
			return err
		}
		*v = RealValue(x)
	default:
		return errors.Errorf("decoding value: unknown kind %d", r.Kind)
	}
	return nil
}
