// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Reals.

package bignum

import (
	"database/sql/driver"
	"encoding/binary"

	"github.com/pkg/errors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const realGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
// The Real value and its precision are marshaled.
//
// The layout is: version, sign, precision (4 bytes), number of fractional
// digits (4 bytes), packed integer part length (4 bytes), packed integer part,
// packed fractional part.
func (x Real) GobEncode() ([]byte, error) {
	w, f := x.w().bytes(), x.f().bytes()
	buf := make([]byte, 14, 14+len(w)+len(f))
	buf[0] = realGobVersion
	if x.neg {
		buf[1] = 1
	}
	binary.BigEndian.PutUint32(buf[2:], x.prec)
	binary.BigEndian.PutUint32(buf[6:], uint32(len(x.f())))
	binary.BigEndian.PutUint32(buf[10:], uint32(len(w)))
	buf = append(buf, w...)
	return append(buf, f...), nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Real) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Real{}
		return nil
	}
	if buf[0] != realGobVersion {
		return errors.Errorf("Real.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 14 {
		return errors.New("Real.GobDecode: buffer too small")
	}
	prec := binary.BigEndian.Uint32(buf[2:])
	// lengths are checked as uint64 so that they cannot wrap on 32 bit
	// platforms
	nf := uint64(binary.BigEndian.Uint32(buf[6:]))
	nw := uint64(binary.BigEndian.Uint32(buf[10:]))
	buf, neg := buf[14:], buf[1]&1 != 0
	if nw > uint64(len(buf)) || (nf+1)/2 != uint64(len(buf))-nw {
		return errors.New("Real.GobDecode: inconsistent lengths")
	}
	whole, err := dec(nil).setBytes(buf[:nw])
	if err != nil {
		return errors.Wrap(err, "Real.GobDecode")
	}
	frac, err := unpackFrac(buf[nw:], int(nf))
	if err != nil {
		return errors.Wrap(err, "Real.GobDecode")
	}
	*z = makeReal(whole, frac, prec, neg)
	return nil
}

// unpackFrac unpacks the n least significant packed digits of buf, keeping
// leading zeros.
func unpackFrac(buf []byte, n int) (dec, error) {
	d := make(dec, 0, len(buf)*2)
	for _, b := range buf {
		hi, lo := b>>4, b&0x0f
		if hi > 9 || lo > 9 {
			return nil, errors.Errorf("invalid packed digit byte %#02x", b)
		}
		d = append(d, hi, lo)
	}
	if n < 0 || n > len(d) {
		return nil, errors.Errorf("invalid fraction length %d", n)
	}
	return d[len(d)-n:], nil
}

// MarshalText implements the encoding.TextMarshaler interface.
// Only the Real value is marshaled (in full precision), other attributes
// such as precision are ignored.
func (x Real) MarshalText() (text []byte, err error) {
	return x.text(), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// The precision of z is kept, unless it is 0, in which case it becomes
// DefaultPrecision.
func (z *Real) UnmarshalText(text []byte) error {
	x, err := ParseReal(string(text))
	if err != nil {
		return errors.Wrapf(err, "bignum: cannot unmarshal %q into a *bignum.Real", text)
	}
	if z.prec != 0 {
		x.prec = z.prec
	}
	*z = x
	return nil
}

// MarshalJSON implements the json.Marshaler interface. Reals are encoded as
// JSON numbers with all their stored digits.
func (x Real) MarshalJSON() ([]byte, error) {
	return x.text(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts a JSON
// number without exponent or a string holding a number. The JSON null value
// is a no-op.
func (z *Real) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	return z.UnmarshalText(unquote(text))
}

// Value implements the driver.Valuer interface. Reals are stored as their
// decimal text, with all stored digits.
func (x Real) Value() (driver.Value, error) {
	return string(x.text()), nil
}

// NullReal represents a Real that may be null. NullReal implements the
// sql.Scanner interface so it can be used as a scan destination.
type NullReal struct {
	Real  Real
	Valid bool // Valid is true if Real is not NULL
}

// Scan implements the sql.Scanner interface.
func (n *NullReal) Scan(value any) error {
	text, ok, err := sqlText(value)
	if err != nil || !ok {
		*n = NullReal{}
		return err
	}
	x, err := ParseReal(text)
	if err != nil {
		return err
	}
	*n = NullReal{Real: x, Valid: true}
	return nil
}

// Value implements the driver.Valuer interface.
func (n NullReal) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Real.Value()
}
