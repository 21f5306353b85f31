// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ints.

package bignum

import (
	"bytes"
	"database/sql/driver"
	"strconv"

	"github.com/pkg/errors"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const intGobVersion byte = 1

// bytes returns x packed two digits per byte, most significant first. An odd
// number of digits is padded with a leading zero nibble.
func (x dec) bytes() []byte {
	buf := make([]byte, (len(x)+1)/2)
	i := len(buf) - 1
	for j := len(x) - 1; j >= 0; j -= 2 {
		b := x[j]
		if j > 0 {
			b |= x[j-1] << 4
		}
		buf[i] = b
		i--
	}
	return buf
}

// setBytes interprets buf as packed digits, as produced by dec.bytes, and
// sets z to the normalized value.
func (z dec) setBytes(buf []byte) (dec, error) {
	z = z.make(len(buf) * 2)
	for i, b := range buf {
		hi, lo := b>>4, b&0x0f
		if hi > 9 || lo > 9 {
			return nil, errors.Errorf("invalid packed digit byte %#02x", b)
		}
		z[2*i], z[2*i+1] = hi, lo
	}
	return z.norm(), nil
}

// GobEncode implements the gob.GobEncoder interface.
func (x Int) GobEncode() ([]byte, error) {
	digits := x.mag().bytes()
	buf := make([]byte, 2, 2+len(digits))
	buf[0] = intGobVersion
	if x.neg {
		buf[1] = 1
	}
	return append(buf, digits...), nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Int{}
		return nil
	}
	if buf[0] != intGobVersion {
		return errors.Errorf("Int.GobDecode: encoding version %d not supported", buf[0])
	}
	if len(buf) < 2 {
		return errors.New("Int.GobDecode: buffer too small")
	}
	abs, err := dec(nil).setBytes(buf[2:])
	if err != nil {
		return errors.Wrap(err, "Int.GobDecode")
	}
	*z = makeInt(abs, buf[1]&1 != 0)
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x Int) MarshalText() (text []byte, err error) {
	return x.Append(nil), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Int) UnmarshalText(text []byte) error {
	x, err := ParseInt(string(text))
	if err != nil {
		return errors.Wrapf(err, "bignum: cannot unmarshal %q into a *bignum.Int", text)
	}
	*z = x
	return nil
}

// MarshalJSON implements the json.Marshaler interface. Ints are encoded as
// JSON numbers.
func (x Int) MarshalJSON() ([]byte, error) {
	return x.Append(nil), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts a JSON
// number or a string holding a number. The JSON null value is a no-op.
func (z *Int) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	return z.UnmarshalText(unquote(text))
}

// Value implements the driver.Valuer interface. Ints are stored as their
// decimal text.
func (x Int) Value() (driver.Value, error) {
	return x.String(), nil
}

// NullInt represents an Int that may be null. NullInt implements the
// sql.Scanner interface so it can be used as a scan destination.
type NullInt struct {
	Int   Int
	Valid bool // Valid is true if Int is not NULL
}

// Scan implements the sql.Scanner interface.
func (n *NullInt) Scan(value any) error {
	text, ok, err := sqlText(value)
	if err != nil || !ok {
		*n = NullInt{}
		return err
	}
	x, err := ParseInt(text)
	if err != nil {
		return err
	}
	*n = NullInt{Int: x, Valid: true}
	return nil
}

// Value implements the driver.Valuer interface.
func (n NullInt) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Int.Value()
}

func unquote(text []byte) []byte {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return text[1 : len(text)-1]
	}
	return text
}

// sqlText converts a database value to text. It returns false for NULL.
func sqlText(value any) (string, bool, error) {
	switch v := value.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, true, nil
	case []byte:
		return string(bytes.TrimSpace(v)), true, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	}
	return "", false, errors.Errorf("bignum: cannot scan %T", value)
}
