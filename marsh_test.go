// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

var encodingTests = []string{
	"0",
	"-0",
	"1",
	"-1",
	"2147483647",
	"-2147483547",
	"1234567890123456789012345678901234567890",
	"-1234567890123456789012345678901234567890",
}

var realEncodingTests = []string{
	"0",
	"1.5",
	"-0.001",
	"100.0001",
	"-2147483547.123356",
	"0.0000000000000000000000000000000000001",
	"123456789012345678901234567890.098765432109876543210987654321",
}

func TestIntGobEncoding(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for _, test := range encodingTests {
		medium.Reset() // empty buffer for each test case (in case of failures)
		x := IntFromString(test)
		if err := enc.Encode(x); err != nil {
			t.Errorf("encoding of %s failed: %s", test, err)
			continue
		}
		var y Int
		if err := dec.Decode(&y); err != nil {
			t.Errorf("decoding of %s failed: %s", test, err)
			continue
		}
		if !y.Equal(x) {
			t.Errorf("transmission of %s failed: got %s want %s", test, y, x)
		}
	}
}

func TestRealGobEncoding(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for _, test := range realEncodingTests {
		for _, prec := range []uint{0, 3, DefaultPrecision, 100} {
			medium.Reset()
			x := RealFromString(test).WithPrec(prec)
			if err := enc.Encode(x); err != nil {
				t.Errorf("encoding of %s failed: %s", test, err)
				continue
			}
			var y Real
			if err := dec.Decode(&y); err != nil {
				t.Errorf("decoding of %s failed: %s", test, err)
				continue
			}
			if !y.Equal(x) || y.Prec() != prec {
				t.Errorf("transmission of %s (prec %d) failed: got %s (prec %d)", test, prec, y.text(), y.Prec())
			}
		}
	}
}

func TestGobDecodeErrors(t *testing.T) {
	var x Int
	require.Error(t, x.GobDecode([]byte{2, 0}))
	require.Error(t, x.GobDecode([]byte{intGobVersion}))
	require.Error(t, x.GobDecode([]byte{intGobVersion, 0, 0xf1}))
	require.NoError(t, x.GobDecode(nil))
	require.True(t, x.IsZero())

	var r Real
	require.Error(t, r.GobDecode([]byte{2}))
	require.Error(t, r.GobDecode([]byte{realGobVersion, 0, 0}))
	buf, err := RealFromString("1.25").GobEncode()
	require.NoError(t, err)
	require.Error(t, r.GobDecode(buf[:len(buf)-1]))

	// length fields near the uint32 limit
	for _, n := range [][2]uint32{{0xffffffff, 0}, {0, 0xffffffff}, {0xfffffffe, 1}, {0x80000000, 0x80000000}} {
		b := make([]byte, 15)
		b[0] = realGobVersion
		binary.BigEndian.PutUint32(b[6:], n[0])
		binary.BigEndian.PutUint32(b[10:], n[1])
		require.Error(t, r.GobDecode(b), "nf=%#x nw=%#x", n[0], n[1])
	}
	_, err = unpackFrac([]byte{0x12}, 3)
	require.Error(t, err)
}

func TestIntJSONEncoding(t *testing.T) {
	for _, test := range encodingTests {
		x := IntFromString(test)
		b, err := json.Marshal(x)
		require.NoError(t, err)
		require.Equal(t, x.String(), string(b))
		var y Int
		require.NoError(t, json.Unmarshal(b, &y))
		require.True(t, y.Equal(x), "%s round trips to %s", x, y)
	}

	var v struct {
		A, B Int
		C    *Int
	}
	require.NoError(t, json.Unmarshal([]byte(`{"A": "-42", "B": 7, "C": null}`), &v))
	require.Equal(t, "-42", v.A.String())
	require.Equal(t, "7", v.B.String())
	require.Nil(t, v.C)
	require.Error(t, json.Unmarshal([]byte(`{"A": 1.5}`), &v))
}

func TestRealJSONEncoding(t *testing.T) {
	for _, test := range realEncodingTests {
		x := RealFromString(test).WithPrec(2)
		b, err := json.Marshal(x)
		require.NoError(t, err)
		var y Real
		require.NoError(t, json.Unmarshal(b, &y))
		require.True(t, y.Equal(x), "%s round trips to %s", b, y.text())
		require.Equal(t, uint(DefaultPrecision), y.Prec())
	}
	var v struct{ X Real }
	v.X = v.X.WithPrec(4)
	require.NoError(t, json.Unmarshal([]byte(`{"X": "10.125"}`), &v))
	require.Equal(t, "10.125", v.X.String())
	require.Equal(t, uint(4), v.X.Prec())
	require.Error(t, json.Unmarshal([]byte(`{"X": 1e3}`), &v))
}

func TestTextMarshalling(t *testing.T) {
	x := RealFromString("-2147483547.123356").WithPrec(2)
	text, err := x.MarshalText()
	require.NoError(t, err)
	// full precision regardless of x.Prec()
	require.Equal(t, "-2147483547.123356", string(text))

	var y Real
	require.NoError(t, y.UnmarshalText(text))
	require.True(t, y.Equal(x))

	err = y.UnmarshalText([]byte("12x"))
	require.ErrorIs(t, err, ErrSyntax)

	var i Int
	require.ErrorIs(t, i.UnmarshalText([]byte("")), ErrSyntax)
	require.NoError(t, i.UnmarshalText([]byte("-12")))
	require.Equal(t, "-12", i.String())
}

func TestSQL(t *testing.T) {
	v, err := IntFromString("-42").Value()
	require.NoError(t, err)
	require.Equal(t, "-42", v)

	v, err = RealFromString("1.125").WithPrec(1).Value()
	require.NoError(t, err)
	require.Equal(t, "1.125", v)

	var ni NullInt
	for _, src := range []any{"12", []byte(" 12 "), int64(12)} {
		require.NoError(t, ni.Scan(src))
		require.True(t, ni.Valid)
		require.Equal(t, "12", ni.Int.String())
	}
	require.NoError(t, ni.Scan(nil))
	require.False(t, ni.Valid)
	v, err = ni.Value()
	require.NoError(t, err)
	require.Nil(t, v)
	require.Error(t, ni.Scan(true))
	require.Error(t, ni.Scan("1.5"))

	var nr NullReal
	for _, src := range []any{"2.5", []byte("2.5"), 2.5} {
		require.NoError(t, nr.Scan(src))
		require.True(t, nr.Valid)
		require.Equal(t, "2.5", nr.Real.String())
	}
	require.NoError(t, nr.Scan(int64(-3)))
	require.Equal(t, "-3", nr.Real.String())
	require.NoError(t, nr.Scan(nil))
	require.False(t, nr.Valid)
}
