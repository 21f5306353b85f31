// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntZeroValue(t *testing.T) {
	// zero (uninitialized) value is a ready-to-use 0
	var x Int
	if s := x.String(); s != "0" {
		t.Errorf("zero value = %s; want 0", s)
	}
	if x.Sign() != 0 || !x.IsZero() || x.Digits() != 1 {
		t.Errorf("zero value: sign %d, digits %d", x.Sign(), x.Digits())
	}

	// zero value can be used in any and all positions of binary operations
	make := func(x int) Int {
		if x == 0 {
			return Int{}
		}
		return NewInt(int64(x))
	}
	for _, test := range []struct {
		x, y, want int
		opname     rune
		op         func(x, y Int) Int
	}{
		{0, 0, 0, '+', Int.Add},
		{1, 0, 1, '+', Int.Add},
		{0, 2, 2, '+', Int.Add},
		{0, 0, 0, '-', Int.Sub},
		{0, 1, -1, '-', Int.Sub},
		{2, 0, 2, '-', Int.Sub},
		{0, 0, 0, '*', Int.Mul},
		{2, 0, 0, '*', Int.Mul},
		{0, 0, 0, '/', Int.Quo},
		{2, 0, 0, '/', Int.Quo},
		{0, 2, 0, '/', Int.Quo},
		{0, 0, 0, '%', Int.Rem},
		{2, 0, 0, '%', Int.Rem},
	} {
		z := test.op(make(test.x), make(test.y))
		got, _ := z.Int64()
		if got != int64(test.want) {
			t.Errorf("%d %c %d = %d; want %d", test.x, test.opname, test.y, got, test.want)
		}
	}
}

var intArithTests = []struct {
	x, y                  string
	sum, diff, prod, q, r string
}{
	{"2147483647", "-2147483547", "100", "4294967194", "-4611685799384055909", "-1", "100"},
	{"7", "2", "9", "5", "14", "3", "1"},
	{"-7", "2", "-5", "-9", "-14", "-3", "-1"},
	{"7", "-2", "5", "9", "-14", "-3", "1"},
	{"-7", "-2", "-9", "-5", "14", "3", "-1"},
	{"7", "0", "7", "7", "0", "0", "0"},
	{"0", "7", "7", "-7", "0", "0", "0"},
	{"5", "-5", "0", "10", "-25", "-1", "0"},
	{"-5", "5", "0", "-10", "-25", "-1", "0"},
	{"1", "100", "101", "-99", "100", "0", "1"},
	{"-1", "100", "99", "-101", "-100", "0", "-1"},
	{
		"123456789012345678901234567890", "987654321",
		"123456789012345678902222222211", "123456789012345678900246913569",
		"121932631124828532112482853211126352690", "124999998873437499901", "574845669",
	},
}

func TestIntArith(t *testing.T) {
	for i, test := range intArithTests {
		x, y := IntFromString(test.x), IntFromString(test.y)
		for _, op := range []struct {
			name string
			got  Int
			want string
		}{
			{"+", x.Add(y), test.sum},
			{"-", x.Sub(y), test.diff},
			{"*", x.Mul(y), test.prod},
			{"/", x.Quo(y), test.q},
			{"%", x.Rem(y), test.r},
		} {
			if s := op.got.String(); s != op.want {
				t.Errorf("#%d %s %s %s = %s; want %s", i, test.x, op.name, test.y, s, op.want)
			}
		}
		q, r := x.QuoRem(y)
		if q.String() != test.q || r.String() != test.r {
			t.Errorf("#%d QuoRem(%s, %s) = %s, %s; want %s, %s", i, test.x, test.y, q, r, test.q, test.r)
		}
	}
}

func TestIntNoNegativeZero(t *testing.T) {
	for i, z := range []Int{
		NewInt(5).Sub(NewInt(5)),
		NewInt(-5).Add(NewInt(5)),
		NewInt(-5).Mul(Int{}),
		NewInt(-1).Quo(NewInt(2)),
		NewInt(-4).Rem(NewInt(2)),
		Int{}.Neg(),
		IntFromString("-0"),
		IntFromString("-000"),
	} {
		if z.Sign() != 0 || z.String() != "0" {
			t.Errorf("#%d got %s (sign %d); want 0", i, z, z.Sign())
		}
	}
}

func TestIntCmp(t *testing.T) {
	for i, test := range []struct {
		x, y string
		cmp  int
		abs  int
	}{
		{"0", "0", 0, 0},
		{"0", "-0", 0, 0},
		{"1", "0", 1, 1},
		{"-1", "0", -1, 1},
		{"-1", "1", -1, 0},
		{"1", "-1", 1, 0},
		{"-2", "-1", -1, 1},
		{"-10", "-9", -1, 1},
		{"10", "9", 1, 1},
		{"900", "899", 1, 1},
		{"109", "110", -1, -1},
		{"-109", "-110", 1, -1},
		{"2147483647", "2147483547", 1, 1},
		{"123456789", "123456789", 0, 0},
	} {
		x, y := IntFromString(test.x), IntFromString(test.y)
		if c := x.Cmp(y); c != test.cmp {
			t.Errorf("#%d %s cmp %s = %d; want %d", i, test.x, test.y, c, test.cmp)
		}
		if c := y.Cmp(x); c != -test.cmp {
			t.Errorf("#%d %s cmp %s = %d; want %d", i, test.y, test.x, c, -test.cmp)
		}
		if c := x.CmpAbs(y); c != test.abs {
			t.Errorf("#%d %s cmpAbs %s = %d; want %d", i, test.x, test.y, c, test.abs)
		}
		if eq := x.Equal(y); eq != (test.cmp == 0) {
			t.Errorf("#%d %s equal %s = %v", i, test.x, test.y, eq)
		}
	}
}

func TestIntIncDec(t *testing.T) {
	for i, test := range []struct {
		x, inc, dec string
	}{
		{"0", "1", "-1"},
		{"-1", "0", "-2"},
		{"1", "2", "0"},
		{"99", "100", "98"},
		{"-100", "-99", "-101"},
	} {
		x := IntFromString(test.x)
		if s := x.Inc().String(); s != test.inc {
			t.Errorf("#%d %s.Inc() = %s; want %s", i, test.x, s, test.inc)
		}
		if s := x.Dec().String(); s != test.dec {
			t.Errorf("#%d %s.Dec() = %s; want %s", i, test.x, s, test.dec)
		}
	}
}

func TestIntOf(t *testing.T) {
	type myInt int16
	for i, test := range []struct {
		got  Int
		want string
	}{
		{IntOf(int8(math.MinInt8)), "-128"},
		{IntOf(int16(math.MinInt16)), "-32768"},
		{IntOf(int32(math.MinInt32)), "-2147483648"},
		{IntOf(int64(math.MinInt64)), "-9223372036854775808"},
		{IntOf(uint8(math.MaxUint8)), "255"},
		{IntOf(uint64(math.MaxUint64)), "18446744073709551615"},
		{IntOf(myInt(-42)), "-42"},
		{NewInt(0), "0"},
		{NewUint(7), "7"},
	} {
		if s := test.got.String(); s != test.want {
			t.Errorf("#%d got %s; want %s", i, s, test.want)
		}
	}
}

func TestIntInt64(t *testing.T) {
	for i, test := range []struct {
		x   string
		i   int64
		acc Accuracy
	}{
		{"0", 0, Exact},
		{"-9223372036854775808", math.MinInt64, Exact},
		{"9223372036854775807", math.MaxInt64, Exact},
		{"-9223372036854775809", math.MinInt64, Above},
		{"9223372036854775808", math.MaxInt64, Below},
		{"100000000000000000000000", math.MaxInt64, Below},
		{"-100000000000000000000000", math.MinInt64, Above},
	} {
		i64, acc := IntFromString(test.x).Int64()
		if i64 != test.i || acc != test.acc {
			t.Errorf("#%d %s.Int64() = %d, %s; want %d, %s", i, test.x, i64, acc, test.i, test.acc)
		}
	}
	for i, test := range []struct {
		x   string
		u   uint64
		acc Accuracy
	}{
		{"0", 0, Exact},
		{"-1", 0, Above},
		{"18446744073709551615", math.MaxUint64, Exact},
		{"18446744073709551616", math.MaxUint64, Below},
	} {
		u, acc := IntFromString(test.x).Uint64()
		if u != test.u || acc != test.acc {
			t.Errorf("#%d %s.Uint64() = %d, %s; want %d, %s", i, test.x, u, acc, test.u, test.acc)
		}
	}
	if v, acc := NewInt(1 << 40).Int32(); v != math.MaxInt32 || acc != Below {
		t.Errorf("Int32 overflow = %d, %s", v, acc)
	}
	if v, acc := NewInt(-1 << 40).Int32(); v != math.MinInt32 || acc != Above {
		t.Errorf("Int32 underflow = %d, %s", v, acc)
	}
	if v, acc := NewInt(1 << 40).Uint32(); v != math.MaxUint32 || acc != Below {
		t.Errorf("Uint32 overflow = %d, %s", v, acc)
	}
}

func TestIntBig(t *testing.T) {
	s := "-123456789012345678901234567890"
	b, _ := new(big.Int).SetString(s, 10)
	if x := IntFromBig(b); x.String() != s {
		t.Errorf("IntFromBig = %s; want %s", x, s)
	}
	if b2 := IntFromString(s).Big(); b2.Cmp(b) != 0 {
		t.Errorf("Big() = %s; want %s", b2, s)
	}
	if x := IntFromBig(nil); !x.IsZero() {
		t.Errorf("IntFromBig(nil) = %s", x)
	}
}

// TestIntProperties checks algebraic properties against math/big on random
// operands.
func TestIntProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	rndInt := func() (Int, *big.Int) {
		s := rndDec(1 + rnd.Intn(30)).String()
		if rnd.Intn(2) == 0 {
			s = "-" + s
		}
		b, _ := new(big.Int).SetString(s, 10)
		return IntFromString(s), b
	}
	for i := 0; i < 300; i++ {
		a, ab := rndInt()
		b, bb := rndInt()

		require.True(t, a.Add(b).Sub(b).Equal(a), "(%s + %s) - %s", a, b, b)
		require.True(t, a.Add(b).Equal(b.Add(a)), "%s + %s commutes", a, b)
		require.True(t, a.Mul(b).Equal(b.Mul(a)), "%s * %s commutes", a, b)
		require.Equal(t, ab.Cmp(bb), a.Cmp(b), "%s cmp %s", a, b)
		require.Equal(t, new(big.Int).Mul(ab, bb).String(), a.Mul(b).String())

		if bb.Sign() != 0 {
			q, r := new(big.Int).QuoRem(ab, bb, new(big.Int))
			require.Equal(t, q.String(), a.Quo(b).String(), "%s / %s", a, b)
			require.Equal(t, r.String(), a.Rem(b).String(), "%s %% %s", a, b)
		}

		// exactly one of <, ==, > holds
		lt, eq, gt := a.Cmp(b) < 0, a.Equal(b), a.Cmp(b) > 0
		n := 0
		for _, v := range []bool{lt, eq, gt} {
			if v {
				n++
			}
		}
		require.Equal(t, 1, n, "trichotomy for %s, %s", a, b)

		// string round trip
		p, err := ParseInt(a.String())
		require.NoError(t, err)
		require.True(t, p.Equal(a))
	}
}

func TestParseInt(t *testing.T) {
	for i, test := range []struct {
		s    string
		want string
		ok   bool
	}{
		{"0", "0", true},
		{"+12", "12", true},
		{"-12", "-12", true},
		{"007", "7", true},
		{"-0", "0", true},
		{"", "", false},
		{"-", "", false},
		{"+", "", false},
		{"12a", "", false},
		{"1.5", "", false},
		{" 1", "", false},
		{"--1", "", false},
	} {
		x, err := ParseInt(test.s)
		if ok := err == nil; ok != test.ok {
			t.Errorf("#%d ParseInt(%q) error = %v", i, test.s, err)
			continue
		}
		if err != nil {
			require.ErrorIs(t, err, ErrSyntax)
			continue
		}
		if x.String() != test.want {
			t.Errorf("#%d ParseInt(%q) = %s; want %s", i, test.s, x, test.want)
		}
	}
}

func TestIntFromString(t *testing.T) {
	for i, test := range []struct {
		s, want string
	}{
		{"", "0"},
		{"abc", "0"},
		{"-", "0"},
		{"42abc", "42"},
		{"-42.9", "-42"},
		{"+0017", "17"},
		{"- 5", "0"},
	} {
		if s := IntFromString(test.s).String(); s != test.want {
			t.Errorf("#%d IntFromString(%q) = %s; want %s", i, test.s, s, test.want)
		}
	}
}

func TestIntFormat(t *testing.T) {
	for i, test := range []struct {
		format string
		x      int64
		want   string
	}{
		{"%v", -12, "-12"},
		{"%d", 12, "12"},
		{"%s", 0, "0"},
		{"%+d", 12, "+12"},
		{"% d", 12, " 12"},
		{"%+d", -12, "-12"},
		{"%6d", -12, "   -12"},
		{"%-6d|", 12, "12    |"},
		{"%06d", -12, "-00012"},
		{"%x", 12, "%!x(bignum.Int=12)"},
	} {
		if s := fmt.Sprintf(test.format, NewInt(test.x)); s != test.want {
			t.Errorf("#%d Sprintf(%q, %d) = %q; want %q", i, test.format, test.x, s, test.want)
		}
	}
}

func TestIntScan(t *testing.T) {
	var a, b, c Int
	n, err := fmt.Sscan("  -2147483547\n42 x7", &a, &b, &c)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "-2147483547", a.String())
	require.Equal(t, "42", b.String())
	require.Equal(t, "0", c.String())

	for _, in := range []string{"", "   ", "\n\t"} {
		a = NewInt(5)
		_, err = fmt.Sscan(in, &a)
		require.Error(t, err, "%q", in)
		require.True(t, a.IsZero(), "%q left %s", in, a)
	}
}
