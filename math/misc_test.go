// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/db47h/bignum"
	"github.com/stretchr/testify/require"
)

func TestPow(t *testing.T) {
	for i, test := range []struct {
		x    int64
		n    uint
		want string
	}{
		{0, 0, "1"},
		{0, 5, "0"},
		{7, 1, "7"},
		{2, 10, "1024"},
		{2, 100, "1267650600228229401496703205376"},
		{-3, 3, "-27"},
		{-3, 4, "81"},
		{10, 30, "1000000000000000000000000000000"},
	} {
		if got := Pow(bignum.NewInt(test.x), test.n).String(); got != test.want {
			t.Errorf("#%d: Pow(%d, %d) = %s, want %s", i, test.x, test.n, got, test.want)
		}
	}
}

func TestPowReal(t *testing.T) {
	for i, test := range []struct {
		x    string
		n    uint
		want string
	}{
		{"1.5", 0, "1"},
		{"1.5", 3, "3.375"},
		{"-0.1", 2, "0.01"},
		{"-0.1", 3, "-0.001"},
		{"1.01", 10, "1.10462212541120451001"},
	} {
		x := bignum.RealFromString(test.x).WithPrec(40)
		z := PowReal(x, test.n)
		if got := z.String(); got != test.want {
			t.Errorf("#%d: PowReal(%s, %d) = %s, want %s", i, test.x, test.n, got, test.want)
		}
		if z.Prec() != 40 {
			t.Errorf("#%d: precision %d, want 40", i, z.Prec())
		}
	}
}

func TestFactorial(t *testing.T) {
	for _, test := range []struct {
		n    uint
		want string
	}{
		{0, "1"},
		{1, "1"},
		{5, "120"},
		{20, "2432902008176640000"},
		{25, "15511210043330985984000000"},
		{30, "265252859812191058636308480000000"},
	} {
		require.Equal(t, test.want, Factorial(test.n).String(), "%d!", test.n)
	}
}

func TestGCD(t *testing.T) {
	for _, test := range []struct {
		a, b, want int64
	}{
		{0, 0, 0},
		{0, 5, 5},
		{5, 0, 5},
		{12, -18, 6},
		{-12, -18, 6},
		{17, 5, 1},
	} {
		require.Equal(t, bignum.NewInt(test.want).String(), GCD(bignum.NewInt(test.a), bignum.NewInt(test.b)).String(), "gcd(%d, %d)", test.a, test.b)
	}

	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		a, b := new(big.Int).Rand(rnd, big.NewInt(1e15)), new(big.Int).Rand(rnd, big.NewInt(1e12))
		want := new(big.Int).GCD(nil, nil, a, b)
		got := GCD(bignum.IntFromBig(a), bignum.IntFromBig(b))
		require.Equal(t, want.String(), got.String(), "gcd(%s, %s)", a, b)
	}
}

func TestDigits(t *testing.T) {
	for _, test := range []struct{ n, want uint }{{0, 1}, {9, 1}, {10, 2}, {12345, 5}} {
		require.Equal(t, test.want, digits(test.n))
	}
}
