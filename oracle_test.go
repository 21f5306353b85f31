// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file checks Int and Real operations against an independent decimal
// implementation, github.com/cockroachdb/apd.

package bignum

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"
)

// oracle is a high precision apd context that truncates, so that quotients
// can be compared digit for digit.
func oracle() *apd.Context {
	ctx := apd.BaseContext.WithPrecision(200)
	ctx.Rounding = apd.RoundDown
	return ctx
}

func toApd(t *testing.T, text []byte) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(string(text))
	require.NoError(t, err)
	return d
}

func requireSame(t *testing.T, want *apd.Decimal, got []byte, format string, args ...any) {
	t.Helper()
	g := toApd(t, got)
	if want.Cmp(g) != 0 {
		args = append(args, want.Text('f'), got)
		t.Fatalf(format+": want %s, got %s", args...)
	}
}

func TestIntOracle(t *testing.T) {
	ctx := oracle()
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		x, y := rndInt(rnd), rndInt(rnd)
		a, b := toApd(t, x.Append(nil)), toApd(t, y.Append(nil))
		var z apd.Decimal

		_, err := ctx.Add(&z, a, b)
		require.NoError(t, err)
		requireSame(t, &z, x.Add(y).Append(nil), "%s + %s", x, y)

		_, err = ctx.Sub(&z, a, b)
		require.NoError(t, err)
		requireSame(t, &z, x.Sub(y).Append(nil), "%s - %s", x, y)

		_, err = ctx.Mul(&z, a, b)
		require.NoError(t, err)
		requireSame(t, &z, x.Mul(y).Append(nil), "%s * %s", x, y)

		if y.IsZero() {
			continue
		}
		_, err = ctx.QuoInteger(&z, a, b)
		require.NoError(t, err)
		requireSame(t, &z, x.Quo(y).Append(nil), "%s / %s", x, y)

		_, err = ctx.Rem(&z, a, b)
		require.NoError(t, err)
		requireSame(t, &z, x.Rem(y).Append(nil), "%s %% %s", x, y)
	}
}

func TestRealOracle(t *testing.T) {
	ctx := oracle()
	rnd := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		x, y := rndReal(rnd), rndReal(rnd)
		a, b := toApd(t, x.text()), toApd(t, y.text())
		var z apd.Decimal

		_, err := ctx.Add(&z, a, b)
		require.NoError(t, err)
		requireSame(t, &z, x.Add(y).text(), "%s + %s", x.text(), y.text())

		_, err = ctx.Sub(&z, a, b)
		require.NoError(t, err)
		requireSame(t, &z, x.Sub(y).text(), "%s - %s", x.text(), y.text())

		_, err = ctx.Mul(&z, a, b)
		require.NoError(t, err)
		requireSame(t, &z, x.Mul(y).text(), "%s * %s", x.text(), y.text())

		if y.IsZero() {
			continue
		}
		prec := uint(rnd.Intn(40))
		_, err = ctx.Quo(&z, a, b)
		require.NoError(t, err)
		_, err = ctx.Quantize(&z, &z, -int32(prec))
		require.NoError(t, err)
		requireSame(t, &z, x.QuoPrec(y, prec).text(), "%s / %s (prec %d)", x.text(), y.text(), prec)

		_, err = ctx.Rem(&z, a, b)
		require.NoError(t, err)
		requireSame(t, &z, x.RemExact(y).text(), "%s %% %s", x.text(), y.text())
	}
}

func rndInt(rnd *rand.Rand) Int {
	x := makeInt(rndDec(1+rnd.Intn(30)), rnd.Intn(2) == 0)
	if rnd.Intn(10) == 0 {
		return x.Rem(NewInt(10))
	}
	return x
}
