// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/db47h/bignum"
	"github.com/db47h/bignum/context"
	"github.com/spf13/cobra"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the arithmetic demonstration",
		Long: `Print the sum, difference, product, quotient, remainder and negation of
2147483647 and -2147483547 as integers, then of 2147483647.123456 and
-2147483547.123356 as reals at the configured precision.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			x, y := bignum.NewInt(2147483647), bignum.NewInt(-2147483547)
			for _, z := range []bignum.Int{x.Add(y), x.Sub(y), x.Mul(y), x.Quo(y), x.Rem(y), x.Neg()} {
				fmt.Fprintln(w, z)
			}
			fmt.Fprintln(w)

			ctx := context.New(a.cfg.Precision)
			fx, fy := ctx.NewFloat64(2147483647.123456), ctx.NewFloat64(-2147483547.123356)
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, z := range []bignum.Real{ctx.Add(fx, fy), ctx.Sub(fx, fy), ctx.Mul(fx, fy), ctx.Quo(fx, fy), ctx.Rem(fx, fy), ctx.Neg(fx)} {
				fmt.Fprintln(w, z)
			}
			return nil
		},
	}
}
