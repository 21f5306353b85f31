// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/db47h/bignum/internal/calc"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	var fixed bool
	cmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate expressions",
		Long: `Evaluate each argument in order and print its value. Assignments of the
form "name = expr" define variables usable by later expressions.

Built-in functions:
` + functionHelp(),
		Example: `  bignum eval '2147483647 * -2147483547'
  bignum eval --prec 50 'x = sqrt(2)' 'x * x'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCalculator(func(c *calc.Calculator) error {
				for _, expr := range args {
					v, err := c.Eval(expr)
					if err != nil {
						return fmt.Errorf("%s: %w", expr, err)
					}
					fmt.Fprintln(cmd.OutOrStdout(), format(v, fixed))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&fixed, "fixed", "f", false, "print reals with exactly prec fractional digits")
	return cmd
}

func newBatchCmd(a *app) *cobra.Command {
	var fixed bool
	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Evaluate independent expressions concurrently",
		Long: `Read expressions from FILE, or standard input if FILE is omitted or "-", one
per line, and evaluate them concurrently. Blank lines and lines starting with
'#' are ignored. Results are printed in input order as "expr = value";
failing expressions are reported on standard error and make the command
fail once all expressions have been evaluated.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			exprs, err := readExprs(in)
			if err != nil {
				return err
			}
			workers := a.cfg.WorkerCount()
			a.debugf("evaluating %d expressions with %d workers", len(exprs), workers)
			var results []calc.Result
			err = a.withCalculator(func(c *calc.Calculator) (err error) {
				results, err = c.EvalAll(cmd.Context(), exprs, workers)
				return err
			})
			if err != nil {
				return err
			}
			failed := 0
			for _, r := range results {
				if r.Err != nil {
					failed++
					a.log.Printf("%s: %v", r.Expr, r.Err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", r.Expr, format(r.Value, fixed))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&fixed, "fixed", "f", false, "print reals with exactly prec fractional digits")
	return cmd
}

func readExprs(r io.Reader) ([]string, error) {
	var exprs []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		exprs = append(exprs, line)
	}
	return exprs, s.Err()
}

func format(v calc.Value, fixed bool) string {
	if fixed && v.Kind == calc.KindReal {
		return v.Real.FixedString()
	}
	return v.String()
}

func functionHelp() string {
	var sb strings.Builder
	for _, f := range calc.Functions() {
		fmt.Fprintf(&sb, "  %-6s %s\n", f[0], f[1])
	}
	return sb.String()
}
