// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"runtime"

	"github.com/db47h/bignum/internal/calc"
	"github.com/spf13/cobra"
)

func newVarsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vars",
		Short: "List stored variables",
		Long: `List the variables of the store configured with --store or store.path, as
"name = value". Without a store, variables only live for the duration of a
single command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCalculator(func(c *calc.Calculator) error {
				for _, name := range c.Vars() {
					v, _ := c.Var(name)
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %s (%s)\n", name, v, v.Kind)
				}
				return nil
			})
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "rm NAME...",
		Short: "Delete stored variables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCalculator(func(c *calc.Calculator) error {
				for _, name := range args {
					if _, ok := c.Var(name); !ok {
						return fmt.Errorf("no variable %s", name)
					}
					if err := c.Delete(name); err != nil {
						return err
					}
					a.debugf("deleted %s", name)
				}
				return nil
			})
		},
	})
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "bignum version %s\n", Version)
			fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(w, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
