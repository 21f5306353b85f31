// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the bignum command-line tool.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/db47h/bignum/internal/calc"
	"github.com/db47h/bignum/internal/config"
	"github.com/db47h/bignum/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version of the tool.
const Version = "0.1.0"

// app holds the state shared by commands.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *log.Logger
}

// debugf logs when verbose output is enabled.
func (a *app) debugf(format string, args ...any) {
	if a.cfg != nil && a.cfg.Verbose {
		a.log.Printf(format, args...)
	}
}

// withCalculator opens the variable store, runs fn with a calculator
// configured from a.cfg and closes the store.
func (a *app) withCalculator(fn func(c *calc.Calculator) error) (err error) {
	kv, err := store.Open(a.cfg.Store.Path)
	if err != nil {
		return err
	}
	if a.cfg.Store.Path != "" {
		a.debugf("using variable store %s", a.cfg.Store.Path)
	}
	defer func() {
		if cerr := kv.Close(); err == nil {
			err = cerr
		}
	}()
	c, err := calc.New(a.cfg.Precision, calc.WithStore(kv), calc.WithCache(a.cfg.CacheSize))
	if err != nil {
		return err
	}
	defer func() {
		hits, misses := c.CacheStats()
		a.debugf("cache: %d hits, %d misses", hits, misses)
	}()
	return fn(c)
}

// newRootCmd returns the command tree. Output goes to out and diagnostics to
// errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: config.New()}
	rootCmd := &cobra.Command{
		Use:   "bignum",
		Short: "Arbitrary-precision decimal calculator",
		Long: `bignum evaluates arithmetic expressions on arbitrary-precision decimal
integers and reals. Integer literals are exact integers; literals with a
decimal point are reals computed with a fixed number of fractional digits
(the precision).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = log.New(cmd.ErrOrStderr(), "bignum: ", 0)
			cfg, err := config.Load(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.debugf("precision %d, cache size %d", cfg.Precision, cfg.CacheSize)
			return nil
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "configuration file path")
	pf.Uint("prec", 0, "fractional digits of real results (default from config, 25)")
	pf.BoolP("verbose", "v", false, "verbose logging")
	pf.String("store", "", "variable database path (default in-memory)")
	pf.Int("cache-size", 0, "number of cached results, 0 disables the cache (default from config, 256)")
	pf.Int("workers", 0, "concurrent batch evaluations (default from config, number of CPUs)")
	for key, flag := range map[string]string{
		"precision":  "prec",
		"verbose":    "verbose",
		"store.path": "store",
		"cache_size": "cache-size",
		"workers":    "workers",
	} {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		newEvalCmd(a),
		newBatchCmd(a),
		newDemoCmd(a),
		newVarsCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command-line tool. This is called by main.main().
func Execute() {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
