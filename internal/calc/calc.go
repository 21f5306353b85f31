// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calc implements a small expression language over bignum Ints and
// Reals.
//
// Integer literals evaluate to Ints and literals with a decimal point to
// Reals. Operations on two Ints yield an Int, with truncated division;
// operations involving a Real promote the other operand and yield a Real at
// the calculator precision. Division and remainder by zero yield 0.
//
// Operators by increasing priority are + and -, then *, / and %, then unary
// + and -, then ^ (right associative, non-negative integer exponent).
// Statements of the form "name = expr" assign variables. See Functions for
// the built-in functions.
package calc

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/db47h/bignum"
	"github.com/db47h/bignum/internal/store"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// varPrefix is the key prefix of variables in the store.
const varPrefix = "var/"

// A Calculator evaluates expressions at a fixed precision. It is safe for
// concurrent use.
type Calculator struct {
	prec  uint
	kv    store.KV
	cache *lru.Cache[string, Value]

	mu   sync.RWMutex
	vars map[string]Value

	hits, misses atomic.Uint64
}

// An Option configures a Calculator.
type Option func(*Calculator) error

// WithStore persists variables in kv. Variables already present in kv are
// loaded by New.
func WithStore(kv store.KV) Option {
	return func(c *Calculator) error {
		c.kv = kv
		return nil
	}
}

// WithCache keeps the values of up to size variable-free expressions. A size
// of 0 disables caching.
func WithCache(size int) Option {
	return func(c *Calculator) error {
		if size <= 0 {
			c.cache = nil
			return nil
		}
		cache, err := lru.New[string, Value](size)
		if err != nil {
			return errors.Wrap(err, "creating cache")
		}
		c.cache = cache
		return nil
	}
}

// New returns a Calculator producing Reals with prec fractional digits.
func New(prec uint, opts ...Option) (*Calculator, error) {
	c := &Calculator{prec: prec, vars: make(map[string]Value)}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.kv != nil {
		if err := c.load(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// load reads all variables from the store.
func (c *Calculator) load() error {
	keys, err := c.kv.Keys()
	if err != nil {
		return errors.Wrap(err, "loading variables")
	}
	for _, k := range keys {
		name, ok := strings.CutPrefix(k, varPrefix)
		if !ok {
			continue
		}
		data, err := c.kv.Get(k)
		if err != nil {
			return errors.Wrapf(err, "loading variable %s", name)
		}
		var v Value
		if err := v.UnmarshalBinary(data); err != nil {
			return errors.Wrapf(err, "loading variable %s", name)
		}
		c.vars[name] = v
	}
	return nil
}

// Prec returns the precision of c.
func (c *Calculator) Prec() uint { return c.prec }

// Eval evaluates a statement.
func (c *Calculator) Eval(src string) (v Value, err error) {
	n, err := parse(src)
	if err != nil {
		return Value{}, err
	}
	var key string
	if c.cache != nil && n.pure() {
		key = fmt.Sprintf("%d|%s", c.prec, n)
		if v, ok := c.cache.Get(key); ok {
			c.hits.Add(1)
			return v, nil
		}
		c.misses.Add(1)
	}

	defer func() {
		if r := recover(); r != nil {
			nan, ok := r.(bignum.ErrNaN)
			if !ok {
				panic(r)
			}
			v, err = Value{}, errors.Wrapf(nan, "evaluating %s", src)
		}
	}()
	v, err = c.eval(n)
	if err == nil && key != "" {
		c.cache.Add(key, v)
	}
	return v, err
}

// CacheStats returns the number of cache hits and misses.
func (c *Calculator) CacheStats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Var returns the value of the named variable.
func (c *Calculator) Var(name string) (Value, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.vars[name]
	return v, ok
}

// Vars returns the names of all variables in ascending order.
func (c *Calculator) Vars() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.vars))
	for k := range c.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Set assigns v to the named variable and persists it.
func (c *Calculator) Set(name string, v Value) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		data, err := v.MarshalBinary()
		if err != nil {
			return err
		}
		if err := c.kv.Put(varPrefix+name, data); err != nil {
			return errors.Wrapf(err, "storing variable %s", name)
		}
	}
	c.vars[name] = v
	return nil
}

// Delete removes the named variable.
func (c *Calculator) Delete(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		if err := c.kv.Delete(varPrefix + name); err != nil {
			return errors.Wrapf(err, "deleting variable %s", name)
		}
	}
	delete(c.vars, name)
	return nil
}

// A Result is the outcome of evaluating one expression of a batch.
type Result struct {
	Expr  string
	Value Value
	Err   error
}

// EvalAll evaluates exprs concurrently with at most workers goroutines, or
// without limit if workers <= 0. Results are returned in input order;
// evaluation errors are reported per Result and do not stop the batch.
// Statements of a batch are independent: the order in which assignments
// take effect is unspecified.
//
// The returned error is non-nil only if ctx is done before all expressions
// are evaluated.
func (c *Calculator) EvalAll(ctx context.Context, exprs []string, workers int) ([]Result, error) {
	results := make([]Result, len(exprs))
	g, gCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, e := range exprs {
		i, e := i, e
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			v, err := c.Eval(e)
			results[i] = Result{Expr: e, Value: v, Err: err}
			return nil
		})
	}
	return results, g.Wait()
}
