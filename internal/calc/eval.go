// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"sort"

	"github.com/db47h/bignum"
	"github.com/db47h/bignum/math"
	"github.com/pkg/errors"
)

// ErrUndefined is returned when an expression references an unknown variable
// or function.
var ErrUndefined = errors.New("undefined")

type function struct {
	nargs int
	help  string
	fn    func(c *Calculator, args []Value) (Value, error)
}

var functions = map[string]function{
	"abs":   {1, "absolute value", fnAbs},
	"sqrt":  {1, "square root", fnSqrt},
	"exp":   {1, "exponential", fnExp},
	"ln":    {1, "natural logarithm", fnLn},
	"pow":   {2, "pow(x, n) = x^n", fnPow},
	"fact":  {1, "factorial", fnFact},
	"gcd":   {2, "greatest common divisor", fnGCD},
	"trunc": {1, "integer part", fnTrunc},
	"pi":    {0, "π", fnPi},
}

// Functions returns the names of the built-in functions with a short
// description.
func Functions() [][2]string {
	names := make([]string, 0, len(functions))
	for k := range functions {
		names = append(names, k)
	}
	sort.Strings(names)
	r := make([][2]string, len(names))
	for i, n := range names {
		r[i] = [2]string{n, functions[n].help}
	}
	return r
}

func (c *Calculator) eval(n node) (Value, error) {
	switch n := n.(type) {
	case *numLit:
		if n.isReal {
			x, err := bignum.ParseReal(n.text)
			return RealValue(x.WithPrec(c.prec)), err
		}
		x, err := bignum.ParseInt(n.text)
		return IntValue(x), err
	case *varRef:
		v, ok := c.Var(n.name)
		if !ok {
			return Value{}, errors.Wrapf(ErrUndefined, "variable %s", n.name)
		}
		return v, nil
	case *assignExpr:
		v, err := c.eval(n.x)
		if err != nil {
			return Value{}, err
		}
		return v, c.Set(n.name, v)
	case *unaryExpr:
		v, err := c.eval(n.x)
		if err != nil || n.op == '+' {
			return v, err
		}
		if v.Kind == KindReal {
			return RealValue(v.Real.Neg()), nil
		}
		return IntValue(v.Int.Neg()), nil
	case *binaryExpr:
		x, err := c.eval(n.x)
		if err != nil {
			return Value{}, err
		}
		y, err := c.eval(n.y)
		if err != nil {
			return Value{}, err
		}
		return c.binary(n.op, x, y)
	case *callExpr:
		f, ok := functions[n.name]
		if !ok {
			return Value{}, errors.Wrapf(ErrUndefined, "function %s", n.name)
		}
		if len(n.args) != f.nargs {
			return Value{}, errors.Errorf("%s: expected %d arguments, got %d", n.name, f.nargs, len(n.args))
		}
		args := make([]Value, len(n.args))
		for i, a := range n.args {
			v, err := c.eval(a)
			if err != nil {
				return Value{}, err
			}
			args[i] = v
		}
		v, err := f.fn(c, args)
		return v, errors.Wrap(err, n.name)
	}
	panic("unknown node type")
}

func (c *Calculator) binary(op byte, x, y Value) (Value, error) {
	if op == '^' {
		n, err := exponent(y)
		if err != nil {
			return Value{}, err
		}
		if x.Kind == KindReal {
			return RealValue(math.PowReal(x.Real, n)), nil
		}
		return IntValue(math.Pow(x.Int, n)), nil
	}
	if x.Kind == KindInt && y.Kind == KindInt {
		a, b := x.Int, y.Int
		switch op {
		case '+':
			return IntValue(a.Add(b)), nil
		case '-':
			return IntValue(a.Sub(b)), nil
		case '*':
			return IntValue(a.Mul(b)), nil
		case '/':
			return IntValue(a.Quo(b)), nil
		case '%':
			return IntValue(a.Rem(b)), nil
		}
	} else {
		a, b := x.toReal(c.prec), y.toReal(c.prec)
		switch op {
		case '+':
			return RealValue(a.Add(b)), nil
		case '-':
			return RealValue(a.Sub(b)), nil
		case '*':
			return RealValue(a.Mul(b)), nil
		case '/':
			return RealValue(a.Quo(b)), nil
		case '%':
			return RealValue(a.Rem(b)), nil
		}
	}
	return Value{}, errors.Errorf("unknown operator %q", op)
}

// exponent returns y as a power exponent.
func exponent(y Value) (uint, error) {
	if y.Kind != KindInt {
		return 0, errors.Errorf("exponent %s is not an integer", y)
	}
	n, acc := y.Int.Uint32()
	if acc != bignum.Exact {
		return 0, errors.Errorf("exponent %s out of range", y)
	}
	return uint(n), nil
}

func fnAbs(c *Calculator, args []Value) (Value, error) {
	if args[0].Kind == KindReal {
		return RealValue(args[0].Real.Abs()), nil
	}
	return IntValue(args[0].Int.Abs()), nil
}

func fnSqrt(c *Calculator, args []Value) (Value, error) {
	return RealValue(math.SqrtPrec(args[0].toReal(c.prec), c.prec)), nil
}

func fnExp(c *Calculator, args []Value) (Value, error) {
	return RealValue(math.ExpPrec(args[0].toReal(c.prec), c.prec)), nil
}

func fnLn(c *Calculator, args []Value) (Value, error) {
	return RealValue(math.LogPrec(args[0].toReal(c.prec), c.prec)), nil
}

func fnPow(c *Calculator, args []Value) (Value, error) {
	return c.binary('^', args[0], args[1])
}

func fnFact(c *Calculator, args []Value) (Value, error) {
	n, err := exponent(args[0])
	if err != nil {
		return Value{}, err
	}
	return IntValue(math.Factorial(n)), nil
}

func fnGCD(c *Calculator, args []Value) (Value, error) {
	if args[0].Kind != KindInt || args[1].Kind != KindInt {
		return Value{}, errors.New("arguments must be integers")
	}
	return IntValue(math.GCD(args[0].Int, args[1].Int)), nil
}

func fnTrunc(c *Calculator, args []Value) (Value, error) {
	if args[0].Kind == KindReal {
		return IntValue(args[0].Real.Int()), nil
	}
	return args[0], nil
}

func fnPi(c *Calculator, args []Value) (Value, error) {
	return RealValue(math.Pi(c.prec)), nil
}
