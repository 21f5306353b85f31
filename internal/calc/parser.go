// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calc

import (
	"fmt"
	"strings"
)

// node is an expression tree node.
type node interface {
	// pure reports whether the node's value only depends on its text.
	pure() bool
	fmt.Stringer
}

type (
	numLit struct {
		text   string
		isReal bool
	}
	varRef struct {
		name string
	}
	unaryExpr struct {
		op byte
		x  node
	}
	binaryExpr struct {
		op   byte
		x, y node
	}
	callExpr struct {
		name string
		args []node
	}
	assignExpr struct {
		name string
		x    node
	}
)

func (n *numLit) pure() bool     { return true }
func (n *varRef) pure() bool     { return false }
func (n *unaryExpr) pure() bool  { return n.x.pure() }
func (n *binaryExpr) pure() bool { return n.x.pure() && n.y.pure() }
func (n *assignExpr) pure() bool { return false }

func (n *callExpr) pure() bool {
	for _, a := range n.args {
		if !a.pure() {
			return false
		}
	}
	return true
}

// String methods return a canonical, fully parenthesized form used as cache
// key.
func (n *numLit) String() string    { return n.text }
func (n *varRef) String() string    { return n.name }
func (n *unaryExpr) String() string { return "(" + string(n.op) + n.x.String() + ")" }
func (n *binaryExpr) String() string {
	return "(" + n.x.String() + string(n.op) + n.y.String() + ")"
}
func (n *assignExpr) String() string { return n.name + "=" + n.x.String() }

func (n *callExpr) String() string {
	args := make([]string, len(n.args))
	for i, a := range n.args {
		args[i] = a.String()
	}
	return n.name + "(" + strings.Join(args, ",") + ")"
}

// parser is a recursive descent parser for the grammar:
//
//	stmt    = ident "=" expr | expr
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/" | "%") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "^" unary ]
//	primary = number | ident | ident "(" [ expr { "," expr } ] ")" | "(" expr ")"
type parser struct {
	toks []token
	pos  int
}

// parse parses a single statement.
func parse(src string) (node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.stmt()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.typ != tokEOF {
		return nil, p.errorf(t, "unexpected %s", t)
	}
	return n, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.typ != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) isOp(ops string) (byte, bool) {
	t := p.peek()
	if t.typ == tokOp && strings.Contains(ops, t.text) {
		return t.text[0], true
	}
	return 0, false
}

func (p *parser) expect(op string) error {
	if t := p.next(); t.typ != tokOp || t.text != op {
		return p.errorf(t, "expected %q, found %s", op, t)
	}
	return nil
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) stmt() (node, error) {
	if t := p.peek(); t.typ == tokIdent {
		if n := p.toks[p.pos+1]; n.typ == tokOp && n.text == "=" {
			p.pos += 2
			x, err := p.expr()
			if err != nil {
				return nil, err
			}
			return &assignExpr{name: t.text, x: x}, nil
		}
	}
	return p.expr()
}

func (p *parser) expr() (node, error) {
	x, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOp("+-")
		if !ok {
			return x, nil
		}
		p.next()
		y, err := p.term()
		if err != nil {
			return nil, err
		}
		x = &binaryExpr{op: op, x: x, y: y}
	}
}

func (p *parser) term() (node, error) {
	x, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.isOp("*/%")
		if !ok {
			return x, nil
		}
		p.next()
		y, err := p.unary()
		if err != nil {
			return nil, err
		}
		x = &binaryExpr{op: op, x: x, y: y}
	}
}

func (p *parser) unary() (node, error) {
	if op, ok := p.isOp("+-"); ok {
		p.next()
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &unaryExpr{op: op, x: x}, nil
	}
	return p.power()
}

func (p *parser) power() (node, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	if _, ok := p.isOp("^"); ok {
		p.next()
		y, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &binaryExpr{op: '^', x: x, y: y}, nil
	}
	return x, nil
}

func (p *parser) primary() (node, error) {
	t := p.next()
	switch t.typ {
	case tokNumber:
		return &numLit{text: t.text, isReal: strings.Contains(t.text, ".")}, nil
	case tokIdent:
		if _, ok := p.isOp("("); !ok {
			return &varRef{name: t.text}, nil
		}
		p.next()
		call := &callExpr{name: t.text}
		if _, ok := p.isOp(")"); ok {
			p.next()
			return call, nil
		}
		for {
			a, err := p.expr()
			if err != nil {
				return nil, err
			}
			call.args = append(call.args, a)
			if _, ok := p.isOp(","); !ok {
				break
			}
			p.next()
		}
		return call, p.expect(")")
	case tokOp:
		if t.text == "(" {
			x, err := p.expr()
			if err != nil {
				return nil, err
			}
			return x, p.expect(")")
		}
	}
	return nil, p.errorf(t, "unexpected %s", t)
}
