package expr

import "fmt"

// Op is a binary operation of the expression language.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpShl
	OpShr
	OpOr
	OpAnd
	OpXor
	OpEq
	OpLt
)

var opNames = [...]string{
	OpAdd: "+", OpSub: "-", OpMul: "*", OpDiv: "/", OpMod: "%",
	OpShl: "<<", OpShr: ">>", OpOr: "|", OpAnd: "&", OpXor: "^",
	OpEq: "==", OpLt: "<",
}

func (op Op) String() string { return opNames[op] }

// Node is an expression tree node.
type Node interface{ node() }

// LitNode is an integer literal, possibly with a folded unary minus.
type LitNode struct {
	Text string
	Neg  bool
	Pos  uint32
}

// CastNode is a checked conversion of its inner expression into Type.
type CastNode struct {
	Type  NumType
	Inner Node
}

// BinNode is an arithmetic, shift or bitwise operation.
type BinNode struct {
	Op   Op
	L, R Node
}

// CmpNode is a top-level comparison; comparisons do not nest.
type CmpNode struct {
	Op   Op
	L, R Node
}

func (*LitNode) node()  {}
func (*CastNode) node() {}
func (*BinNode) node()  {}
func (*CmpNode) node()  {}

// C-family precedence: multiplicative over additive over shifts over
// bitwise and/xor/or, comparisons last and non-associative.
var binPrec = map[tokKind]struct {
	op   Op
	prec int
}{
	tokStar:    {OpMul, 7},
	tokSlash:   {OpDiv, 7},
	tokPercent: {OpMod, 7},
	tokPlus:    {OpAdd, 6},
	tokMinus:   {OpSub, 6},
	tokShl:     {OpShl, 5},
	tokShr:     {OpShr, 5},
	tokAmp:     {OpAnd, 4},
	tokCaret:   {OpXor, 3},
	tokPipe:    {OpOr, 2},
}

type parser struct {
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

// Parse parses a single expression into its tree form.
func Parse(src string) (Node, error) {
	toks, err := scan(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	// optional single comparison at the top
	if k := p.peek().kind; k == tokEqEq || k == tokLess {
		tok := p.next()
		rhs, err := p.parseBinary(1)
		if err != nil {
			return nil, err
		}
		op := OpEq
		if tok.kind == tokLess {
			op = OpLt
		}
		n = &CmpNode{Op: op, L: n, R: rhs}
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, fmt.Errorf("position %d: unexpected %q", tok.pos, tok.text)
	}
	return n, nil
}

func (p *parser) parseBinary(minPrec int) (Node, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		entry, ok := binPrec[p.peek().kind]
		if !ok || entry.prec < minPrec {
			return lhs, nil
		}
		p.next()
		rhs, err := p.parseBinary(entry.prec + 1)
		if err != nil {
			return nil, err
		}
		lhs = &BinNode{Op: entry.op, L: lhs, R: rhs}
	}
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return &LitNode{Text: tok.text, Pos: tok.pos}, nil
	case tokMinus:
		// unary minus folds into the literal it precedes
		inner := p.next()
		if inner.kind != tokNumber {
			return nil, fmt.Errorf("position %d: unary minus requires a literal", tok.pos)
		}
		return &LitNode{Text: inner.text, Neg: true, Pos: tok.pos}, nil
	case tokIdent:
		typ, ok := ParseNumType(tok.text)
		if !ok {
			return nil, fmt.Errorf("position %d: unknown type %q", tok.pos, tok.text)
		}
		if open := p.next(); open.kind != tokLParen {
			return nil, fmt.Errorf("position %d: expected ( after %s", open.pos, tok.text)
		}
		inner, err := p.parseBinary(1)
		if err != nil {
			return nil, err
		}
		if cl := p.next(); cl.kind != tokRParen {
			return nil, fmt.Errorf("position %d: expected ) to close %s cast", cl.pos, tok.text)
		}
		return &CastNode{Type: typ, Inner: inner}, nil
	case tokLParen:
		inner, err := p.parseBinary(1)
		if err != nil {
			return nil, err
		}
		if cl := p.next(); cl.kind != tokRParen {
			return nil, fmt.Errorf("position %d: expected )", cl.pos)
		}
		return inner, nil
	default:
		return nil, fmt.Errorf("position %d: unexpected %q", tok.pos, tok.text)
	}
}
