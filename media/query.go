package media

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"
	"github.com/gorilla/css/scanner"
)

// ErrSyntax is returned for media queries which cannot be parsed.
var ErrSyntax = errors.New("media query syntax error")

// Features describe the media a document is presented on.
type Features struct {
	Type       string  // "screen", "print", …; empty means "screen"
	Width      float64 // viewport width in px
	Height     float64 // viewport height in px
	Resolution float64 // device pixels per CSS pixel; 0 means 1
}

// Orientation is derived from width and height.
func (f Features) Orientation() string {
	if f.Height >= f.Width {
		return "portrait"
	}
	return "landscape"
}

func (f Features) env() map[string]any {
	typ := f.Type
	if typ == "" {
		typ = "screen"
	}
	res := f.Resolution
	if res == 0 {
		res = 1
	}
	return map[string]any{
		"type":        typ,
		"width":       f.Width,
		"height":      f.Height,
		"orientation": f.Orientation(),
		"resolution":  res,
		"aspect":      aspect(f.Width, f.Height),
	}
}

func aspect(w, h float64) float64 {
	if h == 0 {
		return 0
	}
	return w / h
}

// Query is a compiled media query.
type Query struct {
	source  string
	expr    string
	program *exprvm.Program
}

// Compile parses a media query list, e.g.
//
//     "screen and (min-width: 600px), print"
//
// Unknown media features never match; they do not make compilation fail.
func Compile(query string) (*Query, error) {
	src, err := translate(query)
	if err != nil {
		return nil, err
	}
	program, err := exprlang.Compile(src, exprlang.Env(Features{}.env()), exprlang.AsBool())
	if err != nil {
		return nil, fmt.Errorf("media query %q: %w", query, err)
	}
	tracer().Debugf("media: %q => %s", query, src)
	return &Query{source: query, expr: src, program: program}, nil
}

// Matches evaluates the query against a set of features.
func (q *Query) Matches(f Features) bool {
	if q == nil || q.program == nil {
		return false
	}
	out, err := exprlang.Run(q.program, f.env())
	if err != nil {
		tracer().Errorf("media: evaluating %q: %v", q.source, err)
		return false
	}
	b, _ := out.(bool)
	return b
}

func (q *Query) String() string {
	return q.source
}

// Expr returns the boolean expression a query has been translated to.
func (q *Query) Expr() string {
	return q.expr
}

// --- Translation -----------------------------------------------------------

type parser struct {
	toks []*scanner.Token
	pos  int
}

func translate(query string) (string, error) {
	p := &parser{}
	s := scanner.New(query)
	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF {
			break
		}
		if tok.Type == scanner.TokenError {
			return "", fmt.Errorf("%w: %q at column %d", ErrSyntax, query, tok.Column)
		}
		if tok.Type == scanner.TokenS || tok.Type == scanner.TokenComment {
			continue
		}
		p.toks = append(p.toks, tok)
	}
	if len(p.toks) == 0 {
		return "true", nil // empty query matches all media
	}
	var alternatives []string
	for {
		q, err := p.query()
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrSyntax, query, err)
		}
		alternatives = append(alternatives, "("+q+")")
		if p.done() {
			break
		}
		if !p.char(",") {
			return "", fmt.Errorf("%w: %q: unexpected %q", ErrSyntax, query, p.peek().Value)
		}
	}
	return strings.Join(alternatives, " || "), nil
}

func (p *parser) done() bool {
	return p.pos >= len(p.toks)
}

func (p *parser) peek() *scanner.Token {
	if p.done() {
		return &scanner.Token{Type: scanner.TokenEOF}
	}
	return p.toks[p.pos]
}

func (p *parser) ident(name string) bool {
	t := p.peek()
	if t.Type == scanner.TokenIdent && strings.EqualFold(t.Value, name) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) char(c string) bool {
	t := p.peek()
	if t.Type == scanner.TokenChar && t.Value == c {
		p.pos++
		return true
	}
	return false
}

// query := [only|not] type (and expr)* | expr (and expr)*
func (p *parser) query() (string, error) {
	negate := false
	if p.ident("not") {
		negate = true
	} else {
		p.ident("only")
	}
	var conds []string
	t := p.peek()
	if t.Type == scanner.TokenIdent {
		p.pos++
		typ := strings.ToLower(t.Value)
		if typ != "all" {
			conds = append(conds, "type == "+strconv.Quote(typ))
		}
	} else {
		c, err := p.expr()
		if err != nil {
			return "", err
		}
		conds = append(conds, c)
	}
	for p.ident("and") {
		c, err := p.expr()
		if err != nil {
			return "", err
		}
		conds = append(conds, c)
	}
	q := "true"
	if len(conds) > 0 {
		q = strings.Join(conds, " && ")
	}
	if negate {
		q = "!(" + q + ")"
	}
	return q, nil
}

// expr := '(' feature [':' value] ')'
func (p *parser) expr() (string, error) {
	if !p.char("(") {
		return "", fmt.Errorf("expected '(', have %q", p.peek().Value)
	}
	t := p.peek()
	if t.Type != scanner.TokenIdent {
		return "", fmt.Errorf("expected media feature, have %q", t.Value)
	}
	p.pos++
	feature := strings.ToLower(t.Value)
	var value *scanner.Token
	var ratio *scanner.Token
	if p.char(":") {
		value = p.peek()
		p.pos++
		if p.char("/") {
			ratio = p.peek()
			p.pos++
		}
	}
	if !p.char(")") {
		return "", fmt.Errorf("expected ')', have %q", p.peek().Value)
	}
	return condition(feature, value, ratio)
}

func condition(feature string, value, ratio *scanner.Token) (string, error) {
	op := "=="
	name := feature
	if strings.HasPrefix(feature, "min-") {
		op, name = ">=", feature[4:]
	} else if strings.HasPrefix(feature, "max-") {
		op, name = "<=", feature[4:]
	}
	if value == nil {
		switch name {
		case "width", "height":
			return name + " > 0.0", nil
		case "color", "orientation":
			return "true", nil
		}
		tracer().Debugf("media: unknown media feature %q", feature)
		return "false", nil
	}
	switch name {
	case "width", "height":
		n, err := length(value)
		if err != nil {
			return "", err
		}
		return name + " " + op + " " + n, nil
	case "orientation":
		return "orientation == " + strconv.Quote(strings.ToLower(value.Value)), nil
	case "resolution":
		n, err := resolution(value)
		if err != nil {
			return "", err
		}
		return "resolution " + op + " " + n, nil
	case "aspect-ratio":
		if ratio == nil {
			return "", fmt.Errorf("aspect ratio needs the form w/h")
		}
		w, err1 := strconv.ParseFloat(value.Value, 64)
		h, err2 := strconv.ParseFloat(ratio.Value, 64)
		if err1 != nil || err2 != nil || h == 0 {
			return "", fmt.Errorf("illegal aspect ratio %s/%s", value.Value, ratio.Value)
		}
		return "aspect " + op + " " + float(w/h), nil
	}
	tracer().Debugf("media: unknown media feature %q", feature)
	return "false", nil
}

func length(t *scanner.Token) (string, error) {
	num, unit := splitDimension(t)
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return "", fmt.Errorf("illegal length %q", t.Value)
	}
	switch strings.ToLower(unit) {
	case "", "px":
	case "em", "rem":
		f *= 16
	default:
		return "", fmt.Errorf("unsupported unit in %q", t.Value)
	}
	return float(f), nil
}

func resolution(t *scanner.Token) (string, error) {
	num, unit := splitDimension(t)
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return "", fmt.Errorf("illegal resolution %q", t.Value)
	}
	switch strings.ToLower(unit) {
	case "dppx", "x":
	case "dpi":
		f /= 96
	case "dpcm":
		f = f * 2.54 / 96
	default:
		return "", fmt.Errorf("unsupported unit in %q", t.Value)
	}
	return float(f), nil
}

func splitDimension(t *scanner.Token) (string, string) {
	if t.Type == scanner.TokenNumber {
		return t.Value, ""
	}
	v := t.Value
	i := 0
	for i < len(v) && (v[i] == '.' || v[i] == '-' || v[i] == '+' || (v[i] >= '0' && v[i] <= '9')) {
		i++
	}
	return v[:i], v[i:]
}

// float formats a literal which expr will read as a float.
func float(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
