/*
Package douceuradapter is a concrete implementation of interface
cssom.StyleSheet, backed by the CSS parser of douceur.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/radium/style"
	"github.com/npillmayer/radium/stylesheet/cssom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Parse parses CSS text into a stylesheet.
func Parse(text string) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing style sheet: %w", err)
	}
	return Wrap(sheet), nil
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss := other.(*CSSStyles)
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return wrapRules(sheet.css.Rules)
}

// String serializes the stylesheet.
func (sheet *CSSStyles) String() string {
	return sheet.css.String()
}

var _ cssom.StyleSheet = &CSSStyles{}

func wrapRules(rules []*css.Rule) []cssom.Rule {
	wrapped := make([]cssom.Rule, len(rules))
	for i, r := range rules {
		wrapped[i] = Rule{r}
	}
	return wrapped
}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	rule *css.Rule
}

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.rule.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.rule.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// For repeated keys, the last declaration wins.
func (r Rule) Value(key string) style.Property {
	var v style.Property
	for _, d := range r.rule.Declarations {
		if d.Property == key {
			v = style.Property(d.Value)
		}
	}
	return v
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.rule.Declarations {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

// IsAtRule is true for rules like @media or @keyframes.
func (r Rule) IsAtRule() bool {
	return r.rule.Kind == css.AtRule
}

// Name returns the name of an at-rule, e.g. "@media".
func (r Rule) Name() string {
	return r.rule.Name
}

// Rules returns the nested rules of an at-rule.
func (r Rule) Rules() []cssom.Rule {
	return wrapRules(r.rule.Rules)
}

// Rule returns the underlying douceur rule.
func (r Rule) Rule() *css.Rule {
	return r.rule
}

var _ cssom.Rule = Rule{}
