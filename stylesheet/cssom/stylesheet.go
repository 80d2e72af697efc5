package cssom

import "github.com/npillmayer/radium/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple the parsing of CSS from the generation of rules, we
// introduce an interface for CSS stylesheets (e.g., see package
// douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the top-level rules of a stylesheet
}

// Rule is the type stylesheets consists of. At-rules like @media and
// @keyframes contain nested rules.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
	IsAtRule() bool              // is this an at-rule, e.g. @media?
	Name() string                // name of an at-rule, e.g. "@keyframes"
	Rules() []Rule               // nested rules of an at-rule
}

// Find returns the first rule (searching nested rules depth-first) whose
// selector equals sel, or nil.
func Find(sheet StyleSheet, sel string) Rule {
	return find(sheet.Rules(), sel)
}

func find(rules []Rule, sel string) Rule {
	for _, r := range rules {
		if r.Selector() == sel {
			return r
		}
		if found := find(r.Rules(), sel); found != nil {
			return found
		}
	}
	return nil
}
