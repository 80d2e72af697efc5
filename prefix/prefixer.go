package prefix

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/radium/style"
)

// Prefixer prefixes styles for one browser.
type Prefixer struct {
	browser Browser
}

// New creates a prefixer for the browser identified by a user agent string.
func New(userAgent string) *Prefixer {
	return &Prefixer{browser: Detect(userAgent)}
}

// ForBrowser creates a prefixer for a known browser.
func ForBrowser(b Browser) *Prefixer {
	return &Prefixer{browser: b}
}

// Browser returns the browser a prefixer works for.
func (p *Prefixer) Browser() Browser {
	return p.browser
}

// Style returns a prefixed copy of a style object. Fallback lists are
// resolved to a single value. Nested blocks are copied unchanged.
// An explicitly given prefixed property wins over the prefixed form of its
// standard property.
func (p *Prefixer) Style(s style.Style) style.Style {
	out := make(style.Style, len(s))
	for k, v := range s {
		if style.IsNested(v) {
			out[k] = v
			continue
		}
		if list, ok := asList(v); ok {
			v = p.Choose(k, list)
		}
		name := p.Property(k)
		if name != k {
			if _, explicit := s[name]; explicit {
				continue
			}
		}
		out[name] = p.Value(k, v)
	}
	return out
}

// Property returns the camel-cased property name the browser expects,
// e.g. "WebkitTransform" for "transform" on Safari 8.
func (p *Prefixer) Property(name string) string {
	if !p.browser.Known() || name != style.Unprefixed(name) {
		return name
	}
	if needsOf(propertyNeeds[name], p.browser) {
		return prefixed(name, p.browser.Vendor())
	}
	return name
}

// Value returns the value the browser expects, e.g. "-webkit-flex" for
// display "flex" on iOS 8. Non-string values are returned unchanged.
func (p *Prefixer) Value(name string, v any) any {
	str, ok := v.(string)
	if !ok || !p.browser.Known() {
		return v
	}
	prop := style.Unprefixed(name)
	for _, r := range valueRules {
		if r.property != "" && r.property != prop {
			continue
		}
		if r.match(str) && needsOf(r.needs, p.browser) {
			return r.rewrite(str, p.browser.Vendor())
		}
	}
	return v
}

// Supports tells if the browser is able to use a value for a property.
// Unknown browsers are assumed to support everything.
func (p *Prefixer) Supports(name string, v any) bool {
	str, ok := v.(string)
	if !ok || !p.browser.Known() {
		return true
	}
	prop := style.Unprefixed(name)
	for _, f := range features {
		if f.property != "" && f.property != prop {
			continue
		}
		if !f.match(str) {
			continue
		}
		if since, listed := f.since[p.browser.Name]; listed && p.browser.Version < since {
			return false
		}
	}
	return true
}

// Choose picks the first value of a fallback list the browser supports.
// If none is supported, the last entry is taken. Nil entries are skipped.
func (p *Prefixer) Choose(name string, list []any) any {
	var last any
	for _, v := range list {
		if v == nil {
			continue
		}
		if p.Supports(name, v) {
			return v
		}
		last = v
	}
	if last != nil {
		tracer().Debugf("prefix: no value of %v supported by %s, using %v", list, p.browser, last)
	}
	return last
}

// Declarations renders a property as CSS declarations. For a known browser
// a single declaration is produced. For an unknown browser, every prefixed
// variant of property and value is emitted, followed by the standard form;
// fallback lists emit one group per entry, in order.
func (p *Prefixer) Declarations(name string, v any) []style.KeyValue {
	if p.browser.Known() {
		if list, ok := asList(v); ok {
			v = p.Choose(name, list)
		}
		val, ok := style.Format(name, p.Value(name, v))
		if !ok {
			return nil
		}
		return []style.KeyValue{{Key: style.Hyphenate(p.Property(name)), Value: val}}
	}
	values := []any{v}
	if list, ok := asList(v); ok {
		values = list
	}
	var names []string
	if name == style.Unprefixed(name) {
		for _, vendor := range vendorsOf(propertyNeeds[name]) {
			names = append(names, prefixed(name, vendor))
		}
	}
	names = append(names, name)
	var decls []style.KeyValue
	seen := map[style.KeyValue]bool{}
	for _, val := range values {
		for _, variant := range valueVariants(name, val) {
			for _, n := range names {
				f, ok := style.Format(n, variant)
				if !ok {
					continue
				}
				kv := style.KeyValue{Key: style.Hyphenate(n), Value: f}
				if !seen[kv] {
					seen[kv] = true
					decls = append(decls, kv)
				}
			}
		}
	}
	return decls
}

// valueVariants returns every vendor form of a value, followed by the
// value itself.
func valueVariants(name string, v any) []any {
	str, ok := v.(string)
	if !ok {
		return []any{v}
	}
	prop := style.Unprefixed(name)
	var variants []any
	for _, r := range valueRules {
		if r.property != "" && r.property != prop {
			continue
		}
		if !r.match(str) {
			continue
		}
		for _, vendor := range vendorsOf(r.needs) {
			variants = append(variants, r.rewrite(str, vendor))
		}
		break
	}
	return append(variants, str)
}

func prefixed(name, vendor string) string {
	if name == "" {
		return name
	}
	capitalized := strings.ToUpper(name[:1]) + name[1:]
	switch vendor {
	case "webkit":
		return "Webkit" + capitalized
	case "moz":
		return "Moz" + capitalized
	case "ms":
		return "ms" + capitalized
	}
	return name
}

func asList(v any) ([]any, bool) {
	switch x := v.(type) {
	case []any:
		return x, true
	case []string:
		list := make([]any, len(x))
		for i, s := range x {
			list[i] = s
		}
		return list, true
	}
	return nil, false
}
