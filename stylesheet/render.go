package stylesheet

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/radium/prefix"
	"github.com/npillmayer/radium/style"
)

// Keyframes maps keyframe stops ("from", "50%", "to") to styles.
type Keyframes map[string]style.Style

// Rules maps selectors to styles. Entries which are not style objects are
// declarations for the scope itself. The entry "mediaQueries" maps media
// queries to nested Rules.
type Rules map[string]any

// MediaQueriesKey is the key of nested media rules in Rules.
const MediaQueriesKey = "mediaQueries"

func asRules(v any) (Rules, bool) {
	switch x := v.(type) {
	case Rules:
		return x, true
	case map[string]any:
		return Rules(x), true
	case style.Style:
		return Rules(x), true
	}
	return nil, false
}

// declarations renders the scalar entries of a style as "k:v;" pairs,
// sorted by property.
func declarations(s style.Style, p *prefix.Prefixer) string {
	var b strings.Builder
	for _, k := range s.Keys() {
		if style.IsNested(s[k]) {
			continue
		}
		for _, d := range p.Declarations(k, s[k]) {
			b.WriteString(d.Key)
			b.WriteByte(':')
			b.WriteString(d.Value.String())
			b.WriteByte(';')
		}
	}
	return b.String()
}

// RenderKeyframes renders the body of a @keyframes rule: the stops, ordered
// by percentage.
func RenderKeyframes(frames Keyframes, p *prefix.Prefixer) string {
	stops := make([]string, 0, len(frames))
	for k := range frames {
		stops = append(stops, k)
	}
	sort.Slice(stops, func(i, j int) bool {
		pi, pj := percent(stops[i]), percent(stops[j])
		if pi != pj {
			return pi < pj
		}
		return stops[i] < stops[j]
	})
	var b strings.Builder
	for _, stop := range stops {
		b.WriteString(stop)
		b.WriteByte('{')
		b.WriteString(declarations(frames[stop], p))
		b.WriteByte('}')
	}
	return b.String()
}

func percent(stop string) float64 {
	switch s := strings.TrimSpace(strings.ToLower(stop)); s {
	case "from":
		return 0
	case "to":
		return 100
	default:
		if f, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64); err == nil {
			return f
		}
	}
	return 101
}

// RenderRules renders a rule set. Selectors are prefixed with scope, if
// given; a selector list "a, b" becomes "scope a,scope b". Declarations at
// the top level of rules apply to the scope itself and are dropped if there
// is no scope. Selectors are emitted in sorted order, media queries last.
func RenderRules(rules Rules, scope string, p *prefix.Prefixer) string {
	var b strings.Builder
	root := style.Style{}
	var selectors []string
	for k, v := range rules {
		if k == MediaQueriesKey {
			continue
		}
		if _, ok := style.AsStyle(v); ok {
			selectors = append(selectors, k)
			continue
		}
		if _, ok := v.(Rules); ok {
			selectors = append(selectors, k)
			continue
		}
		root[k] = v
	}
	if len(root) > 0 {
		if scope == "" {
			tracer().Infof("stylesheet: declarations without a scope selector are dropped: %v", root.Keys())
		} else if decls := declarations(root, p); decls != "" {
			b.WriteString(scope + "{" + decls + "}")
		}
	}
	sort.Strings(selectors)
	for _, sel := range selectors {
		s, _ := asRules(rules[sel])
		decls := declarations(style.Style(s), p)
		if decls == "" {
			continue
		}
		full := scoped(scope, sel)
		if _, err := cascadia.Compile(full); err != nil {
			tracer().Errorf("stylesheet: skipping rule with invalid selector %q: %v", full, err)
			continue
		}
		b.WriteString(full + "{" + decls + "}")
	}
	if mq, ok := asRules(rules[MediaQueriesKey]); ok {
		queries := make([]string, 0, len(mq))
		for q := range mq {
			queries = append(queries, q)
		}
		sort.Strings(queries)
		for _, q := range queries {
			nested, ok := asRules(mq[q])
			if !ok {
				continue
			}
			if inner := RenderRules(nested, scope, p); inner != "" {
				b.WriteString("@media " + style.MediaQuery(q) + "{" + inner + "}")
			}
		}
	}
	return b.String()
}

func scoped(scope, selector string) string {
	if scope == "" {
		return strings.TrimSpace(selector)
	}
	parts := strings.Split(selector, ",")
	for i, part := range parts {
		parts[i] = scope + " " + strings.TrimSpace(part)
	}
	return strings.Join(parts, ",")
}
