package plugins

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"

	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/style"
)

// Merge flattens the raw style descriptor of the element on top of s, which
// holds what plugins running before Merge contributed.
func Merge(s style.Style, pc *Context) (style.Style, element.Props, error) {
	return style.Merge(s, style.Flatten(style.Of(pc.Raw))), nil, nil
}

// Handler prop names synthesized by Interaction.
const (
	OnMouseEnter = "onMouseEnter"
	OnMouseLeave = "onMouseLeave"
	OnMouseDown  = "onMouseDown"
	OnKeyDown    = "onKeyDown"
	OnKeyUp      = "onKeyUp"
	OnFocus      = "onFocus"
	OnBlur       = "onBlur"
)

// pseudoOrder is the order in which active pseudo-class blocks are merged;
// later ones win.
var pseudoOrder = []string{style.Visited, style.Focus, style.Hover, style.Active}

// Interaction applies the blocks of active pseudo-classes and adds the
// handlers which track them. A disabled element gets its :disabled block
// only. Pseudo-class blocks inside @media blocks are resolved in place.
func Interaction(s style.Style, pc *Context) (style.Style, element.Props, error) {
	handlers := element.Props{}
	out := resolvePseudo(s, pc, handlers)
	if len(handlers) == 0 {
		handlers = nil
	}
	return out, handlers, nil
}

func resolvePseudo(s style.Style, pc *Context, handlers element.Props) style.Style {
	out := make(style.Style, len(s))
	for k, v := range s {
		if style.IsPseudoClass(k) {
			continue
		}
		if sub, ok := style.AsStyle(v); ok && style.IsMediaQuery(k) {
			out[k] = resolvePseudo(sub, pc, handlers)
			continue
		}
		out[k] = v
	}
	synthesize(s, pc, handlers)
	if element.Truthy(pc.Props["disabled"]) {
		if sub, ok := style.AsStyle(s[style.Disabled]); ok {
			out = style.Merge(out, resolvePseudo(sub, pc, handlers))
		}
		return out
	}
	for _, pseudo := range pseudoOrder {
		sub, ok := style.AsStyle(s[pseudo])
		if !ok || !pseudoActive(pseudo, pc) {
			continue
		}
		out = style.Merge(out, resolvePseudo(sub, pc, handlers))
	}
	return out
}

func pseudoActive(pseudo string, pc *Context) bool {
	if pseudo == style.Visited {
		return pc.Visited()
	}
	return pc.GetState(pseudo)
}

func synthesize(s style.Style, pc *Context, handlers element.Props) {
	if _, ok := s[style.Hover]; ok {
		handlers[OnMouseEnter] = element.Handler(func(*element.Event) {
			pc.SetState(style.Hover, true)
		})
		handlers[OnMouseLeave] = element.Handler(func(*element.Event) {
			pc.SetState(style.Hover, false)
		})
	}
	if _, ok := s[style.Active]; ok {
		handlers[OnMouseDown] = element.Handler(func(*element.Event) {
			if pc.Instance != nil {
				pc.Instance.Activate(pc.Key, true)
			}
		})
		handlers[OnKeyDown] = element.Handler(func(e *element.Event) {
			if isActivationKey(e) && pc.Instance != nil {
				pc.Instance.Activate(pc.Key, false)
			}
		})
		handlers[OnKeyUp] = element.Handler(func(e *element.Event) {
			if isActivationKey(e) {
				pc.SetState(style.Active, false)
			}
		})
		if pc.Instance != nil {
			pc.Instance.SubscribeRelease()
		}
	}
	if _, ok := s[style.Focus]; ok {
		handlers[OnFocus] = element.Handler(func(*element.Event) {
			pc.SetState(style.Focus, true)
		})
		handlers[OnBlur] = element.Handler(func(*element.Event) {
			pc.SetState(style.Focus, false)
		})
	}
}

func isActivationKey(e *element.Event) bool {
	return e != nil && (e.Key == " " || e.Key == "Enter")
}

const maxMediaDepth = 8

// Media applies the blocks of matching media queries, in sorted order of
// their keys, and subscribes the component to changes of each query.
// Without a way to evaluate queries, no block matches.
func Media(s style.Style, pc *Context) (style.Style, element.Props, error) {
	return applyMedia(s, pc, 0), nil, nil
}

func applyMedia(s style.Style, pc *Context, depth int) style.Style {
	var keys []string
	for k, v := range s {
		if style.IsMediaQuery(k) && style.IsNested(v) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 || depth > maxMediaDepth {
		return s
	}
	sort.Strings(keys)
	out := make(style.Style, len(s))
	for k, v := range s {
		if !style.IsMediaQuery(k) {
			out[k] = v
		}
	}
	match := pc.MatchMedia()
	if match == nil {
		tracer().Debugf("plugins: %s: no media evaluation available", pc.ComponentName)
		return out
	}
	if pc.Instance != nil && !pc.Instance.HasStyleRoot() {
		tracer().Infof("plugins: %s uses media queries but is not wrapped in a StyleRoot", pc.ComponentName)
	}
	for _, k := range keys {
		q := style.MediaQuery(k)
		var matches bool
		if pc.Instance != nil {
			matches = pc.Instance.SubscribeMedia(q, match)
		} else if l := match(q); l != nil {
			matches = l.Matches()
		}
		if !matches {
			continue
		}
		sub, _ := style.AsStyle(s[k])
		out = style.Merge(out, applyMedia(sub, pc, depth+1))
	}
	return out
}

// Prefix adds vendor prefixes for the user agent of the context.
func Prefix(s style.Style, pc *Context) (style.Style, element.Props, error) {
	return pc.Prefixer().Style(s), nil, nil
}

// Coerce drops nested blocks and unset values, and renders values with a
// String method.
func Coerce(s style.Style, pc *Context) (style.Style, element.Props, error) {
	out := make(style.Style, len(s))
	for k, v := range s {
		if style.IsNested(v) {
			if style.IsPseudoClass(k) {
				tracer().Debugf("plugins: %s: unresolved style block %q dropped", pc.ComponentName, k)
			}
			continue
		}
		if cv, ok := style.Coerce(v); ok {
			out[k] = cv
		}
	}
	return out, nil, nil
}
