package resolve

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strconv"

	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/plugins"
)

// Walk resolves the styles of a rendered tree. The input tree is never
// modified: elements which change are copied, everything else is returned
// as is, including the shape of lists and keyed child sets.
// An error of the pipeline stops the walk.
func Walk(n element.Node, p *Pass) (element.Node, error) {
	out, _, err := p.walk(n, newScope(""), "")
	return out, err
}

// keyedType stands in for the type of a keyed child set in identities.
const keyedType = "keyed"

// walk returns the resolved node and whether it differs from n.
// hint is an identity for an unkeyed element, if the caller knows better
// than the structural one.
func (p *Pass) walk(n element.Node, sc *scope, hint string) (element.Node, bool, error) {
	switch x := n.(type) {
	case *element.Element:
		if x == nil {
			return n, false, nil
		}
		return p.walkElement(x, sc, hint, "")
	case []element.Node:
		return p.walkList(x, sc)
	case []*element.Element:
		list := make([]element.Node, len(x))
		for i, e := range x {
			list[i] = e
		}
		out, changed, err := p.walkList(list, sc)
		if err != nil || !changed {
			return n, false, err
		}
		elems := make([]*element.Element, len(x))
		for i, e := range out.([]element.Node) {
			elems[i], _ = e.(*element.Element)
		}
		return elems, true, nil
	case element.Keyed:
		return p.walkKeyed(x, sc)
	case element.ChildFunc:
		return p.wrapFunc(x, sc), true, nil
	case func(args ...any) element.Node:
		return (func(args ...any) element.Node)(p.wrapFunc(x, sc)), true, nil
	}
	return n, false, nil
}

// walkList resolves a list of nodes. Only the outermost list of children
// built by element.New has a fixed length, every other list counts as
// dynamic and its styled elements should have keys.
func (p *Pass) walkList(list []element.Node, sc *scope) (element.Node, bool, error) {
	dynamic := sc.depth > 0 || !sc.static
	sc.depth++
	if dynamic {
		sc.dynamic++
	}
	defer func() {
		sc.depth--
		if dynamic {
			sc.dynamic--
		}
	}()
	var out []element.Node
	for i, c := range list {
		r, changed, err := p.walk(c, sc, "")
		if err != nil {
			return nil, false, err
		}
		if changed && out == nil {
			out = make([]element.Node, len(list))
			copy(out, list[:i])
		}
		if out != nil {
			out[i] = r
		}
	}
	if out == nil {
		return list, false, nil
	}
	return out, true, nil
}

// walkKeyed resolves a keyed child set. An unkeyed element of the set is
// identified by its map key, below the parent and the position of the set.
func (p *Pass) walkKeyed(children element.Keyed, sc *scope) (element.Node, bool, error) {
	n := sc.ordinals[keyedType]
	sc.ordinals[keyedType] = n + 1
	base := keyedType + "#" + strconv.Itoa(n)
	if sc.parent != "" {
		base = sc.parent + "/" + base
	}
	out := make(element.Keyed, len(children))
	anyChange := false
	for _, k := range children.SortedKeys() {
		r, changed, err := p.walk(children[k], sc, base+"/"+k)
		if err != nil {
			return nil, false, err
		}
		out[k] = r
		anyChange = anyChange || changed
	}
	if !anyChange {
		return children, false, nil
	}
	return out, true, nil
}

// wrapFunc returns a function child which resolves what f returns. The
// receiving component may call it any number of times, each call being
// resolved afresh.
func (p *Pass) wrapFunc(f element.ChildFunc, sc *scope) element.ChildFunc {
	n := sc.ordinals["fn"]
	sc.ordinals["fn"] = n + 1
	id := "fn#" + strconv.Itoa(n)
	if sc.parent != "" {
		id = sc.parent + "/" + id
	}
	id = FuncPrefix + id
	return func(args ...any) element.Node {
		sub := *p
		sub.explicit = make(map[string]bool)
		fsc := newScope(id)
		fsc.keyPrefix = FuncPrefix
		out, _, err := sub.walk(f(args...), fsc, "")
		if err != nil {
			element.Abort(err)
		}
		return out
	}
}

// walkElement resolves an element. If fixed is set, it is the identity of
// the element.
func (p *Pass) walkElement(e *element.Element, sc *scope, hint, fixed string) (element.Node, bool, error) {
	id := fixed
	if id == "" {
		if e.Key == "" && hint != "" {
			id = p.identity(sc, element.TypeName(e.Type), hint, false)
		} else {
			id = p.identity(sc, element.TypeName(e.Type), e.Key, true)
		}
	}
	if element.Truthy(e.Props[IgnoreProp]) {
		return e, false, nil
	}
	if c, ok := e.Type.(element.Component); ok && element.IsEnhanced(c) {
		return e, false, nil
	}
	p.seen[id] = true
	var props element.Props // copy on write
	set := func(k string, v any) {
		if props == nil {
			props = e.Props.Clone()
		}
		props[k] = v
	}
	if ch, ok := e.Props["children"]; ok {
		csc := sc.child(id)
		csc.static = e.StaticChildren()
		r, changed, err := p.walk(ch, csc, "")
		if err != nil {
			return nil, false, err
		}
		if changed {
			set("children", r)
		}
	}
	for _, k := range elementProps(e.Props) {
		v := e.Props[k]
		psc := sc.child(id + "/@" + k)
		var r element.Node
		var changed bool
		var err error
		if pe, ok := v.(*element.Element); ok && pe != nil && pe.Key == "" {
			r, changed, err = p.walkElement(pe, psc, "", id+"/@"+k)
		} else {
			r, changed, err = p.walk(v, psc, "")
		}
		if err != nil {
			return nil, false, err
		}
		if changed {
			set(k, r)
		}
	}
	if _, host := e.Type.(string); host {
		if raw, styled := e.Props["style"]; styled && raw != nil {
			if sc.dynamic > 0 && e.Key == "" && hint == "" {
				tracer().Infof("resolve: %s: styled element %s in a list of children has no key", p.Component, id)
			}
			s, add, err := p.Pipeline.Run(p.context(id, e.Props, raw))
			if err != nil {
				return nil, false, err
			}
			set("style", s)
			for k, v := range add {
				set(k, compose(e.Props[k], v))
			}
		}
	}
	if props == nil {
		return e, false, nil
	}
	return e.WithProps(props), true, nil
}

func (p *Pass) context(id string, props element.Props, raw any) *plugins.Context {
	pc := &plugins.Context{
		ComponentName: p.Component,
		Key:           id,
		Props:         props,
		Raw:           raw,
		Config:        p.Config,
		Env:           p.Env,
		Instance:      p.Instance,
	}
	return pc.WithPrefixer(p.prefixer)
}

// elementProps lists the props besides children holding elements, sorted.
func elementProps(props element.Props) []string {
	var keys []string
	for k, v := range props {
		if k == "children" || k == "style" {
			continue
		}
		switch x := v.(type) {
		case *element.Element:
			if x != nil {
				keys = append(keys, k)
			}
		case []element.Node, []*element.Element, element.Keyed, element.ChildFunc:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// compose chains a user handler and a synthesized one, user handler first.
// Anything else added by the pipeline replaces the user's prop.
func compose(user, added any) any {
	u, a := element.AsHandler(user), element.AsHandler(added)
	if u == nil || a == nil {
		return added
	}
	return element.Handler(func(ev *element.Event) {
		u(ev)
		a(ev)
	})
}
