package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/npillmayer/radium/element"
	"golang.org/x/net/html"
)

// DocumentContext is the context key the document is published under.
const DocumentContext = "document"

const maxPasses = 32

// Errors reported by a Root.
var (
	ErrRenderLoop = errors.New("dom: rendering does not settle")
	ErrUnmounted  = errors.New("dom: root has been unmounted")
	ErrNoNode     = errors.New("dom: no node")
)

// mount is a class component instance, identified by its path in the tree.
// Instances found at the same path in consecutive renders are reused.
type mount struct {
	path      string
	comp      element.Component
	inst      element.Instance
	self      *element.Self
	mounted   bool
	prevProps element.Props
	prevState element.State
}

type refAssignment struct {
	ref    element.Ref
	target any
}

// Root renders an element tree into host nodes.
type Root struct {
	doc       *Document
	element   element.Node
	nodes     []*Node
	mounts    map[string]*mount
	active    map[string]bool // marked during a pass, swept afterwards
	order     []*mount        // instances rendered during the current pass
	refs      []refAssignment
	rendering bool
	dirty     bool
	unmounted bool
	passes    int
	err       error
	html      *html.Node
	byHTML    map[*html.Node]*Node
}

// Render mounts an element tree.
func (d *Document) Render(n element.Node) (*Root, error) {
	r := &Root{
		doc:     d,
		element: n,
		mounts:  make(map[string]*mount),
	}
	r.err = r.render()
	return r, r.err
}

// Document returns the document a root renders into.
func (r *Root) Document() *Document {
	return r.doc
}

// Update replaces the element tree and re-renders.
func (r *Root) Update(n element.Node) error {
	if r.unmounted {
		return ErrUnmounted
	}
	r.element = n
	r.err = r.render()
	return r.err
}

// Err returns the error of the most recent render.
func (r *Root) Err() error {
	return r.err
}

// Nodes returns the top-level host nodes.
func (r *Root) Nodes() []*Node {
	return r.nodes
}

// Passes returns the number of render passes so far.
func (r *Root) Passes() int {
	return r.passes
}

// Invalidate schedules a re-render. Called through element.Self.
// During a render, the request is deferred to a follow-up pass.
func (r *Root) Invalidate(self *element.Self) {
	if r.unmounted {
		return
	}
	if r.rendering {
		r.dirty = true
		return
	}
	if err := r.render(); err != nil {
		r.err = err
	}
}

func (r *Root) render() error {
	r.rendering = true
	defer func() { r.rendering = false }()
	for i := 0; i < maxPasses; i++ {
		r.dirty = false
		if err := r.pass(); err != nil {
			tracer().Errorf("dom: render failed: %v", err)
			return err
		}
		r.commit()
		if !r.dirty {
			return nil
		}
	}
	return ErrRenderLoop
}

func (r *Root) pass() (err error) {
	defer element.Recover(&err)
	r.passes++
	r.active = make(map[string]bool)
	r.order = r.order[:0]
	r.refs = r.refs[:0]
	ctx := element.Context{DocumentContext: r.doc}
	r.nodes = r.renderNode(r.element, "", ctx)
	r.sweep()
	return nil
}

// commit runs after a successful pass: refs are set, then instances are
// notified, children before parents.
func (r *Root) commit() {
	r.project()
	for _, ra := range r.refs {
		assignRef(ra.ref, ra.target)
	}
	for i := len(r.order) - 1; i >= 0; i-- {
		m := r.order[i]
		if m.self.Detached() {
			continue
		}
		if !m.mounted {
			m.mounted = true
			if x, ok := m.inst.(element.Mounter); ok {
				x.DidMount(m.self)
			}
		} else if x, ok := m.inst.(element.Updater); ok {
			x.DidUpdate(m.self, m.prevProps, m.prevState)
		}
		m.prevProps, m.prevState = m.self.Props, m.self.State
	}
}

func (r *Root) sweep() {
	var gone []string
	for path := range r.mounts {
		if !r.active[path] {
			gone = append(gone, path)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(gone))) // children first
	for _, path := range gone {
		r.unmountAt(path)
	}
}

func (r *Root) unmountAt(path string) {
	m, ok := r.mounts[path]
	if !ok {
		return
	}
	delete(r.mounts, path)
	tracer().Debugf("dom: unmounting %s at %s", element.TypeName(m.comp), path)
	if x, ok := m.inst.(element.Unmounter); ok {
		x.WillUnmount(m.self)
	}
	m.self.Detach()
}

// Unmount unmounts all instances and clears the tree.
func (r *Root) Unmount() {
	if r.unmounted {
		return
	}
	paths := make([]string, 0, len(r.mounts))
	for path := range r.mounts {
		paths = append(paths, path)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	for _, path := range paths {
		r.unmountAt(path)
	}
	r.unmounted = true
	r.nodes = nil
	r.project()
}

// --- Rendering -------------------------------------------------------------

func (r *Root) renderNode(n element.Node, path string, ctx element.Context) []*Node {
	switch x := n.(type) {
	case nil, bool:
		return nil
	case string:
		return []*Node{{Tag: TextTag, Text: x}}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return []*Node{{Tag: TextTag, Text: fmt.Sprint(x)}}
	case *element.Element:
		if x == nil {
			return nil
		}
		return r.renderElement(x, path, ctx)
	case []element.Node:
		return r.renderList(x, path, ctx)
	case []*element.Element:
		list := make([]element.Node, len(x))
		for i, e := range x {
			list[i] = e
		}
		return r.renderList(list, path, ctx)
	case element.Keyed:
		var out []*Node
		for _, k := range x.SortedKeys() {
			out = append(out, r.renderNode(x[k], path+"/{"+k+"}", ctx)...)
		}
		return out
	case element.ChildFunc:
		tracer().Infof("dom: child function at %s cannot be rendered directly", path)
		return nil
	}
	tracer().Infof("dom: cannot render value of type %T at %s", n, path)
	return nil
}

func (r *Root) renderList(list []element.Node, path string, ctx element.Context) []*Node {
	var out []*Node
	keys := make(map[string]bool)
	for i, c := range list {
		seg := strconv.Itoa(i)
		if e, ok := c.(*element.Element); ok && e != nil && e.Key != "" {
			if keys[e.Key] {
				tracer().Infof("dom: duplicate key %q at %s", e.Key, path)
			} else {
				keys[e.Key] = true
				seg = "k:" + e.Key
			}
		}
		out = append(out, r.renderNode(c, path+"/"+seg, ctx)...)
	}
	return out
}

func (r *Root) renderElement(e *element.Element, path string, ctx element.Context) []*Node {
	switch t := e.Type.(type) {
	case string:
		n := &Node{Tag: t, Key: e.Key, Props: e.Props.Without("children")}
		for _, c := range r.renderNode(e.Children(), path+"/"+t, ctx) {
			c.Parent = n
			n.Children = append(n.Children, c)
		}
		if e.Ref != nil {
			r.refs = append(r.refs, refAssignment{ref: e.Ref, target: n})
		}
		return []*Node{n}
	case element.FragmentType:
		return r.renderNode(e.Children(), path, ctx)
	case *element.Func:
		props := element.WithDefaults(t.DefaultProps, e.Props)
		return r.renderNode(t.Render(props), path+"/"+element.TypeName(t), ctx)
	case *element.ForwardRef:
		props := element.WithDefaults(t.DefaultProps, e.Props)
		return r.renderNode(t.Render(props, e.Ref), path+"/"+element.TypeName(t), ctx)
	case *element.Memo:
		inner := &element.Element{Type: t.Inner, Key: e.Key, Ref: e.Ref, Props: e.Props}
		return r.renderElement(inner, path, ctx)
	case *element.Class:
		return r.renderClass(t, e, path, ctx)
	}
	tracer().Errorf("dom: unknown element type %T at %s", e.Type, path)
	return nil
}

func (r *Root) renderClass(c *element.Class, e *element.Element, path string, ctx element.Context) []*Node {
	props := element.WithDefaults(c.DefaultProps, e.Props)
	if props == nil {
		props = element.Props{}
	}
	m := r.mounts[path]
	if m != nil && m.comp != c {
		r.unmountAt(path)
		m = nil
	}
	if m == nil {
		m = &mount{path: path, comp: c, inst: c.New(), self: element.NewSelf(props, ctx)}
		m.self.Attach(r)
		r.mounts[path] = m
		tracer().Debugf("dom: new instance of %s at %s", element.TypeName(c), path)
	}
	r.active[path] = true
	m.self.Props, m.self.Context = props, ctx
	r.order = append(r.order, m)
	out := m.inst.Render(m.self)
	childCtx := ctx
	if cp, ok := m.inst.(element.ContextProvider); ok {
		if add := cp.ChildContext(m.self); len(add) > 0 {
			childCtx = make(element.Context, len(ctx)+len(add))
			for k, v := range ctx {
				childCtx[k] = v
			}
			for k, v := range add {
				childCtx[k] = v
			}
		}
	}
	if e.Ref != nil {
		r.refs = append(r.refs, refAssignment{ref: e.Ref, target: m.inst})
	}
	return r.renderNode(out, path+"/"+element.TypeName(c), childCtx)
}

func assignRef(ref element.Ref, target any) {
	switch x := ref.(type) {
	case element.RefFunc:
		x(target)
	case func(any):
		x(target)
	case *element.RefObject:
		x.Current = target
	default:
		tracer().Infof("dom: ignoring ref of type %T", ref)
	}
}

// --- Events ----------------------------------------------------------------

// Simulate delivers an event to a node: the node's handler prop for the
// event type is called, then document listeners for the type are notified.
// Re-renders caused by the event complete before Simulate returns; their
// error, if any, is returned. Nodes are replaced on re-render, so callers
// should look them up again afterwards.
func (r *Root) Simulate(n *Node, typ string, ev *element.Event) error {
	if r.unmounted {
		return ErrUnmounted
	}
	if n == nil {
		return fmt.Errorf("%w for %s event", ErrNoNode, typ)
	}
	if ev == nil {
		ev = &element.Event{}
	}
	ev.Type, ev.Target = typ, n
	r.err = nil
	if h := n.Handler(HandlerProp(typ)); h != nil {
		h(ev)
	}
	r.doc.Dispatch(typ, ev)
	return r.err
}
