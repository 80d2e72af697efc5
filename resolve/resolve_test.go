package resolve

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/media"
	"github.com/npillmayer/radium/plugins"
	"github.com/npillmayer/radium/state"
	"github.com/npillmayer/radium/style"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type instance struct {
	store *state.Store
}

func newInstance() *instance {
	return &instance{store: state.New("test", nil)}
}

func (in *instance) GetState(key, value string) bool      { return in.store.Get(key, value) }
func (in *instance) SetState(key, value string, on bool)  { in.store.Set(key, value, on) }
func (in *instance) Activate(key string, viaPointer bool) { in.store.Activate(key, viaPointer) }
func (in *instance) SubscribeRelease()                    {}
func (in *instance) HasStyleRoot() bool                   { return true }

func (in *instance) SubscribeMedia(string, media.MatchFunc) bool { return false }

var hoverStyle = style.Style{"color": "red", ":hover": style.Style{"color": "blue"}}

func button(key string, children ...element.Node) *element.Element {
	props := element.Props{"style": hoverStyle}
	if key != "" {
		props["key"] = key
	}
	return element.New("button", props, children...)
}

func TestStructuralIdentities(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.resolve")
	defer teardown()
	//
	tree := element.New("div", nil,
		button(""),
		element.New("span", nil, "text"),
		button(""),
		button("save"),
	)
	p := NewPass("Toolbar", nil, newInstance(), plugins.Config{}, nil)
	_, err := Walk(tree, p)
	require.NoError(t, err)
	for _, id := range []string{"div#0", "div#0/button#0", "div#0/span#0", "div#0/button#1", "save"} {
		if !p.Seen()[id] {
			t.Errorf("expected identity %q to be seen, isn't: %v", id, p.Seen())
		}
	}
	assert.Len(t, p.Seen(), 5)
}

func TestDuplicateKeysFallBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.resolve")
	defer teardown()
	//
	tree := element.New("div", nil, button("x"), button("x"))
	p := NewPass("Dup", nil, newInstance(), plugins.Config{}, nil)
	_, err := Walk(tree, p)
	require.NoError(t, err)
	assert.True(t, p.Seen()["x"])
	assert.True(t, p.Seen()["div#0/button#1"])
}

func TestStateAppliesToItsElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.resolve")
	defer teardown()
	//
	in := newInstance()
	in.store.Put("div#0/button#1", style.Hover, true)
	tree := element.New("div", nil, button(""), button(""))
	out, err := Walk(tree, NewPass("Pair", nil, in, plugins.Config{}, nil))
	require.NoError(t, err)
	kids := out.(*element.Element).Children().([]element.Node)
	require.Len(t, kids, 2)
	assert.Equal(t, style.Style{"color": "red"}, kids[0].(*element.Element).Props["style"])
	assert.Equal(t, style.Style{"color": "blue"}, kids[1].(*element.Element).Props["style"])
	// input is left alone
	assert.Equal(t, hoverStyle, tree.Children().([]element.Node)[1].(*element.Element).Props["style"])
}

func TestShapeIsKept(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.resolve")
	defer teardown()
	//
	plain := element.New("ul", nil,
		[]element.Node{element.New("li", nil, "a"), element.New("li", nil, "b")},
		element.Keyed{"x": element.New("li", nil, "x")},
	)
	p := NewPass("List", nil, newInstance(), plugins.Config{}, nil)
	out, err := Walk(plain, p)
	require.NoError(t, err)
	if out != element.Node(plain) {
		t.Errorf("expected unstyled tree to be returned as is")
	}
	styled := element.New("ul", nil,
		[]element.Node{button("a"), "text", nil},
		element.Keyed{"k": button("")},
	)
	out, err = Walk(styled, NewPass("List", nil, newInstance(), plugins.Config{}, nil))
	require.NoError(t, err)
	kids := out.(*element.Element).Children().([]element.Node)
	require.Len(t, kids, 2)
	list, ok := kids[0].([]element.Node)
	require.True(t, ok, "nested list stays a list")
	assert.Len(t, list, 3)
	assert.Equal(t, "text", list[1])
	keyed, ok := kids[1].(element.Keyed)
	require.True(t, ok, "keyed children stay keyed")
	assert.Equal(t, style.Style{"color": "red"}, keyed["k"].(*element.Element).Props["style"])
}

func TestIgnoredAndEnhancedAreSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.resolve")
	defer teardown()
	//
	enhanced := &element.Class{DisplayName: "Fancy", Enhanced: true}
	ignored := element.New("div", element.Props{IgnoreProp: true, "style": hoverStyle})
	child := element.New(enhanced, element.Props{"style": hoverStyle})
	tree := element.New("section", nil, ignored, child)
	p := NewPass("Skip", nil, newInstance(), plugins.Config{}, nil)
	out, err := Walk(tree, p)
	require.NoError(t, err)
	if out != element.Node(tree) {
		t.Errorf("expected tree to be unchanged")
	}
	assert.Len(t, p.Seen(), 1)
}

func TestHandlersAreComposed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.resolve")
	defer teardown()
	//
	in := newInstance()
	var calls []string
	user := element.Handler(func(*element.Event) {
		calls = append(calls, "user")
		if in.store.Get("b", style.Hover) {
			calls = append(calls, "already hovered")
		}
	})
	tree := element.New("button", element.Props{"key": "b", "style": hoverStyle, "onMouseEnter": user})
	out, err := Walk(tree, NewPass("Btn", nil, in, plugins.Config{}, nil))
	require.NoError(t, err)
	h := element.AsHandler(out.(*element.Element).Props["onMouseEnter"])
	require.NotNil(t, h)
	h(&element.Event{Type: "mouseenter"})
	assert.Equal(t, []string{"user"}, calls)
	assert.True(t, in.store.Get("b", style.Hover))
}

func TestFunctionChildrenAreResolved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.resolve")
	defer teardown()
	//
	in := newInstance()
	in.store.Put("fn:List#0/fn#0/button#0", style.Hover, true)
	render := element.ChildFunc(func(args ...any) element.Node {
		return button("", args...)
	})
	list := &element.Func{DisplayName: "List"}
	tree := element.New(list, nil, render)
	p := NewPass("Outer", nil, in, plugins.Config{}, nil)
	out, err := Walk(tree, p)
	require.NoError(t, err)
	wrapped, ok := out.(*element.Element).Children().(element.ChildFunc)
	require.True(t, ok)
	got := wrapped("label").(*element.Element)
	assert.Equal(t, style.Style{"color": "blue"}, got.Props["style"])
	assert.Equal(t, "label", got.Children())
	assert.True(t, p.Seen()["fn:List#0/fn#0/button#0"])
}

func TestElementValuedProps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.resolve")
	defer teardown()
	//
	card := &element.Func{DisplayName: "Card"}
	icon := element.New("i", element.Props{"style": hoverStyle})
	tree := element.New(card, element.Props{"icon": icon})
	p := NewPass("Outer", nil, newInstance(), plugins.Config{}, nil)
	out, err := Walk(tree, p)
	require.NoError(t, err)
	assert.True(t, p.Seen()["Card#0/@icon"], "seen: %v", p.Seen())
	resolved := out.(*element.Element).Props["icon"].(*element.Element)
	assert.Equal(t, style.Style{"color": "red"}, resolved.Props["style"])
}

func TestPipelineErrorsStopTheWalk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.resolve")
	defer teardown()
	//
	boom := errors.New("boom")
	failing := plugins.Adapt("failing", func(style.Style, *plugins.Context) (*plugins.Result, error) {
		return nil, boom
	})
	pipeline := plugins.NewPipeline(nil, 0, failing)
	_, err := Walk(button("x"), NewPass("Err", pipeline, newInstance(), plugins.Config{}, nil))
	assert.ErrorIs(t, err, boom)
}

// recorder keeps the info messages of the resolve trace.
type recorder struct {
	tracing.Trace
	infos []string
}

func (r *recorder) Infof(msg string, args ...interface{}) {
	r.infos = append(r.infos, fmt.Sprintf(msg, args...))
	r.Trace.Infof(msg, args...)
}

func (r *recorder) count(substr string) int {
	n := 0
	for _, m := range r.infos {
		if strings.Contains(m, substr) {
			n++
		}
	}
	return n
}

func record(t *testing.T) *recorder {
	rec := &recorder{Trace: tracing.Select("radium.resolve")}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return rec }))
	t.Cleanup(func() {
		tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return rec.Trace }))
	})
	return rec
}

func TestUnkeyedListsAreReported(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.resolve")
	defer teardown()
	rec := record(t)
	//
	items := []element.Node{button(""), button("")}
	_, err := Walk(element.New("ul", nil, items), NewPass("Items", nil, newInstance(), plugins.Config{}, nil))
	require.NoError(t, err)
	assert.Equal(t, 2, rec.count("has no key"), "a slice of children may change in length: %v", rec.infos)
	//
	rec.infos = nil
	_, err = Walk(element.New("ul", nil, button(""), button("")), NewPass("Fixed", nil, newInstance(), plugins.Config{}, nil))
	require.NoError(t, err)
	assert.Equal(t, 0, rec.count("has no key"), "children given one by one are fixed: %v", rec.infos)
	//
	rec.infos = nil
	tree := element.New("ul", nil, element.New("li", nil, "head"), []element.Node{button("a"), button("")})
	_, err = Walk(tree, NewPass("Nested", nil, newInstance(), plugins.Config{}, nil))
	require.NoError(t, err)
	assert.Equal(t, 1, rec.count("has no key"), "only the unkeyed button: %v", rec.infos)
	assert.Equal(t, 1, rec.count("ul#0/button#1"), "%v", rec.infos)
}

func TestKeyedSetsAreScopedToTheirParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.resolve")
	defer teardown()
	rec := record(t)
	//
	set := func() element.Keyed {
		return element.Keyed{"nav": button(""), "main": button("")}
	}
	tree := element.New("div", nil,
		element.New("header", nil, set()),
		element.New("footer", nil, set()),
	)
	p := NewPass("Layout", nil, newInstance(), plugins.Config{}, nil)
	_, err := Walk(tree, p)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.count("duplicate key"), "%v", rec.infos)
	for _, id := range []string{
		"div#0/header#0/keyed#0/nav", "div#0/header#0/keyed#0/main",
		"div#0/footer#0/keyed#0/nav", "div#0/footer#0/keyed#0/main",
	} {
		assert.True(t, p.Seen()[id], "expected identity %q, seen: %v", id, p.Seen())
	}
}
