package radium

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/radium/dom"
	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/media"
	"github.com/npillmayer/radium/plugins"
	"github.com/npillmayer/radium/state"
	"github.com/npillmayer/radium/style"
	"github.com/npillmayer/radium/stylesheet"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	uaSafari8  = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_10_5) AppleWebKit/600.8.9 (KHTML, like Gecko) Version/8.0.8 Safari/600.8.9"
	uaChrome90 = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.93 Safari/537.36"
)

var buttonStyle = style.Style{
	"color":   "black",
	":hover":  style.Style{"color": "blue"},
	":active": style.Style{"color": "red"},
}

func newButton() element.Component {
	return Enhance(&element.Func{
		DisplayName: "Button",
		Render: func(p element.Props) element.Node {
			props := element.Props{"style": buttonStyle}
			if id, ok := p["id"]; ok {
				props["id"] = id
			}
			return element.New("button", props, p["label"])
		},
	})
}

func mount(t *testing.T, doc *dom.Document, n element.Node) *dom.Root {
	root, err := doc.Render(n)
	require.NoError(t, err)
	t.Cleanup(root.Unmount)
	return root
}

func color(root *dom.Root, sel string) any {
	return root.Find(sel).Style()["color"]
}

func simulate(t *testing.T, root *dom.Root, sel, typ string, ev *element.Event) {
	n := root.Find(sel)
	require.NotNil(t, n, "no node for %s", sel)
	require.NoError(t, root.Simulate(n, typ, ev))
}

func TestButtonInteraction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	doc := dom.NewDocument()
	root := mount(t, doc, element.New(newButton(), element.Props{"label": "Save"}))
	assert.Equal(t, `<button style="color:black">Save</button>`, root.HTML())
	simulate(t, root, "button", "mouseenter", nil)
	assert.Equal(t, "blue", color(root, "button"))
	simulate(t, root, "button", "mousedown", nil)
	assert.Equal(t, "red", color(root, "button"))
	simulate(t, root, "button", "mouseup", nil)
	assert.Equal(t, "blue", color(root, "button"), "release clears :active, hover stays")
	simulate(t, root, "button", "mouseleave", nil)
	assert.Equal(t, "black", color(root, "button"))
}

func TestGlobalReleaseClearsPointerActivationOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	doc := dom.NewDocument()
	button := newButton()
	root := mount(t, doc, element.New("div", nil,
		element.New(button, element.Props{"id": "a"}),
		element.New(button, element.Props{"id": "b"}),
	))
	assert.Equal(t, 1, doc.ListenerCount("mouseup"), "one document listener for all instances")
	simulate(t, root, "#a", "mousedown", nil)
	simulate(t, root, "#b", "keydown", &element.Event{Key: " "})
	assert.Equal(t, "red", color(root, "#a"))
	assert.Equal(t, "red", color(root, "#b"))
	doc.Dispatch("mouseup", &element.Event{})
	require.NoError(t, root.Err())
	assert.Equal(t, "black", color(root, "#a"))
	assert.Equal(t, "red", color(root, "#b"), "keyboard activation survives release")
	simulate(t, root, "#b", "keyup", &element.Event{Key: " "})
	assert.Equal(t, "black", color(root, "#b"))
	root.Unmount()
	assert.Equal(t, 0, doc.ListenerCount("mouseup"))
}

func TestEnterKeyActivates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	root := mount(t, dom.NewDocument(), element.New(newButton(), nil))
	simulate(t, root, "button", "keydown", &element.Event{Key: "x"})
	assert.Equal(t, "black", color(root, "button"))
	simulate(t, root, "button", "keydown", &element.Event{Key: "Enter"})
	assert.Equal(t, "red", color(root, "button"))
}

func TestHandlersAfterUnmountAreSilent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	doc := dom.NewDocument()
	root, err := doc.Render(element.New(newButton(), nil))
	require.NoError(t, err)
	enter := root.Find("button").Handler("onMouseEnter")
	require.NotNil(t, enter)
	passes := root.Passes()
	root.Unmount()
	enter(&element.Event{Type: "mouseenter"})
	doc.Dispatch("mouseup", &element.Event{})
	assert.Equal(t, passes, root.Passes())
	assert.NoError(t, root.Err())
}

type hoverLabel struct{}

func (hoverLabel) Render(self *element.Self) element.Node {
	text := "idle"
	if GetState(self.State, "save", style.Hover) {
		text = "hovered"
	}
	return element.New("div", nil,
		element.New("button", element.Props{"key": "save", "style": buttonStyle}, "Save"),
		element.New("span", nil, text),
	)
}

func TestGetStateByKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	label := Enhance(&element.Class{
		DisplayName: "HoverLabel",
		New:         func() element.Instance { return hoverLabel{} },
	})
	root := mount(t, dom.NewDocument(), element.New(label, nil))
	assert.Equal(t, "idle", root.Find("span").TextContent())
	simulate(t, root, "button", "mouseenter", nil)
	assert.Equal(t, "hovered", root.Find("span").TextContent())
	assert.False(t, GetState(nil, "save", style.Hover))
}

func TestStateOfRemovedElementsIsDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	var snap state.Snapshot
	list := Enhance(&element.Class{
		DisplayName: "List",
		New: func() element.Instance {
			return renderFunc(func(self *element.Self) element.Node {
				snap, _ = self.State[state.Field].(state.Snapshot)
				keys, _ := self.Props["keys"].([]string)
				items := make([]element.Node, len(keys))
				for i, k := range keys {
					items[i] = element.New("li", element.Props{"key": k, "style": buttonStyle, "class": k}, k)
				}
				return element.New("ul", nil, element.Node(items))
			})
		},
	})
	doc := dom.NewDocument()
	root := mount(t, doc, element.New(list, element.Props{"keys": []string{"a", "b"}}))
	simulate(t, root, "li.b", "mouseenter", nil)
	assert.True(t, snap.Get("b", style.Hover))
	require.NoError(t, root.Update(element.New(list, element.Props{"keys": []string{"a"}})))
	require.NoError(t, root.Update(element.New(list, element.Props{"keys": []string{"a", "b"}})))
	assert.Equal(t, "black", color(root, "li.b"), "state of b was dropped with the element")
}

type renderFunc func(*element.Self) element.Node

func (f renderFunc) Render(self *element.Self) element.Node { return f(self) }

func TestKeyedChildrenAndArrays(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	menu := Enhance(&element.Func{
		DisplayName: "Menu",
		Render: func(element.Props) element.Node {
			return element.New("ul", nil,
				[]element.Node{
					element.New("li", element.Props{"key": "one", "style": buttonStyle}, "1"),
					element.New("li", element.Props{"key": "two", "style": buttonStyle}, "2"),
				},
				element.Keyed{"last": element.New("li", element.Props{"style": buttonStyle}, "3")},
			)
		},
	})
	root := mount(t, dom.NewDocument(), element.New(menu, nil))
	assert.Equal(t, `<ul><li style="color:black">1</li><li style="color:black">2</li><li style="color:black">3</li></ul>`,
		root.HTML())
	items := root.FindAll("li")
	require.Len(t, items, 3)
	require.NoError(t, root.Simulate(items[1], "mouseenter", nil))
	items = root.FindAll("li")
	assert.Equal(t, "black", items[0].Style()["color"])
	assert.Equal(t, "blue", items[1].Style()["color"])
	require.NoError(t, root.Simulate(items[2], "mouseenter", nil))
	assert.Equal(t, "blue", root.FindAll("li")[2].Style()["color"])
}

func TestCallbackRefsAreKept(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	var got any
	ref := element.RefFunc(func(target any) { got = target })
	c := Enhance(&element.Func{
		DisplayName: "WithRef",
		Render: func(element.Props) element.Node {
			return element.New("input", element.Props{"ref": ref, "style": buttonStyle})
		},
	})
	mount(t, dom.NewDocument(), element.New(c, nil))
	n, ok := got.(*dom.Node)
	require.True(t, ok, "ref receives the host node, got %T", got)
	assert.Equal(t, "input", n.Tag)
}

func TestForwardRefAndMemo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	fancy := &element.ForwardRef{
		DisplayName: "FancyInput",
		Statics:     map[string]any{"version": 2},
		Render: func(p element.Props, ref element.Ref) element.Node {
			return element.New("input", element.Props{"ref": ref, "style": buttonStyle})
		},
	}
	enhanced := Enhance(fancy)
	fr, ok := enhanced.(*element.ForwardRef)
	require.True(t, ok, "forward ref stays a forward ref")
	assert.True(t, element.IsEnhanced(fr))
	assert.False(t, element.IsEnhanced(fancy), "original is not modified")
	assert.Equal(t, 2, element.Statics(fr)["version"])
	assert.Same(t, enhanced, Enhance(enhanced))
	//
	ref := &element.RefObject{}
	root := mount(t, dom.NewDocument(), element.New(enhanced, element.Props{"ref": ref}))
	n, ok := ref.Current.(*dom.Node)
	require.True(t, ok, "ref is forwarded to the input, got %T", ref.Current)
	assert.Equal(t, "input", n.Tag)
	simulate(t, root, "input", "mouseenter", nil)
	assert.Equal(t, "blue", color(root, "input"))
	//
	memo := Enhance(&element.Memo{Inner: &element.Func{
		DisplayName: "Plain",
		Render: func(element.Props) element.Node {
			return element.New("b", element.Props{"style": buttonStyle})
		},
	}})
	m, ok := memo.(*element.Memo)
	require.True(t, ok)
	assert.True(t, element.IsEnhanced(m.Inner))
	root = mount(t, dom.NewDocument(), element.New(memo, nil))
	simulate(t, root, "b", "mouseenter", nil)
	assert.Equal(t, "blue", color(root, "b"))
}

func TestEnhancedClassKeepsDefaultsAndStatics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	orig := &element.Class{
		DisplayName:  "Greeting",
		DefaultProps: element.Props{"name": "world"},
		Statics:      map[string]any{"kind": "greeting"},
		New: func() element.Instance {
			return renderFunc(func(self *element.Self) element.Node {
				return element.New("p", nil, "hello "+self.Props["name"].(string))
			})
		},
	}
	c := Enhance(orig).(*element.Class)
	assert.Equal(t, "Greeting", c.Name())
	assert.Equal(t, orig.DefaultProps, c.DefaultProps)
	c.Statics["kind"] = "changed"
	assert.Equal(t, "greeting", orig.Statics["kind"], "statics are copied")
	root := mount(t, dom.NewDocument(), element.New(c, nil))
	assert.Equal(t, "<p>hello world</p>", root.HTML())
}

func transformer() element.Component {
	return Enhance(&element.Func{
		DisplayName: "Spinner",
		Render: func(element.Props) element.Node {
			return element.New("div", element.Props{"style": style.Style{"transform": "rotate(5deg)"}})
		},
	}, &Config{UserAgent: uaSafari8})
}

func TestConfigPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	spinner := transformer()
	root := mount(t, dom.NewDocument(), element.New(spinner, nil))
	assert.Contains(t, root.Find("div").Style(), "WebkitTransform", "decorator config")
	//
	root = mount(t, dom.NewDocument(), element.New(spinner, element.Props{ConfigProp: &Config{UserAgent: uaChrome90}}))
	assert.Contains(t, root.Find("div").Style(), "transform", "prop config wins")
	//
	parent := Enhance(&element.Func{
		DisplayName: "Parent",
		Render: func(element.Props) element.Node {
			return element.New("section", nil, element.New(spinner, nil))
		},
	})
	root = mount(t, dom.NewDocument(), element.New(parent, element.Props{ConfigProp: &Config{UserAgent: uaChrome90}}))
	assert.Contains(t, root.Find("div").Style(), "transform", "ancestor config wins over decorator config")
	assert.NotContains(t, root.Find("div").Style(), "WebkitTransform")
}

func TestUserAgentFromDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	doc := dom.NewDocument()
	doc.UserAgent = uaSafari8
	c := Enhance(&element.Func{
		DisplayName: "Flex",
		Render: func(element.Props) element.Node {
			return element.New("div", element.Props{"style": style.Style{"display": "flex", "transition": "all 1s"}})
		},
	})
	root := mount(t, doc, element.New(c, nil))
	assert.Equal(t, style.Style{"display": "-webkit-flex", "transition": "all 1s"}, root.Find("div").Style())
}

type rgb struct{ r, g, b int }

func (c rgb) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
}

func TestStyleArraysAndStringers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	c := Enhance(&element.Func{
		DisplayName: "Mixed",
		Render: func(element.Props) element.Node {
			return element.New("p", element.Props{"style": []any{
				style.Style{"color": rgb{1, 2, 3}, "margin": 4},
				nil,
				false,
				style.Style{"margin": 0, ":hover": style.Style{"margin": 8}},
			}})
		},
	})
	root := mount(t, dom.NewDocument(), element.New(c, nil))
	assert.Equal(t, style.Style{"color": "rgb(1,2,3)", "margin": 0}, root.Find("p").Style())
	assert.Equal(t, `<p style="color:rgb(1,2,3);margin:0"></p>`, root.HTML())
}

func TestPluginsFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	pointer := func(s style.Style, pc *plugins.Context) (*plugins.Result, error) {
		if _, ok := pc.Props["onClick"]; !ok {
			return nil, nil
		}
		return &plugins.Result{Style: style.Style{"cursor": "pointer"}}, nil
	}
	c := Enhance(&element.Func{
		DisplayName: "Clickable",
		Render: func(element.Props) element.Node {
			return element.New("a", element.Props{
				"style":   style.Style{"color": "black"},
				"onClick": element.Handler(func(*element.Event) {}),
			})
		},
	}, &Config{Plugins: []plugins.Plugin{pointer}})
	root := mount(t, dom.NewDocument(), element.New(c, nil))
	assert.Equal(t, "pointer", root.Find("a").Style()["cursor"])
	//
	boom := errors.New("boom")
	failing := &Config{Plugins: []plugins.Plugin{func(style.Style, *plugins.Context) (*plugins.Result, error) {
		return nil, boom
	}}}
	_, err := dom.NewDocument().Render(element.New(c, element.Props{ConfigProp: failing}))
	assert.ErrorIs(t, err, boom)
}

func TestMediaQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	const query = "(max-width: 701px)"
	var st element.State
	c := Enhance(&element.Class{
		DisplayName: "Responsive",
		New: func() element.Instance {
			return renderFunc(func(self *element.Self) element.Node {
				st = self.State
				return element.New("nav", element.Props{"style": style.Style{
					"width":          960,
					MediaFlag(query): style.Style{"width": "100%"},
				}})
			})
		},
	})
	doc := dom.NewDocument()
	root := mount(t, doc, element.New(StyleRoot, element.Props{"registrar": stylesheet.NewRegistrar("")},
		element.New(c, nil)))
	assert.Equal(t, 960, root.Find("nav").Style()["width"])
	assert.Equal(t, 1, media.Default().Count(query))
	doc.Screen.Resize(600, 800)
	require.NoError(t, root.Err())
	assert.Equal(t, "100%", root.Find("nav").Style()["width"])
	assert.True(t, GetState(st, state.AllKey, MediaFlag(query)))
	root.Unmount()
	assert.Equal(t, 0, media.Default().Count(query))
}

func TestMediaListsPerDocumentAndConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	const query = "(max-width: 599px)"
	nav := Enhance(&element.Func{
		DisplayName: "Nav",
		Render: func(element.Props) element.Node {
			return element.New("nav", element.Props{"style": style.Style{
				"width":          960,
				MediaFlag(query): style.Style{"width": "100%"},
			}})
		},
	})
	wide := mount(t, dom.NewDocument(), element.New(nav, nil))
	narrowDoc := dom.NewDocument()
	narrowDoc.Screen.Resize(500, 800)
	narrow := mount(t, narrowDoc, element.New(nav, nil))
	phone := &Config{MatchMedia: dom.NewScreen(media.Features{Type: "screen", Width: 320, Height: 480}).MatchMedia}
	custom := mount(t, dom.NewDocument(), element.New(nav, element.Props{ConfigProp: phone}))
	//
	assert.Equal(t, 960, wide.Find("nav").Style()["width"])
	assert.Equal(t, "100%", narrow.Find("nav").Style()["width"])
	assert.Equal(t, "100%", custom.Find("nav").Style()["width"], "configured match function wins over the document")
	assert.Equal(t, 3, media.Default().Lists(query))
	//
	narrowDoc.Screen.Resize(800, 600)
	require.NoError(t, narrow.Err())
	assert.Equal(t, 960, narrow.Find("nav").Style()["width"])
	assert.Equal(t, "100%", custom.Find("nav").Style()["width"])
	//
	wide.Unmount()
	narrow.Unmount()
	custom.Unmount()
	assert.Equal(t, 0, media.Default().Count(query))
}

func TestStyleRootRendersRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	reg := stylesheet.NewRegistrar("")
	rules := stylesheet.Rules{
		"a": style.Style{"color": "red"},
		stylesheet.MediaQueriesKey: map[string]any{
			"(max-width: 600px)": stylesheet.Rules{"a": style.Style{"color": "blue"}},
		},
	}
	app := element.New(StyleRoot, element.Props{"registrar": reg, "className": "app"},
		element.New(Style, element.Props{"rules": rules, "scopeSelector": ".app"}),
		element.New("p", nil, "content"),
	)
	root := mount(t, dom.NewDocument(), app)
	css := root.Find("style").TextContent()
	assert.Equal(t, ".app a{color:red;}@media (max-width: 600px){.app a{color:blue;}}", css)
	assert.NotNil(t, root.Find("div.app > p"))
	//
	require.NoError(t, root.Update(element.New(StyleRoot, element.Props{"registrar": reg, "className": "app"},
		element.New("p", nil, "content"))))
	assert.Equal(t, "", root.Find("style").TextContent(), "rules are removed on unmount")
}

func TestKeyframes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	frames := stylesheet.Keyframes{
		"from": style.Style{"opacity": 0},
		"to":   style.Style{"opacity": 1},
	}
	name := Keyframes(frames, "radium test fade")
	assert.Equal(t, "radium-test-fade", name)
	assert.Equal(t, name, Keyframes(frames, "radium test fade"))
	assert.Contains(t, stylesheet.Default().CSS(), "@keyframes radium-test-fade{")
}

func TestResolveStatic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.engine")
	defer teardown()
	//
	raw := style.Style{
		"color":                     "black",
		":hover":                    style.Style{"color": "blue"},
		":visited":                  style.Style{"color": "purple"},
		"@media (max-width: 500px)": style.Style{"fontSize": 12},
	}
	s, err := ResolveStatic(raw, Static{})
	require.NoError(t, err)
	assert.Equal(t, style.Style{"color": "black"}, s)
	s, err = ResolveStatic(raw, Static{
		States:  []string{style.Hover},
		Visited: true,
		Props:   element.Props{"href": "/x"},
		Screen:  &media.Features{Type: "screen", Width: 400, Height: 800},
	})
	require.NoError(t, err)
	assert.Equal(t, style.Style{"color": "blue", "fontSize": 12}, s)
}
