package element

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

type countingHost struct{ n int }

func (h *countingHost) Invalidate(*Self) { h.n++ }

func TestNewLiftsKeyAndRef(t *testing.T) {
	ref := &RefObject{}
	e := New("div", Props{"key": "k1", "ref": ref, "id": "x"}, "a", "b")
	assert.Equal(t, "k1", e.Key)
	assert.Same(t, ref, e.Ref)
	assert.Equal(t, []Node{"a", "b"}, e.Children())
	_, hasKey := e.Props["key"]
	assert.False(t, hasKey)
	single := New("span", nil, "text")
	assert.Equal(t, "text", single.Children())
}

func TestStaticChildren(t *testing.T) {
	items := []Node{New("li", nil), New("li", nil)}
	assert.True(t, New("ul", nil, "a", "b").StaticChildren())
	assert.False(t, New("ul", nil, items).StaticChildren(), "a slice handed in as one child")
	assert.True(t, New("ul", nil, items...).StaticChildren())
	assert.False(t, New("ul", nil).StaticChildren())
	e := New("ul", Props{"key": "k"}, "a", "b")
	c := e.WithProps(Props{"children": []Node{"c"}})
	assert.True(t, c.StaticChildren())
	assert.Equal(t, "k", c.Key)
	assert.Equal(t, []Node{"a", "b"}, e.Children(), "original left intact")
}

func TestSetStateAfterDetachIsNoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.element")
	defer teardown()
	//
	h := &countingHost{}
	self := NewSelf(Props{}, nil)
	self.Attach(h)
	self.SetState(State{"a": 1})
	if h.n != 1 || self.State["a"] != 1 {
		t.Fatalf("expected SetState to update and invalidate, n=%d state=%v", h.n, self.State)
	}
	prev := self.State
	self.SetState(State{"a": 2})
	if prev["a"] != 1 {
		t.Errorf("expected previous state map to be left intact, is %v", prev)
	}
	self.Detach()
	self.SetState(State{"a": 3})
	self.ForceUpdate()
	if h.n != 2 || self.State["a"] != 2 {
		t.Errorf("expected no effect after detach, n=%d state=%v", h.n, self.State)
	}
}

func TestAbortRecover(t *testing.T) {
	boom := errors.New("boom")
	run := func() (err error) {
		defer Recover(&err)
		Abort(boom)
		return nil
	}
	assert.ErrorIs(t, run(), boom)
}

func TestTypeNames(t *testing.T) {
	f := &Func{DisplayName: "Button"}
	m := &Memo{Inner: f}
	assert.Equal(t, "Button", TypeName(f))
	assert.Equal(t, "Button", TypeName(m))
	assert.Equal(t, "Fragment", TypeName(Fragment))
	assert.Equal(t, "div", TypeName("div"))
	assert.False(t, IsEnhanced(f))
	assert.True(t, IsEnhanced(&Class{Enhanced: true}))
}
