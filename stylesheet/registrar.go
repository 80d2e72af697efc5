package stylesheet

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/radium/prefix"
	"github.com/npillmayer/radium/stylesheet/cssom"
	"github.com/npillmayer/radium/stylesheet/cssom/douceuradapter"
)

// DefaultAnimationName is used for keyframes registered without a name.
const DefaultAnimationName = "radium-animation"

// Registrar holds the generated CSS of a document.
type Registrar struct {
	mu       sync.Mutex
	prefixer *prefix.Prefixer
	frames   map[string]string // animation name → rendered frames
	blocks   []*block
	nextID   int
	subs     map[int]func()
	nextSub  int
}

type block struct {
	id      int
	css     string
	removed bool
}

// NewRegistrar creates a registrar. Keyframes are prefixed for the given
// user agent; an empty user agent emits all prefixed variants.
func NewRegistrar(userAgent string) *Registrar {
	return &Registrar{
		prefixer: prefix.New(userAgent),
		frames:   make(map[string]string),
		subs:     make(map[int]func()),
	}
}

var defaultRegistrar = NewRegistrar("")

// Default returns the process-wide registrar.
func Default() *Registrar {
	return defaultRegistrar
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// RegisterKeyframes adds a @keyframes rule and returns the animation name
// to use. The name is derived from the suggested name: if the name is taken
// by different frames, a numeric suffix is appended ("pulse-1", "pulse-2").
// Registering identical frames under the same suggested name returns the
// existing name and adds nothing.
func (r *Registrar) RegisterKeyframes(frames Keyframes, name string) string {
	base := strings.Trim(unsafeName.ReplaceAllString(strings.TrimSpace(name), "-"), "-")
	if base == "" {
		base = DefaultAnimationName
	}
	r.mu.Lock()
	body := RenderKeyframes(frames, r.prefixer)
	candidate := base
	for i := 1; ; i++ {
		existing, taken := r.frames[candidate]
		if !taken {
			break
		}
		if existing == body {
			r.mu.Unlock()
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	r.frames[candidate] = body
	r.add("@keyframes " + candidate + "{" + body + "}")
	r.mu.Unlock()
	tracer().Debugf("stylesheet: registered keyframes %q", candidate)
	r.notify()
	return candidate
}

// Handle refers to a rule set added to a registrar.
type Handle struct {
	reg *Registrar
	b   *block
}

// AddRules adds a rule set, rendered for the given scope and user agent.
func (r *Registrar) AddRules(rules Rules, scope, userAgent string) *Handle {
	css := RenderRules(rules, scope, prefix.New(userAgent))
	r.mu.Lock()
	b := r.add(css)
	r.mu.Unlock()
	if css != "" {
		r.notify()
	}
	return &Handle{reg: r, b: b}
}

func (r *Registrar) add(css string) *block {
	r.nextID++
	b := &block{id: r.nextID, css: css}
	r.blocks = append(r.blocks, b)
	return b
}

// Update re-renders the rule set of a handle. Subscribers are notified only
// if the CSS changed.
func (h *Handle) Update(rules Rules, scope, userAgent string) {
	css := RenderRules(rules, scope, prefix.New(userAgent))
	h.reg.mu.Lock()
	changed := !h.b.removed && h.b.css != css
	if changed {
		h.b.css = css
	}
	h.reg.mu.Unlock()
	if changed {
		h.reg.notify()
	}
}

// Remove drops the rule set of a handle. Removing twice is harmless.
func (h *Handle) Remove() {
	r := h.reg
	r.mu.Lock()
	if h.b.removed {
		r.mu.Unlock()
		return
	}
	h.b.removed = true
	for i, b := range r.blocks {
		if b == h.b {
			r.blocks = append(r.blocks[:i:i], r.blocks[i+1:]...)
			break
		}
	}
	changed := h.b.css != ""
	r.mu.Unlock()
	if changed {
		r.notify()
	}
}

// CSS returns the CSS text, one block per line, in registration order.
func (r *Registrar) CSS() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var parts []string
	for _, b := range r.blocks {
		if b.css != "" {
			parts = append(parts, b.css)
		}
	}
	return strings.Join(parts, "\n")
}

// Animations returns the registered animation names, sorted.
func (r *Registrar) Animations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.frames))
	for n := range r.frames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Sheet parses the CSS text into an object model.
func (r *Registrar) Sheet() (cssom.StyleSheet, error) {
	sheet, err := douceuradapter.Parse(r.CSS())
	if err != nil {
		return nil, err
	}
	return sheet, nil
}

// Subscribe registers fn to be called after every change of the CSS text.
// The returned function cancels the subscription.
func (r *Registrar) Subscribe(fn func()) (cancel func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextSub++
	id := r.nextSub
	r.subs[id] = fn
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

func (r *Registrar) notify() {
	r.mu.Lock()
	ids := make([]int, 0, len(r.subs))
	for id := range r.subs {
		ids = append(ids, id)
	}
	r.mu.Unlock()
	sort.Ints(ids)
	for _, id := range ids {
		r.mu.Lock()
		fn, ok := r.subs[id]
		r.mu.Unlock()
		if ok {
			fn()
		}
	}
}
