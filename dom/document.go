package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"

	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/media"
)

// Listener is a document-level event listener.
type Listener func(*element.Event)

type registration struct {
	fn      Listener
	removed bool
}

// Document is the global environment of a set of roots.
type Document struct {
	UserAgent string
	Screen    *Screen
	mu        sync.Mutex
	listeners map[string][]*registration
	visited   map[string]bool
}

// NewDocument creates a document with a desktop-sized screen and no user
// agent.
func NewDocument() *Document {
	return &Document{
		Screen:    NewScreen(media.Features{Type: "screen", Width: 1024, Height: 768}),
		listeners: make(map[string][]*registration),
		visited:   make(map[string]bool),
	}
}

var defaultDocument = NewDocument()

// Default returns the process-wide document.
func Default() *Document {
	return defaultDocument
}

// AddEventListener registers fn for events of type typ. It returns a
// function to remove the listener again.
func (d *Document) AddEventListener(typ string, fn Listener) (remove func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	reg := &registration{fn: fn}
	d.listeners[typ] = append(d.listeners[typ], reg)
	tracer().Debugf("dom: added %s listener, now %d", typ, len(d.listeners[typ]))
	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if reg.removed {
			return
		}
		reg.removed = true
		regs := d.listeners[typ]
		for i, r := range regs {
			if r == reg {
				d.listeners[typ] = append(regs[:i:i], regs[i+1:]...)
				break
			}
		}
	}
}

// ListenerCount returns the number of listeners for an event type.
func (d *Document) ListenerCount(typ string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[typ])
}

// Dispatch delivers an event to the listeners registered at the time of the
// call. A listener removed during dispatch is not called.
func (d *Document) Dispatch(typ string, ev *element.Event) {
	if ev == nil {
		ev = &element.Event{}
	}
	if ev.Type == "" {
		ev.Type = typ
	}
	d.mu.Lock()
	regs := append([]*registration(nil), d.listeners[typ]...)
	d.mu.Unlock()
	for _, r := range regs {
		d.mu.Lock()
		removed := r.removed
		d.mu.Unlock()
		if !removed {
			r.fn(ev)
		}
	}
}

// Visit records a link as visited.
func (d *Document) Visit(href string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.visited[href] = true
}

// Visited tells if a link has been visited.
func (d *Document) Visited(href string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visited[href]
}

// MatchMedia returns the live media query list for a query.
func (d *Document) MatchMedia(query string) media.List {
	return d.Screen.MatchMedia(query)
}

// Agent returns the user agent string of the document.
func (d *Document) Agent() string {
	return d.UserAgent
}
