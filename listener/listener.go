package listener

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sync"

	"github.com/npillmayer/radium/dom"
	"github.com/npillmayer/radium/element"
)

// EventTarget is where the shared listener registers itself.
type EventTarget interface {
	AddEventListener(typ string, fn dom.Listener) (remove func())
}

// Token identifies a subscription.
type Token uint64

type subscription struct {
	token Token
	fn    func()
}

// Listener is a reference-counted document listener for one event type.
type Listener struct {
	mu     sync.Mutex
	target EventTarget
	event  string
	subs   []subscription
	next   Token
	remove func()
}

// New creates a shared listener for events of type event on target.
// Nothing is registered with the target before the first subscription.
func New(target EventTarget, event string) *Listener {
	return &Listener{target: target, event: event}
}

var (
	defaultOnce     sync.Once
	defaultListener *Listener
)

// Default returns the shared mouse release listener of the default
// document.
func Default() *Listener {
	defaultOnce.Do(func() {
		defaultListener = New(dom.Default(), "mouseup")
	})
	return defaultListener
}

// Subscribe adds fn to the subscribers. The first subscription registers
// the document listener.
func (l *Listener) Subscribe(fn func()) Token {
	l.mu.Lock()
	l.next++
	tok := l.next
	l.subs = append(l.subs, subscription{token: tok, fn: fn})
	register := l.remove == nil
	if register {
		l.remove = func() {} // placeholder until registered
	}
	l.mu.Unlock()
	if register {
		remove := l.target.AddEventListener(l.event, l.dispatch)
		l.mu.Lock()
		l.remove = remove
		l.mu.Unlock()
		tracer().Debugf("listener: registered %s listener", l.event)
	}
	return tok
}

// Unsubscribe removes a subscription. Removing the last subscription
// removes the document listener. Unknown tokens are ignored.
func (l *Listener) Unsubscribe(tok Token) {
	l.mu.Lock()
	for i, s := range l.subs {
		if s.token == tok {
			l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
			break
		}
	}
	var remove func()
	if len(l.subs) == 0 && l.remove != nil {
		remove, l.remove = l.remove, nil
	}
	l.mu.Unlock()
	if remove != nil {
		remove()
		tracer().Debugf("listener: removed %s listener", l.event)
	}
}

// Count returns the number of subscribers.
func (l *Listener) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}

// Registered tells if the document listener is currently registered.
func (l *Listener) Registered() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.remove != nil
}

// dispatch notifies the subscribers present when the event arrived, in
// subscription order. A subscriber removed by an earlier one is skipped.
func (l *Listener) dispatch(*element.Event) {
	l.mu.Lock()
	subs := append([]subscription(nil), l.subs...)
	l.mu.Unlock()
	for _, s := range subs {
		if l.live(s.token) {
			s.fn()
		}
	}
}

func (l *Listener) live(tok Token) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.subs {
		if s.token == tok {
			return true
		}
	}
	return false
}
