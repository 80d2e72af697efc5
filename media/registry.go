package media

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"sync"
)

// List is a live media query list offered by a host environment.
type List interface {
	Media() string
	Matches() bool
	AddListener(ListListener)
	RemoveListener(ListListener)
}

// ListListener is notified when a list starts or stops matching.
type ListListener interface {
	MediaChanged(List)
}

// MatchFunc creates the media query list for a query.
type MatchFunc func(query string) List

// Token identifies a subscription.
type Token uint64

// Key identifies a shared list. Source is whatever evaluates the query,
// e.g. a document or a configuration with its own match function. It must
// be comparable.
type Key struct {
	Source any
	Query  string
}

// Registry shares media query lists between subscribers. Lists are keyed by
// source and query; a list is created on first subscription and released
// when its last subscriber unsubscribes.
type Registry struct {
	mu      sync.Mutex
	entries map[Key]*entry
	next    Token
}

type entry struct {
	reg  *Registry
	key  Key
	list List
	subs map[Token]func(bool)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[Key]*entry)}
}

var defaultRegistry = NewRegistry()

// Default is the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Subscribe registers fn for changes of a query. If no list for the key
// exists yet, it is created by calling match. Subscribe returns the current
// matching state and a token for Unsubscribe.
func (r *Registry) Subscribe(key Key, match MatchFunc, fn func(matches bool)) (bool, Token) {
	r.mu.Lock()
	e, ok := r.entries[key]
	if !ok {
		e = &entry{reg: r, key: key, list: match(key.Query), subs: make(map[Token]func(bool))}
		r.entries[key] = e
		if e.list != nil {
			e.list.AddListener(e)
		}
		tracer().Debugf("media: new shared list for %q", key.Query)
	}
	r.next++
	tok := r.next
	e.subs[tok] = fn
	list := e.list
	r.mu.Unlock()
	return list != nil && list.Matches(), tok
}

// Unsubscribe removes a subscription. The shared list of a key is
// released with its last subscriber.
func (r *Registry) Unsubscribe(key Key, tok Token) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[key]
	if !ok {
		return
	}
	delete(e.subs, tok)
	if len(e.subs) == 0 {
		if e.list != nil {
			e.list.RemoveListener(e)
		}
		delete(r.entries, key)
		tracer().Debugf("media: released shared list for %q", key.Query)
	}
}

// Count returns the number of subscribers for a query, over all sources.
func (r *Registry) Count(query string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for k, e := range r.entries {
		if k.Query == query {
			n += len(e.subs)
		}
	}
	return n
}

// Lists returns the number of live lists for a query, one per source.
func (r *Registry) Lists(query string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for k := range r.entries {
		if k.Query == query {
			n++
		}
	}
	return n
}

// Queries returns the queries with live subscriptions, sorted and without
// duplicates.
func (r *Registry) Queries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool, len(r.entries))
	qs := make([]string, 0, len(r.entries))
	for k := range r.entries {
		if !seen[k.Query] {
			seen[k.Query] = true
			qs = append(qs, k.Query)
		}
	}
	sort.Strings(qs)
	return qs
}

// MediaChanged relays a change of the shared list to all subscribers, in
// subscription order.
func (e *entry) MediaChanged(l List) {
	e.reg.mu.Lock()
	toks := make([]Token, 0, len(e.subs))
	for t := range e.subs {
		toks = append(toks, t)
	}
	e.reg.mu.Unlock()
	sort.Slice(toks, func(i, j int) bool { return toks[i] < toks[j] })
	matches := l.Matches()
	for _, t := range toks {
		e.reg.mu.Lock()
		fn, ok := e.subs[t]
		e.reg.mu.Unlock()
		if ok {
			fn(matches)
		}
	}
}
