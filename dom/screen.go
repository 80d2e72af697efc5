package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"sync"

	"github.com/npillmayer/radium/media"
)

// Screen evaluates media queries against a set of media features. Lists
// handed out by MatchMedia are live: they notify their listeners when a
// change of features flips their matching state.
type Screen struct {
	mu       sync.Mutex
	features media.Features
	lists    map[string]*mediaList
}

// NewScreen creates a screen with the given features.
func NewScreen(f media.Features) *Screen {
	return &Screen{features: f, lists: make(map[string]*mediaList)}
}

// Features returns the current media features.
func (s *Screen) Features() media.Features {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.features
}

// MatchMedia returns the list for a query. Lists are cached per query.
// Queries which do not compile never match.
func (s *Screen) MatchMedia(query string) media.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.lists[query]; ok {
		return l
	}
	q, err := media.Compile(query)
	if err != nil {
		tracer().Errorf("dom: %v", err)
	}
	l := &mediaList{query: query, compiled: q}
	l.matches = q.Matches(s.features)
	s.lists[query] = l
	return l
}

// Resize changes the viewport size.
func (s *Screen) Resize(width, height float64) {
	f := s.Features()
	f.Width, f.Height = width, height
	s.SetFeatures(f)
}

// SetFeatures changes the media features and notifies the listeners of
// every list whose matching state flipped, in query order.
func (s *Screen) SetFeatures(f media.Features) {
	s.mu.Lock()
	s.features = f
	var flipped []*mediaList
	for _, l := range s.lists {
		m := l.compiled.Matches(f)
		l.mu.Lock()
		if m != l.matches {
			l.matches = m
			flipped = append(flipped, l)
		}
		l.mu.Unlock()
	}
	s.mu.Unlock()
	sort.Slice(flipped, func(i, j int) bool { return flipped[i].query < flipped[j].query })
	for _, l := range flipped {
		tracer().Debugf("dom: media %q flipped", l.query)
		for _, x := range l.snapshot() {
			x.MediaChanged(l)
		}
	}
}

type mediaList struct {
	mu        sync.Mutex
	query     string
	compiled  *media.Query
	matches   bool
	listeners []media.ListListener
}

var _ media.List = &mediaList{}

func (l *mediaList) Media() string {
	return l.query
}

func (l *mediaList) Matches() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.matches
}

func (l *mediaList) AddListener(x media.ListListener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, x)
}

func (l *mediaList) RemoveListener(x media.ListListener) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, y := range l.listeners {
		if y == x {
			l.listeners = append(l.listeners[:i:i], l.listeners[i+1:]...)
			return
		}
	}
}

func (l *mediaList) snapshot() []media.ListListener {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]media.ListListener(nil), l.listeners...)
}
