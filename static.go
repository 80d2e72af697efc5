package radium

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/radium/dom"
	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/media"
	"github.com/npillmayer/radium/plugins"
	"github.com/npillmayer/radium/style"
)

// Static describes the situation to resolve a style for, outside of any
// component.
type Static struct {
	Config  *Config
	Props   element.Props   // props of the element, e.g. "disabled" or "href"
	States  []string        // active pseudo-classes, e.g. ":hover"
	Visited bool            // the element's href counts as visited
	Screen  *media.Features // media environment; nil matches no media query
}

// ResolveStatic resolves a style descriptor for a fixed interaction state.
// Handlers synthesized by the pipeline are dropped.
func ResolveStatic(raw any, st Static) (style.Style, error) {
	conf := (*Config)(nil).merge(st.Config)
	pc := &plugins.Context{
		ComponentName: "static",
		Key:           "static",
		Props:         st.Props,
		Raw:           raw,
		Config:        conf.plugins(),
		Instance:      newFixedState(st.States),
	}
	if st.Screen != nil && pc.Config.MatchMedia == nil {
		pc.Config.MatchMedia = dom.NewScreen(*st.Screen).MatchMedia
	}
	if st.Visited {
		pc.Env = visitedAll{ua: conf.UserAgent}
	}
	s, _, err := conf.pipeline().Run(pc)
	return s, err
}

// fixedState is a plugins.Instance with read-only flags.
type fixedState map[string]bool

func newFixedState(states []string) fixedState {
	f := make(fixedState, len(states))
	for _, s := range states {
		f[s] = true
	}
	return f
}

func (f fixedState) GetState(key, value string) bool { return f[value] }
func (f fixedState) SetState(string, string, bool)   {}
func (f fixedState) Activate(string, bool)           {}
func (f fixedState) SubscribeRelease()               {}
func (f fixedState) HasStyleRoot() bool              { return true }

func (f fixedState) SubscribeMedia(query string, match media.MatchFunc) bool {
	if l := match(query); l != nil {
		return l.Matches()
	}
	return false
}

// visitedAll is an environment where every link has been visited.
type visitedAll struct {
	ua string
}

func (v visitedAll) Agent() string                { return v.ua }
func (v visitedAll) MatchMedia(string) media.List { return nil }
func (v visitedAll) Visited(string) bool          { return true }
