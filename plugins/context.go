package plugins

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/media"
	"github.com/npillmayer/radium/prefix"
	"github.com/npillmayer/radium/style"
)

// Instance is the component instance owning the elements being resolved.
// It gives plugins access to the interactive state and to subscriptions.
type Instance interface {
	GetState(key, value string) bool
	SetState(key, value string, on bool)
	Activate(key string, viaPointer bool)
	SubscribeRelease()
	SubscribeMedia(query string, match media.MatchFunc) bool
	HasStyleRoot() bool
}

// Environment is the host environment of a render.
type Environment interface {
	Agent() string
	MatchMedia(query string) media.List
	Visited(href string) bool
}

// Config is the resolved configuration for a render pass.
type Config struct {
	UserAgent  string          // overrides the environment's user agent
	MatchMedia media.MatchFunc // overrides the environment's media evaluation
}

// Context describes the element being resolved.
type Context struct {
	ComponentName string
	Key           string        // identity of the element within its component
	Props         element.Props // props of the element as rendered
	Raw           any           // the unresolved style prop
	Config        Config
	Env           Environment
	Instance      Instance
	prefixer      *prefix.Prefixer
}

// GetState reads an interaction flag of the element, e.g. ":hover".
func (pc *Context) GetState(value string) bool {
	if pc.Instance == nil {
		return false
	}
	return pc.Instance.GetState(pc.Key, value)
}

// SetState writes an interaction flag of the element. After the owning
// component has been unmounted, SetState does nothing.
func (pc *Context) SetState(value string, on bool) {
	if pc.Instance != nil {
		pc.Instance.SetState(pc.Key, value, on)
	}
}

// UserAgent is the configured user agent, or the environment's.
func (pc *Context) UserAgent() string {
	if pc.Config.UserAgent != "" {
		return pc.Config.UserAgent
	}
	if pc.Env != nil {
		return pc.Env.Agent()
	}
	return ""
}

// MatchMedia returns the configured media evaluation, or the environment's.
// It returns nil if neither is available.
func (pc *Context) MatchMedia() media.MatchFunc {
	if pc.Config.MatchMedia != nil {
		return pc.Config.MatchMedia
	}
	if pc.Env != nil {
		return pc.Env.MatchMedia
	}
	return nil
}

// Prefixer returns a prefixer for the user agent of the context.
func (pc *Context) Prefixer() *prefix.Prefixer {
	if pc.prefixer == nil {
		pc.prefixer = prefix.New(pc.UserAgent())
	}
	return pc.prefixer
}

// WithPrefixer sets a shared prefixer, to avoid detecting the browser for
// every element.
func (pc *Context) WithPrefixer(p *prefix.Prefixer) *Context {
	pc.prefixer = p
	return pc
}

// Visited tells if the element links to a visited location.
func (pc *Context) Visited() bool {
	href, _ := pc.Props["href"].(string)
	if href == "" || pc.Env == nil {
		return false
	}
	return pc.Env.Visited(href)
}

// Result is what a user plugin returns. Style is merged on top of the
// accumulated style; Props are added to the element.
type Result struct {
	Style style.Style
	Props element.Props
}
