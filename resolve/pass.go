package resolve

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strconv"

	"github.com/npillmayer/radium/plugins"
	"github.com/npillmayer/radium/prefix"
)

// FuncPrefix starts the identities of elements returned by function
// children. These elements are resolved when the receiving component calls
// the function, which may be outside the pass.
const FuncPrefix = "fn:"

// IgnoreProp marks an element to be left alone.
const IgnoreProp = "data-radium-ignore"

// Pass holds what a walk over one rendered tree needs.
type Pass struct {
	Component string // name of the component, for plugins and traces
	Pipeline  *plugins.Pipeline
	Instance  plugins.Instance
	Config    plugins.Config
	Env       plugins.Environment
	prefixer  *prefix.Prefixer
	seen      map[string]bool
	explicit  map[string]bool
}

// NewPass prepares a walk. A nil pipeline runs the default steps.
func NewPass(component string, pipeline *plugins.Pipeline, inst plugins.Instance,
	config plugins.Config, env plugins.Environment) *Pass {
	//
	if pipeline == nil {
		pipeline = plugins.NewPipeline(nil, 0)
	}
	p := &Pass{
		Component: component,
		Pipeline:  pipeline,
		Instance:  inst,
		Config:    config,
		Env:       env,
		seen:      make(map[string]bool),
		explicit:  make(map[string]bool),
	}
	ua := (&plugins.Context{Config: config, Env: env}).UserAgent()
	p.prefixer = prefix.New(ua)
	return p
}

// Seen returns the identities of the elements visited so far.
func (p *Pass) Seen() map[string]bool {
	return p.seen
}

// scope numbers siblings of the same type below a parent.
type scope struct {
	parent    string
	keyPrefix string // prepended to explicit keys
	ordinals  map[string]int
	depth     int  // nesting depth of lists
	static    bool // the children list was built by element.New
	dynamic   int  // number of enclosing lists of variable length
}

func newScope(parent string) *scope {
	return &scope{parent: parent, ordinals: make(map[string]int)}
}

func (sc *scope) child(parent string) *scope {
	c := newScope(parent)
	c.keyPrefix = sc.keyPrefix
	return c
}

// identity assigns the identity of the next child of type typ with an
// optional key. A key given by the user is global to the pass, other keys
// are already scoped by the caller.
func (p *Pass) identity(sc *scope, typ, key string, explicit bool) string {
	n := sc.ordinals[typ]
	sc.ordinals[typ] = n + 1
	structural := typ + "#" + strconv.Itoa(n)
	if sc.parent != "" {
		structural = sc.parent + "/" + structural
	}
	if key == "" {
		return structural
	}
	if explicit {
		key = sc.keyPrefix + key
	}
	if p.explicit[key] {
		tracer().Infof("resolve: %s: duplicate key %q, using %s instead", p.Component, key, structural)
		return structural
	}
	p.explicit[key] = true
	return key
}
