package radium

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/npillmayer/radium/dom"
	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/listener"
	"github.com/npillmayer/radium/media"
	"github.com/npillmayer/radium/resolve"
	"github.com/npillmayer/radium/state"
)

// enhanced wraps an instance of a user component.
type enhanced struct {
	id        uuid.UUID
	name      string
	inner     element.Instance
	config    *Config // given to Enhance
	self      *element.Self
	store     *state.Store
	release   *listener.Listener
	releaseOn bool
	releaseTk listener.Token
	mediaSrc  any // source of the subscribed media queries
	queries   map[string]media.Token
	styleRoot bool
}

var _ element.Instance = &enhanced{}

func newEnhanced(name string, inner element.Instance, cfg *Config) *enhanced {
	en := &enhanced{
		id:      uuid.New(),
		name:    name,
		inner:   inner,
		config:  cfg,
		queries: make(map[string]media.Token),
	}
	tracer().Debugf("radium: new instance %s of %s", en.id, name)
	return en
}

func (en *enhanced) bind(self *element.Self) {
	if en.self != nil {
		return
	}
	en.self = self
	en.store = state.New(en.name+"/"+en.id.String(), func(snap state.Snapshot) {
		self.SetState(element.State{state.Field: snap})
	})
}

// Render renders the inner instance and resolves the styles of its output.
// Errors abort the render pass.
func (en *enhanced) Render(self *element.Self) element.Node {
	en.bind(self)
	out := en.inner.Render(self)
	conf := en.resolveConfig(self)
	doc := documentOf(self)
	en.release = releaseListener(doc)
	if src := mediaSource(conf, doc); src != en.mediaSrc {
		en.releaseMedia()
		en.mediaSrc = src
	}
	_, en.styleRoot = self.Context[StyleRootContext]
	if _, ok := en.inner.(*styleRoot); ok {
		en.styleRoot = true
	}
	pass := resolve.NewPass(en.name, conf.pipeline(), en, conf.plugins(), doc)
	resolved, err := resolve.Walk(out, pass)
	if err != nil {
		element.Abort(fmt.Errorf("radium: %s: %w", en.name, err))
	}
	en.store.Retain(pass.Seen(), resolve.FuncPrefix)
	self.MergeState(element.State{state.Field: en.store.Snapshot()})
	return resolved
}

// resolveConfig applies the configuration sources in order of precedence:
// prop, ancestor, decorator.
func (en *enhanced) resolveConfig(self *element.Self) *Config {
	conf := (*Config)(nil).merge(en.config)
	if c, ok := self.Context[ConfigContext].(*Config); ok {
		conf = conf.merge(c)
	}
	if c, ok := self.Props[ConfigProp].(*Config); ok {
		conf = conf.merge(c)
	}
	return conf
}

func documentOf(self *element.Self) *dom.Document {
	if d, ok := self.Context[dom.DocumentContext].(*dom.Document); ok && d != nil {
		return d
	}
	return dom.Default()
}

// --- Lifecycle -------------------------------------------------------------

func (en *enhanced) DidMount(self *element.Self) {
	if x, ok := en.inner.(element.Mounter); ok {
		x.DidMount(self)
	}
}

func (en *enhanced) DidUpdate(self *element.Self, prevProps element.Props, prevState element.State) {
	if x, ok := en.inner.(element.Updater); ok {
		x.DidUpdate(self, prevProps, prevState)
	}
}

// WillUnmount releases the state store and every subscription. Handlers
// still held by anyone become no-ops.
func (en *enhanced) WillUnmount(self *element.Self) {
	if x, ok := en.inner.(element.Unmounter); ok {
		x.WillUnmount(self)
	}
	if en.store != nil {
		en.store.Close()
	}
	if en.releaseOn {
		en.release.Unsubscribe(en.releaseTk)
		en.releaseOn = false
	}
	en.releaseMedia()
	tracer().Debugf("radium: instance %s of %s unmounted", en.id, en.name)
}

// mediaSource is the document, unless the configuration brings its own
// match function.
func mediaSource(conf *Config, doc *dom.Document) any {
	if conf.MatchMedia != nil {
		return conf.mediaSource()
	}
	return doc
}

func (en *enhanced) releaseMedia() {
	queries := make([]string, 0, len(en.queries))
	for q := range en.queries {
		queries = append(queries, q)
	}
	sort.Strings(queries)
	for _, q := range queries {
		media.Default().Unsubscribe(media.Key{Source: en.mediaSrc, Query: q}, en.queries[q])
		delete(en.queries, q)
	}
}

// ChildContext publishes a configuration given by prop to descendants.
func (en *enhanced) ChildContext(self *element.Self) element.Context {
	ctx := element.Context{}
	if x, ok := en.inner.(element.ContextProvider); ok {
		for k, v := range x.ChildContext(self) {
			ctx[k] = v
		}
	}
	if c, ok := self.Props[ConfigProp].(*Config); ok {
		inherited, _ := self.Context[ConfigContext].(*Config)
		ctx[ConfigContext] = inherited.merge(c)
	}
	return ctx
}

// --- plugins.Instance ------------------------------------------------------

func (en *enhanced) GetState(key, value string) bool {
	return en.store.Get(key, value)
}

func (en *enhanced) SetState(key, value string, on bool) {
	en.store.Set(key, value, on)
}

func (en *enhanced) Activate(key string, viaPointer bool) {
	en.store.Activate(key, viaPointer)
}

// SubscribeRelease subscribes to the global pointer release, once per
// instance.
func (en *enhanced) SubscribeRelease() {
	if en.releaseOn || en.store.Closed() {
		return
	}
	en.releaseTk = en.release.Subscribe(func() {
		en.store.ReleasePointer()
	})
	en.releaseOn = true
}

// SubscribeMedia subscribes to changes of a media query, once per query,
// and returns whether it matches. The match state is kept in the state
// store under state.AllKey.
func (en *enhanced) SubscribeMedia(query string, match media.MatchFunc) bool {
	flag := MediaFlag(query)
	if _, ok := en.queries[query]; ok {
		return en.store.Get(state.AllKey, flag)
	}
	if en.store.Closed() {
		return false
	}
	key := media.Key{Source: en.mediaSrc, Query: query}
	matches, tok := media.Default().Subscribe(key, match, func(m bool) {
		en.store.Set(state.AllKey, flag, m)
	})
	en.queries[query] = tok
	en.store.Put(state.AllKey, flag, matches)
	return matches
}

func (en *enhanced) HasStyleRoot() bool {
	return en.styleRoot
}

// MediaFlag is the state flag of a media query, to be read with
//
//	GetState(st, state.AllKey, MediaFlag(query))
func MediaFlag(query string) string {
	return "@media " + query
}

// --- Global release --------------------------------------------------------

var releaseListeners = struct {
	sync.Mutex
	m map[*dom.Document]*listener.Listener
}{m: make(map[*dom.Document]*listener.Listener)}

// releaseListener returns the pointer release listener of a document.
func releaseListener(doc *dom.Document) *listener.Listener {
	if doc == dom.Default() {
		return listener.Default()
	}
	releaseListeners.Lock()
	defer releaseListeners.Unlock()
	l, ok := releaseListeners.m[doc]
	if !ok {
		l = listener.New(doc, "mouseup")
		releaseListeners.m[doc] = l
	}
	return l
}
