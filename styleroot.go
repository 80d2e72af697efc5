package radium

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/stylesheet"
)

// StyleRoot renders its children in a <div>, followed by a <style> element
// holding the CSS of a registrar: keyframes and the rules of Style
// components. It re-renders whenever the CSS changes.
//
// Prop "registrar" selects a *stylesheet.Registrar; the default is
// stylesheet.Default(). Other props are passed to the <div>, whose style is
// resolved like that of any enhanced component.
var StyleRoot = Enhance(&element.Class{
	DisplayName: "StyleRoot",
	New:         func() element.Instance { return &styleRoot{} },
})

type styleRoot struct {
	css    string // as rendered
	cancel func()
}

func registrarOf(props element.Props, ctx element.Context) *stylesheet.Registrar {
	if r, ok := props["registrar"].(*stylesheet.Registrar); ok && r != nil {
		return r
	}
	if r, ok := ctx[RegistrarContext].(*stylesheet.Registrar); ok && r != nil {
		return r
	}
	return stylesheet.Default()
}

func (sr *styleRoot) Render(self *element.Self) element.Node {
	sr.css = registrarOf(self.Props, nil).CSS()
	props := self.Props.Without("children", "registrar", ConfigProp)
	return element.New("div", props,
		self.Props["children"],
		element.New("style", nil, sr.css),
	)
}

func (sr *styleRoot) ChildContext(self *element.Self) element.Context {
	return element.Context{
		StyleRootContext: true,
		RegistrarContext: registrarOf(self.Props, nil),
	}
}

func (sr *styleRoot) DidMount(self *element.Self) {
	reg := registrarOf(self.Props, nil)
	sr.cancel = reg.Subscribe(self.ForceUpdate)
	if reg.CSS() != sr.css { // rules added by descendants while mounting
		self.ForceUpdate()
	}
}

func (sr *styleRoot) WillUnmount(self *element.Self) {
	if sr.cancel != nil {
		sr.cancel()
	}
}

// Style adds a scoped rule set to the registrar of the enclosing StyleRoot,
// or to the default registrar. It renders nothing.
//
// Props:
//
//	rules          stylesheet.Rules: selector → style, plus "mediaQueries"
//	scopeSelector  string prepended to every selector
var Style = &element.Class{
	DisplayName: "Style",
	New:         func() element.Instance { return &styleRules{} },
}

type styleRules struct {
	handle *stylesheet.Handle
}

func rulesOf(self *element.Self) (stylesheet.Rules, string, string) {
	var rules stylesheet.Rules
	switch r := self.Props["rules"].(type) {
	case stylesheet.Rules:
		rules = r
	case map[string]any:
		rules = stylesheet.Rules(r)
	}
	scope, _ := self.Props["scopeSelector"].(string)
	ua := ""
	if c, ok := self.Context[ConfigContext].(*Config); ok {
		ua = c.UserAgent
	}
	if ua == "" {
		ua = documentOf(self).Agent()
	}
	return rules, scope, ua
}

func (sr *styleRules) Render(self *element.Self) element.Node {
	return nil
}

func (sr *styleRules) DidMount(self *element.Self) {
	rules, scope, ua := rulesOf(self)
	sr.handle = registrarOf(self.Props, self.Context).AddRules(rules, scope, ua)
}

func (sr *styleRules) DidUpdate(self *element.Self, prevProps element.Props, prevState element.State) {
	if sr.handle == nil {
		return
	}
	rules, scope, ua := rulesOf(self)
	sr.handle.Update(rules, scope, ua)
}

func (sr *styleRules) WillUnmount(self *element.Self) {
	if sr.handle != nil {
		sr.handle.Remove()
	}
}
