package radium

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/radium/element"
)

// forwardedRefProp carries the ref of an enhanced forward-ref component to
// the instance rendering it.
const forwardedRefProp = "radiumForwardedRef"

// Enhance returns a component which renders like c, with the styles of its
// output resolved. The result is of the same kind as c, except for function
// components, which become class components to hold interaction state.
// Display name, default props and statics are carried over; c itself is
// not modified. Enhancing an enhanced component returns it unchanged.
//
// A configuration may be given; it is used unless an instance receives one
// through the radiumConfig prop or from an ancestor.
func Enhance(c element.Component, cfg ...*Config) element.Component {
	if c == nil || element.IsEnhanced(c) {
		return c
	}
	var conf *Config
	if len(cfg) > 0 {
		conf = cfg[0]
	}
	switch x := c.(type) {
	case *element.Class:
		return &element.Class{
			DisplayName:  x.DisplayName,
			DefaultProps: cloneProps(x.DefaultProps),
			Statics:      cloneStatics(x.Statics),
			Enhanced:     true,
			New: func() element.Instance {
				return newEnhanced(x.DisplayName, x.New(), conf)
			},
		}
	case *element.Func:
		render := x.Render
		return &element.Class{
			DisplayName:  x.DisplayName,
			DefaultProps: cloneProps(x.DefaultProps),
			Statics:      cloneStatics(x.Statics),
			Enhanced:     true,
			New: func() element.Instance {
				return newEnhanced(x.DisplayName, funcInstance(render), conf)
			},
		}
	case *element.Memo:
		return &element.Memo{
			DisplayName: x.DisplayName,
			Inner:       Enhance(x.Inner, cfg...),
			Enhanced:    true,
		}
	case *element.ForwardRef:
		render := x.Render
		inner := &element.Class{
			DisplayName: x.DisplayName,
			Enhanced:    true,
			New: func() element.Instance {
				return newEnhanced(x.DisplayName, forwardInstance(render), conf)
			},
		}
		return &element.ForwardRef{
			DisplayName:  x.DisplayName,
			DefaultProps: cloneProps(x.DefaultProps),
			Statics:      cloneStatics(x.Statics),
			Enhanced:     true,
			Render: func(props element.Props, ref element.Ref) element.Node {
				p := props.Clone()
				if ref != nil {
					p[forwardedRefProp] = ref
				}
				return &element.Element{Type: inner, Props: p}
			},
		}
	}
	tracer().Errorf("radium: cannot enhance component of type %T", c)
	return c
}

// funcInstance renders a function component inside an enhanced class.
type funcInstance func(element.Props) element.Node

func (f funcInstance) Render(self *element.Self) element.Node {
	return f(self.Props)
}

// forwardInstance renders a forward-ref component inside an enhanced class.
type forwardInstance func(element.Props, element.Ref) element.Node

func (f forwardInstance) Render(self *element.Self) element.Node {
	ref := self.Props[forwardedRefProp]
	return f(self.Props.Without(forwardedRefProp), ref)
}

func cloneProps(p element.Props) element.Props {
	if p == nil {
		return nil
	}
	return p.Clone()
}

func cloneStatics(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	c := make(map[string]any, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
