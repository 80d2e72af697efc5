package element

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Kind tells the variant of a component.
type Kind uint8

// Component variants
const (
	ClassKind Kind = iota
	FuncKind
	MemoKind
	ForwardRefKind
)

func (k Kind) String() string {
	switch k {
	case ClassKind:
		return "class"
	case FuncKind:
		return "func"
	case MemoKind:
		return "memo"
	case ForwardRefKind:
		return "forwardRef"
	}
	return "?"
}

// Component is implemented by *Class, *Func, *Memo and *ForwardRef.
type Component interface {
	Kind() Kind
	Name() string
	Defaults() Props
}

// Class is a stateful component. New is called once per mount.
type Class struct {
	DisplayName  string
	DefaultProps Props
	Statics      map[string]any
	New          func() Instance
	Enhanced     bool // set by enhancers which resolve their own output
}

// Func is a stateless component.
type Func struct {
	DisplayName  string
	DefaultProps Props
	Statics      map[string]any
	Render       func(props Props) Node
}

// Memo wraps another component.
type Memo struct {
	DisplayName string
	Inner       Component
	Enhanced    bool
}

// ForwardRef is a render function which receives the ref of its element.
type ForwardRef struct {
	DisplayName  string
	DefaultProps Props
	Statics      map[string]any
	Render       func(props Props, ref Ref) Node
	Enhanced     bool
}

func (c *Class) Kind() Kind            { return ClassKind }
func (c *Class) Name() string          { return c.DisplayName }
func (c *Class) Defaults() Props       { return c.DefaultProps }
func (f *Func) Kind() Kind             { return FuncKind }
func (f *Func) Name() string           { return f.DisplayName }
func (f *Func) Defaults() Props        { return f.DefaultProps }
func (m *Memo) Kind() Kind             { return MemoKind }
func (m *Memo) Defaults() Props        { return nil }
func (fr *ForwardRef) Kind() Kind      { return ForwardRefKind }
func (fr *ForwardRef) Name() string    { return fr.DisplayName }
func (fr *ForwardRef) Defaults() Props { return fr.DefaultProps }

func (m *Memo) Name() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	if m.Inner != nil {
		return m.Inner.Name()
	}
	return ""
}

// IsEnhanced is true for components produced by an enhancer.
func IsEnhanced(c Component) bool {
	switch x := c.(type) {
	case *Class:
		return x.Enhanced
	case *Memo:
		return x.Enhanced
	case *ForwardRef:
		return x.Enhanced
	}
	return false
}

// Statics returns the static members of a component, if any.
func Statics(c Component) map[string]any {
	switch x := c.(type) {
	case *Class:
		return x.Statics
	case *Func:
		return x.Statics
	case *ForwardRef:
		return x.Statics
	case *Memo:
		if x.Inner != nil {
			return Statics(x.Inner)
		}
	}
	return nil
}

// --- Instances -------------------------------------------------------------

// Instance is a mounted class component.
type Instance interface {
	Render(self *Self) Node
}

// Mounter is implemented by instances which want to be notified after
// their first render has been committed.
type Mounter interface {
	DidMount(self *Self)
}

// Updater is implemented by instances which want to be notified after
// each subsequent render has been committed.
type Updater interface {
	DidUpdate(self *Self, prevProps Props, prevState State)
}

// Unmounter is implemented by instances which hold resources.
type Unmounter interface {
	WillUnmount(self *Self)
}

// ContextProvider is implemented by instances which add to the context of
// their descendants.
type ContextProvider interface {
	ChildContext(self *Self) Context
}
