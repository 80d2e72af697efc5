package element

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Host is the renderer an instance is mounted into.
type Host interface {
	Invalidate(self *Self) // schedule a re-render of self
}

// Self is the handle an instance uses to read its props, state and context,
// and to request re-renders.
type Self struct {
	Props    Props
	State    State
	Context  Context
	host     Host
	detached bool
}

// NewSelf creates the handle for a new instance.
func NewSelf(props Props, ctx Context) *Self {
	return &Self{Props: props, Context: ctx, State: State{}}
}

// Attach binds a handle to a host renderer.
func (s *Self) Attach(h Host) {
	s.host = h
}

// Detach is called by the host on unmount. After Detach, SetState and
// ForceUpdate are silent no-ops.
func (s *Self) Detach() {
	s.detached = true
	s.host = nil
}

// Detached is true after unmount.
func (s *Self) Detached() bool {
	return s.detached
}

// SetState merges patch into the state and schedules a re-render.
// State maps are never modified in place, so a previous state handed to
// DidUpdate stays intact.
func (s *Self) SetState(patch State) {
	if s.detached {
		tracer().Debugf("element: SetState on unmounted instance ignored")
		return
	}
	s.MergeState(patch)
	if s.host != nil {
		s.host.Invalidate(s)
	}
}

// MergeState merges patch into the state without scheduling a re-render.
// It is meant for bookkeeping during render.
func (s *Self) MergeState(patch State) {
	if s.detached {
		return
	}
	next := make(State, len(s.State)+len(patch))
	for k, v := range s.State {
		next[k] = v
	}
	for k, v := range patch {
		next[k] = v
	}
	s.State = next
}

// ForceUpdate schedules a re-render without a state change.
func (s *Self) ForceUpdate() {
	if s.detached || s.host == nil {
		return
	}
	s.host.Invalidate(s)
}

// --- Aborting a render -----------------------------------------------------

type abort struct {
	err error
}

// Abort stops the current render pass with an error. It may be called from
// code running inside a render pass only, i.e. render functions and child
// functions. The host renderer recovers it and reports err.
func Abort(err error) {
	panic(abort{err: err})
}

// Recover is to be deferred by host renderers around a render pass:
//
//     func (r *Root) pass() (err error) {
//         defer element.Recover(&err)
//         …
//     }
//
// Panics other than those raised by Abort are re-raised.
func Recover(errp *error) {
	if r := recover(); r != nil {
		if a, ok := r.(abort); ok {
			*errp = a.err
			return
		}
		panic(r)
	}
}
