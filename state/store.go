package state

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"
)

// Field is the name of the state entry an instance publishes its snapshot
// under.
const Field = "_radiumStyleState"

// AllKey is the identity used for component-wide flags, i.e. media queries.
const AllKey = "_all"

// Snapshot is a read-only view of the flags of a store.
type Snapshot map[string]map[string]bool

// Get reads a flag. Missing flags are false.
func (s Snapshot) Get(key, value string) bool {
	if s == nil {
		return false
	}
	return s[key][value]
}

// Keys returns the element identities present in a snapshot, sorted.
func (s Snapshot) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Store holds the flags of one component instance.
type Store struct {
	owner    string
	flags    map[string]map[string]bool
	pointer  map[string]bool // identities whose :active flag was set by a pointer
	onChange func(Snapshot)
	closed   bool
}

// New creates a store. onChange is called after every change with a fresh
// snapshot; it may be nil. owner is used for tracing only.
func New(owner string, onChange func(Snapshot)) *Store {
	return &Store{
		owner:    owner,
		flags:    make(map[string]map[string]bool),
		pointer:  make(map[string]bool),
		onChange: onChange,
	}
}

// Get reads a flag.
func (st *Store) Get(key, value string) bool {
	return st.flags[key][value]
}

// Set writes a flag and publishes the change. Writing an unchanged value
// does nothing. After Close, Set is a no-op. Set returns true if the flag
// changed.
func (st *Store) Set(key, value string, on bool) bool {
	if !st.put(key, value, on) {
		return false
	}
	if value == ":active" && !on {
		delete(st.pointer, key)
	}
	st.publish()
	return true
}

// Put writes a flag without publishing the change. It is used to record
// initial values during render.
func (st *Store) Put(key, value string, on bool) bool {
	return st.put(key, value, on)
}

func (st *Store) put(key, value string, on bool) bool {
	if st.closed {
		tracer().Debugf("state: %s: write of %s/%s after close ignored", st.owner, key, value)
		return false
	}
	if st.flags[key][value] == on {
		return false
	}
	m := st.flags[key]
	if m == nil {
		m = make(map[string]bool)
		st.flags[key] = m
	}
	m[value] = on
	return true
}

// Activate sets the :active flag for an element identity. viaPointer tells
// if activation was caused by a pointer (as opposed to a key press);
// pointer activations are cleared by ReleasePointer.
func (st *Store) Activate(key string, viaPointer bool) bool {
	if st.closed {
		return false
	}
	if viaPointer {
		st.pointer[key] = true
	}
	return st.Set(key, ":active", true)
}

// ReleasePointer clears every :active flag set by a pointer, with a single
// change notification. Flags set by keyboard stay active.
func (st *Store) ReleasePointer() bool {
	if st.closed || len(st.pointer) == 0 {
		return false
	}
	changed := false
	for key := range st.pointer {
		if st.put(key, ":active", false) {
			changed = true
		}
		delete(st.pointer, key)
	}
	if changed {
		st.publish()
	}
	return changed
}

// Retain drops the flags of element identities not in seen, except for
// AllKey and identities starting with one of the given prefixes. It does
// not publish. Retain returns true if anything was dropped.
func (st *Store) Retain(seen map[string]bool, keepPrefixes ...string) bool {
	changed := false
	for key := range st.flags {
		if key == AllKey || seen[key] || hasPrefix(key, keepPrefixes) {
			continue
		}
		tracer().Debugf("state: %s: dropping state of vanished element %q", st.owner, key)
		delete(st.flags, key)
		delete(st.pointer, key)
		changed = true
	}
	return changed
}

func hasPrefix(key string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// Snapshot copies the current flags.
func (st *Store) Snapshot() Snapshot {
	snap := make(Snapshot, len(st.flags))
	for k, m := range st.flags {
		c := make(map[string]bool, len(m))
		for v, on := range m {
			c[v] = on
		}
		snap[k] = c
	}
	return snap
}

// Close detaches the store from its owner. Subsequent writes are ignored,
// which makes setters captured by event handlers safe to call after unmount.
func (st *Store) Close() {
	st.closed = true
	st.onChange = nil
}

// Closed is true after Close.
func (st *Store) Closed() bool {
	return st.closed
}

func (st *Store) publish() {
	if st.onChange != nil && !st.closed {
		st.onChange(st.Snapshot())
	}
}
