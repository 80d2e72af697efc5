package radium

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/state"
	"github.com/npillmayer/radium/stylesheet"
)

// GetState tells if an element of an enhanced component is in an
// interaction state, e.g.
//
//	radium.GetState(self.State, "save", ":hover")
//
// key is the explicit key of the element. GetState is a pure read of the
// component state and may be called during render.
func GetState(st element.State, key, value string) bool {
	snap, _ := st[state.Field].(state.Snapshot)
	return snap.Get(key, value)
}

// Keyframes registers an animation with the default registrar and returns
// the animation name to use in styles.
func Keyframes(frames stylesheet.Keyframes, name string) string {
	return stylesheet.Default().RegisterKeyframes(frames, name)
}
