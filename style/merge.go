package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Flatten collapses a descriptor into a single style object. Sequences are
// merged left to right, later entries winning. Nested blocks (pseudo-classes
// and media queries) are merged key-wise instead of being replaced.
// Flatten never modifies its input.
func Flatten(d Descriptor) Style {
	acc := Style{}
	flattenInto(acc, d)
	return acc
}

func flattenInto(acc Style, d Descriptor) {
	if d == nil {
		return
	}
	var s Style
	var ds []Descriptor
	switch m := d.Match(); m {
	case m.Leaf(&s):
		mergeInto(acc, s)
	case m.Sequence(&ds):
		for _, x := range ds {
			flattenInto(acc, x)
		}
	}
}

func mergeInto(acc Style, s Style) {
	for k, v := range s {
		sub, nested := AsStyle(v)
		if !nested {
			acc[k] = v
			continue
		}
		merged := Style{}
		if prev, ok := AsStyle(acc[k]); ok {
			mergeInto(merged, prev)
		}
		mergeInto(merged, sub)
		acc[k] = merged
	}
}

// Merge flattens a list of raw style values, as accepted by Of.
//
//     Merge(a, b, c) == Flatten(Seq(Of(a), Of(b), Of(c)))
func Merge(styles ...any) Style {
	acc := Style{}
	for _, s := range styles {
		flattenInto(acc, Of(s))
	}
	return acc
}

// Coerce converts a style value to a value fit for rendering. Strings and
// numbers pass unchanged, values with a String method are rendered to their
// string form. Nil, false and every other value are unset and return false.
func Coerce(v any) (any, bool) {
	switch x := v.(type) {
	case nil, bool:
		return nil, false
	case string:
		return x, true
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	}
	return nil, false
}
