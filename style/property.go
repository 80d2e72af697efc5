package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Property is a raw value for a CSS property in textual form. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers when writing CSS text.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property in CSS notation.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return kv.Key + ":" + kv.Value.String()
}

// --- Property names --------------------------------------------------------

// Hyphenate converts a camel-cased property name to CSS notation.
// Vendor prefixes are recognized:
//
//     Hyphenate("fontFamily")      => "font-family"
//     Hyphenate("WebkitTransform") => "-webkit-transform"
//     Hyphenate("msTransform")     => "-ms-transform"
//
// Names already containing a hyphen are returned unchanged.
func Hyphenate(name string) string {
	if name == "" || strings.Contains(name, "-") {
		return name
	}
	var b strings.Builder
	if strings.HasPrefix(name, "ms") && len(name) > 2 && isUpper(name[2]) {
		b.WriteString("-ms")
		name = name[2:]
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isUpper(c) {
			b.WriteByte('-')
			b.WriteByte(c + ('a' - 'A'))
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// Unprefixed strips a camel-cased vendor prefix from a property name.
//
//     Unprefixed("WebkitTransform") => "transform"
func Unprefixed(name string) string {
	for _, p := range []string{"Webkit", "Moz", "ms", "O"} {
		if strings.HasPrefix(name, p) && len(name) > len(p) && isUpper(name[len(p)]) {
			rest := name[len(p):]
			return strings.ToLower(rest[:1]) + rest[1:]
		}
	}
	return name
}

var unitless = map[string]bool{
	"animationIterationCount": true,
	"boxFlex":                 true,
	"boxFlexGroup":            true,
	"boxOrdinalGroup":         true,
	"columnCount":             true,
	"fillOpacity":             true,
	"flex":                    true,
	"flexGrow":                true,
	"flexNegative":            true,
	"flexOrder":               true,
	"flexPositive":            true,
	"flexShrink":              true,
	"floodOpacity":            true,
	"fontWeight":              true,
	"gridColumn":              true,
	"gridRow":                 true,
	"lineClamp":               true,
	"lineHeight":              true,
	"opacity":                 true,
	"order":                   true,
	"orphans":                 true,
	"stopOpacity":             true,
	"strokeDashoffset":        true,
	"strokeMiterlimit":        true,
	"strokeOpacity":           true,
	"strokeWidth":             true,
	"tabSize":                 true,
	"widows":                  true,
	"zIndex":                  true,
	"zoom":                    true,
}

// IsUnitless is true for properties which take plain numbers, e.g. "opacity".
// Numeric values for all other properties are interpreted as pixels.
func IsUnitless(name string) bool {
	return unitless[Unprefixed(name)]
}

// --- Values ----------------------------------------------------------------

// Format converts a (coerced) style value to CSS text. Numbers receive a
// "px" unit unless the property is unitless or the number is zero.
// Values which cannot be expressed in CSS return false.
func Format(name string, v any) (Property, bool) {
	v, ok := Coerce(v)
	if !ok {
		return NullStyle, false
	}
	switch x := v.(type) {
	case string:
		return Property(strings.TrimSpace(x)), true
	case float64:
		return formatNumber(name, x), true
	case float32:
		return formatNumber(name, float64(x)), true
	case int:
		return formatNumber(name, float64(x)), true
	case int8:
		return formatNumber(name, float64(x)), true
	case int16:
		return formatNumber(name, float64(x)), true
	case int32:
		return formatNumber(name, float64(x)), true
	case int64:
		return formatNumber(name, float64(x)), true
	case uint:
		return formatNumber(name, float64(x)), true
	case uint8:
		return formatNumber(name, float64(x)), true
	case uint16:
		return formatNumber(name, float64(x)), true
	case uint32:
		return formatNumber(name, float64(x)), true
	case uint64:
		return formatNumber(name, float64(x)), true
	}
	return Property(fmt.Sprint(v)), true
}

func formatNumber(name string, f float64) Property {
	n := strconv.FormatFloat(f, 'f', -1, 64)
	if f == 0 || IsUnitless(name) {
		return Property(n)
	}
	return Property(n + "px")
}

// Declarations returns the scalar entries of a style object in CSS notation,
// sorted by property name. Nested blocks and unset values are skipped.
func Declarations(s Style) []KeyValue {
	decls := make([]KeyValue, 0, len(s))
	for _, k := range s.Keys() {
		if IsNested(s[k]) {
			continue
		}
		if p, ok := Format(k, s[k]); ok {
			decls = append(decls, KeyValue{Key: Hyphenate(k), Value: p})
		}
	}
	return decls
}

// CSSText renders the scalar entries of a style object the way a browser
// serializes an element's style attribute, e.g. "color:red;font-size:12px".
func CSSText(s Style) string {
	decls := Declarations(s)
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.String()
	}
	return strings.Join(parts, ";")
}

// Keys returns the keys of a style object in sorted order.
func (s Style) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
