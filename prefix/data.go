package prefix

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"regexp"
	"strings"
)

const always = 1e6

// need tells that browser family needs a prefix below a version.
type need struct {
	browser string
	below   float64
}

func needsOf(list []need, b Browser) bool {
	for _, n := range list {
		if n.browser == b.Name && b.Version < n.below {
			return true
		}
	}
	return false
}

func vendorsOf(list []need) []string {
	seen := map[string]bool{}
	var vendors []string
	for _, v := range []string{"webkit", "moz", "ms"} {
		for _, n := range list {
			if vendorOf(n.browser) == v && !seen[v] {
				seen[v] = true
				vendors = append(vendors, v)
			}
		}
	}
	return vendors
}

var (
	transformNeeds   = []need{{Chrome, 36}, {Safari, 9}, {IOS, 9}, {Android, 5}, {Opera, 23}, {Firefox, 16}, {IE, 10}}
	transitionNeeds  = []need{{Chrome, 26}, {Safari, 7}, {IOS, 7}, {Android, 4.4}, {Firefox, 16}}
	animationNeeds   = []need{{Chrome, 43}, {Safari, 9}, {IOS, 9}, {Android, 5}, {Opera, 30}, {Firefox, 16}}
	flexNeeds        = []need{{Chrome, 29}, {Safari, 9}, {IOS, 9}, {Android, 4.4}, {Opera, 16}, {IE, 11}}
	columnNeeds      = []need{{Chrome, 50}, {Safari, 9}, {IOS, 9}, {Android, 50}, {Opera, 37}, {Firefox, 52}}
	perspectiveNeeds = []need{{Chrome, 36}, {Safari, 9}, {IOS, 9}, {Android, 5}, {Opera, 23}, {Firefox, 16}}
)

// propertyNeeds lists the properties which need a vendor prefix in some
// browsers.
var propertyNeeds = map[string][]need{
	"transform":                transformNeeds,
	"transformOrigin":          transformNeeds,
	"transformStyle":           transformNeeds,
	"transition":               transitionNeeds,
	"transitionDelay":          transitionNeeds,
	"transitionDuration":       transitionNeeds,
	"transitionProperty":       transitionNeeds,
	"transitionTimingFunction": transitionNeeds,
	"animation":                animationNeeds,
	"animationDelay":           animationNeeds,
	"animationDirection":       animationNeeds,
	"animationDuration":        animationNeeds,
	"animationFillMode":        animationNeeds,
	"animationIterationCount":  animationNeeds,
	"animationName":            animationNeeds,
	"animationPlayState":       animationNeeds,
	"animationTimingFunction":  animationNeeds,
	"flex":                     flexNeeds,
	"flexBasis":                flexNeeds,
	"flexDirection":            flexNeeds,
	"flexFlow":                 flexNeeds,
	"flexGrow":                 flexNeeds,
	"flexShrink":               flexNeeds,
	"flexWrap":                 flexNeeds,
	"alignContent":             flexNeeds,
	"alignItems":               flexNeeds,
	"alignSelf":                flexNeeds,
	"justifyContent":           flexNeeds,
	"order":                    flexNeeds,
	"columns":                  columnNeeds,
	"columnCount":              columnNeeds,
	"columnFill":               columnNeeds,
	"columnGap":                columnNeeds,
	"columnRule":               columnNeeds,
	"columnWidth":              columnNeeds,
	"backfaceVisibility":       append([]need{{Safari, always}, {IOS, always}}, perspectiveNeeds[0], perspectiveNeeds[3], perspectiveNeeds[5]),
	"perspective":              perspectiveNeeds,
	"perspectiveOrigin":        perspectiveNeeds,
	"userSelect":               {{Chrome, 54}, {Safari, always}, {IOS, always}, {Android, 54}, {Opera, 41}, {Firefox, 69}, {IE, always}, {Edge, 79}},
	"appearance":               {{Chrome, always}, {Safari, always}, {IOS, always}, {Android, always}, {Opera, always}, {Firefox, always}},
	"boxSizing":                {{Safari, 5.1}, {IOS, 5}, {Android, 4}, {Firefox, 29}},
	"filter":                   {{Chrome, 53}, {Safari, 9.1}, {IOS, 9.3}, {Android, 53}, {Opera, 40}},
	"hyphens":                  {{Safari, always}, {IOS, always}, {Firefox, 43}, {IE, always}, {Edge, 79}},
	"textSizeAdjust":           {{IOS, always}, {IE, always}, {Edge, 79}},
	"fontFeatureSettings":      {{Chrome, 48}, {Android, 48}, {Opera, 35}, {Firefox, 34}},
	"maskImage":                {{Chrome, 120}, {Safari, 15.4}, {IOS, 15.4}, {Android, 120}, {Opera, 106}},
}

// valueRule rewrites values which need a vendor prefix in some browsers.
type valueRule struct {
	property string // empty for any property
	match    func(v string) bool
	needs    []need
	rewrite  func(v, vendor string) string
}

func is(values ...string) func(string) bool {
	return func(v string) bool {
		for _, x := range values {
			if v == x {
				return true
			}
		}
		return false
	}
}

func contains(s string) func(string) bool {
	return func(v string) bool {
		return strings.Contains(v, s)
	}
}

func dashed(v, vendor string) string {
	return "-" + vendor + "-" + v
}

var valueRules = []valueRule{
	{
		property: "display",
		match:    is("flex", "inline-flex"),
		needs:    flexNeeds,
		rewrite: func(v, vendor string) string {
			if vendor == "ms" {
				return "-ms-" + v + "box"
			}
			return dashed(v, vendor)
		},
	},
	{
		property: "position",
		match:    is("sticky"),
		needs:    []need{{Safari, 13}, {IOS, 13}},
		rewrite:  dashed,
	},
	{
		property: "cursor",
		match:    is("grab", "grabbing", "zoom-in", "zoom-out"),
		needs:    []need{{Chrome, 68}, {Safari, 11}, {IOS, 11}, {Android, 68}, {Opera, 55}, {Firefox, 27}},
		rewrite:  dashed,
	},
	{
		match: contains("calc("),
		needs: []need{{Chrome, 26}, {Safari, 7}, {IOS, 7}, {Firefox, 16}},
		rewrite: func(v, vendor string) string {
			return strings.ReplaceAll(v, "calc(", dashed("calc(", vendor))
		},
	},
	{
		match: contains("linear-gradient("),
		needs: []need{{Chrome, 26}, {Safari, 7}, {IOS, 7}, {Android, 4.4}, {Firefox, 16}},
		rewrite: func(v, vendor string) string {
			return strings.ReplaceAll(v, "linear-gradient(", dashed("linear-gradient(", vendor))
		},
	},
}

// --- Support tables for fallback values -------------------------------------

// minimum versions supporting a feature; browsers not listed support it.
type support map[string]float64

var viewportUnits = regexp.MustCompile(`\d(vh|vw|vmin|vmax)\b`)

var features = []struct {
	property string
	match    func(v string) bool
	since    support
}{
	{"", viewportUnits.MatchString, support{Chrome: 26, Safari: 6.1, IOS: 8, Android: 4.4, Firefox: 19, IE: 9, Opera: 15}},
	{"", contains("calc("), support{Chrome: 19, Safari: 6, IOS: 6, Android: 4.4, Firefox: 4, IE: 9, Opera: 15}},
	{"display", is("grid", "inline-grid"), support{Chrome: 57, Safari: 10.1, IOS: 10.3, Android: 57, Firefox: 52, IE: always, Edge: 16, Opera: 44}},
	{"display", is("flex", "inline-flex"), support{Chrome: 21, Safari: 6.1, IOS: 7, Android: 4.4, Firefox: 28, IE: 10, Opera: 12.1}},
	{"position", is("sticky"), support{Chrome: 56, Safari: 6.1, IOS: 6, Android: 56, Firefox: 32, IE: always, Edge: 16, Opera: 42}},
}
