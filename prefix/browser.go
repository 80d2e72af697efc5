package prefix

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"regexp"
	"strconv"
	"strings"
)

// Browser families
const (
	Chrome  = "chrome"
	Safari  = "safari"
	IOS     = "ios_saf"
	Android = "android"
	Firefox = "firefox"
	IE      = "ie"
	Edge    = "edge"
	Opera   = "opera"
)

// Browser is a browser family with its version.
type Browser struct {
	Name    string
	Version float64
}

// Known is false for browsers which could not be identified.
func (b Browser) Known() bool {
	return b.Name != ""
}

// Vendor returns the vendor prefix in use by a browser family: "webkit",
// "moz" or "ms".
func (b Browser) Vendor() string {
	return vendorOf(b.Name)
}

func vendorOf(name string) string {
	switch name {
	case Chrome, Safari, IOS, Android, Opera:
		return "webkit"
	case Firefox:
		return "moz"
	case IE, Edge:
		return "ms"
	}
	return ""
}

func (b Browser) String() string {
	if !b.Known() {
		return "unknown"
	}
	return b.Name + " " + strconv.FormatFloat(b.Version, 'f', -1, 64)
}

type agentPattern struct {
	name string
	re   *regexp.Regexp
}

// Order matters: Edge and Opera pretend to be Chrome, Chrome pretends to be
// Safari, and every browser on iOS is a Safari in disguise.
var agentPatterns = []agentPattern{
	{Edge, regexp.MustCompile(`Edge?/(\d+(?:\.\d+)?)`)},
	{IE, regexp.MustCompile(`MSIE (\d+(?:\.\d+)?)`)},
	{IE, regexp.MustCompile(`Trident/.*rv:(\d+(?:\.\d+)?)`)},
	{IOS, regexp.MustCompile(`(?:iPhone|iPad|iPod).* OS (\d+)(?:_(\d+))?`)},
	{Opera, regexp.MustCompile(`OPR/(\d+(?:\.\d+)?)`)},
	{Android, regexp.MustCompile(`Android (\d+(?:\.\d+)?).*Version/`)},
	{Chrome, regexp.MustCompile(`Chrome/(\d+(?:\.\d+)?)`)},
	{Firefox, regexp.MustCompile(`Firefox/(\d+(?:\.\d+)?)`)},
	{Safari, regexp.MustCompile(`Version/(\d+(?:\.\d+)?).*Safari/`)},
	{Android, regexp.MustCompile(`Android (\d+(?:\.\d+)?)`)},
}

// Detect identifies the browser of a user agent string. An empty or
// unrecognized user agent yields an unknown browser.
func Detect(userAgent string) Browser {
	ua := strings.TrimSpace(userAgent)
	if ua == "" {
		return Browser{}
	}
	for _, p := range agentPatterns {
		m := p.re.FindStringSubmatch(ua)
		if m == nil {
			continue
		}
		v := m[1]
		if len(m) > 2 && m[2] != "" {
			v += "." + m[2]
		}
		version, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		b := Browser{Name: p.name, Version: version}
		tracer().Debugf("prefix: user agent identified as %s", b)
		return b
	}
	tracer().Debugf("prefix: unknown user agent %q", ua)
	return Browser{}
}
