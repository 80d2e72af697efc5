package radium

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/media"
	"github.com/npillmayer/radium/plugins"
)

// Prop and context keys.
const (
	ConfigProp       = "radiumConfig"    // prop overriding the configuration of an instance
	ConfigContext    = "radiumConfig"    // context key of the configuration of an ancestor
	StyleRootContext = "radiumStyleRoot" // context key set below a StyleRoot
	RegistrarContext = "radiumRegistrar" // context key of the registrar of a StyleRoot
)

// Config configures enhanced components. The zero value uses the default
// steps and the environment's user agent and media queries.
type Config struct {
	Plugins     []plugins.Plugin // run after the step at PluginStage
	PluginStage int              // 0 means plugins.DefaultStage, see plugins.FirstStage
	Steps       []plugins.Step   // replace the default steps, if set
	UserAgent   string
	MatchMedia  media.MatchFunc

	mediaFrom *Config // the configuration MatchMedia was given in
}

// merge returns a copy of c with the fields set in over replacing c's.
func (c *Config) merge(over *Config) *Config {
	m := &Config{}
	if c != nil {
		*m = *c
	}
	if over == nil {
		return m
	}
	if over.Plugins != nil {
		m.Plugins = over.Plugins
	}
	if over.PluginStage != 0 {
		m.PluginStage = over.PluginStage
	}
	if over.Steps != nil {
		m.Steps = over.Steps
	}
	if over.UserAgent != "" {
		m.UserAgent = over.UserAgent
	}
	if over.MatchMedia != nil {
		m.MatchMedia = over.MatchMedia
		m.mediaFrom = over.mediaSource()
	}
	return m
}

// mediaSource identifies the match function of c. Instances evaluating the
// same query with the same match function share a media query list.
func (c *Config) mediaSource() *Config {
	if c.mediaFrom != nil {
		return c.mediaFrom
	}
	return c
}

func (c *Config) pipeline() *plugins.Pipeline {
	user := make([]plugins.Step, len(c.Plugins))
	for i, p := range c.Plugins {
		user[i] = plugins.Adapt(fmt.Sprintf("#%d", i), p)
	}
	return plugins.NewPipeline(c.Steps, c.PluginStage, user...)
}

func (c *Config) plugins() plugins.Config {
	return plugins.Config{UserAgent: c.UserAgent, MatchMedia: c.MatchMedia}
}

// With returns an enhancer using cfg, for configuration-first application:
//
//	button := radium.With(&radium.Config{UserAgent: ua})(plainButton)
func With(cfg *Config) func(element.Component) element.Component {
	return func(c element.Component) element.Component {
		return Enhance(c, cfg)
	}
}
