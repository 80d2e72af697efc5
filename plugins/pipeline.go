package plugins

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/style"
)

// Step is a stage of the pipeline. It returns the new style and props to
// add to the element; later steps override props of earlier ones.
type Step func(s style.Style, pc *Context) (style.Style, element.Props, error)

// Plugin is a user-supplied step. A nil result changes nothing.
type Plugin func(s style.Style, pc *Context) (*Result, error)

// Adapt turns a plugin into a step. The plugin's style is merged on top of
// the accumulated style.
func Adapt(name string, p Plugin) Step {
	return func(s style.Style, pc *Context) (style.Style, element.Props, error) {
		r, err := p(s, pc)
		if err != nil {
			return nil, nil, fmt.Errorf("plugin %s: %w", name, err)
		}
		if r == nil {
			return s, nil, nil
		}
		if r.Style != nil {
			s = style.Merge(s, r.Style)
		}
		return s, r.Props, nil
	}
}

// Positions user plugins are inserted at.
const (
	FirstStage   = -1 // before Merge
	DefaultStage = 1  // after Merge
)

// DefaultSteps returns the built-in steps in order.
func DefaultSteps() []Step {
	return []Step{Merge, Interaction, Media, Prefix, Coerce}
}

// Pipeline is an ordered list of steps.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a pipeline from base steps, with user plugins inserted
// after the first stage steps. A nil base uses DefaultSteps; stage 0 means
// DefaultStage and a negative stage puts user plugins first.
func NewPipeline(base []Step, stage int, user ...Step) *Pipeline {
	if base == nil {
		base = DefaultSteps()
	}
	switch {
	case stage == 0:
		stage = DefaultStage
	case stage < 0:
		stage = 0
	}
	if stage > len(base) {
		stage = len(base)
	}
	steps := make([]Step, 0, len(base)+len(user))
	steps = append(steps, base[:stage]...)
	steps = append(steps, user...)
	steps = append(steps, base[stage:]...)
	return &Pipeline{steps: steps}
}

// Len returns the number of steps.
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Run resolves the raw style of pc. The initial style is pc.Raw if that is
// a single style object, else empty; Merge flattens descriptors.
func (p *Pipeline) Run(pc *Context) (style.Style, element.Props, error) {
	s, ok := style.AsStyle(pc.Raw)
	if !ok {
		s = style.Style{}
	}
	props := element.Props{}
	for _, step := range p.steps {
		next, add, err := step(s, pc)
		if err != nil {
			return nil, nil, err
		}
		if next != nil {
			s = next
		}
		for k, v := range add {
			props[k] = v
		}
	}
	return s, props, nil
}
