package script

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/plugins"
	"github.com/npillmayer/radium/style"
)

// ErrNotAFunction is returned for scripts which do not evaluate to a
// function.
var ErrNotAFunction = errors.New("script: not a function")

// ErrResult is returned if a script returns something other than an object,
// null or undefined.
var ErrResult = errors.New("script: result is not an object")

// Compile compiles a script plugin. name is used in error messages.
func Compile(name, source string) (plugins.Plugin, error) {
	program, err := goja.Compile(name, "("+source+")", false)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	// check once, so that errors show up early
	if _, err := function(goja.New(), program); err != nil {
		return nil, fmt.Errorf("script %s: %w", name, err)
	}
	return func(s style.Style, pc *plugins.Context) (*plugins.Result, error) {
		vm := goja.New()
		fn, err := function(vm, program)
		if err != nil {
			return nil, err
		}
		v, err := fn(goja.Undefined(), vm.ToValue(plain(s)), vm.ToValue(contextObject(pc)))
		if err != nil {
			return nil, fmt.Errorf("script %s: %w", name, err)
		}
		r, err := result(v)
		if err != nil {
			return nil, fmt.Errorf("script %s: %w", name, err)
		}
		if r != nil {
			tracer().Debugf("script %s: %s/%s → %v", name, pc.ComponentName, pc.Key, r.Style)
		}
		return r, nil
	}, nil
}

func function(vm *goja.Runtime, program *goja.Program) (goja.Callable, error) {
	v, err := vm.RunProgram(program)
	if err != nil {
		return nil, err
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, ErrNotAFunction
	}
	return fn, nil
}

// plain converts a style to nested plain maps.
func plain(s style.Style) map[string]any {
	m := make(map[string]any, len(s))
	for k, v := range s {
		if sub, ok := style.AsStyle(v); ok {
			m[k] = plain(sub)
			continue
		}
		m[k] = v
	}
	return m
}

func contextObject(pc *plugins.Context) map[string]any {
	props := make(map[string]any, len(pc.Props))
	for k, v := range pc.Props {
		switch v.(type) {
		case string, bool, int, int64, float64:
			props[k] = v
		}
	}
	return map[string]any{
		"componentName": pc.ComponentName,
		"key":           pc.Key,
		"userAgent":     pc.UserAgent(),
		"props":         props,
		"getState":      func(value string) bool { return pc.GetState(value) },
	}
}

func result(v goja.Value) (*plugins.Result, error) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, nil
	}
	obj, ok := v.Export().(map[string]any)
	if !ok {
		return nil, ErrResult
	}
	r := &plugins.Result{}
	if s, ok := style.AsStyle(obj["style"]); ok {
		r.Style = s
	}
	if p, ok := obj["props"].(map[string]any); ok {
		r.Props = element.Props(p)
	}
	return r, nil
}
