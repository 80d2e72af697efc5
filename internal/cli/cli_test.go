package cli

import (
	"bytes"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const uaSafari8 = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_10_5) AppleWebKit/600.8.9 (KHTML, like Gecko) Version/8.0.8 Safari/600.8.9"

func run(t *testing.T, args ...string) (string, error) {
	cmd := NewRootCommand()
	var out, errs bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if errs.Len() > 0 {
		t.Logf("stderr: %s", errs.String())
	}
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "radium", cmd.Use)
	for _, name := range []string{"resolve", "stylesheet", "keyframes"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "command %s should exist", name)
		assert.Equal(t, name, sub.Name())
	}
	f := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, f)
	assert.Equal(t, "css", f.DefValue)
}

func TestResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.cli")
	defer teardown()
	//
	g := goldie.New(t)
	out, err := run(t, "resolve", "testdata/button.yaml")
	require.NoError(t, err)
	g.Assert(t, "resolve_button", []byte(out))
	//
	out, err = run(t, "resolve", "testdata/spin.yaml", "--ua", uaSafari8)
	require.NoError(t, err)
	g.Assert(t, "resolve_spin_safari", []byte(out))
	//
	out, err = run(t, "resolve", "testdata/button.yaml", "--format", "yaml")
	require.NoError(t, err)
	var decls map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &decls))
	assert.Equal(t, map[string]string{"color": "blue", "font-size": "12px", "padding": "2px"}, decls)
}

func TestResolveWithPlugin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.cli")
	defer teardown()
	//
	out, err := run(t, "resolve", "testdata/link.yaml", "--plugin", "testdata/pointer.js")
	require.NoError(t, err)
	assert.Equal(t, "color:red;cursor:pointer\n", out)
}

func TestStylesheetAndKeyframes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.cli")
	defer teardown()
	//
	g := goldie.New(t)
	out, err := run(t, "stylesheet", "testdata/sheet.yaml")
	require.NoError(t, err)
	g.Assert(t, "stylesheet", []byte(out))
	//
	out, err = run(t, "keyframes", "-v", "testdata/fade.yaml")
	require.NoError(t, err)
	g.Assert(t, "keyframes", []byte(out))
	//
	out, err = run(t, "stylesheet", "--format", "yaml", "testdata/sheet.yaml")
	require.NoError(t, err)
	var rules []ruleOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &rules))
	require.Len(t, rules, 3)
	assert.Equal(t, ".app", rules[0].Selector)
	assert.Equal(t, "black", rules[0].Declarations["color"])
	assert.Equal(t, "@media", rules[2].At)
	require.Len(t, rules[2].Rules, 1)
	assert.Equal(t, "none", rules[2].Rules[0].Declarations["display"])
}

func TestErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "radium.cli")
	defer teardown()
	//
	_, err := run(t, "resolve", "testdata/missing.yaml")
	assert.Error(t, err)
	_, err = run(t, "resolve", "--format", "json", "testdata/button.yaml")
	assert.ErrorContains(t, err, "invalid format")
	_, err = run(t, "resolve")
	assert.Error(t, err)
}
