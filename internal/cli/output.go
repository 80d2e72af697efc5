package cli

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/radium/stylesheet/cssom"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ruleOutput is the YAML form of a parsed rule.
type ruleOutput struct {
	At           string            `yaml:"at,omitempty"`
	Selector     string            `yaml:"selector,omitempty"`
	Declarations map[string]string `yaml:"declarations,omitempty"`
	Rules        []ruleOutput      `yaml:"rules,omitempty"`
}

func toOutput(rules []cssom.Rule) []ruleOutput {
	out := make([]ruleOutput, 0, len(rules))
	for _, r := range rules {
		ro := ruleOutput{Selector: r.Selector()}
		if r.IsAtRule() {
			ro.At = r.Name()
			ro.Rules = toOutput(r.Rules())
		}
		for _, p := range r.Properties() {
			if ro.Declarations == nil {
				ro.Declarations = make(map[string]string)
			}
			ro.Declarations[p] = r.Value(p).String()
		}
		out = append(out, ro)
	}
	return out
}

func writeRules(cmd *cobra.Command, sheet cssom.StyleSheet) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(toOutput(sheet.Rules())); err != nil {
		return err
	}
	return enc.Close()
}
