package cli

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/radium/style"
	"github.com/npillmayer/radium/stylesheet"
	"github.com/spf13/cobra"
)

type sheetInput struct {
	Scope     string         `yaml:"scope"`
	UserAgent string         `yaml:"userAgent"`
	Rules     map[string]any `yaml:"rules"`
}

type keyframesInput struct {
	Name      string                    `yaml:"name"`
	UserAgent string                    `yaml:"userAgent"`
	Frames    map[string]map[string]any `yaml:"frames"`
}

// NewStylesheetCommand creates the stylesheet command.
func NewStylesheetCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stylesheet <file>",
		Short: "Render a scoped rule set to CSS",
		Long: `Render a rule set to CSS. The input has "rules", mapping selectors to
styles, and optionally a "scope" selector and a "userAgent". Top-level
declarations apply to the scope; "mediaQueries" maps queries to nested rules.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in sheetInput
			if err := readYAML(cmd, args[0], &in); err != nil {
				return err
			}
			reg := stylesheet.NewRegistrar(rootOpts.userAgent(in.UserAgent))
			reg.AddRules(stylesheet.Rules(in.Rules), in.Scope, rootOpts.userAgent(in.UserAgent))
			return writeSheet(rootOpts, cmd, reg)
		},
	}
	return cmd
}

// NewKeyframesCommand creates the keyframes command.
func NewKeyframesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keyframes <file>",
		Short: "Render an animation to CSS",
		Long: `Render a @keyframes rule. The input has "frames", mapping stops
("from", "50%", "to") to styles, and optionally a "name" and a "userAgent".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in keyframesInput
			if err := readYAML(cmd, args[0], &in); err != nil {
				return err
			}
			frames := make(stylesheet.Keyframes, len(in.Frames))
			for stop, s := range in.Frames {
				frames[stop] = style.Style(s)
			}
			reg := stylesheet.NewRegistrar(rootOpts.userAgent(in.UserAgent))
			name := reg.RegisterKeyframes(frames, in.Name)
			rootOpts.verbose(cmd, "animation name: %s", name)
			return writeSheet(rootOpts, cmd, reg)
		},
	}
	return cmd
}

// writeSheet prints the CSS of a registrar. With format yaml, the parsed
// rules are listed instead.
func writeSheet(opts *RootOptions, cmd *cobra.Command, reg *stylesheet.Registrar) error {
	sheet, err := reg.Sheet()
	if err != nil {
		return fmt.Errorf("generated CSS does not parse: %w", err)
	}
	opts.verbose(cmd, "%d rule(s)", len(sheet.Rules()))
	if opts.Format == "yaml" {
		return writeRules(cmd, sheet)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), reg.CSS())
	return err
}
