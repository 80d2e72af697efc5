package cli

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"os"

	"github.com/npillmayer/radium"
	"github.com/npillmayer/radium/media"
	"github.com/npillmayer/radium/plugins/script"
	"github.com/npillmayer/radium/style"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type resolveInput struct {
	Style     any            `yaml:"style"`
	States    []string       `yaml:"states"`
	Props     map[string]any `yaml:"props"`
	Visited   bool           `yaml:"visited"`
	UserAgent string         `yaml:"userAgent"`
	Screen    *screenInput   `yaml:"screen"`
}

type screenInput struct {
	Type       string  `yaml:"type"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Resolution float64 `yaml:"resolution"`
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand(rootOpts *RootOptions) *cobra.Command {
	var states, scripts []string
	cmd := &cobra.Command{
		Use:   "resolve <file>",
		Short: "Resolve a style descriptor",
		Long: `Resolve a style descriptor for a fixed interaction state.

The input has a "style" (a style object or a list of them), and optionally
"states" (active pseudo-classes), "props", "visited", "userAgent" and
"screen" (width, height, resolution, type) to evaluate media queries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(rootOpts, cmd, args[0], states, scripts)
		},
	}
	cmd.Flags().StringSliceVarP(&states, "state", "s", nil, "active pseudo-class, e.g. :hover (repeatable)")
	cmd.Flags().StringSliceVar(&scripts, "plugin", nil, "JavaScript plugin file (repeatable)")
	return cmd
}

func runResolve(opts *RootOptions, cmd *cobra.Command, path string, states, scripts []string) error {
	var in resolveInput
	if err := readYAML(cmd, path, &in); err != nil {
		return err
	}
	conf := &radium.Config{UserAgent: opts.userAgent(in.UserAgent)}
	for _, file := range scripts {
		src, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		p, err := script.Compile(file, string(src))
		if err != nil {
			return err
		}
		conf.Plugins = append(conf.Plugins, p)
	}
	st := radium.Static{
		Config:  conf,
		Props:   in.Props,
		States:  append(in.States, states...),
		Visited: in.Visited,
	}
	if in.Screen != nil {
		st.Screen = &media.Features{
			Type:       in.Screen.Type,
			Width:      in.Screen.Width,
			Height:     in.Screen.Height,
			Resolution: in.Screen.Resolution,
		}
	}
	opts.verbose(cmd, "resolving %s with states %v", path, st.States)
	s, err := radium.ResolveStatic(in.Style, st)
	if err != nil {
		return err
	}
	return writeStyle(opts, cmd, s)
}

func writeStyle(opts *RootOptions, cmd *cobra.Command, s style.Style) error {
	if opts.Format == "yaml" {
		decls := make(map[string]string, len(s))
		for _, d := range style.Declarations(s) {
			decls[d.Key] = d.Value.String()
		}
		out, err := yaml.Marshal(decls)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), style.CSSText(s))
	return err
}
