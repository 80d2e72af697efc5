package cli

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	Format    string // "css" | "yaml"
	UserAgent string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"css", "yaml"}

// NewRootCommand creates the root command of the radium tool.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	cmd := &cobra.Command{
		Use:   "radium",
		Short: "Resolve interactive inline styles",
		Long: `Resolve style descriptors with pseudo-class and media query blocks to
flat, vendor-prefixed styles, and render scoped rule sets and keyframes
to CSS. Input files are YAML; "-" reads from standard input.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "css", "output format (css|yaml)")
	cmd.PersistentFlags().StringVar(&opts.UserAgent, "ua", "", "user agent to prefix for")
	cmd.AddCommand(NewResolveCommand(opts))
	cmd.AddCommand(NewStylesheetCommand(opts))
	cmd.AddCommand(NewKeyframesCommand(opts))
	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// readYAML decodes the file at path into v.
func readYAML(cmd *cobra.Command, path string, v any) error {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if err := yaml.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (opts *RootOptions) verbose(cmd *cobra.Command, format string, args ...any) {
	tracer().Debugf(format, args...)
	if opts.Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
}

func (opts *RootOptions) userAgent(fromFile string) string {
	if opts.UserAgent != "" {
		return opts.UserAgent
	}
	return fromFile
}
