/*
Radium resolves interactive inline styles and renders stylesheets from
YAML descriptions.

	radium resolve button.yaml --state :hover --ua "$UA"
	radium stylesheet rules.yaml
	radium keyframes pulse.yaml

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/radium/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
