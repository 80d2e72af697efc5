/*
Package domdbg implements helpers to debug element and host trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/radium/dom"
	"github.com/npillmayer/radium/element"
	"github.com/npillmayer/radium/style"
	tp "github.com/xlab/treeprint"
)

// --- Tree printing ----------------------------------------------------

// Print renders host nodes as an indented tree, one line per node. Styled
// nodes show their inline style as CSS text.
func Print(nodes ...*dom.Node) string {
	p := tp.New()
	for _, n := range nodes {
		ppn(p, n)
	}
	return p.String()
}

func ppn(p tp.Tree, n *dom.Node) {
	if n == nil {
		return
	}
	label := n.String()
	if css := style.CSSText(n.Style()); css != "" {
		label += " {" + css + "}"
	}
	if len(n.Children) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, c := range n.Children {
		ppn(branch, c)
	}
}

// PrintElements renders an element tree, as returned by a render function,
// as an indented tree.
func PrintElements(n element.Node) string {
	p := tp.New()
	ppe(p, n)
	return p.String()
}

func ppe(p tp.Tree, n element.Node) {
	switch x := n.(type) {
	case nil, bool:
	case *element.Element:
		if x == nil {
			return
		}
		label := x.String()
		if s, ok := style.AsStyle(x.Props["style"]); ok {
			label += fmt.Sprintf(" style=%v", style.Declarations(s))
		}
		ch := x.Children()
		if ch == nil {
			p.AddNode(label)
			return
		}
		ppe(p.AddBranch(label), ch)
	case []element.Node:
		for _, c := range x {
			ppe(p, c)
		}
	case element.Keyed:
		for _, k := range x.SortedKeys() {
			ppe(p.AddBranch("{"+k+"}"), x[k])
		}
	case element.ChildFunc:
		p.AddNode("func(…)")
	default:
		p.AddNode(fmt.Sprintf("%q", fmt.Sprint(x)))
	}
}

// --- GraphViz ---------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	Styles    bool
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
}

// ToGraphViz outputs a diagram for the host tree of a root. The diagram is
// in GraphViz (DOT) format. If withStyles is set, the inline style of every
// styled node is drawn as a table next to it.
func ToGraphViz(root *dom.Root, w io.Writer, withStyles bool) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", Styles: withStyles}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("style").Parse(styleTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*dom.Node]string, 256)
	for _, n := range root.Nodes() {
		if err = nodes(n, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a root and a testing.T, it will
// create a Graphiviz image of the host tree and write it to a file in the
// current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root *dom.Root, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(root, tmpfile, true); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	N    *dom.Node
	Name string
}

type styleTable struct {
	Name         string
	Declarations []style.KeyValue
}

func nodes(n *dom.Node, w io.Writer, dict map[*dom.Node]string, gparams *graphParamsType) error {
	name := nameOf(n, dict)
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		return err
	}
	if gparams.Styles {
		if decls := style.Declarations(n.Style()); len(decls) > 0 {
			if err := gparams.StyleTmpl.Execute(w, styleTable{name, decls}); err != nil {
				return err
			}
		}
	}
	for _, ch := range n.Children {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		e := edge{node{n, name}, node{ch, nameOf(ch, dict)}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func nameOf(n *dom.Node, dict map[*dom.Node]string) string {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return name
}

type edge struct {
	N1, N2 node
}

func shortText(n *dom.Node) string {
	s := "\"\\\""
	if len(n.Text) > 10 {
		s += n.Text[:10] + "...\\\"\""
	} else {
		s += n.Text + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .N.IsText }}
{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .N.String }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const styleTmpl = `{{ .Name }}_style [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">style</font></td></tr>
      {{ range .Declarations }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Name }} -> {{ .Name }}_style [dir=none weight=1 style="dashed"] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
