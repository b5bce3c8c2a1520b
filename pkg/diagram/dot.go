package diagram

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/musicmap/pkg/journey"
)

// Options controls the graph-wide Graphviz attributes.
// Zero fields take the values from [DefaultOptions].
type Options struct {
	Name       string  // digraph name
	Comment    string  // comment line written above the digraph
	RankDir    string  // LR, TB, RL or BT
	Splines    string  // edge routing: ortho, spline, polyline, line
	Background string  // canvas color
	NodeSep    float64 // inches between nodes of one rank
	RankSep    float64 // inches between ranks
	FontName   string  // node and edge font
	EdgeColor  string  // default edge color

	// Legend adds a cluster with one swatch per status.
	Legend bool
}

// DefaultOptions returns the blueprint look of the music map.
func DefaultOptions() Options {
	return Options{
		Name:       "My Music Journey",
		Comment:    "Music Discovery Path",
		RankDir:    "LR",
		Splines:    "ortho",
		Background: "#ffffff",
		NodeSep:    0.6,
		RankSep:    0.8,
		FontName:   "Sans",
		EdgeColor:  "#555555",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Name == "" {
		o.Name = d.Name
	}
	if o.Comment == "" {
		o.Comment = d.Comment
	}
	if o.RankDir == "" {
		o.RankDir = d.RankDir
	}
	if o.Splines == "" {
		o.Splines = d.Splines
	}
	if o.Background == "" {
		o.Background = d.Background
	}
	if o.NodeSep == 0 {
		o.NodeSep = d.NodeSep
	}
	if o.RankSep == 0 {
		o.RankSep = d.RankSep
	}
	if o.FontName == "" {
		o.FontName = d.FontName
	}
	if o.EdgeColor == "" {
		o.EdgeColor = d.EdgeColor
	}
	return o
}

// ToDOT converts a journey to Graphviz DOT source.
// Nodes and edges are written in insertion order, so the same journey
// always yields the same bytes.
func ToDOT(j *journey.Journey, opts Options) string {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// %s\n", opts.Comment)
	fmt.Fprintf(&buf, "digraph %s {\n", dotQuote(opts.Name))
	fmt.Fprintf(&buf, "  rankdir=%s;\n", opts.RankDir)
	fmt.Fprintf(&buf, "  bgcolor=%s;\n", dotQuote(opts.Background))
	fmt.Fprintf(&buf, "  splines=%s;\n", opts.Splines)
	fmt.Fprintf(&buf, "  nodesep=%s;\n", fmtFloat(opts.NodeSep))
	fmt.Fprintf(&buf, "  ranksep=%s;\n", fmtFloat(opts.RankSep))
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", fontname=%s, fontsize=10, penwidth=1.5];\n", dotQuote(opts.FontName))
	fmt.Fprintf(&buf, "  edge [fontname=%s, fontsize=9, color=%s];\n", dotQuote(opts.FontName), dotQuote(opts.EdgeColor))
	buf.WriteString("\n")

	for _, n := range j.Nodes() {
		fmt.Fprintf(&buf, "  %s [%s];\n", dotQuote(n.ID), strings.Join(nodeAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range j.Edges() {
		fmt.Fprintf(&buf, "  %s -> %s [%s];\n", dotQuote(e.From), dotQuote(e.To), strings.Join(edgeAttrs(e), ", "))
	}

	if opts.Legend {
		writeLegend(&buf)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n journey.Node) []string {
	c := n.Colors()
	return []string{
		"label=<" + n.DisplayLabel() + ">",
		"fillcolor=" + dotQuote(c.Background),
		"color=" + dotQuote(c.Border),
	}
}

func edgeAttrs(e journey.Edge) []string {
	attrs := []string{"label=" + dotQuote(e.Label)}
	if e.Style.Color != "" {
		attrs = append(attrs, "color="+dotQuote(e.Style.Color))
	}
	if e.Style.Dash != "" {
		attrs = append(attrs, "style="+e.Style.Dash)
	}
	if e.Style.PenWidth > 0 {
		attrs = append(attrs, "penwidth="+fmtFloat(e.Style.PenWidth))
	}
	return attrs
}

func writeLegend(buf *bytes.Buffer) {
	buf.WriteString("\n  subgraph cluster_legend {\n")
	buf.WriteString("    label=\"Legend\";\n")
	buf.WriteString("    style=\"rounded,dashed\";\n")
	buf.WriteString("    color=\"#a0aec0\";\n")
	for _, s := range journey.Statuses {
		c := journey.Colors(s)
		fmt.Fprintf(buf, "    %s [label=%s, fillcolor=%s, color=%s];\n",
			dotQuote("legend_"+s.String()), dotQuote(s.String()), dotQuote(c.Background), dotQuote(c.Border))
	}
	buf.WriteString("  }\n")
}

// dotQuote returns s as a DOT quoted string. Only backslashes and double
// quotes are escaped; DOT has no other escape sequences.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
