package journey

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// File is the TOML shape of a journey file.
//
//	[[node]]
//	id = "Derek"
//	label = "Derek And The Dominos"
//	status = "done"
//	note = "Layla Album. The Entry Point"
//
//	[[edge]]
//	from = "Derek"
//	to = "Allman"
//	label = "Who is the 2nd guitarist?"
//	style = { dash = "dotted" }
type File struct {
	Nodes []FileNode `toml:"node"`
	Edges []FileEdge `toml:"edge"`
}

// FileNode is one [[node]] table.
type FileNode struct {
	ID     string `toml:"id"`
	Label  string `toml:"label"`
	Status string `toml:"status"`
	Note   string `toml:"note,omitempty"`
}

// FileEdge is one [[edge]] table.
type FileEdge struct {
	From  string    `toml:"from"`
	To    string    `toml:"to"`
	Label string    `toml:"label"`
	Style EdgeStyle `toml:"style,omitempty"`
}

// Load reads a journey from a TOML file.
func Load(path string) (*Journey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	j, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return j, nil
}

// Decode reads a journey from TOML. Unknown keys are an error, as are
// duplicate node IDs and edges pointing at undeclared nodes.
// A node without a label is labeled with its ID.
func Decode(r io.Reader) (*Journey, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode journey: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("decode journey: unknown keys: %s", strings.Join(keys, ", "))
	}
	return f.Journey()
}

// Journey converts the decoded file into a validated journey.
func (f File) Journey() (*Journey, error) {
	nodes := make([]Node, len(f.Nodes))
	for i, n := range f.Nodes {
		label := n.Label
		if label == "" {
			label = n.ID
		}
		nodes[i] = Node{ID: n.ID, Label: label, Note: n.Note, Status: Status(n.Status)}
	}
	edges := make([]Edge, len(f.Edges))
	for i, e := range f.Edges {
		edges[i] = Edge(e)
	}
	return Build(nodes, edges)
}

// Encode writes j as a journey file.
func Encode(w io.Writer, j *Journey) error {
	var f File
	for _, n := range j.Nodes() {
		f.Nodes = append(f.Nodes, FileNode{ID: n.ID, Label: n.Label, Status: string(n.Status), Note: n.Note})
	}
	for _, e := range j.Edges() {
		f.Edges = append(f.Edges, FileEdge(e))
	}
	return toml.NewEncoder(w).Encode(f)
}
