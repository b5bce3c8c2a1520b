package journey

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNodeID is returned by [Journey.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Journey.AddNode] when a node with the
	// same ID was already added.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned when an edge's From node does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned when an edge's To node does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidEdgeStyle is returned when an edge's dash pattern is not one
	// Graphviz understands.
	ErrInvalidEdgeStyle = errors.New("invalid edge style")
)

// Dash patterns accepted in [EdgeStyle.Dash].
const (
	DashSolid  = ""
	DashDashed = "dashed"
	DashDotted = "dotted"
	DashBold   = "bold"
)

// Node is one artist, album or band in the discovery history.
type Node struct {
	ID     string // Unique identifier, also the Graphviz node name
	Label  string // Display name
	Note   string // Optional annotation shown under the label
	Status Status // Position in the journey; drives the colors
}

// Colors returns the node's fill and border colors.
func (n Node) Colors() ColorPair { return Colors(n.Status) }

// DisplayLabel returns the label as rendered: the plain label when the node
// has no note, rich text otherwise. See [FormatLabel].
func (n Node) DisplayLabel() string { return FormatLabel(n.Label, n.Note) }

// EdgeStyle overrides the default edge look for emphasis.
// Zero fields keep the diagram defaults.
type EdgeStyle struct {
	Color    string  `toml:"color,omitempty" json:"color,omitempty"`
	Dash     string  `toml:"dash,omitempty" json:"dash,omitempty"`
	PenWidth float64 `toml:"penwidth,omitempty" json:"penwidth,omitempty"`
}

// IsZero reports whether the style overrides nothing.
func (s EdgeStyle) IsZero() bool { return s == EdgeStyle{} }

// Edge is a labeled discovery relationship between two nodes.
type Edge struct {
	From  string
	To    string
	Label string
	Style EdgeStyle
}

// Journey is an ordered collection of nodes and edges.
// Insertion order is preserved so that identical input yields identical DOT.
//
// The zero value is not usable; create journeys with [New].
// A Journey is not safe for concurrent mutation.
type Journey struct {
	nodes    []*Node
	index    map[string]*Node
	edges    []Edge
	outgoing map[string][]int // node ID -> indices into edges
}

// New creates an empty journey.
func New() *Journey {
	return &Journey{
		index:    make(map[string]*Node),
		outgoing: make(map[string][]int),
	}
}

// AddNode registers a node. Returns ErrInvalidNodeID for an empty ID and
// ErrDuplicateNodeID if the ID is already taken.
func (j *Journey) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := j.index[n.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
	}
	if n.Status == "" {
		n.Status = StatusBacklog
	}
	node := &n
	j.nodes = append(j.nodes, node)
	j.index[node.ID] = node
	return nil
}

// AddEdge registers a directed edge between two nodes that were already
// added. Returns ErrUnknownSourceNode or ErrUnknownTargetNode otherwise.
func (j *Journey) AddEdge(e Edge) error {
	if _, ok := j.index[e.From]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSourceNode, e.From)
	}
	if _, ok := j.index[e.To]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTargetNode, e.To)
	}
	if err := checkStyle(e.Style); err != nil {
		return err
	}
	j.outgoing[e.From] = append(j.outgoing[e.From], len(j.edges))
	j.edges = append(j.edges, e)
	return nil
}

func checkStyle(s EdgeStyle) error {
	switch s.Dash {
	case DashSolid, DashDashed, DashDotted, DashBold:
	default:
		return fmt.Errorf("%w: dash %q", ErrInvalidEdgeStyle, s.Dash)
	}
	if s.PenWidth < 0 {
		return fmt.Errorf("%w: negative penwidth %g", ErrInvalidEdgeStyle, s.PenWidth)
	}
	return nil
}

// Node returns the node with the given ID.
func (j *Journey) Node(id string) (Node, bool) {
	n, ok := j.index[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Nodes returns all nodes in insertion order.
func (j *Journey) Nodes() []Node {
	out := make([]Node, len(j.nodes))
	for i, n := range j.nodes {
		out[i] = *n
	}
	return out
}

// Edges returns all edges in insertion order.
func (j *Journey) Edges() []Edge {
	out := make([]Edge, len(j.edges))
	copy(out, j.edges)
	return out
}

// Outgoing returns the edges leaving the node with the given ID.
func (j *Journey) Outgoing(id string) []Edge {
	idx := j.outgoing[id]
	out := make([]Edge, len(idx))
	for i, k := range idx {
		out[i] = j.edges[k]
	}
	return out
}

// NodeCount returns the number of nodes.
func (j *Journey) NodeCount() int { return len(j.nodes) }

// EdgeCount returns the number of edges.
func (j *Journey) EdgeCount() int { return len(j.edges) }

// Validate checks every edge against the declared nodes and returns all
// problems joined, or nil. Journeys built only through AddNode and AddEdge
// always validate; Validate exists for data assembled elsewhere.
func Validate(nodes []Node, edges []Edge) error {
	var errs []error
	seen := make(map[string]bool, len(nodes))
	for i, n := range nodes {
		switch {
		case n.ID == "":
			errs = append(errs, fmt.Errorf("node %d: %w", i, ErrInvalidNodeID))
		case seen[n.ID]:
			errs = append(errs, fmt.Errorf("node %d: %w: %q", i, ErrDuplicateNodeID, n.ID))
		}
		seen[n.ID] = true
	}
	for i, e := range edges {
		if !seen[e.From] {
			errs = append(errs, fmt.Errorf("edge %d (%s -> %s): %w", i, e.From, e.To, ErrUnknownSourceNode))
		}
		if !seen[e.To] {
			errs = append(errs, fmt.Errorf("edge %d (%s -> %s): %w", i, e.From, e.To, ErrUnknownTargetNode))
		}
		if err := checkStyle(e.Style); err != nil {
			errs = append(errs, fmt.Errorf("edge %d (%s -> %s): %w", i, e.From, e.To, err))
		}
	}
	return errors.Join(errs...)
}

// Validate re-checks the journey. See the package-level [Validate].
func (j *Journey) Validate() error {
	return Validate(j.Nodes(), j.Edges())
}

// Build creates a journey from nodes and edges, failing with every problem
// found by [Validate] rather than stopping at the first.
func Build(nodes []Node, edges []Edge) (*Journey, error) {
	if err := Validate(nodes, edges); err != nil {
		return nil, err
	}
	j := New()
	for _, n := range nodes {
		if err := j.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if err := j.AddEdge(e); err != nil {
			return nil, err
		}
	}
	return j, nil
}
