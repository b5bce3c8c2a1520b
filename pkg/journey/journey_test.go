package journey

import (
	"errors"
	"testing"
)

func TestAddNode(t *testing.T) {
	j := New()
	if err := j.AddNode(Node{ID: "a", Label: "A"}); err != nil {
		t.Fatalf("AddNode() error: %v", err)
	}
	if err := j.AddNode(Node{ID: "", Label: "empty"}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(empty ID) = %v, want ErrInvalidNodeID", err)
	}
	if err := j.AddNode(Node{ID: "a", Label: "again"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(duplicate) = %v, want ErrDuplicateNodeID", err)
	}

	n, ok := j.Node("a")
	if !ok {
		t.Fatal("Node(a) not found")
	}
	if n.Status != StatusBacklog {
		t.Errorf("zero status should default to backlog, got %q", n.Status)
	}
	if j.NodeCount() != 1 {
		t.Errorf("NodeCount() = %d, want 1", j.NodeCount())
	}
}

func TestAddEdge(t *testing.T) {
	j := New()
	_ = j.AddNode(Node{ID: "a"})
	_ = j.AddNode(Node{ID: "b"})

	tests := []struct {
		name string
		edge Edge
		want error
	}{
		{"ok", Edge{From: "a", To: "b", Label: "led to"}, nil},
		{"unknown source", Edge{From: "x", To: "b"}, ErrUnknownSourceNode},
		{"unknown target", Edge{From: "a", To: "x"}, ErrUnknownTargetNode},
		{"bad dash", Edge{From: "a", To: "b", Style: EdgeStyle{Dash: "wavy"}}, ErrInvalidEdgeStyle},
		{"negative pen", Edge{From: "a", To: "b", Style: EdgeStyle{PenWidth: -1}}, ErrInvalidEdgeStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := j.AddEdge(tt.edge)
			if tt.want == nil && err != nil {
				t.Fatalf("AddEdge() error: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("AddEdge() = %v, want %v", err, tt.want)
			}
		})
	}

	if j.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", j.EdgeCount())
	}
	if out := j.Outgoing("a"); len(out) != 1 || out[0].To != "b" {
		t.Errorf("Outgoing(a) = %v, want one edge to b", out)
	}
	if out := j.Outgoing("b"); len(out) != 0 {
		t.Errorf("Outgoing(b) = %v, want none", out)
	}
}

func TestNodesPreserveOrder(t *testing.T) {
	j := New()
	ids := []string{"z", "a", "m"}
	for _, id := range ids {
		_ = j.AddNode(Node{ID: id})
	}
	for i, n := range j.Nodes() {
		if n.ID != ids[i] {
			t.Errorf("Nodes()[%d] = %q, want %q", i, n.ID, ids[i])
		}
	}
}

func TestNodesReturnsCopies(t *testing.T) {
	j := New()
	_ = j.AddNode(Node{ID: "a", Label: "A"})
	nodes := j.Nodes()
	nodes[0].Label = "changed"
	if n, _ := j.Node("a"); n.Label != "A" {
		t.Errorf("Nodes() exposed internal state: label = %q", n.Label)
	}
}

func TestValidate(t *testing.T) {
	nodes := []Node{{ID: "a"}, {ID: "b"}, {ID: "a"}, {ID: ""}}
	edges := []Edge{
		{From: "a", To: "b"},
		{From: "ghost", To: "b"},
		{From: "a", To: "phantom"},
	}

	err := Validate(nodes, edges)
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, want := range []error{ErrDuplicateNodeID, ErrInvalidNodeID, ErrUnknownSourceNode, ErrUnknownTargetNode} {
		if !errors.Is(err, want) {
			t.Errorf("Validate() = %v, missing %v", err, want)
		}
	}
}

func TestBuild_ReportsDanglingEdge(t *testing.T) {
	_, err := Build([]Node{{ID: "a"}}, []Edge{{From: "a", To: "b"}})
	if !errors.Is(err, ErrUnknownTargetNode) {
		t.Errorf("Build() = %v, want ErrUnknownTargetNode", err)
	}
}

func TestHistory(t *testing.T) {
	j := History()

	if j.NodeCount() != 7 {
		t.Errorf("NodeCount() = %d, want 7", j.NodeCount())
	}
	if j.EdgeCount() != 6 {
		t.Errorf("EdgeCount() = %d, want 6", j.EdgeCount())
	}
	if err := j.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}

	for _, e := range j.Edges() {
		if _, ok := j.Node(e.From); !ok {
			t.Errorf("edge %s -> %s: source not declared", e.From, e.To)
		}
		if _, ok := j.Node(e.To); !ok {
			t.Errorf("edge %s -> %s: target not declared", e.From, e.To)
		}
	}

	pg, _ := j.Node("PeterGreen")
	if pg.Status != StatusNext {
		t.Errorf("PeterGreen status = %q, want next", pg.Status)
	}
}

func TestHistoryIsFresh(t *testing.T) {
	a := History()
	_ = a.AddNode(Node{ID: "extra"})
	if b := History(); b.NodeCount() != 7 {
		t.Errorf("History() shares state between calls: %d nodes", b.NodeCount())
	}
}
