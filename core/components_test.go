package core_test

import (
	"reflect"
	"testing"

	"github.com/evolab/phylo/core"
)

// forest builds two components: chain A→B→C and edge X→Y.
func forest(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"X", "Y"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	return g
}

// TestWeaklyConnectedComponents verifies membership, member sorting, and
// discovery order seeded by sorted ids.
func TestWeaklyConnectedComponents(t *testing.T) {
	g := forest(t)
	comps := g.WeaklyConnectedComponents()
	want := [][]string{{"A", "B", "C"}, {"X", "Y"}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("components = %v; want %v", comps, want)
	}

	// direction must not matter: reverse one edge of a component
	g2 := core.NewGraph()
	if err := g2.AddEdge("B", "A"); err != nil {
		t.Fatal(err)
	}
	if err := g2.AddEdge("B", "C"); err != nil {
		t.Fatal(err)
	}
	if comps := g2.WeaklyConnectedComponents(); len(comps) != 1 {
		t.Errorf("components ignoring direction = %d; want 1", len(comps))
	}
}

// TestIsWeaklyConnected covers connected, forest, singleton, and empty cases.
func TestIsWeaklyConnected(t *testing.T) {
	if forest(t).IsWeaklyConnected() {
		t.Error("forest reported connected")
	}
	g := core.NewGraph()
	if err := g.AddEdge("A", "B"); err != nil {
		t.Fatal(err)
	}
	if !g.IsWeaklyConnected() {
		t.Error("single component reported disconnected")
	}
	single := core.NewGraph()
	if err := single.AddTaxon("A"); err != nil {
		t.Fatal(err)
	}
	if !single.IsWeaklyConnected() {
		t.Error("singleton reported disconnected")
	}
	// zero components, not one
	if core.NewGraph().IsWeaklyConnected() {
		t.Error("empty graph reported connected")
	}
}
