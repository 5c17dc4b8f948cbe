package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/evolab/phylo/core"
)

// TestAddTaxon covers insertion, idempotence, and the empty-id error.
func TestAddTaxon(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddTaxon(""); !errors.Is(err, core.ErrEmptyTaxonID) {
		t.Errorf("empty id: want ErrEmptyTaxonID, got %v", err)
	}
	if err := g.AddTaxon("A"); err != nil {
		t.Fatalf("AddTaxon(A): %v", err)
	}
	if err := g.AddTaxon("A"); err != nil {
		t.Errorf("re-adding A: want nil, got %v", err)
	}
	if !g.HasTaxon("A") || g.HasTaxon("B") {
		t.Errorf("HasTaxon: A=%v B=%v; want true false", g.HasTaxon("A"), g.HasTaxon("B"))
	}
	if n := g.TaxonCount(); n != 1 {
		t.Errorf("TaxonCount = %d; want 1", n)
	}
}

// TestAddEdge covers auto-added endpoints, duplicate no-op, and self-loops.
func TestAddEdge(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("A", "B"); err != nil {
		t.Fatalf("AddEdge(A,B): %v", err)
	}
	if !g.HasTaxon("A") || !g.HasTaxon("B") {
		t.Error("endpoints not auto-added")
	}
	if !g.HasEdge("A", "B") || g.HasEdge("B", "A") {
		t.Error("edge direction wrong")
	}
	// duplicate edge is a no-op
	if err := g.AddEdge("A", "B"); err != nil {
		t.Errorf("duplicate edge: want nil, got %v", err)
	}
	if n := g.EdgeCount(); n != 1 {
		t.Errorf("EdgeCount = %d; want 1", n)
	}
	if err := g.AddEdge("A", "A"); !errors.Is(err, core.ErrSelfLoop) {
		t.Errorf("self-loop: want ErrSelfLoop, got %v", err)
	}
	if err := g.AddEdge("", "B"); !errors.Is(err, core.ErrEmptyTaxonID) {
		t.Errorf("empty endpoint: want ErrEmptyTaxonID, got %v", err)
	}
}

// TestAdjacency verifies Parents/Children contents, sorting, and degrees.
func TestAdjacency(t *testing.T) {
	g := core.NewGraph()
	// B and C are children of A; D has parents B and C (sexual merge).
	for _, e := range [][2]string{{"A", "C"}, {"A", "B"}, {"B", "D"}, {"C", "D"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	kids, err := g.Children("A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"B", "C"}; !reflect.DeepEqual(kids, want) {
		t.Errorf("Children(A) = %v; want %v", kids, want)
	}
	parents, err := g.Parents("D")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"B", "C"}; !reflect.DeepEqual(parents, want) {
		t.Errorf("Parents(D) = %v; want %v", parents, want)
	}
	if in, _ := g.InDegree("D"); in != 2 {
		t.Errorf("InDegree(D) = %d; want 2", in)
	}
	if out, _ := g.OutDegree("A"); out != 2 {
		t.Errorf("OutDegree(A) = %d; want 2", out)
	}
	if in, _ := g.InDegree("A"); in != 0 {
		t.Errorf("InDegree(A) = %d; want 0", in)
	}
	if _, err := g.Parents("missing"); !errors.Is(err, core.ErrTaxonNotFound) {
		t.Errorf("Parents(missing): want ErrTaxonNotFound, got %v", err)
	}
	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(g.TaxonIDs(), want) {
		t.Errorf("TaxonIDs = %v; want %v", g.TaxonIDs(), want)
	}
}

// TestAttributes covers Set/Attr/HasAttr/Attrs and copy independence.
func TestAttributes(t *testing.T) {
	g := core.NewGraph()
	if err := g.SetAttr("A", "trait", core.Str("x")); !errors.Is(err, core.ErrTaxonNotFound) {
		t.Errorf("SetAttr on missing taxon: want ErrTaxonNotFound, got %v", err)
	}
	if err := g.AddTaxonWithAttrs("A", core.Attrs{"trait": core.Str("x")}); err != nil {
		t.Fatal(err)
	}
	if err := g.SetAttr("A", "origin_time", core.Num(3)); err != nil {
		t.Fatal(err)
	}
	v, present, err := g.Attr("A", "trait")
	if err != nil || !present || !v.Equal(core.Str("x")) {
		t.Errorf("Attr(A, trait) = %v, %v, %v", v, present, err)
	}
	if _, present, _ := g.Attr("A", "garbage"); present {
		t.Error("Attr(A, garbage) present = true")
	}
	if _, _, err := g.Attr("missing", "trait"); !errors.Is(err, core.ErrTaxonNotFound) {
		t.Errorf("Attr on missing taxon: want ErrTaxonNotFound, got %v", err)
	}
	if !g.HasAttr("A", "trait") || g.HasAttr("A", "garbage") || g.HasAttr("missing", "trait") {
		t.Error("HasAttr misreports")
	}

	// Attrs returns an independent copy.
	attrs, err := g.Attrs("A")
	if err != nil {
		t.Fatal(err)
	}
	attrs["trait"] = core.Str("mutated")
	v, _, _ = g.Attr("A", "trait")
	if !v.Equal(core.Str("x")) {
		t.Errorf("graph mutated through Attrs copy: trait = %v", v)
	}
}

// TestSubgraph verifies induced edges, copy independence, and the missing-id
// error.
func TestSubgraph(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.SetAttr("B", "trait", core.Str("x")); err != nil {
		t.Fatal(err)
	}

	sub, err := g.Subgraph([]string{"A", "B", "C"})
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(sub.TaxonIDs(), want) {
		t.Errorf("sub.TaxonIDs = %v; want %v", sub.TaxonIDs(), want)
	}
	if !sub.HasEdge("A", "B") || !sub.HasEdge("B", "C") || sub.HasEdge("C", "D") {
		t.Error("induced edges wrong")
	}
	if n := sub.EdgeCount(); n != 2 {
		t.Errorf("sub.EdgeCount = %d; want 2", n)
	}
	// independence: mutating the copy leaves the source untouched
	if err := sub.SetAttr("B", "trait", core.Str("changed")); err != nil {
		t.Fatal(err)
	}
	v, _, _ := g.Attr("B", "trait")
	if !v.Equal(core.Str("x")) {
		t.Errorf("source mutated through subgraph: trait = %v", v)
	}
	if _, err := g.Subgraph([]string{"A", "nope"}); !errors.Is(err, core.ErrTaxonNotFound) {
		t.Errorf("Subgraph with missing id: want ErrTaxonNotFound, got %v", err)
	}
}

// TestClone verifies the deep copy matches and detaches from the source.
func TestClone(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("A", "B"); err != nil {
		t.Fatal(err)
	}
	c := g.Clone()
	if !reflect.DeepEqual(c.TaxonIDs(), g.TaxonIDs()) || c.EdgeCount() != g.EdgeCount() {
		t.Error("clone differs from source")
	}
	if err := c.AddEdge("B", "E"); err != nil {
		t.Fatal(err)
	}
	if g.HasTaxon("E") {
		t.Error("source gained taxon added to clone")
	}
}
