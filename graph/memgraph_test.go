/*
 * StingerQL
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package graph

import "testing"

func TestMemGraphBasics(t *testing.T) {
	g := NewMemGraph()

	a := g.AddVertex("a")
	b := g.AddVertex("b")
	c := g.AddVertex("")

	g.AddEdge(a, b)
	g.AddEdge(a, c)
	g.AddEdge(b, c)

	if nv := g.VertexCount(); nv != 3 {
		t.Fatalf("expected 3 vertices, got %d", nv)
	}

	if ne := g.EdgeCountUpTo(3); ne != 3 {
		t.Fatalf("expected 3 edges, got %d", ne)
	}

	if d := g.OutDegree(a); d != 2 {
		t.Errorf("expected out-degree 2 for a, got %d", d)
	}

	if d := g.InDegree(c); d != 2 {
		t.Errorf("expected in-degree 2 for c, got %d", d)
	}

	if name, ok := g.NameOf(a); !ok || name != "a" {
		t.Errorf("expected name 'a', got %q, %v", name, ok)
	}

	if _, ok := g.NameOf(c); ok {
		t.Errorf("vertex c should not have a name")
	}

	if id, ok := g.Lookup("b"); !ok || id != b {
		t.Errorf("expected lookup of 'b' to return %d, got %d, %v", b, id, ok)
	}

	edges := g.EdgesFrom(a)
	if len(edges) != 2 || edges[0] != b || edges[1] != c {
		t.Errorf("unexpected out-edges for a: %v", edges)
	}
}

func TestMemGraphOutOfRange(t *testing.T) {
	g := NewMemGraph()
	g.AddVertex("only")

	if d := g.OutDegree(99); d != 0 {
		t.Errorf("expected 0 out-degree for vanished vertex, got %d", d)
	}

	if edges := g.EdgesFrom(-1); edges != nil {
		t.Errorf("expected nil edges for negative vertex id, got %v", edges)
	}
}

func TestMemGraphTypeNames(t *testing.T) {
	g := NewMemGraph()
	v := g.AddVertex("v")
	g.SetType(v, 3)
	g.RegisterTypeName(3, "person")

	if tn := g.TypeName(g.TypeNum(v)); tn != "person" {
		t.Errorf("expected type name 'person', got %q", tn)
	}

	if tn := g.TypeName(42); tn != "" {
		t.Errorf("expected empty type name for unregistered type, got %q", tn)
	}
}
