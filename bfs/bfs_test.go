/*
 * StingerQL
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package bfs

import (
	"reflect"
	"testing"

	"github.com/krotik/stingerql/graph"
)

func TestExtractReconstructsShortestPathChain(t *testing.T) {
	g := graph.NewMemGraph()
	for i := 0; i < 3; i++ {
		g.AddVertex("")
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)

	res, err := Extract(g, 0, 2, false)
	if err != nil {
		t.Fatal(err)
	}

	want := []Edge{{From: 2, To: 1}, {From: 1, To: 0}}
	if !reflect.DeepEqual(res.Edges, want) {
		t.Errorf("got %v, want %v", res.Edges, want)
	}
}

func TestExtractEmptyWhenTargetHasNoOutEdges(t *testing.T) {
	g := graph.NewMemGraph()
	for i := 0; i < 3; i++ {
		g.AddVertex("")
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	res, err := Extract(g, 0, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Edges) != 0 {
		t.Errorf("expected an empty subgraph when the target has zero out-degree, got %v", res.Edges)
	}
}

func TestExtractEmptyWhenSourceHasNoOutEdges(t *testing.T) {
	g := graph.NewMemGraph()
	g.AddVertex("")
	g.AddVertex("")

	res, err := Extract(g, 0, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Edges) != 0 {
		t.Errorf("expected an empty subgraph when the source has zero out-degree, got %v", res.Edges)
	}
}

func TestExtractEmptyWhenUnreachable(t *testing.T) {
	g := graph.NewMemGraph()
	for i := 0; i < 4; i++ {
		g.AddVertex("")
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(2, 3)
	g.AddEdge(3, 2)

	res, err := Extract(g, 0, 3, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Edges) != 0 {
		t.Errorf("expected an empty subgraph for an unreachable target, got %v", res.Edges)
	}
}

func TestExtractIncludesNames(t *testing.T) {
	g := graph.NewMemGraph()
	g.AddVertex("alice")
	g.AddVertex("bob")
	g.AddVertex("carol")

	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)

	res, err := Extract(g, 0, 2, true)
	if err != nil {
		t.Fatal(err)
	}

	want := [][2]string{{"carol", "bob"}, {"bob", "alice"}}
	if !reflect.DeepEqual(res.EdgeNames, want) {
		t.Errorf("got %v, want %v", res.EdgeNames, want)
	}
}

func TestExtractNilHandle(t *testing.T) {
	if _, err := Extract(nil, 0, 1, false); err == nil {
		t.Error("expected an error for a nil graph handle")
	}
}

func TestExtractSourceEqualsTarget(t *testing.T) {
	g := graph.NewMemGraph()
	g.AddVertex("")
	g.AddEdge(0, 0)

	res, err := Extract(g, 0, 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Edges) != 0 {
		t.Errorf("expected an empty subgraph when source equals target, got %v", res.Edges)
	}
}

func TestExtractDiamondTakesBothShortestPaths(t *testing.T) {
	// 0 -> 1 -> 3, 0 -> 2 -> 3, plus reverse edges so phase 2 can walk back.
	g := graph.NewMemGraph()
	for i := 0; i < 4; i++ {
		g.AddVertex("")
	}
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 3)
	g.AddEdge(3, 1)
	g.AddEdge(3, 2)
	g.AddEdge(1, 0)
	g.AddEdge(2, 0)

	res, err := Extract(g, 0, 3, false)
	if err != nil {
		t.Fatal(err)
	}

	want := []Edge{{From: 3, To: 1}, {From: 3, To: 2}, {From: 1, To: 0}, {From: 2, To: 0}}
	if !reflect.DeepEqual(res.Edges, want) {
		t.Errorf("got %v, want %v", res.Edges, want)
	}
}

func TestExtractEmitsConvergingEdgeOncePerShortestPath(t *testing.T) {
	// s(0) -> n(1) -> x1(2) -> t(4)
	// s(0) -> n(1) -> x2(3) -> t(4)
	// plus reverse edges so phase 2 can walk back. x1 and x2 both funnel
	// back through n, so the edge (n, s) lies on two shortest paths and
	// must be emitted twice, not deduplicated away.
	g := graph.NewMemGraph()
	for i := 0; i < 5; i++ {
		g.AddVertex("")
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 4)
	g.AddEdge(3, 4)
	g.AddEdge(4, 2)
	g.AddEdge(4, 3)
	g.AddEdge(2, 1)
	g.AddEdge(3, 1)
	g.AddEdge(1, 0)

	res, err := Extract(g, 0, 4, false)
	if err != nil {
		t.Fatal(err)
	}

	want := []Edge{
		{From: 4, To: 2}, {From: 4, To: 3},
		{From: 2, To: 1}, {From: 3, To: 1},
		{From: 1, To: 0}, {From: 1, To: 0},
	}
	if !reflect.DeepEqual(res.Edges, want) {
		t.Errorf("got %v, want %v", res.Edges, want)
	}
}
