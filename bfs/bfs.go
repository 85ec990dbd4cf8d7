/*
 * StingerQL
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

/*
Package bfs extracts the minimal subgraph containing every shortest
path between two vertices of the live graph, as an edge list.
*/
package bfs

import (
	"github.com/krotik/stingerql/graph"
	"github.com/krotik/stingerql/rpcerror"
)

/*
Edge is a directed pair (from, to) in the reconstructed subgraph.
*/
type Edge struct {
	From int64
	To   int64
}

/*
Result is the output of a BFS call: the edge list and, if requested,
the same edges with vertex ids resolved to external names.
*/
type Result struct {
	Edges     []Edge
	EdgeNames [][2]string
}

/*
Extract finds every edge that lies on a shortest path from source to
target and returns them oriented from target back to source, in the
graph handle's natural neighbor-iteration order. A target that cannot
be reached -- including the degenerate case where either vertex has no
out-edges -- yields an empty, non-error Result.
*/
func Extract(g graph.Handle, source, target int64, includeNames bool) (*Result, error) {
	if g == nil {
		return nil, rpcerror.Internal("graph handle required for breadth_first_search")
	}

	res := &Result{}

	if g.OutDegree(source) == 0 || g.OutDegree(target) == 0 {
		return res, nil
	}

	levels, reached := forwardLevels(g, source, target)
	if !reached {
		return res, nil
	}

	res.Edges = reverseReconstruct(g, target, levels)

	if includeNames {
		res.EdgeNames = make([][2]string, len(res.Edges))
		for i, e := range res.Edges {
			from, _ := g.NameOf(e.From)
			to, _ := g.NameOf(e.To)
			res.EdgeNames[i] = [2]string{from, to}
		}
	}

	return res, nil
}

/*
forwardLevels runs the forward level BFS of phase 1: level 0 is
{source}; each subsequent level is the union of unvisited neighbors of
the previous level. It stops as soon as target is marked found, or the
frontier runs dry, and reports which happened.
*/
func forwardLevels(g graph.Handle, source, target int64) ([][]int64, bool) {
	found := map[int64]bool{source: true}
	levels := [][]int64{{source}}

	if source == target {
		return levels, true
	}

	for {
		current := levels[len(levels)-1]

		var next []int64
		for _, v := range current {
			for _, n := range g.EdgesFrom(v) {
				if !found[n] {
					found[n] = true
					next = append(next, n)
				}
			}
		}

		levels = append(levels, next)

		if found[target] {
			return levels, true
		}
		if len(next) == 0 {
			return levels, false
		}
	}
}

/*
reverseReconstruct implements phase 2: discard the level containing
target, then walk the remaining levels back toward source, emitting
every edge from the current frontier into the next level down and
carrying forward the reached vertices as the new frontier. The frontier
is not deduplicated: a vertex reached by two convergent shortest paths
is carried forward once per path, so its own onward edge is emitted
once per path too.
*/
func reverseReconstruct(g graph.Handle, target int64, levels [][]int64) []Edge {
	levels = levels[:len(levels)-1]
	if len(levels) == 0 {
		return nil
	}

	j := len(levels) - 1
	inLevel := levelSet(levels[j])

	var edges []Edge
	var frontier []int64

	for _, n := range g.EdgesFrom(target) {
		if inLevel[n] {
			edges = append(edges, Edge{From: target, To: n})
			frontier = append(frontier, n)
		}
	}

	for j > 0 {
		j--
		inLevel = levelSet(levels[j])

		var next []int64

		for _, v := range frontier {
			for _, n := range g.EdgesFrom(v) {
				if inLevel[n] {
					edges = append(edges, Edge{From: v, To: n})
					next = append(next, n)
				}
			}
		}

		frontier = next
	}

	return edges
}

func levelSet(level []int64) map[int64]bool {
	set := make(map[int64]bool, len(level))
	for _, v := range level {
		set[v] = true
	}
	return set
}
