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
Package graph defines the read view of the live streaming graph that the
query and session core consumes, and a minimal concurrency-safe
in-memory implementation of it.

The real production graph store (its concurrent edge-block layout,
vertex table and name mapping) is an external collaborator the core
only ever sees through the Handle interface; MemGraph exists so this
module builds and tests on its own, standing in for "a separate writer
thread not described here."
*/
package graph

/*
Handle is a read view of the graph. Implementations must tolerate
concurrent mutation: vertex count, degrees and edges may change between
two calls on the same handle, and a vertex id that existed when a call
began may have vanished by the time it returns.
*/
type Handle interface {

	/*
		VertexCount returns the number of known vertices.
	*/
	VertexCount() int64

	/*
		EdgeCountUpTo returns the number of out-edges of the first n vertices.
	*/
	EdgeCountUpTo(n int64) int64

	/*
		OutDegree returns the out-degree of a vertex. Vertices that no longer
		exist report zero rather than erroring.
	*/
	OutDegree(v int64) int64

	/*
		InDegree returns the in-degree of a vertex.
	*/
	InDegree(v int64) int64

	/*
		Weight returns the weight of a vertex.
	*/
	Weight(v int64) int64

	/*
		TypeNum returns the numeric type of a vertex.
	*/
	TypeNum(v int64) int64

	/*
		TypeName resolves a numeric vertex type to its registered name. An
		unregistered type number resolves to the empty string.
	*/
	TypeName(t int64) string

	/*
		NameOf resolves a vertex id to its external string name.
	*/
	NameOf(v int64) (string, bool)

	/*
		Lookup resolves an external string name to a vertex id.
	*/
	Lookup(name string) (int64, bool)

	/*
		EdgesFrom returns a snapshot of the neighbor ids reachable from v in
		the handle's natural iteration order. The returned slice is owned by
		the caller.
	*/
	EdgesFrom(v int64) []int64
}
