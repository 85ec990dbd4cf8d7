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
Package projection implements the typed, sampled, sortable data-array
projection engine: given a column (either one backed by an Algorithm
State buffer, or one of the five graph pseudo-columns) and an
addressing mode, it emits an ordered list of vertex id / value pairs,
optionally resolved to external names.
*/
package projection

// Mode is the addressing mode of a projection request.
type Mode int

const (
	// ModeRange walks a contiguous [Start, End) window of vertex ids.
	ModeRange Mode = iota

	// ModeSorted walks an index permutation ordering all vertices by
	// the selected column's value, restricted to [Start, End).
	ModeSorted

	// ModeSet walks an explicit, caller-supplied list of vertex ids.
	ModeSet
)

/*
Request is the full set of parameters a projection call is driven by.
Start/End apply to ModeRange and ModeSorted; Vertices applies to
ModeSet; Order applies only to ModeSorted ("ASC" or "DESC").

Project and ProjectGraphColumn take the Request by value: End and
Stride are clamped or reset on their own copy, and the caller's Request
is left unchanged.
*/
type Request struct {
	Mode         Mode
	Column       string
	Start        int64
	End          int64
	Order        string
	Vertices     []int64
	Stride       int64
	LogScale     bool
	IncludeNames bool
}

/*
Result is the response shape of a single projection call. Offset/Count
are only meaningful for ModeRange and ModeSorted; Order echoes the
request's Order and is only meaningful for ModeSorted; VertexStr is only
populated when the request asked for names.
*/
type Result struct {
	Mode      Mode
	VertexID  []int64
	Value     []interface{}
	VertexStr []string
	Offset    int64
	Count     int64
	Order     string
}
