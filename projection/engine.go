/*
 * StingerQL
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package projection

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"

	"github.com/krotik/stingerql/graph"
	"github.com/krotik/stingerql/rpclog"
	"github.com/krotik/stingerql/rpcerror"
	"github.com/krotik/stingerql/schema"
)

/*
Project runs a projection against an Algorithm State's schema and
buffer.
*/
func Project(sc *schema.Schema, data []byte, nv int64, g graph.Handle, req Request) (*Result, error) {
	col, ok := sc.Lookup(req.Column)
	if !ok {
		return nil, rpcerror.ColumnUnknown(req.Column)
	}

	value := func(vtx int64) interface{} {
		return readValue(data, col, vtx)
	}
	cmp := numericCompare(value)

	return run(req, nv, g, value, cmp)
}

/*
readValue decodes the typed element at vtx's slot in col.
*/
func readValue(data []byte, col schema.Column, vtx int64) interface{} {
	stride := col.Type.Stride()
	off := col.Offset + stride*vtx

	switch col.Type {
	case schema.TypeF32:
		return math.Float32frombits(binary.LittleEndian.Uint32(data[off : off+4]))
	case schema.TypeF64:
		return math.Float64frombits(binary.LittleEndian.Uint64(data[off : off+8]))
	case schema.TypeI32:
		return int32(binary.LittleEndian.Uint32(data[off : off+4]))
	case schema.TypeI64:
		return int64(binary.LittleEndian.Uint64(data[off : off+8]))
	case schema.TypeU8:
		return data[off]
	}

	// sc.Lookup only ever returns columns schema.Parse accepted, so
	// every Type has already been validated against this switch.
	panic("unreachable: unknown element type in a parsed schema")
}

/*
numericCompare builds a comparator for sort ordering out of a plain
value function, for the common case where the value is one of the five
numeric element types.
*/
func numericCompare(value func(int64) interface{}) func(a, b int64) int {
	toFloat := func(v interface{}) float64 {
		switch t := v.(type) {
		case float32:
			return float64(t)
		case float64:
			return t
		case int32:
			return float64(t)
		case int64:
			return float64(t)
		case byte:
			return float64(t)
		}
		return 0
	}

	return func(a, b int64) int {
		fa, fb := toFloat(value(a)), toFloat(value(b))
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
}

/*
run implements the validation, column-independent walk and response
assembly shared by schema-backed projections and the Graph Column
Adapter. value returns the typed scalar at a vertex; cmp orders two
vertices by that same value for ModeSorted.
*/
func run(req Request, nv int64, g graph.Handle, value func(int64) interface{}, cmp func(a, b int64) int) (*Result, error) {
	ascending, err := validate(&req, nv, g)
	if err != nil {
		return nil, err
	}

	var start, end int64
	var idx []int64

	switch req.Mode {
	case ModeSet:
		start, end = 0, int64(len(req.Vertices))

	case ModeRange:
		start, end = req.Start, req.End

	case ModeSorted:
		start, end = req.Start, req.End
		idx = sortedIndex(nv, ascending, cmp)
	}

	cursors := sampleCursors(start, end, req.Stride, req.LogScale)

	res := &Result{
		Mode:   req.Mode,
		Offset: start,
		Count:  end - start,
		Order:  req.Order,
	}

	for _, c := range cursors {
		var vtx int64
		switch req.Mode {
		case ModeRange:
			vtx = c
		case ModeSorted:
			vtx = idx[c]
		case ModeSet:
			vtx = req.Vertices[c]
		}

		res.VertexID = append(res.VertexID, vtx)
		res.Value = append(res.Value, value(vtx))

		if req.IncludeNames {
			name, _ := g.NameOf(vtx)
			res.VertexStr = append(res.VertexStr, name)
		}
	}

	return res, nil
}

/*
validate applies the five validation rules of the projection contract,
in order, mutating req.End and req.Stride where the contract calls for
clamping rather than failure. It returns whether a ModeSorted request
wants ascending order.
*/
func validate(req *Request, nv int64, g graph.Handle) (ascending bool, err error) {
	if req.Mode == ModeSet {
		if len(req.Vertices) < 1 {
			return false, rpcerror.BadParams("set mode requires at least one vertex")
		}
	}

	if req.Mode == ModeRange || req.Mode == ModeSorted {
		if req.Start < 0 || req.Start >= nv {
			return false, rpcerror.BadRange(fmt.Sprintf("start %d out of range [0,%d)", req.Start, nv))
		}
		if req.End > nv {
			rpclog.LogWarn("projection: clamping end from", req.End, "to vertex count", nv)
			req.End = nv
		}
	}

	if req.IncludeNames && g == nil {
		return false, rpcerror.Internal("graph handle required to resolve vertex names")
	}

	if req.Stride <= 0 {
		rpclog.LogWarn("projection: resetting non-positive stride", req.Stride, "to 1")
		req.Stride = 1
	}

	if req.Mode == ModeSorted {
		switch req.Order {
		case "ASC":
			ascending = true
		case "DESC":
			ascending = false
		default:
			return false, rpcerror.BadOrder(req.Order)
		}
	}

	return ascending, nil
}

/*
sortedIndex builds the [0,nv) index permutation ordering vertices by
cmp, breaking ties by the lower vertex id. The permutation is scratch:
callers use it for the duration of one call and discard it.
*/
func sortedIndex(nv int64, ascending bool, cmp func(a, b int64) int) []int64 {
	idx := make([]int64, nv)
	for i := range idx {
		idx[i] = int64(i)
	}

	sort.Sort(byValue{idx: idx, cmp: cmp, ascending: ascending})

	return idx
}

/*
byValue implements sort.Interface over an index permutation, ordering
by a column comparator with a vertex-id tiebreak.
*/
type byValue struct {
	idx       []int64
	cmp       func(a, b int64) int
	ascending bool
}

func (s byValue) Len() int      { return len(s.idx) }
func (s byValue) Swap(i, j int) { s.idx[i], s.idx[j] = s.idx[j], s.idx[i] }

func (s byValue) Less(i, j int) bool {
	a, b := s.idx[i], s.idx[j]

	if c := s.cmp(a, b); c != 0 {
		if s.ascending {
			return c < 0
		}
		return c > 0
	}

	return a < b
}
