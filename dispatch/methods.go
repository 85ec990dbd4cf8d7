/*
 * StingerQL
 *
 * Copyright 2016 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package dispatch

import (
	"sort"

	"github.com/krotik/common/stringutil"

	"github.com/krotik/stingerql/bfs"
	"github.com/krotik/stingerql/projection"
	"github.com/krotik/stingerql/rpcerror"
)

func (c *Context) handleGetGraphStats(params map[string]interface{}) (map[string]interface{}, error) {
	nv := c.Graph.VertexCount()
	return map[string]interface{}{
		"vertices": nv,
		"edges":    c.Graph.EdgeCountUpTo(nv),
	}, nil
}

func (c *Context) handleBreadthFirstSearch(params map[string]interface{}) (map[string]interface{}, error) {
	source, err := vertexParam(c.Graph, params, "source")
	if err != nil {
		return nil, err
	}
	target, err := vertexParam(c.Graph, params, "target")
	if err != nil {
		return nil, err
	}
	withNames := boolParamOpt(params, "strings", false)

	res, err := bfs.Extract(c.Graph, source, target, withNames)
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{"subgraph": edgePairs(res.Edges)}
	if withNames {
		out["subgraph_str"] = res.EdgeNames
	}
	return out, nil
}

func edgePairs(edges []bfs.Edge) [][2]int64 {
	pairs := make([][2]int64, len(edges))
	for i, e := range edges {
		pairs[i] = [2]int64{e.From, e.To}
	}
	return pairs
}

func (c *Context) handleGetAlgorithms(params map[string]interface{}) (map[string]interface{}, error) {
	names := append([]string{}, c.Algorithms.Names()...)
	sort.Strings(names)
	names = append(names, projection.StingerSentinel)

	return map[string]interface{}{"algorithms": names}, nil
}

func (c *Context) handleGetDataDescription(params map[string]interface{}) (map[string]interface{}, error) {
	name, err := strParam(params, "name")
	if err != nil {
		return nil, err
	}

	if cached, ok := c.descCache.Get(name); ok {
		return map[string]interface{}{"alg_data": cached}, nil
	}

	var columns []string
	if name == projection.StingerSentinel {
		columns = projection.StingerSchema
	} else {
		st, ok := c.Algorithms.Get(name)
		if !ok {
			return nil, rpcerror.AlgNotRunning(name)
		}
		columns = st.Schema.Names()
	}

	display := make([]string, len(columns))
	for i, col := range columns {
		display[i] = stringutil.CreateDisplayString(col)
	}

	c.descCache.Put(name, display)

	return map[string]interface{}{"alg_data": display}, nil
}

/*
runProjection dispatches a projection request either to the Graph
Column Adapter (for the "stinger" sentinel) or to the standard engine
against a published Algorithm State.
*/
func (c *Context) runProjection(name string, req projection.Request) (*projection.Result, error) {
	if name == projection.StingerSentinel {
		return projection.ProjectGraphColumn(c.Graph, req)
	}

	st, ok := c.Algorithms.Get(name)
	if !ok {
		return nil, rpcerror.AlgNotRunning(name)
	}

	return projection.Project(st.Schema, st.Data, st.VertexCount, c.Graph, req)
}

func (c *Context) vertexCountFor(name string) (int64, error) {
	if name == projection.StingerSentinel {
		return c.Graph.VertexCount(), nil
	}
	st, ok := c.Algorithms.Get(name)
	if !ok {
		return 0, rpcerror.AlgNotRunning(name)
	}
	return st.VertexCount, nil
}

/*
resolveStride turns the samples/stride parameter pair into the single
stride value the projection engine takes: samples>0 pre-computes a
stride from the window size, samples=0 leaves the caller's stride (or
the contract's own default of 1) alone.
*/
func resolveStride(count, stride, samples int64) int64 {
	if samples > 0 {
		return (count + samples - 1) / samples
	}
	if stride <= 0 {
		return 1
	}
	return stride
}

func renderProjection(res *projection.Result) map[string]interface{} {
	out := map[string]interface{}{
		"vertex_id": res.VertexID,
		"value":     res.Value,
	}
	if res.VertexStr != nil {
		out["vertex_str"] = res.VertexStr
	}
	if res.Mode == projection.ModeRange || res.Mode == projection.ModeSorted {
		out["offset"] = res.Offset
		out["count"] = res.Count
	}
	if res.Mode == projection.ModeSorted {
		out["order"] = res.Order
	}
	return out
}

func (c *Context) handleGetDataArray(params map[string]interface{}) (map[string]interface{}, error) {
	name, err := strParam(params, "name")
	if err != nil {
		return nil, err
	}
	column, err := strParam(params, "data")
	if err != nil {
		return nil, err
	}

	nv, err := c.vertexCountFor(name)
	if err != nil {
		return nil, err
	}

	stride := int64ParamOpt(params, "stride", 1)
	samples := int64ParamOpt(params, "samples", 0)

	req := projection.Request{
		Mode:         projection.ModeRange,
		Column:       column,
		Start:        0,
		End:          nv,
		Stride:       resolveStride(nv, stride, samples),
		LogScale:     boolParamOpt(params, "log", false),
		IncludeNames: boolParamOpt(params, "strings", false),
	}

	res, err := c.runProjection(name, req)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{column: renderProjection(res)}, nil
}

func (c *Context) handleGetDataArrayRange(params map[string]interface{}) (map[string]interface{}, error) {
	name, err := strParam(params, "name")
	if err != nil {
		return nil, err
	}
	column, err := strParam(params, "data")
	if err != nil {
		return nil, err
	}
	offset, err := int64Param(params, "offset")
	if err != nil {
		return nil, err
	}
	count, err := int64Param(params, "count")
	if err != nil {
		return nil, err
	}

	stride := int64ParamOpt(params, "stride", 1)
	samples := int64ParamOpt(params, "samples", 0)

	req := projection.Request{
		Mode:         projection.ModeRange,
		Column:       column,
		Start:        offset,
		End:          offset + count,
		Stride:       resolveStride(count, stride, samples),
		LogScale:     boolParamOpt(params, "log", false),
		IncludeNames: boolParamOpt(params, "strings", false),
	}

	res, err := c.runProjection(name, req)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{column: renderProjection(res)}, nil
}

func (c *Context) handleGetDataArraySortedRange(params map[string]interface{}) (map[string]interface{}, error) {
	name, err := strParam(params, "name")
	if err != nil {
		return nil, err
	}
	column, err := strParam(params, "data")
	if err != nil {
		return nil, err
	}
	offset, err := int64Param(params, "offset")
	if err != nil {
		return nil, err
	}
	count, err := int64Param(params, "count")
	if err != nil {
		return nil, err
	}

	stride := int64ParamOpt(params, "stride", 1)
	samples := int64ParamOpt(params, "samples", 0)

	req := projection.Request{
		Mode:         projection.ModeSorted,
		Column:       column,
		Start:        offset,
		End:          offset + count,
		Order:        strParamOpt(params, "order", "DESC"),
		Stride:       resolveStride(count, stride, samples),
		LogScale:     boolParamOpt(params, "log", false),
		IncludeNames: boolParamOpt(params, "strings", false),
	}

	res, err := c.runProjection(name, req)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{column: renderProjection(res)}, nil
}

func (c *Context) handleGetDataArraySet(params map[string]interface{}) (map[string]interface{}, error) {
	name, err := strParam(params, "name")
	if err != nil {
		return nil, err
	}
	column, err := strParam(params, "data")
	if err != nil {
		return nil, err
	}
	set, err := int64ArrayParam(params, "set")
	if err != nil {
		return nil, err
	}

	req := projection.Request{
		Mode:         projection.ModeSet,
		Column:       column,
		Vertices:     set,
		Stride:       1,
		IncludeNames: boolParamOpt(params, "strings", false),
	}

	res, err := c.runProjection(name, req)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{column: renderProjection(res)}, nil
}

func (c *Context) handleRegister(params map[string]interface{}) (map[string]interface{}, error) {
	kind, err := strParam(params, "type")
	if err != nil {
		return nil, err
	}

	id, fields, err := c.Sessions.Register(kind, params)
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{"session_id": id}
	for k, v := range fields {
		out[k] = v
	}
	return out, nil
}

func (c *Context) handleRequest(params map[string]interface{}) (map[string]interface{}, error) {
	id, err := int64Param(params, "session_id")
	if err != nil {
		return nil, err
	}

	fields, timeSince, err := c.Sessions.Request(id, params)
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{"session_id": id, "time_since": timeSince}
	for k, v := range fields {
		out[k] = v
	}
	return out, nil
}
