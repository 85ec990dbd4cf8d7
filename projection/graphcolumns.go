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
	"github.com/krotik/stingerql/graph"
	"github.com/krotik/stingerql/rpcerror"
)

/*
StingerSentinel is the reserved algorithm name that routes a projection
request to the Graph Column Adapter instead of an Algorithm State.
*/
const StingerSentinel = "stinger"

/*
StingerSchema is the adapter's virtual column list, in the order the
external interface promises it.
*/
var StingerSchema = []string{
	"vertex_weight",
	"vertex_type_num",
	"vertex_type_name",
	"vertex_indegree",
	"vertex_outdegree",
}

/*
ProjectGraphColumn runs a projection against one of the five pseudo-
columns backed directly by the graph handle, sharing every piece of the
validation, sampling and response-assembly logic Project uses for
Algorithm State columns.
*/
func ProjectGraphColumn(g graph.Handle, req Request) (*Result, error) {
	if g == nil {
		return nil, rpcerror.Internal("graph handle required for pseudo-column projection")
	}

	value, cmp, ok := graphColumnAccessors(g, req.Column)
	if !ok {
		return nil, rpcerror.ColumnUnknown(req.Column)
	}

	return run(req, g.VertexCount(), g, value, cmp)
}

func graphColumnAccessors(g graph.Handle, column string) (func(int64) interface{}, func(a, b int64) int, bool) {
	switch column {
	case "vertex_weight":
		value := func(v int64) interface{} { return g.Weight(v) }
		return value, numericCompare(value), true

	case "vertex_type_num":
		value := func(v int64) interface{} { return g.TypeNum(v) }
		return value, numericCompare(value), true

	case "vertex_indegree":
		value := func(v int64) interface{} { return g.InDegree(v) }
		return value, numericCompare(value), true

	case "vertex_outdegree":
		value := func(v int64) interface{} { return g.OutDegree(v) }
		return value, numericCompare(value), true

	case "vertex_type_name":
		value := func(v int64) interface{} { return g.TypeName(g.TypeNum(v)) }
		typeNum := func(v int64) interface{} { return g.TypeNum(v) }
		return value, numericCompare(typeNum), true
	}

	return nil, nil, false
}
