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
Package dispatch is the method dispatcher: it owns no business logic of
its own, only the translation between a {method, params} envelope and
calls into schema, projection, bfs and session. A *Context bundles the
graph handle, the algorithm state registry and the session registry and
is passed explicitly into every call -- this is the "transport-layer
glue" a real server's main loop would hold the root of, rather than
ambient global state.
*/
package dispatch

import (
	"github.com/krotik/common/datautil"

	"github.com/krotik/stingerql/algstate"
	"github.com/krotik/stingerql/graph"
	"github.com/krotik/stingerql/rpcerror"
	"github.com/krotik/stingerql/session"
)

/*
Context is the root object every method handler runs against.
*/
type Context struct {
	Graph      graph.Handle
	Algorithms *algstate.Registry
	Sessions   *session.Registry

	descCache *datautil.MapCache
}

/*
NewContext builds a dispatch context over the given collaborators. The
data-description cache is capped at 64 entries and a 30 second age,
enough to smooth out a burst of get_data_description calls against a
slowly changing algorithm roster. Entries are keyed by algorithm name
only, so a description cached for a name can still be served for up to
30 seconds after that algorithm is republished with a different schema.
*/
func NewContext(g graph.Handle, algorithms *algstate.Registry, sessions *session.Registry) *Context {
	return &Context{
		Graph:      g,
		Algorithms: algorithms,
		Sessions:   sessions,
		descCache:  datautil.NewMapCache(64, 30),
	}
}

/*
methodTable maps every method name this core answers to its handler.
*/
var methodTable = map[string]func(*Context, map[string]interface{}) (map[string]interface{}, error){
	"get_graph_stats":            (*Context).handleGetGraphStats,
	"breadth_first_search":       (*Context).handleBreadthFirstSearch,
	"get_algorithms":             (*Context).handleGetAlgorithms,
	"get_data_description":       (*Context).handleGetDataDescription,
	"get_data_array":             (*Context).handleGetDataArray,
	"get_data_array_range":       (*Context).handleGetDataArrayRange,
	"get_data_array_sorted_range": (*Context).handleGetDataArraySortedRange,
	"get_data_array_set":         (*Context).handleGetDataArraySet,
	"register":                   (*Context).handleRegister,
	"request":                    (*Context).handleRequest,
}

/*
Call routes method to its handler. Call itself raises only the error
for an unrecognized method; the handlers raise parameter errors and
AlgNotRunning themselves, and pass through every other error from the
component they called into.
*/
func (c *Context) Call(method string, params map[string]interface{}) (map[string]interface{}, error) {
	handler, ok := methodTable[method]
	if !ok {
		return nil, rpcerror.MethodUnknown(method)
	}

	if params == nil {
		params = map[string]interface{}{}
	}

	return handler(c, params)
}
