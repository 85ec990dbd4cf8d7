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
	"fmt"

	"github.com/krotik/stingerql/graph"
	"github.com/krotik/stingerql/rpcerror"
)

/*
Params are decoded from JSON ahead of this package; numbers therefore
arrive as float64 (encoding/json's default) but a caller embedding this
core directly may hand in int/int64 just as well. Every accessor here
tolerates both.
*/

func strParam(params map[string]interface{}, key string) (string, error) {
	v, ok := params[key]
	if !ok {
		return "", rpcerror.BadParams("missing parameter " + key)
	}
	s, ok := v.(string)
	if !ok {
		return "", rpcerror.BadParams(key + " must be a string")
	}
	return s, nil
}

func strParamOpt(params map[string]interface{}, key, def string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return def
}

func toInt64(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case float64:
		return int64(t), true
	}
	return 0, false
}

func int64Param(params map[string]interface{}, key string) (int64, error) {
	v, ok := params[key]
	if !ok {
		return 0, rpcerror.BadParams("missing parameter " + key)
	}
	n, ok := toInt64(v)
	if !ok {
		return 0, rpcerror.BadParams(key + " must be an integer")
	}
	return n, nil
}

func int64ParamOpt(params map[string]interface{}, key string, def int64) int64 {
	if v, ok := params[key]; ok {
		if n, ok := toInt64(v); ok {
			return n
		}
	}
	return def
}

func boolParamOpt(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

/*
vertexParam resolves a V-typed parameter: either an integer vertex id
directly, or an external name string resolved through the graph handle.
*/
func vertexParam(g graph.Handle, params map[string]interface{}, key string) (int64, error) {
	v, ok := params[key]
	if !ok {
		return 0, rpcerror.BadParams("missing parameter " + key)
	}

	if n, ok := toInt64(v); ok {
		return n, nil
	}

	name, ok := v.(string)
	if !ok {
		return 0, rpcerror.BadParams(key + " must be a vertex id or name")
	}

	if g == nil {
		return 0, rpcerror.Internal("graph handle required to resolve vertex name " + name)
	}

	id, ok := g.Lookup(name)
	if !ok {
		return 0, rpcerror.BadParams(fmt.Sprintf("unknown vertex name %q", name))
	}
	return id, nil
}

/*
int64ArrayParam decodes an A-typed parameter (array of vertex ids).
*/
func int64ArrayParam(params map[string]interface{}, key string) ([]int64, error) {
	v, ok := params[key]
	if !ok {
		return nil, rpcerror.BadParams("missing parameter " + key)
	}

	raw, ok := v.([]interface{})
	if !ok {
		if already, ok := v.([]int64); ok {
			return already, nil
		}
		return nil, rpcerror.BadParams(key + " must be an array of integers")
	}

	out := make([]int64, len(raw))
	for i, item := range raw {
		n, ok := toInt64(item)
		if !ok {
			return nil, rpcerror.BadParams(key + " must be an array of integers")
		}
		out[i] = n
	}
	return out, nil
}
