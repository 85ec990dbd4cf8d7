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
Package algstate holds the published state of running analytics: a
name, the raw schema string and its parsed form, a packed column
buffer, and the vertex count the buffer was produced for.
*/
package algstate

import (
	"github.com/krotik/common/errorutil"

	"github.com/krotik/stingerql/schema"
)

/*
State is one algorithm's published result. It is immutable once built;
a new analytic pass produces a new State rather than mutating this one,
which is what lets the Registry hand out a snapshot a projection call
can treat as stable for its whole duration.
*/
type State struct {
	Name        string
	RawSchema   string
	Schema      *schema.Schema
	Data        []byte
	VertexCount int64
}

/*
New parses rawSchema and wraps data as a State for nv vertices. It
panics (via errorutil) if data's length does not match what the schema
and vertex count require -- this is a contract violation by the
analytic runtime, not a client-facing error.
*/
func New(name, rawSchema string, data []byte, nv int64) (*State, error) {
	sc, err := schema.Parse(rawSchema, nv)
	if err != nil {
		return nil, err
	}

	errorutil.AssertTrue(int64(len(data)) == sc.Size(nv),
		"algorithm state buffer length does not match its schema")

	return &State{
		Name:        name,
		RawSchema:   rawSchema,
		Schema:      sc,
		Data:        data,
		VertexCount: nv,
	}, nil
}
