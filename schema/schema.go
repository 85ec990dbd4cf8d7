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
Package schema parses an algorithm's column schema string into an
ordered list of named, typed, byte-offset columns.

A schema string is whitespace delimited. Its first token is a header
whose characters double as the per-column type codes, positionally
aligned with the column names that follow it: "fdil pagerank
betweenness indeg outdeg" describes four columns, typed f, d, i, l in
that order. This is the header's only job; it is never itself a column.
*/
package schema

import (
	"strings"

	"github.com/krotik/common/errorutil"

	"github.com/krotik/stingerql/rpcerror"
)

/*
ElementType is the tag of a column's element. Its byte value is the
schema character that spells it.
*/
type ElementType byte

// The five element types a column may carry.
const (
	TypeF32 ElementType = 'f'
	TypeF64 ElementType = 'd'
	TypeI32 ElementType = 'i'
	TypeI64 ElementType = 'l'
	TypeU8  ElementType = 'b'
)

/*
Stride returns the element's width in bytes, or 0 for an unknown code.
*/
func (t ElementType) Stride() int64 {
	switch t {
	case TypeF32, TypeI32:
		return 4
	case TypeF64, TypeI64:
		return 8
	case TypeU8:
		return 1
	}
	return 0
}

/*
Column is one named, typed slot inside an Algorithm State buffer.
*/
type Column struct {
	Name   string
	Type   ElementType
	Offset int64
}

/*
Schema is the ordered list of columns parsed from a schema string,
together with a name index for lookup.
*/
type Schema struct {
	Columns []Column
	index   map[string]int
}

/*
Lookup finds a column by name.
*/
func (s *Schema) Lookup(name string) (Column, bool) {
	i, ok := s.index[name]
	if !ok {
		return Column{}, false
	}
	return s.Columns[i], true
}

/*
Names returns the column names in schema order.
*/
func (s *Schema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

/*
Size returns the total buffer length this schema describes for nv
vertices.
*/
func (s *Schema) Size(nv int64) int64 {
	var total int64
	for _, c := range s.Columns {
		total += c.Type.Stride() * nv
	}
	return total
}

/*
Parse tokenizes raw and computes each column's byte offset for a buffer
holding nv vertices. The first token is discarded as a column but its
characters are read back as type codes for the columns that follow.
*/
func Parse(raw string, nv int64) (*Schema, error) {
	tokens := strings.Fields(raw)
	if len(tokens) < 1 {
		return nil, rpcerror.SchemaMalformed("empty schema string")
	}

	header := tokens[0]
	names := tokens[1:]

	if len(header) < len(names) {
		return nil, rpcerror.SchemaMalformed("schema header shorter than its column list")
	}

	s := &Schema{index: make(map[string]int, len(names))}

	var offset int64
	for i, name := range names {
		if _, exists := s.index[name]; exists {
			return nil, rpcerror.SchemaMalformed("duplicate column name " + name)
		}

		code := ElementType(header[i])
		stride := code.Stride()
		if stride == 0 {
			return nil, rpcerror.SchemaMalformed("unknown type code " + string(code))
		}

		s.index[name] = len(s.Columns)
		s.Columns = append(s.Columns, Column{Name: name, Type: code, Offset: offset})
		offset += stride * nv
	}

	errorutil.AssertTrue(offset == s.Size(nv), "computed offset does not match schema size")

	return s, nil
}
