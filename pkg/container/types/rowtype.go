// Copyright 2022 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import (
	"fmt"
	"strings"
)

// RowType is an ordered (name, type) schema. It is immutable once built:
// plan nodes hand out the same RowType to every caller.
type RowType struct {
	names []string
	types []Type
}

func NewRowType(names []string, typs []Type) (*RowType, error) {
	if len(names) != len(typs) {
		return nil, fmt.Errorf("row type has %d names but %d types", len(names), len(typs))
	}
	return &RowType{names: names, types: typs}, nil
}

// MustRowType is NewRowType for schemas built from literals, mostly in tests.
func MustRowType(names []string, typs []Type) *RowType {
	rt, err := NewRowType(names, typs)
	if err != nil {
		panic(err)
	}
	return rt
}

func (r *RowType) Size() int {
	return len(r.names)
}

func (r *RowType) Name(i int) string {
	return r.names[i]
}

func (r *RowType) TypeAt(i int) Type {
	return r.types[i]
}

func (r *RowType) Names() []string {
	return r.names
}

func (r *RowType) Types() []Type {
	return r.types
}

// IndexOf returns the position of the column with the given name,
// or -1 if the schema has no such column.
func (r *RowType) IndexOf(name string) int {
	for i, n := range r.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Union appends the other schema's columns after this schema's columns.
func (r *RowType) Union(other *RowType) *RowType {
	names := make([]string, 0, len(r.names)+len(other.names))
	typs := make([]Type, 0, len(r.types)+len(other.types))
	names = append(names, r.names...)
	names = append(names, other.names...)
	typs = append(typs, r.types...)
	typs = append(typs, other.types...)
	return &RowType{names: names, types: typs}
}

func (r *RowType) String() string {
	var sb strings.Builder
	sb.WriteString("ROW(")
	for i := range r.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s %s", r.names[i], r.types[i])
	}
	sb.WriteString(")")
	return sb.String()
}
