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

package substrait

import (
	"context"
	"strings"

	"github.com/Intel-bigdata/velox/pkg/common/moerr"
)

// SType is a type as written in a catalog signature: either a concrete
// type or a wildcard symbol bound during lookup.
type SType struct {
	// Name is the raw lowercase type name ("i32", "decimal") or the
	// wildcard symbol ("any", "any1", "T").
	Name string
	// Params holds the parameters of a compound name, e.g.
	// decimal<38,2> yields ["38", "2"].
	Params []string
}

// shortNames maps a catalog type name to the short form used in
// function signature keys.
var shortNames = map[string]string{
	"boolean":       "bool",
	"i8":            "i8",
	"i16":           "i16",
	"i32":           "i32",
	"i64":           "i64",
	"fp32":          "fp32",
	"fp64":          "fp64",
	"string":        "str",
	"binary":        "vbin",
	"timestamp":     "ts",
	"timestamp_tz":  "tstz",
	"date":          "date",
	"time":          "time",
	"interval_year": "iyear",
	"interval_day":  "iday",
	"uuid":          "uuid",
	"fixedchar":     "fchar",
	"varchar":       "vchar",
	"fixedbinary":   "fbin",
	"decimal":       "dec",
	"struct":        "struct",
	"list":          "list",
	"map":           "map",
}

// IsWildcard reports whether the type is a placeholder symbol rather
// than a concrete type. Symbols are spelled "any", "anyN" or a single
// upper-case "T".
func (t *SType) IsWildcard() bool {
	return strings.HasPrefix(t.Name, "any") || t.Name == "T"
}

// Signature returns the short name used in signature keys. Wildcards
// keep their symbol; unrecognized names get the user-type prefix.
func (t *SType) Signature() string {
	if t.IsWildcard() {
		return t.Name
	}
	if s, ok := shortNames[t.Name]; ok {
		return s
	}
	return "u!" + t.Name
}

// SameAs reports whether two signature types denote the same base
// type, ignoring parameters.
func (t *SType) SameAs(other *SType) bool {
	return t.Name == other.Name
}

// DecodeType parses a raw catalog type string. A trailing "?" marks
// nullability and is dropped; compound names keep their parameter
// list, e.g. "DECIMAL<P,S>" yields {decimal [P S]}.
func DecodeType(ctx context.Context, raw string) (*SType, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, moerr.NewBadConfig(ctx, "empty type string")
	}
	s = strings.TrimSuffix(s, "?")
	if i := strings.Index(s, "<"); i >= 0 {
		if !strings.HasSuffix(s, ">") {
			return nil, moerr.NewBadConfig(ctx, "malformed compound type %q", raw)
		}
		base := normalizeTypeName(s[:i])
		inner := s[i+1 : len(s)-1]
		var params []string
		for _, p := range strings.Split(inner, ",") {
			params = append(params, strings.TrimSpace(p))
		}
		return &SType{Name: base, Params: params}, nil
	}
	return &SType{Name: normalizeTypeName(s)}, nil
}

func normalizeTypeName(name string) string {
	// "T" stays upper case; every concrete name is matched folded.
	if name == "T" {
		return name
	}
	return strings.ToLower(name)
}
