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

// FunctionMappings renames engine function names to their catalog
// names before lookup.
type FunctionMappings map[string]string

// Lookup returns the catalog name for an engine name, or the engine
// name itself when no mapping applies.
func (m FunctionMappings) Lookup(name string) string {
	if mapped, ok := m[name]; ok {
		return mapped
	}
	return name
}

// DefaultScalarMappings covers the engine spellings that differ from
// the catalog.
func DefaultScalarMappings() FunctionMappings {
	return FunctionMappings{
		"plus":     "add",
		"minus":    "subtract",
		"times":    "multiply",
		"divide":   "divide",
		"mod":      "modulus",
		"equalto":  "eq",
		"not_null": "is_not_null",
	}
}

// DefaultAggregateMappings is empty; aggregate names match the
// catalog.
func DefaultAggregateMappings() FunctionMappings {
	return FunctionMappings{}
}
