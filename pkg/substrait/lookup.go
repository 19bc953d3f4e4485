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
	"github.com/tidwall/btree"
)

// FunctionAnchor identifies one resolved function: the catalog file it
// came from and its concrete signature key.
type FunctionAnchor struct {
	URI string
	// Key is the concrete "name:sig1_sig2" form; wildcard variants
	// resolve to the key of the actual argument types.
	Key string
}

// FunctionLookup resolves an engine function call against the catalog.
// Matching runs in three tiers: exact signature, aggregate
// intermediate signature, then wildcard unification. The first match
// wins.
type FunctionLookup struct {
	variants *btree.Map[string, []*FunctionVariant]
	mappings FunctionMappings
}

// NewScalarFunctionLookup indexes the catalog's scalar functions.
func NewScalarFunctionLookup(ext *Extension, mappings FunctionMappings) *FunctionLookup {
	return newFunctionLookup(ext.ScalarFunctions, mappings)
}

// NewAggregateFunctionLookup indexes the catalog's aggregate
// functions.
func NewAggregateFunctionLookup(ext *Extension, mappings FunctionMappings) *FunctionLookup {
	return newFunctionLookup(ext.AggregateFunctions, mappings)
}

func newFunctionLookup(variants []*FunctionVariant, mappings FunctionMappings) *FunctionLookup {
	l := &FunctionLookup{
		variants: btree.NewMap[string, []*FunctionVariant](32),
		mappings: mappings,
	}
	for _, v := range variants {
		vs, _ := l.variants.Get(v.Name)
		l.variants.Set(v.Name, append(vs, v))
	}
	return l
}

// Names returns every indexed function name in sorted order.
func (l *FunctionLookup) Names() []string {
	names := make([]string, 0, l.variants.Len())
	l.variants.Scan(func(name string, _ []*FunctionVariant) bool {
		names = append(names, name)
		return true
	})
	return names
}

// Lookup resolves a call by engine function name and the signature
// tokens of its argument types. A miss returns (nil, false); the
// caller decides whether that is an error.
func (l *FunctionLookup) Lookup(name string, argSigs []string) (*FunctionAnchor, bool) {
	mapped := l.mappings.Lookup(name)
	variants, ok := l.variants.Get(mapped)
	if !ok {
		return nil, false
	}
	key := signatureKey(mapped, argSigs)

	// Tier 1: exact signature, also matching with trailing optional
	// enum arguments stripped.
	for _, v := range variants {
		if v.HasWildcard() {
			continue
		}
		if v.Signature() == key || v.RequiredSignature() == key {
			return &FunctionAnchor{URI: v.URI, Key: key}, true
		}
	}

	// Tier 2: aggregate intermediate (accumulator) signature. An
	// intermediate-input phase calls the function on the accumulator
	// type instead of the declared argument types.
	for _, v := range variants {
		if sig := v.IntermediateSignature(); sig != "" && sig == key {
			return &FunctionAnchor{URI: v.URI, Key: key}, true
		}
	}

	// Tier 3: wildcard unification. Each wildcard symbol must bind to
	// exactly one concrete type across the whole argument list.
	for _, v := range variants {
		if !v.HasWildcard() {
			continue
		}
		if unify(v.RequiredArgs(), argSigs) {
			return &FunctionAnchor{URI: v.URI, Key: key}, true
		}
	}
	return nil, false
}

func unify(args []*Argument, argSigs []string) bool {
	if len(args) != len(argSigs) {
		return false
	}
	bindings := make(map[string]string)
	for i, a := range args {
		if a.Kind != ValueArgument {
			return false
		}
		if !a.Typ.IsWildcard() {
			if a.Typ.Signature() != argSigs[i] {
				return false
			}
			continue
		}
		sym := a.Typ.Name
		if bound, ok := bindings[sym]; ok {
			if bound != argSigs[i] {
				return false
			}
			continue
		}
		bindings[sym] = argSigs[i]
	}
	return true
}
