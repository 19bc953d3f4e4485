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

import "github.com/Intel-bigdata/velox/pkg/wire"

type collectedFunction struct {
	anchor uint32
	key    string
	uri    string
}

// FunctionCollector assigns anchors to the functions one conversion
// references and emits the plan's extension section. Anchors are
// monotonic from 1 within a conversion; the same signature always gets
// the same anchor.
type FunctionCollector struct {
	next    uint32
	byKey   map[string]uint32
	entries []collectedFunction
}

func NewFunctionCollector() *FunctionCollector {
	return &FunctionCollector{next: 1, byKey: make(map[string]uint32)}
}

// GetFunctionReference returns the anchor for the resolved function,
// assigning a new one on first use.
func (c *FunctionCollector) GetFunctionReference(fn *FunctionAnchor) uint32 {
	if anchor, ok := c.byKey[fn.Key]; ok {
		return anchor
	}
	anchor := c.next
	c.next++
	c.byKey[fn.Key] = anchor
	c.entries = append(c.entries, collectedFunction{anchor: anchor, key: fn.Key, uri: fn.URI})
	return anchor
}

// AddExtensionsToPlan writes the extension_uris and extensions
// sections: one URI entry per distinct catalog file in first-use
// order, one function declaration per collected signature in anchor
// order.
func (c *FunctionCollector) AddExtensionsToPlan(plan *wire.Plan) {
	uriAnchors := make(map[string]uint32)
	for _, e := range c.entries {
		if _, ok := uriAnchors[e.uri]; ok {
			continue
		}
		anchor := uint32(len(uriAnchors) + 1)
		uriAnchors[e.uri] = anchor
		plan.ExtensionUris = append(plan.ExtensionUris, &wire.SimpleExtensionURI{
			ExtensionUriAnchor: anchor,
			Uri:                e.uri,
		})
	}
	for _, e := range c.entries {
		plan.Extensions = append(plan.Extensions, &wire.SimpleExtensionDeclaration{
			ExtensionFunction: &wire.SimpleExtensionDeclaration_ExtensionFunction{
				ExtensionUriReference: uriAnchors[e.uri],
				FunctionAnchor:        e.anchor,
				Name:                  e.key,
			},
		})
	}
}
