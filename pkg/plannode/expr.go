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

package plannode

import (
	"fmt"
	"strings"

	"github.com/Intel-bigdata/velox/pkg/container/types"
)

// TypedExpr is a scalar expression with a resolved type. The concrete
// kinds are FieldAccessExpr, ConstantExpr and CallExpr.
type TypedExpr interface {
	Type() types.Type
	String() string
}

// FieldAccessExpr reads one column of the input row by name.
type FieldAccessExpr struct {
	Name string
	Typ  types.Type
}

func NewFieldAccessExpr(name string, typ types.Type) *FieldAccessExpr {
	return &FieldAccessExpr{Name: name, Typ: typ}
}

func (e *FieldAccessExpr) Type() types.Type { return e.Typ }

func (e *FieldAccessExpr) String() string { return e.Name }

// ConstantExpr is a literal. Null carries the type in Typ and a nil
// Value.
type ConstantExpr struct {
	Typ   types.Type
	Value any
	Null  bool
}

func NewConstantExpr(typ types.Type, value any) *ConstantExpr {
	return &ConstantExpr{Typ: typ, Value: value}
}

func NewNullConstantExpr(typ types.Type) *ConstantExpr {
	return &ConstantExpr{Typ: typ, Null: true}
}

func (e *ConstantExpr) Type() types.Type { return e.Typ }

func (e *ConstantExpr) String() string {
	if e.Null {
		return "null:" + e.Typ.String()
	}
	return fmt.Sprintf("%v", e.Value)
}

// CallExpr applies a named function to argument expressions.
type CallExpr struct {
	FnName string
	Args   []TypedExpr
	RetTyp types.Type
}

func NewCallExpr(fnName string, retTyp types.Type, args ...TypedExpr) *CallExpr {
	return &CallExpr{FnName: fnName, Args: args, RetTyp: retTyp}
}

func (e *CallExpr) Type() types.Type { return e.RetTyp }

func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.FnName + "(" + strings.Join(args, ", ") + ")"
}
