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
	"github.com/Intel-bigdata/velox/pkg/container/types"
	"github.com/Intel-bigdata/velox/pkg/plannode"
	"github.com/Intel-bigdata/velox/pkg/wire"
)

// ExprFromWireConverter translates wire expressions into engine
// expressions. Function anchors resolve through the map built from
// the plan's extension section; declared output types are trusted,
// never re-inferred.
type ExprFromWireConverter struct {
	functionMap map[uint32]string
}

func NewExprFromWireConverter(functionMap map[uint32]string) *ExprFromWireConverter {
	return &ExprFromWireConverter{functionMap: functionMap}
}

// FunctionName resolves an anchor to the plain function name,
// dropping the signature suffix of the declared key.
func (c *ExprFromWireConverter) FunctionName(ctx context.Context, anchor uint32) (string, error) {
	key, ok := c.functionMap[anchor]
	if !ok {
		return "", moerr.NewInvalidInput(ctx, "unknown function reference %d", anchor)
	}
	if i := strings.Index(key, ":"); i >= 0 {
		return key[:i], nil
	}
	return key, nil
}

// FromWireExpr converts one expression against the schema its field
// references index into.
func (c *ExprFromWireConverter) FromWireExpr(ctx context.Context, expr *wire.Expression, input *types.RowType) (plannode.TypedExpr, error) {
	switch {
	case expr == nil:
		return nil, moerr.NewInvalidInput(ctx, "expression is missing")
	case expr.Selection != nil:
		return c.fromFieldReference(ctx, expr.Selection, input)
	case expr.Literal != nil:
		return fromWireLiteral(ctx, expr.Literal)
	case expr.ScalarFunction != nil:
		return c.fromScalarFunction(ctx, expr.ScalarFunction, input)
	case expr.IfThen != nil:
		return c.fromIfThen(ctx, expr.IfThen, input)
	default:
		return nil, moerr.NewNotSupported(ctx, "wire expression %s", expr.String())
	}
}

func (c *ExprFromWireConverter) fromFieldReference(ctx context.Context, ref *wire.Expression_FieldReference, input *types.RowType) (*plannode.FieldAccessExpr, error) {
	if ref.DirectReference == nil || ref.DirectReference.StructField == nil {
		return nil, moerr.NewNotSupported(ctx, "field reference without a direct struct field")
	}
	sf := ref.DirectReference.StructField
	if sf.Child != nil {
		return nil, moerr.NewNotSupported(ctx, "nested field reference")
	}
	idx := int(sf.Field)
	if idx < 0 || idx >= input.Size() {
		return nil, moerr.NewInvalidInput(ctx,
			"field reference %d out of range for %s", idx, input)
	}
	return plannode.NewFieldAccessExpr(input.Name(idx), input.TypeAt(idx)), nil
}

func (c *ExprFromWireConverter) fromScalarFunction(ctx context.Context, fn *wire.Expression_ScalarFunction, input *types.RowType) (*plannode.CallExpr, error) {
	name, err := c.FunctionName(ctx, fn.FunctionReference)
	if err != nil {
		return nil, err
	}
	retTyp, err := ToEngineType(ctx, fn.OutputType)
	if err != nil {
		return nil, err
	}
	args := make([]plannode.TypedExpr, 0, len(fn.Arguments))
	for _, a := range fn.Arguments {
		// Enum and type arguments shape the signature only; the
		// engine call keeps the value arguments.
		if a.Value == nil {
			continue
		}
		arg, err := c.FromWireExpr(ctx, a.Value, input)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return plannode.NewCallExpr(name, retTyp, args...), nil
}

func (c *ExprFromWireConverter) fromIfThen(ctx context.Context, ifThen *wire.Expression_IfThen, input *types.RowType) (*plannode.CallExpr, error) {
	if len(ifThen.Ifs) == 0 || ifThen.Else == nil {
		return nil, moerr.NewInvalidInput(ctx, "if_then needs at least one clause and an else")
	}
	var args []plannode.TypedExpr
	for _, clause := range ifThen.Ifs {
		cond, err := c.FromWireExpr(ctx, clause.If, input)
		if err != nil {
			return nil, err
		}
		then, err := c.FromWireExpr(ctx, clause.Then, input)
		if err != nil {
			return nil, err
		}
		args = append(args, cond, then)
	}
	els, err := c.FromWireExpr(ctx, ifThen.Else, input)
	if err != nil {
		return nil, err
	}
	args = append(args, els)
	// All branches share the first then-branch's type.
	return plannode.NewCallExpr(ifThenFunctionName, args[1].Type(), args...), nil
}

func fromWireLiteral(ctx context.Context, lit *wire.Expression_Literal) (*plannode.ConstantExpr, error) {
	switch {
	case lit.Null != nil:
		t, err := ToEngineType(ctx, lit.Null)
		if err != nil {
			return nil, err
		}
		return plannode.NewNullConstantExpr(t), nil
	case lit.Boolean != nil:
		return plannode.NewConstantExpr(types.New(types.T_bool), *lit.Boolean), nil
	case lit.I8 != nil:
		return plannode.NewConstantExpr(types.New(types.T_int8), int8(*lit.I8)), nil
	case lit.I16 != nil:
		return plannode.NewConstantExpr(types.New(types.T_int16), int16(*lit.I16)), nil
	case lit.I32 != nil:
		return plannode.NewConstantExpr(types.New(types.T_int32), *lit.I32), nil
	case lit.I64 != nil:
		return plannode.NewConstantExpr(types.New(types.T_int64), *lit.I64), nil
	case lit.Fp32 != nil:
		return plannode.NewConstantExpr(types.New(types.T_float32), *lit.Fp32), nil
	case lit.Fp64 != nil:
		return plannode.NewConstantExpr(types.New(types.T_float64), *lit.Fp64), nil
	case lit.String_ != nil:
		return plannode.NewConstantExpr(types.New(types.T_varchar), *lit.String_), nil
	case lit.VarChar != nil:
		t := types.Type{Oid: types.T_varchar, Width: int32(lit.VarChar.Length)}
		return plannode.NewConstantExpr(t, lit.VarChar.Value), nil
	case lit.Binary != nil:
		return plannode.NewConstantExpr(types.New(types.T_binary), lit.Binary), nil
	case lit.Date != nil:
		return plannode.NewConstantExpr(types.New(types.T_date), types.Date(*lit.Date)), nil
	case lit.Timestamp != nil:
		return plannode.NewConstantExpr(types.New(types.T_timestamp), types.Timestamp(*lit.Timestamp)), nil
	default:
		return nil, moerr.NewNotSupported(ctx, "wire literal %s", lit.String())
	}
}
