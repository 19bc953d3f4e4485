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

	proto "github.com/gogo/protobuf/proto"

	"github.com/Intel-bigdata/velox/pkg/common/moerr"
	"github.com/Intel-bigdata/velox/pkg/container/types"
	"github.com/Intel-bigdata/velox/pkg/plannode"
	"github.com/Intel-bigdata/velox/pkg/wire"
)

// ExprToWireConverter translates engine expressions into wire
// expressions, resolving function calls through the converter chain.
type ExprToWireConverter struct {
	converters []CallConverter
}

func NewExprToWireConverter(lookup *FunctionLookup, collector *FunctionCollector) *ExprToWireConverter {
	return &ExprToWireConverter{
		converters: []CallConverter{
			&ifThenCallConverter{},
			&scalarCallConverter{lookup: lookup, collector: collector},
		},
	}
}

// ToWireExpr converts one expression against the schema its field
// accesses resolve in.
func (c *ExprToWireConverter) ToWireExpr(ctx context.Context, expr plannode.TypedExpr, input *types.RowType) (*wire.Expression, error) {
	switch e := expr.(type) {
	case *plannode.FieldAccessExpr:
		idx := input.IndexOf(e.Name)
		if idx < 0 {
			return nil, moerr.NewInvalidInput(ctx, "field %s not found in %s", e.Name, input)
		}
		return &wire.Expression{Selection: wire.NewDirectFieldRef(int32(idx))}, nil
	case *plannode.ConstantExpr:
		lit, err := toWireLiteral(ctx, e)
		if err != nil {
			return nil, err
		}
		return &wire.Expression{Literal: lit}, nil
	case *plannode.CallExpr:
		for _, conv := range c.converters {
			out, handled, err := conv.Convert(ctx, e, input, c)
			if err != nil {
				return nil, err
			}
			if handled {
				return out, nil
			}
		}
		return nil, moerr.NewNotSupported(ctx, "function call %s", e.String())
	default:
		return nil, moerr.NewNotSupported(ctx, "expression %s", expr.String())
	}
}

// literalValue asserts the held value against the type tag; a mismatch
// is an input error, never a panic.
func literalValue[T any](ctx context.Context, c *plannode.ConstantExpr) (T, error) {
	v, ok := c.Value.(T)
	if !ok {
		return v, moerr.NewInvalidInput(ctx,
			"literal of type %s holds a %T value", c.Typ, c.Value)
	}
	return v, nil
}

func toWireLiteral(ctx context.Context, c *plannode.ConstantExpr) (*wire.Expression_Literal, error) {
	if c.Null {
		wt, err := ToWireType(ctx, c.Typ)
		if err != nil {
			return nil, err
		}
		return &wire.Expression_Literal{Null: wt, Nullable: true}, nil
	}
	switch c.Typ.Oid {
	case types.T_bool:
		v, err := literalValue[bool](ctx, c)
		if err != nil {
			return nil, err
		}
		return &wire.Expression_Literal{Boolean: proto.Bool(v)}, nil
	case types.T_int8:
		v, err := literalValue[int8](ctx, c)
		if err != nil {
			return nil, err
		}
		return &wire.Expression_Literal{I8: proto.Int32(int32(v))}, nil
	case types.T_int16:
		v, err := literalValue[int16](ctx, c)
		if err != nil {
			return nil, err
		}
		return &wire.Expression_Literal{I16: proto.Int32(int32(v))}, nil
	case types.T_int32:
		v, err := literalValue[int32](ctx, c)
		if err != nil {
			return nil, err
		}
		return &wire.Expression_Literal{I32: proto.Int32(v)}, nil
	case types.T_int64:
		v, err := literalValue[int64](ctx, c)
		if err != nil {
			return nil, err
		}
		return &wire.Expression_Literal{I64: proto.Int64(v)}, nil
	case types.T_float32:
		v, err := literalValue[float32](ctx, c)
		if err != nil {
			return nil, err
		}
		return &wire.Expression_Literal{Fp32: proto.Float32(v)}, nil
	case types.T_float64:
		v, err := literalValue[float64](ctx, c)
		if err != nil {
			return nil, err
		}
		return &wire.Expression_Literal{Fp64: proto.Float64(v)}, nil
	case types.T_varchar:
		v, err := literalValue[string](ctx, c)
		if err != nil {
			return nil, err
		}
		return &wire.Expression_Literal{String_: proto.String(v)}, nil
	case types.T_binary:
		v, err := literalValue[[]byte](ctx, c)
		if err != nil {
			return nil, err
		}
		return &wire.Expression_Literal{Binary: v}, nil
	case types.T_date:
		v, err := literalValue[types.Date](ctx, c)
		if err != nil {
			return nil, err
		}
		return &wire.Expression_Literal{Date: proto.Int32(int32(v))}, nil
	case types.T_timestamp:
		v, err := literalValue[types.Timestamp](ctx, c)
		if err != nil {
			return nil, err
		}
		return &wire.Expression_Literal{Timestamp: proto.Int64(int64(v))}, nil
	default:
		return nil, moerr.NewNotSupported(ctx, "literal of type %s", c.Typ)
	}
}
