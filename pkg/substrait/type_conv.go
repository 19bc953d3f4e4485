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

	"github.com/Intel-bigdata/velox/pkg/common/moerr"
	"github.com/Intel-bigdata/velox/pkg/container/types"
	"github.com/Intel-bigdata/velox/pkg/plannode"
	"github.com/Intel-bigdata/velox/pkg/wire"
)

// decimal64 holds at most 18 digits.
const maxDecimal64Precision = 18

// ToWireType maps an engine type onto the wire type message. Engine
// columns are always nullable, so every emitted kind is marked
// nullable.
func ToWireType(ctx context.Context, t types.Type) (*wire.Type, error) {
	const n = wire.Type_NULLABILITY_NULLABLE
	switch t.Oid {
	case types.T_bool:
		return &wire.Type{Bool: &wire.Type_Boolean{Nullability: n}}, nil
	case types.T_int8:
		return &wire.Type{I8: &wire.Type_I8{Nullability: n}}, nil
	case types.T_int16:
		return &wire.Type{I16: &wire.Type_I16{Nullability: n}}, nil
	case types.T_int32:
		return &wire.Type{I32: &wire.Type_I32{Nullability: n}}, nil
	case types.T_int64:
		return &wire.Type{I64: &wire.Type_I64{Nullability: n}}, nil
	case types.T_float32:
		return &wire.Type{Fp32: &wire.Type_FP32{Nullability: n}}, nil
	case types.T_float64:
		return &wire.Type{Fp64: &wire.Type_FP64{Nullability: n}}, nil
	case types.T_varchar:
		return &wire.Type{String_: &wire.Type_String{Nullability: n}}, nil
	case types.T_binary:
		return &wire.Type{Binary: &wire.Type_Binary{Nullability: n}}, nil
	case types.T_date:
		return &wire.Type{Date: &wire.Type_Date{Nullability: n}}, nil
	case types.T_timestamp:
		return &wire.Type{Timestamp: &wire.Type_Timestamp{Nullability: n}}, nil
	case types.T_decimal64, types.T_decimal128:
		return &wire.Type{Decimal: &wire.Type_Decimal{
			Precision:   t.Width,
			Scale:       t.Scale,
			Nullability: n,
		}}, nil
	default:
		return nil, moerr.NewNotSupported(ctx, "engine type %s in wire conversion", t)
	}
}

// ToEngineType maps a wire type message back to an engine type.
func ToEngineType(ctx context.Context, t *wire.Type) (types.Type, error) {
	switch {
	case t == nil:
		return types.Type{}, moerr.NewInvalidInput(ctx, "wire type is missing")
	case t.Bool != nil:
		return types.New(types.T_bool), nil
	case t.I8 != nil:
		return types.New(types.T_int8), nil
	case t.I16 != nil:
		return types.New(types.T_int16), nil
	case t.I32 != nil:
		return types.New(types.T_int32), nil
	case t.I64 != nil:
		return types.New(types.T_int64), nil
	case t.Fp32 != nil:
		return types.New(types.T_float32), nil
	case t.Fp64 != nil:
		return types.New(types.T_float64), nil
	case t.String_ != nil:
		return types.New(types.T_varchar), nil
	case t.Varchar != nil:
		return types.Type{Oid: types.T_varchar, Width: t.Varchar.Length}, nil
	case t.Binary != nil:
		return types.New(types.T_binary), nil
	case t.Date != nil:
		return types.New(types.T_date), nil
	case t.Timestamp != nil:
		return types.New(types.T_timestamp), nil
	case t.Decimal != nil:
		oid := types.T_decimal64
		if t.Decimal.Precision > maxDecimal64Precision {
			oid = types.T_decimal128
		}
		return types.NewDecimal(oid, t.Decimal.Precision, t.Decimal.Scale), nil
	default:
		return types.Type{}, moerr.NewNotSupported(ctx, "wire type %s", t.String())
	}
}

// ToNamedStruct flattens a row schema into the wire named-struct form.
func ToNamedStruct(ctx context.Context, rt *types.RowType) (*wire.NamedStruct, error) {
	s := &wire.Type_Struct{Nullability: wire.Type_NULLABILITY_REQUIRED}
	for i := 0; i < rt.Size(); i++ {
		wt, err := ToWireType(ctx, rt.TypeAt(i))
		if err != nil {
			return nil, err
		}
		s.Types = append(s.Types, wt)
	}
	return &wire.NamedStruct{Names: rt.Names(), Struct: s}, nil
}

// FromNamedStruct rebuilds a row schema from the wire named-struct
// form. Names and types must pair up one to one.
func FromNamedStruct(ctx context.Context, ns *wire.NamedStruct) (*types.RowType, error) {
	if ns == nil || ns.Struct == nil {
		return nil, moerr.NewInvalidInput(ctx, "named struct is missing")
	}
	if len(ns.Names) != len(ns.Struct.Types) {
		return nil, moerr.NewInvalidInput(ctx,
			"named struct has %d names but %d types", len(ns.Names), len(ns.Struct.Types))
	}
	typs := make([]types.Type, len(ns.Struct.Types))
	for i, wt := range ns.Struct.Types {
		t, err := ToEngineType(ctx, wt)
		if err != nil {
			return nil, err
		}
		typs[i] = t
	}
	return types.NewRowType(append([]string(nil), ns.Names...), typs)
}

// toSignatureType maps an engine type to the short token used in
// catalog signature keys.
func toSignatureType(ctx context.Context, t types.Type) (string, error) {
	switch t.Oid {
	case types.T_bool:
		return "bool", nil
	case types.T_int8:
		return "i8", nil
	case types.T_int16:
		return "i16", nil
	case types.T_int32:
		return "i32", nil
	case types.T_int64:
		return "i64", nil
	case types.T_float32:
		return "fp32", nil
	case types.T_float64:
		return "fp64", nil
	case types.T_varchar:
		return "str", nil
	case types.T_binary:
		return "vbin", nil
	case types.T_date:
		return "date", nil
	case types.T_timestamp:
		return "ts", nil
	case types.T_decimal64, types.T_decimal128:
		return "dec", nil
	default:
		return "", moerr.NewNotSupported(ctx, "engine type %s in function signature", t)
	}
}

// signatureFromCall builds the lookup tokens for a function call from
// its argument types.
func signatureFromCall(ctx context.Context, call *plannode.CallExpr) ([]string, error) {
	sigs := make([]string, len(call.Args))
	for i, arg := range call.Args {
		s, err := toSignatureType(ctx, arg.Type())
		if err != nil {
			return nil, err
		}
		sigs[i] = s
	}
	return sigs, nil
}
