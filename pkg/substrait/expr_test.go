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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Intel-bigdata/velox/pkg/common/moerr"
	"github.com/Intel-bigdata/velox/pkg/container/types"
	"github.com/Intel-bigdata/velox/pkg/plannode"
	"github.com/Intel-bigdata/velox/pkg/wire"
)

func newTestExprConverter(t *testing.T) (*ExprToWireConverter, *FunctionCollector) {
	t.Helper()
	collector := NewFunctionCollector()
	lookup := NewScalarFunctionLookup(loadTestExtension(t), DefaultScalarMappings())
	return NewExprToWireConverter(lookup, collector), collector
}

func TestFieldAccessToWire(t *testing.T) {
	ctx := context.Background()
	conv, _ := newTestExprConverter(t)
	input := types.MustRowType(
		[]string{"a", "b"},
		[]types.Type{types.New(types.T_int32), types.New(types.T_varchar)},
	)

	e, err := conv.ToWireExpr(ctx, plannode.NewFieldAccessExpr("b", types.New(types.T_varchar)), input)
	require.NoError(t, err)
	require.NotNil(t, e.Selection)
	require.Equal(t, int32(1), e.Selection.DirectReference.StructField.Field)
	require.NotNil(t, e.Selection.RootReference)

	_, err = conv.ToWireExpr(ctx, plannode.NewFieldAccessExpr("missing", types.New(types.T_int32)), input)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func TestLiteralRoundTrip(t *testing.T) {
	ctx := context.Background()
	conv, _ := newTestExprConverter(t)
	back := NewExprFromWireConverter(nil)
	input := types.MustRowType([]string{"x"}, []types.Type{types.New(types.T_int32)})

	cases := []*plannode.ConstantExpr{
		plannode.NewConstantExpr(types.New(types.T_bool), true),
		plannode.NewConstantExpr(types.New(types.T_int8), int8(-3)),
		plannode.NewConstantExpr(types.New(types.T_int16), int16(300)),
		plannode.NewConstantExpr(types.New(types.T_int32), int32(-70000)),
		plannode.NewConstantExpr(types.New(types.T_int64), int64(1<<40)),
		plannode.NewConstantExpr(types.New(types.T_float32), float32(1.5)),
		plannode.NewConstantExpr(types.New(types.T_float64), 2.25),
		plannode.NewConstantExpr(types.New(types.T_varchar), "hello"),
		plannode.NewConstantExpr(types.New(types.T_binary), []byte{0x01, 0x02}),
		plannode.NewConstantExpr(types.New(types.T_date), types.Date(19000)),
		plannode.NewConstantExpr(types.New(types.T_timestamp), types.Timestamp(1660000000000000)),
		plannode.NewNullConstantExpr(types.New(types.T_int64)),
	}
	for _, c := range cases {
		t.Run(c.Typ.String()+"/"+c.String(), func(t *testing.T) {
			we, err := conv.ToWireExpr(ctx, c, input)
			require.NoError(t, err)
			require.NotNil(t, we.Literal)

			got, err := back.FromWireExpr(ctx, we, input)
			require.NoError(t, err)
			constant, ok := got.(*plannode.ConstantExpr)
			require.True(t, ok)
			require.Equal(t, c.Typ.Oid, constant.Typ.Oid)
			require.Equal(t, c.Null, constant.Null)
			if !c.Null {
				require.Equal(t, c.Value, constant.Value)
			}
		})
	}
}

func TestLiteralValueMismatch(t *testing.T) {
	ctx := context.Background()
	conv, _ := newTestExprConverter(t)
	input := types.MustRowType([]string{"x"}, []types.Type{types.New(types.T_int32)})

	// A value that disagrees with the type tag is an input error, not
	// a panic.
	cases := []*plannode.ConstantExpr{
		plannode.NewConstantExpr(types.New(types.T_int32), "oops"),
		plannode.NewConstantExpr(types.New(types.T_bool), int64(1)),
		plannode.NewConstantExpr(types.New(types.T_varchar), 3.5),
	}
	for _, c := range cases {
		_, err := conv.ToWireExpr(ctx, c, input)
		require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
	}
}

func TestScalarCallRoundTrip(t *testing.T) {
	ctx := context.Background()
	conv, collector := newTestExprConverter(t)
	input := types.MustRowType([]string{"a"}, []types.Type{types.New(types.T_float64)})

	call := plannode.NewCallExpr("gt", types.New(types.T_bool),
		plannode.NewFieldAccessExpr("a", types.New(types.T_float64)),
		plannode.NewConstantExpr(types.New(types.T_float64), 10.0),
	)
	we, err := conv.ToWireExpr(ctx, call, input)
	require.NoError(t, err)
	require.NotNil(t, we.ScalarFunction)
	require.Equal(t, uint32(1), we.ScalarFunction.FunctionReference)
	require.Len(t, we.ScalarFunction.Arguments, 2)
	require.NotNil(t, we.ScalarFunction.OutputType.Bool)

	// The collector recorded the concrete signature of the call.
	plan := &wire.Plan{}
	collector.AddExtensionsToPlan(plan)
	require.Len(t, plan.Extensions, 1)
	require.Equal(t, "gt:fp64_fp64", plan.Extensions[0].ExtensionFunction.Name)

	back := NewExprFromWireConverter(map[uint32]string{1: "gt:fp64_fp64"})
	got, err := back.FromWireExpr(ctx, we, input)
	require.NoError(t, err)
	gotCall, ok := got.(*plannode.CallExpr)
	require.True(t, ok)
	require.Equal(t, "gt", gotCall.FnName)
	require.Equal(t, types.T_bool, gotCall.RetTyp.Oid)
	require.Len(t, gotCall.Args, 2)
}

func TestUnresolvableCall(t *testing.T) {
	ctx := context.Background()
	conv, _ := newTestExprConverter(t)
	input := types.MustRowType([]string{"a"}, []types.Type{types.New(types.T_int32)})

	call := plannode.NewCallExpr("frobnicate", types.New(types.T_int32),
		plannode.NewFieldAccessExpr("a", types.New(types.T_int32)))
	_, err := conv.ToWireExpr(ctx, call, input)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))
}

func TestIfThenRoundTrip(t *testing.T) {
	ctx := context.Background()
	conv, _ := newTestExprConverter(t)
	input := types.MustRowType(
		[]string{"flag", "x"},
		[]types.Type{types.New(types.T_bool), types.New(types.T_int64)},
	)

	call := plannode.NewCallExpr("if", types.New(types.T_int64),
		plannode.NewFieldAccessExpr("flag", types.New(types.T_bool)),
		plannode.NewFieldAccessExpr("x", types.New(types.T_int64)),
		plannode.NewConstantExpr(types.New(types.T_int64), int64(0)),
	)
	we, err := conv.ToWireExpr(ctx, call, input)
	require.NoError(t, err)
	require.NotNil(t, we.IfThen)
	require.Len(t, we.IfThen.Ifs, 1)
	require.NotNil(t, we.IfThen.Else)

	back := NewExprFromWireConverter(nil)
	got, err := back.FromWireExpr(ctx, we, input)
	require.NoError(t, err)
	gotCall, ok := got.(*plannode.CallExpr)
	require.True(t, ok)
	require.Equal(t, "if", gotCall.FnName)
	require.Len(t, gotCall.Args, 3)
	require.Equal(t, types.T_int64, gotCall.RetTyp.Oid)
}

func TestIfThenEvenArgs(t *testing.T) {
	ctx := context.Background()
	conv, _ := newTestExprConverter(t)
	input := types.MustRowType([]string{"flag"}, []types.Type{types.New(types.T_bool)})

	call := plannode.NewCallExpr("if", types.New(types.T_int64),
		plannode.NewFieldAccessExpr("flag", types.New(types.T_bool)),
		plannode.NewConstantExpr(types.New(types.T_int64), int64(1)),
	)
	_, err := conv.ToWireExpr(ctx, call, input)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func TestUnknownFunctionReference(t *testing.T) {
	ctx := context.Background()
	back := NewExprFromWireConverter(map[uint32]string{1: "gt:fp64_fp64"})
	input := types.MustRowType([]string{"a"}, []types.Type{types.New(types.T_float64)})

	expr := &wire.Expression{ScalarFunction: &wire.Expression_ScalarFunction{
		FunctionReference: 9,
		OutputType:        &wire.Type{Bool: &wire.Type_Boolean{}},
	}}
	_, err := back.FromWireExpr(ctx, expr, input)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func TestFieldReferenceOutOfRange(t *testing.T) {
	ctx := context.Background()
	back := NewExprFromWireConverter(nil)
	input := types.MustRowType([]string{"a"}, []types.Type{types.New(types.T_int32)})

	_, err := back.FromWireExpr(ctx, &wire.Expression{Selection: wire.NewDirectFieldRef(3)}, input)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}
