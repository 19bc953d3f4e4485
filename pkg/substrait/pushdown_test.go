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

	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"

	"github.com/Intel-bigdata/velox/pkg/common/moerr"
	"github.com/Intel-bigdata/velox/pkg/container/types"
	"github.com/Intel-bigdata/velox/pkg/plannode"
	"github.com/Intel-bigdata/velox/pkg/wire"
)

// Filter anchors shared by the pushdown plans below.
const (
	anchorAnd uint32 = iota + 1
	anchorIsNotNull
	anchorGte
	anchorLt
	anchorOr
)

func pushdownDecls() []*wire.SimpleExtensionDeclaration {
	return []*wire.SimpleExtensionDeclaration{
		extFn(anchorAnd, "and:bool_bool"),
		extFn(anchorIsNotNull, "is_not_null:fp64"),
		extFn(anchorGte, "gte:fp64_fp64"),
		extFn(anchorLt, "lt:fp64_fp64"),
		extFn(anchorOr, "or:bool_bool"),
	}
}

func filterCall(anchor uint32, args ...*wire.Expression) *wire.Expression {
	fn := &wire.Expression_ScalarFunction{
		FunctionReference: anchor,
		OutputType:        &wire.Type{Bool: &wire.Type_Boolean{}},
	}
	for _, a := range args {
		fn.Arguments = append(fn.Arguments, &wire.FunctionArgument{Value: a})
	}
	return &wire.Expression{ScalarFunction: fn}
}

func columnRef(idx int32) *wire.Expression {
	return &wire.Expression{Selection: wire.NewDirectFieldRef(idx)}
}

func fp64Lit(v float64) *wire.Expression {
	return &wire.Expression{Literal: &wire.Expression_Literal{Fp64: proto.Float64(v)}}
}

func pushdownPlan(t *testing.T, filter *wire.Expression) *wire.Plan {
	t.Helper()
	schema := types.MustRowType(
		[]string{"x", "y"},
		[]types.Type{types.New(types.T_float64), types.New(types.T_float64)})
	return singleRelPlan(&wire.Rel{Read: &wire.ReadRel{
		BaseSchema: mustNamedStruct(t, schema),
		Filter:     filter,
		NamedTable: &wire.ReadRel_NamedTable{Names: []string{"events"}},
	}}, pushdownDecls()...)
}

func TestPushdownRange(t *testing.T) {
	ctx := context.Background()
	filter := filterCall(anchorAnd,
		filterCall(anchorAnd,
			filterCall(anchorIsNotNull, columnRef(0)),
			filterCall(anchorGte, columnRef(0), fp64Lit(10))),
		filterCall(anchorLt, columnRef(0), fp64Lit(20)))

	node, err := NewFromWireConverter().FromWirePlan(ctx, pushdownPlan(t, filter))
	require.NoError(t, err)
	scan, ok := node.(*plannode.TableScanNode)
	require.True(t, ok)
	require.Equal(t, "events", scan.Handle.TableName)
	require.True(t, scan.Handle.FilterPushdownEnabled)
	require.Len(t, scan.Handle.SubfieldFilters, 1)

	r := scan.Handle.SubfieldFilters["x"]
	require.NotNil(t, r)
	require.False(t, r.LowerUnbounded)
	require.Equal(t, 10.0, r.Lower)
	require.False(t, r.LowerExclusive)
	require.False(t, r.UpperUnbounded)
	require.Equal(t, 20.0, r.Upper)
	require.True(t, r.UpperExclusive)
	require.False(t, r.NullAllowed)
}

func TestPushdownPerColumn(t *testing.T) {
	ctx := context.Background()
	filter := filterCall(anchorAnd,
		filterCall(anchorGte, columnRef(0), fp64Lit(1)),
		filterCall(anchorIsNotNull, columnRef(1)))

	node, err := NewFromWireConverter().FromWirePlan(ctx, pushdownPlan(t, filter))
	require.NoError(t, err)
	scan := node.(*plannode.TableScanNode)
	require.Len(t, scan.Handle.SubfieldFilters, 2)

	x := scan.Handle.SubfieldFilters["x"]
	require.Equal(t, 1.0, x.Lower)
	require.True(t, x.UpperUnbounded)
	require.True(t, x.NullAllowed)

	y := scan.Handle.SubfieldFilters["y"]
	require.True(t, y.LowerUnbounded)
	require.True(t, y.UpperUnbounded)
	require.False(t, y.NullAllowed)
}

func TestPushdownRepeatedBound(t *testing.T) {
	ctx := context.Background()
	// The later bound wins even when it widens the range.
	filter := filterCall(anchorAnd,
		filterCall(anchorGte, columnRef(0), fp64Lit(10)),
		filterCall(anchorGte, columnRef(0), fp64Lit(5)))

	node, err := NewFromWireConverter().FromWirePlan(ctx, pushdownPlan(t, filter))
	require.NoError(t, err)
	scan := node.(*plannode.TableScanNode)
	require.Equal(t, 5.0, scan.Handle.SubfieldFilters["x"].Lower)
}

func TestPushdownRejectsDisjunction(t *testing.T) {
	ctx := context.Background()
	filter := filterCall(anchorOr,
		filterCall(anchorGte, columnRef(0), fp64Lit(1)),
		filterCall(anchorLt, columnRef(0), fp64Lit(2)))

	_, err := NewFromWireConverter().FromWirePlan(ctx, pushdownPlan(t, filter))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))
}

func TestPushdownRejectsNonLiteralBound(t *testing.T) {
	ctx := context.Background()
	filter := filterCall(anchorGte, columnRef(0), columnRef(1))

	_, err := NewFromWireConverter().FromWirePlan(ctx, pushdownPlan(t, filter))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))
}

func TestPushdownRejectsNonFp64Bound(t *testing.T) {
	ctx := context.Background()
	filter := filterCall(anchorGte, columnRef(0),
		&wire.Expression{Literal: &wire.Expression_Literal{I64: proto.Int64(3)}})

	_, err := NewFromWireConverter().FromWirePlan(ctx, pushdownPlan(t, filter))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))
}
