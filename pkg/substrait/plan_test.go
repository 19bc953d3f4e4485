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
	"math"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"

	"github.com/Intel-bigdata/velox/pkg/common/moerr"
	"github.com/Intel-bigdata/velox/pkg/connector"
	"github.com/Intel-bigdata/velox/pkg/container/types"
	"github.com/Intel-bigdata/velox/pkg/plannode"
	"github.com/Intel-bigdata/velox/pkg/wire"
)

func newToWireConverter(t *testing.T) *ToWireConverter {
	t.Helper()
	return NewToWireConverter(loadTestExtension(t))
}

// emptyValues builds a leaf node with the given schema and no rows.
func emptyValues(id string, names []string, typs []types.Type) *plannode.ValuesNode {
	rt := types.MustRowType(names, typs)
	return plannode.NewValuesNode(id, nil, rt)
}

func extFn(anchor uint32, name string) *wire.SimpleExtensionDeclaration {
	return &wire.SimpleExtensionDeclaration{
		ExtensionFunction: &wire.SimpleExtensionDeclaration_ExtensionFunction{
			ExtensionUriReference: 1,
			FunctionAnchor:        anchor,
			Name:                  name,
		},
	}
}

func mustNamedStruct(t *testing.T, rt *types.RowType) *wire.NamedStruct {
	t.Helper()
	ns, err := ToNamedStruct(context.Background(), rt)
	require.NoError(t, err)
	return ns
}

func singleRelPlan(rel *wire.Rel, decls ...*wire.SimpleExtensionDeclaration) *wire.Plan {
	return &wire.Plan{
		Extensions: decls,
		Relations:  []*wire.PlanRel{{Root: &wire.RelRoot{Input: rel}}},
	}
}

func TestRelRootNames(t *testing.T) {
	ctx := context.Background()
	source := emptyValues("0",
		[]string{"a", "b"},
		[]types.Type{types.New(types.T_int32), types.New(types.T_varchar)})

	plan, err := newToWireConverter(t).ToWirePlan(ctx, source)
	require.NoError(t, err)
	require.Len(t, plan.Relations, 1)
	require.NotNil(t, plan.Relations[0].Root)
	require.Equal(t, []string{"a", "b"}, plan.Relations[0].Root.Names)
	require.NotNil(t, plan.Relations[0].Root.Input.Read)
}

func TestFilterRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := emptyValues("0", []string{"a"}, []types.Type{types.New(types.T_float64)})
	filter := plannode.NewFilterNode("1", source,
		plannode.NewCallExpr("gt", types.New(types.T_bool),
			plannode.NewFieldAccessExpr("a", types.New(types.T_float64)),
			plannode.NewConstantExpr(types.New(types.T_float64), 10.0)))

	plan, err := newToWireConverter(t).ToWirePlan(ctx, filter)
	require.NoError(t, err)
	rel := plan.Relations[0].Root.Input
	require.NotNil(t, rel.Filter)
	require.NotNil(t, rel.Filter.Condition.ScalarFunction)

	back := NewFromWireConverter()
	node, err := back.FromWirePlan(ctx, plan)
	require.NoError(t, err)
	filterNode, ok := node.(*plannode.FilterNode)
	require.True(t, ok)
	call, ok := filterNode.Predicate.(*plannode.CallExpr)
	require.True(t, ok)
	require.Equal(t, "gt", call.FnName)
	_, ok = filterNode.Sources()[0].(*plannode.ValuesNode)
	require.True(t, ok)
}

func TestProjectEmitMapping(t *testing.T) {
	ctx := context.Background()
	i32 := types.New(types.T_int32)
	source := emptyValues("0", []string{"a", "b", "c"}, []types.Type{i32, i32, i32})
	project := plannode.NewProjectNode("1", source,
		[]string{"sum_ab", "c"},
		[]plannode.TypedExpr{
			plannode.NewCallExpr("add", i32,
				plannode.NewFieldAccessExpr("a", i32),
				plannode.NewFieldAccessExpr("b", i32)),
			plannode.NewFieldAccessExpr("c", i32),
		})

	plan, err := newToWireConverter(t).ToWirePlan(ctx, project)
	require.NoError(t, err)
	rel := plan.Relations[0].Root.Input
	require.NotNil(t, rel.Project)
	require.Len(t, rel.Project.Expressions, 2)
	// Two expressions over a three column input land at 3 and 4.
	require.Equal(t, []int32{3, 4}, rel.Project.Common.Emit.OutputMapping)

	back := NewFromWireConverter()
	node, err := back.FromWirePlan(ctx, plan)
	require.NoError(t, err)
	projectNode, ok := node.(*plannode.ProjectNode)
	require.True(t, ok)
	require.Len(t, projectNode.Projections, 2)
	addCall, ok := projectNode.Projections[0].(*plannode.CallExpr)
	require.True(t, ok)
	require.Equal(t, "add", addCall.FnName)
	_, ok = projectNode.Projections[1].(*plannode.FieldAccessExpr)
	require.True(t, ok)
	require.Equal(t, 2, projectNode.OutputType().Size())
}

func TestAggregationPhaseRoundTrip(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		step  plannode.AggregationStep
		phase wire.AggregationPhase
	}{
		{plannode.AggregationPartial, wire.AGGREGATION_PHASE_INITIAL_TO_INTERMEDIATE},
		{plannode.AggregationIntermediate, wire.AGGREGATION_PHASE_INTERMEDIATE_TO_INTERMEDIATE},
		{plannode.AggregationSingle, wire.AGGREGATION_PHASE_INITIAL_TO_RESULT},
		{plannode.AggregationFinal, wire.AGGREGATION_PHASE_INTERMEDIATE_TO_RESULT},
	}
	for _, c := range cases {
		t.Run(c.step.String(), func(t *testing.T) {
			source := emptyValues("0",
				[]string{"a", "b"},
				[]types.Type{types.New(types.T_int32), types.New(types.T_int64)})
			agg := plannode.NewAggregationNode("1", c.step, source,
				[]*plannode.FieldAccessExpr{plannode.NewFieldAccessExpr("a", types.New(types.T_int32))},
				[]string{"total"},
				[]*plannode.CallExpr{plannode.NewCallExpr("sum", types.New(types.T_int64),
					plannode.NewFieldAccessExpr("b", types.New(types.T_int64)))},
				nil)

			plan, err := newToWireConverter(t).ToWirePlan(ctx, agg)
			require.NoError(t, err)
			rel := plan.Relations[0].Root.Input
			require.NotNil(t, rel.Aggregate)
			require.Len(t, rel.Aggregate.Measures, 1)
			require.Equal(t, c.phase, rel.Aggregate.Measures[0].Measure.Phase)

			back := NewFromWireConverter()
			node, err := back.FromWirePlan(ctx, plan)
			require.NoError(t, err)
			aggNode, ok := node.(*plannode.AggregationNode)
			require.True(t, ok)
			require.Equal(t, c.step, aggNode.Step)
			require.Len(t, aggNode.GroupingKeys, 1)
			require.Len(t, aggNode.Aggregates, 1)
			require.Equal(t, "sum", aggNode.Aggregates[0].FnName)
			// Keys come first in the output schema.
			require.Equal(t, 2, aggNode.OutputType().Size())
		})
	}
}

func TestAggregateMaskRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := emptyValues("0",
		[]string{"v", "m"},
		[]types.Type{types.New(types.T_int64), types.New(types.T_bool)})
	agg := plannode.NewAggregationNode("1", plannode.AggregationSingle, source,
		nil,
		[]string{"total"},
		[]*plannode.CallExpr{plannode.NewCallExpr("sum", types.New(types.T_int64),
			plannode.NewFieldAccessExpr("v", types.New(types.T_int64)))},
		[]*plannode.FieldAccessExpr{plannode.NewFieldAccessExpr("m", types.New(types.T_bool))})

	plan, err := newToWireConverter(t).ToWirePlan(ctx, agg)
	require.NoError(t, err)
	measure := plan.Relations[0].Root.Input.Aggregate.Measures[0]
	require.NotNil(t, measure.Filter)

	back := NewFromWireConverter()
	node, err := back.FromWirePlan(ctx, plan)
	require.NoError(t, err)
	aggNode := node.(*plannode.AggregationNode)
	require.Len(t, aggNode.Masks, 1)
	require.NotNil(t, aggNode.Masks[0])
}

func TestAggregateMaskCountExceedsAggregates(t *testing.T) {
	ctx := context.Background()
	source := emptyValues("0",
		[]string{"v", "m"},
		[]types.Type{types.New(types.T_int64), types.New(types.T_bool)})
	mask := plannode.NewFieldAccessExpr("m", types.New(types.T_bool))
	agg := plannode.NewAggregationNode("1", plannode.AggregationSingle, source,
		nil,
		[]string{"total"},
		[]*plannode.CallExpr{plannode.NewCallExpr("sum", types.New(types.T_int64),
			plannode.NewFieldAccessExpr("v", types.New(types.T_int64)))},
		[]*plannode.FieldAccessExpr{mask, mask})

	_, err := newToWireConverter(t).ToWirePlan(ctx, agg)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func TestAggregateComputedArgument(t *testing.T) {
	ctx := context.Background()
	i64 := types.New(types.T_int64)
	source := emptyValues("0", []string{"v"}, []types.Type{i64})
	agg := plannode.NewAggregationNode("1", plannode.AggregationSingle, source,
		nil,
		[]string{"total"},
		[]*plannode.CallExpr{plannode.NewCallExpr("sum", i64,
			plannode.NewCallExpr("add", i64,
				plannode.NewFieldAccessExpr("v", i64),
				plannode.NewConstantExpr(i64, int64(1))))},
		nil)

	_, err := newToWireConverter(t).ToWirePlan(ctx, agg)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNYI))
}

func TestAggregatePhaseMismatch(t *testing.T) {
	ctx := context.Background()
	i64 := types.New(types.T_int64)
	schema := types.MustRowType([]string{"v"}, []types.Type{i64})
	read := &wire.Rel{Read: &wire.ReadRel{
		BaseSchema:   mustNamedStruct(t, schema),
		VirtualTable: &wire.ReadRel_VirtualTable{},
	}}
	measure := func(phase wire.AggregationPhase) *wire.AggregateRel_Measure {
		return &wire.AggregateRel_Measure{Measure: &wire.AggregateFunction{
			FunctionReference: 1,
			Phase:             phase,
			OutputType:        &wire.Type{I64: &wire.Type_I64{}},
			Arguments: []*wire.FunctionArgument{
				{Value: &wire.Expression{Selection: wire.NewDirectFieldRef(0)}},
			},
		}}
	}
	plan := singleRelPlan(&wire.Rel{Aggregate: &wire.AggregateRel{
		Input: read,
		Measures: []*wire.AggregateRel_Measure{
			measure(wire.AGGREGATION_PHASE_INITIAL_TO_INTERMEDIATE),
			measure(wire.AGGREGATION_PHASE_INTERMEDIATE_TO_RESULT),
		},
	}}, extFn(1, "sum:i64"))

	_, err := NewFromWireConverter().FromWirePlan(ctx, plan)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func TestAggregateNoMeasuresIsSingle(t *testing.T) {
	ctx := context.Background()
	schema := types.MustRowType([]string{"g"}, []types.Type{types.New(types.T_int32)})
	plan := singleRelPlan(&wire.Rel{Aggregate: &wire.AggregateRel{
		Input: &wire.Rel{Read: &wire.ReadRel{
			BaseSchema:   mustNamedStruct(t, schema),
			VirtualTable: &wire.ReadRel_VirtualTable{},
		}},
		Groupings: []*wire.AggregateRel_Grouping{{
			GroupingExpressions: []*wire.Expression{
				{Selection: wire.NewDirectFieldRef(0)},
			},
		}},
	}})

	node, err := NewFromWireConverter().FromWirePlan(ctx, plan)
	require.NoError(t, err)
	aggNode := node.(*plannode.AggregationNode)
	require.Equal(t, plannode.AggregationSingle, aggNode.Step)
	require.Empty(t, aggNode.Aggregates)
}

func TestJoinToWireInnerOnly(t *testing.T) {
	ctx := context.Background()
	i32 := types.New(types.T_int32)
	left := emptyValues("0", []string{"l0", "l1"}, []types.Type{i32, types.New(types.T_int64)})
	right := emptyValues("1", []string{"r0"}, []types.Type{i32})
	output := left.OutputType().Union(right.OutputType())

	join := plannode.NewJoinNode("2", plannode.JoinLeft,
		[]*plannode.FieldAccessExpr{plannode.NewFieldAccessExpr("l0", i32)},
		[]*plannode.FieldAccessExpr{plannode.NewFieldAccessExpr("r0", i32)},
		nil, left, right, output)
	_, err := newToWireConverter(t).ToWirePlan(ctx, join)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))
}

func TestInnerJoinRoundTrip(t *testing.T) {
	ctx := context.Background()
	i32 := types.New(types.T_int32)
	i64 := types.New(types.T_int64)
	left := emptyValues("0", []string{"l0", "l1"}, []types.Type{i32, i64})
	right := emptyValues("1", []string{"r0"}, []types.Type{i32})
	output := left.OutputType().Union(right.OutputType())

	join := plannode.NewJoinNode("2", plannode.JoinInner,
		[]*plannode.FieldAccessExpr{plannode.NewFieldAccessExpr("l0", i32)},
		[]*plannode.FieldAccessExpr{plannode.NewFieldAccessExpr("r0", i32)},
		nil, left, right, output)

	plan, err := newToWireConverter(t).ToWirePlan(ctx, join)
	require.NoError(t, err)
	joinRel := plan.Relations[0].Root.Input.Join
	require.NotNil(t, joinRel)
	require.Equal(t, wire.JoinRel_JOIN_TYPE_INNER, joinRel.Type)
	require.NotNil(t, joinRel.Expression.ScalarFunction)

	back := NewFromWireConverter()
	node, err := back.FromWirePlan(ctx, plan)
	require.NoError(t, err)
	joinNode, ok := node.(*plannode.JoinNode)
	require.True(t, ok)
	require.Equal(t, plannode.JoinInner, joinNode.JoinType)
	require.Len(t, joinNode.LeftKeys, 1)
	require.Len(t, joinNode.RightKeys, 1)
	require.Equal(t, 3, joinNode.OutputType().Size())
}

func TestJoinResidualFilterToWire(t *testing.T) {
	ctx := context.Background()
	i32 := types.New(types.T_int32)
	left := emptyValues("0", []string{"l0"}, []types.Type{i32})
	right := emptyValues("1", []string{"r0"}, []types.Type{i32})
	output := left.OutputType().Union(right.OutputType())

	residual := plannode.NewCallExpr("lt", types.New(types.T_bool),
		plannode.NewFieldAccessExpr("l0", i32),
		plannode.NewFieldAccessExpr("r0", i32))
	join := plannode.NewJoinNode("2", plannode.JoinInner,
		[]*plannode.FieldAccessExpr{plannode.NewFieldAccessExpr("l0", i32)},
		[]*plannode.FieldAccessExpr{plannode.NewFieldAccessExpr("r0", i32)},
		residual, left, right, output)

	plan, err := newToWireConverter(t).ToWirePlan(ctx, join)
	require.NoError(t, err)
	// Keys and residual fold into one conjunction.
	expr := plan.Relations[0].Root.Input.Join.Expression
	require.NotNil(t, expr.ScalarFunction)
	require.Len(t, expr.ScalarFunction.Arguments, 2)
}

func TestSemiJoinNarrowing(t *testing.T) {
	ctx := context.Background()
	i32 := types.New(types.T_int32)
	leftSchema := types.MustRowType([]string{"a", "b"}, []types.Type{i32, i32})
	rightSchema := types.MustRowType([]string{"c"}, []types.Type{i32})

	eq := &wire.Expression{ScalarFunction: &wire.Expression_ScalarFunction{
		FunctionReference: 1,
		OutputType:        &wire.Type{Bool: &wire.Type_Boolean{}},
		Arguments: []*wire.FunctionArgument{
			{Value: &wire.Expression{Selection: wire.NewDirectFieldRef(0)}},
			{Value: &wire.Expression{Selection: wire.NewDirectFieldRef(2)}},
		},
	}}
	mkJoin := func(jt wire.JoinRel_JoinType) *wire.Plan {
		return singleRelPlan(&wire.Rel{Join: &wire.JoinRel{
			Left: &wire.Rel{Read: &wire.ReadRel{
				BaseSchema:   mustNamedStruct(t, leftSchema),
				VirtualTable: &wire.ReadRel_VirtualTable{},
			}},
			Right: &wire.Rel{Read: &wire.ReadRel{
				BaseSchema:   mustNamedStruct(t, rightSchema),
				VirtualTable: &wire.ReadRel_VirtualTable{},
			}},
			Expression: eq,
			Type:       jt,
		}}, extFn(1, "eq:i32_i32"))
	}

	node, err := NewFromWireConverter().FromWirePlan(ctx, mkJoin(wire.JoinRel_JOIN_TYPE_LEFT_SEMI))
	require.NoError(t, err)
	require.Equal(t, 2, node.OutputType().Size())

	node, err = NewFromWireConverter().FromWirePlan(ctx, mkJoin(wire.JoinRel_JOIN_TYPE_RIGHT_SEMI))
	require.NoError(t, err)
	require.Equal(t, 1, node.OutputType().Size())

	_, err = NewFromWireConverter().FromWirePlan(ctx, mkJoin(wire.JoinRel_JOIN_TYPE_ANTI))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))
}

func TestVirtualTableRoundTrip(t *testing.T) {
	ctx := context.Background()
	rt := types.MustRowType(
		[]string{"a", "b"},
		[]types.Type{types.New(types.T_int32), types.New(types.T_varchar)})
	batch := &plannode.RowBatch{
		Typ: rt,
		Cols: []plannode.Column{
			{Values: []any{int32(1), int32(2), int32(3)}},
			{Values: []any{"x", "y", nil}, Nulls: []bool{false, false, true}},
		},
	}
	values := plannode.NewValuesNode("0", []*plannode.RowBatch{batch}, rt)

	plan, err := newToWireConverter(t).ToWirePlan(ctx, values)
	require.NoError(t, err)
	read := plan.Relations[0].Root.Input.Read
	require.NotNil(t, read.VirtualTable)
	require.Len(t, read.VirtualTable.Values, 1)
	// Two columns of three rows, column major.
	fields := read.VirtualTable.Values[0].Fields
	require.Len(t, fields, 6)
	require.Equal(t, int32(1), *fields[0].I32)
	require.Equal(t, int32(3), *fields[2].I32)
	require.Equal(t, "x", *fields[3].String_)
	require.NotNil(t, fields[5].Null)

	back := NewFromWireConverter()
	node, err := back.FromWirePlan(ctx, plan)
	require.NoError(t, err)
	valuesNode, ok := node.(*plannode.ValuesNode)
	require.True(t, ok)
	require.Len(t, valuesNode.Batches, 1)
	got := valuesNode.Batches[0]
	require.Equal(t, 3, got.NumRows())
	require.Equal(t, []any{int32(1), int32(2), int32(3)}, got.Cols[0].Values)
	require.Equal(t, "y", got.Cols[1].Values[1])
	require.True(t, got.Cols[1].IsNullAt(2))
}

func TestVirtualTableRaggedBatch(t *testing.T) {
	ctx := context.Background()
	schema := types.MustRowType(
		[]string{"a", "b"},
		[]types.Type{types.New(types.T_int32), types.New(types.T_int32)})
	plan := singleRelPlan(&wire.Rel{Read: &wire.ReadRel{
		BaseSchema: mustNamedStruct(t, schema),
		VirtualTable: &wire.ReadRel_VirtualTable{
			Values: []*wire.Expression_Literal_Struct{{
				Fields: []*wire.Expression_Literal{
					{I32: proto.Int32(1)}, {I32: proto.Int32(2)}, {I32: proto.Int32(3)},
				},
			}},
		},
	}})

	_, err := NewFromWireConverter().FromWirePlan(ctx, plan)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func TestLocalFilesSplitInfo(t *testing.T) {
	ctx := context.Background()
	schema := types.MustRowType([]string{"x"}, []types.Type{types.New(types.T_float64)})
	uri1, uri2 := "/data/part-0.parquet", "/data/part-1.parquet"
	plan := singleRelPlan(&wire.Rel{Read: &wire.ReadRel{
		BaseSchema: mustNamedStruct(t, schema),
		LocalFiles: &wire.ReadRel_LocalFiles{
			Items: []*wire.ReadRel_LocalFiles_FileOrFiles{
				{
					UriFile:        &uri1,
					PartitionIndex: 7,
					Start:          0,
					Length:         1024,
					Parquet:        &wire.ReadRel_LocalFiles_FileOrFiles_ParquetReadOptions{},
				},
				{
					UriFile: &uri2,
					Start:   1024,
					Length:  512,
					Parquet: &wire.ReadRel_LocalFiles_FileOrFiles_ParquetReadOptions{},
				},
			},
		},
	}})

	conv := NewFromWireConverter()
	node, err := conv.FromWirePlan(ctx, plan)
	require.NoError(t, err)
	scan, ok := node.(*plannode.TableScanNode)
	require.True(t, ok)
	require.Equal(t, "hive_table", scan.Handle.TableName)
	require.Equal(t, "n0_0", scan.OutputType().Name(0))
	require.Equal(t, "x", scan.Assignments["n0_0"].Name)

	split, ok := conv.SplitInfos()[scan.ID()]
	require.True(t, ok)
	require.Equal(t, []string{uri1, uri2}, split.Paths)
	require.Equal(t, []uint64{0, 1024}, split.Starts)
	require.Equal(t, []uint64{1024, 512}, split.Lengths)
	require.Equal(t, connector.FileFormatParquet, split.Format)
	require.Equal(t, int32(7), split.PartitionIndex)
}

func TestLocalFilesMixedFormats(t *testing.T) {
	ctx := context.Background()
	schema := types.MustRowType([]string{"x"}, []types.Type{types.New(types.T_float64)})
	uri1, uri2 := "/data/part-0.parquet", "/data/part-1.orc"
	plan := singleRelPlan(&wire.Rel{Read: &wire.ReadRel{
		BaseSchema: mustNamedStruct(t, schema),
		LocalFiles: &wire.ReadRel_LocalFiles{
			Items: []*wire.ReadRel_LocalFiles_FileOrFiles{
				{UriFile: &uri1, Parquet: &wire.ReadRel_LocalFiles_FileOrFiles_ParquetReadOptions{}},
				{UriFile: &uri2, Orc: &wire.ReadRel_LocalFiles_FileOrFiles_OrcReadOptions{}},
			},
		},
	}})

	_, err := NewFromWireConverter().FromWirePlan(ctx, plan)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))
}

func TestLocalFilesPartitionIndexRange(t *testing.T) {
	ctx := context.Background()
	schema := types.MustRowType([]string{"x"}, []types.Type{types.New(types.T_float64)})
	uri := "/data/part-0.parquet"
	plan := singleRelPlan(&wire.Rel{Read: &wire.ReadRel{
		BaseSchema: mustNamedStruct(t, schema),
		LocalFiles: &wire.ReadRel_LocalFiles{
			Items: []*wire.ReadRel_LocalFiles_FileOrFiles{{
				UriFile:        &uri,
				PartitionIndex: math.MaxInt32 + 1,
				Parquet:        &wire.ReadRel_LocalFiles_FileOrFiles_ParquetReadOptions{},
			}},
		},
	}})

	_, err := NewFromWireConverter().FromWirePlan(ctx, plan)
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func TestSortRoundTrip(t *testing.T) {
	ctx := context.Background()
	i64 := types.New(types.T_int64)
	source := emptyValues("0", []string{"a", "b"}, []types.Type{i64, i64})
	orderBy := plannode.NewOrderByNode("1", source,
		[]*plannode.FieldAccessExpr{
			plannode.NewFieldAccessExpr("a", i64),
			plannode.NewFieldAccessExpr("b", i64),
		},
		[]plannode.SortOrder{plannode.AscNullsFirst, plannode.DescNullsLast},
		false)

	plan, err := newToWireConverter(t).ToWirePlan(ctx, orderBy)
	require.NoError(t, err)
	sortRel := plan.Relations[0].Root.Input.Sort
	require.NotNil(t, sortRel)
	require.Len(t, sortRel.Sorts, 2)
	require.Equal(t, wire.SortField_SORT_DIRECTION_ASC_NULLS_FIRST, sortRel.Sorts[0].Direction)
	require.Equal(t, wire.SortField_SORT_DIRECTION_DESC_NULLS_LAST, sortRel.Sorts[1].Direction)

	back := NewFromWireConverter()
	node, err := back.FromWirePlan(ctx, plan)
	require.NoError(t, err)
	orderByNode, ok := node.(*plannode.OrderByNode)
	require.True(t, ok)
	require.False(t, orderByNode.IsPartial)
	require.Equal(t, []plannode.SortOrder{plannode.AscNullsFirst, plannode.DescNullsLast}, orderByNode.Orders)
}

func TestLimitRoundTrip(t *testing.T) {
	ctx := context.Background()
	source := emptyValues("0", []string{"a"}, []types.Type{types.New(types.T_int64)})
	limit := plannode.NewLimitNode("1", source, 5, 10, true)

	plan, err := newToWireConverter(t).ToWirePlan(ctx, limit)
	require.NoError(t, err)
	fetch := plan.Relations[0].Root.Input.Fetch
	require.NotNil(t, fetch)
	require.Equal(t, int64(5), fetch.Offset)
	require.Equal(t, int64(10), fetch.Count)

	back := NewFromWireConverter()
	node, err := back.FromWirePlan(ctx, plan)
	require.NoError(t, err)
	limitNode, ok := node.(*plannode.LimitNode)
	require.True(t, ok)
	require.Equal(t, int64(5), limitNode.Offset)
	require.Equal(t, int64(10), limitNode.Count)
	// The partial flag does not cross the wire.
	require.False(t, limitNode.IsPartial)
}

func TestTypeExtensionCheck(t *testing.T) {
	ctx := context.Background()
	schema := types.MustRowType([]string{"a"}, []types.Type{types.New(types.T_int32)})
	mkPlan := func(typeName string) *wire.Plan {
		p := singleRelPlan(&wire.Rel{Read: &wire.ReadRel{
			BaseSchema:   mustNamedStruct(t, schema),
			VirtualTable: &wire.ReadRel_VirtualTable{},
		}})
		p.Extensions = append(p.Extensions, &wire.SimpleExtensionDeclaration{
			ExtensionType: &wire.SimpleExtensionDeclaration_ExtensionType{
				TypeAnchor: 1,
				Name:       typeName,
			},
		})
		return p
	}

	_, err := NewFromWireConverter().FromWirePlan(ctx, mkPlan("UNKNOWN"))
	require.NoError(t, err)

	_, err = NewFromWireConverter().FromWirePlan(ctx, mkPlan("point"))
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))
}

func TestPlanRelationCount(t *testing.T) {
	ctx := context.Background()
	_, err := NewFromWireConverter().FromWirePlan(ctx, &wire.Plan{})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}
