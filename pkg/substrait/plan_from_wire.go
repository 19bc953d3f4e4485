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
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Intel-bigdata/velox/pkg/common/moerr"
	"github.com/Intel-bigdata/velox/pkg/connector"
	"github.com/Intel-bigdata/velox/pkg/container/types"
	"github.com/Intel-bigdata/velox/pkg/logutil"
	"github.com/Intel-bigdata/velox/pkg/plannode"
	"github.com/Intel-bigdata/velox/pkg/wire"
)

const hiveConnectorID = "hive"

// FromWireConverter converts one wire plan into an engine plan. Node
// ids are assigned monotonically during the conversion and key the
// side-channel split info of file-backed scans, so a converter serves
// a single FromWirePlan call.
type FromWireConverter struct {
	exprConv   *ExprFromWireConverter
	splitInfos map[string]*connector.SplitInfo
	nextID     int
}

func NewFromWireConverter() *FromWireConverter {
	return &FromWireConverter{
		splitInfos: make(map[string]*connector.SplitInfo),
	}
}

// SplitInfos returns the file splits collected for each scan node,
// keyed by the produced node id.
func (c *FromWireConverter) SplitInfos() map[string]*connector.SplitInfo {
	return c.splitInfos
}

// FromWirePlan converts a wire plan carrying exactly one relation
// tree.
func (c *FromWireConverter) FromWirePlan(ctx context.Context, plan *wire.Plan) (plannode.PlanNode, error) {
	if err := checkTypeExtensions(ctx, plan); err != nil {
		return nil, err
	}
	c.exprConv = NewExprFromWireConverter(functionMapFromPlan(plan))
	if len(plan.Relations) != 1 {
		return nil, moerr.NewInvalidInput(ctx, "plan has %d relations, want 1", len(plan.Relations))
	}
	switch r := plan.Relations[0]; {
	case r.Root != nil:
		if r.Root.Input == nil {
			return nil, moerr.NewInvalidInput(ctx, "root relation without input")
		}
		return c.fromRel(ctx, r.Root.Input)
	case r.Rel != nil:
		return c.fromRel(ctx, r.Rel)
	default:
		return nil, moerr.NewInvalidInput(ctx, "relation is neither root nor rel")
	}
}

// checkTypeExtensions rejects plans that declare user-defined types
// beyond the UNKNOWN placeholder.
func checkTypeExtensions(ctx context.Context, plan *wire.Plan) error {
	for _, decl := range plan.Extensions {
		t := decl.ExtensionType
		if t == nil {
			continue
		}
		if !strings.EqualFold(t.Name, "unknown") {
			return moerr.NewNotSupported(ctx, "type extension %s", t.Name)
		}
	}
	return nil
}

func functionMapFromPlan(plan *wire.Plan) map[uint32]string {
	m := make(map[uint32]string)
	for _, decl := range plan.Extensions {
		if fn := decl.ExtensionFunction; fn != nil {
			m[fn.FunctionAnchor] = fn.Name
		}
	}
	return m
}

func (c *FromWireConverter) nextNodeID() string {
	id := strconv.Itoa(c.nextID)
	c.nextID++
	return id
}

// nodeName builds the output column name for column colIdx of node id.
func nodeName(id string, colIdx int) string {
	return fmt.Sprintf("n%s_%d", id, colIdx)
}

func (c *FromWireConverter) fromRel(ctx context.Context, rel *wire.Rel) (plannode.PlanNode, error) {
	switch {
	case rel == nil:
		return nil, moerr.NewInvalidInput(ctx, "relation is missing")
	case rel.Read != nil:
		return c.fromRead(ctx, rel.Read)
	case rel.Filter != nil:
		return c.fromFilter(ctx, rel.Filter)
	case rel.Project != nil:
		return c.fromProject(ctx, rel.Project)
	case rel.Aggregate != nil:
		return c.fromAggregate(ctx, rel.Aggregate)
	case rel.Join != nil:
		return c.fromJoin(ctx, rel.Join)
	case rel.Sort != nil:
		return c.fromSort(ctx, rel.Sort)
	case rel.Fetch != nil:
		return c.fromFetch(ctx, rel.Fetch)
	default:
		return nil, moerr.NewNotSupported(ctx, "wire relation %s", rel.String())
	}
}

func (c *FromWireConverter) fromRead(ctx context.Context, read *wire.ReadRel) (plannode.PlanNode, error) {
	schema, err := FromNamedStruct(ctx, read.BaseSchema)
	if err != nil {
		return nil, err
	}
	id := c.nextNodeID()
	outNames := make([]string, schema.Size())
	for i := range outNames {
		outNames[i] = nodeName(id, i)
	}
	outputType := types.MustRowType(outNames, schema.Types())

	switch {
	case read.VirtualTable != nil:
		if read.Filter != nil {
			return nil, moerr.NewNotSupported(ctx, "filter on a virtual table")
		}
		batches, err := c.fromVirtualTable(ctx, read.VirtualTable, outputType)
		if err != nil {
			return nil, err
		}
		return plannode.NewValuesNode(id, batches, outputType), nil
	case read.LocalFiles != nil:
		split, err := fromLocalFiles(ctx, read.LocalFiles)
		if err != nil {
			return nil, err
		}
		c.splitInfos[id] = split
		return c.newScanNode(ctx, id, read, schema, outputType, "hive_table")
	case read.NamedTable != nil:
		if len(read.NamedTable.Names) == 0 {
			return nil, moerr.NewInvalidInput(ctx, "named table without names")
		}
		return c.newScanNode(ctx, id, read, schema, outputType, read.NamedTable.Names[0])
	default:
		return nil, moerr.NewNotSupported(ctx, "read without a table source")
	}
}

func (c *FromWireConverter) newScanNode(ctx context.Context, id string, read *wire.ReadRel, schema, outputType *types.RowType, tableName string) (plannode.PlanNode, error) {
	filters := connector.SubfieldFilters{}
	if read.Filter != nil {
		var err error
		filters, err = c.toSubfieldFilters(ctx, read.Filter, schema)
		if err != nil {
			return nil, err
		}
	}
	handle := &connector.TableHandle{
		ConnectorID:           hiveConnectorID,
		TableName:             tableName,
		FilterPushdownEnabled: true,
		SubfieldFilters:       filters,
	}
	assignments := make(map[string]*connector.ColumnHandle, schema.Size())
	for i := 0; i < schema.Size(); i++ {
		assignments[outputType.Name(i)] = &connector.ColumnHandle{
			Name: schema.Name(i),
			Typ:  schema.TypeAt(i),
		}
	}
	return plannode.NewTableScanNode(id, outputType, handle, assignments), nil
}

// fromVirtualTable decodes literal batches. Each struct holds its
// fields column major: batchSize consecutive literals per column.
func (c *FromWireConverter) fromVirtualTable(ctx context.Context, vt *wire.ReadRel_VirtualTable, outputType *types.RowType) ([]*plannode.RowBatch, error) {
	numColumns := outputType.Size()
	batches := make([]*plannode.RowBatch, 0, len(vt.Values))
	for _, value := range vt.Values {
		numFields := len(value.Fields)
		batchSize := 1
		if numColumns > 0 {
			if numFields%numColumns != 0 {
				return nil, moerr.NewInvalidInput(ctx,
					"virtual table struct has %d fields for %d columns", numFields, numColumns)
			}
			batchSize = numFields / numColumns
		}
		batch := &plannode.RowBatch{Typ: outputType, Cols: make([]plannode.Column, numColumns)}
		for col := 0; col < numColumns; col++ {
			column := plannode.Column{
				Values: make([]any, batchSize),
				Nulls:  make([]bool, batchSize),
			}
			for row := 0; row < batchSize; row++ {
				lit, err := fromWireLiteral(ctx, value.Fields[col*batchSize+row])
				if err != nil {
					return nil, err
				}
				if lit.Null {
					column.Nulls[row] = true
				} else {
					column.Values[row] = lit.Value
				}
			}
			batch.Cols[col] = column
		}
		batches = append(batches, batch)
	}
	return batches, nil
}

func fromLocalFiles(ctx context.Context, files *wire.ReadRel_LocalFiles) (*connector.SplitInfo, error) {
	split := &connector.SplitInfo{}
	for i, item := range files.Items {
		if item.UriFile == nil {
			return nil, moerr.NewInvalidInput(ctx, "local file without uri_file")
		}
		format := connector.FileFormatUnknown
		switch {
		case item.Parquet != nil:
			format = connector.FileFormatParquet
		case item.Orc != nil:
			format = connector.FileFormatOrc
		}
		// One split descriptor carries one partition index and one
		// format; every item must agree with the first.
		if i == 0 {
			if item.PartitionIndex > math.MaxInt32 {
				return nil, moerr.NewInvalidInput(ctx,
					"partition index %d out of range", item.PartitionIndex)
			}
			split.PartitionIndex = int32(item.PartitionIndex)
			split.Format = format
		} else if format != split.Format {
			return nil, moerr.NewNotSupported(ctx,
				"mixed file formats %s and %s in one read", split.Format, format)
		}
		split.Paths = append(split.Paths, *item.UriFile)
		split.Starts = append(split.Starts, item.Start)
		split.Lengths = append(split.Lengths, item.Length)
	}
	return split, nil
}

func (c *FromWireConverter) fromFilter(ctx context.Context, filter *wire.FilterRel) (plannode.PlanNode, error) {
	input, err := c.fromRel(ctx, filter.Input)
	if err != nil {
		return nil, err
	}
	cond, err := c.exprConv.FromWireExpr(ctx, filter.Condition, input.OutputType())
	if err != nil {
		return nil, err
	}
	return plannode.NewFilterNode(c.nextNodeID(), input, cond), nil
}

func (c *FromWireConverter) fromProject(ctx context.Context, project *wire.ProjectRel) (plannode.PlanNode, error) {
	input, err := c.fromRel(ctx, project.Input)
	if err != nil {
		return nil, err
	}
	inputType := input.OutputType()
	exprs := make([]plannode.TypedExpr, 0, len(project.Expressions))
	for _, e := range project.Expressions {
		converted, err := c.exprConv.FromWireExpr(ctx, e, inputType)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, converted)
	}

	// The operator's natural output is input columns followed by the
	// computed expressions; an emit mapping picks from that sequence.
	var projections []plannode.TypedExpr
	if project.Common != nil && project.Common.Emit != nil {
		for _, idx := range project.Common.Emit.OutputMapping {
			i := int(idx)
			switch {
			case i >= 0 && i < inputType.Size():
				projections = append(projections,
					plannode.NewFieldAccessExpr(inputType.Name(i), inputType.TypeAt(i)))
			case i >= inputType.Size() && i < inputType.Size()+len(exprs):
				projections = append(projections, exprs[i-inputType.Size()])
			default:
				return nil, moerr.NewInvalidInput(ctx, "emit mapping index %d out of range", i)
			}
		}
	} else {
		projections = exprs
	}

	id := c.nextNodeID()
	names := make([]string, len(projections))
	for i := range names {
		names[i] = nodeName(id, i)
	}
	return plannode.NewProjectNode(id, input, names, projections), nil
}

func (c *FromWireConverter) fromAggregate(ctx context.Context, agg *wire.AggregateRel) (plannode.PlanNode, error) {
	input, err := c.fromRel(ctx, agg.Input)
	if err != nil {
		return nil, err
	}
	inputType := input.OutputType()
	if len(agg.Groupings) > 1 {
		return nil, moerr.NewNotSupported(ctx, "aggregation with %d grouping sets", len(agg.Groupings))
	}

	var keys []*plannode.FieldAccessExpr
	if len(agg.Groupings) == 1 {
		for _, g := range agg.Groupings[0].GroupingExpressions {
			e, err := c.exprConv.FromWireExpr(ctx, g, inputType)
			if err != nil {
				return nil, err
			}
			key, ok := e.(*plannode.FieldAccessExpr)
			if !ok {
				return nil, moerr.NewNotSupported(ctx, "grouping expression %s", e.String())
			}
			keys = append(keys, key)
		}
	}

	// Every measure must agree on the phase; the node carries one step.
	step := plannode.AggregationSingle
	var aggregates []*plannode.CallExpr
	var masks []*plannode.FieldAccessExpr
	for i, measure := range agg.Measures {
		if measure.Measure == nil {
			return nil, moerr.NewInvalidInput(ctx, "measure without aggregate function")
		}
		s, err := fromWirePhase(ctx, measure.Measure.Phase)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			step = s
		} else if s != step {
			return nil, moerr.NewInvalidInput(ctx,
				"measure %d phase %s differs from %s", i, measure.Measure.Phase, agg.Measures[0].Measure.Phase)
		}
		call, err := c.fromAggregateFunction(ctx, measure.Measure, inputType)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, call)

		var mask *plannode.FieldAccessExpr
		if measure.Filter != nil {
			e, err := c.exprConv.FromWireExpr(ctx, measure.Filter, inputType)
			if err != nil {
				return nil, err
			}
			m, ok := e.(*plannode.FieldAccessExpr)
			if !ok {
				return nil, moerr.NewNotSupported(ctx, "measure mask %s", e.String())
			}
			mask = m
		}
		masks = append(masks, mask)
	}

	id := c.nextNodeID()
	aggNames := make([]string, len(aggregates))
	for i := range aggNames {
		aggNames[i] = nodeName(id, len(keys)+i)
	}
	return plannode.NewAggregationNode(id, step, input, keys, aggNames, aggregates, masks), nil
}

func (c *FromWireConverter) fromAggregateFunction(ctx context.Context, fn *wire.AggregateFunction, inputType *types.RowType) (*plannode.CallExpr, error) {
	name, err := c.exprConv.FunctionName(ctx, fn.FunctionReference)
	if err != nil {
		return nil, err
	}
	retTyp, err := ToEngineType(ctx, fn.OutputType)
	if err != nil {
		return nil, err
	}
	args := make([]plannode.TypedExpr, 0, len(fn.Arguments))
	for _, a := range fn.Arguments {
		if a.Value == nil {
			continue
		}
		arg, err := c.exprConv.FromWireExpr(ctx, a.Value, inputType)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return plannode.NewCallExpr(name, retTyp, args...), nil
}

func (c *FromWireConverter) fromJoin(ctx context.Context, join *wire.JoinRel) (plannode.PlanNode, error) {
	left, err := c.fromRel(ctx, join.Left)
	if err != nil {
		return nil, err
	}
	right, err := c.fromRel(ctx, join.Right)
	if err != nil {
		return nil, err
	}
	merged := left.OutputType().Union(right.OutputType())

	joinType, err := fromWireJoinType(ctx, join.Type)
	if err != nil {
		return nil, err
	}
	if join.Expression == nil {
		return nil, moerr.NewInvalidInput(ctx, "join without an expression")
	}
	leftKeys, rightKeys, err := c.extractJoinKeys(ctx, join.Expression, left.OutputType(), right.OutputType())
	if err != nil {
		return nil, err
	}

	var residual plannode.TypedExpr
	if join.PostJoinFilter != nil {
		residual, err = c.exprConv.FromWireExpr(ctx, join.PostJoinFilter, merged)
		if err != nil {
			return nil, err
		}
	}

	// Semi joins emit only one side's columns.
	outputType := merged
	switch joinType {
	case plannode.JoinLeftSemi:
		outputType = left.OutputType()
	case plannode.JoinRightSemi:
		outputType = right.OutputType()
	}
	return plannode.NewJoinNode(c.nextNodeID(), joinType, leftKeys, rightKeys, residual, left, right, outputType), nil
}

// extractJoinKeys walks a conjunction of equality calls and splits the
// referenced columns into left-side and right-side keys.
func (c *FromWireConverter) extractJoinKeys(ctx context.Context, expr *wire.Expression, leftType, rightType *types.RowType) ([]*plannode.FieldAccessExpr, []*plannode.FieldAccessExpr, error) {
	leftWidth := leftType.Size()
	var leftKeys, rightKeys []*plannode.FieldAccessExpr

	stack := []*wire.Expression{expr}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn := e.ScalarFunction
		if fn == nil {
			return nil, nil, moerr.NewNotSupported(ctx, "join expression %s", e.String())
		}
		name, err := c.exprConv.FunctionName(ctx, fn.FunctionReference)
		if err != nil {
			return nil, nil, err
		}
		switch name {
		case "and":
			for _, a := range fn.Arguments {
				if a.Value == nil {
					return nil, nil, moerr.NewInvalidInput(ctx, "and argument without a value")
				}
				stack = append(stack, a.Value)
			}
		case "eq", "equal":
			if len(fn.Arguments) != 2 {
				return nil, nil, moerr.NewInvalidInput(ctx,
					"join equality with %d arguments", len(fn.Arguments))
			}
			var leftKey, rightKey *plannode.FieldAccessExpr
			for _, a := range fn.Arguments {
				if a.Value == nil || a.Value.Selection == nil {
					return nil, nil, moerr.NewNotSupported(ctx, "join key %s", a.String())
				}
				ref := a.Value.Selection.DirectReference
				if ref == nil || ref.StructField == nil {
					return nil, nil, moerr.NewNotSupported(ctx, "join key without a direct reference")
				}
				idx := int(ref.StructField.Field)
				switch {
				case idx >= 0 && idx < leftWidth:
					leftKey = plannode.NewFieldAccessExpr(leftType.Name(idx), leftType.TypeAt(idx))
				case idx >= leftWidth && idx < leftWidth+rightType.Size():
					r := idx - leftWidth
					rightKey = plannode.NewFieldAccessExpr(rightType.Name(r), rightType.TypeAt(r))
				default:
					return nil, nil, moerr.NewInvalidInput(ctx, "join key index %d out of range", idx)
				}
			}
			if leftKey == nil || rightKey == nil {
				return nil, nil, moerr.NewInvalidInput(ctx,
					"join equality must pair one column from each side")
			}
			leftKeys = append(leftKeys, leftKey)
			rightKeys = append(rightKeys, rightKey)
		default:
			return nil, nil, moerr.NewNotSupported(ctx, "%s in a join expression", name)
		}
	}
	if len(leftKeys) == 0 {
		return nil, nil, moerr.NewInvalidInput(ctx, "join expression has no equality keys")
	}
	logutil.Debug("extracted join keys", zap.Int("pairs", len(leftKeys)))
	return leftKeys, rightKeys, nil
}

func (c *FromWireConverter) fromSort(ctx context.Context, sort *wire.SortRel) (plannode.PlanNode, error) {
	input, err := c.fromRel(ctx, sort.Input)
	if err != nil {
		return nil, err
	}
	inputType := input.OutputType()
	var keys []*plannode.FieldAccessExpr
	var orders []plannode.SortOrder
	for _, field := range sort.Sorts {
		order, err := fromWireSortDirection(ctx, field.Direction)
		if err != nil {
			return nil, err
		}
		e, err := c.exprConv.FromWireExpr(ctx, field.Expr, inputType)
		if err != nil {
			return nil, err
		}
		key, ok := e.(*plannode.FieldAccessExpr)
		if !ok {
			return nil, moerr.NewNotSupported(ctx, "sort key %s", e.String())
		}
		keys = append(keys, key)
		orders = append(orders, order)
	}
	return plannode.NewOrderByNode(c.nextNodeID(), input, keys, orders, false), nil
}

func (c *FromWireConverter) fromFetch(ctx context.Context, fetch *wire.FetchRel) (plannode.PlanNode, error) {
	input, err := c.fromRel(ctx, fetch.Input)
	if err != nil {
		return nil, err
	}
	return plannode.NewLimitNode(c.nextNodeID(), input, fetch.Offset, fetch.Count, false), nil
}

func fromWirePhase(ctx context.Context, phase wire.AggregationPhase) (plannode.AggregationStep, error) {
	switch phase {
	case wire.AGGREGATION_PHASE_INITIAL_TO_INTERMEDIATE:
		return plannode.AggregationPartial, nil
	case wire.AGGREGATION_PHASE_INTERMEDIATE_TO_INTERMEDIATE:
		return plannode.AggregationIntermediate, nil
	case wire.AGGREGATION_PHASE_INITIAL_TO_RESULT:
		return plannode.AggregationSingle, nil
	case wire.AGGREGATION_PHASE_INTERMEDIATE_TO_RESULT:
		return plannode.AggregationFinal, nil
	default:
		return 0, moerr.NewInvalidInput(ctx, "aggregation phase %s", phase)
	}
}

func fromWireJoinType(ctx context.Context, t wire.JoinRel_JoinType) (plannode.JoinType, error) {
	switch t {
	case wire.JoinRel_JOIN_TYPE_INNER:
		return plannode.JoinInner, nil
	case wire.JoinRel_JOIN_TYPE_LEFT:
		return plannode.JoinLeft, nil
	case wire.JoinRel_JOIN_TYPE_RIGHT:
		return plannode.JoinRight, nil
	case wire.JoinRel_JOIN_TYPE_OUTER:
		return plannode.JoinFull, nil
	case wire.JoinRel_JOIN_TYPE_LEFT_SEMI:
		return plannode.JoinLeftSemi, nil
	case wire.JoinRel_JOIN_TYPE_RIGHT_SEMI:
		return plannode.JoinRightSemi, nil
	default:
		return 0, moerr.NewNotSupported(ctx, "join type %s", t)
	}
}

func fromWireSortDirection(ctx context.Context, d wire.SortField_SortDirection) (plannode.SortOrder, error) {
	switch d {
	case wire.SortField_SORT_DIRECTION_ASC_NULLS_FIRST:
		return plannode.AscNullsFirst, nil
	case wire.SortField_SORT_DIRECTION_ASC_NULLS_LAST:
		return plannode.AscNullsLast, nil
	case wire.SortField_SORT_DIRECTION_DESC_NULLS_FIRST:
		return plannode.DescNullsFirst, nil
	case wire.SortField_SORT_DIRECTION_DESC_NULLS_LAST:
		return plannode.DescNullsLast, nil
	default:
		return plannode.SortOrder{}, moerr.NewNotSupported(ctx, "sort direction %s", d)
	}
}
