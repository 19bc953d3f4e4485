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

	"go.uber.org/zap"

	"github.com/Intel-bigdata/velox/pkg/common/moerr"
	"github.com/Intel-bigdata/velox/pkg/container/types"
	"github.com/Intel-bigdata/velox/pkg/logutil"
	"github.com/Intel-bigdata/velox/pkg/plannode"
	"github.com/Intel-bigdata/velox/pkg/wire"
)

// ToWireConverter converts one engine plan into a wire plan. The
// collector accumulates function anchors across the whole conversion,
// so a converter serves a single ToWirePlan call.
type ToWireConverter struct {
	scalarLookup    *FunctionLookup
	aggregateLookup *FunctionLookup
	collector       *FunctionCollector
	exprConv        *ExprToWireConverter
}

func NewToWireConverter(ext *Extension) *ToWireConverter {
	collector := NewFunctionCollector()
	scalar := NewScalarFunctionLookup(ext, DefaultScalarMappings())
	return &ToWireConverter{
		scalarLookup:    scalar,
		aggregateLookup: NewAggregateFunctionLookup(ext, DefaultAggregateMappings()),
		collector:       collector,
		exprConv:        NewExprToWireConverter(scalar, collector),
	}
}

// ToWirePlan converts the plan rooted at node. The result carries a
// root relation naming the output columns, and the extension section
// covering every function the plan references.
func (c *ToWireConverter) ToWirePlan(ctx context.Context, node plannode.PlanNode) (*wire.Plan, error) {
	rel, err := c.toWireRel(ctx, node)
	if err != nil {
		return nil, err
	}
	plan := &wire.Plan{
		Relations: []*wire.PlanRel{{
			Root: &wire.RelRoot{
				Input: rel,
				Names: node.OutputType().Names(),
			},
		}},
	}
	c.collector.AddExtensionsToPlan(plan)
	return plan, nil
}

func (c *ToWireConverter) toWireRel(ctx context.Context, node plannode.PlanNode) (*wire.Rel, error) {
	logutil.Debug("converting plan node", zap.String("node", node.Name()), zap.String("id", node.ID()))
	switch n := node.(type) {
	case *plannode.FilterNode:
		return c.toWireFilter(ctx, n)
	case *plannode.ProjectNode:
		return c.toWireProject(ctx, n)
	case *plannode.AggregationNode:
		return c.toWireAggregate(ctx, n)
	case *plannode.JoinNode:
		return c.toWireJoin(ctx, n)
	case *plannode.ValuesNode:
		return c.toWireValues(ctx, n)
	case *plannode.OrderByNode:
		return c.toWireSort(ctx, n)
	case *plannode.LimitNode:
		return c.toWireFetch(ctx, n)
	default:
		return nil, moerr.NewNotSupported(ctx, "plan node %s", node.Name())
	}
}

func (c *ToWireConverter) toWireFilter(ctx context.Context, node *plannode.FilterNode) (*wire.Rel, error) {
	source := node.Sources()[0]
	input, err := c.toWireRel(ctx, source)
	if err != nil {
		return nil, err
	}
	cond, err := c.exprConv.ToWireExpr(ctx, node.Predicate, source.OutputType())
	if err != nil {
		return nil, err
	}
	return &wire.Rel{Filter: &wire.FilterRel{
		Common:    directCommon(),
		Input:     input,
		Condition: cond,
	}}, nil
}

func (c *ToWireConverter) toWireProject(ctx context.Context, node *plannode.ProjectNode) (*wire.Rel, error) {
	source := node.Sources()[0]
	input, err := c.toWireRel(ctx, source)
	if err != nil {
		return nil, err
	}
	project := &wire.ProjectRel{Input: input}
	for _, p := range node.Projections {
		e, err := c.exprConv.ToWireExpr(ctx, p, source.OutputType())
		if err != nil {
			return nil, err
		}
		project.Expressions = append(project.Expressions, e)
	}
	// The operator's natural output is input columns then the computed
	// expressions; emit keeps only the expressions.
	inputWidth := source.OutputType().Size()
	emit := &wire.RelCommon_Emit{}
	for i := range node.Projections {
		emit.OutputMapping = append(emit.OutputMapping, int32(inputWidth+i))
	}
	project.Common = &wire.RelCommon{Emit: emit}
	return &wire.Rel{Project: project}, nil
}

func (c *ToWireConverter) toWireAggregate(ctx context.Context, node *plannode.AggregationNode) (*wire.Rel, error) {
	source := node.Sources()[0]
	input, err := c.toWireRel(ctx, source)
	if err != nil {
		return nil, err
	}
	if len(node.Masks) > len(node.Aggregates) {
		return nil, moerr.NewInvalidInput(ctx,
			"aggregation has %d masks for %d aggregates", len(node.Masks), len(node.Aggregates))
	}
	phase, err := toWirePhase(ctx, node.Step)
	if err != nil {
		return nil, err
	}

	agg := &wire.AggregateRel{Common: directCommon(), Input: input}
	grouping := &wire.AggregateRel_Grouping{}
	for _, key := range node.GroupingKeys {
		e, err := c.exprConv.ToWireExpr(ctx, key, source.OutputType())
		if err != nil {
			return nil, err
		}
		grouping.GroupingExpressions = append(grouping.GroupingExpressions, e)
	}
	agg.Groupings = []*wire.AggregateRel_Grouping{grouping}

	for i, call := range node.Aggregates {
		measure, err := c.toWireMeasure(ctx, call, phase, source.OutputType())
		if err != nil {
			return nil, err
		}
		if i < len(node.Masks) && node.Masks[i] != nil {
			mask, err := c.exprConv.ToWireExpr(ctx, node.Masks[i], source.OutputType())
			if err != nil {
				return nil, err
			}
			measure.Filter = mask
		}
		agg.Measures = append(agg.Measures, measure)
	}
	return &wire.Rel{Aggregate: agg}, nil
}

func (c *ToWireConverter) toWireMeasure(ctx context.Context, call *plannode.CallExpr, phase wire.AggregationPhase, input *types.RowType) (*wire.AggregateRel_Measure, error) {
	sigs, err := signatureFromCall(ctx, call)
	if err != nil {
		return nil, err
	}
	anchor, ok := c.aggregateLookup.Lookup(call.FnName, sigs)
	if !ok {
		return nil, moerr.NewNotSupported(ctx,
			"aggregate function %s", signatureKey(call.FnName, sigs))
	}
	fn := &wire.AggregateFunction{
		FunctionReference: c.collector.GetFunctionReference(anchor),
		Phase:             phase,
	}
	for _, arg := range call.Args {
		if _, isCall := arg.(*plannode.CallExpr); isCall {
			return nil, moerr.NewNYI(ctx, "aggregate over a computed expression")
		}
		value, err := c.exprConv.ToWireExpr(ctx, arg, input)
		if err != nil {
			return nil, err
		}
		fn.Arguments = append(fn.Arguments, &wire.FunctionArgument{Value: value})
	}
	out, err := ToWireType(ctx, call.RetTyp)
	if err != nil {
		return nil, err
	}
	fn.OutputType = out
	return &wire.AggregateRel_Measure{Measure: fn}, nil
}

func (c *ToWireConverter) toWireJoin(ctx context.Context, node *plannode.JoinNode) (*wire.Rel, error) {
	if node.JoinType != plannode.JoinInner {
		return nil, moerr.NewNotSupported(ctx, "%s join in wire conversion", node.JoinType)
	}
	sources := node.Sources()
	left, err := c.toWireRel(ctx, sources[0])
	if err != nil {
		return nil, err
	}
	right, err := c.toWireRel(ctx, sources[1])
	if err != nil {
		return nil, err
	}
	// Key pairs and the residual filter both resolve over the
	// concatenated left and right schemas.
	merged := sources[0].OutputType().Union(sources[1].OutputType())

	boolTyp := types.New(types.T_bool)
	var condition plannode.TypedExpr
	for i := range node.LeftKeys {
		eq := plannode.NewCallExpr("eq", boolTyp, node.LeftKeys[i], node.RightKeys[i])
		if condition == nil {
			condition = eq
		} else {
			condition = plannode.NewCallExpr("and", boolTyp, condition, eq)
		}
	}
	if node.Filter != nil {
		if condition == nil {
			condition = node.Filter
		} else {
			condition = plannode.NewCallExpr("and", boolTyp, condition, node.Filter)
		}
	}
	if condition == nil {
		return nil, moerr.NewInvalidInput(ctx, "join without keys or filter")
	}
	expr, err := c.exprConv.ToWireExpr(ctx, condition, merged)
	if err != nil {
		return nil, err
	}
	return &wire.Rel{Join: &wire.JoinRel{
		Common:     directCommon(),
		Left:       left,
		Right:      right,
		Expression: expr,
		Type:       wire.JoinRel_JOIN_TYPE_INNER,
	}}, nil
}

func (c *ToWireConverter) toWireValues(ctx context.Context, node *plannode.ValuesNode) (*wire.Rel, error) {
	schema, err := ToNamedStruct(ctx, node.OutputType())
	if err != nil {
		return nil, err
	}
	vt := &wire.ReadRel_VirtualTable{}
	for _, batch := range node.Batches {
		// One literal struct per batch, fields laid out column major.
		row := &wire.Expression_Literal_Struct{}
		for col := range batch.Cols {
			typ := batch.Typ.TypeAt(col)
			for r := 0; r < batch.NumRows(); r++ {
				cexpr := &plannode.ConstantExpr{Typ: typ}
				if batch.Cols[col].IsNullAt(r) {
					cexpr.Null = true
				} else {
					cexpr.Value = batch.Cols[col].Values[r]
				}
				lit, err := toWireLiteral(ctx, cexpr)
				if err != nil {
					return nil, err
				}
				row.Fields = append(row.Fields, lit)
			}
		}
		vt.Values = append(vt.Values, row)
	}
	return &wire.Rel{Read: &wire.ReadRel{
		Common:       directCommon(),
		BaseSchema:   schema,
		VirtualTable: vt,
	}}, nil
}

func (c *ToWireConverter) toWireSort(ctx context.Context, node *plannode.OrderByNode) (*wire.Rel, error) {
	source := node.Sources()[0]
	input, err := c.toWireRel(ctx, source)
	if err != nil {
		return nil, err
	}
	sort := &wire.SortRel{Common: directCommon(), Input: input}
	for i, key := range node.Keys {
		e, err := c.exprConv.ToWireExpr(ctx, key, source.OutputType())
		if err != nil {
			return nil, err
		}
		sort.Sorts = append(sort.Sorts, &wire.SortField{
			Expr:      e,
			Direction: toWireSortDirection(node.Orders[i]),
		})
	}
	return &wire.Rel{Sort: sort}, nil
}

func (c *ToWireConverter) toWireFetch(ctx context.Context, node *plannode.LimitNode) (*wire.Rel, error) {
	input, err := c.toWireRel(ctx, node.Sources()[0])
	if err != nil {
		return nil, err
	}
	return &wire.Rel{Fetch: &wire.FetchRel{
		Common: directCommon(),
		Input:  input,
		Offset: node.Offset,
		Count:  node.Count,
	}}, nil
}

func directCommon() *wire.RelCommon {
	return &wire.RelCommon{Direct: &wire.RelCommon_Direct{}}
}

func toWirePhase(ctx context.Context, step plannode.AggregationStep) (wire.AggregationPhase, error) {
	switch step {
	case plannode.AggregationPartial:
		return wire.AGGREGATION_PHASE_INITIAL_TO_INTERMEDIATE, nil
	case plannode.AggregationIntermediate:
		return wire.AGGREGATION_PHASE_INTERMEDIATE_TO_INTERMEDIATE, nil
	case plannode.AggregationSingle:
		return wire.AGGREGATION_PHASE_INITIAL_TO_RESULT, nil
	case plannode.AggregationFinal:
		return wire.AGGREGATION_PHASE_INTERMEDIATE_TO_RESULT, nil
	default:
		return wire.AGGREGATION_PHASE_UNSPECIFIED,
			moerr.NewInvalidInput(ctx, "aggregation step %d", step)
	}
}

func toWireSortDirection(order plannode.SortOrder) wire.SortField_SortDirection {
	switch {
	case order.Ascending && order.NullsFirst:
		return wire.SortField_SORT_DIRECTION_ASC_NULLS_FIRST
	case order.Ascending && !order.NullsFirst:
		return wire.SortField_SORT_DIRECTION_ASC_NULLS_LAST
	case !order.Ascending && order.NullsFirst:
		return wire.SortField_SORT_DIRECTION_DESC_NULLS_FIRST
	default:
		return wire.SortField_SORT_DIRECTION_DESC_NULLS_LAST
	}
}
