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

// Package plannode defines the engine-side operator tree. Nodes are
// immutable after construction; OutputType is fixed when the node is
// built, never re-derived.
package plannode

import (
	"github.com/Intel-bigdata/velox/pkg/connector"
	"github.com/Intel-bigdata/velox/pkg/container/types"
)

// PlanNode is one operator of an engine plan.
type PlanNode interface {
	ID() string
	Sources() []PlanNode
	OutputType() *types.RowType
	Name() string
}

// AggregationStep tells which phase of a multi-step aggregation a node
// performs.
type AggregationStep int32

const (
	AggregationPartial AggregationStep = iota
	AggregationFinal
	AggregationIntermediate
	AggregationSingle
)

func (s AggregationStep) String() string {
	switch s {
	case AggregationPartial:
		return "PARTIAL"
	case AggregationFinal:
		return "FINAL"
	case AggregationIntermediate:
		return "INTERMEDIATE"
	case AggregationSingle:
		return "SINGLE"
	default:
		return "UNKNOWN"
	}
}

// JoinType enumerates the join flavors the tree can express.
type JoinType int32

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinLeftSemi
	JoinRightSemi
)

func (t JoinType) String() string {
	switch t {
	case JoinInner:
		return "INNER"
	case JoinLeft:
		return "LEFT"
	case JoinRight:
		return "RIGHT"
	case JoinFull:
		return "FULL"
	case JoinLeftSemi:
		return "LEFT SEMI"
	case JoinRightSemi:
		return "RIGHT SEMI"
	default:
		return "UNKNOWN"
	}
}

// SortOrder is the direction and null placement of one sort key.
type SortOrder struct {
	Ascending  bool
	NullsFirst bool
}

var (
	AscNullsFirst  = SortOrder{Ascending: true, NullsFirst: true}
	AscNullsLast   = SortOrder{Ascending: true, NullsFirst: false}
	DescNullsFirst = SortOrder{Ascending: false, NullsFirst: true}
	DescNullsLast  = SortOrder{Ascending: false, NullsFirst: false}
)

type baseNode struct {
	id string
}

func (n *baseNode) ID() string { return n.id }

// FilterNode keeps the input rows for which the predicate is true.
type FilterNode struct {
	baseNode
	source    PlanNode
	Predicate TypedExpr
}

func NewFilterNode(id string, source PlanNode, predicate TypedExpr) *FilterNode {
	return &FilterNode{baseNode: baseNode{id: id}, source: source, Predicate: predicate}
}

func (n *FilterNode) Sources() []PlanNode        { return []PlanNode{n.source} }
func (n *FilterNode) OutputType() *types.RowType { return n.source.OutputType() }
func (n *FilterNode) Name() string               { return "Filter" }

// ProjectNode evaluates one expression per output column.
type ProjectNode struct {
	baseNode
	source      PlanNode
	Names       []string
	Projections []TypedExpr
	outputType  *types.RowType
}

func NewProjectNode(id string, source PlanNode, names []string, projections []TypedExpr) *ProjectNode {
	typs := make([]types.Type, len(projections))
	for i, p := range projections {
		typs[i] = p.Type()
	}
	return &ProjectNode{
		baseNode:    baseNode{id: id},
		source:      source,
		Names:       names,
		Projections: projections,
		outputType:  types.MustRowType(names, typs),
	}
}

func (n *ProjectNode) Sources() []PlanNode        { return []PlanNode{n.source} }
func (n *ProjectNode) OutputType() *types.RowType { return n.outputType }
func (n *ProjectNode) Name() string               { return "Project" }

// AggregationNode groups by the grouping keys and evaluates one
// aggregate call per output measure. The output schema is the grouping
// keys followed by the aggregates, in order.
type AggregationNode struct {
	baseNode
	source         PlanNode
	Step           AggregationStep
	GroupingKeys   []*FieldAccessExpr
	AggregateNames []string
	Aggregates     []*CallExpr
	// Masks[i] is the boolean column filtering Aggregates[i], or nil.
	Masks      []*FieldAccessExpr
	outputType *types.RowType
}

func NewAggregationNode(
	id string,
	step AggregationStep,
	source PlanNode,
	groupingKeys []*FieldAccessExpr,
	aggregateNames []string,
	aggregates []*CallExpr,
	masks []*FieldAccessExpr,
) *AggregationNode {
	names := make([]string, 0, len(groupingKeys)+len(aggregates))
	typs := make([]types.Type, 0, len(groupingKeys)+len(aggregates))
	for _, k := range groupingKeys {
		names = append(names, k.Name)
		typs = append(typs, k.Typ)
	}
	for i, a := range aggregates {
		names = append(names, aggregateNames[i])
		typs = append(typs, a.RetTyp)
	}
	return &AggregationNode{
		baseNode:       baseNode{id: id},
		source:         source,
		Step:           step,
		GroupingKeys:   groupingKeys,
		AggregateNames: aggregateNames,
		Aggregates:     aggregates,
		Masks:          masks,
		outputType:     types.MustRowType(names, typs),
	}
}

func (n *AggregationNode) Sources() []PlanNode        { return []PlanNode{n.source} }
func (n *AggregationNode) OutputType() *types.RowType { return n.outputType }
func (n *AggregationNode) Name() string               { return "Aggregation" }

// JoinNode joins its two sources on equality of the paired key columns
// plus an optional residual filter.
type JoinNode struct {
	baseNode
	left       PlanNode
	right      PlanNode
	JoinType   JoinType
	LeftKeys   []*FieldAccessExpr
	RightKeys  []*FieldAccessExpr
	Filter     TypedExpr
	outputType *types.RowType
}

func NewJoinNode(
	id string,
	joinType JoinType,
	leftKeys, rightKeys []*FieldAccessExpr,
	filter TypedExpr,
	left, right PlanNode,
	outputType *types.RowType,
) *JoinNode {
	return &JoinNode{
		baseNode:   baseNode{id: id},
		left:       left,
		right:      right,
		JoinType:   joinType,
		LeftKeys:   leftKeys,
		RightKeys:  rightKeys,
		Filter:     filter,
		outputType: outputType,
	}
}

func (n *JoinNode) Sources() []PlanNode        { return []PlanNode{n.left, n.right} }
func (n *JoinNode) OutputType() *types.RowType { return n.outputType }
func (n *JoinNode) Name() string               { return "HashJoin" }

// TableScanNode reads a table through its connector handle.
// Assignments maps each output column name to the column handle that
// produces it.
type TableScanNode struct {
	baseNode
	outputType  *types.RowType
	Handle      *connector.TableHandle
	Assignments map[string]*connector.ColumnHandle
}

func NewTableScanNode(
	id string,
	outputType *types.RowType,
	handle *connector.TableHandle,
	assignments map[string]*connector.ColumnHandle,
) *TableScanNode {
	return &TableScanNode{
		baseNode:    baseNode{id: id},
		outputType:  outputType,
		Handle:      handle,
		Assignments: assignments,
	}
}

func (n *TableScanNode) Sources() []PlanNode        { return nil }
func (n *TableScanNode) OutputType() *types.RowType { return n.outputType }
func (n *TableScanNode) Name() string               { return "TableScan" }

// ValuesNode produces literal rows from in-plan batches.
type ValuesNode struct {
	baseNode
	Batches    []*RowBatch
	outputType *types.RowType
}

func NewValuesNode(id string, batches []*RowBatch, outputType *types.RowType) *ValuesNode {
	return &ValuesNode{baseNode: baseNode{id: id}, Batches: batches, outputType: outputType}
}

func (n *ValuesNode) Sources() []PlanNode        { return nil }
func (n *ValuesNode) OutputType() *types.RowType { return n.outputType }
func (n *ValuesNode) Name() string               { return "Values" }

// OrderByNode sorts by the given keys. IsPartial marks a per-driver
// sort whose output still needs merging.
type OrderByNode struct {
	baseNode
	source    PlanNode
	Keys      []*FieldAccessExpr
	Orders    []SortOrder
	IsPartial bool
}

func NewOrderByNode(id string, source PlanNode, keys []*FieldAccessExpr, orders []SortOrder, isPartial bool) *OrderByNode {
	return &OrderByNode{baseNode: baseNode{id: id}, source: source, Keys: keys, Orders: orders, IsPartial: isPartial}
}

func (n *OrderByNode) Sources() []PlanNode        { return []PlanNode{n.source} }
func (n *OrderByNode) OutputType() *types.RowType { return n.source.OutputType() }
func (n *OrderByNode) Name() string               { return "OrderBy" }

// LimitNode skips Offset rows then keeps at most Count rows.
type LimitNode struct {
	baseNode
	source    PlanNode
	Offset    int64
	Count     int64
	IsPartial bool
}

func NewLimitNode(id string, source PlanNode, offset, count int64, isPartial bool) *LimitNode {
	return &LimitNode{baseNode: baseNode{id: id}, source: source, Offset: offset, Count: count, IsPartial: isPartial}
}

func (n *LimitNode) Sources() []PlanNode        { return []PlanNode{n.source} }
func (n *LimitNode) OutputType() *types.RowType { return n.source.OutputType() }
func (n *LimitNode) Name() string               { return "Limit" }
