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
	"github.com/Intel-bigdata/velox/pkg/connector"
	"github.com/Intel-bigdata/velox/pkg/container/types"
	"github.com/Intel-bigdata/velox/pkg/logutil"
	"github.com/Intel-bigdata/velox/pkg/wire"
)

// filterInfo accumulates the bounds seen for one column. A repeated
// bound on the same side overwrites the previous one.
type filterInfo struct {
	lower          *float64
	lowerExclusive bool
	upper          *float64
	upperExclusive bool
	forbidsNull    bool
}

func (f *filterInfo) setLower(v float64, exclusive bool, col string) {
	if f.lower != nil {
		logutil.Debug("overwriting pushdown lower bound",
			zap.String("column", col), zap.Float64("old", *f.lower), zap.Float64("new", v))
	}
	f.lower = &v
	f.lowerExclusive = exclusive
}

func (f *filterInfo) setUpper(v float64, exclusive bool, col string) {
	if f.upper != nil {
		logutil.Debug("overwriting pushdown upper bound",
			zap.String("column", col), zap.Float64("old", *f.upper), zap.Float64("new", v))
	}
	f.upper = &v
	f.upperExclusive = exclusive
}

// toSubfieldFilters turns a scan filter into per-column range filters.
// The filter must be a conjunction of is_not_null and bound
// comparisons against fp64 literals.
func (c *FromWireConverter) toSubfieldFilters(ctx context.Context, filter *wire.Expression, schema *types.RowType) (connector.SubfieldFilters, error) {
	var leaves []*wire.Expression_ScalarFunction
	if err := c.flattenConditions(ctx, filter, &leaves); err != nil {
		return nil, err
	}

	infos := make(map[string]*filterInfo)
	order := make([]string, 0, len(leaves))
	info := func(col string) *filterInfo {
		f, ok := infos[col]
		if !ok {
			f = &filterInfo{}
			infos[col] = f
			order = append(order, col)
		}
		return f
	}

	for _, leaf := range leaves {
		name, err := c.exprConv.FunctionName(ctx, leaf.FunctionReference)
		if err != nil {
			return nil, err
		}
		switch name {
		case "is_not_null":
			col, err := filterColumn(ctx, leaf, schema, 1)
			if err != nil {
				return nil, err
			}
			info(col).forbidsNull = true
		case "gte", "gt", "lte", "lt":
			col, err := filterColumn(ctx, leaf, schema, 2)
			if err != nil {
				return nil, err
			}
			bound, err := filterBound(ctx, leaf)
			if err != nil {
				return nil, err
			}
			switch name {
			case "gte":
				info(col).setLower(bound, false, col)
			case "gt":
				info(col).setLower(bound, true, col)
			case "lte":
				info(col).setUpper(bound, false, col)
			case "lt":
				info(col).setUpper(bound, true, col)
			}
		default:
			return nil, moerr.NewNotSupported(ctx, "%s in a pushdown filter", name)
		}
	}

	filters := connector.SubfieldFilters{}
	for _, col := range order {
		f := infos[col]
		r := &connector.DoubleRange{
			LowerUnbounded: f.lower == nil,
			UpperUnbounded: f.upper == nil,
			NullAllowed:    !f.forbidsNull,
		}
		if f.lower != nil {
			r.Lower = *f.lower
			r.LowerExclusive = f.lowerExclusive
		}
		if f.upper != nil {
			r.Upper = *f.upper
			r.UpperExclusive = f.upperExclusive
		}
		filters[col] = r
	}
	return filters, nil
}

// flattenConditions splits nested and calls into their conjunct
// leaves.
func (c *FromWireConverter) flattenConditions(ctx context.Context, expr *wire.Expression, leaves *[]*wire.Expression_ScalarFunction) error {
	fn := expr.ScalarFunction
	if fn == nil {
		return moerr.NewNotSupported(ctx, "pushdown filter %s", expr.String())
	}
	name, err := c.exprConv.FunctionName(ctx, fn.FunctionReference)
	if err != nil {
		return err
	}
	if name == "and" {
		for _, a := range fn.Arguments {
			if a.Value == nil {
				return moerr.NewInvalidInput(ctx, "and argument without a value")
			}
			if err := c.flattenConditions(ctx, a.Value, leaves); err != nil {
				return err
			}
		}
		return nil
	}
	*leaves = append(*leaves, fn)
	return nil
}

func filterColumn(ctx context.Context, fn *wire.Expression_ScalarFunction, schema *types.RowType, wantArgs int) (string, error) {
	if len(fn.Arguments) != wantArgs {
		return "", moerr.NewInvalidInput(ctx,
			"pushdown filter call with %d arguments, want %d", len(fn.Arguments), wantArgs)
	}
	first := fn.Arguments[0].Value
	if first == nil || first.Selection == nil ||
		first.Selection.DirectReference == nil || first.Selection.DirectReference.StructField == nil {
		return "", moerr.NewNotSupported(ctx, "pushdown filter must start with a column reference")
	}
	idx := int(first.Selection.DirectReference.StructField.Field)
	if idx < 0 || idx >= schema.Size() {
		return "", moerr.NewInvalidInput(ctx, "pushdown filter column %d out of range", idx)
	}
	return schema.Name(idx), nil
}

func filterBound(ctx context.Context, fn *wire.Expression_ScalarFunction) (float64, error) {
	second := fn.Arguments[1].Value
	if second == nil || second.Literal == nil {
		return 0, moerr.NewNotSupported(ctx, "pushdown filter bound must be a literal")
	}
	if second.Literal.Fp64 == nil {
		return 0, moerr.NewNotSupported(ctx, "pushdown filter bound of type %s", second.Literal.String())
	}
	return *second.Literal.Fp64, nil
}
