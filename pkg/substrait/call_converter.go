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

// ifThenFunctionName is the special form handled before catalog
// lookup.
const ifThenFunctionName = "if"

// CallConverter translates one class of function calls. Convert
// returns handled=false to pass the call to the next converter in the
// chain.
type CallConverter interface {
	Convert(ctx context.Context, call *plannode.CallExpr, input *types.RowType, conv *ExprToWireConverter) (*wire.Expression, bool, error)
}

// ifThenCallConverter rewrites if calls into the dedicated if_then
// message. Arguments alternate condition and result, with a trailing
// else value, so the count must be odd.
type ifThenCallConverter struct{}

func (c *ifThenCallConverter) Convert(ctx context.Context, call *plannode.CallExpr, input *types.RowType, conv *ExprToWireConverter) (*wire.Expression, bool, error) {
	if call.FnName != ifThenFunctionName {
		return nil, false, nil
	}
	if len(call.Args)%2 == 0 {
		return nil, false, moerr.NewInvalidInput(ctx,
			"if requires an odd number of arguments, got %d", len(call.Args))
	}
	ifThen := &wire.Expression_IfThen{}
	for i := 0; i+1 < len(call.Args); i += 2 {
		cond, err := conv.ToWireExpr(ctx, call.Args[i], input)
		if err != nil {
			return nil, false, err
		}
		then, err := conv.ToWireExpr(ctx, call.Args[i+1], input)
		if err != nil {
			return nil, false, err
		}
		ifThen.Ifs = append(ifThen.Ifs, &wire.Expression_IfThen_IfClause{If: cond, Then: then})
	}
	els, err := conv.ToWireExpr(ctx, call.Args[len(call.Args)-1], input)
	if err != nil {
		return nil, false, err
	}
	ifThen.Else = els
	return &wire.Expression{IfThen: ifThen}, true, nil
}

// scalarCallConverter resolves a call through the catalog and emits a
// scalar_function invocation referencing the collected anchor.
type scalarCallConverter struct {
	lookup    *FunctionLookup
	collector *FunctionCollector
}

func (c *scalarCallConverter) Convert(ctx context.Context, call *plannode.CallExpr, input *types.RowType, conv *ExprToWireConverter) (*wire.Expression, bool, error) {
	sigs, err := signatureFromCall(ctx, call)
	if err != nil {
		return nil, false, err
	}
	anchor, ok := c.lookup.Lookup(call.FnName, sigs)
	if !ok {
		return nil, false, moerr.NewNotSupported(ctx,
			"scalar function %s", signatureKey(call.FnName, sigs))
	}
	fn := &wire.Expression_ScalarFunction{
		FunctionReference: c.collector.GetFunctionReference(anchor),
	}
	for _, arg := range call.Args {
		value, err := conv.ToWireExpr(ctx, arg, input)
		if err != nil {
			return nil, false, err
		}
		fn.Arguments = append(fn.Arguments, &wire.FunctionArgument{Value: value})
	}
	out, err := ToWireType(ctx, call.RetTyp)
	if err != nil {
		return nil, false, err
	}
	fn.OutputType = out
	return &wire.Expression{ScalarFunction: fn}, true, nil
}
