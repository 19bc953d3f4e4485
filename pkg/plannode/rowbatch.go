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

package plannode

import "github.com/Intel-bigdata/velox/pkg/container/types"

// Column is one column of literal values. Nulls is either nil (no
// nulls) or parallel to Values.
type Column struct {
	Values []any
	Nulls  []bool
}

func (c *Column) IsNullAt(row int) bool {
	return c.Nulls != nil && c.Nulls[row]
}

// RowBatch is a small batch of literal rows, column major. It backs
// ValuesNode only; this package never executes anything.
type RowBatch struct {
	Typ  *types.RowType
	Cols []Column
}

func (b *RowBatch) NumRows() int {
	if len(b.Cols) == 0 {
		return 0
	}
	return len(b.Cols[0].Values)
}
