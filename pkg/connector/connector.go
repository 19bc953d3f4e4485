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

// Package connector holds the handle types a table scan carries: which
// table to read, which columns, and which pushed-down range filters the
// storage layer may apply.
package connector

import "github.com/Intel-bigdata/velox/pkg/container/types"

// FileFormat is the on-disk format of a file split.
type FileFormat int32

const (
	FileFormatUnknown FileFormat = iota
	FileFormatOrc
	FileFormatParquet
)

func (f FileFormat) String() string {
	switch f {
	case FileFormatOrc:
		return "ORC"
	case FileFormatParquet:
		return "PARQUET"
	default:
		return "UNKNOWN"
	}
}

// DoubleRange is a one-column numeric range filter. An unbounded side
// has its *Unbounded flag set and its bound value is meaningless.
type DoubleRange struct {
	Lower          float64
	LowerUnbounded bool
	LowerExclusive bool

	Upper          float64
	UpperUnbounded bool
	UpperExclusive bool

	NullAllowed bool
}

// SubfieldFilters maps a column name to its pushed-down range.
type SubfieldFilters map[string]*DoubleRange

// TableHandle identifies the table a scan reads and carries the filters
// pushed down into the scan.
type TableHandle struct {
	ConnectorID           string
	TableName             string
	FilterPushdownEnabled bool
	SubfieldFilters       SubfieldFilters
}

// ColumnHandle identifies one column a scan produces.
type ColumnHandle struct {
	Name string
	Typ  types.Type
}

// SplitInfo describes the file splits backing one table scan. Paths,
// Starts and Lengths are parallel slices, one entry per split.
type SplitInfo struct {
	// PartitionIndex is shared by every split of the scan.
	PartitionIndex int32
	Paths          []string
	Starts         []uint64
	Lengths        []uint64
	Format         FileFormat
}
