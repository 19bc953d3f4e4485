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

package wire

import "strconv"

// AggregationPhase tells which phase of a multi-phase aggregation a
// measure computes.
type AggregationPhase int32

const (
	AGGREGATION_PHASE_UNSPECIFIED                  AggregationPhase = 0
	AGGREGATION_PHASE_INITIAL_TO_INTERMEDIATE      AggregationPhase = 1
	AGGREGATION_PHASE_INTERMEDIATE_TO_INTERMEDIATE AggregationPhase = 2
	AGGREGATION_PHASE_INITIAL_TO_RESULT            AggregationPhase = 3
	AGGREGATION_PHASE_INTERMEDIATE_TO_RESULT       AggregationPhase = 4
)

var aggregationPhaseName = map[int32]string{
	0: "AGGREGATION_PHASE_UNSPECIFIED",
	1: "AGGREGATION_PHASE_INITIAL_TO_INTERMEDIATE",
	2: "AGGREGATION_PHASE_INTERMEDIATE_TO_INTERMEDIATE",
	3: "AGGREGATION_PHASE_INITIAL_TO_RESULT",
	4: "AGGREGATION_PHASE_INTERMEDIATE_TO_RESULT",
}

func (p AggregationPhase) String() string {
	if s, ok := aggregationPhaseName[int32(p)]; ok {
		return s
	}
	return strconv.Itoa(int(p))
}

// JoinRel_JoinType is the join flavor of a JoinRel.
type JoinRel_JoinType int32

const (
	JoinRel_JOIN_TYPE_UNSPECIFIED JoinRel_JoinType = 0
	JoinRel_JOIN_TYPE_INNER       JoinRel_JoinType = 1
	JoinRel_JOIN_TYPE_OUTER       JoinRel_JoinType = 2
	JoinRel_JOIN_TYPE_LEFT        JoinRel_JoinType = 3
	JoinRel_JOIN_TYPE_RIGHT       JoinRel_JoinType = 4
	JoinRel_JOIN_TYPE_LEFT_SEMI   JoinRel_JoinType = 5
	JoinRel_JOIN_TYPE_ANTI        JoinRel_JoinType = 6
	JoinRel_JOIN_TYPE_SINGLE      JoinRel_JoinType = 7
	JoinRel_JOIN_TYPE_RIGHT_SEMI  JoinRel_JoinType = 8
)

var joinTypeName = map[int32]string{
	0: "JOIN_TYPE_UNSPECIFIED",
	1: "JOIN_TYPE_INNER",
	2: "JOIN_TYPE_OUTER",
	3: "JOIN_TYPE_LEFT",
	4: "JOIN_TYPE_RIGHT",
	5: "JOIN_TYPE_LEFT_SEMI",
	6: "JOIN_TYPE_ANTI",
	7: "JOIN_TYPE_SINGLE",
	8: "JOIN_TYPE_RIGHT_SEMI",
}

func (t JoinRel_JoinType) String() string {
	if s, ok := joinTypeName[int32(t)]; ok {
		return s
	}
	return strconv.Itoa(int(t))
}

// SortField_SortDirection is the direction and null placement of one
// sort key.
type SortField_SortDirection int32

const (
	SortField_SORT_DIRECTION_UNSPECIFIED      SortField_SortDirection = 0
	SortField_SORT_DIRECTION_ASC_NULLS_FIRST  SortField_SortDirection = 1
	SortField_SORT_DIRECTION_ASC_NULLS_LAST   SortField_SortDirection = 2
	SortField_SORT_DIRECTION_DESC_NULLS_FIRST SortField_SortDirection = 3
	SortField_SORT_DIRECTION_DESC_NULLS_LAST  SortField_SortDirection = 4
	SortField_SORT_DIRECTION_CLUSTERED        SortField_SortDirection = 5
)

var sortDirectionName = map[int32]string{
	0: "SORT_DIRECTION_UNSPECIFIED",
	1: "SORT_DIRECTION_ASC_NULLS_FIRST",
	2: "SORT_DIRECTION_ASC_NULLS_LAST",
	3: "SORT_DIRECTION_DESC_NULLS_FIRST",
	4: "SORT_DIRECTION_DESC_NULLS_LAST",
	5: "SORT_DIRECTION_CLUSTERED",
}

func (d SortField_SortDirection) String() string {
	if s, ok := sortDirectionName[int32(d)]; ok {
		return s
	}
	return strconv.Itoa(int(d))
}

// Type_Nullability marks a wire type as nullable, required or
// unspecified.
type Type_Nullability int32

const (
	Type_NULLABILITY_UNSPECIFIED Type_Nullability = 0
	Type_NULLABILITY_NULLABLE    Type_Nullability = 1
	Type_NULLABILITY_REQUIRED    Type_Nullability = 2
)

var nullabilityName = map[int32]string{
	0: "NULLABILITY_UNSPECIFIED",
	1: "NULLABILITY_NULLABLE",
	2: "NULLABILITY_REQUIRED",
}

func (n Type_Nullability) String() string {
	if s, ok := nullabilityName[int32(n)]; ok {
		return s
	}
	return strconv.Itoa(int(n))
}
