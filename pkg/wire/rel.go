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

import proto "github.com/gogo/protobuf/proto"

// Rel is one relational operator. Exactly one of the kind fields is
// set.
type Rel struct {
	Read      *ReadRel      `protobuf:"bytes,1,opt,name=read" json:"read,omitempty"`
	Filter    *FilterRel    `protobuf:"bytes,2,opt,name=filter" json:"filter,omitempty"`
	Fetch     *FetchRel     `protobuf:"bytes,3,opt,name=fetch" json:"fetch,omitempty"`
	Aggregate *AggregateRel `protobuf:"bytes,4,opt,name=aggregate" json:"aggregate,omitempty"`
	Sort      *SortRel      `protobuf:"bytes,5,opt,name=sort" json:"sort,omitempty"`
	Join      *JoinRel      `protobuf:"bytes,6,opt,name=join" json:"join,omitempty"`
	Project   *ProjectRel   `protobuf:"bytes,7,opt,name=project" json:"project,omitempty"`
}

func (m *Rel) Reset()         { *m = Rel{} }
func (m *Rel) String() string { return proto.CompactTextString(m) }
func (*Rel) ProtoMessage()    {}

// RelCommon carries the output mapping shared by every operator.
type RelCommon struct {
	Direct *RelCommon_Direct `protobuf:"bytes,1,opt,name=direct" json:"direct,omitempty"`
	Emit   *RelCommon_Emit   `protobuf:"bytes,2,opt,name=emit" json:"emit,omitempty"`
}

func (m *RelCommon) Reset()         { *m = RelCommon{} }
func (m *RelCommon) String() string { return proto.CompactTextString(m) }
func (*RelCommon) ProtoMessage()    {}

// RelCommon_Direct means the operator emits its natural output.
type RelCommon_Direct struct {
}

func (m *RelCommon_Direct) Reset()         { *m = RelCommon_Direct{} }
func (m *RelCommon_Direct) String() string { return proto.CompactTextString(m) }
func (*RelCommon_Direct) ProtoMessage()    {}

// RelCommon_Emit selects and reorders the operator's output columns.
type RelCommon_Emit struct {
	OutputMapping []int32 `protobuf:"varint,1,rep,packed,name=output_mapping,json=outputMapping,proto3" json:"output_mapping,omitempty"`
}

func (m *RelCommon_Emit) Reset()         { *m = RelCommon_Emit{} }
func (m *RelCommon_Emit) String() string { return proto.CompactTextString(m) }
func (*RelCommon_Emit) ProtoMessage()    {}

// ReadRel scans a table. The source is one of VirtualTable, LocalFiles
// or NamedTable.
type ReadRel struct {
	Common       *RelCommon            `protobuf:"bytes,1,opt,name=common" json:"common,omitempty"`
	BaseSchema   *NamedStruct          `protobuf:"bytes,2,opt,name=base_schema,json=baseSchema" json:"base_schema,omitempty"`
	Filter       *Expression           `protobuf:"bytes,3,opt,name=filter" json:"filter,omitempty"`
	VirtualTable *ReadRel_VirtualTable `protobuf:"bytes,5,opt,name=virtual_table,json=virtualTable" json:"virtual_table,omitempty"`
	LocalFiles   *ReadRel_LocalFiles   `protobuf:"bytes,6,opt,name=local_files,json=localFiles" json:"local_files,omitempty"`
	NamedTable   *ReadRel_NamedTable   `protobuf:"bytes,7,opt,name=named_table,json=namedTable" json:"named_table,omitempty"`
}

func (m *ReadRel) Reset()         { *m = ReadRel{} }
func (m *ReadRel) String() string { return proto.CompactTextString(m) }
func (*ReadRel) ProtoMessage()    {}

type ReadRel_VirtualTable struct {
	Values []*Expression_Literal_Struct `protobuf:"bytes,1,rep,name=values" json:"values,omitempty"`
}

func (m *ReadRel_VirtualTable) Reset()         { *m = ReadRel_VirtualTable{} }
func (m *ReadRel_VirtualTable) String() string { return proto.CompactTextString(m) }
func (*ReadRel_VirtualTable) ProtoMessage()    {}

type ReadRel_NamedTable struct {
	Names []string `protobuf:"bytes,1,rep,name=names" json:"names,omitempty"`
}

func (m *ReadRel_NamedTable) Reset()         { *m = ReadRel_NamedTable{} }
func (m *ReadRel_NamedTable) String() string { return proto.CompactTextString(m) }
func (*ReadRel_NamedTable) ProtoMessage()    {}

type ReadRel_LocalFiles struct {
	Items []*ReadRel_LocalFiles_FileOrFiles `protobuf:"bytes,1,rep,name=items" json:"items,omitempty"`
}

func (m *ReadRel_LocalFiles) Reset()         { *m = ReadRel_LocalFiles{} }
func (m *ReadRel_LocalFiles) String() string { return proto.CompactTextString(m) }
func (*ReadRel_LocalFiles) ProtoMessage()    {}

// ReadRel_LocalFiles_FileOrFiles is one file split. The format is
// signaled by which of the format fields is present.
type ReadRel_LocalFiles_FileOrFiles struct {
	UriFile        *string                                        `protobuf:"bytes,3,opt,name=uri_file,json=uriFile" json:"uri_file,omitempty"`
	PartitionIndex uint64                                         `protobuf:"varint,5,opt,name=partition_index,json=partitionIndex,proto3" json:"partition_index,omitempty"`
	Start          uint64                                         `protobuf:"varint,6,opt,name=start,proto3" json:"start,omitempty"`
	Length         uint64                                         `protobuf:"varint,7,opt,name=length,proto3" json:"length,omitempty"`
	Parquet        *ReadRel_LocalFiles_FileOrFiles_ParquetReadOptions `protobuf:"bytes,9,opt,name=parquet" json:"parquet,omitempty"`
	Orc            *ReadRel_LocalFiles_FileOrFiles_OrcReadOptions     `protobuf:"bytes,11,opt,name=orc" json:"orc,omitempty"`
}

func (m *ReadRel_LocalFiles_FileOrFiles) Reset()         { *m = ReadRel_LocalFiles_FileOrFiles{} }
func (m *ReadRel_LocalFiles_FileOrFiles) String() string { return proto.CompactTextString(m) }
func (*ReadRel_LocalFiles_FileOrFiles) ProtoMessage()    {}

type ReadRel_LocalFiles_FileOrFiles_ParquetReadOptions struct {
}

func (m *ReadRel_LocalFiles_FileOrFiles_ParquetReadOptions) Reset() {
	*m = ReadRel_LocalFiles_FileOrFiles_ParquetReadOptions{}
}
func (m *ReadRel_LocalFiles_FileOrFiles_ParquetReadOptions) String() string {
	return proto.CompactTextString(m)
}
func (*ReadRel_LocalFiles_FileOrFiles_ParquetReadOptions) ProtoMessage() {}

type ReadRel_LocalFiles_FileOrFiles_OrcReadOptions struct {
}

func (m *ReadRel_LocalFiles_FileOrFiles_OrcReadOptions) Reset() {
	*m = ReadRel_LocalFiles_FileOrFiles_OrcReadOptions{}
}
func (m *ReadRel_LocalFiles_FileOrFiles_OrcReadOptions) String() string {
	return proto.CompactTextString(m)
}
func (*ReadRel_LocalFiles_FileOrFiles_OrcReadOptions) ProtoMessage() {}

// FilterRel keeps the input rows satisfying the condition.
type FilterRel struct {
	Common    *RelCommon  `protobuf:"bytes,1,opt,name=common" json:"common,omitempty"`
	Input     *Rel        `protobuf:"bytes,2,opt,name=input" json:"input,omitempty"`
	Condition *Expression `protobuf:"bytes,3,opt,name=condition" json:"condition,omitempty"`
}

func (m *FilterRel) Reset()         { *m = FilterRel{} }
func (m *FilterRel) String() string { return proto.CompactTextString(m) }
func (*FilterRel) ProtoMessage()    {}

// FetchRel skips Offset rows then emits at most Count rows.
type FetchRel struct {
	Common *RelCommon `protobuf:"bytes,1,opt,name=common" json:"common,omitempty"`
	Input  *Rel       `protobuf:"bytes,2,opt,name=input" json:"input,omitempty"`
	Offset int64      `protobuf:"varint,3,opt,name=offset,proto3" json:"offset,omitempty"`
	Count  int64      `protobuf:"varint,4,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *FetchRel) Reset()         { *m = FetchRel{} }
func (m *FetchRel) String() string { return proto.CompactTextString(m) }
func (*FetchRel) ProtoMessage()    {}

// AggregateRel groups the input and computes one measure per
// aggregate function.
type AggregateRel struct {
	Common    *RelCommon              `protobuf:"bytes,1,opt,name=common" json:"common,omitempty"`
	Input     *Rel                    `protobuf:"bytes,2,opt,name=input" json:"input,omitempty"`
	Groupings []*AggregateRel_Grouping `protobuf:"bytes,3,rep,name=groupings" json:"groupings,omitempty"`
	Measures  []*AggregateRel_Measure  `protobuf:"bytes,4,rep,name=measures" json:"measures,omitempty"`
}

func (m *AggregateRel) Reset()         { *m = AggregateRel{} }
func (m *AggregateRel) String() string { return proto.CompactTextString(m) }
func (*AggregateRel) ProtoMessage()    {}

type AggregateRel_Grouping struct {
	GroupingExpressions []*Expression `protobuf:"bytes,1,rep,name=grouping_expressions,json=groupingExpressions" json:"grouping_expressions,omitempty"`
}

func (m *AggregateRel_Grouping) Reset()         { *m = AggregateRel_Grouping{} }
func (m *AggregateRel_Grouping) String() string { return proto.CompactTextString(m) }
func (*AggregateRel_Grouping) ProtoMessage()    {}

type AggregateRel_Measure struct {
	Measure *AggregateFunction `protobuf:"bytes,1,opt,name=measure" json:"measure,omitempty"`
	// Filter is a boolean expression masking the measure's input.
	Filter *Expression `protobuf:"bytes,2,opt,name=filter" json:"filter,omitempty"`
}

func (m *AggregateRel_Measure) Reset()         { *m = AggregateRel_Measure{} }
func (m *AggregateRel_Measure) String() string { return proto.CompactTextString(m) }
func (*AggregateRel_Measure) ProtoMessage()    {}

// AggregateFunction invokes an aggregate function from the extension
// section.
type AggregateFunction struct {
	FunctionReference uint32              `protobuf:"varint,1,opt,name=function_reference,json=functionReference,proto3" json:"function_reference,omitempty"`
	Phase             AggregationPhase    `protobuf:"varint,4,opt,name=phase,proto3" json:"phase,omitempty"`
	OutputType        *Type               `protobuf:"bytes,5,opt,name=output_type,json=outputType" json:"output_type,omitempty"`
	Arguments         []*FunctionArgument `protobuf:"bytes,7,rep,name=arguments" json:"arguments,omitempty"`
}

func (m *AggregateFunction) Reset()         { *m = AggregateFunction{} }
func (m *AggregateFunction) String() string { return proto.CompactTextString(m) }
func (*AggregateFunction) ProtoMessage()    {}

// SortRel orders the input by the sort fields.
type SortRel struct {
	Common *RelCommon   `protobuf:"bytes,1,opt,name=common" json:"common,omitempty"`
	Input  *Rel         `protobuf:"bytes,2,opt,name=input" json:"input,omitempty"`
	Sorts  []*SortField `protobuf:"bytes,3,rep,name=sorts" json:"sorts,omitempty"`
}

func (m *SortRel) Reset()         { *m = SortRel{} }
func (m *SortRel) String() string { return proto.CompactTextString(m) }
func (*SortRel) ProtoMessage()    {}

type SortField struct {
	Expr      *Expression             `protobuf:"bytes,1,opt,name=expr" json:"expr,omitempty"`
	Direction SortField_SortDirection `protobuf:"varint,2,opt,name=direction,proto3" json:"direction,omitempty"`
}

func (m *SortField) Reset()         { *m = SortField{} }
func (m *SortField) String() string { return proto.CompactTextString(m) }
func (*SortField) ProtoMessage()    {}

// JoinRel joins its two inputs on Expression, then applies
// PostJoinFilter to the joined rows.
type JoinRel struct {
	Common         *RelCommon       `protobuf:"bytes,1,opt,name=common" json:"common,omitempty"`
	Left           *Rel             `protobuf:"bytes,2,opt,name=left" json:"left,omitempty"`
	Right          *Rel             `protobuf:"bytes,3,opt,name=right" json:"right,omitempty"`
	Expression     *Expression      `protobuf:"bytes,4,opt,name=expression" json:"expression,omitempty"`
	PostJoinFilter *Expression      `protobuf:"bytes,5,opt,name=post_join_filter,json=postJoinFilter" json:"post_join_filter,omitempty"`
	Type           JoinRel_JoinType `protobuf:"varint,6,opt,name=type,proto3" json:"type,omitempty"`
}

func (m *JoinRel) Reset()         { *m = JoinRel{} }
func (m *JoinRel) String() string { return proto.CompactTextString(m) }
func (*JoinRel) ProtoMessage()    {}

// ProjectRel computes one expression per emitted column.
type ProjectRel struct {
	Common      *RelCommon    `protobuf:"bytes,1,opt,name=common" json:"common,omitempty"`
	Input       *Rel          `protobuf:"bytes,2,opt,name=input" json:"input,omitempty"`
	Expressions []*Expression `protobuf:"bytes,3,rep,name=expressions" json:"expressions,omitempty"`
}

func (m *ProjectRel) Reset()         { *m = ProjectRel{} }
func (m *ProjectRel) String() string { return proto.CompactTextString(m) }
func (*ProjectRel) ProtoMessage()    {}
