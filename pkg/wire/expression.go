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

// Expression is the wire expression message. Exactly one of the kind
// fields is set.
type Expression struct {
	Literal        *Expression_Literal        `protobuf:"bytes,1,opt,name=literal" json:"literal,omitempty"`
	Selection      *Expression_FieldReference `protobuf:"bytes,2,opt,name=selection" json:"selection,omitempty"`
	ScalarFunction *Expression_ScalarFunction `protobuf:"bytes,3,opt,name=scalar_function,json=scalarFunction" json:"scalar_function,omitempty"`
	IfThen         *Expression_IfThen         `protobuf:"bytes,6,opt,name=if_then,json=ifThen" json:"if_then,omitempty"`
}

func (m *Expression) Reset()         { *m = Expression{} }
func (m *Expression) String() string { return proto.CompactTextString(m) }
func (*Expression) ProtoMessage()    {}

// Expression_Literal is a typed literal value. Exactly one of the
// value fields is set; the pointer fields double as presence markers.
type Expression_Literal struct {
	Boolean   *bool                      `protobuf:"varint,1,opt,name=boolean" json:"boolean,omitempty"`
	I8        *int32                     `protobuf:"varint,2,opt,name=i8" json:"i8,omitempty"`
	I16       *int32                     `protobuf:"varint,3,opt,name=i16" json:"i16,omitempty"`
	I32       *int32                     `protobuf:"varint,5,opt,name=i32" json:"i32,omitempty"`
	I64       *int64                     `protobuf:"varint,7,opt,name=i64" json:"i64,omitempty"`
	Fp32      *float32                   `protobuf:"fixed32,10,opt,name=fp32" json:"fp32,omitempty"`
	Fp64      *float64                   `protobuf:"fixed64,11,opt,name=fp64" json:"fp64,omitempty"`
	String_   *string                    `protobuf:"bytes,12,opt,name=string" json:"string,omitempty"`
	Binary    []byte                     `protobuf:"bytes,13,opt,name=binary" json:"binary,omitempty"`
	Timestamp *int64                     `protobuf:"varint,14,opt,name=timestamp" json:"timestamp,omitempty"`
	Date      *int32                     `protobuf:"varint,16,opt,name=date" json:"date,omitempty"`
	VarChar   *Expression_Literal_VarChar `protobuf:"bytes,22,opt,name=var_char,json=varChar" json:"var_char,omitempty"`
	Struct    *Expression_Literal_Struct `protobuf:"bytes,25,opt,name=struct" json:"struct,omitempty"`
	Null      *Type                      `protobuf:"bytes,29,opt,name=null" json:"null,omitempty"`

	// Nullable applies to the whole literal regardless of kind.
	Nullable bool `protobuf:"varint,50,opt,name=nullable,proto3" json:"nullable,omitempty"`
}

func (m *Expression_Literal) Reset()         { *m = Expression_Literal{} }
func (m *Expression_Literal) String() string { return proto.CompactTextString(m) }
func (*Expression_Literal) ProtoMessage()    {}

type Expression_Literal_VarChar struct {
	Value  string `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	Length uint32 `protobuf:"varint,2,opt,name=length,proto3" json:"length,omitempty"`
}

func (m *Expression_Literal_VarChar) Reset()         { *m = Expression_Literal_VarChar{} }
func (m *Expression_Literal_VarChar) String() string { return proto.CompactTextString(m) }
func (*Expression_Literal_VarChar) ProtoMessage()    {}

type Expression_Literal_Struct struct {
	Fields []*Expression_Literal `protobuf:"bytes,1,rep,name=fields" json:"fields,omitempty"`
}

func (m *Expression_Literal_Struct) Reset()         { *m = Expression_Literal_Struct{} }
func (m *Expression_Literal_Struct) String() string { return proto.CompactTextString(m) }
func (*Expression_Literal_Struct) ProtoMessage()    {}

// Expression_ScalarFunction invokes a function registered in the
// plan's extension section, identified by its anchor.
type Expression_ScalarFunction struct {
	FunctionReference uint32              `protobuf:"varint,1,opt,name=function_reference,json=functionReference,proto3" json:"function_reference,omitempty"`
	OutputType        *Type               `protobuf:"bytes,3,opt,name=output_type,json=outputType" json:"output_type,omitempty"`
	Arguments         []*FunctionArgument `protobuf:"bytes,4,rep,name=arguments" json:"arguments,omitempty"`
}

func (m *Expression_ScalarFunction) Reset()         { *m = Expression_ScalarFunction{} }
func (m *Expression_ScalarFunction) String() string { return proto.CompactTextString(m) }
func (*Expression_ScalarFunction) ProtoMessage()    {}

// FunctionArgument is one argument of a function invocation; value
// arguments are the only kind the converters produce.
type FunctionArgument struct {
	Enum  *string     `protobuf:"bytes,1,opt,name=enum" json:"enum,omitempty"`
	Type  *Type       `protobuf:"bytes,2,opt,name=type" json:"type,omitempty"`
	Value *Expression `protobuf:"bytes,3,opt,name=value" json:"value,omitempty"`
}

func (m *FunctionArgument) Reset()         { *m = FunctionArgument{} }
func (m *FunctionArgument) String() string { return proto.CompactTextString(m) }
func (*FunctionArgument) ProtoMessage()    {}

// Expression_IfThen is a chain of condition/value clauses with a
// final else value.
type Expression_IfThen struct {
	Ifs  []*Expression_IfThen_IfClause `protobuf:"bytes,1,rep,name=ifs" json:"ifs,omitempty"`
	Else *Expression                   `protobuf:"bytes,2,opt,name=else" json:"else,omitempty"`
}

func (m *Expression_IfThen) Reset()         { *m = Expression_IfThen{} }
func (m *Expression_IfThen) String() string { return proto.CompactTextString(m) }
func (*Expression_IfThen) ProtoMessage()    {}

type Expression_IfThen_IfClause struct {
	If   *Expression `protobuf:"bytes,1,opt,name=if" json:"if,omitempty"`
	Then *Expression `protobuf:"bytes,2,opt,name=then" json:"then,omitempty"`
}

func (m *Expression_IfThen_IfClause) Reset()         { *m = Expression_IfThen_IfClause{} }
func (m *Expression_IfThen_IfClause) String() string { return proto.CompactTextString(m) }
func (*Expression_IfThen_IfClause) ProtoMessage()    {}

// Expression_FieldReference points at one column of the input row.
// Only direct struct-field references rooted at the input row are
// produced or consumed.
type Expression_FieldReference struct {
	DirectReference *Expression_ReferenceSegment          `protobuf:"bytes,1,opt,name=direct_reference,json=directReference" json:"direct_reference,omitempty"`
	RootReference   *Expression_FieldReference_RootReference `protobuf:"bytes,4,opt,name=root_reference,json=rootReference" json:"root_reference,omitempty"`
}

func (m *Expression_FieldReference) Reset()         { *m = Expression_FieldReference{} }
func (m *Expression_FieldReference) String() string { return proto.CompactTextString(m) }
func (*Expression_FieldReference) ProtoMessage()    {}

type Expression_FieldReference_RootReference struct {
}

func (m *Expression_FieldReference_RootReference) Reset() {
	*m = Expression_FieldReference_RootReference{}
}
func (m *Expression_FieldReference_RootReference) String() string { return proto.CompactTextString(m) }
func (*Expression_FieldReference_RootReference) ProtoMessage()    {}

type Expression_ReferenceSegment struct {
	StructField *Expression_ReferenceSegment_StructField `protobuf:"bytes,2,opt,name=struct_field,json=structField" json:"struct_field,omitempty"`
}

func (m *Expression_ReferenceSegment) Reset()         { *m = Expression_ReferenceSegment{} }
func (m *Expression_ReferenceSegment) String() string { return proto.CompactTextString(m) }
func (*Expression_ReferenceSegment) ProtoMessage()    {}

type Expression_ReferenceSegment_StructField struct {
	Field int32                        `protobuf:"varint,1,opt,name=field,proto3" json:"field,omitempty"`
	Child *Expression_ReferenceSegment `protobuf:"bytes,2,opt,name=child" json:"child,omitempty"`
}

func (m *Expression_ReferenceSegment_StructField) Reset() {
	*m = Expression_ReferenceSegment_StructField{}
}
func (m *Expression_ReferenceSegment_StructField) String() string {
	return proto.CompactTextString(m)
}
func (*Expression_ReferenceSegment_StructField) ProtoMessage() {}

// NewDirectFieldRef builds a root-relative reference to column idx.
func NewDirectFieldRef(idx int32) *Expression_FieldReference {
	return &Expression_FieldReference{
		DirectReference: &Expression_ReferenceSegment{
			StructField: &Expression_ReferenceSegment_StructField{Field: idx},
		},
		RootReference: &Expression_FieldReference_RootReference{},
	}
}
