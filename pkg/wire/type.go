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

// Type is the wire type message. Exactly one kind field is set; the
// kind fields carry the field numbers of the external algebra schema.
type Type struct {
	Bool        *Type_Boolean     `protobuf:"bytes,1,opt,name=bool" json:"bool,omitempty"`
	I8          *Type_I8          `protobuf:"bytes,2,opt,name=i8" json:"i8,omitempty"`
	I16         *Type_I16         `protobuf:"bytes,3,opt,name=i16" json:"i16,omitempty"`
	I32         *Type_I32         `protobuf:"bytes,5,opt,name=i32" json:"i32,omitempty"`
	I64         *Type_I64         `protobuf:"bytes,7,opt,name=i64" json:"i64,omitempty"`
	Fp32        *Type_FP32        `protobuf:"bytes,10,opt,name=fp32" json:"fp32,omitempty"`
	Fp64        *Type_FP64        `protobuf:"bytes,11,opt,name=fp64" json:"fp64,omitempty"`
	String_     *Type_String      `protobuf:"bytes,12,opt,name=string" json:"string,omitempty"`
	Binary      *Type_Binary      `protobuf:"bytes,13,opt,name=binary" json:"binary,omitempty"`
	Timestamp   *Type_Timestamp   `protobuf:"bytes,14,opt,name=timestamp" json:"timestamp,omitempty"`
	Date        *Type_Date        `protobuf:"bytes,16,opt,name=date" json:"date,omitempty"`
	FixedChar   *Type_FixedChar   `protobuf:"bytes,21,opt,name=fixed_char,json=fixedChar" json:"fixed_char,omitempty"`
	Varchar     *Type_VarChar     `protobuf:"bytes,22,opt,name=varchar" json:"varchar,omitempty"`
	FixedBinary *Type_FixedBinary `protobuf:"bytes,23,opt,name=fixed_binary,json=fixedBinary" json:"fixed_binary,omitempty"`
	Decimal     *Type_Decimal     `protobuf:"bytes,24,opt,name=decimal" json:"decimal,omitempty"`
	Struct      *Type_Struct      `protobuf:"bytes,25,opt,name=struct" json:"struct,omitempty"`
	List        *Type_List        `protobuf:"bytes,27,opt,name=list" json:"list,omitempty"`
	Map         *Type_Map         `protobuf:"bytes,28,opt,name=map" json:"map,omitempty"`
	UserDefined *Type_UserDefined `protobuf:"bytes,30,opt,name=user_defined,json=userDefined" json:"user_defined,omitempty"`
}

func (m *Type) Reset()         { *m = Type{} }
func (m *Type) String() string { return proto.CompactTextString(m) }
func (*Type) ProtoMessage()    {}

type Type_Boolean struct {
	TypeVariationReference uint32           `protobuf:"varint,1,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,2,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_Boolean) Reset()         { *m = Type_Boolean{} }
func (m *Type_Boolean) String() string { return proto.CompactTextString(m) }
func (*Type_Boolean) ProtoMessage()    {}

type Type_I8 struct {
	TypeVariationReference uint32           `protobuf:"varint,1,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,2,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_I8) Reset()         { *m = Type_I8{} }
func (m *Type_I8) String() string { return proto.CompactTextString(m) }
func (*Type_I8) ProtoMessage()    {}

type Type_I16 struct {
	TypeVariationReference uint32           `protobuf:"varint,1,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,2,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_I16) Reset()         { *m = Type_I16{} }
func (m *Type_I16) String() string { return proto.CompactTextString(m) }
func (*Type_I16) ProtoMessage()    {}

type Type_I32 struct {
	TypeVariationReference uint32           `protobuf:"varint,1,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,2,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_I32) Reset()         { *m = Type_I32{} }
func (m *Type_I32) String() string { return proto.CompactTextString(m) }
func (*Type_I32) ProtoMessage()    {}

type Type_I64 struct {
	TypeVariationReference uint32           `protobuf:"varint,1,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,2,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_I64) Reset()         { *m = Type_I64{} }
func (m *Type_I64) String() string { return proto.CompactTextString(m) }
func (*Type_I64) ProtoMessage()    {}

type Type_FP32 struct {
	TypeVariationReference uint32           `protobuf:"varint,1,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,2,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_FP32) Reset()         { *m = Type_FP32{} }
func (m *Type_FP32) String() string { return proto.CompactTextString(m) }
func (*Type_FP32) ProtoMessage()    {}

type Type_FP64 struct {
	TypeVariationReference uint32           `protobuf:"varint,1,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,2,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_FP64) Reset()         { *m = Type_FP64{} }
func (m *Type_FP64) String() string { return proto.CompactTextString(m) }
func (*Type_FP64) ProtoMessage()    {}

type Type_String struct {
	TypeVariationReference uint32           `protobuf:"varint,1,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,2,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_String) Reset()         { *m = Type_String{} }
func (m *Type_String) String() string { return proto.CompactTextString(m) }
func (*Type_String) ProtoMessage()    {}

type Type_Binary struct {
	TypeVariationReference uint32           `protobuf:"varint,1,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,2,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_Binary) Reset()         { *m = Type_Binary{} }
func (m *Type_Binary) String() string { return proto.CompactTextString(m) }
func (*Type_Binary) ProtoMessage()    {}

type Type_Timestamp struct {
	TypeVariationReference uint32           `protobuf:"varint,1,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,2,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_Timestamp) Reset()         { *m = Type_Timestamp{} }
func (m *Type_Timestamp) String() string { return proto.CompactTextString(m) }
func (*Type_Timestamp) ProtoMessage()    {}

type Type_Date struct {
	TypeVariationReference uint32           `protobuf:"varint,1,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,2,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_Date) Reset()         { *m = Type_Date{} }
func (m *Type_Date) String() string { return proto.CompactTextString(m) }
func (*Type_Date) ProtoMessage()    {}

type Type_FixedChar struct {
	Length                 int32            `protobuf:"varint,1,opt,name=length,proto3" json:"length,omitempty"`
	TypeVariationReference uint32           `protobuf:"varint,2,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,3,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_FixedChar) Reset()         { *m = Type_FixedChar{} }
func (m *Type_FixedChar) String() string { return proto.CompactTextString(m) }
func (*Type_FixedChar) ProtoMessage()    {}

type Type_VarChar struct {
	Length                 int32            `protobuf:"varint,1,opt,name=length,proto3" json:"length,omitempty"`
	TypeVariationReference uint32           `protobuf:"varint,2,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,3,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_VarChar) Reset()         { *m = Type_VarChar{} }
func (m *Type_VarChar) String() string { return proto.CompactTextString(m) }
func (*Type_VarChar) ProtoMessage()    {}

type Type_FixedBinary struct {
	Length                 int32            `protobuf:"varint,1,opt,name=length,proto3" json:"length,omitempty"`
	TypeVariationReference uint32           `protobuf:"varint,2,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,3,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_FixedBinary) Reset()         { *m = Type_FixedBinary{} }
func (m *Type_FixedBinary) String() string { return proto.CompactTextString(m) }
func (*Type_FixedBinary) ProtoMessage()    {}

type Type_Decimal struct {
	Scale                  int32            `protobuf:"varint,1,opt,name=scale,proto3" json:"scale,omitempty"`
	Precision              int32            `protobuf:"varint,2,opt,name=precision,proto3" json:"precision,omitempty"`
	TypeVariationReference uint32           `protobuf:"varint,3,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,4,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_Decimal) Reset()         { *m = Type_Decimal{} }
func (m *Type_Decimal) String() string { return proto.CompactTextString(m) }
func (*Type_Decimal) ProtoMessage()    {}

type Type_Struct struct {
	Types                  []*Type          `protobuf:"bytes,1,rep,name=types" json:"types,omitempty"`
	TypeVariationReference uint32           `protobuf:"varint,2,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,3,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_Struct) Reset()         { *m = Type_Struct{} }
func (m *Type_Struct) String() string { return proto.CompactTextString(m) }
func (*Type_Struct) ProtoMessage()    {}

type Type_List struct {
	Type                   *Type            `protobuf:"bytes,1,opt,name=type" json:"type,omitempty"`
	TypeVariationReference uint32           `protobuf:"varint,2,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,3,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_List) Reset()         { *m = Type_List{} }
func (m *Type_List) String() string { return proto.CompactTextString(m) }
func (*Type_List) ProtoMessage()    {}

type Type_Map struct {
	Key                    *Type            `protobuf:"bytes,1,opt,name=key" json:"key,omitempty"`
	Value                  *Type            `protobuf:"bytes,2,opt,name=value" json:"value,omitempty"`
	TypeVariationReference uint32           `protobuf:"varint,3,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,4,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_Map) Reset()         { *m = Type_Map{} }
func (m *Type_Map) String() string { return proto.CompactTextString(m) }
func (*Type_Map) ProtoMessage()    {}

type Type_UserDefined struct {
	TypeReference          uint32           `protobuf:"varint,1,opt,name=type_reference,json=typeReference,proto3" json:"type_reference,omitempty"`
	TypeVariationReference uint32           `protobuf:"varint,2,opt,name=type_variation_reference,json=typeVariationReference,proto3" json:"type_variation_reference,omitempty"`
	Nullability            Type_Nullability `protobuf:"varint,3,opt,name=nullability,proto3" json:"nullability,omitempty"`
}

func (m *Type_UserDefined) Reset()         { *m = Type_UserDefined{} }
func (m *Type_UserDefined) String() string { return proto.CompactTextString(m) }
func (*Type_UserDefined) ProtoMessage()    {}

// NamedStruct pairs a struct type with the flattened field names.
type NamedStruct struct {
	Names  []string     `protobuf:"bytes,1,rep,name=names" json:"names,omitempty"`
	Struct *Type_Struct `protobuf:"bytes,2,opt,name=struct" json:"struct,omitempty"`
}

func (m *NamedStruct) Reset()         { *m = NamedStruct{} }
func (m *NamedStruct) String() string { return proto.CompactTextString(m) }
func (*NamedStruct) ProtoMessage()    {}
