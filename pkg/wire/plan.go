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

// Package wire holds the portable relational-algebra plan messages.
// The structs are protobuf-tagged by hand against the external algebra
// schema's field numbers and marshal through gogo/protobuf reflection;
// oneof groups are flattened into sibling pointer fields, at most one
// of which is set.
package wire

import proto "github.com/gogo/protobuf/proto"

// Plan is the top level wire message: the extension section followed
// by the relation trees.
type Plan struct {
	ExtensionUris []*SimpleExtensionURI         `protobuf:"bytes,1,rep,name=extension_uris,json=extensionUris" json:"extension_uris,omitempty"`
	Extensions    []*SimpleExtensionDeclaration `protobuf:"bytes,2,rep,name=extensions" json:"extensions,omitempty"`
	Relations     []*PlanRel                    `protobuf:"bytes,3,rep,name=relations" json:"relations,omitempty"`
}

func (m *Plan) Reset()         { *m = Plan{} }
func (m *Plan) String() string { return proto.CompactTextString(m) }
func (*Plan) ProtoMessage()    {}

// PlanRel is either a bare relation tree or a root carrying output
// names.
type PlanRel struct {
	Rel  *Rel     `protobuf:"bytes,1,opt,name=rel" json:"rel,omitempty"`
	Root *RelRoot `protobuf:"bytes,2,opt,name=root" json:"root,omitempty"`
}

func (m *PlanRel) Reset()         { *m = PlanRel{} }
func (m *PlanRel) String() string { return proto.CompactTextString(m) }
func (*PlanRel) ProtoMessage()    {}

// RelRoot names the columns the plan produces.
type RelRoot struct {
	Input *Rel     `protobuf:"bytes,1,opt,name=input" json:"input,omitempty"`
	Names []string `protobuf:"bytes,2,rep,name=names" json:"names,omitempty"`
}

func (m *RelRoot) Reset()         { *m = RelRoot{} }
func (m *RelRoot) String() string { return proto.CompactTextString(m) }
func (*RelRoot) ProtoMessage()    {}

// SimpleExtensionURI registers one extension file under an anchor.
type SimpleExtensionURI struct {
	ExtensionUriAnchor uint32 `protobuf:"varint,1,opt,name=extension_uri_anchor,json=extensionUriAnchor,proto3" json:"extension_uri_anchor,omitempty"`
	Uri                string `protobuf:"bytes,2,opt,name=uri,proto3" json:"uri,omitempty"`
}

func (m *SimpleExtensionURI) Reset()         { *m = SimpleExtensionURI{} }
func (m *SimpleExtensionURI) String() string { return proto.CompactTextString(m) }
func (*SimpleExtensionURI) ProtoMessage()    {}

// SimpleExtensionDeclaration registers one function or type from an
// extension file.
type SimpleExtensionDeclaration struct {
	ExtensionType     *SimpleExtensionDeclaration_ExtensionType     `protobuf:"bytes,1,opt,name=extension_type,json=extensionType" json:"extension_type,omitempty"`
	ExtensionFunction *SimpleExtensionDeclaration_ExtensionFunction `protobuf:"bytes,3,opt,name=extension_function,json=extensionFunction" json:"extension_function,omitempty"`
}

func (m *SimpleExtensionDeclaration) Reset()         { *m = SimpleExtensionDeclaration{} }
func (m *SimpleExtensionDeclaration) String() string { return proto.CompactTextString(m) }
func (*SimpleExtensionDeclaration) ProtoMessage()    {}

type SimpleExtensionDeclaration_ExtensionType struct {
	ExtensionUriReference uint32 `protobuf:"varint,1,opt,name=extension_uri_reference,json=extensionUriReference,proto3" json:"extension_uri_reference,omitempty"`
	TypeAnchor            uint32 `protobuf:"varint,2,opt,name=type_anchor,json=typeAnchor,proto3" json:"type_anchor,omitempty"`
	Name                  string `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *SimpleExtensionDeclaration_ExtensionType) Reset() {
	*m = SimpleExtensionDeclaration_ExtensionType{}
}
func (m *SimpleExtensionDeclaration_ExtensionType) String() string {
	return proto.CompactTextString(m)
}
func (*SimpleExtensionDeclaration_ExtensionType) ProtoMessage() {}

type SimpleExtensionDeclaration_ExtensionFunction struct {
	ExtensionUriReference uint32 `protobuf:"varint,1,opt,name=extension_uri_reference,json=extensionUriReference,proto3" json:"extension_uri_reference,omitempty"`
	FunctionAnchor        uint32 `protobuf:"varint,2,opt,name=function_anchor,json=functionAnchor,proto3" json:"function_anchor,omitempty"`
	Name                  string `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *SimpleExtensionDeclaration_ExtensionFunction) Reset() {
	*m = SimpleExtensionDeclaration_ExtensionFunction{}
}
func (m *SimpleExtensionDeclaration_ExtensionFunction) String() string {
	return proto.CompactTextString(m)
}
func (*SimpleExtensionDeclaration_ExtensionFunction) ProtoMessage() {}
