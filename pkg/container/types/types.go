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

package types

import "fmt"

// T is the type id of the engine type system.
type T uint8

const (
	// T_any means an unknown or not yet resolved type.
	// It can meet each required type during function resolution.
	T_any T = iota

	T_bool
	T_int8
	T_int16
	T_int32
	T_int64
	T_float32
	T_float64

	T_varchar
	T_binary

	T_date
	T_timestamp

	T_decimal64
	T_decimal128
)

// Date is days since the unix epoch.
type Date int32

// Timestamp is microseconds since the unix epoch.
type Timestamp int64

var typeNames = map[T]string{
	T_any:        "ANY",
	T_bool:       "BOOL",
	T_int8:       "TINYINT",
	T_int16:      "SMALLINT",
	T_int32:      "INT",
	T_int64:      "BIGINT",
	T_float32:    "FLOAT",
	T_float64:    "DOUBLE",
	T_varchar:    "VARCHAR",
	T_binary:     "VARBINARY",
	T_date:       "DATE",
	T_timestamp:  "TIMESTAMP",
	T_decimal64:  "DECIMAL64",
	T_decimal128: "DECIMAL128",
}

func (t T) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", t)
}

// ToType returns a Type with default width and scale.
func (t T) ToType() Type {
	return Type{Oid: t}
}

// Type describes one engine value type. Width and Scale are only
// meaningful for the decimal types.
type Type struct {
	Oid   T
	Width int32
	Scale int32
}

func New(oid T) Type {
	return Type{Oid: oid}
}

func NewDecimal(oid T, width, scale int32) Type {
	return Type{Oid: oid, Width: width, Scale: scale}
}

func (t Type) String() string {
	if t.Oid == T_decimal64 || t.Oid == T_decimal128 {
		return fmt.Sprintf("%s(%d,%d)", t.Oid, t.Width, t.Scale)
	}
	return t.Oid.String()
}

// Eq reports whether two types are exactly the same.
func (t Type) Eq(other Type) bool {
	return t.Oid == other.Oid && t.Width == other.Width && t.Scale == other.Scale
}

func (t Type) IsDecimal() bool {
	return t.Oid == T_decimal64 || t.Oid == T_decimal128
}
