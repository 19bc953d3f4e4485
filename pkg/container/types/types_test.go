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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	require.Equal(t, "INT", New(T_int32).String())
	require.Equal(t, "DOUBLE", New(T_float64).String())
	require.Equal(t, "DECIMAL64(10,2)", NewDecimal(T_decimal64, 10, 2).String())
	require.Equal(t, "UNKNOWN(200)", T(200).String())
}

func TestTypeEq(t *testing.T) {
	require.True(t, New(T_int32).Eq(T_int32.ToType()))
	require.False(t, New(T_int32).Eq(New(T_int64)))
	require.False(t, NewDecimal(T_decimal64, 10, 2).Eq(NewDecimal(T_decimal64, 10, 3)))
	require.True(t, NewDecimal(T_decimal128, 20, 2).IsDecimal())
	require.False(t, New(T_varchar).IsDecimal())
}

func TestRowType(t *testing.T) {
	rt, err := NewRowType(
		[]string{"a", "b", "c"},
		[]Type{New(T_int32), New(T_varchar), New(T_float64)},
	)
	require.NoError(t, err)
	require.Equal(t, 3, rt.Size())
	require.Equal(t, "b", rt.Name(1))
	require.Equal(t, T_float64, rt.TypeAt(2).Oid)
	require.Equal(t, 0, rt.IndexOf("a"))
	require.Equal(t, -1, rt.IndexOf("missing"))
	require.Equal(t, "ROW(a INT, b VARCHAR, c DOUBLE)", rt.String())
}

func TestRowTypeMismatch(t *testing.T) {
	_, err := NewRowType([]string{"a"}, nil)
	require.Error(t, err)
	require.Panics(t, func() {
		MustRowType([]string{"a", "b"}, []Type{New(T_int32)})
	})
}

func TestRowTypeUnion(t *testing.T) {
	left := MustRowType([]string{"a", "b"}, []Type{New(T_int32), New(T_int64)})
	right := MustRowType([]string{"c"}, []Type{New(T_varchar)})
	u := left.Union(right)
	require.Equal(t, []string{"a", "b", "c"}, u.Names())
	require.Equal(t, T_varchar, u.TypeAt(2).Oid)
	// The operands are untouched.
	require.Equal(t, 2, left.Size())
	require.Equal(t, 1, right.Size())
}
