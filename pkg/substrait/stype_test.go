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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeType(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		raw      string
		name     string
		sig      string
		params   []string
		wildcard bool
	}{
		{raw: "i32", name: "i32", sig: "i32"},
		{raw: "BOOLEAN", name: "boolean", sig: "bool"},
		{raw: "string?", name: "string", sig: "str"},
		{raw: "fp64", name: "fp64", sig: "fp64"},
		{raw: "DECIMAL<38,2>", name: "decimal", sig: "dec", params: []string{"38", "2"}},
		{raw: "varchar<10>", name: "varchar", sig: "vchar", params: []string{"10"}},
		{raw: "fixedchar<4>", name: "fixedchar", sig: "fchar", params: []string{"4"}},
		{raw: "fixedbinary<8>", name: "fixedbinary", sig: "fbin", params: []string{"8"}},
		{raw: "list<i64>", name: "list", sig: "list", params: []string{"i64"}},
		{raw: "struct<fp64,i64>", name: "struct", sig: "struct", params: []string{"fp64", "i64"}},
		{raw: "any1", name: "any1", sig: "any1", wildcard: true},
		{raw: "any1?", name: "any1", sig: "any1", wildcard: true},
		{raw: "T", name: "T", sig: "T", wildcard: true},
		{raw: "unknown", name: "unknown", sig: "u!unknown"},
	}
	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			st, err := DecodeType(ctx, c.raw)
			require.NoError(t, err)
			require.Equal(t, c.name, st.Name)
			require.Equal(t, c.sig, st.Signature())
			require.Equal(t, c.params, st.Params)
			require.Equal(t, c.wildcard, st.IsWildcard())
		})
	}
}

func TestDecodeTypeErrors(t *testing.T) {
	ctx := context.Background()
	_, err := DecodeType(ctx, "")
	require.Error(t, err)
	_, err = DecodeType(ctx, "list<i32")
	require.Error(t, err)
}

func TestSTypeSameAs(t *testing.T) {
	ctx := context.Background()
	a, err := DecodeType(ctx, "decimal<38,2>")
	require.NoError(t, err)
	b, err := DecodeType(ctx, "decimal<10,0>")
	require.NoError(t, err)
	c, err := DecodeType(ctx, "i32")
	require.NoError(t, err)
	require.True(t, a.SameAs(b))
	require.False(t, a.SameAs(c))
}
