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

package moerr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		err  *Error
		code uint16
		msg  string
	}{
		{"internal", NewInternalError(ctx, "boom %d", 7), ErrInternal, "internal error: boom 7"},
		{"nyi", NewNYI(ctx, "window functions"), ErrNYI, "window functions is not yet implemented"},
		{"not supported", NewNotSupported(ctx, "outer join"), ErrNotSupported, "not supported: outer join"},
		{"bad config", NewBadConfig(ctx, "no such file"), ErrBadConfig, "invalid configuration: no such file"},
		{"invalid input", NewInvalidInput(ctx, "negative count"), ErrInvalidInput, "invalid input: negative count"},
		{"invalid arg", NewInvalidArg(ctx, "level", "loud"), ErrInvalidArg, "invalid argument level, bad value loud"},
		{"invalid state", NewInvalidState(ctx, "closed"), ErrInvalidState, "invalid state closed"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.code, c.err.ErrorCode())
			require.Equal(t, c.msg, c.err.Error())
			require.True(t, IsMoErrCode(c.err, c.code))
			require.False(t, IsMoErrCode(c.err, Ok))
		})
	}
}

func TestIsMoErrCode(t *testing.T) {
	require.True(t, IsMoErrCode(nil, Ok))
	require.False(t, IsMoErrCode(nil, ErrInternal))
	require.False(t, IsMoErrCode(errors.New("plain"), ErrInternal))
}

func TestUnknownCodePanics(t *testing.T) {
	require.Panics(t, func() {
		newError(context.Background(), 12345)
	})
}
