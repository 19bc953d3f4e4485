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
	"fmt"
)

const (
	// Ok is not an error.
	Ok uint16 = 0

	// Group 1: internal errors
	ErrStart        uint16 = 20100
	ErrInternal     uint16 = 20101
	ErrNYI          uint16 = 20102
	ErrNotSupported uint16 = 20105

	// Group 2: invalid input
	ErrBadConfig    uint16 = 20300
	ErrInvalidInput uint16 = 20301
	ErrInvalidArg   uint16 = 20303

	// Group 3: unexpected state
	ErrInvalidState uint16 = 20400

	// ErrEnd, the max value of the error code
	ErrEnd uint16 = 65535
)

var errorMsgRefer = map[uint16]string{
	ErrStart:        "internal error: error code start",
	ErrInternal:     "internal error: %s",
	ErrNYI:          "%s is not yet implemented",
	ErrNotSupported: "not supported: %s",
	ErrBadConfig:    "invalid configuration: %s",
	ErrInvalidInput: "invalid input: %s",
	ErrInvalidArg:   "invalid argument %s, bad value %s",
	ErrInvalidState: "invalid state %s",
	ErrEnd:          "internal error: end of errcode code",
}

// Error is a coded error. The code distinguishes error classes
// (unsupported construct, structural violation, ...) without the caller
// having to parse messages.
type Error struct {
	code    uint16
	message string
}

func newError(_ context.Context, code uint16, args ...any) *Error {
	format, has := errorMsgRefer[code]
	if !has {
		panic(fmt.Sprintf("not exist error code: %d", code))
	}
	if len(args) == 0 {
		return &Error{code: code, message: format}
	}
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

// IsMoErrCode reports whether err is a moerr with the given code.
func IsMoErrCode(e error, rc uint16) bool {
	if e == nil {
		return rc == Ok
	}
	me, ok := e.(*Error)
	if !ok {
		return false
	}
	return me.code == rc
}

func NewInternalError(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrInternal, fmt.Sprintf(msg, args...))
}

func NewNYI(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrNYI, fmt.Sprintf(msg, args...))
}

func NewNotSupported(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrNotSupported, fmt.Sprintf(msg, args...))
}

func NewBadConfig(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrBadConfig, fmt.Sprintf(msg, args...))
}

func NewInvalidInput(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrInvalidInput, fmt.Sprintf(msg, args...))
}

func NewInvalidArg(ctx context.Context, arg string, val any) *Error {
	return newError(ctx, ErrInvalidArg, arg, fmt.Sprintf("%v", val))
}

func NewInvalidState(ctx context.Context, msg string, args ...any) *Error {
	return newError(ctx, ErrInvalidState, fmt.Sprintf(msg, args...))
}
