// Copyright 2023-2026 The Slate Authors
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

package slate

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// An Error captures a Code, an underlying Go error, and the path of the field
// the error occurred at. Serializers and validators annotate errors with
// field names and indexes as they propagate outward, so a deeply nested
// violation reports something like "entries[3].owner.email" rather than just
// the innermost message.
//
// Code that works with slate values should return errors that can be cast to
// an *Error using the standard library's errors.As.
type Error struct {
	code   Code
	err    error
	path   []string
	detail Serializable
}

// NewError annotates any Go error with a status code.
func NewError(c Code, underlying error) *Error {
	return &Error{code: c, err: underlying}
}

func (e *Error) Error() string {
	text := e.err.Error()
	if text == "" {
		text = e.code.String()
	} else {
		text = e.code.String() + ": " + text
	}
	if field := e.Field(); field != "" {
		return field + ": " + text
	}
	return text
}

// Unwrap implements errors.Wrapper, which allows errors.Is and errors.As
// access to the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// Code returns the error's status code.
func (e *Error) Code() Code {
	return e.code
}

// Field returns the dotted path of the field the error occurred at, or the
// empty string if the error isn't tied to a particular field.
func (e *Error) Field() string {
	var builder strings.Builder
	for i, segment := range e.path {
		if i > 0 && !strings.HasPrefix(segment, "[") {
			builder.WriteByte('.')
		}
		builder.WriteString(segment)
	}
	return builder.String()
}

// Detail returns the route error value attached to the error, if any. It's
// non-nil only for CodeAPIError errors produced by a Client calling a route
// with a declared error type.
func (e *Error) Detail() Serializable {
	return e.detail
}

// SetDetail attaches a route error value to the error.
func (e *Error) SetDetail(detail Serializable) {
	e.detail = detail
}

// WithField prefixes the error's field path with the name of the field being
// processed. Generated marshal and unmarshal code calls it once per field;
// the composite serializers and validators call it for indexes and map keys.
// A nil error stays nil, and errors without a code are wrapped with
// CodeUnknown first.
func WithField(field string, err error) error {
	if err == nil {
		return nil
	}
	serr, ok := asError(err)
	if !ok {
		serr = NewError(CodeUnknown, err)
	}
	serr.path = append([]string{field}, serr.path...)
	return serr
}

// WithIndex is WithField for list positions.
func WithIndex(index int, err error) error {
	return WithField("["+strconv.Itoa(index)+"]", err)
}

// CodeOf returns the error's status code if it is or wraps a *slate.Error,
// and CodeUnknown otherwise.
func CodeOf(err error) Code {
	if serr, ok := asError(err); ok {
		return serr.Code()
	}
	return CodeUnknown
}

// errorf calls fmt.Errorf with the supplied template and arguments, then
// wraps the resulting error.
func errorf(c Code, template string, args ...any) *Error {
	return NewError(c, fmt.Errorf(template, args...))
}

// asError uses errors.As to unwrap any error and look for a slate *Error.
func asError(err error) (*Error, bool) {
	var serr *Error
	ok := errors.As(err, &serr)
	return serr, ok
}

// wrapIfContextError applies CodeCanceled or CodeDeadlineExceeded to Go's
// context.Canceled and context.DeadlineExceeded errors, but only if they
// haven't already been wrapped.
func wrapIfContextError(err error) error {
	if _, ok := asError(err); ok {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return NewError(CodeCanceled, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewError(CodeDeadlineExceeded, err)
	}
	return err
}
