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
	"fmt"
	"strconv"
)

// A Code classifies a slate error. The validation codes correspond to the
// constraint kinds the IDL can express; the remaining codes cover
// serialization and transport failures.
type Code uint32

const (
	// CodeCanceled indicates that the operation was canceled, typically by
	// the caller.
	CodeCanceled Code = 1

	// CodeUnknown indicates that the operation failed for an unknown reason.
	CodeUnknown Code = 2

	// CodeTypeMismatch indicates that a wire value had a different type than
	// the serializer expected.
	CodeTypeMismatch Code = 3

	// CodeValueOutOfRange indicates that a numeric value violated its
	// minimum or maximum bound, or overflowed the target type during
	// deserialization.
	CodeValueOutOfRange Code = 4

	// CodeLengthOutOfBounds indicates that a string or byte value violated
	// its length constraints.
	CodeLengthOutOfBounds Code = 5

	// CodePatternMismatch indicates that a string value didn't match its
	// declared pattern.
	CodePatternMismatch Code = 6

	// CodeCardinalityViolation indicates that a list had too few or too many
	// items.
	CodeCardinalityViolation Code = 7

	// CodeMissingField indicates that a required key was absent from a field
	// map.
	CodeMissingField Code = 8

	// CodeInvalidTag indicates that a union's tag named an unknown variant.
	CodeInvalidTag Code = 9

	// CodeDeadlineExceeded indicates that the operation didn't complete
	// before its deadline.
	CodeDeadlineExceeded Code = 10

	// CodeUnavailable indicates that the remote host couldn't be reached.
	CodeUnavailable Code = 11

	// CodeAPIError indicates that the remote host rejected a route call with
	// the route's declared error type.
	CodeAPIError Code = 12

	minCode = CodeCanceled
	maxCode = CodeAPIError
)

func (c Code) String() string {
	switch c {
	case CodeCanceled:
		return "canceled"
	case CodeUnknown:
		return "unknown"
	case CodeTypeMismatch:
		return "type_mismatch"
	case CodeValueOutOfRange:
		return "value_out_of_range"
	case CodeLengthOutOfBounds:
		return "length_out_of_bounds"
	case CodePatternMismatch:
		return "pattern_mismatch"
	case CodeCardinalityViolation:
		return "cardinality_violation"
	case CodeMissingField:
		return "missing_field"
	case CodeInvalidTag:
		return "invalid_tag"
	case CodeDeadlineExceeded:
		return "deadline_exceeded"
	case CodeUnavailable:
		return "unavailable"
	case CodeAPIError:
		return "api_error"
	}
	return fmt.Sprintf("code_%d", uint32(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) {
	if c < minCode || c > maxCode {
		return nil, fmt.Errorf("invalid code %d", uint32(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts either the
// string produced by MarshalText or the code's decimal value.
func (c *Code) UnmarshalText(data []byte) error {
	dataStr := string(data)
	for candidate := minCode; candidate <= maxCode; candidate++ {
		if candidate.String() == dataStr {
			*c = candidate
			return nil
		}
	}
	if number, err := strconv.ParseUint(dataStr, 10, 32); err == nil {
		code := Code(number)
		if code >= minCode && code <= maxCode {
			*c = code
			return nil
		}
	}
	return fmt.Errorf("invalid code %q", dataStr)
}
