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
	"encoding/base64"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Serializable is the capability every generated model type implements: it
// converts itself to and from a generic string-keyed field map. Codecs,
// clients, and the struct serializer all work through this interface rather
// than through concrete generated types.
//
// UnmarshalFieldMap uses a pointer receiver in generated code so it can
// populate the value in place.
type Serializable interface {
	MarshalFieldMap() (map[string]any, error)
	UnmarshalFieldMap(fields map[string]any) error
}

// A Serializer converts values of a single type to and from their wire
// representation. The wire representation is always one of the types a field
// map may hold: nil, bool, string, a number, []any, or map[string]any.
//
// Deserialize is deliberately liberal about numeric wire types. Codecs
// disagree about what they decode numbers to - encoding/json produces
// json.Number or float64, MessagePack produces sized integers, protobuf's
// Struct produces float64 - so the numeric serializers coerce from all of
// them and fail only on genuine mismatches or overflow.
type Serializer[T any] interface {
	Serialize(value T) (any, error)
	Deserialize(wire any) (T, error)
}

// StringSerializer serializes strings, which pass through unchanged.
type StringSerializer struct{}

func (StringSerializer) Serialize(value string) (any, error) { return value, nil }

func (StringSerializer) Deserialize(wire any) (string, error) {
	value, ok := wire.(string)
	if !ok {
		return "", errWireType("string", wire)
	}
	return value, nil
}

// BoolSerializer serializes booleans, which pass through unchanged.
type BoolSerializer struct{}

func (BoolSerializer) Serialize(value bool) (any, error) { return value, nil }

func (BoolSerializer) Deserialize(wire any) (bool, error) {
	value, ok := wire.(bool)
	if !ok {
		return false, errWireType("bool", wire)
	}
	return value, nil
}

// Int32Serializer serializes 32-bit signed integers.
type Int32Serializer struct{}

func (Int32Serializer) Serialize(value int32) (any, error) { return int64(value), nil }

func (Int32Serializer) Deserialize(wire any) (int32, error) {
	value, err := coerceInt64(wire)
	if err != nil {
		return 0, err
	}
	if value < math.MinInt32 || value > math.MaxInt32 {
		return 0, errorf(CodeValueOutOfRange, "%d overflows int32", value)
	}
	return int32(value), nil
}

// Int64Serializer serializes 64-bit signed integers.
type Int64Serializer struct{}

func (Int64Serializer) Serialize(value int64) (any, error) { return value, nil }

func (Int64Serializer) Deserialize(wire any) (int64, error) {
	return coerceInt64(wire)
}

// Uint32Serializer serializes 32-bit unsigned integers.
type Uint32Serializer struct{}

func (Uint32Serializer) Serialize(value uint32) (any, error) { return uint64(value), nil }

func (Uint32Serializer) Deserialize(wire any) (uint32, error) {
	value, err := coerceUint64(wire)
	if err != nil {
		return 0, err
	}
	if value > math.MaxUint32 {
		return 0, errorf(CodeValueOutOfRange, "%d overflows uint32", value)
	}
	return uint32(value), nil
}

// Uint64Serializer serializes 64-bit unsigned integers.
type Uint64Serializer struct{}

func (Uint64Serializer) Serialize(value uint64) (any, error) { return value, nil }

func (Uint64Serializer) Deserialize(wire any) (uint64, error) {
	return coerceUint64(wire)
}

// Float32Serializer serializes 32-bit floats.
type Float32Serializer struct{}

func (Float32Serializer) Serialize(value float32) (any, error) { return float64(value), nil }

func (Float32Serializer) Deserialize(wire any) (float32, error) {
	value, err := coerceFloat64(wire)
	if err != nil {
		return 0, err
	}
	if !math.IsInf(value, 0) && math.Abs(value) > math.MaxFloat32 {
		return 0, errorf(CodeValueOutOfRange, "%g overflows float32", value)
	}
	return float32(value), nil
}

// Float64Serializer serializes 64-bit floats.
type Float64Serializer struct{}

func (Float64Serializer) Serialize(value float64) (any, error) { return value, nil }

func (Float64Serializer) Deserialize(wire any) (float64, error) {
	return coerceFloat64(wire)
}

// BytesSerializer serializes byte strings as standard base64.
type BytesSerializer struct{}

func (BytesSerializer) Serialize(value []byte) (any, error) {
	return base64.StdEncoding.EncodeToString(value), nil
}

func (BytesSerializer) Deserialize(wire any) ([]byte, error) {
	switch value := wire.(type) {
	case string:
		decoded, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return nil, errorf(CodeTypeMismatch, "invalid base64: %v", err)
		}
		return decoded, nil
	case []byte:
		// Binary codecs round-trip byte strings without the base64 detour.
		return value, nil
	}
	return nil, errWireType("base64 string", wire)
}

// DefaultTimestampLayout is the layout generated code uses for timestamp
// fields unless the IDL declares another format.
const DefaultTimestampLayout = "Mon, 02 Jan 2006 15:04:05 +0000"

// TimestampSerializer serializes instants as strings in a caller-supplied
// layout. Layouts use the reference-time convention of the time package.
type TimestampSerializer struct {
	Layout string
}

// NewTimestampSerializer returns a TimestampSerializer for the given layout,
// falling back to DefaultTimestampLayout when layout is empty.
func NewTimestampSerializer(layout string) TimestampSerializer {
	if layout == "" {
		layout = DefaultTimestampLayout
	}
	return TimestampSerializer{Layout: layout}
}

func (s TimestampSerializer) Serialize(value time.Time) (any, error) {
	return value.UTC().Format(s.layout()), nil
}

func (s TimestampSerializer) Deserialize(wire any) (time.Time, error) {
	switch value := wire.(type) {
	case string:
		parsed, err := time.Parse(s.layout(), value)
		if err != nil {
			return time.Time{}, errorf(CodeTypeMismatch, "malformed timestamp %q: expected layout %q", value, s.layout())
		}
		return parsed, nil
	case time.Time:
		// yaml.v3 eagerly parses timestamp-shaped scalars.
		return value, nil
	}
	return time.Time{}, errWireType("timestamp string", wire)
}

func (s TimestampSerializer) layout() string {
	if s.Layout == "" {
		return DefaultTimestampLayout
	}
	return s.Layout
}

func errWireType(want string, wire any) *Error {
	if wire == nil {
		return errorf(CodeTypeMismatch, "expected %s, got null", want)
	}
	return errorf(CodeTypeMismatch, "expected %s, got %T", want, wire)
}

func coerceInt64(wire any) (int64, error) {
	switch value := wire.(type) {
	case int64:
		return value, nil
	case int:
		return int64(value), nil
	case int32:
		return int64(value), nil
	case int16:
		return int64(value), nil
	case int8:
		return int64(value), nil
	case uint64:
		if value > math.MaxInt64 {
			return 0, errorf(CodeValueOutOfRange, "%d overflows int64", value)
		}
		return int64(value), nil
	case uint:
		if uint64(value) > math.MaxInt64 {
			return 0, errorf(CodeValueOutOfRange, "%d overflows int64", value)
		}
		return int64(value), nil
	case uint32:
		return int64(value), nil
	case uint16:
		return int64(value), nil
	case uint8:
		return int64(value), nil
	case float64:
		if math.Trunc(value) != value {
			return 0, errorf(CodeTypeMismatch, "expected integer, got %v", value)
		}
		if value < math.MinInt64 || value >= math.MaxInt64 {
			return 0, errorf(CodeValueOutOfRange, "%g overflows int64", value)
		}
		return int64(value), nil
	case float32:
		return coerceInt64(float64(value))
	case json.Number:
		parsed, err := value.Int64()
		if err != nil {
			return 0, errorf(CodeTypeMismatch, "expected integer, got %q", value.String())
		}
		return parsed, nil
	}
	return 0, errWireType("integer", wire)
}

func coerceUint64(wire any) (uint64, error) {
	switch value := wire.(type) {
	case uint64:
		return value, nil
	case uint:
		return uint64(value), nil
	case uint32:
		return uint64(value), nil
	case uint16:
		return uint64(value), nil
	case uint8:
		return uint64(value), nil
	case float64:
		if math.Trunc(value) != value {
			return 0, errorf(CodeTypeMismatch, "expected integer, got %v", value)
		}
		if value < 0 {
			return 0, errorf(CodeValueOutOfRange, "%g underflows uint64", value)
		}
		if value >= math.MaxUint64 {
			return 0, errorf(CodeValueOutOfRange, "%g overflows uint64", value)
		}
		return uint64(value), nil
	case float32:
		return coerceUint64(float64(value))
	case json.Number:
		// json.Number has no unsigned accessor.
		parsed, err := strconv.ParseUint(value.String(), 10, 64)
		if err != nil {
			return 0, errorf(CodeTypeMismatch, "expected unsigned integer, got %q", value.String())
		}
		return parsed, nil
	}
	signed, err := coerceInt64(wire)
	if err != nil {
		return 0, err
	}
	if signed < 0 {
		return 0, errorf(CodeValueOutOfRange, "%d underflows uint64", signed)
	}
	return uint64(signed), nil
}

func coerceFloat64(wire any) (float64, error) {
	switch value := wire.(type) {
	case float64:
		return value, nil
	case float32:
		return float64(value), nil
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0, errorf(CodeTypeMismatch, "expected number, got %q", value.String())
		}
		return parsed, nil
	case int64:
		return float64(value), nil
	case int:
		return float64(value), nil
	case int32:
		return float64(value), nil
	case int16:
		return float64(value), nil
	case int8:
		return float64(value), nil
	case uint64:
		return float64(value), nil
	case uint:
		return float64(value), nil
	case uint32:
		return float64(value), nil
	case uint16:
		return float64(value), nil
	case uint8:
		return float64(value), nil
	}
	return 0, errWireType("number", wire)
}
