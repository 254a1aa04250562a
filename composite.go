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

// ListSerializer serializes slices element-wise through an element
// serializer. Errors are annotated with the offending index.
type ListSerializer[T any] struct {
	Elem Serializer[T]
}

// NewListSerializer returns a ListSerializer over the given element
// serializer.
func NewListSerializer[T any](elem Serializer[T]) ListSerializer[T] {
	return ListSerializer[T]{Elem: elem}
}

func (s ListSerializer[T]) Serialize(values []T) (any, error) {
	wire := make([]any, len(values))
	for i, value := range values {
		item, err := s.Elem.Serialize(value)
		if err != nil {
			return nil, WithIndex(i, err)
		}
		wire[i] = item
	}
	return wire, nil
}

func (s ListSerializer[T]) Deserialize(wire any) ([]T, error) {
	items, ok := wire.([]any)
	if !ok {
		return nil, errWireType("list", wire)
	}
	values := make([]T, len(items))
	for i, item := range items {
		value, err := s.Elem.Deserialize(item)
		if err != nil {
			return nil, WithIndex(i, err)
		}
		values[i] = value
	}
	return values, nil
}

// MapSerializer serializes string-keyed maps through a value serializer.
// Errors are annotated with the offending key.
type MapSerializer[T any] struct {
	Value Serializer[T]
}

// NewMapSerializer returns a MapSerializer over the given value serializer.
func NewMapSerializer[T any](value Serializer[T]) MapSerializer[T] {
	return MapSerializer[T]{Value: value}
}

func (s MapSerializer[T]) Serialize(values map[string]T) (any, error) {
	wire := make(map[string]any, len(values))
	for key, value := range values {
		item, err := s.Value.Serialize(value)
		if err != nil {
			return nil, WithField(key, err)
		}
		wire[key] = item
	}
	return wire, nil
}

func (s MapSerializer[T]) Deserialize(wire any) (map[string]T, error) {
	items, ok := wire.(map[string]any)
	if !ok {
		return nil, errWireType("map", wire)
	}
	values := make(map[string]T, len(items))
	for key, item := range items {
		value, err := s.Value.Deserialize(item)
		if err != nil {
			return nil, WithField(key, err)
		}
		values[key] = value
	}
	return values, nil
}

// NullableSerializer wraps another serializer so that nil pointers map to
// null wire values and back.
type NullableSerializer[T any] struct {
	Inner Serializer[T]
}

// NewNullableSerializer returns a NullableSerializer over the given
// serializer.
func NewNullableSerializer[T any](inner Serializer[T]) NullableSerializer[T] {
	return NullableSerializer[T]{Inner: inner}
}

func (s NullableSerializer[T]) Serialize(value *T) (any, error) {
	if value == nil {
		return nil, nil
	}
	return s.Inner.Serialize(*value)
}

func (s NullableSerializer[T]) Deserialize(wire any) (*T, error) {
	if wire == nil {
		return nil, nil
	}
	value, err := s.Inner.Deserialize(wire)
	if err != nil {
		return nil, err
	}
	return &value, nil
}

// StructSerializer bridges a generated model type through the Serializer
// interface, so struct-typed fields compose with the list, map, and nullable
// serializers. The second type parameter ties the Serializable implementation
// to its pointer type; generated code instantiates it as
// StructSerializer[Model, *Model]{}.
type StructSerializer[T any, P interface {
	*T
	Serializable
}] struct{}

func (StructSerializer[T, P]) Serialize(value P) (any, error) {
	if value == nil {
		return nil, errorf(CodeTypeMismatch, "cannot serialize nil %T", value)
	}
	return value.MarshalFieldMap()
}

func (StructSerializer[T, P]) Deserialize(wire any) (P, error) {
	fields, ok := wire.(map[string]any)
	if !ok {
		return nil, errWireType("object", wire)
	}
	value := P(new(T))
	if err := value.UnmarshalFieldMap(fields); err != nil {
		return nil, err
	}
	return value, nil
}
