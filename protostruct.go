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
	"google.golang.org/protobuf/types/known/structpb"
)

// ToProtoStruct converts a Serializable into a protobuf Struct, so slate
// values can ride transports and storage that speak
// google.protobuf.Struct. Every value a serializer emits is representable:
// timestamps and byte strings are already strings by the time they reach the
// field map.
func ToProtoStruct(value Serializable) (*structpb.Struct, error) {
	fields, err := value.MarshalFieldMap()
	if err != nil {
		return nil, err
	}
	message, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errorf(CodeTypeMismatch, "field map not representable as google.protobuf.Struct: %v", err)
	}
	return message, nil
}

// FromProtoStruct populates a Serializable from a protobuf Struct. Struct
// numbers arrive as float64, which the numeric serializers coerce back to
// their declared kinds.
func FromProtoStruct(message *structpb.Struct, value Serializable) error {
	if message == nil {
		return errorf(CodeTypeMismatch, "expected object, got null")
	}
	return value.UnmarshalFieldMap(message.AsMap())
}
