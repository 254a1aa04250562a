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
	"testing"

	"slateidl.com/slate/internal/assert"
)

func TestListSerializer(t *testing.T) {
	t.Parallel()
	serializer := NewListSerializer[int64](Int64Serializer{})

	wire, err := serializer.Serialize([]int64{1, 2, 3})
	assert.Nil(t, err)
	assert.Equal(t, wire.([]any), []any{int64(1), int64(2), int64(3)})

	got, err := serializer.Deserialize([]any{int64(1), int64(2), int64(3)})
	assert.Nil(t, err)
	assert.Equal(t, got, []int64{1, 2, 3})

	_, err = serializer.Deserialize("nope")
	assert.Equal(t, CodeOf(err), CodeTypeMismatch)

	_, err = serializer.Deserialize([]any{int64(1), "two"})
	assert.Equal(t, CodeOf(err), CodeTypeMismatch)
	serr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, serr.Field(), "[1]")
}

func TestListSerializerEmpty(t *testing.T) {
	t.Parallel()
	serializer := NewListSerializer[int64](Int64Serializer{})

	// Nil and empty slices both serialize to an empty wire list, and an
	// empty wire list deserializes to an empty, non-nil slice.
	for _, values := range [][]int64{nil, {}} {
		wire, err := serializer.Serialize(values)
		assert.Nil(t, err)
		assert.NotNil(t, wire.([]any))
		assert.Equal(t, len(wire.([]any)), 0)
	}

	got, err := serializer.Deserialize([]any{})
	assert.Nil(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, len(got), 0)
}

func TestMapSerializer(t *testing.T) {
	t.Parallel()
	serializer := NewMapSerializer[string](StringSerializer{})

	wire, err := serializer.Serialize(map[string]string{"region": "eu"})
	assert.Nil(t, err)
	assert.Equal(t, wire.(map[string]any), map[string]any{"region": "eu"})

	got, err := serializer.Deserialize(map[string]any{"region": "eu"})
	assert.Nil(t, err)
	assert.Equal(t, got, map[string]string{"region": "eu"})

	_, err = serializer.Deserialize(map[string]any{"region": 7})
	assert.Equal(t, CodeOf(err), CodeTypeMismatch)
	serr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, serr.Field(), "region")
}

func TestNullableSerializer(t *testing.T) {
	t.Parallel()
	serializer := NewNullableSerializer[int64](Int64Serializer{})

	wire, err := serializer.Serialize(nil)
	assert.Nil(t, err)
	assert.Nil(t, wire)

	got, err := serializer.Deserialize(nil)
	assert.Nil(t, err)
	assert.Nil(t, got)

	value := int64(9)
	wire, err = serializer.Serialize(&value)
	assert.Nil(t, err)
	assert.Equal(t, wire.(int64), int64(9))

	got, err = serializer.Deserialize(int64(9))
	assert.Nil(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, *got, int64(9))
}

func TestStructSerializer(t *testing.T) {
	t.Parallel()
	serializer := StructSerializer[testQuotaError, *testQuotaError]{}

	wire, err := serializer.Serialize(&testQuotaError{Reason: "over quota"})
	assert.Nil(t, err)

	got, err := serializer.Deserialize(wire)
	assert.Nil(t, err)
	assert.Equal(t, got, &testQuotaError{Reason: "over quota"})

	_, err = serializer.Deserialize("nope")
	assert.Equal(t, CodeOf(err), CodeTypeMismatch)

	_, err = serializer.Serialize(nil)
	assert.Equal(t, CodeOf(err), CodeTypeMismatch)
}

func TestStructSerializerComposes(t *testing.T) {
	t.Parallel()
	serializer := NewListSerializer[*testQuotaError](StructSerializer[testQuotaError, *testQuotaError]{})
	wire, err := serializer.Serialize([]*testQuotaError{{Reason: "a"}, {Reason: "b"}})
	assert.Nil(t, err)
	got, err := serializer.Deserialize(wire)
	assert.Nil(t, err)
	assert.Equal(t, got, []*testQuotaError{{Reason: "a"}, {Reason: "b"}})
}

func TestUnionTag(t *testing.T) {
	t.Parallel()
	tag, err := UnionTag(TagFieldMap("unlimited"))
	assert.Nil(t, err)
	assert.Equal(t, tag, "unlimited")

	_, err = UnionTag(map[string]any{})
	assert.Equal(t, CodeOf(err), CodeMissingField)

	_, err = UnionTag(map[string]any{UnionTagKey: 7})
	assert.Equal(t, CodeOf(err), CodeTypeMismatch)
}

func TestUnionRoundTrip(t *testing.T) {
	t.Parallel()
	plan := &testPlan{Tag: "tier", Tier: "pro"}
	fields, err := plan.MarshalFieldMap()
	assert.Nil(t, err)
	assert.Equal(t, fields[UnionTagKey].(string), "tier")

	var got testPlan
	assert.Nil(t, got.UnmarshalFieldMap(fields))
	assert.Equal(t, &got, plan)

	var bad testPlan
	err = bad.UnmarshalFieldMap(TagFieldMap("enterprise"))
	assert.Equal(t, CodeOf(err), CodeInvalidTag)
}

func TestAccountFieldMapRoundTrip(t *testing.T) {
	t.Parallel()
	account := newTestAccount()
	fields, err := account.MarshalFieldMap()
	assert.Nil(t, err)

	var got testAccount
	assert.Nil(t, got.UnmarshalFieldMap(fields))
	assert.Equal(t, &got, account)
}

func TestAccountValidationFailures(t *testing.T) {
	t.Parallel()
	account := newTestAccount()
	account.Email = "not-an-email"
	_, err := account.MarshalFieldMap()
	assert.Equal(t, CodeOf(err), CodePatternMismatch)
	serr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, serr.Field(), "email")

	fields, err := newTestAccount().MarshalFieldMap()
	assert.Nil(t, err)
	delete(fields, "id")
	var got testAccount
	err = got.UnmarshalFieldMap(fields)
	assert.Equal(t, CodeOf(err), CodeMissingField)
}
