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
	"time"
)

// The types below are hand-written stand-ins for generator output. They use
// the runtime exactly the way generated model code does: validators declared
// once per definition, serializers composed per field, and errors annotated
// with field names.

var (
	accountIDValidator    = StringValidator(Int(1), Int(32), "")
	accountEmailValidator = StringValidator(nil, nil, `[^@ ]+@[^@ ]+`)
	accountTagsValidator  = ListValidator(nil, Int(8), StringValidator(Int(1), nil, ""))
	accountQuotaValidator = NullableValidator(NumericValidator(Int64(0), nil))
)

type testAccount struct {
	ID     string
	Email  string
	Age    int32
	Joined time.Time
	Tags   []string
	Quota  *int64
	Avatar []byte
	Scores map[string]float64
}

func (a *testAccount) MarshalFieldMap() (map[string]any, error) {
	if err := accountIDValidator(a.ID); err != nil {
		return nil, WithField("id", err)
	}
	if err := accountEmailValidator(a.Email); err != nil {
		return nil, WithField("email", err)
	}
	if err := accountTagsValidator(a.Tags); err != nil {
		return nil, WithField("tags", err)
	}
	if err := accountQuotaValidator(a.Quota); err != nil {
		return nil, WithField("quota", err)
	}
	fields := make(map[string]any)
	fields["id"] = a.ID
	fields["email"] = a.Email
	fields["age"] = int64(a.Age)
	joined, err := NewTimestampSerializer("").Serialize(a.Joined)
	if err != nil {
		return nil, WithField("joined", err)
	}
	fields["joined"] = joined
	tags, err := NewListSerializer[string](StringSerializer{}).Serialize(a.Tags)
	if err != nil {
		return nil, WithField("tags", err)
	}
	fields["tags"] = tags
	quota, err := NewNullableSerializer[int64](Int64Serializer{}).Serialize(a.Quota)
	if err != nil {
		return nil, WithField("quota", err)
	}
	fields["quota"] = quota
	avatar, err := BytesSerializer{}.Serialize(a.Avatar)
	if err != nil {
		return nil, WithField("avatar", err)
	}
	fields["avatar"] = avatar
	scores, err := NewMapSerializer[float64](Float64Serializer{}).Serialize(a.Scores)
	if err != nil {
		return nil, WithField("scores", err)
	}
	fields["scores"] = scores
	return fields, nil
}

func (a *testAccount) UnmarshalFieldMap(fields map[string]any) error {
	wire, ok := fields["id"]
	if !ok {
		return WithField("id", errorf(CodeMissingField, "required field absent"))
	}
	id, err := StringSerializer{}.Deserialize(wire)
	if err != nil {
		return WithField("id", err)
	}
	if err := accountIDValidator(id); err != nil {
		return WithField("id", err)
	}
	a.ID = id
	wire, ok = fields["email"]
	if !ok {
		return WithField("email", errorf(CodeMissingField, "required field absent"))
	}
	email, err := StringSerializer{}.Deserialize(wire)
	if err != nil {
		return WithField("email", err)
	}
	if err := accountEmailValidator(email); err != nil {
		return WithField("email", err)
	}
	a.Email = email
	wire, ok = fields["age"]
	if !ok {
		return WithField("age", errorf(CodeMissingField, "required field absent"))
	}
	age, err := Int32Serializer{}.Deserialize(wire)
	if err != nil {
		return WithField("age", err)
	}
	a.Age = age
	wire, ok = fields["joined"]
	if !ok {
		return WithField("joined", errorf(CodeMissingField, "required field absent"))
	}
	joined, err := NewTimestampSerializer("").Deserialize(wire)
	if err != nil {
		return WithField("joined", err)
	}
	a.Joined = joined
	if wire, ok := fields["tags"]; ok && wire != nil {
		tags, err := NewListSerializer[string](StringSerializer{}).Deserialize(wire)
		if err != nil {
			return WithField("tags", err)
		}
		if err := accountTagsValidator(tags); err != nil {
			return WithField("tags", err)
		}
		a.Tags = tags
	}
	if wire, ok := fields["quota"]; ok {
		quota, err := NewNullableSerializer[int64](Int64Serializer{}).Deserialize(wire)
		if err != nil {
			return WithField("quota", err)
		}
		if err := accountQuotaValidator(quota); err != nil {
			return WithField("quota", err)
		}
		a.Quota = quota
	}
	if wire, ok := fields["avatar"]; ok && wire != nil {
		avatar, err := BytesSerializer{}.Deserialize(wire)
		if err != nil {
			return WithField("avatar", err)
		}
		a.Avatar = avatar
	}
	if wire, ok := fields["scores"]; ok && wire != nil {
		scores, err := NewMapSerializer[float64](Float64Serializer{}).Deserialize(wire)
		if err != nil {
			return WithField("scores", err)
		}
		a.Scores = scores
	}
	return nil
}

func newTestAccount() *testAccount {
	quota := int64(1 << 30)
	return &testAccount{
		ID:     "dbid:abc123",
		Email:  "kit@example.com",
		Age:    34,
		Joined: time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC),
		Tags:   []string{"staff", "beta"},
		Quota:  &quota,
		Avatar: []byte{0x89, 0x50, 0x4e, 0x47},
		Scores: map[string]float64{"api": 0.75, "sync": 1},
	}
}

// testPlan is a union stand-in: either a named tier or "unlimited".
type testPlan struct {
	Tag  string
	Tier string
}

func (p *testPlan) MarshalFieldMap() (map[string]any, error) {
	switch p.Tag {
	case "tier":
		fields := TagFieldMap(p.Tag)
		fields["tier"] = p.Tier
		return fields, nil
	case "unlimited":
		return TagFieldMap(p.Tag), nil
	}
	return nil, errorf(CodeInvalidTag, "unknown plan variant %q", p.Tag)
}

func (p *testPlan) UnmarshalFieldMap(fields map[string]any) error {
	tag, err := UnionTag(fields)
	if err != nil {
		return err
	}
	switch tag {
	case "tier":
		wire, ok := fields["tier"]
		if !ok {
			return WithField("tier", errorf(CodeMissingField, "required field absent"))
		}
		tier, err := StringSerializer{}.Deserialize(wire)
		if err != nil {
			return WithField("tier", err)
		}
		p.Tier = tier
	case "unlimited":
	default:
		return errorf(CodeInvalidTag, "unknown plan variant %q", tag)
	}
	p.Tag = tag
	return nil
}

// testQuotaError is a route error stand-in.
type testQuotaError struct {
	Reason string
}

func (e *testQuotaError) MarshalFieldMap() (map[string]any, error) {
	return map[string]any{"reason": e.Reason}, nil
}

func (e *testQuotaError) UnmarshalFieldMap(fields map[string]any) error {
	wire, ok := fields["reason"]
	if !ok {
		return WithField("reason", errorf(CodeMissingField, "required field absent"))
	}
	reason, err := StringSerializer{}.Deserialize(wire)
	if err != nil {
		return WithField("reason", err)
	}
	e.Reason = reason
	return nil
}
