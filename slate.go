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

// Version is the semantic version of the slate module.
const Version = "0.2.0"

// These constants are used in compile-time handshakes with slate's generated
// code.
const (
	IsAtLeastVersion0_1_0 = true
	IsAtLeastVersion0_2_0 = true
)

// Pointer constructors for optional constraint bounds and optional fields.
// Generated code uses them to build validator arguments inline, in the same
// spirit as google.golang.org/protobuf/proto's scalar helpers.

// Bool returns a pointer to the given bool.
func Bool(v bool) *bool { return &v }

// Int returns a pointer to the given int.
func Int(v int) *int { return &v }

// Int32 returns a pointer to the given int32.
func Int32(v int32) *int32 { return &v }

// Int64 returns a pointer to the given int64.
func Int64(v int64) *int64 { return &v }

// Uint32 returns a pointer to the given uint32.
func Uint32(v uint32) *uint32 { return &v }

// Uint64 returns a pointer to the given uint64.
func Uint64(v uint64) *uint64 { return &v }

// Float32 returns a pointer to the given float32.
func Float32(v float32) *float32 { return &v }

// Float64 returns a pointer to the given float64.
func Float64(v float64) *float64 { return &v }

// String returns a pointer to the given string.
func String(v string) *string { return &v }
