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

// UnionTagKey is the reserved field-map key carrying a union value's
// selected variant. The leading dot keeps it out of the IDL's identifier
// space.
const UnionTagKey = ".tag"

// UnionTag extracts the variant tag from a union's field map. Generated
// union code calls it first, then dispatches on the tag to deserialize the
// variant's payload.
func UnionTag(fields map[string]any) (string, error) {
	wire, ok := fields[UnionTagKey]
	if !ok {
		return "", errorf(CodeMissingField, "union has no %q key", UnionTagKey)
	}
	tag, ok := wire.(string)
	if !ok {
		return "", errWireType("tag string", wire)
	}
	return tag, nil
}

// TagFieldMap returns a field map holding only the variant tag. Generated
// serialization code for void union variants uses it directly; variants with
// payloads add their fields to the returned map.
func TagFieldMap(tag string) map[string]any {
	return map[string]any{UnionTagKey: tag}
}
