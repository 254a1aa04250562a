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
	"regexp"
	"sort"
	"unicode/utf8"
)

// A Validator checks one value against the constraints its IDL definition
// declares, returning a coded *Error on violation. Validators are
// constructed once per generated definition and are safe for concurrent use.
//
// Unset bounds are expressed as nil pointers and never fire.
type Validator[T any] func(value T) error

// Numeric is the set of scalar kinds the IDL can bound with minimum and
// maximum constraints.
type Numeric interface {
	~int32 | ~int64 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// StringValidator returns a validator enforcing length bounds (counted in
// runes) and an optional pattern. Patterns match the whole value, as if
// anchored with \A and \z.
//
// The pattern comes from the IDL definition, so a pattern that doesn't
// compile is a generator bug: StringValidator panics rather than returning
// an error every call.
func StringValidator(minLength, maxLength *int, pattern string) Validator[string] {
	var re *regexp.Regexp
	if pattern != "" {
		re = regexp.MustCompile(`\A(?:` + pattern + `)\z`)
	}
	return func(value string) error {
		length := utf8.RuneCountInString(value)
		if minLength != nil && length < *minLength {
			return errorf(CodeLengthOutOfBounds, "length %d is less than minimum %d", length, *minLength)
		}
		if maxLength != nil && length > *maxLength {
			return errorf(CodeLengthOutOfBounds, "length %d is greater than maximum %d", length, *maxLength)
		}
		if re != nil && !re.MatchString(value) {
			return errorf(CodePatternMismatch, "%q does not match pattern %q", value, pattern)
		}
		return nil
	}
}

// NumericValidator returns a validator enforcing inclusive minimum and
// maximum bounds.
func NumericValidator[N Numeric](minValue, maxValue *N) Validator[N] {
	return func(value N) error {
		if minValue != nil && value < *minValue {
			return errorf(CodeValueOutOfRange, "%v is less than minimum %v", value, *minValue)
		}
		if maxValue != nil && value > *maxValue {
			return errorf(CodeValueOutOfRange, "%v is greater than maximum %v", value, *maxValue)
		}
		return nil
	}
}

// BytesValidator returns a validator enforcing length bounds on byte
// strings.
func BytesValidator(minLength, maxLength *int) Validator[[]byte] {
	return func(value []byte) error {
		if minLength != nil && len(value) < *minLength {
			return errorf(CodeLengthOutOfBounds, "length %d is less than minimum %d", len(value), *minLength)
		}
		if maxLength != nil && len(value) > *maxLength {
			return errorf(CodeLengthOutOfBounds, "length %d is greater than maximum %d", len(value), *maxLength)
		}
		return nil
	}
}

// ListValidator returns a validator enforcing item-count bounds and,
// optionally, a per-item validator. Item violations are annotated with the
// offending index.
func ListValidator[T any](minItems, maxItems *int, item Validator[T]) Validator[[]T] {
	return func(values []T) error {
		if minItems != nil && len(values) < *minItems {
			return errorf(CodeCardinalityViolation, "%d items is fewer than minimum %d", len(values), *minItems)
		}
		if maxItems != nil && len(values) > *maxItems {
			return errorf(CodeCardinalityViolation, "%d items is more than maximum %d", len(values), *maxItems)
		}
		if item == nil {
			return nil
		}
		for i, value := range values {
			if err := item(value); err != nil {
				return WithIndex(i, err)
			}
		}
		return nil
	}
}

// MapValidator returns a validator applying a value validator to every entry
// of a string-keyed map. Violations are annotated with the offending key,
// and keys are visited in sorted order so the reported violation is
// deterministic.
func MapValidator[T any](value Validator[T]) Validator[map[string]T] {
	return func(values map[string]T) error {
		if value == nil {
			return nil
		}
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if err := value(values[key]); err != nil {
				return WithField(key, err)
			}
		}
		return nil
	}
}

// NullableValidator wraps a validator so that nil passes and non-nil values
// are checked by the inner validator.
func NullableValidator[T any](inner Validator[T]) Validator[*T] {
	return func(value *T) error {
		if value == nil {
			return nil
		}
		return inner(*value)
	}
}
