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
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

const (
	codecNameJSON    = "json"
	codecNameMsgpack = "msgpack"
	codecNameYAML    = "yaml"
)

// A Codec frames a Serializable's field map as bytes and back. Codec names
// double as MIME subtypes: a codec named "json" produces
// "application/json" bodies.
type Codec interface {
	Name() string
	Marshal(value Serializable) ([]byte, error)
	Unmarshal(data []byte, value Serializable) error
}

// NewJSONCodec returns a Codec using encoding/json. Numbers are decoded as
// json.Number, so 64-bit integers survive the round trip.
func NewJSONCodec() Codec { return &codecJSON{} }

// NewMsgpackCodec returns a Codec using the MessagePack binary format.
func NewMsgpackCodec() Codec { return &codecMsgpack{} }

// NewYAMLCodec returns a Codec using YAML.
func NewYAMLCodec() Codec { return &codecYAML{} }

type codecJSON struct{}

var _ Codec = (*codecJSON)(nil)

func (c *codecJSON) Name() string { return codecNameJSON }

func (c *codecJSON) Marshal(value Serializable) ([]byte, error) {
	fields, err := value.MarshalFieldMap()
	if err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

func (c *codecJSON) Unmarshal(data []byte, value Serializable) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var fields map[string]any
	if err := decoder.Decode(&fields); err != nil {
		return errorf(CodeTypeMismatch, "invalid json: %v", err)
	}
	return value.UnmarshalFieldMap(fields)
}

type codecMsgpack struct{}

var _ Codec = (*codecMsgpack)(nil)

func (c *codecMsgpack) Name() string { return codecNameMsgpack }

func (c *codecMsgpack) Marshal(value Serializable) ([]byte, error) {
	fields, err := value.MarshalFieldMap()
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(fields)
}

func (c *codecMsgpack) Unmarshal(data []byte, value Serializable) error {
	var fields map[string]any
	if err := msgpack.Unmarshal(data, &fields); err != nil {
		return errorf(CodeTypeMismatch, "invalid msgpack: %v", err)
	}
	return value.UnmarshalFieldMap(fields)
}

type codecYAML struct{}

var _ Codec = (*codecYAML)(nil)

func (c *codecYAML) Name() string { return codecNameYAML }

func (c *codecYAML) Marshal(value Serializable) ([]byte, error) {
	fields, err := value.MarshalFieldMap()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(fields)
}

func (c *codecYAML) Unmarshal(data []byte, value Serializable) error {
	var fields map[string]any
	if err := yaml.Unmarshal(data, &fields); err != nil {
		return errorf(CodeTypeMismatch, "invalid yaml: %v", err)
	}
	return value.UnmarshalFieldMap(fields)
}

// readOnlyCodecs is a read-only interface to a map of named codecs.
type readOnlyCodecs interface {
	// Get gets the codec with the given name.
	Get(name string) Codec
	// Names returns a copy of the registered codec names, sorted.
	Names() []string
}

func newReadOnlyCodecs(nameToCodec map[string]Codec) readOnlyCodecs {
	return &codecMap{nameToCodec: nameToCodec}
}

type codecMap struct {
	nameToCodec map[string]Codec
}

func (m *codecMap) Get(name string) Codec {
	return m.nameToCodec[name]
}

func (m *codecMap) Names() []string {
	names := make([]string, 0, len(m.nameToCodec))
	for name := range m.nameToCodec {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func contentTypeFor(codec Codec) string {
	return fmt.Sprintf("application/%s", codec.Name())
}
