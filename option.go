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

import "net/http"

// A ClientOption configures a slate Client.
type ClientOption interface {
	applyToClient(*clientConfig)
}

type clientConfig struct {
	HTTPClient HTTPClient
	Codec      Codec
	Codecs     map[string]Codec
	Header     http.Header
	UserAgent  string
}

func newClientConfig(options []ClientOption) *clientConfig {
	jsonCodec := NewJSONCodec()
	config := &clientConfig{
		HTTPClient: http.DefaultClient,
		Codec:      jsonCodec,
		Codecs: map[string]Codec{
			codecNameJSON:    jsonCodec,
			codecNameMsgpack: NewMsgpackCodec(),
			codecNameYAML:    NewYAMLCodec(),
		},
		Header:    make(http.Header),
		UserAgent: "slate-go/" + Version,
	}
	for _, option := range options {
		option.applyToClient(config)
	}
	return config
}

// WithHTTPClient configures the client to issue requests with the given HTTP
// client instead of http.DefaultClient.
func WithHTTPClient(client HTTPClient) ClientOption {
	return &httpClientOption{client: client}
}

type httpClientOption struct {
	client HTTPClient
}

func (o *httpClientOption) applyToClient(config *clientConfig) {
	config.HTTPClient = o.client
}

// WithCodec configures the codec used to frame request bodies. The codec is
// also registered for response decoding under its own name. Clients default
// to JSON.
func WithCodec(codec Codec) ClientOption {
	return &codecOption{codec: codec}
}

type codecOption struct {
	codec Codec
}

func (o *codecOption) applyToClient(config *clientConfig) {
	config.Codec = o.codec
	config.Codecs[o.codec.Name()] = o.codec
}

// WithHeader configures a header sent with every request, such as an
// authorization token.
func WithHeader(key, value string) ClientOption {
	return &headerOption{key: key, value: value}
}

type headerOption struct {
	key   string
	value string
}

func (o *headerOption) applyToClient(config *clientConfig) {
	config.Header.Set(o.key, o.value)
}

// WithUserAgent overrides the default slate-go User-Agent. A User-Agent set
// with WithHeader takes precedence over both.
func WithUserAgent(agent string) ClientOption {
	return &userAgentOption{agent: agent}
}

type userAgentOption struct {
	agent string
}

func (o *userAgentOption) applyToClient(config *clientConfig) {
	config.UserAgent = o.agent
}
