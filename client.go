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
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// HTTPClient is the interface slate expects HTTP clients to implement. The
// standard library's *http.Client satisfies it.
type HTTPClient interface {
	Do(request *http.Request) (*http.Response, error)
}

// A Client executes routes against a remote host. Generated SDK code wraps
// Call with one strongly-typed method per route; hand-written code can call
// routes directly. Clients are safe for concurrent use.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	codec      Codec
	codecs     readOnlyCodecs
	header     http.Header
	userAgent  string
}

// NewClient constructs a Client for the given base URL. The URL must be
// absolute, with an http or https scheme.
func NewClient(baseURL string, options ...ClientOption) (*Client, error) {
	parsed, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, errorf(CodeUnknown, "invalid base URL %q: %v", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errorf(CodeUnknown, "base URL %q must use http or https", baseURL)
	}
	config := newClientConfig(options)
	return &Client{
		httpClient: config.HTTPClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		codec:      config.Codec,
		codecs:     newReadOnlyCodecs(config.Codecs),
		header:     config.Header,
		userAgent:  config.UserAgent,
	}, nil
}

// Call executes a route. The args field map is framed with the client's
// codec and posted to baseURL + route.Path(); the response body is decoded
// into result. Either may be nil for routes without arguments or results.
//
// Errors can always be cast to *Error using the standard library's
// errors.As. A conflict response on a route with a declared error type
// decodes the body into that type and returns a CodeAPIError error carrying
// it as a detail.
func (c *Client) Call(ctx context.Context, route Route, args, result Serializable) error {
	if args == nil {
		args = voidValue{}
	}
	body, err := c.codec.Marshal(args)
	if err != nil {
		return err
	}
	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+route.Path(),
		bytes.NewReader(body),
	)
	if err != nil {
		return errorf(CodeUnknown, "construct request: %v", err)
	}
	for key, values := range c.header {
		request.Header[key] = values
	}
	request.Header.Set("Content-Type", contentTypeFor(c.codec))
	request.Header.Set("Accept", contentTypeFor(c.codec))
	// A User-Agent set with WithHeader wins over the configured one.
	if request.Header.Get("User-Agent") == "" {
		request.Header.Set("User-Agent", c.userAgent)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		if wrapped := wrapIfContextError(err); wrapped != err {
			return wrapped
		}
		if _, ok := asError(err); ok {
			return err
		}
		return NewError(CodeUnavailable, err)
	}
	defer response.Body.Close()

	buffer := getBuffer()
	defer putBuffer(buffer)
	if _, err := io.Copy(buffer, response.Body); err != nil {
		if wrapped := wrapIfContextError(err); wrapped != err {
			return wrapped
		}
		return NewError(CodeUnavailable, err)
	}

	codec := c.responseCodec(response.Header.Get("Content-Type"))
	switch {
	case response.StatusCode == http.StatusOK:
		if result == nil {
			return nil
		}
		return codec.Unmarshal(buffer.Bytes(), result)
	case response.StatusCode == http.StatusConflict && route.ErrorType != nil:
		// Routes report their declared error type with a conflict status.
		routeErr := route.ErrorType()
		if err := codec.Unmarshal(buffer.Bytes(), routeErr); err != nil {
			return errorf(CodeUnknown, "%s failed with undecodable error body: %v", route.Path(), err)
		}
		serr := errorf(CodeAPIError, "%s failed", route.Path())
		serr.SetDetail(routeErr)
		return serr
	}
	return errorf(codeForHTTPStatus(response.StatusCode), "%s: HTTP %d", route.Path(), response.StatusCode)
}

// responseCodec picks the codec for a response's Content-Type, falling back
// to the request codec when the type is absent or unregistered.
func (c *Client) responseCodec(contentType string) Codec {
	mediatype, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return c.codec
	}
	name := strings.TrimPrefix(mediatype, "application/")
	if codec := c.codecs.Get(name); codec != nil {
		return codec
	}
	return c.codec
}

func codeForHTTPStatus(status int) Code {
	switch status {
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return CodeDeadlineExceeded
	case http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusBadGateway:
		return CodeUnavailable
	}
	return CodeUnknown
}

// voidValue stands in for the arguments of routes that take none.
type voidValue struct{}

func (voidValue) MarshalFieldMap() (map[string]any, error) { return map[string]any{}, nil }

func (voidValue) UnmarshalFieldMap(map[string]any) error { return nil }
