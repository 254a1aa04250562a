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
	"fmt"
	"sort"
)

// A Route describes one remote operation declared in the IDL. Generated
// client code constructs one Route per operation and treats it as immutable
// afterwards.
type Route struct {
	// Name is the operation's name within its namespace, e.g. "upload".
	Name string
	// Namespace groups related operations, e.g. "files".
	Namespace string
	// Deprecated marks operations the IDL has flagged for removal.
	Deprecated bool
	// ResultType constructs a fresh value for the operation's result, or is
	// nil for operations with no result.
	ResultType func() Serializable
	// ErrorType constructs a fresh value for the operation's declared error,
	// or is nil for operations that only fail generically.
	ErrorType func() Serializable
	// Attrs carries the operation's IDL route attributes, such as "host",
	// "style", or "auth".
	Attrs map[string]string
}

// Path returns the operation's request path, "/namespace/name".
func (r Route) Path() string {
	return "/" + r.Namespace + "/" + r.Name
}

// Attr looks up a route attribute.
func (r Route) Attr(key string) (string, bool) {
	value, ok := r.Attrs[key]
	return value, ok
}

// A Registry is a read-only collection of routes, keyed by path. Generated
// code registers every route in a namespace during package initialization;
// afterwards the registry is safe for concurrent use.
type Registry struct {
	routes map[string]Route
}

// NewRegistry constructs an empty route registry.
func NewRegistry() *Registry {
	return &Registry{routes: make(map[string]Route)}
}

// Register adds a route to the registry. Two routes with the same namespace
// and name indicate a generator bug, so duplicates panic - the same
// contract net/http's ServeMux applies to patterns.
func (r *Registry) Register(route Route) {
	path := route.Path()
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("slate: route %s registered twice", path))
	}
	r.routes[path] = route
}

// Lookup finds a route by namespace and name.
func (r *Registry) Lookup(namespace, name string) (Route, bool) {
	route, ok := r.routes[Route{Name: name, Namespace: namespace}.Path()]
	return route, ok
}

// Routes returns every registered route, sorted by path.
func (r *Registry) Routes() []Route {
	paths := make([]string, 0, len(r.routes))
	for path := range r.routes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	routes := make([]Route, len(paths))
	for i, path := range paths {
		routes[i] = r.routes[path]
	}
	return routes
}
