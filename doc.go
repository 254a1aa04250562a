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

// Package slate is the runtime support library for Go code generated by the
// slate IDL compiler. Generated model types implement [Serializable],
// converting themselves to and from string-keyed field maps; this package
// supplies the primitive serializers, value-constraint validators, route
// descriptors, and codecs those types rely on.
//
// Nearly everything here is invoked by generated code rather than written by
// hand. The exceptions are [Client], which executes routes against a remote
// host, and the codec constructors, which choose how field maps are framed
// as bytes.
package slate
