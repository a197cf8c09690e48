// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package prim

import "errors"

// Sentinel errors returned by every public operation. Callers match them with
// errors.Is; kernels wrap them with the offending parameter.
var (
	// ErrInvalidParameter reports a null view with a nonzero region, a stride
	// or view too small for the region, or a zero-area region.
	ErrInvalidParameter = errors.New("prim: invalid parameter")

	// ErrUnsupported reports a pixel format or operation variant that the
	// active kernel table does not provide.
	ErrUnsupported = errors.New("prim: unsupported")

	// ErrInternalLimit reports a region larger than MaxDimension.
	ErrInternalLimit = errors.New("prim: region exceeds internal limit")
)

// Status is the closed set of outcomes of a primitive call.
type Status int

const (
	Success Status = iota
	InvalidParameter
	Unsupported
	InternalLimit
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case InvalidParameter:
		return "invalid parameter"
	case Unsupported:
		return "unsupported"
	case InternalLimit:
		return "internal limit"
	default:
		return "unknown"
	}
}

// StatusOf maps an error returned by this module onto its Status.
// Errors from outside the module map to InvalidParameter.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrUnsupported):
		return Unsupported
	case errors.Is(err, ErrInternalLimit):
		return InternalLimit
	default:
		return InvalidParameter
	}
}
