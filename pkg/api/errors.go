/*
   Copyright 2020 Docker Compose CLI authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package api

import (
	"github.com/containerd/errdefs"
	"github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when an object is not found
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when an object already exists
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotImplemented is returned when a platform doesn't implement
	// an action
	ErrNotImplemented = errors.New("not implemented")
	// ErrParsingFailed is returned when a string or buffer cannot be parsed
	ErrParsingFailed = errors.New("parsing failed")
	// ErrEnumeration is returned when subvolume references could not be enumerated
	ErrEnumeration = errors.New("enumeration failed")
	// ErrIndexing is returned when an enumerated reference could not be indexed
	ErrIndexing = errors.New("indexing failed")
	// ErrUnresolved is returned when a subvolume has no local path
	ErrUnresolved = errors.New("local path not resolved")
	// ErrReferenceCycle is returned when subvolume references loop back
	// without reaching the top level
	ErrReferenceCycle = errors.New("reference cycle")
)

// IsNotFoundError returns true if the unwrapped error is ErrNotFound
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) || errdefs.IsNotFound(err)
}

// IsAlreadyExistsError returns true if the unwrapped error is ErrAlreadyExists
func IsAlreadyExistsError(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsErrNotImplemented returns true if the unwrapped error is ErrNotImplemented
func IsErrNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}

// IsErrParsingFailed returns true if the unwrapped error is ErrParsingFailed
func IsErrParsingFailed(err error) bool {
	return errors.Is(err, ErrParsingFailed)
}

// IsEnumerationError returns true if the unwrapped error is ErrEnumeration
func IsEnumerationError(err error) bool {
	return errors.Is(err, ErrEnumeration)
}

// IsIndexingError returns true if the unwrapped error is ErrIndexing
func IsIndexingError(err error) bool {
	return errors.Is(err, ErrIndexing)
}

// IsUnresolvedError returns true if the unwrapped error is ErrUnresolved
func IsUnresolvedError(err error) bool {
	return errors.Is(err, ErrUnresolved)
}

// IsReferenceCycleError returns true if the unwrapped error is ErrReferenceCycle
func IsReferenceCycleError(err error) bool {
	return errors.Is(err, ErrReferenceCycle)
}

// PhaseError ties a failure to the phase of a listing pass it happened in,
// such as ErrEnumeration or ErrIndexing
type PhaseError struct {
	Phase error
	Err   error
}

// WrapPhaseError wraps the error if not nil, otherwise returns nil
func WrapPhaseError(phase error, err error) error {
	if err == nil {
		return nil
	}
	return PhaseError{
		Phase: phase,
		Err:   err,
	}
}

// Unwrap exposes both the phase and the underlying error
func (e PhaseError) Unwrap() []error { return []error{e.Phase, e.Err} }

func (e PhaseError) Error() string { return e.Phase.Error() + ": " + e.Err.Error() }
