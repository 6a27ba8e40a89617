// seehuhn.de/go/pdfedit - in-memory editing of PDF object graphs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfedit

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrWrongType indicates that an object has a different kind than the
	// one requested, e.g. an array where a dictionary was expected.
	ErrWrongType = errors.New("wrong object type")

	// ErrMissing indicates that a required dictionary entry or indirect
	// object is absent.
	ErrMissing = errors.New("missing object")

	errNoCatalog = errors.New("document catalog not found")
)

// MalformedFileError indicates that the object graph does not have the
// structure required by an operation.
type MalformedFileError struct {
	Err error
	Loc []string
}

func (err *MalformedFileError) Error() string {
	parts := []string{"malformed PDF object graph"}
	if err.Err != nil {
		parts = append(parts, err.Err.Error())
	}
	msg := strings.Join(parts, ": ")
	if len(err.Loc) > 0 {
		msg += " (" + strings.Join(err.Loc, ", ") + ")"
	}
	return msg
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// Errorf creates a new [MalformedFileError] with the given message.
// The %w verb can be used to wrap another error.
func Errorf(format string, args ...any) error {
	return &MalformedFileError{
		Err: fmt.Errorf(format, args...),
	}
}

// Wrap adds location information to a [MalformedFileError].  Other errors
// are wrapped into a new [MalformedFileError].  If err is nil, nil is
// returned.
func Wrap(err error, loc string) error {
	if err == nil {
		return nil
	}
	var e *MalformedFileError
	if errors.As(err, &e) {
		e.Loc = append(e.Loc, loc)
		return e
	}
	return &MalformedFileError{
		Err: err,
		Loc: []string{loc},
	}
}

func wrongType(want string, got Object) error {
	return &MalformedFileError{
		Err: fmt.Errorf("%w: expected %s but got %T", ErrWrongType, want, got),
	}
}

// UnsupportedFilterError is returned when a stream uses a filter which
// cannot be decoded or encoded.
type UnsupportedFilterError struct {
	Name Name
}

func (err *UnsupportedFilterError) Error() string {
	return fmt.Sprintf("unsupported filter %q", string(err.Name))
}
