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
)

// Getter gives read access to the indirect objects of a document.
//
// Get returns the object with the given reference.  A reference to an
// object which does not exist resolves to null, i.e. Get returns a nil
// Object and no error.
type Getter interface {
	Get(Reference) (Object, error)
}

// Source is a [Getter] which also provides the document catalog.
// This is implemented by [*Document].
type Source interface {
	Getter
	Catalog() (Dict, error)
}

// Resolve resolves references to indirect objects.
//
// If obj is a [Reference], the function looks up the corresponding object
// and returns the result.  If obj is not a [Reference], it is returned
// unchanged.  Chains of references are followed until a non-reference
// object is found.
//
// If a reference loop is encountered, the function returns an error of type
// [MalformedFileError].
func Resolve(r Getter, obj Object) (Object, error) {
	origObj := obj

	count := 0
	for {
		ref, isReference := obj.(Reference)
		if !isReference {
			break
		}
		count++
		if count > 16 {
			return nil, &MalformedFileError{
				Err: errors.New("too many levels of indirection"),
				Loc: []string{"object " + origObj.(Reference).String()},
			}
		}

		var err error
		obj, err = r.Get(ref)
		if err != nil {
			return nil, err
		}
	}

	return obj, nil
}

func resolveAndCast[T Object](r Getter, obj Object) (x T, err error) {
	obj, err = Resolve(r, obj)
	if err != nil {
		return x, err
	}

	if obj == nil {
		return x, nil
	}

	var isCorrectType bool
	x, isCorrectType = obj.(T)
	if isCorrectType {
		return x, nil
	}

	return x, wrongType(typeName[T](), obj)
}

func typeName[T Object]() string {
	var zero T
	switch any(zero).(type) {
	case Array:
		return "Array"
	case Bool:
		return "Bool"
	case Dict:
		return "Dict"
	case Integer:
		return "Integer"
	case Name:
		return "Name"
	case Real:
		return "Real"
	case *Stream:
		return "Stream"
	default:
		return "object"
	}
}

// Helper functions for getting objects of a specific type.  Each of these
// functions calls Resolve on the object before attempting to convert it to the
// desired type.  If the object is `null`, a zero object is returned without
// error.  If the object is of the wrong type, an error wrapping
// [ErrWrongType] is returned.
//
// The signature of these functions is
//
//	func GetT(r Getter, obj Object) (x T, err error)
//
// where T is the type of the object to be returned.
var (
	GetArray   = resolveAndCast[Array]
	GetBool    = resolveAndCast[Bool]
	GetDict    = resolveAndCast[Dict]
	GetInteger = resolveAndCast[Integer]
	GetName    = resolveAndCast[Name]
	GetReal    = resolveAndCast[Real]
	GetStream  = resolveAndCast[*Stream]
)

// GetString resolves references and returns the bytes of a string object.
// Both literal and hexadecimal strings are accepted.
func GetString(r Getter, obj Object) (String, error) {
	obj, err := Resolve(r, obj)
	if err != nil {
		return nil, err
	}
	switch x := obj.(type) {
	case nil:
		return nil, nil
	case String:
		return x, nil
	case HexString:
		return String(x), nil
	default:
		return nil, wrongType("String", obj)
	}
}

// GetTextString resolves references and returns a string object decoded
// as a PDF text string.
func GetTextString(r Getter, obj Object) (string, error) {
	s, err := GetString(r, obj)
	if err != nil {
		return "", err
	}
	return s.AsTextString(), nil
}
