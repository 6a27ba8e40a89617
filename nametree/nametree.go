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

// Package nametree reads and extends PDF name trees.
//
// Name trees associate byte string keys with values.  Only trees which
// consist of a single node holding a /Names array are supported; trees
// with intermediate /Kids nodes result in [ErrNotFlat].
package nametree

import (
	"errors"
	"fmt"
	"iter"

	"seehuhn.de/go/pdfedit"
)

// PDF 2.0 sections: 7.9.6

// All iterates over the key/value pairs of the name tree with the given
// root node.  Keys which are not strings are skipped.
//
// If root is null, the iteration is empty.  An error is returned if the
// root node is malformed.
func All(r pdfedit.Getter, root pdfedit.Object) (iter.Seq2[pdfedit.String, pdfedit.Object], error) {
	arr, err := names(r, root)
	if err != nil {
		return nil, err
	}
	return func(yield func(pdfedit.String, pdfedit.Object) bool) {
		for i := 0; i+1 < len(arr); i += 2 {
			key, err := pdfedit.GetString(r, arr[i])
			if err != nil || key == nil {
				continue
			}
			if !yield(key, arr[i+1]) {
				return
			}
		}
	}, nil
}

// Size returns the number of entries in the name tree.
func Size(r pdfedit.Getter, root pdfedit.Object) (int, error) {
	arr, err := names(r, root)
	if err != nil {
		return 0, err
	}
	return len(arr) / 2, nil // Names array has key-value pairs
}

// CheckAppend reports whether [Append] can add entries to the given node.
func CheckAppend(r pdfedit.Getter, root pdfedit.Object) error {
	_, err := names(r, root)
	return err
}

// Append adds a key/value pair at the end of the /Names array of the given
// node.  If the node has no /Names array, a new array object is created.
//
// The keys of a name tree must be in sorted order.  Append does not
// enforce this.
func Append(doc *pdfedit.Document, node pdfedit.Dict, key pdfedit.String, value pdfedit.Object) {
	switch obj := node["Names"].(type) {
	case pdfedit.Array:
		node["Names"] = append(obj, key, value)
		return
	case pdfedit.Reference:
		target, _ := doc.Get(obj)
		if arr, ok := target.(pdfedit.Array); ok {
			doc.Put(obj, append(arr, key, value))
			return
		}
	}
	node["Names"] = doc.Add(pdfedit.Array{key, value})
}

func names(r pdfedit.Getter, root pdfedit.Object) (pdfedit.Array, error) {
	node, err := pdfedit.GetDict(r, root)
	if node == nil {
		return nil, err
	}

	arr, err := pdfedit.GetArray(r, node["Names"])
	if err != nil {
		return nil, fmt.Errorf("name tree: %w", err)
	}
	if arr == nil && node["Kids"] != nil {
		return nil, ErrNotFlat
	}
	return arr, nil
}

// ErrNotFlat indicates a name tree with intermediate nodes.
var ErrNotFlat = errors.New("name tree has intermediate nodes")
