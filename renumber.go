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
	"math"

	"seehuhn.de/go/pdfedit/logger"
)

var errRenumberStart = errors.New("object numbers must start at 1 or above")

// RenumberObjects renumbers all objects consecutively, starting at 1.
// This is normally called after [Document.Prune].
func (d *Document) RenumberObjects() {
	// Renumber only fails for a start value of 0.
	_ = d.Renumber(1)
}

// Renumber assigns consecutive object numbers to all objects, starting at
// start.  A custom start value is useful when the objects of several
// documents are combined into one.
//
// The relative order of the object numbers is preserved, and generation
// numbers are not changed.  All references in the document, including the
// trailer, are updated.  Objects which already have the correct number are
// not moved.
func (d *Document) Renumber(start uint32) error {
	if start == 0 {
		return errRenumberStart
	}
	refs := d.References()
	if uint64(start)+uint64(len(refs)) > math.MaxUint32+1 {
		return errors.New("too many objects for the given start number")
	}

	replace := make(map[Reference]Reference)
	next := start
	for _, ref := range refs {
		if ref.Number() != next {
			replace[ref] = NewReference(next, ref.Generation())
		}
		next++
	}

	// A new reference may still be in use by an object which has not been
	// moved yet.  Take all affected objects out of the table first.
	moved := make(map[Reference]Object, len(replace))
	for oldRef, newRef := range replace {
		moved[newRef] = d.objects[oldRef]
		delete(d.objects, oldRef)
	}
	for newRef, obj := range moved {
		d.objects[newRef] = obj
	}

	if len(replace) > 0 {
		d.Rewrite(func(obj Object) Object {
			if ref, ok := obj.(Reference); ok {
				if newRef, ok := replace[ref]; ok {
					return newRef
				}
			}
			return obj
		})
	}

	d.maxID = next - 1
	d.log(logger.DebugLevel, "renumbered objects",
		"start", start, "moved", len(replace), "maxID", d.maxID)
	return nil
}
