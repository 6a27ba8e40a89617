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
	"slices"

	"seehuhn.de/go/pdfedit/logger"
)

// Prune removes all objects which cannot be reached from the trailer
// dictionary.  The references of the removed objects are returned in
// increasing order.
func (d *Document) Prune() []Reference {
	reachable := d.Reachable()

	var unused []Reference
	for ref := range d.objects {
		if !reachable[ref] {
			unused = append(unused, ref)
		}
	}
	slices.SortFunc(unused, Reference.Compare)

	for _, ref := range unused {
		delete(d.objects, ref)
	}

	d.log(logger.DebugLevel, "pruned unused objects",
		"removed", len(unused), "remaining", len(d.objects))
	return unused
}

// Delete removes an object from the document.
//
// Before the object is removed, every array element and every dictionary
// entry in the document which is a reference to the object is removed.
// Objects which become unreachable because of the deletion are not removed;
// use [Document.Prune] for this.
//
// The removed object is returned.  If there was no object with the given
// reference, the second return value is false.  Dangling references to
// ref are removed in either case.
func (d *Document) Delete(ref Reference) (Object, bool) {
	d.scrub(ref)

	obj, ok := d.objects[ref]
	delete(d.objects, ref)
	return obj, ok
}

// scrub removes all references to target from the document.
func (d *Document) scrub(target Reference) {
	d.Rewrite(func(obj Object) Object {
		switch x := obj.(type) {
		case Array:
			return slices.DeleteFunc(x, func(elem Object) bool {
				ref, ok := elem.(Reference)
				return ok && ref == target
			})
		case Dict:
			for key, val := range x {
				if ref, ok := val.(Reference); ok && ref == target {
					delete(x, key)
				}
			}
		}
		return obj
	})
}

// DeleteZeroLengthStreams deletes all stream objects with empty contents,
// using [Document.Delete].  The references of the deleted streams are
// returned in increasing order.
func (d *Document) DeleteZeroLengthStreams() []Reference {
	var empty []Reference
	for ref, obj := range d.Objects() {
		if stm, ok := obj.(*Stream); ok && len(stm.Data) == 0 {
			empty = append(empty, ref)
		}
	}

	for _, ref := range empty {
		d.Delete(ref)
	}
	return empty
}
