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
	"iter"
	"reflect"
)

// Rewrite applies fn to every value in the document, without following
// references.
//
// The function is called for every object in the object table, for the
// trailer dictionary, and recursively for every element of an array, every
// value in a dictionary, and the dictionary of every stream.  The value
// returned by fn replaces the visited value in its container, and the
// traversal then continues with the children of the returned value.
// A nil return value removes a dictionary entry or, for an object in the
// object table, the object itself.  For array elements, nil is stored as
// the null object.
//
// Objects pointed to by references are visited as members of the object
// table, never through the reference.  This makes the pass suitable for
// changing the references themselves.
//
// A container (array, dictionary or stream) which is held in more than one
// place is visited only once, and every holder receives the same
// replacement.
func (d *Document) Rewrite(fn func(Object) Object) {
	rw := &rewriter{
		fn:   fn,
		done: make(map[containerID]Object),
	}

	for _, ref := range d.References() {
		obj := rw.rewrite(d.objects[ref])
		if obj == nil {
			delete(d.objects, ref)
		} else {
			d.objects[ref] = obj
		}
	}

	if trailer, ok := rw.rewrite(d.Trailer).(Dict); ok {
		d.Trailer = trailer
	}
}

type rewriter struct {
	fn   func(Object) Object
	done map[containerID]Object
}

// containerID identifies the storage behind an array, a dictionary or a
// stream.  Two slices share an ID if they have the same start, length and
// capacity.
type containerID struct {
	kind     reflect.Kind
	ptr      uintptr
	len, cap int
}

func getContainerID(obj Object) (containerID, bool) {
	switch x := obj.(type) {
	case Array:
		if cap(x) == 0 {
			return containerID{}, false
		}
		return containerID{reflect.Slice, reflect.ValueOf(x).Pointer(), len(x), cap(x)}, true
	case Dict:
		if x == nil {
			return containerID{}, false
		}
		return containerID{kind: reflect.Map, ptr: reflect.ValueOf(x).Pointer()}, true
	case *Stream:
		if x == nil {
			return containerID{}, false
		}
		return containerID{kind: reflect.Pointer, ptr: reflect.ValueOf(x).Pointer()}, true
	}
	return containerID{}, false
}

func (rw *rewriter) rewrite(obj Object) Object {
	id, isContainer := getContainerID(obj)
	if isContainer {
		if repl, seen := rw.done[id]; seen {
			return repl
		}
	}

	obj = rw.fn(obj)
	if isContainer {
		rw.done[id] = obj
	}

	switch x := obj.(type) {
	case Array:
		for i, elem := range x {
			x[i] = rw.rewrite(elem)
		}
	case Dict:
		for key, val := range x {
			repl := rw.rewrite(val)
			if repl == nil {
				delete(x, key)
			} else {
				x[key] = repl
			}
		}
	case *Stream:
		if dict, ok := rw.rewrite(x.Dict).(Dict); ok {
			x.Dict = dict
		}
	}

	return obj
}

// Reachable returns the set of all references which can be reached from
// the trailer dictionary by following references.
//
// The set includes references to objects which are missing from the object
// table.  Reference cycles are handled correctly: every reference is
// entered at most once.
func (d *Document) Reachable() map[Reference]bool {
	return d.walk(nil)
}

// ReachableObjects iterates over all indirect objects which can be reached
// from the trailer dictionary.  Objects are visited in pre-order, each
// object is visited exactly once.  Missing objects are skipped.
//
// The document must not be modified during the iteration.
func (d *Document) ReachableObjects() iter.Seq2[Reference, Object] {
	return func(yield func(Reference, Object) bool) {
		d.walk(yield)
	}
}

// walk traverses the object graph starting at the trailer, using an
// explicit stack instead of recursion.  If yield is not nil, it is called
// for each reachable indirect object which exists.  The traversal stops
// early if yield returns false.
func (d *Document) walk(yield func(Reference, Object) bool) map[Reference]bool {
	seen := make(map[Reference]bool)

	todo := []Object{d.Trailer}
	for len(todo) > 0 {
		k := len(todo) - 1
		obj := todo[k]
		todo = todo[:k]

		switch x := obj.(type) {
		case Reference:
			if seen[x] {
				continue
			}
			seen[x] = true

			target, ok := d.objects[x]
			if !ok {
				continue
			}
			if yield != nil && !yield(x, target) {
				return seen
			}
			todo = append(todo, target)
		case Array:
			for i := len(x) - 1; i >= 0; i-- {
				todo = append(todo, x[i])
			}
		case Dict:
			keys := x.SortedKeys()
			for i := len(keys) - 1; i >= 0; i-- {
				todo = append(todo, x[keys[i]])
			}
		case *Stream:
			todo = append(todo, x.Dict)
		}
	}

	return seen
}
