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
	"fmt"
	"iter"
	"math"
	"slices"

	"seehuhn.de/go/pdfedit/logger"
)

// Document is an in-memory representation of the object graph of a PDF
// file.
//
// The document owns all objects stored in it.  Objects refer to each other
// only through [Reference] values, which are resolved using the object
// table of the document.  References to objects which are not present in
// the table are permitted; they resolve to null.
//
// A Document is not safe for concurrent use.  Every method which modifies
// the document requires exclusive access for its duration.
type Document struct {
	// Trailer is the trailer dictionary of the document.  It holds the
	// entry points into the object graph, in particular /Root (the document
	// catalog) and /Info (the document information dictionary).
	Trailer Dict

	objects map[Reference]Object
	maxID   uint32

	cfg *Config
	log logger.LogFunc
}

// NewDocument creates an empty document using the default configuration.
func NewDocument() *Document {
	doc, _ := New(nil)
	return doc
}

// New creates an empty document.  If cfg is nil, the default
// configuration is used.  An invalid configuration results in an error.
func New(cfg *Config) (*Document, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Discard
	}

	doc := &Document{
		Trailer: Dict{},
		objects: make(map[Reference]Object),
		cfg:     cfg,
		log:     log,
	}
	return doc, nil
}

// Config returns the configuration of the document.
func (d *Document) Config() *Config {
	return d.cfg
}

// MaxID returns the largest object number which has been used in the
// document so far.
func (d *Document) MaxID() uint32 {
	return d.maxID
}

// Len returns the number of objects in the object table.
func (d *Document) Len() int {
	return len(d.objects)
}

// Alloc allocates a new object number for an indirect object.
// The generation number of the returned reference is 0.
//
// Alloc panics if all object numbers up to 2^32-1 are in use.
func (d *Document) Alloc() Reference {
	for {
		if d.maxID == math.MaxUint32 {
			panic("pdfedit: no object numbers left")
		}
		d.maxID++
		ref := NewReference(d.maxID, 0)
		if _, ok := d.objects[ref]; !ok {
			return ref
		}
	}
}

// Add stores obj as a new indirect object and returns its reference.
//
// The document takes ownership of obj.  Arrays and dictionaries inside obj
// must not be stored anywhere else in the document, since passes like
// [Document.Rewrite] and [Document.Delete] modify them in place.  Use
// [Reference] values to share objects.
func (d *Document) Add(obj Object) Reference {
	ref := d.Alloc()
	d.objects[ref] = obj
	return ref
}

// Put stores obj under the given reference, replacing any previous object.
// If obj is nil, the object is removed from the table instead.
// The document takes ownership of obj, as described for [Document.Add].
func (d *Document) Put(ref Reference, obj Object) {
	if obj == nil {
		delete(d.objects, ref)
		return
	}
	d.objects[ref] = obj
	if n := ref.Number(); n > d.maxID {
		d.maxID = n
	}
}

// Get returns the object stored under ref.  If there is no such object,
// Get returns nil and no error.
//
// This implements the [Getter] interface.
func (d *Document) Get(ref Reference) (Object, error) {
	return d.objects[ref], nil
}

// Has reports whether an object is stored under ref.
func (d *Document) Has(ref Reference) bool {
	_, ok := d.objects[ref]
	return ok
}

// GetDict returns the dictionary stored under ref.  For a stream object,
// the stream dictionary is returned.  Since dictionaries are maps,
// modifications to the returned value change the stored object.
func (d *Document) GetDict(ref Reference) (Dict, error) {
	obj, ok := d.objects[ref]
	if !ok {
		return nil, &MalformedFileError{
			Err: fmt.Errorf("%w: %s", ErrMissing, ref),
		}
	}
	switch x := obj.(type) {
	case Dict:
		return x, nil
	case *Stream:
		return x.Dict, nil
	default:
		return nil, Wrap(wrongType("Dict", obj), ref.String())
	}
}

// References returns the references of all objects in the table, sorted
// by object number and generation.
func (d *Document) References() []Reference {
	refs := make([]Reference, 0, len(d.objects))
	for ref := range d.objects {
		refs = append(refs, ref)
	}
	slices.SortFunc(refs, Reference.Compare)
	return refs
}

// Objects iterates over all objects in the table, in the order of
// [Document.References].
func (d *Document) Objects() iter.Seq2[Reference, Object] {
	return func(yield func(Reference, Object) bool) {
		for _, ref := range d.References() {
			obj, ok := d.objects[ref]
			if !ok {
				continue
			}
			if !yield(ref, obj) {
				return
			}
		}
	}
}

// Catalog returns the document catalog, i.e. the dictionary referenced by
// the /Root entry of the trailer.
func (d *Document) Catalog() (Dict, error) {
	catalog, err := GetDict(d, d.Trailer["Root"])
	if err != nil {
		return nil, Wrap(err, "document catalog")
	}
	if catalog == nil {
		return nil, &MalformedFileError{Err: errNoCatalog}
	}
	return catalog, nil
}
