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

package pagetree

import (
	"errors"

	"seehuhn.de/go/pdfedit"
)

// Delete removes pages from the document.
//
// Page numbers refer to the page tree as it was before the call, so that
// Delete(doc, 1, 2) removes the first two pages.  Page numbers which do not
// correspond to a page are ignored.  A catalog without a /Pages entry is
// treated as an empty page tree.
//
// Each page object is removed using [pdfedit.Document.Delete], which also
// removes the references to the page from the /Kids array of its parent.
// The /Count entries of all ancestors of the page are then decremented.
// Page tree nodes which become empty are not removed.
//
// The references of the deleted page objects are returned.
func Delete(doc *pdfedit.Document, pageNumbers ...int) ([]pdfedit.Reference, error) {
	index, err := Index(doc)
	if errors.Is(err, errInvalidPageTree) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var deleted []pdfedit.Reference
	for _, pageNo := range pageNumbers {
		ref, ok := index[pageNo]
		if !ok {
			continue
		}
		page, ok := doc.Delete(ref)
		if !ok {
			continue
		}
		deleted = append(deleted, ref)

		pageDict, _ := page.(pdfedit.Dict)
		decrementCounts(doc, pageDict["Parent"])
	}
	return deleted, nil
}

// decrementCounts reduces the /Count entry of the page tree node parent
// and of all its ancestors by one.
func decrementCounts(doc *pdfedit.Document, parent pdfedit.Object) {
	seen := make(map[pdfedit.Reference]bool)
	for {
		ref, ok := parent.(pdfedit.Reference)
		if !ok || seen[ref] {
			return
		}
		seen[ref] = true

		obj, _ := doc.Get(ref)
		node, ok := obj.(pdfedit.Dict)
		if !ok {
			return
		}
		if count, ok := node["Count"].(pdfedit.Integer); ok {
			node["Count"] = count - 1
		}
		parent = node["Parent"]
	}
}
