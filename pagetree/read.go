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

// Package pagetree reads and edits the page tree of a PDF document.
//
// Pages are numbered starting from 1, in the order in which they appear
// in the page tree.
package pagetree

import (
	"errors"

	"seehuhn.de/go/pdfedit"
)

// PDF 2.0 sections: 7.7.3

// FindPages returns the references of all page objects in the document,
// in the order in which they appear in the page tree.
//
// Kids which are not references, and page tree nodes which are visited a
// second time, are ignored.
func FindPages(r pdfedit.Source) ([]pdfedit.Reference, error) {
	root, err := rootRef(r)
	if err != nil {
		return nil, err
	}

	var res []pdfedit.Reference
	todo := []pdfedit.Reference{root}
	seen := map[pdfedit.Reference]bool{
		root: true,
	}
	for len(todo) > 0 {
		k := len(todo) - 1
		ref := todo[k]
		todo = todo[:k]

		node, err := pdfedit.GetDict(r, ref)
		if err != nil {
			return nil, err
		} else if node == nil {
			continue
		}

		if !isPageTreeNode(r, node) {
			res = append(res, ref)
			continue
		}

		kids, err := pdfedit.GetArray(r, node["Kids"])
		if err != nil {
			return nil, err
		}
		for i := len(kids) - 1; i >= 0; i-- {
			kidRef, ok := kids[i].(pdfedit.Reference)
			if ok && !seen[kidRef] {
				todo = append(todo, kidRef)
				seen[kidRef] = true
			}
		}
	}

	return res, nil
}

// Index maps page numbers to the references of the corresponding page
// objects.  The first page has number 1.
func Index(r pdfedit.Source) (map[int]pdfedit.Reference, error) {
	pages, err := FindPages(r)
	if err != nil {
		return nil, err
	}
	res := make(map[int]pdfedit.Reference, len(pages))
	for i, ref := range pages {
		res[i+1] = ref
	}
	return res, nil
}

// isPageTreeNode reports whether node is an intermediate node of the page
// tree.  Nodes without a /Type entry are classified by the presence of
// /Kids.
func isPageTreeNode(r pdfedit.Getter, node pdfedit.Dict) bool {
	tp, _ := pdfedit.GetName(r, node["Type"])
	switch tp {
	case "Pages":
		return true
	case "Page":
		return false
	default:
		_, hasKids := node["Kids"]
		return hasKids
	}
}

func rootRef(r pdfedit.Source) (pdfedit.Reference, error) {
	catalog, err := r.Catalog()
	if err != nil {
		return 0, err
	}
	root, ok := catalog["Pages"].(pdfedit.Reference)
	if !ok {
		return 0, errInvalidPageTree
	}
	return root, nil
}

var errInvalidPageTree = errors.New("invalid page tree")
