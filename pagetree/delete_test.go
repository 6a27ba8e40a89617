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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfedit"
)

func TestDeleteMiddlePage(t *testing.T) {
	doc, pages := makeTree(3, 3)

	deleted, err := Delete(doc, 2)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]pdfedit.Reference{pages[1]}, deleted); d != "" {
		t.Errorf("wrong deleted pages (-want +got):\n%s", d)
	}

	n, err := NumPages(doc)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("wrong page count %d", n)
	}
	remaining, err := FindPages(doc)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]pdfedit.Reference{pages[0], pages[2]}, remaining); d != "" {
		t.Errorf("wrong remaining pages (-want +got):\n%s", d)
	}
	if doc.Has(pages[1]) {
		t.Error("page object not removed")
	}
}

func TestDeleteAncestorCounts(t *testing.T) {
	// 8 pages, 3 levels of intermediate nodes
	doc, pages := makeTree(8, 2)

	var path []pdfedit.Reference
	obj := pdfedit.Object(pages[5])
	for {
		dict, _ := pdfedit.GetDict(doc, obj)
		parent, ok := dict["Parent"].(pdfedit.Reference)
		if !ok {
			break
		}
		path = append(path, parent)
		obj = parent
	}
	if len(path) != 3 {
		t.Fatalf("wrong tree depth %d", len(path))
	}
	before := counts(doc, path)

	_, err := Delete(doc, 6)
	if err != nil {
		t.Fatal(err)
	}

	after := counts(doc, path)
	for i := range path {
		if after[i] != before[i]-1 {
			t.Errorf("level %d: count %d -> %d", i, before[i], after[i])
		}
	}

	// nodes not on the path are unchanged
	sibling, _ := pdfedit.GetDict(doc, pages[0])
	node, _ := pdfedit.GetDict(doc, sibling["Parent"])
	if node["Count"] != pdfedit.Integer(2) {
		t.Errorf("unrelated node changed: %v", node["Count"])
	}
}

func TestDeleteBatch(t *testing.T) {
	doc, pages := makeTree(5, 2)

	// page numbers refer to the original layout; 9 and 0 do not exist
	deleted, err := Delete(doc, 1, 9, 2, 0, 5, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []pdfedit.Reference{pages[0], pages[1], pages[4]}
	if d := cmp.Diff(want, deleted); d != "" {
		t.Errorf("wrong deleted pages (-want +got):\n%s", d)
	}

	remaining, err := FindPages(doc)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]pdfedit.Reference{pages[2], pages[3]}, remaining); d != "" {
		t.Errorf("wrong remaining pages (-want +got):\n%s", d)
	}
	n, err := NumPages(doc)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("wrong page count %d", n)
	}
}

func TestDeleteParentCycle(t *testing.T) {
	doc, pages := makeTree(2, 2)
	page, _ := doc.GetDict(pages[0])
	root := page["Parent"].(pdfedit.Reference)
	rootDict, _ := doc.GetDict(root)
	rootDict["Parent"] = root

	_, err := Delete(doc, 1)
	if err != nil {
		t.Fatal(err)
	}
	if rootDict["Count"] != pdfedit.Integer(1) {
		t.Errorf("wrong count %v", rootDict["Count"])
	}
}

func counts(doc *pdfedit.Document, refs []pdfedit.Reference) []pdfedit.Integer {
	res := make([]pdfedit.Integer, len(refs))
	for i, ref := range refs {
		dict, _ := doc.GetDict(ref)
		res[i], _ = dict["Count"].(pdfedit.Integer)
	}
	return res
}

func TestDeleteWithoutPageTree(t *testing.T) {
	doc := pdfedit.NewDocument()
	catalog := doc.Add(pdfedit.Dict{"Type": pdfedit.Name("Catalog")})
	doc.Trailer["Root"] = catalog

	deleted, err := Delete(doc, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(deleted) != 0 {
		t.Errorf("deleted %d pages from a document without pages", len(deleted))
	}
	if doc.Len() != 1 {
		t.Errorf("document has %d objects, want 1", doc.Len())
	}
}
