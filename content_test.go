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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChangeContentStream(t *testing.T) {
	doc := makeTestDocument()
	ref := NewReference(4, 0)

	doc.ChangeContentStream(ref, testContent)
	stm, _ := GetStream(doc, ref)
	if stm.Dict["Filter"] != Name("FlateDecode") {
		t.Errorf("new content not compressed: %v", stm.Dict)
	}
	plain, err := stm.Decoded()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(plain, testContent) {
		t.Error("wrong content")
	}

	// short content is stored without compression
	doc.ChangeContentStream(ref, []byte("q Q"))
	if stm.Dict["Filter"] != nil || string(stm.Data) != "q Q" {
		t.Errorf("unexpected stream %s: %q", Format(stm.Dict), stm.Data)
	}

	// non-streams are left alone
	doc.ChangeContentStream(NewReference(6, 0), []byte("q Q"))
	obj, _ := doc.Get(NewReference(6, 0))
	if _, ok := obj.(Array); !ok {
		t.Errorf("object 6 changed to %v", obj)
	}
}

func TestChangePageContentSingle(t *testing.T) {
	for _, contents := range []Object{
		NewReference(4, 0),
		Array{NewReference(4, 0)},
	} {
		doc := makeTestDocument()
		page := NewReference(3, 0)
		pageDict, _ := doc.GetDict(page)
		pageDict["Contents"] = contents
		n := doc.Len()

		err := doc.ChangePageContent(page, []byte("0 g"))
		if err != nil {
			t.Fatal(err)
		}
		stm, _ := GetStream(doc, NewReference(4, 0))
		if string(stm.Data) != "0 g" {
			t.Errorf("%s: content not replaced", Format(contents))
		}
		if doc.Len() != n {
			t.Errorf("%s: objects added", Format(contents))
		}
		if d := cmp.Diff(contents, pageDict["Contents"]); d != "" {
			t.Errorf("/Contents changed (-want +got):\n%s", d)
		}
	}
}

func TestChangePageContentMultiple(t *testing.T) {
	for _, contents := range []Array{
		{NewReference(4, 0), NewReference(7, 0)},
		{},
	} {
		doc := makeTestDocument()
		doc.Put(NewReference(7, 0), NewStream(nil, []byte("Q")))
		page := NewReference(3, 0)
		pageDict, _ := doc.GetDict(page)
		pageDict["Contents"] = contents

		err := doc.ChangePageContent(page, []byte("0 g"))
		if err != nil {
			t.Fatal(err)
		}
		newRef, ok := pageDict["Contents"].(Reference)
		if !ok {
			t.Fatalf("%s: /Contents is %v", Format(contents), pageDict["Contents"])
		}
		if newRef == NewReference(4, 0) || newRef == NewReference(7, 0) {
			t.Errorf("%s: existing stream reused", Format(contents))
		}
		stm, err := GetStream(doc, newRef)
		if err != nil || stm == nil || string(stm.Data) != "0 g" {
			t.Errorf("%s: wrong new stream %v, %v", Format(contents), stm, err)
		}

		// the old streams are kept until the next Prune
		old, _ := GetStream(doc, NewReference(4, 0))
		if string(old.Data) != "0 0 m 10 10 l S" {
			t.Errorf("%s: old stream modified", Format(contents))
		}
		removed := doc.Prune()
		want := []Reference{NewReference(4, 0), NewReference(6, 0), NewReference(7, 0)}
		if d := cmp.Diff(want, removed); d != "" {
			t.Errorf("%s: wrong orphans (-want +got):\n%s", Format(contents), d)
		}
	}
}

func TestChangePageContentErrors(t *testing.T) {
	doc := makeTestDocument()
	pageDict, _ := doc.GetDict(NewReference(3, 0))
	delete(pageDict, "Contents")

	err := doc.ChangePageContent(NewReference(3, 0), []byte("0 g"))
	if !errors.Is(err, ErrMissing) {
		t.Errorf("missing /Contents: wrong error %v", err)
	}

	err = doc.ChangePageContent(NewReference(6, 0), []byte("0 g"))
	if !errors.Is(err, ErrWrongType) {
		t.Errorf("page is array: wrong error %v", err)
	}
}

func TestWriteStream(t *testing.T) {
	doc := NewDocument()
	enc, err := FilterFlate{}.Encode(testContent)
	if err != nil {
		t.Fatal(err)
	}
	ref := doc.Add(NewStream(Dict{"Filter": Name("FlateDecode")}, enc))
	broken := doc.Add(NewStream(Dict{"Filter": Name("DCTDecode")}, []byte{0xFF, 0xD8}))

	cases := []struct {
		ref        Reference
		decompress bool
		want       []byte
	}{
		{ref, false, enc},
		{ref, true, testContent},
		{broken, true, []byte{0xFF, 0xD8}},
	}
	for _, c := range cases {
		buf := &bytes.Buffer{}
		err := doc.WriteStream(buf, c.ref, c.decompress)
		if err != nil {
			t.Error(err)
			continue
		}
		if !bytes.Equal(buf.Bytes(), c.want) {
			t.Errorf("%s %t: wrong data", c.ref, c.decompress)
		}
	}
}

func TestExtractStream(t *testing.T) {
	doc := makeTestDocument()
	dir := t.TempDir()

	path := filepath.Join(dir, "content.bin")
	err := doc.ExtractStream(NewReference(4, 0), true, path)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "0 0 m 10 10 l S" {
		t.Errorf("wrong file contents %q", data)
	}

	path = filepath.Join(dir, "none.bin")
	err = doc.ExtractStream(NewReference(3, 0), false, path)
	if err == nil {
		t.Error("non-stream extracted")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("output file created for non-stream")
	}

	err = doc.ExtractStream(NewReference(4, 0), false, filepath.Join(dir, "missing", "x.bin"))
	if err == nil {
		t.Error("I/O error not reported")
	}
}
