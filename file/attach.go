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

package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"seehuhn.de/go/pdfedit"
	"seehuhn.de/go/pdfedit/nametree"
)

// ErrNotFound is returned by [Find] if there is no embedded file with the
// given name.
var ErrNotFound = errors.New("embedded file not found")

// List returns the names of all embedded files in the document.
//
// If the name tree is absent, or if one of its nodes has an unexpected
// type, an empty list is returned.  An error is only returned if the
// document has no catalog.
func List(doc pdfedit.Source) ([]string, error) {
	root, err := embeddedFilesRoot(doc)
	if err != nil {
		return nil, err
	}

	entries, err := nametree.All(doc, root)
	if err != nil {
		return []string{}, nil
	}
	n, _ := nametree.Size(doc, root)
	res := make([]string, 0, n)
	for key := range entries {
		res = append(res, key.AsTextString())
	}
	return res, nil
}

// Find returns the reference of the embedded file stream of the attachment
// with the given name.
func Find(doc pdfedit.Source, name string) (pdfedit.Reference, error) {
	root, err := embeddedFilesRoot(doc)
	if err != nil {
		return 0, err
	}
	entries, err := nametree.All(doc, root)
	if err != nil {
		return 0, ErrNotFound
	}

	for key, value := range entries {
		if key.AsTextString() != name {
			continue
		}
		spec, err := DecodeSpecification(doc, value)
		if err != nil {
			return 0, fmt.Errorf("embedded file %q: %w", name, err)
		}
		if ref, ok := spec.embeddedFile(); ok {
			return ref, nil
		}
	}
	return 0, ErrNotFound
}

// Attach embeds a file into the document.  The file is listed under its base
// name.  The reference of the new file specification dictionary is
// returned.
//
// The file is read completely before the document is modified.  If the
// file cannot be read, or if the document has an /EmbeddedFiles name tree
// which cannot be extended, the document is left unchanged.
func Attach(doc *pdfedit.Document, path string) (pdfedit.Reference, error) {
	data, modTime, err := readFile(path)
	if err != nil {
		return 0, err
	}

	catalog, err := doc.Catalog()
	if err != nil {
		return 0, err
	}
	err = checkNameTree(doc, catalog)
	if err != nil {
		return 0, err
	}

	name := filepath.Base(path)
	stm, err := NewStream(data, modTime).AsStream()
	if err != nil {
		return 0, err
	}
	stmRef := doc.Add(stm)
	_ = doc.CompressStream(stmRef) // the stream is valid without compression

	spec := &Specification{
		FileName:        name,
		FileNameUnicode: name,
		EmbeddedFiles:   map[pdfedit.Name]pdfedit.Reference{"F": stmRef},
	}
	specRef := spec.Embed(doc)

	names := getOrCreateDict(doc, catalog, "Names")
	embedded := getOrCreateDict(doc, names, "EmbeddedFiles")
	nametree.Append(doc, embedded, pdfedit.TextString(name), specRef)

	return specRef, nil
}

func readFile(path string) ([]byte, time.Time, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer fd.Close()

	fi, err := fd.Stat()
	if err != nil {
		return nil, time.Time{}, err
	}
	if fi.IsDir() {
		return nil, time.Time{}, fmt.Errorf("%s: is a directory", path)
	}

	data, err := io.ReadAll(fd)
	if err != nil {
		return nil, time.Time{}, err
	}
	return data, fi.ModTime(), nil
}

// embeddedFilesRoot returns the root node of the /EmbeddedFiles name
// tree.  If the tree cannot be found, nil is returned.
func embeddedFilesRoot(doc pdfedit.Source) (pdfedit.Object, error) {
	catalog, err := doc.Catalog()
	if err != nil {
		return nil, err
	}
	names, err := pdfedit.GetDict(doc, catalog["Names"])
	if err != nil || names == nil {
		return nil, nil
	}
	return names["EmbeddedFiles"], nil
}

// checkNameTree verifies that the /EmbeddedFiles name tree of the document
// can be extended by Attach.
func checkNameTree(r pdfedit.Getter, catalog pdfedit.Dict) error {
	names, err := pdfedit.GetDict(r, catalog["Names"])
	if err != nil {
		return fmt.Errorf("name dictionary: %w", err)
	}
	err = nametree.CheckAppend(r, names["EmbeddedFiles"])
	if err != nil {
		return fmt.Errorf("embedded files name tree: %w", err)
	}
	return nil
}

// getOrCreateDict returns the dictionary stored under key in parent.
// If there is no such dictionary, a new dictionary object is created.
func getOrCreateDict(doc *pdfedit.Document, parent pdfedit.Dict, key pdfedit.Name) pdfedit.Dict {
	switch obj := parent[key].(type) {
	case pdfedit.Dict:
		return obj
	case pdfedit.Reference:
		if dict, err := doc.GetDict(obj); err == nil && dict != nil {
			return dict
		}
	}

	dict := pdfedit.Dict{}
	parent[key] = doc.Add(dict)
	return dict
}
