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
	"maps"
	"slices"

	"seehuhn.de/go/pdfedit"
)

// PDF 2.0 sections: 7.11.3 7.11.4

// Specification represents a PDF file specification dictionary.
type Specification struct {
	// FileName specifies the file path in platform-independent format.
	// Components are separated by forward slashes.
	//
	// This corresponds to the /F entry in the PDF file specification
	// dictionary.
	FileName string

	// FileNameUnicode (optional, PDF 1.7) provides a Unicode version of the
	// file name.
	//
	// This corresponds to the /UF entry in the PDF dictionary.
	FileNameUnicode string

	// Description (optional) provides descriptive text for the file.
	//
	// This corresponds to the /Desc entry in the PDF dictionary.
	Description string

	// EmbeddedFiles maps the keys "F" and/or "UF" to embedded file
	// streams.
	//
	// This corresponds to the /EF entry in the PDF dictionary.
	EmbeddedFiles map[pdfedit.Name]pdfedit.Reference
}

// DecodeSpecification reads a file specification dictionary.
func DecodeSpecification(r pdfedit.Getter, obj pdfedit.Object) (*Specification, error) {
	dict, err := pdfedit.GetDict(r, obj)
	if err != nil {
		return nil, err
	} else if dict == nil {
		return nil, pdfedit.Errorf("missing file specification dictionary")
	}
	if tp, _ := pdfedit.GetName(r, dict["Type"]); tp != "" && tp != "Filespec" && tp != "F" {
		return nil, pdfedit.Errorf("unexpected file specification type %q", tp)
	}

	spec := &Specification{}
	spec.FileName, err = pdfedit.GetTextString(r, dict["F"])
	if err != nil {
		return nil, err
	}
	spec.FileNameUnicode, err = pdfedit.GetTextString(r, dict["UF"])
	if err != nil {
		return nil, err
	}
	spec.Description, err = pdfedit.GetTextString(r, dict["Desc"])
	if err != nil {
		return nil, err
	}

	ef, err := pdfedit.GetDict(r, dict["EF"])
	if err != nil {
		return nil, err
	}
	for key, val := range ef {
		ref, ok := val.(pdfedit.Reference)
		if !ok {
			continue
		}
		if spec.EmbeddedFiles == nil {
			spec.EmbeddedFiles = make(map[pdfedit.Name]pdfedit.Reference)
		}
		spec.EmbeddedFiles[key] = ref
	}

	return spec, nil
}

// Embed stores the file specification dictionary in doc and returns its
// reference.  The /EF dictionary is stored as a separate indirect object.
func (spec *Specification) Embed(doc *pdfedit.Document) pdfedit.Reference {
	dict := pdfedit.Dict{
		"Type": pdfedit.Name("Filespec"),
	}
	if spec.FileName != "" {
		dict["F"] = pdfedit.TextString(spec.FileName)
	}
	if spec.FileNameUnicode != "" {
		dict["UF"] = pdfedit.TextString(spec.FileNameUnicode)
	}
	if spec.Description != "" {
		dict["Desc"] = pdfedit.TextString(spec.Description)
	}
	if len(spec.EmbeddedFiles) > 0 {
		ef := pdfedit.Dict{}
		for key, ref := range spec.EmbeddedFiles {
			ef[key] = ref
		}
		dict["EF"] = doc.Add(ef)
	}
	return doc.Add(dict)
}

// embeddedFile returns the embedded file stream, preferring the Unicode
// file name entry.
func (spec *Specification) embeddedFile() (pdfedit.Reference, bool) {
	for _, key := range []pdfedit.Name{"UF", "F"} {
		if ref, ok := spec.EmbeddedFiles[key]; ok {
			return ref, true
		}
	}
	for _, key := range slices.Sorted(maps.Keys(spec.EmbeddedFiles)) {
		return spec.EmbeddedFiles[key], true
	}
	return 0, false
}
