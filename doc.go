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

// Package pdfedit provides in-memory editing of the object graph of PDF
// files.
//
// A [Document] holds the indirect objects of a PDF file, indexed by
// [Reference], together with the trailer dictionary.  Reading and writing
// PDF files is not part of this package; the caller populates the document
// and serializes it again after editing.
//
// The following operations are available on a document:
//
//	doc.Prune()              // remove unreachable objects
//	doc.Delete(ref)          // remove an object and all references to it
//	doc.Renumber(start)      // assign consecutive object numbers
//	doc.Compress()           // encode all compressible streams
//	doc.Decompress()         // decode all streams
//	doc.ChangePageContent(page, content)
//	doc.ExtractStream(ref, decompress, path)
//
// The subpackage pagetree deletes pages from the page tree, and the
// subpackage file manages embedded files.
//
// The following types implement the PDF object types.
// All of these implement the [Object] interface:
//
//	Array
//	Bool
//	Dict
//	HexString
//	Integer
//	Name
//	Real
//	Reference
//	*Stream
//	String
//
// The Go value nil represents the PDF null object.
package pdfedit
