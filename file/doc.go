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

// Package file manages embedded files ("attachments") in PDF documents.
//
// Embedded files are listed in the /EmbeddedFiles name tree of the
// document catalog.  Each entry maps a file name to a file specification
// dictionary ([Specification]), whose /EF entry refers to an embedded file
// stream ([Stream]) containing the file data.
//
// Only name trees which consist of a single root node with a /Names array
// are supported.
package file
