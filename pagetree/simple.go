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
	"math"

	"seehuhn.de/go/pdfedit"
)

// NumPages returns the number of pages in the document, as given by the
// /Count entry of the root of the page tree.
func NumPages(r pdfedit.Source) (int, error) {
	root, err := rootRef(r)
	if err != nil {
		return 0, err
	}
	pageTreeNode, err := pdfedit.GetDict(r, root)
	if err != nil {
		return 0, err
	}

	count, err := pdfedit.GetInteger(r, pageTreeNode["Count"])
	if err != nil {
		return 0, err
	}

	if count < 0 || count > math.MaxInt32 {
		return 0, errInvalidPageTree
	}

	return int(count), nil
}
