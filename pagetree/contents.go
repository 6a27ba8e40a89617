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
	"fmt"

	"seehuhn.de/go/pdfedit"
)

// Content returns the content of a page.
//
// If /Contents is an array, the decoded streams are concatenated, separated
// by newline characters.  Streams which cannot be decoded contribute their
// raw data.  If the /Contents entry is absent, null, or an empty array, the
// result is empty.
func Content(r pdfedit.Getter, page pdfedit.Reference) ([]byte, error) {
	dict, err := pdfedit.GetDict(r, page)
	if err != nil {
		return nil, fmt.Errorf("getting page dictionary: %w", err)
	} else if dict == nil {
		return nil, fmt.Errorf("page %s: %w", page, pdfedit.ErrMissing)
	}

	contents, err := pdfedit.Resolve(r, dict["Contents"])
	if err != nil {
		return nil, err
	}

	var a pdfedit.Array
	switch contents := contents.(type) {
	case nil:
		return nil, nil
	case pdfedit.Array:
		a = contents
	default:
		a = pdfedit.Array{contents}
	}

	var res []byte
	needNewline := false
	for _, obj := range a {
		stm, err := pdfedit.GetStream(r, obj)
		if err != nil {
			return nil, err
		} else if stm == nil {
			continue
		}

		data, err := stm.Decoded()
		if err != nil {
			data = stm.Data
		}
		if needNewline {
			res = append(res, '\n')
		}
		res = append(res, data...)
		needNewline = true
	}
	return res, nil
}
