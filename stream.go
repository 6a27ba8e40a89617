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
	"errors"
)

// Filters returns the filters listed in the /Filter entry of the stream
// dictionary, in the order in which they must be decoded.  The /Filter
// and /DecodeParms entries must be direct objects.
func (x *Stream) Filters() ([]Filter, error) {
	var names []Name
	switch f := x.Dict["Filter"].(type) {
	case nil:
		return nil, nil
	case Name:
		names = []Name{f}
	case Array:
		for _, elem := range f {
			name, ok := elem.(Name)
			if !ok {
				return nil, wrongType("Name", elem)
			}
			names = append(names, name)
		}
	default:
		return nil, Errorf("invalid /Filter entry %s", Format(f))
	}

	parms := make([]Dict, len(names))
	switch p := x.Dict["DecodeParms"].(type) {
	case nil:
		// pass
	case Dict:
		parms[0] = p
	case Array:
		for i, elem := range p {
			if i >= len(parms) {
				break
			}
			if dict, ok := elem.(Dict); ok {
				parms[i] = dict
			}
		}
	default:
		return nil, Errorf("invalid /DecodeParms entry %s", Format(p))
	}

	res := make([]Filter, len(names))
	for i, name := range names {
		f, err := getFilter(name, parms[i])
		if err != nil {
			return nil, err
		}
		res[i] = f
	}
	return res, nil
}

// Decoded returns the decoded contents of the stream.  The stream itself
// is not modified.
func (x *Stream) Decoded() ([]byte, error) {
	filters, err := x.Filters()
	if err != nil {
		return nil, err
	}
	data := x.Data
	for _, f := range filters {
		data, err = f.Decode(data)
		if err != nil {
			name, _ := f.Info()
			return nil, Errorf("%s: %w", name, err)
		}
	}
	return data, nil
}

// Decompress replaces the stream contents by the decoded contents and
// removes the /Filter and /DecodeParms entries from the stream dictionary.
// If decoding fails, the stream is left unchanged.
func (x *Stream) Decompress() error {
	if x.Dict["Filter"] == nil {
		return nil
	}
	data, err := x.Decoded()
	if err != nil {
		return err
	}
	x.SetPlainContent(data)
	return nil
}

// Compress encodes the stream contents using the filter f.  This has no
// effect if the stream already has a /Filter entry.  The encoded contents
// are only used if they are shorter than the original contents by more
// than minSavings bytes.
func (x *Stream) Compress(f Filter, minSavings int) error {
	if x.Dict["Filter"] != nil {
		return nil
	}
	if x.Dict == nil {
		x.Dict = Dict{}
	}
	if f == nil {
		return errors.New("missing filter")
	}

	enc, err := f.Encode(x.Data)
	if err != nil {
		return err
	}
	if len(enc)+minSavings >= len(x.Data) {
		return nil
	}

	name, parms := f.Info()
	x.Dict["Filter"] = name
	if parms != nil {
		x.Dict["DecodeParms"] = parms
	}
	x.SetContent(enc)
	return nil
}

// SetContent replaces the stream contents by data, which must already be
// encoded using the filters listed in the stream dictionary.
func (x *Stream) SetContent(data []byte) {
	if x.Dict == nil {
		x.Dict = Dict{}
	}
	x.Data = data
	x.Dict["Length"] = Integer(len(data))
}

// SetPlainContent replaces the stream contents by unencoded data and
// removes the /Filter and /DecodeParms entries from the stream dictionary.
func (x *Stream) SetPlainContent(data []byte) {
	if x.Dict != nil {
		delete(x.Dict, "Filter")
		delete(x.Dict, "DecodeParms")
	}
	x.SetContent(data)
}
