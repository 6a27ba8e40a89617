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
	"compress/zlib"
	"encoding/ascii85"
	"errors"
	"io"

	"seehuhn.de/go/pdfedit/internal/filter/asciihex"
	"seehuhn.de/go/pdfedit/internal/filter/predict"
	"seehuhn.de/go/pdfedit/internal/filter/runlength"
)

// Filter represents a PDF stream filter.
//
// Filters operate on complete, in-memory stream contents.
type Filter interface {
	// Info returns the name of the filter and the /DecodeParms dictionary
	// to be stored in the stream dictionary.  The dictionary is nil if no
	// parameters are needed.
	Info() (Name, Dict)

	// Encode applies the filter to data.
	Encode(data []byte) ([]byte, error)

	// Decode reverses the filter.
	Decode(data []byte) ([]byte, error)
}

// FilterFlate is the FlateDecode filter, using zlib compression.
type FilterFlate struct {
	// Level is the zlib compression level used by Encode.  The value 0
	// selects the default compression level; zlib.NoCompression cannot be
	// selected.
	Level int

	// Parms are the decode parameters used by Decode.  These can specify a
	// predictor.
	Parms Dict
}

// Info implements the [Filter] interface.
func (f FilterFlate) Info() (Name, Dict) {
	return "FlateDecode", nil
}

// Encode implements the [Filter] interface.
func (f FilterFlate) Encode(data []byte) ([]byte, error) {
	level := f.Level
	if level == 0 {
		level = zlib.DefaultCompression
	}
	buf := &bytes.Buffer{}
	zw, err := zlib.NewWriterLevel(buf, level)
	if err != nil {
		return nil, err
	}
	_, err = zw.Write(data)
	if err != nil {
		return nil, err
	}
	err = zw.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode implements the [Filter] interface.
func (f FilterFlate) Decode(data []byte) ([]byte, error) {
	params := predict.DefaultParams()
	for key, val := range map[Name]*int{
		"Predictor":        &params.Predictor,
		"Colors":           &params.Colors,
		"BitsPerComponent": &params.BitsPerComponent,
		"Columns":          &params.Columns,
	} {
		if x, ok := f.Parms[key].(Integer); ok {
			*val = int(x)
		}
	}

	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	plain, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}

	return predict.Decode(plain, params)
}

// FilterASCIIHex is the ASCIIHexDecode filter.
type FilterASCIIHex struct{}

// Info implements the [Filter] interface.
func (f FilterASCIIHex) Info() (Name, Dict) {
	return "ASCIIHexDecode", nil
}

// Encode implements the [Filter] interface.
func (f FilterASCIIHex) Encode(data []byte) ([]byte, error) {
	return asciihex.Encode(data, 79), nil
}

// Decode implements the [Filter] interface.
func (f FilterASCIIHex) Decode(data []byte) ([]byte, error) {
	return asciihex.Decode(data)
}

// FilterASCII85 is the ASCII85Decode filter.
type FilterASCII85 struct{}

// Info implements the [Filter] interface.
func (f FilterASCII85) Info() (Name, Dict) {
	return "ASCII85Decode", nil
}

// Encode implements the [Filter] interface.
func (f FilterASCII85) Encode(data []byte) ([]byte, error) {
	res := make([]byte, ascii85.MaxEncodedLen(len(data)), ascii85.MaxEncodedLen(len(data))+2)
	n := ascii85.Encode(res, data)
	return append(res[:n], '~', '>'), nil
}

// Decode implements the [Filter] interface.
func (f FilterASCII85) Decode(data []byte) ([]byte, error) {
	data = bytes.TrimLeft(data, " \t\r\n\f\x00")
	data = bytes.TrimPrefix(data, []byte("<~"))
	end := bytes.Index(data, []byte("~>"))
	if end < 0 {
		return nil, errors.New("missing end marker in ASCII85 data")
	}
	return io.ReadAll(ascii85.NewDecoder(bytes.NewReader(data[:end])))
}

// FilterRunLength is the RunLengthDecode filter.
type FilterRunLength struct{}

// Info implements the [Filter] interface.
func (f FilterRunLength) Info() (Name, Dict) {
	return "RunLengthDecode", nil
}

// Encode implements the [Filter] interface.
func (f FilterRunLength) Encode(data []byte) ([]byte, error) {
	return runlength.Encode(data), nil
}

// Decode implements the [Filter] interface.
func (f FilterRunLength) Decode(data []byte) ([]byte, error) {
	return runlength.Decode(data)
}

// getFilter returns the filter with the given name.  Abbreviated filter
// names, as used in inline images, are accepted as well.
func getFilter(name Name, parms Dict) (Filter, error) {
	switch name {
	case "FlateDecode", "Fl":
		return FilterFlate{Parms: parms}, nil
	case "ASCIIHexDecode", "AHx":
		return FilterASCIIHex{}, nil
	case "ASCII85Decode", "A85":
		return FilterASCII85{}, nil
	case "RunLengthDecode", "RL":
		return FilterRunLength{}, nil
	default:
		return nil, &UnsupportedFilterError{Name: name}
	}
}
