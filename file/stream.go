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
	"crypto/md5"
	"time"

	"seehuhn.de/go/pdfedit"
)

// PDF 2.0 sections: 7.11.4

// Stream represents an embedded file stream.
type Stream struct {
	// MimeType (optional) specifies the MIME media type of the embedded file.
	//
	// This corresponds to the /Subtype entry in the PDF dictionary.
	MimeType string

	// Size (optional) specifies the uncompressed size of the embedded file in
	// bytes. A zero value means the Size entry is omitted from the PDF
	// dictionary.
	Size int64

	// CreationDate (optional) specifies when the embedded file was created.
	CreationDate time.Time

	// ModDate (optional) specifies when the embedded file was last modified.
	ModDate time.Time

	// CheckSum (optional) contains the MD5 checksum of the uncompressed
	// embedded file. Must be exactly 16 bytes when present.
	CheckSum []byte

	// Data is the content of the embedded file.
	Data []byte
}

// NewStream returns an embedded file stream for the given data.  Size
// and CheckSum are set from the data.
func NewStream(data []byte, modTime time.Time) *Stream {
	sum := md5.Sum(data)
	return &Stream{
		Size:     int64(len(data)),
		ModDate:  modTime,
		CheckSum: sum[:],
		Data:     data,
	}
}

// DecodeStream reads an embedded file stream.  The file data is decoded;
// if this fails, an error is returned.
func DecodeStream(r pdfedit.Getter, obj pdfedit.Object) (*Stream, error) {
	stream, err := pdfedit.GetStream(r, obj)
	if err != nil {
		return nil, err
	} else if stream == nil {
		return nil, pdfedit.Errorf("missing embedded file stream")
	}

	result := &Stream{}

	subtype, err := pdfedit.GetName(r, stream.Dict["Subtype"])
	if err != nil {
		return nil, err
	}
	result.MimeType = string(subtype)

	params, err := pdfedit.GetDict(r, stream.Dict["Params"])
	if err != nil {
		return nil, err
	}
	if size, _ := pdfedit.GetInteger(r, params["Size"]); size > 0 {
		result.Size = int64(size)
	}
	if s, _ := pdfedit.GetString(r, params["CreationDate"]); s != nil {
		result.CreationDate, _ = s.AsDate()
	}
	if s, _ := pdfedit.GetString(r, params["ModDate"]); s != nil {
		result.ModDate, _ = s.AsDate()
	}
	if sum, _ := pdfedit.GetString(r, params["CheckSum"]); len(sum) == md5.Size {
		result.CheckSum = []byte(sum)
	}

	result.Data, err = stream.Decoded()
	if err != nil {
		return nil, err
	}

	return result, nil
}

// AsStream returns the embedded file stream as an uncompressed PDF stream
// object.
func (s *Stream) AsStream() (*pdfedit.Stream, error) {
	if len(s.CheckSum) != 0 && len(s.CheckSum) != md5.Size {
		return nil, pdfedit.Errorf("CheckSum must be exactly 16 bytes when present")
	}

	dict := pdfedit.Dict{
		"Type": pdfedit.Name("EmbeddedFile"),
		"DL":   pdfedit.Integer(len(s.Data)),
	}
	if s.MimeType != "" {
		dict["Subtype"] = pdfedit.Name(s.MimeType)
	}

	params := pdfedit.Dict{}
	if s.Size > 0 {
		params["Size"] = pdfedit.Integer(s.Size)
	}
	if !s.CreationDate.IsZero() {
		params["CreationDate"] = pdfedit.Date(s.CreationDate)
	}
	if !s.ModDate.IsZero() {
		params["ModDate"] = pdfedit.Date(s.ModDate)
	}
	if len(s.CheckSum) > 0 {
		params["CheckSum"] = pdfedit.String(s.CheckSum)
	}
	if len(params) > 0 {
		dict["Params"] = params
	}

	return pdfedit.NewStream(dict, s.Data), nil
}
