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
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/pdfedit/logger"
)

// ChangeContentStream replaces the contents of the stream ref by the given,
// unencoded data.  Afterwards, the stream is compressed using the configured
// filter, where this saves space.  Compression errors are ignored, since
// the stream remains valid without compression.
//
// If ref does not refer to a stream, nothing is changed.
func (d *Document) ChangeContentStream(ref Reference, content []byte) {
	stm, ok := d.objects[ref].(*Stream)
	if !ok || stm == nil {
		return
	}
	stm.SetPlainContent(content)
	d.compressQuietly(ref, stm)
}

// ChangePageContent replaces the content of a page.
//
// If the /Contents entry of the page refers to a single stream, either
// directly or as the only element of an array, the contents of this stream
// are replaced.  Otherwise a new content stream is allocated and /Contents
// is set to refer to the new stream only.  The previous content streams are
// not removed from the document.
func (d *Document) ChangePageContent(page Reference, content []byte) error {
	pageDict, err := d.GetDict(page)
	if err != nil {
		return Wrap(err, "page "+page.String())
	}
	contents, ok := pageDict["Contents"]
	if !ok || contents == nil {
		return Wrap(fmt.Errorf("%w: /Contents", ErrMissing), "page "+page.String())
	}

	switch c := contents.(type) {
	case Reference:
		d.ChangeContentStream(c, content)
	case Array:
		if len(c) == 1 {
			if ref, ok := c[0].(Reference); ok {
				d.ChangeContentStream(ref, content)
			}
			return nil
		}
		stm := NewStream(Dict{}, content)
		ref := d.Add(stm)
		d.compressQuietly(ref, stm)
		pageDict["Contents"] = ref
	}
	return nil
}

func (d *Document) compressQuietly(ref Reference, stm *Stream) {
	if !stm.AllowCompression {
		return
	}
	err := stm.Compress(d.cfg.compressFilter(), d.cfg.MinSavings)
	if err != nil {
		d.log(logger.DebugLevel, "stream left uncompressed",
			"ref", ref, "error", err)
	}
}

// WriteStream writes the contents of the stream ref to w.
//
// If decompress is true, the decoded stream contents are written.  If
// decoding fails, the raw stream contents are written instead.
func (d *Document) WriteStream(w io.Writer, ref Reference, decompress bool) error {
	stm, err := d.getStream(ref)
	if err != nil {
		return err
	}
	return d.writeStream(w, ref, stm, decompress)
}

// ExtractStream writes the contents of the stream ref to a new file at
// the given path.  Decompression is handled as for [Document.WriteStream].
// If ref does not refer to a stream, no file is created.
func (d *Document) ExtractStream(ref Reference, decompress bool, path string) (err error) {
	stm, err := d.getStream(ref)
	if err != nil {
		return err
	}

	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err2 := fd.Close()
		if err == nil {
			err = err2
		}
	}()

	return d.writeStream(fd, ref, stm, decompress)
}

func (d *Document) getStream(ref Reference) (*Stream, error) {
	obj := d.objects[ref]
	if obj == nil {
		return nil, Wrap(ErrMissing, ref.String())
	}
	stm, ok := obj.(*Stream)
	if !ok {
		return nil, Wrap(wrongType("Stream", obj), ref.String())
	}
	return stm, nil
}

func (d *Document) writeStream(w io.Writer, ref Reference, stm *Stream, decompress bool) error {
	data := stm.Data
	if decompress {
		plain, err := stm.Decoded()
		if err == nil {
			data = plain
		} else {
			d.log(logger.InfoLevel, "writing undecoded stream data",
				"ref", ref, "error", err)
		}
	}
	_, err := w.Write(data)
	return err
}
