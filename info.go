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
	"errors"

	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfedit/logger"
)

// PDF 2.0 sections: 14.3

// InfoDict returns the document information dictionary.  The dictionary
// may be stored directly in the trailer or as an indirect object.
// If the document has no information dictionary, nil is returned.
func (d *Document) InfoDict() Dict {
	switch info := d.Trailer["Info"].(type) {
	case Dict:
		return info
	case Reference:
		dict, _ := d.objects[info].(Dict)
		return dict
	default:
		return nil
	}
}

// SetProducer sets the /Producer entry in the document information
// dictionary.  If the document has no information dictionary, it is left
// unchanged.
//
// If the document catalog refers to an XMP metadata stream, the pdf:Producer
// property in the metadata is updated as well.  Problems with the metadata
// stream are logged and otherwise ignored.
func (d *Document) SetProducer(producer string) {
	if info := d.InfoDict(); info != nil {
		info["Producer"] = TextString(producer)
	}

	catalog, err := d.Catalog()
	if err != nil {
		return
	}
	ref, ok := catalog["Metadata"].(Reference)
	if !ok {
		return
	}
	err = d.setXMPProducer(ref, producer)
	if err != nil {
		d.log(logger.ErrorLevel, "cannot update XMP metadata",
			"ref", ref, "error", err)
	}
}

func (d *Document) setXMPProducer(ref Reference, producer string) error {
	stm, err := d.getStream(ref)
	if err != nil {
		return err
	}
	body, err := stm.Decoded()
	if err != nil {
		return err
	}

	packet, err := xmp.Read(bytes.NewReader(body))
	if err != nil {
		return err
	}
	if packet == nil {
		return errors.New("empty XMP packet")
	}

	ns := &pdfNamespace{}
	packet.Get(ns)
	ns.Producer = xmp.NewAgentName(producer)
	packet.Set(ns)

	buf := &bytes.Buffer{}
	err = packet.Write(buf, nil)
	if err != nil {
		return err
	}
	stm.SetPlainContent(buf.Bytes())
	return nil
}

// pdfNamespace holds the properties of the XMP "Adobe PDF" schema.
type pdfNamespace struct {
	_          xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_          xmp.Prefix    `xmp:"pdf"`
	Keywords   xmp.Text
	PDFVersion xmp.Text
	Producer   xmp.AgentName
	Trapped    xmp.Text
}
