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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStreamCompress(t *testing.T) {
	data := bytes.Repeat([]byte("0 0 m 100 100 l S\n"), 50)
	stm := NewStream(Dict{"Type": Name("Test")}, data)

	err := stm.Compress(FilterFlate{}, 19)
	if err != nil {
		t.Fatal(err)
	}
	if stm.Dict["Filter"] != Name("FlateDecode") {
		t.Fatalf("wrong /Filter: %v", stm.Dict["Filter"])
	}
	if stm.Dict["Length"] != Integer(len(stm.Data)) {
		t.Errorf("wrong /Length %v for %d bytes", stm.Dict["Length"], len(stm.Data))
	}
	if len(stm.Data) >= len(data) {
		t.Errorf("data not compressed: %d >= %d", len(stm.Data), len(data))
	}

	// compressing twice has no effect
	enc := bytes.Clone(stm.Data)
	err = stm.Compress(FilterASCIIHex{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(stm.Data, enc) {
		t.Error("compressed stream was encoded again")
	}

	err = stm.Decompress()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(data, stm.Data); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
	want := Dict{"Type": Name("Test"), "Length": Integer(len(data))}
	if d := cmp.Diff(want, stm.Dict); d != "" {
		t.Errorf("wrong stream dict (-want +got):\n%s", d)
	}
}

func TestStreamCompressMinSavings(t *testing.T) {
	data := []byte("short content")
	stm := NewStream(nil, data)

	err := stm.Compress(FilterFlate{}, 19)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := stm.Dict["Filter"]; ok {
		t.Error("short stream was compressed")
	}
	if !bytes.Equal(stm.Data, data) {
		t.Error("short stream was modified")
	}
}

func TestStreamFilterChain(t *testing.T) {
	plain := []byte("BT /F1 12 Tf (Hello) Tj ET")
	flate, err := FilterFlate{}.Encode(plain)
	if err != nil {
		t.Fatal(err)
	}
	hex, err := FilterASCIIHex{}.Encode(flate)
	if err != nil {
		t.Fatal(err)
	}

	stm := NewStream(Dict{
		"Filter": Array{Name("ASCIIHexDecode"), Name("FlateDecode")},
	}, hex)
	out, err := stm.Decoded()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != string(plain) {
		t.Errorf("got %q, want %q", out, plain)
	}
	if !bytes.Equal(stm.Data, hex) {
		t.Error("Decoded modified the stream")
	}
}

func TestStreamDecompressFailure(t *testing.T) {
	garbage := []byte("this is not zlib data")
	stm := NewStream(Dict{"Filter": Name("FlateDecode")}, garbage)

	err := stm.Decompress()
	if err == nil {
		t.Fatal("invalid data not detected")
	}
	if stm.Dict["Filter"] != Name("FlateDecode") {
		t.Error("/Filter removed after failure")
	}
	if !bytes.Equal(stm.Data, garbage) {
		t.Error("data modified after failure")
	}

	stm = NewStream(Dict{"Filter": Name("DCTDecode")}, garbage)
	err = stm.Decompress()
	if _, ok := err.(*UnsupportedFilterError); !ok {
		t.Errorf("wrong error %v", err)
	}
}

func TestStreamDecodeParms(t *testing.T) {
	raw := []byte{2, 5, 6, 2, 1, 1}
	enc, err := FilterFlate{}.Encode(raw)
	if err != nil {
		t.Fatal(err)
	}
	stm := NewStream(Dict{
		"Filter":      Array{Name("FlateDecode")},
		"DecodeParms": Array{Dict{"Predictor": Integer(15), "Columns": Integer(2)}},
	}, enc)

	err = stm.Decompress()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]byte{5, 6, 6, 7}, stm.Data); d != "" {
		t.Errorf("unexpected data (-want +got):\n%s", d)
	}
	if _, ok := stm.Dict["DecodeParms"]; ok {
		t.Error("/DecodeParms not removed")
	}
}

func TestSetContent(t *testing.T) {
	stm := NewStream(Dict{"Filter": Name("FlateDecode"), "DecodeParms": Dict{}}, nil)

	stm.SetContent([]byte("abc"))
	if stm.Dict["Filter"] == nil || stm.Dict["Length"] != Integer(3) {
		t.Errorf("unexpected dict after SetContent: %v", stm.Dict)
	}

	stm.SetPlainContent([]byte("abcd"))
	want := Dict{"Length": Integer(4)}
	if d := cmp.Diff(want, stm.Dict); d != "" {
		t.Errorf("unexpected dict after SetPlainContent (-want +got):\n%s", d)
	}
}
