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

package predict

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPNGUp(t *testing.T) {
	p := Params{Predictor: 12, Colors: 1, BitsPerComponent: 8, Columns: 3}
	in := []byte{
		2, 1, 2, 3,
		2, 1, 1, 1,
		0, 9, 9, 9,
	}
	want := []byte{
		1, 2, 3,
		2, 3, 4,
		9, 9, 9,
	}
	got, err := Decode(in, p)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestPNGSubAverage(t *testing.T) {
	p := Params{Predictor: 15, Colors: 1, BitsPerComponent: 8, Columns: 3}
	in := []byte{
		1, 10, 5, 5,
		3, 10, 10, 10,
	}
	// row 1: 10, 15, 20
	// row 2: 10+5=15, 10+(15+15)/2=25, 10+(25+20)/2=32
	want := []byte{10, 15, 20, 15, 25, 32}
	got, err := Decode(in, p)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestTIFF(t *testing.T) {
	p := Params{Predictor: 2, Colors: 2, BitsPerComponent: 8, Columns: 2}
	in := []byte{1, 2, 1, 1, 5, 5, 0, 1}
	want := []byte{1, 2, 2, 3, 5, 5, 5, 6}
	got, err := Decode(in, p)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected output (-want +got):\n%s", d)
	}
}

func TestInvalid(t *testing.T) {
	cases := []struct {
		p    Params
		data []byte
	}{
		{Params{Predictor: 7, Colors: 1, BitsPerComponent: 8, Columns: 1}, nil},
		{Params{Predictor: 12, Colors: 0, BitsPerComponent: 8, Columns: 1}, nil},
		{Params{Predictor: 12, Colors: 1, BitsPerComponent: 3, Columns: 1}, nil},
		{Params{Predictor: 12, Colors: 1, BitsPerComponent: 8, Columns: 4}, []byte{2, 1}},
		{Params{Predictor: 12, Colors: 1, BitsPerComponent: 8, Columns: 1}, []byte{9, 1}},
	}
	for i, test := range cases {
		_, err := Decode(test.data, test.p)
		if err == nil {
			t.Errorf("%d: expected error", i)
		}
	}
}
