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

package asciihex

import (
	"bufio"
	"bytes"
	"fmt"
	"testing"
)

func TestEncode(t *testing.T) {
	type testCase struct {
		in  []byte
		out string
	}
	cases := []testCase{
		{[]byte("ABC"), "414243>"},
		{[]byte(" "), "20>"},
		{[]byte(""), ">"},
		{[]byte{0x00, 0x0F, 0xF0, 0xFF}, "000ff0ff>"},
	}
	for i, test := range cases {
		t.Run(fmt.Sprintf("%d", i+1), func(t *testing.T) {
			got := Encode(test.in, 79)
			if string(got) != test.out {
				t.Fatalf("got %q, want %q", got, test.out)
			}
		})
	}
}

func TestLineWidths(t *testing.T) {
	for _, w := range []int{2, 39, 40, 79, 80} {
		for l := 2*w - 3; l <= 2*w+3; l++ {
			in := bytes.Repeat([]byte{0x1E}, l)
			enc := Encode(in, w)

			scanner := bufio.NewScanner(bytes.NewReader(enc))
			for scanner.Scan() {
				line := scanner.Text()
				if len(line) > w {
					t.Fatalf("width=%d, len=%d: %q", w, l, line)
				}
			}

			out, err := Decode(enc)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(out, in) {
				t.Fatalf("width=%d, len=%d: round trip failed", w, l)
			}
		}
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{">", ""},
		{"41 42\n43>", "ABC"},
		{"4a4B>", "JK"},
		{"414>", "A@"},
		{"41>junk", "A"},
	}
	for _, c := range cases {
		out, err := Decode([]byte(c.in))
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
		} else if string(out) != c.out {
			t.Errorf("%q: got %q, want %q", c.in, out, c.out)
		}
	}

	for _, in := range []string{"41", "4g>"} {
		_, err := Decode([]byte(in))
		if err == nil {
			t.Errorf("%q: missing error", in)
		}
	}
}
