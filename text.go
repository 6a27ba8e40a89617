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
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// TextString creates a String object using the "text string" encoding.
// Strings consisting of printable ASCII characters are stored unchanged,
// all other strings are encoded as UTF-16BE with a byte order mark.
func TextString(s string) String {
	plain := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 0x20 || c > 0x7e) && c != '\t' && c != '\n' && c != '\r' {
			plain = false
			break
		}
	}
	if plain {
		return String(s)
	}

	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	buf, err := enc.Bytes([]byte(s))
	if err != nil {
		return String(s)
	}
	return String(buf)
}

// AsTextString interprets x as a PDF "text string" and returns
// the corresponding utf-8 encoded string.
//
// Strings starting with a UTF-16BE byte order mark are decoded as UTF-16.
// Everything else is decoded as ISO 8859-1, which coincides with
// PDFDocEncoding for all printable characters other than 0x80 to 0x9F.
func (x String) AsTextString() string {
	if len(x) >= 2 && x[0] == 0xFE && x[1] == 0xFF {
		dec := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
		buf, err := dec.Bytes(x)
		if err == nil {
			return string(buf)
		}
	}
	buf, err := charmap.ISO8859_1.NewDecoder().Bytes(x)
	if err != nil {
		return string(x)
	}
	return string(buf)
}

// Date creates a String object encoding the given date and time.
func Date(t time.Time) String {
	s := t.Format("D:20060102150405-0700")
	k := len(s) - 2
	s = s[:k] + "'" + s[k:] + "'"
	return String(s)
}

// AsDate interprets x as a PDF date string.
// If the string does not have the correct format, an error is returned.
func (x String) AsDate() (time.Time, error) {
	s := strings.TrimSpace(x.AsTextString())
	if s == "D:" || s == "" {
		return time.Time{}, nil
	}
	s = strings.ReplaceAll(s, "'", "")

	for _, format := range dateFormats {
		t, err := time.Parse(format, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, errNoDate
}

var dateFormats = []string{
	"D:20060102150405-0700",
	"D:20060102150405-07",
	"D:20060102150405Z0000",
	"D:20060102150405Z00",
	"D:20060102150405Z",
	"D:20060102150405",
	"D:200601021504",
	"D:2006010215",
	"D:20060102",
	"D:200601",
	"D:2006",
}

var errNoDate = errors.New("not a valid date string")
