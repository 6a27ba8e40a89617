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

// Package asciihex implements the ASCIIHexDecode filter
// (section 7.4.2 of ISO 32000-2:2020).
package asciihex

import (
	"errors"
	"fmt"
)

const hexDigits = "0123456789abcdef"

// Encode encodes data in ASCII hexadecimal form, followed by the end marker
// ">".  If width is positive, a newline is inserted before a line would
// exceed width characters.
func Encode(data []byte, width int) []byte {
	if width > 0 && width < 2 {
		width = 2
	}
	res := make([]byte, 0, 2*len(data)+len(data)/40+1)
	col := 0
	for _, c := range data {
		if width > 0 && col+2 > width {
			res = append(res, '\n')
			col = 0
		}
		res = append(res, hexDigits[c>>4], hexDigits[c&15])
		col += 2
	}
	if width > 0 && col+1 > width {
		res = append(res, '\n')
	}
	return append(res, '>')
}

// Decode decodes data that has been encoded in ASCII hexadecimal form.
// White space is ignored and data after the end marker is discarded.
// If the data ends with an odd number of digits, the last digit is
// completed with a zero.
func Decode(data []byte) ([]byte, error) {
	res := make([]byte, 0, len(data)/2)

	readHigh := false
	var high byte
	for _, c := range data {
		var b byte
		switch c {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			b = c - '0'
		case 'A', 'B', 'C', 'D', 'E', 'F':
			b = c - 'A' + 10
		case 'a', 'b', 'c', 'd', 'e', 'f':
			b = c - 'a' + 10

		case 0, 9, 10, 12, 13, 32: // white-space
			continue

		case '>': // end of data
			if readHigh {
				res = append(res, high<<4)
			}
			return res, nil

		default:
			return nil, fmt.Errorf("invalid hex character: %q", c)
		}

		if readHigh {
			res = append(res, high<<4|b)
			readHigh = false
		} else {
			high = b
			readHigh = true
		}
	}
	return nil, errMissingEOD
}

var errMissingEOD = errors.New("missing end marker in ASCIIHex data")
