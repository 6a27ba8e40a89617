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

// Package runlength implements the RunLengthDecode filter of PDF
// (section 7.4.5 of ISO 32000-2:2020).
//
// Each run starts with a length byte n.  For n in 0..127, the next n+1
// bytes are copied literally.  For n in 129..255, the following byte is
// repeated 257-n times.  The value 128 marks the end of the data.
package runlength

import (
	"errors"
)

const eod = 128

var errTruncated = errors.New("truncated run-length data")

// Encode encodes data in run-length format, including the end-of-data
// marker.
func Encode(data []byte) []byte {
	res := make([]byte, 0, len(data)+len(data)/128+2)

	pos := 0
	for pos < len(data) {
		// length of the run of identical bytes starting at pos
		run := 1
		for pos+run < len(data) && run < 128 && data[pos+run] == data[pos] {
			run++
		}
		if run >= 3 {
			res = append(res, byte(257-run), data[pos])
			pos += run
			continue
		}

		// collect literal bytes until the next run of three
		start := pos
		for pos < len(data) && pos-start < 128 {
			if pos+2 < len(data) && data[pos] == data[pos+1] && data[pos] == data[pos+2] {
				break
			}
			pos++
		}
		res = append(res, byte(pos-start-1))
		res = append(res, data[start:pos]...)
	}

	return append(res, eod)
}

// Decode decodes run-length encoded data.  A missing end-of-data marker is
// tolerated, but a run which extends past the end of the data is an error.
func Decode(data []byte) ([]byte, error) {
	var res []byte

	pos := 0
	for pos < len(data) {
		length := data[pos]
		pos++

		switch {
		case length == eod:
			return res, nil
		case length < eod:
			n := int(length) + 1
			if pos+n > len(data) {
				return res, errTruncated
			}
			res = append(res, data[pos:pos+n]...)
			pos += n
		default:
			if pos >= len(data) {
				return res, errTruncated
			}
			val := data[pos]
			pos++
			for range 257 - int(length) {
				res = append(res, val)
			}
		}
	}

	return res, nil
}
