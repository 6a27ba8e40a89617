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

// Package predict reverses the predictor functions which can be applied
// before FlateDecode compression (section 7.4.4.4 of ISO 32000-2:2020).
package predict

import (
	"errors"
	"fmt"
)

const maxColumns = 1 << 20

// Params holds the /DecodeParms entries which control the predictor.
type Params struct {
	// Predictor is the prediction algorithm: 1 for none, 2 for TIFF
	// predictor 2, 10 to 15 for the PNG predictors.
	Predictor int

	// Colors is the number of color components per sample.
	Colors int

	// BitsPerComponent is the number of bits per color component.
	BitsPerComponent int

	// Columns is the number of samples per row.
	Columns int
}

// DefaultParams returns the parameter values used when the corresponding
// entries are missing from the /DecodeParms dictionary.
func DefaultParams() Params {
	return Params{
		Predictor:        1,
		Colors:           1,
		BitsPerComponent: 8,
		Columns:          1,
	}
}

// Validate checks that the parameters describe a supported predictor.
func (p *Params) Validate() error {
	if p.Predictor == 1 {
		return nil
	}
	if p.Predictor != 2 && (p.Predictor < 10 || p.Predictor > 15) {
		return fmt.Errorf("unsupported predictor %d", p.Predictor)
	}
	if p.Colors < 1 || p.Colors > 256 {
		return errors.New("invalid number of colors")
	}
	switch p.BitsPerComponent {
	case 1, 2, 4, 8, 16:
		// pass
	default:
		return fmt.Errorf("invalid BitsPerComponent %d", p.BitsPerComponent)
	}
	if p.Columns < 1 || p.Columns > maxColumns {
		return errors.New("invalid number of columns")
	}
	if p.Predictor == 2 && p.BitsPerComponent != 8 {
		return errors.New("TIFF predictor only supported for 8 bits per component")
	}
	return nil
}

// Decode removes the predictor from data.
func Decode(data []byte, p Params) ([]byte, error) {
	err := p.Validate()
	if err != nil {
		return nil, err
	}

	switch {
	case p.Predictor == 1:
		return data, nil
	case p.Predictor == 2:
		return decodeTIFF(data, p)
	default:
		return decodePNG(data, p)
	}
}

func decodeTIFF(data []byte, p Params) ([]byte, error) {
	rowSize := p.Columns * p.Colors
	if len(data)%rowSize != 0 {
		return nil, fmt.Errorf("data size %d is not a multiple of row size %d",
			len(data), rowSize)
	}

	res := make([]byte, len(data))
	copy(res, data)
	for start := 0; start < len(res); start += rowSize {
		row := res[start : start+rowSize]
		for i := p.Colors; i < len(row); i++ {
			row[i] += row[i-p.Colors]
		}
	}
	return res, nil
}

// decodePNG reverses the PNG predictors.  Every row starts with a tag byte
// which selects the predictor used for this row.
func decodePNG(data []byte, p Params) ([]byte, error) {
	bpp := (p.Colors*p.BitsPerComponent + 7) / 8
	rowSize := (p.Colors*p.BitsPerComponent*p.Columns + 7) / 8

	prev := make([]byte, rowSize)
	res := make([]byte, 0, len(data))
	for len(data) > 0 {
		if len(data) < rowSize+1 {
			return nil, errors.New("incomplete PNG predictor row")
		}
		tag := data[0]
		cur := make([]byte, rowSize)
		copy(cur, data[1:rowSize+1])
		data = data[rowSize+1:]

		for i := range cur {
			var left, upLeft byte
			if i >= bpp {
				left = cur[i-bpp]
				upLeft = prev[i-bpp]
			}
			up := prev[i]

			switch tag {
			case 0: // None
			case 1: // Sub
				cur[i] += left
			case 2: // Up
				cur[i] += up
			case 3: // Average
				cur[i] += byte((int(left) + int(up)) / 2)
			case 4: // Paeth
				cur[i] += paeth(left, up, upLeft)
			default:
				return nil, fmt.Errorf("invalid PNG predictor tag %d", tag)
			}
		}

		res = append(res, cur...)
		prev = cur
	}
	return res, nil
}

func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	if pa <= pb && pa <= pc {
		return a
	} else if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
