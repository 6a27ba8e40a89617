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
	"compress/zlib"

	"github.com/go-playground/validator/v10"

	"seehuhn.de/go/pdfedit/logger"
)

// ErrorPolicy selects how whole-document passes react to a failure on a
// single object.
type ErrorPolicy string

const (
	// BestEffort skips objects which cannot be processed and continues
	// with the rest of the document.
	BestEffort ErrorPolicy = "best-effort"

	// Strict stops at the first object which cannot be processed and
	// returns the error.
	Strict ErrorPolicy = "strict"
)

// Config holds the settings of a [Document].
type Config struct {
	// CompressFilter is the filter used by [Document.Compress] and by the
	// recompression step of content replacement.
	CompressFilter Name `validate:"oneof=FlateDecode ASCIIHexDecode ASCII85Decode RunLengthDecode"`

	// CompressionLevel is the zlib compression level used with FlateDecode.
	// The value 0 (no compression) is not permitted; use -1 for the zlib
	// default level.
	CompressionLevel int `validate:"min=-2,max=9,ne=0"`

	// MinSavings is the number of bytes a filter must save before an
	// encoded stream replaces the plain one.  This accounts for the
	// /Filter entry added to the stream dictionary.
	MinSavings int `validate:"min=0"`

	// Policy controls the error handling of bulk passes.
	Policy ErrorPolicy `validate:"oneof=strict best-effort"`

	// Logger receives diagnostic messages.  If nil, messages are dropped.
	Logger logger.LogFunc
}

// NewDefaultConfig returns the default configuration: best-effort error
// handling and Flate compression at the highest level.
func NewDefaultConfig() *Config {
	return &Config{
		CompressFilter:   "FlateDecode",
		CompressionLevel: zlib.BestCompression,
		MinSavings:       19,
		Policy:           BestEffort,
	}
}

// Validate checks that all fields of cfg have permitted values.
func (cfg *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(cfg)
}

// compressFilter returns the filter selected by the configuration.
func (cfg *Config) compressFilter() Filter {
	switch cfg.CompressFilter {
	case "ASCIIHexDecode":
		return FilterASCIIHex{}
	case "ASCII85Decode":
		return FilterASCII85{}
	case "RunLengthDecode":
		return FilterRunLength{}
	default:
		return FilterFlate{Level: cfg.CompressionLevel}
	}
}
