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

	"seehuhn.de/go/pdfedit/logger"
)

// Compress encodes all streams which allow compression, using the filter
// configured in [Config.CompressFilter].  Streams which already have a
// /Filter entry are left alone.
//
// If compression of a stream fails, the behaviour depends on
// [Config.Policy]: with [BestEffort] the failure is logged and the stream
// is skipped, with [Strict] processing stops and the error is returned.
func (d *Document) Compress() error {
	f := d.cfg.compressFilter()
	minSavings := d.cfg.MinSavings

	count := 0
	err := d.eachStream(func(ref Reference, stm *Stream) error {
		if !stm.AllowCompression || stm.Dict["Filter"] != nil {
			return nil
		}
		err := stm.Compress(f, minSavings)
		if err == nil && stm.Dict["Filter"] != nil {
			count++
		}
		return err
	})
	d.log(logger.DebugLevel, "compressed streams", "count", count)
	return err
}

// Decompress removes all filters from all streams in the document.
// Failures are handled as described for [Document.Compress].
func (d *Document) Decompress() error {
	count := 0
	err := d.eachStream(func(ref Reference, stm *Stream) error {
		if stm.Dict["Filter"] == nil {
			return nil
		}
		err := stm.Decompress()
		if err == nil {
			count++
		}
		return err
	})
	d.log(logger.DebugLevel, "decompressed streams", "count", count)
	return err
}

// DecompressStream removes all filters from the stream ref.
// Unlike [Document.Decompress], errors are always returned.
func (d *Document) DecompressStream(ref Reference) error {
	stm, err := d.getStream(ref)
	if err != nil {
		return err
	}
	return Wrap(stm.Decompress(), ref.String())
}

// CompressStream encodes the stream ref using the configured filter, as
// described for [Stream.Compress].  The AllowCompression flag of the stream
// is not consulted.
func (d *Document) CompressStream(ref Reference) error {
	stm, err := d.getStream(ref)
	if err != nil {
		return err
	}
	return Wrap(stm.Compress(d.cfg.compressFilter(), d.cfg.MinSavings), ref.String())
}

// eachStream calls fn for every stream in the object table, in order of
// increasing reference.
func (d *Document) eachStream(fn func(Reference, *Stream) error) error {
	for _, ref := range d.References() {
		stm, ok := d.objects[ref].(*Stream)
		if !ok || stm == nil {
			continue
		}
		err := fn(ref, stm)
		if err == nil {
			continue
		}
		if d.cfg.Policy == Strict {
			return fmt.Errorf("stream %s: %w", ref, err)
		}
		d.log(logger.ErrorLevel, "skipping stream", "ref", ref, "error", err)
	}
	return nil
}
