// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memory

// LoadRecord is the parsed form of one PT_LOAD program-header entry from a
// core file. Only LOAD entries are interesting to the memory map; ELF
// parsing itself happens upstream (see ../elfcore), which is why this
// package only ever sees the already-decoded record, never raw ELF bytes.
type LoadRecord struct {
	Vaddr uint64
	Paddr *uint64 // nil if the record carries no physical address
	Data  []byte
	Memsz *uint64 // nil means Memsz == len(Data)
}

// LoadSegments installs one virtual segment per record (and, when Paddr is
// present, a matching physical segment) backed by the record's Data. If
// Memsz exceeds len(Data), the trailing Memsz-len(Data) bytes of the
// segment read as zero and the segment's effective length is Memsz.
func (m *Map) LoadSegments(records []LoadRecord) error {
	for _, rec := range records {
		data := rec.Data
		length := uint64(len(data))
		if rec.Memsz != nil {
			length = *rec.Memsz
		}
		if length == 0 {
			continue
		}
		read := coreDumpReadFunc(data)
		if err := m.AddSegment(rec.Vaddr, length, read, false); err != nil {
			return err
		}
		if rec.Paddr != nil {
			if err := m.AddSegment(*rec.Paddr, length, read, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// coreDumpReadFunc returns a ReadFunc that reads out of data, zero-filling
// any bytes past len(data) (the memsz > filesz case).
func coreDumpReadFunc(data []byte) ReadFunc {
	return func(address uint64, count int, offset uint64, physical bool) ([]byte, error) {
		buf := make([]byte, count)
		if int(offset) < len(data) {
			copy(buf, data[offset:])
		}
		return buf, nil
	}
}
