// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memory implements the segmented address-space map at the heart
// of a Program: an append-only stack of overlapping segments, read back
// through a newest-registered-wins interval decomposition.
//
// There's nothing process-specific about this package; the read callbacks
// are supplied by the caller, whether they're backed by a live inferior,
// an ELF core dump, or a synthetic test fixture. See ../elfcore for a
// caller that builds segments from a real core file.
package memory

import (
	"sort"

	"github.com/corescope/core/coreerr"
)

// ReadFunc reads count bytes for the segment it was registered on, from
// offset bytes into that segment's backing store. It must return exactly
// count bytes.
type ReadFunc func(address uint64, count int, offset uint64, physical bool) ([]byte, error)

// segment is a half-open interval [address, address+length) backed by a
// read callback. Segments are never mutated or removed once appended;
// newer segments in the same plane shadow older ones at read time.
type segment struct {
	address uint64
	length  uint64
	read    ReadFunc
}

func (s *segment) end() uint64 { return s.address + s.length }

// Map is the segmented virtual/physical address space of a Program.
// The zero value is an empty map in both planes.
type Map struct {
	virtual  []*segment
	physical []*segment
}

// AddSegment registers a new segment covering [address, address+length).
// It fails only for a zero length; it never rejects or removes earlier
// segments. Reads
// that fall within more than one registered segment are satisfied by
// whichever segment was added most recently.
func (m *Map) AddSegment(address, length uint64, read ReadFunc, physical bool) error {
	if length == 0 {
		return coreerr.NewValue("segment length must be greater than 0")
	}
	s := &segment{address: address, length: length, read: read}
	if physical {
		m.physical = append(m.physical, s)
	} else {
		m.virtual = append(m.virtual, s)
	}
	return nil
}

// interval is a half-open [lo, hi) range of addresses still waiting for a
// segment to claim it.
type interval struct{ lo, hi uint64 }

// fragment is one decomposed piece of a read: the segment that owns
// [lo, hi). The offset into that segment's backing store is lo minus the
// segment's address.
type fragment struct {
	seg    *segment
	lo, hi uint64
}

// Read reads exactly count bytes starting at address from the requested
// plane. It returns a buffer of length count, a *coreerr.Fault naming the
// first address it couldn't cover, the error a read callback returned, or
// a *coreerr.Value when a callback returned the wrong number of bytes.
func (m *Map) Read(address uint64, count int, physical bool) ([]byte, error) {
	if count == 0 {
		return []byte{}, nil
	}
	segs := m.virtual
	if physical {
		segs = m.physical
	}

	uncovered := []interval{{lo: address, hi: address + uint64(count)}}
	var fragments []fragment

	// Walk newest to oldest so that whatever a later segment claims is
	// removed from contention before an earlier segment gets a turn.
	for i := len(segs) - 1; i >= 0 && len(uncovered) > 0; i-- {
		s := segs[i]
		var next []interval
		for _, u := range uncovered {
			lo, hi := maxU64(u.lo, s.address), minU64(u.hi, s.end())
			if lo >= hi {
				// No overlap with this segment; the gap survives untouched.
				next = append(next, u)
				continue
			}
			if u.lo < lo {
				next = append(next, interval{u.lo, lo})
			}
			fragments = append(fragments, fragment{seg: s, lo: lo, hi: hi})
			if hi < u.hi {
				next = append(next, interval{hi, u.hi})
			}
		}
		uncovered = next
	}

	if len(uncovered) > 0 {
		return nil, coreerr.NewFault(uncovered[0].lo, "could not find memory segment")
	}

	sort.Slice(fragments, func(i, j int) bool { return fragments[i].lo < fragments[j].lo })

	buf := make([]byte, count)
	for _, f := range fragments {
		subCount := int(f.hi - f.lo)
		subOffset := f.lo - f.seg.address
		data, err := f.seg.read(f.lo, subCount, subOffset, physical)
		if err != nil {
			return nil, err
		}
		if len(data) != subCount {
			return nil, coreerr.NewValue("read callback returned %d bytes, want %d", len(data), subCount)
		}
		copy(buf[f.lo-address:], data)
	}
	return buf, nil
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
