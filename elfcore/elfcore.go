// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elfcore is the caller-side collaborator the core's data model
// assumes for core-dump ingestion: it parses an ELF core file's PT_LOAD
// program headers into memory.LoadRecord values for program.Program.LoadCore
// to consume. The core itself never parses ELF; this package is grounded
// on golang-debug's internal/core.Process.readCore/readLoad, trimmed down
// to LOAD-segment extraction (no notes, no DWARF, no thread state).
package elfcore

import (
	"debug/elf"
	"io"
	"os"

	"github.com/corescope/core/arch"
	"github.com/corescope/core/coreerr"
	"github.com/corescope/core/memory"
)

// Load reads an ELF core file's PT_LOAD segments into memory.LoadRecords
// suitable for program.Program.LoadCore, and reports the core's
// architecture.
func Load(path string) ([]memory.LoadRecord, arch.Architecture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, arch.Auto, err
	}
	defer f.Close()
	return LoadFile(f)
}

// LoadFile is Load, reading from an already-open file.
func LoadFile(f *os.File) ([]memory.LoadRecord, arch.Architecture, error) {
	e, err := elf.NewFile(f)
	if err != nil {
		return nil, arch.Auto, coreerr.NewFileFormat("not an ELF file: %v", err)
	}
	if e.Type != elf.ET_CORE {
		return nil, arch.Auto, coreerr.NewValue("not an ELF core file")
	}

	var a arch.Architecture
	switch e.Class {
	case elf.ELFCLASS64:
		a |= arch.IS64Bit
	case elf.ELFCLASS32:
		// no bit to set; IS64Bit stays clear
	default:
		return nil, arch.Auto, coreerr.NewValue("unknown ELF class %s", e.Class)
	}
	if e.ByteOrder.String() == "LittleEndian" {
		a |= arch.IsLittleEndian
	}

	var records []memory.LoadRecord
	for _, prog := range e.Progs {
		if prog.Type != elf.PT_LOAD {
			continue
		}
		rec, err := readLoad(f, prog)
		if err != nil {
			return nil, arch.Auto, err
		}
		records = append(records, rec)
	}
	return records, a, nil
}

// readLoad extracts the file-backed portion of a single PT_LOAD segment;
// any tail beyond the segment's file size is expressed via Memsz so
// memory.Map.LoadSegments zero-fills it.
func readLoad(f *os.File, prog *elf.Prog) (memory.LoadRecord, error) {
	data := make([]byte, prog.Filesz)
	if prog.Filesz > 0 {
		if _, err := f.ReadAt(data, int64(prog.Off)); err != nil && err != io.EOF {
			return memory.LoadRecord{}, err
		}
	}
	memsz := prog.Memsz
	rec := memory.LoadRecord{
		Vaddr: prog.Vaddr,
		Data:  data,
		Memsz: &memsz,
	}
	if prog.Paddr != 0 {
		paddr := prog.Paddr
		rec.Paddr = &paddr
	}
	return rec, nil
}
