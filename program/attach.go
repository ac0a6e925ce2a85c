// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import "github.com/corescope/core/memory"

// AttachPID binds the Program's memory map to a live process, read through
// a caller-supplied ReadFunc (typically backed by /proc/<pid>/mem or
// ptrace). It is the second of the two exclusive memory sources (the
// other is LoadCore) and triggers the one-shot AUTO/HOST architecture
// transition described in the core's lifecycle.
//
// The callback is registered as one virtual segment covering
// [0, 1<<63); unmapped addresses
// are expected to surface as a read error from the caller's own ptrace or
// /proc/mem plumbing; the core does not attempt to know the process's
// memory layout ahead of time.
func (p *Program) AttachPID(pid int, read memory.ReadFunc) error {
	if err := p.bindMemorySource(memSourcePID); err != nil {
		return err
	}
	if err := p.ResolveHostArchitecture(); err != nil {
		return err
	}
	return p.Memory.AddSegment(0, 1<<63, read, false)
}
