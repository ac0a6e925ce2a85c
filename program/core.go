// Copyright 2017 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package program

import "github.com/corescope/core/memory"

// LoadCore binds the Program's memory map to a parsed core dump's LOAD
// records. It is one of the two memory sources subject to the Program's
// exclusivity rule (the other is AttachPID): calling it a second time, or
// calling it after AttachPID, fails with "program memory was already
// initialized". Parsing the ELF core file itself is the elfcore package's
// job; this method only consumes the already-decoded records.
func (p *Program) LoadCore(records []memory.LoadRecord) error {
	if err := p.bindMemorySource(memSourceCore); err != nil {
		return err
	}
	return p.Memory.LoadSegments(records)
}
