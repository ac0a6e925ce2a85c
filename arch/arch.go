// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arch describes the target architecture of a Program: its
// word size and byte order, represented as a small bitset rather than a
// fixed table of named machines.
package arch

import (
	"bytes"
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// Architecture is a bitset describing a target machine's word size and
// byte order, plus two sentinel values for architectures that aren't yet
// known.
type Architecture uint8

const (
	// IS64Bit is set when the target uses 8-byte words (long, size_t,
	// pointers); when clear, words are 4 bytes.
	IS64Bit Architecture = 1 << iota
	// IsLittleEndian is set when the target is little-endian.
	IsLittleEndian

	flagBits = iota
)

const (
	// Auto means the architecture has not yet been resolved: no memory
	// source has been bound to the owning Program.
	Auto Architecture = 1 << 6
	// Host is a sentinel requesting resolution against the machine
	// corescope itself is running on; Program replaces it with a concrete
	// bitset value the first time memory is bound to a live process.
	Host Architecture = 1 << 7
)

// WordSize returns 8 for a 64-bit architecture and 4 otherwise.
func (a Architecture) WordSize() int {
	if a&IS64Bit != 0 {
		return 8
	}
	return 4
}

// ByteOrder returns the binary.ByteOrder matching a's IsLittleEndian flag.
func (a Architecture) ByteOrder() binary.ByteOrder {
	if a&IsLittleEndian != 0 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// IsResolved reports whether a is neither Auto nor Host: a concrete
// architecture a Program can actually use.
func (a Architecture) IsResolved() bool {
	return a != Auto && a&Host == 0
}

func (a Architecture) String() string {
	switch {
	case a == Auto:
		return "auto"
	case a&Host != 0:
		return "host"
	}
	bits := "32-bit"
	if a&IS64Bit != 0 {
		bits = "64-bit"
	}
	order := "big-endian"
	if a&IsLittleEndian != 0 {
		order = "little-endian"
	}
	return bits + " " + order
}

// sixtyFourBitMachines lists the uname(2) machine names corescope
// recognizes as 64-bit. Anything else is treated as 32-bit.
var sixtyFourBitMachines = map[string]bool{
	"x86_64":  true,
	"amd64":   true,
	"aarch64": true,
	"arm64":   true,
	"ppc64":   true,
	"ppc64le": true,
	"s390x":   true,
	"riscv64": true,
	"mips64":  true,
}

// HostArchitecture resolves the Host sentinel by asking the kernel about
// the machine corescope is running on, rather than hardcoding a
// runtime.GOARCH switch table.
func HostArchitecture() (Architecture, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Auto, err
	}
	machine := cString(uts.Machine[:])

	var a Architecture
	if sixtyFourBitMachines[machine] {
		a |= IS64Bit
	}
	if isLittleEndianHost() {
		a |= IsLittleEndian
	}
	return a, nil
}

func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// isLittleEndianHost detects the native byte order without assuming a
// particular GOARCH, the same way encoding/binary.NativeEndian resolves
// it: by laying out a known value and reading back its low byte.
func isLittleEndianHost() bool {
	var x uint16 = 1
	buf := make([]byte, 2)
	binary.NativeEndian.PutUint16(buf, x)
	return buf[0] == 1
}
