// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package register implements a 16-bit storage cell with overlapping
// high and low byte views.
package register

import (
	"fmt"
)

// Register is a single 16-bit word.
// The byte views are derived from the word on every access, so writing
// one byte never disturbs the other.
type Register struct {
	value uint16
}

// Get returns the full 16-bit value.
func (r *Register) Get() uint16 {
	return r.value
}

// Set replaces the full 16-bit value.
func (r *Register) Set(value uint16) {
	r.value = value
}

// Low returns bits [7:0].
func (r *Register) Low() uint8 {
	return uint8(r.value & 0xff)
}

// High returns bits [15:8].
func (r *Register) High() uint8 {
	return uint8((r.value >> 8) & 0xff)
}

// SetLow replaces bits [7:0], keeping the high byte.
func (r *Register) SetLow(value uint8) {
	r.value = (r.value & 0xff00) | uint16(value)
}

// SetHigh replaces bits [15:8], keeping the low byte.
func (r *Register) SetHigh(value uint8) {
	r.value = (r.value & 0x00ff) | (uint16(value) << 8)
}

// String returns the word as hex.
func (r *Register) String() string {
	return fmt.Sprintf("%02X_%02X", r.High(), r.Low())
}
