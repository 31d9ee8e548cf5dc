// Package cpu implements the architectural register state of a 16-bit
// 8086-class processor.
//
// The state holds eight 16-bit registers (ax, cx, dx, bx, sp, bp, si, di),
// a signed instruction pointer (ip), and the sign and zero condition flags.
// The general-purpose registers are also addressable through their byte
// views (al/ah, cl/ch, dl/dh, bl/bh).
//
// Operands are addressed symbolically, either by RegName/FlagName tags
// resolved once at decode time, or by their canonical lowercase names.
// The instruction pointer is never written through the register path;
// it only moves relatively, through ModifyIp.
package cpu
