// Package cpu implements the execution engine of the simple machine.
//
// The machine has a single accumulator, a program counter, a negative flag
// and a halt flag, attached to a bank of modular memory cells. Each cycle
// fetches the cell at the program counter, advances the counter, and offers
// the fetched code to a Dispatcher. The Dispatcher holds an ordered table of
// Rules; the first Rule whose predicate matches the code executes its effect.
//
// Codes are three decimal digits. The hundreds digit selects the operation
// and the last two digits select a memory address:
//
//	000-099  HLT  halt
//	100-199  ADD  accumulator += memory[addr]
//	200-299  SUB  accumulator -= memory[addr], negative flag from signed result
//	300-399  STA  memory[addr] = accumulator
//	500-599  LDA  accumulator = memory[addr]
//	600-699  BRA  branch always
//	700-799  BRZ  branch if accumulator is zero
//	800-899  BRP  branch if negative flag is clear
//	901      INP  accumulator = next input
//	902      OUT  output accumulator
package cpu
