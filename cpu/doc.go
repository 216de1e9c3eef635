// Package cpu implements the processing unit of the IBM 1401.
//
// The processing unit holds the A, B and I character registers, the A, B,
// I and S (STAR) address registers, and core storage. Each call to Step
// runs one hardware cycle. In the I-phase one character of the instruction
// is read per micro-cycle (op code, A-address, B-address, d-modifier) until
// a word mark ends the instruction; the E-phase then runs the whole
// instruction, scanning its fields right to left until a word mark.
//
// Step reports how the cycle ended with a Signal. Halt and read card
// requests are signals for the driver, not errors. Unknown and
// unimplemented instructions return an *ErrStopCondition; the processing
// unit can still be used after one.
package cpu
