package cpu

// Signal is the outcome of a single processing unit step.
type Signal int

//go:generate go tool stringer -linecomment -type=Signal
const (
	SIGNAL_CONTINUE  = Signal(iota) // continue
	SIGNAL_EXECUTE                  // execute
	SIGNAL_HALT                     // halt
	SIGNAL_READ_CARD                // read-card
)

// Phase is the hardware cycle phase.
type Phase int

//go:generate go tool stringer -linecomment -type=Phase
const (
	PHASE_I = Phase(iota) // I-phase
	PHASE_E               // E-phase
)
