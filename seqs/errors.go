package seqs

import "fmt"

var (
	// ErrInvalidArgument is wrapped by every error raised for an out-of-range count,
	// step, size, depth or bound passed to a constructor or adapter.
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	// ErrEmptyReduction is returned when a reduction without an initial value meets
	// an empty sequence.
	ErrEmptyReduction = fmt.Errorf("reduce of empty sequence with no initial value")
	// ErrTypeMismatch is returned when a dynamic element is not enumerable where an
	// enumerable one is required.
	ErrTypeMismatch = fmt.Errorf("type mismatch")
)

func negativeArg(op, name string, v int) error {
	return fmt.Errorf("seqs: %s: %s %d is negative: %w", op, name, v, ErrInvalidArgument)
}

func nonPositiveArg(op, name string, v int) error {
	return fmt.Errorf("seqs: %s: %s %d must be positive: %w", op, name, v, ErrInvalidArgument)
}

func emptyReduction(op string) error {
	return fmt.Errorf("seqs: %s: %w", op, ErrEmptyReduction)
}
