package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrInsideBlock               = errors.New("block hash does not match its content")
	ErrPreviousBlockRelationship = errors.New("block is not linked to its predecessor")
	ErrIndexOutOfRange           = errors.New("index out of range")
	ErrUnknownHasher             = errors.New("unknown hasher")
)

// VerifyErrorKind tells which check of Verify failed.
type VerifyErrorKind int

const (
	// InsideBlock: the stored hash differs from the hash of the block's fields.
	InsideBlock VerifyErrorKind = iota + 1
	// PreviousBlockRelationship: the block is self-consistent but its
	// previous hash differs from the hash of the block before it.
	PreviousBlockRelationship
)

func (k VerifyErrorKind) String() string {
	switch k {
	case InsideBlock:
		return "InsideBlock"
	case PreviousBlockRelationship:
		return "PreviousBlockRelationship"
	default:
		return fmt.Sprintf("VerifyErrorKind(%d)", int(k))
	}
}

// VerifyError reports the first corrupted block found by Verify.
type VerifyError struct {
	Kind  VerifyErrorKind
	Index int
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("block %d invalid: %v", e.Index, e.sentinel())
}

func (e *VerifyError) sentinel() error {
	switch e.Kind {
	case InsideBlock:
		return ErrInsideBlock
	case PreviousBlockRelationship:
		return ErrPreviousBlockRelationship
	default:
		return fmt.Errorf("unknown verification failure %v", e.Kind)
	}
}

// Is matches the sentinel of the error kind, or another *VerifyError with
// the same kind and index.
func (e *VerifyError) Is(target error) bool {
	if t, ok := target.(*VerifyError); ok {
		return t.Kind == e.Kind && t.Index == e.Index
	}
	return target == e.sentinel()
}
