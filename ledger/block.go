package ledger

import (
	"fmt"
	"time"
)

// Block is a single record of the ledger.
type Block struct {
	Timestamp         time.Time
	Data              string
	Hash              uint64 // 0 until the block is sealed
	PreviousBlockHash uint64 // 0 for the genesis block

	hasher Hasher // set by the Blockchain that sealed the block
}

// NewBlock creates an open block holding data, stamped with the current time.
// Hash and PreviousBlockHash stay 0 until the block is pushed onto a
// Blockchain.
func NewBlock(data string) Block {
	return NewBlockAt(data, SystemClock)
}

// NewBlockAt is like NewBlock but reads the timestamp from clock.
func NewBlockAt(data string, clock Clock) Block {
	return Block{
		Timestamp: clock(),
		Data:      data,
	}
}

// CalculateHash computes the hash of the block with the hasher of the
// Blockchain that sealed it, or FNV64a for a block not pushed yet.
// See CalculateHashWith.
func (b Block) CalculateHash() uint64 {
	return b.CalculateHashWith(b.Hasher())
}

// Hasher returns the hasher CalculateHash uses for the block.
func (b Block) Hasher() Hasher {
	if b.hasher == nil {
		return defaultHasher
	}
	return b.hasher
}

// CalculateHashWith hashes Data, Timestamp and PreviousBlockHash, in this
// order. The stored Hash is never part of the input.
func (b Block) CalculateHashWith(h Hasher) uint64 {
	return h.sum64(b.Data, b.Timestamp, b.PreviousBlockHash)
}

// IsSealed reports whether a hash has been assigned to the block.
func (b Block) IsSealed() bool {
	return b.Hash != 0
}

func (b Block) String() string {
	return fmt.Sprintf("Block{Timestamp: %s, Hash: %016x, PreviousBlockHash: %016x, Data: %q}",
		b.Timestamp.Format(time.RFC3339Nano), b.Hash, b.PreviousBlockHash, b.Data)
}
