package ledger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// GenesisData is the payload of the first block of every Blockchain.
const GenesisData = "Genesis block"

// Blockchain is an append-only sequence of blocks linked by their hashes.
// It always holds at least the genesis block.
//
// The zero value is not usable: Push panics and Verify reports nothing on
// it. Create blockchains with NewBlockchain.
type Blockchain struct {
	blocks []Block
	hasher Hasher
	clock  Clock
	logger *slog.Logger
}

// Option configures a Blockchain.
type Option func(*Blockchain)

// WithHasher seals and verifies blocks with h instead of FNV64a.
func WithHasher(h Hasher) Option {
	return func(bc *Blockchain) { bc.hasher = h }
}

// WithClock stamps the genesis block and the blocks created with
// Blockchain.NewBlock using clock.
func WithClock(clock Clock) Option {
	return func(bc *Blockchain) { bc.clock = clock }
}

// WithLogger reports pushes and verification failures to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(bc *Blockchain) { bc.logger = logger }
}

// NewBlockchain creates a blockchain holding a sealed genesis block.
//
// The genesis block:
//   - Carries GenesisData as payload
//   - Has previous hash 0
//   - Is the trusted root of the chain and is never checked by Verify
func NewBlockchain(opts ...Option) *Blockchain {
	bc := &Blockchain{
		hasher: defaultHasher,
		clock:  SystemClock,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(bc)
	}

	genesis := bc.NewBlock(GenesisData)
	genesis.Hash = genesis.CalculateHash()
	bc.blocks = []Block{genesis}

	return bc
}

// NewBlock creates an open block stamped by the chain's clock and hashed
// with the chain's hasher.
func (bc *Blockchain) NewBlock(data string) Block {
	b := NewBlockAt(data, bc.clock)
	b.hasher = bc.hasher
	return b
}

// Push seals block and appends it to the chain. The block's previous hash is
// set to the hash of the current tail and its own hash is recomputed with
// the chain's hasher, which the block keeps from then on.
func (bc *Blockchain) Push(block Block) {
	block.hasher = bc.hasher
	block.PreviousBlockHash = bc.blocks[len(bc.blocks)-1].Hash
	block.Hash = block.CalculateHash()
	bc.blocks = append(bc.blocks, block)

	bc.logger.Debug("block pushed",
		"index", len(bc.blocks)-1,
		"hash", fmt.Sprintf("%016x", block.Hash),
		"previous_hash", fmt.Sprintf("%016x", block.PreviousBlockHash))
}

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	return len(bc.blocks)
}

// Latest returns the tail of the chain.
func (bc *Blockchain) Latest() Block {
	return bc.blocks[len(bc.blocks)-1]
}

// GetByIndex returns a copy of the block at index.
func (bc *Blockchain) GetByIndex(index int) (Block, error) {
	if index < 0 || index >= len(bc.blocks) {
		return Block{}, fmt.Errorf("get block %d of %d: %w", index, len(bc.blocks), ErrIndexOutOfRange)
	}
	return bc.blocks[index], nil
}

// Blocks returns a copy of the chain.
func (bc *Blockchain) Blocks() []Block {
	out := make([]Block, len(bc.blocks))
	copy(out, bc.blocks)
	return out
}

// Hasher returns the hasher the chain seals blocks with.
func (bc *Blockchain) Hasher() Hasher {
	return bc.hasher
}

// Tamper applies mutate to the stored block at index without resealing it.
// It simulates corruption of the chain and exists for tests and demos only.
func (bc *Blockchain) Tamper(index int, mutate func(*Block)) error {
	if index < 0 || index >= len(bc.blocks) {
		return fmt.Errorf("tamper block %d of %d: %w", index, len(bc.blocks), ErrIndexOutOfRange)
	}
	mutate(&bc.blocks[index])
	return nil
}

// Verify checks every block after genesis, in ascending order, and returns a
// *VerifyError for the first corrupted one. A block whose hash does not match
// its fields is reported as InsideBlock; a self-consistent block whose
// previous hash does not match its predecessor is reported as
// PreviousBlockRelationship.
func (bc *Blockchain) Verify() error {
	for i := 1; i < len(bc.blocks); i++ {
		current := bc.blocks[i]
		previous := bc.blocks[i-1]

		var kind VerifyErrorKind
		switch {
		case current.Hash != current.CalculateHash():
			kind = InsideBlock
		case current.PreviousBlockHash != previous.Hash:
			kind = PreviousBlockRelationship
		default:
			continue
		}

		err := &VerifyError{Kind: kind, Index: i}
		bc.logger.Warn("blockchain verification failed", "index", i, "kind", kind.String())
		return err
	}
	return nil
}

func (bc *Blockchain) String() string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for _, b := range bc.blocks {
		sb.WriteString("    ")
		sb.WriteString(b.String())
		sb.WriteString(",\n")
	}
	sb.WriteString("]")
	return sb.String()
}
