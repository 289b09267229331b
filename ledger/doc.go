// Package ledger implements a minimal append-only, hash-linked ledger.
//
// # Core Components
//
// Blockchain: An ordered sequence of blocks that owns every block it holds.
// It seeds itself with a genesis block, links each pushed block to the
// current tail and verifies the whole chain on demand.
//
// Block: A text payload, the time it was created, its own hash and the hash
// of its predecessor.
//
// # Security Properties
//
// Every block commits to its data, its timestamp and the hash of the block
// before it. Verify detects:
//   - Blocks whose stored hash no longer matches their content (InsideBlock)
//   - Blocks whose recorded predecessor hash no longer matches the actual
//     predecessor (PreviousBlockRelationship)
//
// The default hasher is FNV-1a, which only guards against accidental
// corruption. Use Blake2b or a kyber suite hasher when the chain must resist
// deliberate forgery.
//
// The genesis block is trusted as the root of the chain. Its previous hash is
// 0, the same value an unsealed block carries, so that field alone does not
// tell a forged genesis-like block apart from a real one.
//
// # Usage
//
// Create a blockchain, push blocks built with NewBlock and call Verify at any
// time to check that the chain is intact. A Blockchain is not safe for
// concurrent use; callers that share one must serialize access.
package ledger
