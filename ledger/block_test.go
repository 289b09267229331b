package ledger

import (
	"strings"
	"testing"
	"time"
)

var testEpoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// TestNewBlockIsOpen verifies that a freshly created block carries its payload
// and has neither a hash nor a previous hash yet.
func TestNewBlockIsOpen(t *testing.T) {
	for _, data := range []string{"Hello world", "", "ünïcode ✓"} {
		b := NewBlock(data)
		if b.Data != data {
			t.Fatalf("expected data %q, got %q", data, b.Data)
		}
		if b.Hash != 0 {
			t.Fatalf("new block should have hash 0, got %d", b.Hash)
		}
		if b.PreviousBlockHash != 0 {
			t.Fatalf("new block should have previous hash 0, got %d", b.PreviousBlockHash)
		}
		if b.IsSealed() {
			t.Fatal("new block should not be sealed")
		}
		if b.Timestamp.IsZero() {
			t.Fatal("new block should carry a timestamp")
		}
	}
}

// TestNewBlockAtUsesClock verifies that the timestamp comes from the given
// time source and not from the wall clock.
func TestNewBlockAtUsesClock(t *testing.T) {
	b := NewBlockAt("data", FixedClock(testEpoch))
	if !b.Timestamp.Equal(testEpoch) {
		t.Fatalf("expected timestamp %s, got %s", testEpoch, b.Timestamp)
	}
}

// TestCalculateHashIsDeterministic verifies that hashing the same unmutated
// block twice, or two blocks with identical fields, yields the same value.
func TestCalculateHashIsDeterministic(t *testing.T) {
	b := NewBlockAt("Hello world", FixedClock(testEpoch))
	first := b.CalculateHash()
	if first != b.CalculateHash() {
		t.Fatal("hash of an unmutated block should be stable")
	}

	twin := NewBlockAt("Hello world", FixedClock(testEpoch))
	if first != twin.CalculateHash() {
		t.Fatal("blocks with identical fields should hash identically")
	}
}

// TestCalculateHashIgnoresStoredHash verifies that the stored hash is not an
// input of the hash function.
func TestCalculateHashIgnoresStoredHash(t *testing.T) {
	b := NewBlockAt("Hello world", FixedClock(testEpoch))
	before := b.CalculateHash()
	b.Hash = 42
	if before != b.CalculateHash() {
		t.Fatal("changing the stored hash should not change the computed hash")
	}
}

// TestCalculateHashDetectsChanges verifies that changing any hashed field
// changes the computed hash.
func TestCalculateHashDetectsChanges(t *testing.T) {
	base := NewBlockAt("Hello world", FixedClock(testEpoch))
	base.Hash = base.CalculateHash()

	tests := []struct {
		name   string
		mutate func(*Block)
	}{
		{"data", func(b *Block) { b.Data = "Changed data" }},
		{"timestamp", func(b *Block) { b.Timestamp = b.Timestamp.Add(time.Nanosecond) }},
		{"previous hash", func(b *Block) { b.PreviousBlockHash = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base
			tt.mutate(&b)
			if b.Hash == b.CalculateHash() {
				t.Fatalf("changing %s should change the hash", tt.name)
			}
		})
	}
}

// TestCalculateHashSeparatesFields verifies that bytes cannot move between
// the payload and the fields that follow it without changing the hash.
func TestCalculateHashSeparatesFields(t *testing.T) {
	a := Block{Data: "ab", Timestamp: testEpoch}
	b := Block{Data: "a", Timestamp: testEpoch}
	if a.CalculateHash() == b.CalculateHash() {
		t.Fatal("different payloads should hash differently")
	}
}

// TestBlockString verifies the debug rendering contains the payload and the
// hashes in hex.
func TestBlockString(t *testing.T) {
	b := Block{Data: "payload", Timestamp: testEpoch, Hash: 0xabc, PreviousBlockHash: 0x1}
	s := b.String()
	for _, want := range []string{`"payload"`, "0000000000000abc", "0000000000000001", "2024-03-01T12:00:00Z"} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %q in %s", want, s)
		}
	}
}
