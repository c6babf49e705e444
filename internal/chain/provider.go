package chain

import (
	"context"

	"github.com/gagliardetto/solana-go"
)

// Provider defines the single RPC read the tracker needs. Implementations
// perform exactly one request per call and never retry.
type Provider interface {
	// GetAccount returns the account stored at key. A missing account is an
	// error, not a zero Account.
	GetAccount(ctx context.Context, key solana.PublicKey) (Account, error)
}

// Account is a snapshot of an on-chain account. Data holds the full account
// payload, which for a program is its compiled image including padding.
type Account struct {
	Executable bool
	Data       []byte
	Owner      string
	Lamports   uint64
}

// Commitment is the node-side finality level requested for reads.
type Commitment string

const (
	CommitmentProcessed Commitment = "processed"
	CommitmentConfirmed Commitment = "confirmed"
	CommitmentFinalized Commitment = "finalized"
)
