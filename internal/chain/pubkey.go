package chain

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"github.com/AIAleph/soltrack/internal/errs"
)

// MaxProgramIDLen is the longest base-58 rendering of a 32-byte key.
const MaxProgramIDLen = 44

// ParseProgramID validates a base-58 program identifier and returns its
// 32-byte key. The input is taken as-is; surrounding whitespace is an error.
func ParseProgramID(s string) (solana.PublicKey, error) {
	if len(s) > MaxProgramIDLen {
		return solana.PublicKey{}, errs.NewInvalidLength(len(s), MaxProgramIDLen)
	}
	raw, err := base58.Decode(s)
	if err != nil {
		return solana.PublicKey{}, errs.NewInvalidEncoding(err)
	}
	if len(raw) != solana.PublicKeyLength {
		return solana.PublicKey{}, errs.NewInvalidEncoding(
			fmt.Errorf("decoded %d bytes, want %d", len(raw), solana.PublicKeyLength))
	}
	return solana.PublicKeyFromBytes(raw), nil
}
