package chain

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/AIAleph/soltrack/internal/errs"
	"github.com/AIAleph/soltrack/internal/logging"
)

// RequestTimeout bounds the single account read.
const RequestTimeout = 10 * time.Second

// FetchProgram reads the account at key through p and checks that it holds
// an executable program. Transport and RPC failures are reported as
// AccountFetchError and are not retried.
func FetchProgram(ctx context.Context, p Provider, key solana.PublicKey) (Account, error) {
	ctx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	start := time.Now()
	acct, err := p.GetAccount(ctx, key)
	if err != nil {
		return Account{}, errs.NewAccountFetch(err, map[string]any{"program_id": key.String()})
	}
	logging.Logger().Debug("account_fetched",
		"component", "chain.fetch",
		"program_id", key.String(),
		"executable", acct.Executable,
		"owner", acct.Owner,
		"lamports", acct.Lamports,
		"data_len", len(acct.Data),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if !acct.Executable {
		return Account{}, errs.NewNotExecutable(map[string]any{"program_id": key.String(), "owner": acct.Owner})
	}
	return acct, nil
}
