package chain

import (
	"context"
	"errors"
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
)

// solanaGoProvider reads accounts through the gagliardetto/solana-go RPC client.
type solanaGoProvider struct {
	client     *rpc.Client
	commitment Commitment
}

// NewSolanaGoProvider builds a Provider backed by solana-go. The HTTP client
// (bounded by RequestTimeout when nil) is handed to the JSON-RPC transport.
func NewSolanaGoProvider(endpoint string, client *http.Client, commitment Commitment) (Provider, error) {
	if endpoint == "" {
		return nil, errors.New("empty endpoint")
	}
	if client == nil {
		client = &http.Client{Timeout: RequestTimeout}
	}
	if commitment == "" {
		commitment = CommitmentFinalized
	}
	rpcClient := jsonrpc.NewClientWithOpts(endpoint, &jsonrpc.RPCClientOpts{HTTPClient: client})
	return &solanaGoProvider{
		client:     rpc.NewWithCustomRPCClient(rpcClient),
		commitment: commitment,
	}, nil
}

func (p *solanaGoProvider) GetAccount(ctx context.Context, key solana.PublicKey) (Account, error) {
	out, err := p.client.GetAccountInfoWithOpts(ctx, key, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: rpc.CommitmentType(p.commitment),
	})
	if errors.Is(err, rpc.ErrNotFound) {
		return Account{}, accountNotFound(key)
	}
	if err != nil {
		return Account{}, err
	}
	acct := Account{
		Executable: out.Value.Executable,
		Owner:      out.Value.Owner.String(),
		Lamports:   out.Value.Lamports,
	}
	if out.Value.Data != nil {
		acct.Data = out.Value.Data.GetBinary()
	}
	return acct, nil
}
