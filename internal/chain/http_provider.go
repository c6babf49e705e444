package chain

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gagliardetto/solana-go"
	json "github.com/goccy/go-json"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// httpProvider is a minimal JSON-RPC client for Solana endpoints. It issues a
// single POST per call; there is no retry or backoff layer.
type httpProvider struct {
	endpoint    string
	providerLbl string
	hc          httpDoer
	commitment  Commitment
}

// NewHTTPProvider constructs a JSON-RPC provider using the given http.Client (or
// one bounded by RequestTimeout if nil).
func NewHTTPProvider(endpoint string, client *http.Client, commitment Commitment) (Provider, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("empty endpoint")
	}
	if client == nil {
		client = &http.Client{Timeout: RequestTimeout}
	}
	if commitment == "" {
		commitment = CommitmentFinalized
	}
	return &httpProvider{
		endpoint:    endpoint,
		providerLbl: deriveProviderLabel(endpoint),
		hc:          client,
		commitment:  commitment,
	}, nil
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	ID      int64       `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
	ID      int64           `json:"id"`
}

func deriveProviderLabel(endpoint string) string {
	if endpoint == "" {
		return ""
	}
	if u, err := url.Parse(endpoint); err == nil {
		u.User = nil
		if u.Host != "" {
			return u.Host
		}
		if u.Scheme == "" {
			return endpoint
		}
		return u.String()
	}
	return endpoint
}

func (p *httpProvider) call(ctx context.Context, method string, params interface{}, out interface{}) error {
	reqBody, err := json.Marshal(rpcRequest{JSONRPC: "2.0", Method: method, Params: params, ID: 1})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := p.hc.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var rr rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if rr.Error != nil {
		return fmt.Errorf("rpc %d: %s", rr.Error.Code, rr.Error.Message)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(rr.Result, out)
}

type rpcAccount struct {
	Executable bool     `json:"executable"`
	Data       []string `json:"data"`
	Owner      string   `json:"owner"`
	Lamports   uint64   `json:"lamports"`
}

// GetAccount implements getAccountInfo with base64 data encoding.
func (p *httpProvider) GetAccount(ctx context.Context, key solana.PublicKey) (Account, error) {
	params := []interface{}{
		key.String(),
		map[string]interface{}{
			"encoding":   "base64",
			"commitment": string(p.commitment),
		},
	}
	var res struct {
		Value *rpcAccount `json:"value"`
	}
	if err := p.call(ctx, "getAccountInfo", params, &res); err != nil {
		return Account{}, err
	}
	if res.Value == nil {
		return Account{}, accountNotFound(key)
	}
	data, err := decodeAccountData(res.Value.Data)
	if err != nil {
		return Account{}, err
	}
	return Account{
		Executable: res.Value.Executable,
		Data:       data,
		Owner:      res.Value.Owner,
		Lamports:   res.Value.Lamports,
	}, nil
}

// decodeAccountData unpacks the ["<payload>", "<encoding>"] tuple returned for
// binary encodings.
func decodeAccountData(tuple []string) ([]byte, error) {
	if len(tuple) != 2 {
		return nil, fmt.Errorf("malformed account data: expected [payload, encoding], got %d elements", len(tuple))
	}
	if tuple[1] != "base64" {
		return nil, fmt.Errorf("unsupported account data encoding %q", tuple[1])
	}
	b, err := base64.StdEncoding.DecodeString(tuple[0])
	if err != nil {
		return nil, fmt.Errorf("account data: %w", err)
	}
	return b, nil
}

func accountNotFound(key solana.PublicKey) error {
	return fmt.Errorf("AccountNotFound: pubkey=%s", key)
}
