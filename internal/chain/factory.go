package chain

import (
	"fmt"
	"net/http"
	"strings"
)

// Provider backends selectable through configuration.
const (
	ClientHTTP     = "http"
	ClientSolanaGo = "solana-go"
)

// NewProvider constructs the Provider named by kind for endpoint. Endpoint
// validation lives in the concrete constructors.
func NewProvider(kind, endpoint string, commitment Commitment) (Provider, error) {
	endpoint = strings.TrimSpace(endpoint)
	client := &http.Client{Timeout: RequestTimeout}
	switch kind {
	case "", ClientHTTP:
		return NewHTTPProvider(endpoint, client, commitment)
	case ClientSolanaGo:
		return NewSolanaGoProvider(endpoint, client, commitment)
	default:
		return nil, fmt.Errorf("unknown rpc client %q (use %s|%s)", kind, ClientHTTP, ClientSolanaGo)
	}
}
