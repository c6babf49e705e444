package chain

import "github.com/AIAleph/soltrack/internal/errs"

// Network names a Solana cluster the tool can read from.
type Network string

const (
	Mainnet   Network = "mainnet"
	Devnet    Network = "devnet"
	Testnet   Network = "testnet"
	Localhost Network = "localhost"
)

// DefaultNetwork is used when no network is given.
const DefaultNetwork = Mainnet

var endpoints = map[Network]string{
	Mainnet:   "https://api.mainnet-beta.solana.com",
	Devnet:    "https://api.devnet.solana.com",
	Testnet:   "https://api.testnet.solana.com",
	Localhost: "http://localhost:8899",
}

func (n Network) String() string { return string(n) }

// Networks lists the recognised network names in display order.
func Networks() []Network {
	return []Network{Mainnet, Devnet, Testnet, Localhost}
}

// ResolveNetwork maps a network name (case-sensitive) to its RPC endpoint.
// An empty name selects DefaultNetwork.
func ResolveNetwork(name string) (Network, string, error) {
	if name == "" {
		name = string(DefaultNetwork)
	}
	n := Network(name)
	url, ok := endpoints[n]
	if !ok {
		return "", "", errs.NewUnknownNetwork(name)
	}
	return n, url, nil
}
