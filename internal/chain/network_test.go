package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AIAleph/soltrack/internal/errs"
)

func TestResolveNetwork(t *testing.T) {
	tests := []struct {
		in       string
		network  Network
		endpoint string
	}{
		{"mainnet", Mainnet, "https://api.mainnet-beta.solana.com"},
		{"devnet", Devnet, "https://api.devnet.solana.com"},
		{"testnet", Testnet, "https://api.testnet.solana.com"},
		{"localhost", Localhost, "http://localhost:8899"},
		{"", Mainnet, "https://api.mainnet-beta.solana.com"},
	}
	for _, tt := range tests {
		for i := 0; i < 2; i++ {
			n, url, err := ResolveNetwork(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.network, n)
			assert.Equal(t, tt.endpoint, url)
		}
	}
}

func TestResolveNetwork_Unknown(t *testing.T) {
	for _, in := range []string{"Mainnet", "DEVNET", "mainnet-beta", "local", " devnet", "localhost:8899"} {
		n, url, err := ResolveNetwork(in)
		require.Error(t, err, in)
		assert.Empty(t, n)
		assert.Empty(t, url)
		assert.Equal(t, errs.UnknownNetwork, errs.Kind(err))
		assert.Contains(t, errs.Message(err), "'mainnet', 'devnet', 'testnet' or 'localhost'")
		assert.Equal(t, in, errs.Metadata(err)["network"])
	}
}

func TestNetworks(t *testing.T) {
	assert.Equal(t, []Network{Mainnet, Devnet, Testnet, Localhost}, Networks())
	for _, n := range Networks() {
		_, _, err := ResolveNetwork(n.String())
		assert.NoError(t, err)
	}
}
