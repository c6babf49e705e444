package attribution

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AIAleph/soltrack/internal/errs"
)

func image(parts ...string) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"registry path", []byte("xx/alice_99/.cargo/registry/src/index.crates.io/yy"), "alice_99"},
		{"home prefix", []byte("/home/chrsow/.cargo/registry/src/github.com-1ecc/solana-program-1.9.0/src/lib.rs"), "chrsow"},
		{"hyphenated", []byte("\x00\x01/Users/dev-ops/.cargo/git/checkouts"), "dev-ops"},
		{"binary noise around", image("\x7fELF\x02\x01\x01\x00", "\xff\xfe\xc3", "/root/.cargo/bin", "\x00\x00"), "root"},
		{"invalid utf8 directly before", image("\xff\xff/bob/.cargo"), "bob"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractFirstMatchWins(t *testing.T) {
	got, err := Extract([]byte("/home/first/.cargo/a ... /home/second/.cargo/b"))
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestExtractNotFound(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty image", nil},
		{"no cargo path", []byte("/home/alice/.rustup/toolchains")},
		{"cargo without leading segment", []byte(".cargo/registry")},
		{"dot must be literal", []byte("/alice/xcargo")},
		{"disallowed char in name", []byte("/al ce/.cargo")},
		{"empty segment", []byte("abc//.cargo/registry")},
		{"empty segment shadows later match", []byte("//.cargo then /home/alice/.cargo")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.data)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.Equal(t, errs.AttributionNotFound, errs.Kind(err))
		})
	}
}

func TestExtractNameBoundary(t *testing.T) {
	// '.' is outside the name class; a dotted directory never matches.
	got, err := Extract([]byte("/home/first.last/.cargo"))
	require.Error(t, err)
	assert.Empty(t, got)

	got, err = Extract([]byte("/opt/a.b/c/.cargo"))
	require.NoError(t, err)
	assert.Equal(t, "c", got)
}

func TestFirstNamedMatch(t *testing.T) {
	re := regexp.MustCompile(`k=(?P<v>\w*)`)

	v, ok := FirstNamedMatch(re, "a k=1 k=2", "v")
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	v, ok = FirstNamedMatch(re, "none", "v")
	assert.False(t, ok)
	assert.Empty(t, v)

	_, ok = FirstNamedMatch(re, "k=1", "missing")
	assert.False(t, ok)

	opt := regexp.MustCompile(`x(?P<v>y)?`)
	v, ok = FirstNamedMatch(opt, "x", "v")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestDecodeLossy(t *testing.T) {
	assert.Equal(t, "a�b", DecodeLossy([]byte("a\xffb")))
	assert.Equal(t, "plain", DecodeLossy([]byte("plain")))
}
