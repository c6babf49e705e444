// Package attribution recovers the build account name that the Rust toolchain
// leaves in compiled program images as part of a cargo registry path, e.g.
// "/home/<name>/.cargo/registry/src/...".
package attribution

import (
	"regexp"
	"strings"

	"github.com/AIAleph/soltrack/internal/errs"
)

// UsernameGroup is the capture group holding the account name.
const UsernameGroup = "username"

// cargoPath matches "/<name>/.cargo". The group may be empty so that "//.cargo"
// is found as the first match and rejected instead of skipped.
var cargoPath = regexp.MustCompile(`/(?P<username>[a-zA-Z0-9_-]*)/\.cargo`)

// Extract returns the account name from the first cargo path embedded in data.
// Only the first match in byte order is considered; an empty name there is
// reported as AttributionNotFound.
func Extract(data []byte) (string, error) {
	name, ok := FirstNamedMatch(cargoPath, DecodeLossy(data), UsernameGroup)
	if !ok || name == "" {
		return "", errs.NewAttributionNotFound(map[string]any{"image_size": len(data)})
	}
	return name, nil
}

// DecodeLossy converts binary content to text, replacing each invalid UTF-8
// sequence with U+FFFD.
func DecodeLossy(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}

// FirstNamedMatch returns the named group of the leftmost match of re in text.
// ok is false when re does not match or has no such group.
func FirstNamedMatch(re *regexp.Regexp, text, group string) (value string, ok bool) {
	idx := re.SubexpIndex(group)
	if idx < 0 {
		return "", false
	}
	m := re.FindStringSubmatchIndex(text)
	if m == nil {
		return "", false
	}
	start, end := m[2*idx], m[2*idx+1]
	if start < 0 {
		return "", true
	}
	return text[start:end], true
}
