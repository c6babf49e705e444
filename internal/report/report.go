// Package report renders a successful attribution for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/AIAleph/soltrack/internal/track"
)

// Format selects the rendering of a Result.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts text, json or yaml in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (use text|json|yaml)", s)
	}
}

// Write renders res to w.
func Write(w io.Writer, f Format, res track.Result) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, SuccessLine(res))
		return err
	}
}

// SuccessLine is the one-line text rendering of res.
func SuccessLine(res track.Result) string {
	return fmt.Sprintf("[+] The program %s on %s is deployed by: %s", res.ProgramID, res.Network, res.Username)
}

// FailureLine is the one-line diagnostic for a failed run.
func FailureLine(msg string) string {
	return "[-] " + msg
}
