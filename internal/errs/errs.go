// Package errs defines the terminal failure kinds of the attribution pipeline.
// Every failure is a go-errors envelope whose TextCode names the kind; only the
// CLI turns them into diagnostics and exit statuses.
package errs

import (
	goerrors "github.com/goliatone/go-errors"
)

// Failure kinds, carried as the envelope TextCode.
const (
	InvalidLength       = "INVALID_LENGTH"
	InvalidEncoding     = "INVALID_ENCODING"
	UnknownNetwork      = "UNKNOWN_NETWORK"
	AccountFetchError   = "ACCOUNT_FETCH_ERROR"
	NotExecutable       = "NOT_EXECUTABLE"
	AttributionNotFound = "ATTRIBUTION_NOT_FOUND"
)

func newError(kind string, category goerrors.Category, message string, metadata map[string]any) *goerrors.Error {
	err := goerrors.New(message, category).WithTextCode(kind)
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func NewInvalidLength(length, max int) error {
	return newError(InvalidLength, goerrors.CategoryBadInput, "Invalid ProgramID length",
		map[string]any{"length": length, "max": max})
}

func NewInvalidEncoding(cause error) error {
	err := newError(InvalidEncoding, goerrors.CategoryBadInput, "Invalid Base58 string", nil)
	err.Source = cause
	return err
}

func NewUnknownNetwork(name string) error {
	return newError(UnknownNetwork, goerrors.CategoryBadInput,
		"Invalid network (only supported 'mainnet', 'devnet', 'testnet' or 'localhost')",
		map[string]any{"network": name})
}

// NewAccountFetch wraps a transport or RPC failure. The cause text is part of
// the user-facing message so it reaches stderr verbatim.
func NewAccountFetch(cause error, metadata map[string]any) error {
	msg := "Couldn't get the account data"
	if cause != nil {
		msg += ": " + cause.Error()
	}
	err := newError(AccountFetchError, goerrors.CategoryExternal, msg, metadata)
	err.Source = cause
	return err
}

func NewNotExecutable(metadata map[string]any) error {
	return newError(NotExecutable, goerrors.CategoryValidation,
		"The account does not contain an executable program", metadata)
}

func NewAttributionNotFound(metadata map[string]any) error {
	return newError(AttributionNotFound, goerrors.CategoryNotFound, "Username not found", metadata)
}

// Kind returns the failure kind of err, or "" when err is not a pipeline failure.
func Kind(err error) string {
	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		return rich.TextCode
	}
	return ""
}

// Is reports whether err is a pipeline failure of the given kind.
func Is(err error, kind string) bool {
	return err != nil && Kind(err) == kind
}

// Message returns the user-facing text of err without category decoration.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var rich *goerrors.Error
	if goerrors.As(err, &rich) && rich.Message != "" {
		return rich.Message
	}
	return err.Error()
}

// WithStage annotates a pipeline failure with the stage it terminated at.
// Errors that are not envelopes are returned unchanged.
func WithStage(err error, stage string) error {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return err
	}
	rich.WithMetadata(map[string]any{"stage": stage})
	return rich
}

// Metadata returns a copy of the envelope metadata attached to err.
func Metadata(err error) map[string]any {
	var rich *goerrors.Error
	if !goerrors.As(err, &rich) {
		return nil
	}
	out := make(map[string]any, len(rich.Metadata))
	for k, v := range rich.Metadata {
		out[k] = v
	}
	return out
}
