package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	AuthErrorConfigMissing    = "TWITTER_AUTH_CONFIG_MISSING"
	AuthErrorHandshakeInvalid = "TWITTER_AUTH_HANDSHAKE_INVALID"
	AuthErrorProviderFailure  = "TWITTER_AUTH_PROVIDER_FAILURE"
)

// NewConfigError marks a required configuration field as unresolved after
// merging realm and application-wide layers. This is a deployment error and
// surfaces at construction, never mid-flow.
func NewConfigError(field string) *goerrors.Error {
	return goerrors.New(strings.TrimSpace(field)+" not defined", goerrors.CategoryBadInput).
		WithTextCode(AuthErrorConfigMissing).
		WithCode(http.StatusInternalServerError)
}

// NewHandshakeError reports caller misuse or expired session state. The
// caller is expected to restart the login flow.
func NewHandshakeError(message string) *goerrors.Error {
	return goerrors.New(message, goerrors.CategoryAuth).
		WithTextCode(AuthErrorHandshakeInvalid).
		WithCode(http.StatusUnauthorized)
}

// WrapProviderError wraps a network or API failure from a token-handshake
// leg. Retry policy belongs to the caller.
func WrapProviderError(operation string, err error) *goerrors.Error {
	return goerrors.Wrap(err, goerrors.CategoryExternal, "twitter "+operation+" request failed").
		WithTextCode(AuthErrorProviderFailure).
		WithCode(http.StatusBadGateway)
}

func IsConfigError(err error) bool {
	return hasTextCode(err, AuthErrorConfigMissing)
}

func IsHandshakeError(err error) bool {
	return hasTextCode(err, AuthErrorHandshakeInvalid)
}

func IsProviderError(err error) bool {
	return hasTextCode(err, AuthErrorProviderFailure)
}

func hasTextCode(err error, textCode string) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return false
	}
	return richErr.TextCode == textCode
}
