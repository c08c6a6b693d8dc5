package core

import (
	"errors"
	"fmt"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

func TestErrorPredicatesMatchTextCodes(t *testing.T) {
	configErr := NewConfigError("consumer_key")
	if !IsConfigError(configErr) || IsHandshakeError(configErr) || IsProviderError(configErr) {
		t.Fatalf("config error misclassified: %v", configErr)
	}

	handshakeErr := NewHandshakeError("no verifier")
	if !IsHandshakeError(handshakeErr) || IsConfigError(handshakeErr) {
		t.Fatalf("handshake error misclassified: %v", handshakeErr)
	}

	providerErr := WrapProviderError("request token", fmt.Errorf("timeout"))
	if !IsProviderError(providerErr) || IsHandshakeError(providerErr) {
		t.Fatalf("provider error misclassified: %v", providerErr)
	}

	if IsConfigError(nil) || IsHandshakeError(nil) || IsProviderError(nil) {
		t.Fatalf("nil must not match any predicate")
	}
	if IsConfigError(fmt.Errorf("plain")) {
		t.Fatalf("plain errors must not match")
	}
}

func TestWrapProviderErrorPreservesCause(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	wrapped := WrapProviderError("access token", cause)
	if !errors.Is(wrapped, cause) {
		t.Fatalf("expected wrapped cause to be reachable via errors.Is")
	}

	var richErr *goerrors.Error
	if !goerrors.As(wrapped, &richErr) {
		t.Fatalf("expected a rich error")
	}
	if richErr.Category != goerrors.CategoryExternal {
		t.Fatalf("expected external category, got %v", richErr.Category)
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("realm setup: %w", NewConfigError("callback_url"))
	if !IsConfigError(wrapped) {
		t.Fatalf("expected config error through fmt wrapping")
	}
}
