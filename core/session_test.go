package core

import "testing"

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	session := NewMemorySessionStore()
	if got := session.Get(SessionKeyRequestToken); got != "" {
		t.Fatalf("expected empty value for unset key, got %q", got)
	}

	session.Set(SessionKeyRequestToken, "abc")
	if got := session.Get(SessionKeyRequestToken); got != "abc" {
		t.Fatalf("expected stored value, got %q", got)
	}

	session.Set(SessionKeyRequestToken, "")
	if got := session.Get(SessionKeyRequestToken); got != "" {
		t.Fatalf("expected overwrite with empty value, got %q", got)
	}
}

func TestReadHandshakeState(t *testing.T) {
	session := NewMemorySessionStore()
	session.Set(SessionKeyRequestToken, " abc ")
	session.Set(SessionKeyRequestTokenSecret, "hush")

	state := ReadHandshakeState(session)
	if state.RequestToken != "abc" {
		t.Fatalf("expected trimmed request token, got %q", state.RequestToken)
	}
	if !state.HasRequestToken() {
		t.Fatalf("expected request token pair detected")
	}
	if state.HasAccessToken() {
		t.Fatalf("expected no access token pair")
	}

	session.Set(SessionKeyAccessToken, "token")
	if ReadHandshakeState(session).HasAccessToken() {
		t.Fatalf("a lone access token must not count as a redeemed pair")
	}
	session.Set(SessionKeyAccessTokenSecret, "secret")
	if !ReadHandshakeState(session).HasAccessToken() {
		t.Fatalf("expected access token pair detected")
	}
}
