package core

import "strings"

// Session keys owned by the exchange. Hosts must treat them as opaque.
const (
	SessionKeyRequestToken       = "twitter_request_token"
	SessionKeyRequestTokenSecret = "twitter_request_token_secret"
	SessionKeyAccessToken        = "twitter_access_token"
	SessionKeyAccessTokenSecret  = "twitter_access_token_secret"
)

// HandshakeState is a point-in-time read of the handshake keys held in the
// host session. The session remains the source of truth; this value is never
// written back wholesale.
type HandshakeState struct {
	RequestToken       string
	RequestTokenSecret string
	AccessToken        string
	AccessTokenSecret  string
}

func ReadHandshakeState(session SessionStore) HandshakeState {
	if session == nil {
		return HandshakeState{}
	}
	return HandshakeState{
		RequestToken:       strings.TrimSpace(session.Get(SessionKeyRequestToken)),
		RequestTokenSecret: strings.TrimSpace(session.Get(SessionKeyRequestTokenSecret)),
		AccessToken:        strings.TrimSpace(session.Get(SessionKeyAccessToken)),
		AccessTokenSecret:  strings.TrimSpace(session.Get(SessionKeyAccessTokenSecret)),
	}
}

func (s HandshakeState) HasRequestToken() bool {
	return s.RequestToken != "" && s.RequestTokenSecret != ""
}

// HasAccessToken reports whether redemption already happened in this
// session. Token and secret are only ever written together.
func (s HandshakeState) HasAccessToken() bool {
	return s.AccessToken != "" && s.AccessTokenSecret != ""
}

// IdentityRecord is the normalized outcome of a successful verification:
// the provider identity plus the credentials obtained for it.
type IdentityRecord struct {
	ProviderUserID    string
	ScreenName        string
	AccessToken       string
	AccessTokenSecret string
}

// IdentityKey is the lookup key handed to the realm user-finder.
type IdentityKey struct {
	ProviderUserID string
}

// IdentityLink is the payload for the capability-checked sync of
// provider-linked fields onto the host's user object.
type IdentityLink struct {
	ScreenName        string
	AccessToken       string
	AccessTokenSecret string
}

func (r IdentityRecord) Key() IdentityKey {
	return IdentityKey{ProviderUserID: r.ProviderUserID}
}

func (r IdentityRecord) Link() IdentityLink {
	return IdentityLink{
		ScreenName:        r.ScreenName,
		AccessToken:       r.AccessToken,
		AccessTokenSecret: r.AccessTokenSecret,
	}
}

func (r IdentityRecord) Map() map[string]any {
	return map[string]any{
		"provider_user_id": strings.TrimSpace(r.ProviderUserID),
		"screen_name":      strings.TrimSpace(r.ScreenName),
	}
}
