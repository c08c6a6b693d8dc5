package core

import (
	"context"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-twitter-auth/identity"
)

// SessionStore is the host-supplied string-keyed session dictionary for one
// login attempt. The host is responsible for synchronization and lifecycle;
// this package only reads and writes the handshake keys.
type SessionStore interface {
	Get(key string) string
	Set(key, value string)
}

// ProviderClient performs the provider-side legs of the OAuth 1.0a
// handshake. Implementations own signing and transport.
type ProviderClient interface {
	RequestToken(ctx context.Context) (requestToken string, requestSecret string, err error)
	AuthorizationURL(requestToken string) (string, error)
	AccessToken(ctx context.Context, requestToken, requestSecret, verifier string) (accessToken string, accessSecret string, err error)
	VerifyCredentials(ctx context.Context, accessToken, accessSecret string) (identity.Profile, error)
}

// ExternalUser is whatever user representation the host realm resolves. The
// exchange never inspects it beyond the optional IdentityLinkable capability.
type ExternalUser = any

// UserFinder resolves a provider identity key to the host's user object.
// A nil user with a nil error means no user is mapped to the identity.
type UserFinder interface {
	Lookup(ctx context.Context, key IdentityKey) (ExternalUser, error)
}

type UserFinderFunc func(ctx context.Context, key IdentityKey) (ExternalUser, error)

func (f UserFinderFunc) Lookup(ctx context.Context, key IdentityKey) (ExternalUser, error) {
	if f == nil {
		return nil, nil
	}
	return f(ctx, key)
}

// IdentityLinkable is an optional capability on ExternalUser. Users that
// implement it receive a best-effort sync of the latest provider-linked
// identity fields after a successful lookup.
type IdentityLinkable interface {
	LinkIdentity(link IdentityLink) error
}

type Logger = glog.Logger

type LoggerProvider = glog.LoggerProvider

type FieldsLogger = glog.FieldsLogger
