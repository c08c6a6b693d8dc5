// Package twitterauth verifies Twitter credentials over the OAuth 1.0a
// three-legged handshake and hands a normalized identity record to a host
// framework's authentication realm. Session storage, routing, and user
// persistence remain host concerns, consumed through narrow interfaces.
package twitterauth

import (
	"github.com/goliatone/go-twitter-auth/core"
	"github.com/goliatone/go-twitter-auth/providers/twitter"
)

type Config = core.Config

type CredentialExchange = core.CredentialExchange

type HandshakeState = core.HandshakeState

type IdentityRecord = core.IdentityRecord
type IdentityKey = core.IdentityKey
type IdentityLink = core.IdentityLink
type IdentityLinkable = core.IdentityLinkable

type SessionStore = core.SessionStore
type ProviderClient = core.ProviderClient
type ExternalUser = core.ExternalUser
type UserFinder = core.UserFinder
type UserFinderFunc = core.UserFinderFunc

type Option = core.Option

var (
	WithProviderClient = core.WithProviderClient
	WithLogger         = core.WithLogger
	WithLoggerProvider = core.WithLoggerProvider

	NewMemorySessionStore = core.NewMemorySessionStore

	IsConfigError    = core.IsConfigError
	IsHandshakeError = core.IsHandshakeError
	IsProviderError  = core.IsProviderError
)

// New resolves the two configuration layers (realm values override
// application-wide values), wires the built-in Twitter provider client for
// the resolved consumer pair, and returns a per-request exchange. Options
// can inject a custom provider client or logger; an injected client takes
// precedence over the built-in one.
func New(appConfig map[string]any, realmConfig map[string]any, options ...Option) (*CredentialExchange, error) {
	cfg, err := core.ResolveConfig(core.DefaultConfig(), appConfig, realmConfig)
	if err != nil {
		return nil, err
	}

	client, err := twitter.New(twitter.Config{
		ConsumerKey:    cfg.ConsumerKey,
		ConsumerSecret: cfg.ConsumerSecret,
		CallbackURL:    cfg.CallbackURL,
	})
	if err != nil {
		return nil, err
	}

	merged := append([]Option{core.WithProviderClient(client)}, options...)
	return core.NewCredentialExchange(cfg, merged...)
}
