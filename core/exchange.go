package core

import (
	"context"
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"
)

// CredentialExchange drives the OAuth 1.0a three-legged handshake for a
// single login attempt and maps the verified provider response to an
// IdentityRecord. One instance per request; instances are not safe for
// concurrent use and are not meant to outlive the attempt.
type CredentialExchange struct {
	cfg       Config
	client    ProviderClient
	logger    Logger
	attemptID string
	identity  *IdentityRecord
}

// NewCredentialExchange builds an exchange from an already-resolved Config.
// A provider client must be injected through WithProviderClient; package
// twitterauth wires the built-in Twitter client.
func NewCredentialExchange(cfg Config, options ...Option) (*CredentialExchange, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	builder := &exchangeBuilder{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(builder)
	}
	if builder.client == nil {
		return nil, fmt.Errorf("core: provider client is required")
	}

	provider, logger := glog.Resolve("twitter-auth", builder.loggerProvider, builder.logger)
	logger = glog.Ensure(logger)
	if provider != nil {
		if named := provider.GetLogger("twitter-auth"); named != nil {
			logger = glog.Ensure(named)
		}
	}

	return &CredentialExchange{
		cfg:       cfg,
		client:    builder.client,
		logger:    logger,
		attemptID: uuid.NewString(),
	}, nil
}

func (x *CredentialExchange) Config() Config {
	if x == nil {
		return Config{}
	}
	return x.cfg
}

// Identity returns the record produced by the last successful verification
// in this instance's lifetime, or nil.
func (x *CredentialExchange) Identity() *IdentityRecord {
	if x == nil || x.identity == nil {
		return nil
	}
	record := *x.identity
	return &record
}

// AuthorizationURL starts a fresh handshake: it obtains a request-token pair
// from the provider, stores it in the session, and returns the hosted
// authorization URL the end user must be redirected to. Any previously
// completed handshake state in the session is reset so a stale access token
// cannot leak into the new attempt.
func (x *CredentialExchange) AuthorizationURL(ctx context.Context, session SessionStore) (string, error) {
	if x == nil || x.client == nil {
		return "", fmt.Errorf("core: credential exchange is not configured")
	}
	if session == nil {
		return "", fmt.Errorf("core: session store is required")
	}

	requestToken, requestSecret, err := x.client.RequestToken(ctx)
	if err != nil {
		return "", WrapProviderError("request token", err)
	}

	session.Set(SessionKeyRequestToken, requestToken)
	session.Set(SessionKeyRequestTokenSecret, requestSecret)
	session.Set(SessionKeyAccessToken, "")
	session.Set(SessionKeyAccessTokenSecret, "")

	authURL, err := x.client.AuthorizationURL(requestToken)
	if err != nil {
		return "", WrapProviderError("authorization url", err)
	}

	x.logInfo(ctx, "twitter handshake started", map[string]any{
		"operation": "authorization_url",
	})
	return authURL, nil
}

// CompleteHandshake redeems the verifier for an access-token pair and runs
// the provider identity check. The redeemed pair is written to the session
// before verification so a retried call never re-spends the one-time
// verifier; re-entry with access tokens already in the session skips
// redemption entirely.
//
// Verification failures are soft: the cause is logged and a nil record is
// returned with a nil error, meaning authentication did not complete.
func (x *CredentialExchange) CompleteHandshake(ctx context.Context, session SessionStore, verifier string) (*IdentityRecord, error) {
	if x == nil || x.client == nil {
		return nil, fmt.Errorf("core: credential exchange is not configured")
	}
	if session == nil {
		return nil, fmt.Errorf("core: session store is required")
	}

	state := ReadHandshakeState(session)
	if !state.HasRequestToken() {
		return nil, NewHandshakeError("no request token present")
	}
	if strings.TrimSpace(verifier) == "" {
		return nil, NewHandshakeError("no verifier")
	}

	accessToken, accessSecret := state.AccessToken, state.AccessTokenSecret
	if !state.HasAccessToken() {
		var err error
		accessToken, accessSecret, err = x.client.AccessToken(ctx, state.RequestToken, state.RequestTokenSecret, verifier)
		if err != nil {
			return nil, WrapProviderError("access token", err)
		}
		session.Set(SessionKeyAccessToken, accessToken)
		session.Set(SessionKeyAccessTokenSecret, accessSecret)
	}

	profile, err := x.client.VerifyCredentials(ctx, accessToken, accessSecret)
	if err != nil {
		x.logError(ctx, "twitter identity verification failed", map[string]any{
			"operation": "verify_credentials",
			"error":     err.Error(),
		})
		return nil, nil
	}
	if profile.Empty() {
		x.logError(ctx, "twitter identity verification returned no identity", map[string]any{
			"operation": "verify_credentials",
		})
		return nil, nil
	}

	record := &IdentityRecord{
		ProviderUserID:    profile.Subject,
		ScreenName:        profile.ScreenName,
		AccessToken:       accessToken,
		AccessTokenSecret: accessSecret,
	}
	x.identity = record

	x.logInfo(ctx, "twitter handshake completed", map[string]any{
		"operation":        "complete_handshake",
		"provider_user_id": record.ProviderUserID,
	})
	return record, nil
}

// Authenticate runs the full realm flow: complete the handshake unless this
// instance already holds a verified identity, resolve the identity to a host
// user through finder, and sync linked-identity fields onto users that
// declare the IdentityLinkable capability. A nil user with a nil error means
// authentication did not produce a user.
func (x *CredentialExchange) Authenticate(ctx context.Context, session SessionStore, verifier string, finder UserFinder) (ExternalUser, error) {
	if x == nil {
		return nil, fmt.Errorf("core: credential exchange is not configured")
	}
	if finder == nil {
		return nil, fmt.Errorf("core: user finder is required")
	}

	record := x.identity
	if record == nil {
		var err error
		record, err = x.CompleteHandshake(ctx, session, verifier)
		if err != nil {
			return nil, err
		}
		if record == nil {
			return nil, nil
		}
	}

	user, err := finder.Lookup(ctx, record.Key())
	if err != nil {
		return nil, err
	}
	if user == nil {
		x.logInfo(ctx, "no user mapped to twitter identity", map[string]any{
			"operation":        "authenticate",
			"provider_user_id": record.ProviderUserID,
		})
		return nil, nil
	}

	if linkable, ok := user.(IdentityLinkable); ok {
		if err := linkable.LinkIdentity(record.Link()); err != nil {
			// best-effort sync; the lookup already succeeded
			x.logError(ctx, "linked identity sync failed", map[string]any{
				"operation":        "authenticate",
				"provider_user_id": record.ProviderUserID,
				"error":            err.Error(),
			})
		}
	}
	return user, nil
}
