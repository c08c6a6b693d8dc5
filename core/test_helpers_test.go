package core

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-twitter-auth/identity"
)

type stubProviderClient struct {
	requestToken      string
	requestSecret     string
	requestTokenErr   error
	requestTokenCalls int

	authURL    string
	authURLErr error

	accessToken      string
	accessSecret     string
	accessTokenErr   error
	accessTokenCalls int

	profile     identity.Profile
	verifyErr   error
	verifyCalls int
}

func (s *stubProviderClient) RequestToken(context.Context) (string, string, error) {
	s.requestTokenCalls++
	if s.requestTokenErr != nil {
		return "", "", s.requestTokenErr
	}
	return s.requestToken, s.requestSecret, nil
}

func (s *stubProviderClient) AuthorizationURL(requestToken string) (string, error) {
	if s.authURLErr != nil {
		return "", s.authURLErr
	}
	if s.authURL != "" {
		return s.authURL, nil
	}
	return "https://provider.example/oauth/authorize?oauth_token=" + requestToken, nil
}

func (s *stubProviderClient) AccessToken(_ context.Context, requestToken, requestSecret, verifier string) (string, string, error) {
	s.accessTokenCalls++
	if s.accessTokenErr != nil {
		return "", "", s.accessTokenErr
	}
	if requestToken == "" || requestSecret == "" || verifier == "" {
		return "", "", fmt.Errorf("stub: incomplete redemption input")
	}
	return s.accessToken, s.accessSecret, nil
}

func (s *stubProviderClient) VerifyCredentials(context.Context, string, string) (identity.Profile, error) {
	s.verifyCalls++
	if s.verifyErr != nil {
		return identity.Profile{}, s.verifyErr
	}
	return s.profile, nil
}

type recordingLogger struct {
	mu       sync.Mutex
	errors   []string
	messages []string
}

func (l *recordingLogger) record(dst *[]string, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*dst = append(*dst, message)
}

func (l *recordingLogger) Trace(message string, _ ...any) { l.record(&l.messages, message) }
func (l *recordingLogger) Debug(message string, _ ...any) { l.record(&l.messages, message) }
func (l *recordingLogger) Info(message string, _ ...any)  { l.record(&l.messages, message) }
func (l *recordingLogger) Warn(message string, _ ...any)  { l.record(&l.messages, message) }
func (l *recordingLogger) Error(message string, _ ...any) { l.record(&l.errors, message) }
func (l *recordingLogger) Fatal(message string, _ ...any) { l.record(&l.errors, message) }

func (l *recordingLogger) WithContext(context.Context) Logger {
	return l
}

func (l *recordingLogger) errorCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.errors)
}

type linkableUser struct {
	ID      string
	Link    *IdentityLink
	linkErr error
}

func (u *linkableUser) LinkIdentity(link IdentityLink) error {
	if u.linkErr != nil {
		return u.linkErr
	}
	u.Link = &link
	return nil
}

type plainUser struct {
	ID string
}

func validAppConfig() map[string]any {
	return map[string]any{
		"consumer_key":    "app_consumer_key",
		"consumer_secret": "app_consumer_secret",
		"callback_url":    "https://host.example/auth/twitter/callback",
	}
}

func newTestExchange(client ProviderClient, logger Logger) (*CredentialExchange, error) {
	cfg := Config{
		ConsumerKey:    "consumer_key",
		ConsumerSecret: "consumer_secret",
		CallbackURL:    "https://host.example/auth/twitter/callback",
	}
	options := []Option{WithProviderClient(client)}
	if logger != nil {
		options = append(options, WithLogger(logger))
	}
	return NewCredentialExchange(cfg, options...)
}

func seededSession(requestToken, requestSecret string) *MemorySessionStore {
	session := NewMemorySessionStore()
	session.Set(SessionKeyRequestToken, requestToken)
	session.Set(SessionKeyRequestTokenSecret, requestSecret)
	return session
}
