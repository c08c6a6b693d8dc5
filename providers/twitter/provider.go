package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/oauth1"

	"github.com/goliatone/go-twitter-auth/identity"
)

const (
	ProviderID = "twitter"

	RequestTokenURL      = "https://api.twitter.com/oauth/request_token"
	AuthorizeURL         = "https://api.twitter.com/oauth/authorize"
	AccessTokenURL       = "https://api.twitter.com/oauth/access_token"
	VerifyCredentialsURL = "https://api.twitter.com/1.1/account/verify_credentials.json"

	defaultRequestTimeout   = 10 * time.Second
	maxProfileResponseBytes = 1 << 20 // 1 MiB
)

type Config struct {
	ConsumerKey    string
	ConsumerSecret string
	CallbackURL    string

	// Endpoint overrides, empty values fall back to the api.twitter.com URLs.
	RequestTokenURL string
	AuthorizeURL    string
	AccessTokenURL  string
	VerifyURL       string

	RequestTimeout time.Duration
	HTTPClient     *http.Client
}

func DefaultConfig() Config {
	return Config{
		RequestTokenURL: RequestTokenURL,
		AuthorizeURL:    AuthorizeURL,
		AccessTokenURL:  AccessTokenURL,
		VerifyURL:       VerifyCredentialsURL,
		RequestTimeout:  defaultRequestTimeout,
	}
}

// Client implements the provider side of the OAuth 1.0a handshake against
// the Twitter API, delegating signing and token parsing to dghubble/oauth1.
type Client struct {
	oauth      *oauth1.Config
	verifyURL  string
	httpClient *http.Client
}

func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.ConsumerKey) == "" {
		return nil, fmt.Errorf("twitter: consumer key is required")
	}
	if strings.TrimSpace(cfg.ConsumerSecret) == "" {
		return nil, fmt.Errorf("twitter: consumer secret is required")
	}

	defaults := DefaultConfig()
	if strings.TrimSpace(cfg.RequestTokenURL) == "" {
		cfg.RequestTokenURL = defaults.RequestTokenURL
	}
	if strings.TrimSpace(cfg.AuthorizeURL) == "" {
		cfg.AuthorizeURL = defaults.AuthorizeURL
	}
	if strings.TrimSpace(cfg.AccessTokenURL) == "" {
		cfg.AccessTokenURL = defaults.AccessTokenURL
	}
	if strings.TrimSpace(cfg.VerifyURL) == "" {
		cfg.VerifyURL = defaults.VerifyURL
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaults.RequestTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.RequestTimeout}
	}

	return &Client{
		oauth: &oauth1.Config{
			ConsumerKey:    strings.TrimSpace(cfg.ConsumerKey),
			ConsumerSecret: strings.TrimSpace(cfg.ConsumerSecret),
			CallbackURL:    strings.TrimSpace(cfg.CallbackURL),
			Endpoint: oauth1.Endpoint{
				RequestTokenURL: cfg.RequestTokenURL,
				AuthorizeURL:    cfg.AuthorizeURL,
				AccessTokenURL:  cfg.AccessTokenURL,
			},
		},
		verifyURL:  cfg.VerifyURL,
		httpClient: httpClient,
	}, nil
}

// RequestToken obtains a fresh request-token pair. The oauth1 transport does
// not thread a context through this leg, so ctx is accepted for interface
// symmetry only.
func (c *Client) RequestToken(_ context.Context) (string, string, error) {
	if c == nil || c.oauth == nil {
		return "", "", fmt.Errorf("twitter: client is not configured")
	}
	return c.oauth.RequestToken()
}

func (c *Client) AuthorizationURL(requestToken string) (string, error) {
	if c == nil || c.oauth == nil {
		return "", fmt.Errorf("twitter: client is not configured")
	}
	if strings.TrimSpace(requestToken) == "" {
		return "", fmt.Errorf("twitter: request token is required")
	}
	authURL, err := c.oauth.AuthorizationURL(requestToken)
	if err != nil {
		return "", err
	}
	return authURL.String(), nil
}

func (c *Client) AccessToken(_ context.Context, requestToken, requestSecret, verifier string) (string, string, error) {
	if c == nil || c.oauth == nil {
		return "", "", fmt.Errorf("twitter: client is not configured")
	}
	return c.oauth.AccessToken(requestToken, requestSecret, verifier)
}

// VerifyCredentials calls the identity-verification endpoint with a signed
// request and normalizes the response payload.
func (c *Client) VerifyCredentials(ctx context.Context, accessToken, accessSecret string) (identity.Profile, error) {
	if c == nil || c.oauth == nil {
		return identity.Profile{}, fmt.Errorf("twitter: client is not configured")
	}
	if strings.TrimSpace(accessToken) == "" || strings.TrimSpace(accessSecret) == "" {
		return identity.Profile{}, fmt.Errorf("twitter: access token pair is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth1.HTTPClient, c.httpClient)
	}

	token := oauth1.NewToken(accessToken, accessSecret)
	signedClient := c.oauth.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.verifyURL+"?skip_status=true", nil)
	if err != nil {
		return identity.Profile{}, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := signedClient.Do(req)
	if err != nil {
		return identity.Profile{}, err
	}
	defer res.Body.Close()

	body, readErr := io.ReadAll(io.LimitReader(res.Body, maxProfileResponseBytes+1))
	if readErr != nil {
		return identity.Profile{}, fmt.Errorf("twitter: read verify response: %w", readErr)
	}
	if int64(len(body)) > maxProfileResponseBytes {
		return identity.Profile{}, fmt.Errorf("twitter: verify response exceeds %d bytes", maxProfileResponseBytes)
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return identity.Profile{}, fmt.Errorf("twitter: verify endpoint returned status %d", res.StatusCode)
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return identity.Profile{}, fmt.Errorf("twitter: decode verify response: %w", err)
	}
	return identity.NormalizeTwitterProfile(payload), nil
}
