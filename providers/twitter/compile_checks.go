package twitter

import "github.com/goliatone/go-twitter-auth/core"

var _ core.ProviderClient = (*Client)(nil)
