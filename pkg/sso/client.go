package sso

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	srvErrors "github.com/trustification/spog-ui-e2e/pkg/errors"
)

// TokenURL returns the realm's OpenID Connect token endpoint.
func TokenURL(baseURL, realm string) string {
	return fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token", strings.TrimRight(baseURL, "/"), realm)
}

// Client requests access tokens with the client-credentials grant.
// It never caches: every call to Token performs a new grant.
type Client struct {
	cfg        clientcredentials.Config
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func NewClient(baseURL, realm, clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		cfg: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     TokenURL(baseURL, realm),
			// the realm expects client_id/client_secret in the form body
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token performs the grant and returns the raw access token.
func (c *Client) Token(ctx context.Context) (string, error) {
	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}

	zap.S().Named("sso").Debugw("requesting access token", "url", c.cfg.TokenURL, "client_id", c.cfg.ClientID)

	tok, err := c.cfg.Token(ctx)
	if err != nil {
		return "", srvErrors.NewTokenError(c.cfg.TokenURL, err)
	}
	return tok.AccessToken, nil
}

func (c *Client) TokenURL() string {
	return c.cfg.TokenURL
}
