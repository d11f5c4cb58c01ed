package githubapi

import (
	"context"
	"net"
	"net/http"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"githubauth/pkg/config"
	oauthproto "githubauth/pkg/oauth"
)

// NewClient builds a GitHub API client from the resolved configuration.
// The client honors the snapshot's connect/read timeouts and targets
// the configured API base URL when it is not the public default. An
// empty token yields an unauthenticated client.
func NewClient(ctx context.Context, cfg *config.Config, token string) (*github.Client, error) {
	httpClient := &http.Client{
		Timeout: cfg.HTTPReadTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: cfg.HTTPConnectionTimeout}).DialContext,
		},
	}

	if token != "" {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		// oauth2.NewClient keeps only the transport of the context
		// client, so the read timeout must be carried over by hand.
		authed := oauth2.NewClient(ctx, source)
		authed.Timeout = cfg.HTTPReadTimeout
		httpClient = authed
	}

	client := github.NewClient(httpClient)
	if cfg.GitHubAPIURL != config.GitHubAPIURLDefault {
		return client.WithEnterpriseURLs(cfg.GitHubAPIURL, cfg.GitHubAPIURL)
	}
	return client, nil
}

// OAuth2Config builds the oauth2 client configuration for the web
// authorization flow, from the snapshot's derived endpoints.
func OAuth2Config(cfg *config.Config, redirectURL string, scopes []oauthproto.Scope) *oauth2.Config {
	oc := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  redirectURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:  cfg.OAuthURL,
			TokenURL: cfg.OAuthAccessTokenURL,
		},
	}
	for _, scope := range scopes {
		if v := scope.Value(); v != "" {
			oc.Scopes = append(oc.Scopes, v)
		}
	}
	return oc
}
