package githubapi

import (
	"context"
	"strings"
	"testing"
	"time"

	"githubauth/pkg/config"
	"githubauth/pkg/gitconfig"
	"githubauth/pkg/oauth"
)

func resolvedConfig(t *testing.T, mutate func(*gitconfig.Config)) *config.Config {
	t.Helper()
	store := gitconfig.New()
	store.Set("auth", "", "httpHeader", "X-Forwarded-User")
	store.Set("github", "", "clientId", "id1")
	store.Set("github", "", "clientSecret", "secret1")
	if mutate != nil {
		mutate(store)
	}
	cfg, err := config.Resolve(store, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return cfg
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	cfg := resolvedConfig(t, nil)
	client, err := NewClient(context.Background(), cfg, "")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if got := client.BaseURL.String(); got != "https://api.github.com/" {
		t.Fatalf("expected public api base url, got %q", got)
	}
	if client.Client().Timeout != 30*time.Second {
		t.Fatalf("expected 30s client timeout, got %s", client.Client().Timeout)
	}
}

func TestNewClientEnterpriseBaseURL(t *testing.T) {
	cfg := resolvedConfig(t, func(store *gitconfig.Config) {
		store.Set("github", "", "url", "https://ghe.example.org")
		store.Set("github", "", "apiUrl", "https://ghe.example.org/api/v3")
	})
	client, err := NewClient(context.Background(), cfg, "token")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if got := client.BaseURL.String(); !strings.HasPrefix(got, "https://ghe.example.org/api/v3") {
		t.Fatalf("expected enterprise base url, got %q", got)
	}
}

func TestNewClientTokenKeepsReadTimeout(t *testing.T) {
	cfg := resolvedConfig(t, func(store *gitconfig.Config) {
		store.Set("github", "", "httpReadTimeout", "45")
	})
	client, err := NewClient(context.Background(), cfg, "token")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.Client().Timeout != 45*time.Second {
		t.Fatalf("expected 45s timeout on authenticated client, got %s", client.Client().Timeout)
	}
}

func TestOAuth2Config(t *testing.T) {
	cfg := resolvedConfig(t, func(store *gitconfig.Config) {
		store.Set("github", "", "url", "https://ghe.example.org/")
	})
	oc := OAuth2Config(cfg, "https://gerrit.example.org/oauth", []oauth.Scope{oauth.ScopeDefault, oauth.ScopeRepo})
	if oc.Endpoint.AuthURL != "https://ghe.example.org/login/oauth/authorize" {
		t.Fatalf("unexpected auth url %q", oc.Endpoint.AuthURL)
	}
	if oc.Endpoint.TokenURL != "https://ghe.example.org/login/oauth/access_token" {
		t.Fatalf("unexpected token url %q", oc.Endpoint.TokenURL)
	}
	if oc.ClientID != "id1" || oc.ClientSecret != "secret1" {
		t.Fatalf("unexpected credentials %q/%q", oc.ClientID, oc.ClientSecret)
	}
	if len(oc.Scopes) != 1 || oc.Scopes[0] != "repo" {
		t.Fatalf("expected DEFAULT skipped, got %v", oc.Scopes)
	}
	if oc.RedirectURL != "https://gerrit.example.org/oauth" {
		t.Fatalf("unexpected redirect url %q", oc.RedirectURL)
	}
}
