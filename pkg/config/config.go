package config

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"githubauth/pkg/oauth"
)

// Configuration sections and defaults of the GitHub OAuth integration.
const (
	Section     = "github"
	AuthSection = "auth"

	GitHubURLDefault    = "https://github.com"
	GitHubAPIURLDefault = "https://api.github.com"

	// Auth type enabling the header-based authentication mode.
	AuthTypeHTTP = "HTTP"

	defaultFileUpdateMaxRetryCount        = 3
	defaultFileUpdateMaxRetryIntervalMsec = 3000
	defaultHTTPTimeout                    = 30 * time.Second

	scopesKeyPrefix        = "scopes"
	scopeDescriptionSuffix = "Description"
	scopeSequenceSuffix    = "Sequence"
)

// Store is the narrow read interface the resolver consumes. It is
// satisfied by gitconfig.Config; the resolver never writes back.
type Store interface {
	GetString(section, subsection, key string) (string, bool)
	GetInt(section, key string, def int) int
	GetNames(section string, recursive bool) []string
	GetDuration(section, subsection, key string, def, unit time.Duration) time.Duration
}

// CanonicalURL resolves the externally visible base URL of the running
// service for an inbound request.
type CanonicalURL interface {
	Get(r *http.Request) string
}

// ScopeKey names a scope group. Identity is the Name alone; Description
// and Sequence are display/ordering metadata.
type ScopeKey struct {
	Name        string
	Description string
	Sequence    int
}

// ScopeGroup is a named, ordered bundle of scopes.
type ScopeGroup struct {
	Key    ScopeKey
	Scopes []oauth.Scope
}

// Config is the resolved snapshot of the GitHub OAuth integration.
// It is built once by Resolve and never mutated afterwards, so it is
// safe for unsynchronized concurrent reads.
type Config struct {
	GitHubURL           string
	GitHubAPIURL        string
	ClientID            string
	ClientSecret        string
	LogoutRedirectURL   string
	HTTPHeader          string
	OAuthHTTPHeader     string
	OAuthURL            string
	OAuthAccessTokenURL string
	ScopeSelectionPath  string
	Enabled             bool

	FileUpdateMaxRetryCount        int
	FileUpdateMaxRetryIntervalMsec int

	HTTPConnectionTimeout time.Duration
	HTTPReadTimeout       time.Duration

	scopeGroups     map[string]ScopeGroup
	sortedScopeKeys []ScopeKey

	canonical CanonicalURL
}

// Resolve reads the raw store, validates required values, applies
// defaults and builds the scope catalog. It either returns a complete
// snapshot or a validation error; no partial snapshot is ever returned.
func Resolve(store Store, canonical CanonicalURL) (*Config, error) {
	httpHeader, err := requiredString(store, AuthSection, "httpHeader")
	if err != nil {
		return nil, err
	}
	clientID, err := requiredString(store, Section, "clientId")
	if err != nil {
		return nil, err
	}
	clientSecret, err := requiredString(store, Section, "clientSecret")
	if err != nil {
		return nil, err
	}

	gitHubURL := trimTrailingSlash(stringOrDefault(store, Section, "url", GitHubURLDefault))
	gitHubAPIURL := trimTrailingSlash(stringOrDefault(store, Section, "apiUrl", GitHubAPIURLDefault))
	logoutRedirectURL, _ := store.GetString(Section, "", "logoutRedirectUrl")
	oauthHTTPHeader, _ := store.GetString(AuthSection, "", "httpExternalIdHeader")
	authType, _ := store.GetString(AuthSection, "", "type")

	groups, sortedKeys, err := buildScopeCatalog(store)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		GitHubURL:           gitHubURL,
		GitHubAPIURL:        gitHubAPIURL,
		ClientID:            clientID,
		ClientSecret:        clientSecret,
		LogoutRedirectURL:   logoutRedirectURL,
		HTTPHeader:          httpHeader,
		OAuthHTTPHeader:     oauthHTTPHeader,
		OAuthURL:            gitHubURL + oauth.AuthorizePath,
		OAuthAccessTokenURL: gitHubURL + oauth.AccessTokenPath,
		ScopeSelectionPath:  stringOrDefault(store, Section, "scopeSelectionUrl", oauth.DefaultScopeSelectionPath),
		Enabled:             strings.EqualFold(authType, AuthTypeHTTP),

		FileUpdateMaxRetryCount: store.GetInt(Section, "fileUpdateMaxRetryCount", defaultFileUpdateMaxRetryCount),
		FileUpdateMaxRetryIntervalMsec: store.GetInt(
			Section, "fileUpdateMaxRetryIntervalMsec", defaultFileUpdateMaxRetryIntervalMsec),

		HTTPConnectionTimeout: store.GetDuration(
			Section, "", "httpConnectionTimeout", defaultHTTPTimeout, time.Second),
		HTTPReadTimeout: store.GetDuration(
			Section, "", "httpReadTimeout", defaultHTTPTimeout, time.Second),

		scopeGroups:     groups,
		sortedScopeKeys: sortedKeys,
		canonical:       canonical,
	}
	return cfg, nil
}

// ScopeGroup returns the named scope group, if defined.
func (c *Config) ScopeGroup(name string) (ScopeGroup, bool) {
	group, ok := c.scopeGroups[name]
	return group, ok
}

// SortedScopeKeys returns the scope-group keys ordered by Sequence
// ascending, stable for equal sequences. Callers must not modify the
// returned slice.
func (c *Config) SortedScopeKeys() []ScopeKey {
	return c.sortedScopeKeys
}

// DefaultScopes returns the scopes of the unqualified "scopes" group,
// or nil when no such group is configured.
func (c *Config) DefaultScopes() []oauth.Scope {
	group, ok := c.scopeGroups[scopesKeyPrefix]
	if !ok {
		return nil
	}
	return group.Scopes
}

// OAuthFinalRedirectURL returns the absolute URL GitHub redirects back
// to after authorization, or the bare path when no request context is
// available.
func (c *Config) OAuthFinalRedirectURL(r *http.Request) string {
	if r == nil || c.canonical == nil {
		return oauth.FinalRedirectPath
	}
	return trimTrailingSlash(c.canonical.Get(r)) + oauth.FinalRedirectPath
}

// ScopeSelectionURL returns the URL of the scope-selection page for the
// current request. Only the canonical prefix is slash-trimmed, never
// the configured path.
func (c *Config) ScopeSelectionURL(r *http.Request) string {
	prefix := ""
	if r != nil && c.canonical != nil {
		prefix = trimTrailingSlash(c.canonical.Get(r))
	}
	return prefix + c.ScopeSelectionPath
}

func buildScopeCatalog(store Store) (map[string]ScopeGroup, []ScopeKey, error) {
	groups := map[string]ScopeGroup{}
	var keys []ScopeKey
	for _, name := range store.GetNames(Section, true) {
		if !strings.HasPrefix(name, scopesKeyPrefix) ||
			strings.HasSuffix(name, scopeDescriptionSuffix) ||
			strings.HasSuffix(name, scopeSequenceSuffix) {
			continue
		}
		if _, ok := groups[name]; ok {
			return nil, nil, &DuplicateScopeKeyError{Name: name}
		}

		description, _ := store.GetString(Section, "", name+scopeDescriptionSuffix)
		key := ScopeKey{
			Name:        name,
			Description: description,
			Sequence:    store.GetInt(Section, name+scopeSequenceSuffix, 0),
		}
		raw, _ := store.GetString(Section, "", name)
		scopes, err := parseScopes(name, raw)
		if err != nil {
			return nil, nil, err
		}

		groups[name] = ScopeGroup{Key: key, Scopes: scopes}
		keys = append(keys, key)
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].Sequence < keys[j].Sequence
	})
	return groups, keys, nil
}

// parseScopes splits a comma-separated scope list, trimming whitespace
// around each token. Empty tokens are skipped; an empty value yields an
// empty list.
func parseScopes(key, raw string) ([]oauth.Scope, error) {
	var scopes []oauth.Scope
	if strings.TrimSpace(raw) == "" {
		return scopes, nil
	}
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		scope, ok := oauth.ParseScope(token)
		if !ok {
			return nil, &UnknownScopeTokenError{Key: key, Token: token}
		}
		scopes = append(scopes, scope)
	}
	return scopes, nil
}

func requiredString(store Store, section, key string) (string, error) {
	value, ok := store.GetString(section, "", key)
	if !ok || strings.TrimSpace(value) == "" {
		return "", &MissingRequiredValueError{Section: section, Key: key}
	}
	return value, nil
}

func stringOrDefault(store Store, section, key, def string) string {
	value, ok := store.GetString(section, "", key)
	if !ok || value == "" {
		return def
	}
	return value
}

func trimTrailingSlash(url string) string {
	return strings.TrimRight(url, "/")
}
