package oauth

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// Fixed paths of the GitHub OAuth web flow and of this service's own
// authentication surface.
const (
	AuthorizePath   = "/login/oauth/authorize"
	AccessTokenPath = "/login/oauth/access_token"
	UserPath        = "/user"

	FinalRedirectPath  = "/oauth"
	LoginPath          = "/login"
	LogoutPath         = "/logout"
	ScopeSelectionPath = "/oauth/scope"

	DefaultScopeSelectionPath = "/static/scope.html"
)

// Endpoint returns the oauth2 endpoint pair for a GitHub web base URL.
// Trailing slashes on the base are ignored.
func Endpoint(baseURL string) oauth2.Endpoint {
	base := strings.TrimRight(baseURL, "/")
	return oauth2.Endpoint{
		AuthURL:  base + AuthorizePath,
		TokenURL: base + AccessTokenPath,
	}
}

// RandomState returns an unguessable state parameter for the authorize
// redirect.
func RandomState() string {
	return uuid.NewString()
}
