package oauth

import "strings"

// Scope is a single GitHub OAuth permission scope. The set is closed:
// configuration refers to scopes by their canonical upper-snake names
// (e.g. USER_EMAIL) and each scope carries the wire value GitHub
// expects in the authorize request (e.g. "user:email").
type Scope int

const (
	ScopeDefault Scope = iota
	ScopeUser
	ScopeUserEmail
	ScopeUserFollow
	ScopePublicRepo
	ScopeRepo
	ScopeRepoDeployment
	ScopeRepoStatus
	ScopeDeleteRepo
	ScopeNotifications
	ScopeGist
	ScopeReadRepoHook
	ScopeWriteRepoHook
	ScopeAdminRepoHook
	ScopeAdminOrgHook
	ScopeReadOrg
	ScopeWriteOrg
	ScopeAdminOrg
	ScopeReadPublicKey
	ScopeWritePublicKey
	ScopeAdminPublicKey
)

var scopeNames = [...]string{
	ScopeDefault:        "DEFAULT",
	ScopeUser:           "USER",
	ScopeUserEmail:      "USER_EMAIL",
	ScopeUserFollow:     "USER_FOLLOW",
	ScopePublicRepo:     "PUBLIC_REPO",
	ScopeRepo:           "REPO",
	ScopeRepoDeployment: "REPO_DEPLOYMENT",
	ScopeRepoStatus:     "REPO_STATUS",
	ScopeDeleteRepo:     "DELETE_REPO",
	ScopeNotifications:  "NOTIFICATIONS",
	ScopeGist:           "GIST",
	ScopeReadRepoHook:   "READ_REPO_HOOK",
	ScopeWriteRepoHook:  "WRITE_REPO_HOOK",
	ScopeAdminRepoHook:  "ADMIN_REPO_HOOK",
	ScopeAdminOrgHook:   "ADMIN_ORG_HOOK",
	ScopeReadOrg:        "READ_ORG",
	ScopeWriteOrg:       "WRITE_ORG",
	ScopeAdminOrg:       "ADMIN_ORG",
	ScopeReadPublicKey:  "READ_PUBLIC_KEY",
	ScopeWritePublicKey: "WRITE_PUBLIC_KEY",
	ScopeAdminPublicKey: "ADMIN_PUBLIC_KEY",
}

// The DEFAULT scope is the empty wire value: GitHub grants public read
// access when no scope is requested.
var scopeValues = [...]string{
	ScopeDefault:        "",
	ScopeUser:           "user",
	ScopeUserEmail:      "user:email",
	ScopeUserFollow:     "user:follow",
	ScopePublicRepo:     "public_repo",
	ScopeRepo:           "repo",
	ScopeRepoDeployment: "repo_deployment",
	ScopeRepoStatus:     "repo:status",
	ScopeDeleteRepo:     "delete_repo",
	ScopeNotifications:  "notifications",
	ScopeGist:           "gist",
	ScopeReadRepoHook:   "read:repo_hook",
	ScopeWriteRepoHook:  "write:repo_hook",
	ScopeAdminRepoHook:  "admin:repo_hook",
	ScopeAdminOrgHook:   "admin:org_hook",
	ScopeReadOrg:        "read:org",
	ScopeWriteOrg:       "write:org",
	ScopeAdminOrg:       "admin:org",
	ScopeReadPublicKey:  "read:public_key",
	ScopeWritePublicKey: "write:public_key",
	ScopeAdminPublicKey: "admin:public_key",
}

var scopesByName = func() map[string]Scope {
	byName := make(map[string]Scope, len(scopeNames))
	for i, name := range scopeNames {
		byName[name] = Scope(i)
	}
	return byName
}()

// Name returns the canonical configuration name of the scope.
func (s Scope) Name() string {
	if int(s) < 0 || int(s) >= len(scopeNames) {
		return ""
	}
	return scopeNames[s]
}

// Value returns the wire value sent to GitHub in the scope parameter.
func (s Scope) Value() string {
	if int(s) < 0 || int(s) >= len(scopeValues) {
		return ""
	}
	return scopeValues[s]
}

func (s Scope) String() string {
	return s.Name()
}

// ParseScope maps a canonical name to its Scope. The match is exact and
// case sensitive.
func ParseScope(name string) (Scope, bool) {
	scope, ok := scopesByName[name]
	return scope, ok
}

// AllScopes returns every scope in declaration order.
func AllScopes() []Scope {
	scopes := make([]Scope, len(scopeNames))
	for i := range scopeNames {
		scopes[i] = Scope(i)
	}
	return scopes
}

// JoinValues renders scopes as the space-separated wire form GitHub
// expects; empty wire values (DEFAULT) are skipped.
func JoinValues(scopes []Scope) string {
	values := make([]string, 0, len(scopes))
	for _, scope := range scopes {
		if v := scope.Value(); v != "" {
			values = append(values, v)
		}
	}
	return strings.Join(values, " ")
}
