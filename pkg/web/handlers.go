package web

import (
	"html/template"
	"log"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"githubauth/pkg/config"
	"githubauth/pkg/oauth"
)

// LoginHandler redirects users into the GitHub authorize flow with the
// scopes of the requested group.
type LoginHandler struct {
	Config *config.Config
	Logger *log.Logger
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := h.Logger
	if logger == nil {
		logger = log.Default()
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.Config.Enabled {
		http.Error(w, "github authentication is disabled", http.StatusNotFound)
		return
	}

	groupName := strings.TrimSpace(r.URL.Query().Get("scope"))
	scopes := h.Config.DefaultScopes()
	if groupName != "" {
		group, ok := h.Config.ScopeGroup(groupName)
		if !ok {
			http.Error(w, "unknown scope group", http.StatusBadRequest)
			return
		}
		scopes = group.Scopes
	}

	oauthCfg := oauth2.Config{
		ClientID:    h.Config.ClientID,
		Endpoint:    oauth.Endpoint(h.Config.GitHubURL),
		RedirectURL: h.Config.OAuthFinalRedirectURL(r),
	}
	if joined := oauth.JoinValues(scopes); joined != "" {
		oauthCfg.Scopes = strings.Split(joined, " ")
	}

	state := oauth.RandomState()
	target := oauthCfg.AuthCodeURL(state)
	logger.Printf("oauth login redirect group=%s scopes=%q state=%s", groupName, oauth.JoinValues(scopes), state)
	http.Redirect(w, r, target, http.StatusFound)
}

// LogoutHandler redirects to the configured logout URL, or to the site
// root when none is configured.
type LogoutHandler struct {
	Config *config.Config
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target := h.Config.LogoutRedirectURL
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// ScopeSelectionHandler renders the configured scope groups as an HTML
// page, ordered by their sequence, with a login link per group.
type ScopeSelectionHandler struct {
	Config *config.Config
}

var scopeSelectionTemplate = template.Must(template.New("scopes").Parse(`<!DOCTYPE html>
<html>
<head><title>Select GitHub permissions</title></head>
<body>
<h1>Select GitHub permissions</h1>
<ul>
{{- range .Groups}}
<li><a href="{{$.LoginPath}}?scope={{.Key.Name}}">{{if .Key.Description}}{{.Key.Description}}{{else}}{{.Key.Name}}{{end}}</a>{{if .Values}} ({{.Values}}){{end}}</li>
{{- end}}
</ul>
</body>
</html>
`))

type scopeSelectionPage struct {
	LoginPath string
	Groups    []scopeSelectionGroup
}

type scopeSelectionGroup struct {
	Key    config.ScopeKey
	Values string
}

func (h *ScopeSelectionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page := scopeSelectionPage{LoginPath: oauth.LoginPath}
	for _, key := range h.Config.SortedScopeKeys() {
		group, ok := h.Config.ScopeGroup(key.Name)
		if !ok {
			continue
		}
		page.Groups = append(page.Groups, scopeSelectionGroup{
			Key:    key,
			Values: oauth.JoinValues(group.Scopes),
		})
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := scopeSelectionTemplate.Execute(w, page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// NewMux mounts the authentication surface on a fresh ServeMux: login,
// logout, and the scope-selection page at /oauth/scope, the built-in
// default path and the configured path.
func NewMux(cfg *config.Config, logger *log.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(oauth.LoginPath, &LoginHandler{Config: cfg, Logger: logger})
	mux.Handle(oauth.LogoutPath, &LogoutHandler{Config: cfg})
	scopeHandler := &ScopeSelectionHandler{Config: cfg}
	mux.Handle(oauth.ScopeSelectionPath, scopeHandler)
	mux.Handle(oauth.DefaultScopeSelectionPath, scopeHandler)
	if path := cfg.ScopeSelectionPath; path != oauth.DefaultScopeSelectionPath &&
		path != oauth.ScopeSelectionPath && strings.HasPrefix(path, "/") {
		mux.Handle(path, scopeHandler)
	}
	return mux
}
