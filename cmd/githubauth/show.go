package githubauth

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"githubauth/pkg/oauth"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveFromFlags()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "enabled: %v\n", cfg.Enabled)
			fmt.Fprintf(out, "github url: %s\n", cfg.GitHubURL)
			fmt.Fprintf(out, "github api url: %s\n", cfg.GitHubAPIURL)
			fmt.Fprintf(out, "oauth authorize url: %s\n", cfg.OAuthURL)
			fmt.Fprintf(out, "oauth access token url: %s\n", cfg.OAuthAccessTokenURL)
			fmt.Fprintf(out, "client id: %s\n", cfg.ClientID)
			fmt.Fprintf(out, "client secret: %s\n", redact(cfg.ClientSecret))
			fmt.Fprintf(out, "http header: %s\n", cfg.HTTPHeader)
			if cfg.OAuthHTTPHeader != "" {
				fmt.Fprintf(out, "external id header: %s\n", cfg.OAuthHTTPHeader)
			}
			if cfg.LogoutRedirectURL != "" {
				fmt.Fprintf(out, "logout redirect url: %s\n", cfg.LogoutRedirectURL)
			}
			fmt.Fprintf(out, "scope selection path: %s\n", cfg.ScopeSelectionPath)
			fmt.Fprintf(out, "file update retries: %d (interval %dms)\n",
				cfg.FileUpdateMaxRetryCount, cfg.FileUpdateMaxRetryIntervalMsec)
			fmt.Fprintf(out, "http timeouts: connect=%s read=%s\n",
				cfg.HTTPConnectionTimeout, cfg.HTTPReadTimeout)
			fmt.Fprintln(out, "scope groups:")
			for _, key := range cfg.SortedScopeKeys() {
				group, _ := cfg.ScopeGroup(key.Name)
				fmt.Fprintf(out, "  %s (sequence %d): %s\n", key.Name, key.Sequence, scopeNames(group.Scopes))
			}
			return nil
		},
	}
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "********"
}

func scopeNames(scopes []oauth.Scope) string {
	if len(scopes) == 0 {
		return "(none)"
	}
	names := make([]string, 0, len(scopes))
	for _, scope := range scopes {
		names = append(names, scope.Name())
	}
	return strings.Join(names, ", ")
}
