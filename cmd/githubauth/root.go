package githubauth

import (
	"github.com/spf13/cobra"

	"githubauth/pkg/config"
	"githubauth/pkg/gitconfig"
	"githubauth/pkg/web"
)

// NewRootCmd returns the Cobra entrypoint for the CLI/server.
func NewRootCmd() *cobra.Command {
	configPath = "config.yaml"
	canonicalURL = ""
	root := &cobra.Command{
		Use:   "githubauth",
		Short: "GitHub OAuth configuration resolver + auth endpoints",
		Long: "Githubauth resolves the GitHub OAuth integration settings (client credentials, URLs, " +
			"timeouts and named scope groups) into an immutable snapshot and serves the login, logout " +
			"and scope-selection endpoints built on it.",
		Example: "  githubauth validate --config config.yaml\n" +
			"  githubauth show --config config.yaml\n" +
			"  githubauth serve --config config.yaml --listen :8080",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", configPath, "Path to config file")
	root.PersistentFlags().StringVar(&canonicalURL, "canonical-url", canonicalURL, "Fixed canonical base URL override")
	root.AddCommand(newValidateCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newServeCmd())
	return root
}

var configPath string
var canonicalURL string

func resolveFromFlags() (*config.Config, error) {
	store, err := gitconfig.Load(configPath)
	if err != nil {
		return nil, err
	}
	return config.Resolve(store, web.CanonicalURL{Override: canonicalURL})
}
