package githubauth

import (
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"githubauth/pkg/web"
)

func newServeCmd() *cobra.Command {
	listen := ":8080"
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the login, logout and scope-selection endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveFromFlags()
			if err != nil {
				return err
			}
			logger := log.Default()
			mux := web.NewMux(cfg, logger)
			server := &http.Server{
				Addr:              listen,
				Handler:           web.RequestLog(mux, logger),
				ReadHeaderTimeout: 5 * time.Second,
			}
			logger.Printf("listening on %s (enabled=%v)", listen, cfg.Enabled)
			return server.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&listen, "listen", listen, "Listen address")
	return cmd
}
