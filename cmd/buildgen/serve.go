// cmd/buildgen/serve.go
package main

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/julianshen/buildgen/internal/server"
)

func serveCmd() *cobra.Command {
	var addrFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the idea generator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			addr := addrFlag
			if addr == "" {
				addr = cfg.Server.Addr
			}
			if !verboseFlag {
				gin.SetMode(gin.ReleaseMode)
			}

			srv := server.New(server.Options{
				RateLimit:  cfg.Server.RateLimit,
				Burst:      cfg.Server.Burst,
				SessionTTL: cfg.Server.SessionTTL.Duration,
			})
			return srv.Run(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (default from config, \":8080\")")

	return cmd
}
