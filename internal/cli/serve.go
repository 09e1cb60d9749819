package cli

import (
	"github.com/spf13/cobra"

	"github.com/jwulff/kaza-go/internal/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API for a UI client",
	Long: `Serve the JSON API for a UI client.

Listens on KAZA_ADDR (default :8080) unless --addr is given, and
shuts down cleanly on interrupt.`,
	Args: cobra.NoArgs,
	RunE: withApp(runServe),
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address")
}

func runServe(cmd *cobra.Command, args []string, a *app) error {
	addr := a.cfg.ServerAddress
	if serveAddr != "" {
		addr = serveAddr
	}
	return api.New(a.tracker, a.log).Run(cmd.Context(), addr)
}
