package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/remiblancher/pqbind/internal/api"
	"github.com/remiblancher/pqbind/internal/config"
)

// Serve command flags
var (
	serveAddr    string
	serveLib     string
	serveKATDir  string
	serveConfigF string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve algorithm metadata and KAT validation over HTTP",
	Long: `Serve algorithm metadata and KAT validation over HTTP.

Endpoints:
  GET  /health
  GET  /algorithms
  GET  /algorithms/{id}
  POST /validate/{id}

Environment variables:
  PQBIND_LIB      Path to the native library
  PQBIND_KAT_DIR  Root of the KAT vector tree
  PQBIND_ADDR     Listen address`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default :8080)")
	serveCmd.Flags().StringVar(&serveLib, "lib", "", "Path to the PQClean shared library")
	serveCmd.Flags().StringVar(&serveKATDir, "kat-dir", "", "Root of the KAT vector tree")
	serveCmd.Flags().StringVar(&serveConfigF, "config", "", "YAML config file")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if serveConfigF != "" {
		loaded, err := config.Load(serveConfigF)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if serveLib != "" {
		cfg.Library = serveLib
	}
	if serveKATDir != "" {
		cfg.KATDir = serveKATDir
	}
	if serveAddr != "" {
		cfg.Listen = serveAddr
	}
	if cfg.Library == "" {
		return fmt.Errorf("native library path required (--lib, config file or PQBIND_LIB)")
	}

	handler := api.New(cfg, version, newBinder(cfg.Library))
	fmt.Fprintf(cmd.OutOrStdout(), "listening on %s (library %s)\n", cfg.Listen, cfg.Library)
	return http.ListenAndServe(cfg.Listen, handler)
}
