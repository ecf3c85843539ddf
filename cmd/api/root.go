package main

import (
	"os"

	"github.com/spf13/cobra"

	"petcare-api/internal/config"
	"petcare-api/internal/platform/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "petcare-api",
	Short: "PetCare API: mascotas, tareas, métricas de salud y usuarios",
	// Sin subcomando se levanta el server.
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml); env vars override it")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.NewFromEnv().Error("command failed", map[string]any{"err": err})
		os.Exit(1)
	}
}

// loadConfig carga la config y arma el logger del proceso.
func loadConfig() (config.Config, logger.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
	return cfg, log, nil
}
