package commands

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/yatube/yatube-be/config"
	"github.com/yatube/yatube-be/db/upperdb"
	"github.com/yatube/yatube-be/routes"
	"github.com/yatube/yatube-be/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := upperdb.Open(cfg)
	if err != nil {
		log.Fatal("Received err when attempting to connect to DB", err)
	}
	defer store.Close()

	if err := store.Migrate(context.Background()); err != nil {
		log.Fatal("An error occurred while applying the schema", err)
	}

	media, err := services.NewMediaStore(cfg.MediaDir)
	if err != nil {
		log.Fatal("An error occurred while preparing the media directory", err)
	}

	gin.SetMode(cfg.GinMode)
	r := routes.NewRouter(cfg, store, services.NewMemoryPageCache(), media)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Error when attempting to run web server", err)
	}
	return nil
}
