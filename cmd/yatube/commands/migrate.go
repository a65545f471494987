package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yatube/yatube-be/config"
	"github.com/yatube/yatube-be/db/upperdb"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	store, err := upperdb.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(context.Background()); err != nil {
		return err
	}
	fmt.Println("schema is up to date")
	return nil
}
