package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "yatube",
	Short: "Yatube - a small blogging web application",
	Long: `Yatube is a server-rendered blogging web application: users register,
publish text posts (optionally into a group and with an image), comment on
posts, and follow other authors for a personalized feed.

Configuration comes from the environment (a .env file is honored).`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
